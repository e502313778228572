// Copyright (C) 2025 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gpuav

import (
	"context"

	"github.com/google/gpuav/core/log"
	"github.com/google/gpuav/settings"
	"github.com/google/gpuav/vulkan"
)

// Validator is the per-device validation context: the device handle, its
// negotiated capabilities, and the dispatch tables instrumentation issues
// calls through.
//
// Command buffer recording holds the buffer's exclusive lock for a whole
// capture, inject, restore cycle, so the validator itself needs no locking.
type Validator struct {
	// Device is the device this validator is bound to.
	Device vulkan.VkDevice
	// ApiVersion is the API version negotiated at device creation.
	ApiVersion vulkan.ApiVersion
	// CommandDispatch issues recording calls down the dispatch chain.
	CommandDispatch vulkan.CommandDispatcher
	// DeviceDispatch issues device-level queries down the dispatch chain.
	DeviceDispatch vulkan.DeviceDispatcher
	// Settings are the composition-time knobs the layer was loaded with.
	Settings settings.Settings

	extensions map[string]struct{}
}

// New returns a validator for the given device. extensions lists the device
// extensions enabled at creation; the list is copied.
func New(device vulkan.VkDevice, version vulkan.ApiVersion, extensions []string,
	deviceDispatch vulkan.DeviceDispatcher, commandDispatch vulkan.CommandDispatcher,
	s settings.Settings) *Validator {

	enabled := make(map[string]struct{}, len(extensions))
	for _, name := range extensions {
		enabled[name] = struct{}{}
	}
	return &Validator{
		Device:          device,
		ApiVersion:      version,
		CommandDispatch: commandDispatch,
		DeviceDispatch:  deviceDispatch,
		Settings:        s,
		extensions:      enabled,
	}
}

// IsExtensionEnabled reports whether the named device extension was enabled
// at device creation.
func (v *Validator) IsExtensionEnabled(name string) bool {
	_, ok := v.extensions[name]
	return ok
}

// LoggingContext returns ctx with a severity filter matching the settings:
// debug messages pass only when verbose logging is on.
func (v *Validator) LoggingContext(ctx context.Context) context.Context {
	if v.Settings.Verbose {
		return log.PutFilter(ctx, log.SeverityFilter(log.Debug))
	}
	return log.PutFilter(ctx, log.SeverityFilter(log.Info))
}
