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

package cmdval

import (
	"context"

	"github.com/google/gpuav"
	"github.com/google/gpuav/core/log"
	"github.com/google/gpuav/vulkan"
)

// GetBufferDeviceAddress returns the device address of buffer, or 0 when no
// capability path to query it is available.
//
// Paths are probed in fixed order on every call: the core entry point when
// the negotiated API version is 1.2 or later, then the EXT extension, then
// the KHR extension. The first match makes the one and only driver call.
//
// The buffer-device-address feature being enabled is a precondition that
// cannot be checked here: features are negotiated on the instance
// validator, and the device validator this runs on does not inherit those
// flags. Callers must treat 0 as "no address available" and skip
// address-dependent instrumentation.
func GetBufferDeviceAddress(ctx context.Context, v *gpuav.Validator, buffer vulkan.VkBuffer) vulkan.VkDeviceAddress {
	info := vulkan.VkBufferDeviceAddressInfo{Buffer: buffer}
	if v.ApiVersion >= vulkan.ApiVersion1_2 {
		return v.DeviceDispatch.GetBufferDeviceAddress(v.Device, info)
	}
	if v.IsExtensionEnabled(vulkan.EXTBufferDeviceAddressExtensionName) {
		return v.DeviceDispatch.GetBufferDeviceAddressEXT(v.Device, info)
	}
	if v.IsExtensionEnabled(vulkan.KHRBufferDeviceAddressExtensionName) {
		return v.DeviceDispatch.GetBufferDeviceAddressKHR(v.Device, info)
	}
	log.D(ctx, "no buffer device address path for buffer %d", buffer)
	return 0
}
