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

// Package settings holds the composition-time knobs of the instrumentation
// core: the reserved diagnostic descriptor set index and the sizing of the
// rotating index tables. Values come from defaults, then an optional YAML
// settings file, then environment overrides, in that order.
package settings

import (
	"os"
	"strconv"

	"github.com/google/gpuav/core/fault"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// ErrNoSlots indicates a zero diagnostic index slot count.
	ErrNoSlots = fault.Const("diagnostic index slot count must be non-zero")
	// ErrSetIndexRange indicates an implausibly large reserved set index.
	ErrSetIndexRange = fault.Const("diagnostic set index out of range")
)

// Environment variables recognized by FromEnv.
const (
	EnvDiagSetIndex   = "GPUAV_DIAG_SET_INDEX"
	EnvDiagIndexSlots = "GPUAV_DIAG_INDEX_SLOTS"
	EnvVerbose        = "GPUAV_VERBOSE"
)

// Settings configures the instrumentation core.
type Settings struct {
	// DiagCommonSetIndex is the reserved descriptor set index the diagnostic
	// common set binds at. It must stay clear of application set indices and
	// agree with the instrumented shaders.
	DiagCommonSetIndex uint32 `yaml:"diag_common_set_index"`
	// DiagIndexSlots is the number of slots in the command index and error
	// logger tables. Diagnostic indices must stay below it.
	DiagIndexSlots uint32 `yaml:"diag_index_slots"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// Default returns the stock settings.
func Default() Settings {
	return Settings{
		DiagCommonSetIndex: 7,
		DiagIndexSlots:     4096,
	}
}

// Load reads settings from a YAML file, starting from defaults so omitted
// keys keep their stock values. A missing file is not an error: defaults
// are returned.
func Load(path string) (Settings, error) {
	s := Default()
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, errors.Wrapf(err, "reading settings file %s", path)
	}
	if err := yaml.Unmarshal(content, &s); err != nil {
		return Default(), errors.Wrapf(err, "parsing settings file %s", path)
	}
	return s, nil
}

// FromEnv returns a copy of s with any environment overrides applied.
// lookup follows the os.LookupEnv contract.
func (s Settings) FromEnv(lookup func(key string) (string, bool)) (Settings, error) {
	if v, ok := lookup(EnvDiagSetIndex); ok {
		index, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return s, errors.Wrapf(err, "parsing %s", EnvDiagSetIndex)
		}
		s.DiagCommonSetIndex = uint32(index)
	}
	if v, ok := lookup(EnvDiagIndexSlots); ok {
		slots, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return s, errors.Wrapf(err, "parsing %s", EnvDiagIndexSlots)
		}
		s.DiagIndexSlots = uint32(slots)
	}
	if v, ok := lookup(EnvVerbose); ok {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return s, errors.Wrapf(err, "parsing %s", EnvVerbose)
		}
		s.Verbose = verbose
	}
	return s, nil
}

// FromOSEnv is FromEnv over the process environment.
func (s Settings) FromOSEnv() (Settings, error) {
	return s.FromEnv(os.LookupEnv)
}

// Validate checks the settings are usable.
func (s Settings) Validate() error {
	if s.DiagIndexSlots == 0 {
		return errors.WithStack(ErrNoSlots)
	}
	// No implementation exposes this many descriptor sets.
	if s.DiagCommonSetIndex >= 32 {
		return errors.Wrapf(ErrSetIndexRange, "set index %d", s.DiagCommonSetIndex)
	}
	return nil
}
