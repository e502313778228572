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

package vulkan

import "fmt"

// ApiVersion is a Vulkan version number packed in the VK_MAKE_API_VERSION
// layout: variant in the top 3 bits, then 7 bits of major, 10 bits of minor
// and 12 bits of patch.
type ApiVersion uint32

const (
	ApiVersion1_0 ApiVersion = 1 << 22
	ApiVersion1_1 ApiVersion = 1<<22 | 1<<12
	ApiVersion1_2 ApiVersion = 1<<22 | 2<<12
	ApiVersion1_3 ApiVersion = 1<<22 | 3<<12
)

// MakeApiVersion packs the given version components.
func MakeApiVersion(variant, major, minor, patch uint32) ApiVersion {
	return ApiVersion(variant<<29 | major<<22 | minor<<12 | patch)
}

// Variant returns the variant component of the version.
func (v ApiVersion) Variant() uint32 { return uint32(v >> 29) }

// Major returns the major component of the version.
func (v ApiVersion) Major() uint32 { return uint32(v>>22) & 0x7f }

// Minor returns the minor component of the version.
func (v ApiVersion) Minor() uint32 { return uint32(v>>12) & 0x3ff }

// Patch returns the patch component of the version.
func (v ApiVersion) Patch() uint32 { return uint32(v) & 0xfff }

func (v ApiVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}
