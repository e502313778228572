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

// Package vulkan holds the Vulkan API vocabulary the instrumentation core
// works in: handle and enum types, the structs that cross the driver-call
// boundary, and the dispatcher interfaces the core issues commands through.
//
// A validation layer sits underneath application-side binding libraries, so
// the types are defined here rather than imported. Handles are plain
// integers; the zero value is VK_NULL_HANDLE.
package vulkan

// Dispatchable and non-dispatchable object handles.
// All are 64-bit; 0 is VK_NULL_HANDLE.
type (
	VkDevice         uint64
	VkCommandBuffer  uint64
	VkPipeline       uint64
	VkPipelineLayout uint64
	VkDescriptorSet  uint64
	VkBuffer         uint64
	VkBufferView     uint64
	VkShaderEXT      uint64
	VkSampler        uint64
	VkImageView      uint64
)

// VkDeviceAddress is a raw GPU-visible virtual address.
type VkDeviceAddress uint64

// VkDeviceSize is a device memory size or offset in bytes.
type VkDeviceSize uint64
