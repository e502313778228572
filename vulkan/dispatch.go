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

// CommandDispatcher issues command-buffer recording calls into the next
// layer of the dispatch chain. Argument shapes follow the native API, with
// slices standing in for count+pointer pairs.
//
// Implementations are provided by the surrounding system (ultimately the
// driver); tests substitute recording fakes.
type CommandDispatcher interface {
	CmdBindPipeline(cb VkCommandBuffer, bindPoint VkPipelineBindPoint, pipeline VkPipeline)

	CmdBindDescriptorSets(cb VkCommandBuffer, bindPoint VkPipelineBindPoint,
		layout VkPipelineLayout, firstSet uint32,
		sets []VkDescriptorSet, dynamicOffsets []uint32)

	CmdPushDescriptorSetKHR(cb VkCommandBuffer, bindPoint VkPipelineBindPoint,
		layout VkPipelineLayout, set uint32, writes []VkWriteDescriptorSet)

	CmdPushConstants(cb VkCommandBuffer, layout VkPipelineLayout,
		stageFlags VkShaderStageFlags, offset uint32, values []byte)

	CmdBindShadersEXT(cb VkCommandBuffer, stages []VkShaderStageFlagBits, shaders []VkShaderEXT)
}

// DeviceDispatcher issues device-level queries into the next layer of the
// dispatch chain. The three buffer-device-address entry points are distinct
// driver symbols; which one is callable depends on the negotiated API
// version and the extensions enabled at device creation.
type DeviceDispatcher interface {
	GetBufferDeviceAddress(device VkDevice, info VkBufferDeviceAddressInfo) VkDeviceAddress
	GetBufferDeviceAddressKHR(device VkDevice, info VkBufferDeviceAddressInfo) VkDeviceAddress
	GetBufferDeviceAddressEXT(device VkDevice, info VkBufferDeviceAddressInfo) VkDeviceAddress
}
