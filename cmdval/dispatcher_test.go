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

package cmdval_test

import (
	"github.com/google/gpuav/state"
	"github.com/google/gpuav/vulkan"
)

// One record type per CommandDispatcher entry point.
type (
	bindPipelineCall struct {
		cb        vulkan.VkCommandBuffer
		bindPoint vulkan.VkPipelineBindPoint
		pipeline  vulkan.VkPipeline
	}
	bindDescriptorSetsCall struct {
		cb             vulkan.VkCommandBuffer
		bindPoint      vulkan.VkPipelineBindPoint
		layout         vulkan.VkPipelineLayout
		firstSet       uint32
		sets           []vulkan.VkDescriptorSet
		dynamicOffsets []uint32
	}
	pushDescriptorSetCall struct {
		cb        vulkan.VkCommandBuffer
		bindPoint vulkan.VkPipelineBindPoint
		layout    vulkan.VkPipelineLayout
		set       uint32
		writes    []vulkan.VkWriteDescriptorSet
	}
	pushConstantsCall struct {
		cb         vulkan.VkCommandBuffer
		layout     vulkan.VkPipelineLayout
		stageFlags vulkan.VkShaderStageFlags
		offset     uint32
		values     []byte
	}
	bindShadersCall struct {
		cb      vulkan.VkCommandBuffer
		stages  []vulkan.VkShaderStageFlagBits
		shaders []vulkan.VkShaderEXT
	}
)

// commandRecorder implements vulkan.CommandDispatcher by recording every
// call in issue order.
type commandRecorder struct {
	calls []interface{}
}

func (r *commandRecorder) CmdBindPipeline(cb vulkan.VkCommandBuffer,
	bindPoint vulkan.VkPipelineBindPoint, pipeline vulkan.VkPipeline) {
	r.calls = append(r.calls, bindPipelineCall{cb, bindPoint, pipeline})
}

func (r *commandRecorder) CmdBindDescriptorSets(cb vulkan.VkCommandBuffer,
	bindPoint vulkan.VkPipelineBindPoint, layout vulkan.VkPipelineLayout,
	firstSet uint32, sets []vulkan.VkDescriptorSet, dynamicOffsets []uint32) {
	r.calls = append(r.calls, bindDescriptorSetsCall{cb, bindPoint, layout, firstSet, sets, dynamicOffsets})
}

func (r *commandRecorder) CmdPushDescriptorSetKHR(cb vulkan.VkCommandBuffer,
	bindPoint vulkan.VkPipelineBindPoint, layout vulkan.VkPipelineLayout,
	set uint32, writes []vulkan.VkWriteDescriptorSet) {
	r.calls = append(r.calls, pushDescriptorSetCall{cb, bindPoint, layout, set, writes})
}

func (r *commandRecorder) CmdPushConstants(cb vulkan.VkCommandBuffer,
	layout vulkan.VkPipelineLayout, stageFlags vulkan.VkShaderStageFlags,
	offset uint32, values []byte) {
	r.calls = append(r.calls, pushConstantsCall{cb, layout, stageFlags, offset, values})
}

func (r *commandRecorder) CmdBindShadersEXT(cb vulkan.VkCommandBuffer,
	stages []vulkan.VkShaderStageFlagBits, shaders []vulkan.VkShaderEXT) {
	r.calls = append(r.calls, bindShadersCall{cb, stages, shaders})
}

func (r *commandRecorder) pipelineCalls() []bindPipelineCall {
	var out []bindPipelineCall
	for _, c := range r.calls {
		if c, ok := c.(bindPipelineCall); ok {
			out = append(out, c)
		}
	}
	return out
}

func (r *commandRecorder) descriptorSetCalls() []bindDescriptorSetsCall {
	var out []bindDescriptorSetsCall
	for _, c := range r.calls {
		if c, ok := c.(bindDescriptorSetsCall); ok {
			out = append(out, c)
		}
	}
	return out
}

func (r *commandRecorder) pushDescriptorCalls() []pushDescriptorSetCall {
	var out []pushDescriptorSetCall
	for _, c := range r.calls {
		if c, ok := c.(pushDescriptorSetCall); ok {
			out = append(out, c)
		}
	}
	return out
}

func (r *commandRecorder) pushConstantCalls() []pushConstantsCall {
	var out []pushConstantsCall
	for _, c := range r.calls {
		if c, ok := c.(pushConstantsCall); ok {
			out = append(out, c)
		}
	}
	return out
}

func (r *commandRecorder) shaderCalls() []bindShadersCall {
	var out []bindShadersCall
	for _, c := range r.calls {
		if c, ok := c.(bindShadersCall); ok {
			out = append(out, c)
		}
	}
	return out
}

// replayTracker implements vulkan.CommandDispatcher by applying each call
// to a fresh recording tracker, resolving layout facts from the same
// universe the original state was built in. Restoring through it shows what
// a tracker would record from the replayed command stream.
type replayTracker struct {
	cb              *state.CommandBuffer
	pipelineLayouts map[vulkan.VkPipeline]vulkan.VkPipelineLayout
	layoutRanges    map[vulkan.VkPipelineLayout][]vulkan.VkPushConstantRange
}

func (r *replayTracker) CmdBindPipeline(cb vulkan.VkCommandBuffer,
	bindPoint vulkan.VkPipelineBindPoint, pipeline vulkan.VkPipeline) {
	layout := r.pipelineLayouts[pipeline]
	r.cb.RecordBindPipeline(bindPoint, pipeline, layout, r.layoutRanges[layout])
}

func (r *replayTracker) CmdBindDescriptorSets(cb vulkan.VkCommandBuffer,
	bindPoint vulkan.VkPipelineBindPoint, layout vulkan.VkPipelineLayout,
	firstSet uint32, sets []vulkan.VkDescriptorSet, dynamicOffsets []uint32) {
	r.cb.RecordBindDescriptorSets(bindPoint, layout, firstSet, sets, dynamicOffsets)
}

func (r *replayTracker) CmdPushDescriptorSetKHR(cb vulkan.VkCommandBuffer,
	bindPoint vulkan.VkPipelineBindPoint, layout vulkan.VkPipelineLayout,
	set uint32, writes []vulkan.VkWriteDescriptorSet) {
	r.cb.RecordPushDescriptorSet(bindPoint, layout, set, writes)
}

func (r *replayTracker) CmdPushConstants(cb vulkan.VkCommandBuffer,
	layout vulkan.VkPipelineLayout, stageFlags vulkan.VkShaderStageFlags,
	offset uint32, values []byte) {
	r.cb.RecordPushConstants(layout, r.layoutRanges[layout], stageFlags, offset, values)
}

func (r *replayTracker) CmdBindShadersEXT(cb vulkan.VkCommandBuffer,
	stages []vulkan.VkShaderStageFlagBits, shaders []vulkan.VkShaderEXT) {
	r.cb.RecordBindShaders(stages, shaders)
}

// dynCounts implements state.DescriptorLookup from a plain map.
type dynCounts map[vulkan.VkDescriptorSet]uint32

func (d dynCounts) DynamicDescriptorCount(set vulkan.VkDescriptorSet) uint32 { return d[set] }

// deviceRecorder implements vulkan.DeviceDispatcher, counting calls per
// entry point and answering with a fixed address.
type deviceRecorder struct {
	core, khr, ext int
	device         vulkan.VkDevice
	info           vulkan.VkBufferDeviceAddressInfo
	address        vulkan.VkDeviceAddress
}

func (d *deviceRecorder) GetBufferDeviceAddress(device vulkan.VkDevice,
	info vulkan.VkBufferDeviceAddressInfo) vulkan.VkDeviceAddress {
	d.core++
	d.device, d.info = device, info
	return d.address
}

func (d *deviceRecorder) GetBufferDeviceAddressKHR(device vulkan.VkDevice,
	info vulkan.VkBufferDeviceAddressInfo) vulkan.VkDeviceAddress {
	d.khr++
	d.device, d.info = device, info
	return d.address
}

func (d *deviceRecorder) GetBufferDeviceAddressEXT(device vulkan.VkDevice,
	info vulkan.VkBufferDeviceAddressInfo) vulkan.VkDeviceAddress {
	d.ext++
	d.device, d.info = device, info
	return d.address
}

func (d *deviceRecorder) total() int { return d.core + d.khr + d.ext }
