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

// Package state tracks the binding state of a recording command buffer.
//
// The tracker mirrors the recording calls it observes through the Record
// methods and answers the questions instrumentation asks: what is bound at
// a bind point, what bytes have been pushed, and with which layout. It is
// CPU-side bookkeeping only and issues no driver calls.
//
// A command buffer records on a single goroutine; the tracker relies on
// that and takes no locks.
package state

import (
	"fmt"

	"github.com/google/gpuav/vulkan"
)

// DescriptorLookup answers layout questions about descriptor sets. It is
// implemented by the surrounding resource tracker, which owns descriptor
// set state.
type DescriptorLookup interface {
	// DynamicDescriptorCount returns how many dynamic offsets binding set
	// consumes.
	DynamicDescriptorCount(set vulkan.VkDescriptorSet) uint32
}

// CommandBuffer is the tracked recording state of one command buffer.
type CommandBuffer struct {
	// Handle is the command buffer being recorded.
	Handle vulkan.VkCommandBuffer

	// DiagCommonSet is the diagnostic common descriptor set the resource
	// manager allocated for this command buffer.
	DiagCommonSet vulkan.VkDescriptorSet

	graphics LastBound
	compute  LastBound

	pushConstantData   []byte
	pushConstantRanges []vulkan.VkPushConstantRange

	lookup DescriptorLookup
}

// NewCommandBuffer returns a tracker for the given command buffer handle.
// lookup resolves descriptor set layout facts during recording.
func NewCommandBuffer(handle vulkan.VkCommandBuffer, lookup DescriptorLookup) *CommandBuffer {
	return &CommandBuffer{Handle: handle, lookup: lookup}
}

// LastBound returns the binding state of the given bind point. Only the
// graphics and compute bind points are modeled; anything else is a caller
// bug.
func (cb *CommandBuffer) LastBound(bindPoint vulkan.VkPipelineBindPoint) *LastBound {
	switch bindPoint {
	case vulkan.PipelineBindPointGraphics:
		return &cb.graphics
	case vulkan.PipelineBindPointCompute:
		return &cb.compute
	default:
		panic(fmt.Errorf("unsupported pipeline bind point %v", bindPoint))
	}
}

// PushConstantData returns the bytes pushed so far.
func (cb *CommandBuffer) PushConstantData() []byte {
	return cb.pushConstantData
}

// PushConstantRanges returns the declared ranges of the layout most
// recently used to push constants.
func (cb *CommandBuffer) PushConstantRanges() []vulkan.VkPushConstantRange {
	return cb.pushConstantRanges
}

// RecordBindPipeline tracks a CmdBindPipeline call. The pipeline's layout
// handle and the layout's declared push constant ranges come from the
// resource tracker. Binding a pipeline unbinds any shader objects at the
// same bind point.
func (cb *CommandBuffer) RecordBindPipeline(bindPoint vulkan.VkPipelineBindPoint,
	pipeline vulkan.VkPipeline, layout vulkan.VkPipelineLayout,
	layoutRanges []vulkan.VkPushConstantRange) {

	lb := cb.LastBound(bindPoint)
	lb.Pipeline = pipeline
	lb.PipelineLayout = layout
	lb.PushConstantRanges = append([]vulkan.VkPushConstantRange(nil), layoutRanges...)
	lb.ShaderObjects = nil
}

// RecordBindDescriptorSets tracks a CmdBindDescriptorSets call. Dynamic
// offsets are consumed in set order, each set taking as many as the lookup
// reports for it. Supplying too few offsets is a caller bug.
func (cb *CommandBuffer) RecordBindDescriptorSets(bindPoint vulkan.VkPipelineBindPoint,
	layout vulkan.VkPipelineLayout, firstSet uint32,
	sets []vulkan.VkDescriptorSet, dynamicOffsets []uint32) {

	lb := cb.LastBound(bindPoint)
	lb.PipelineLayout = layout
	lb.grow(firstSet + uint32(len(sets)))
	remaining := dynamicOffsets
	for i, set := range sets {
		index := firstSet + uint32(i)
		count := cb.lookup.DynamicDescriptorCount(set)
		if uint32(len(remaining)) < count {
			panic(fmt.Errorf("set %d needs %d dynamic offsets, %d remain", index, count, len(remaining)))
		}
		slot := &lb.DescriptorSets[index]
		if slot.Push {
			lb.PushDescriptorWrites = nil
		}
		slot.Set = set
		slot.DynamicOffsets = append([]uint32(nil), remaining[:count]...)
		slot.Push = false
		remaining = remaining[count:]
	}
}

// RecordPushDescriptorSet tracks a CmdPushDescriptorSetKHR call. The slot
// becomes the bind point's push descriptor set and the writes replace any
// previously pushed ones. The writes are deep-copied: the caller's slice
// stays its own.
func (cb *CommandBuffer) RecordPushDescriptorSet(bindPoint vulkan.VkPipelineBindPoint,
	layout vulkan.VkPipelineLayout, set uint32, writes []vulkan.VkWriteDescriptorSet) {

	lb := cb.LastBound(bindPoint)
	lb.PipelineLayout = layout
	lb.grow(set + 1)
	for i := range lb.DescriptorSets {
		lb.DescriptorSets[i].Push = uint32(i) == set
	}
	slot := &lb.DescriptorSets[set]
	slot.Set = 0
	slot.DynamicOffsets = nil
	lb.PushDescriptorWrites = vulkan.CloneWrites(writes)
}

// RecordPushConstants tracks a CmdPushConstants call, growing the tracked
// byte blob and adopting the pushing layout's declared ranges. The blob is
// padded with zeros out to the end of every declared range, so the range
// contents are always addressable.
func (cb *CommandBuffer) RecordPushConstants(layout vulkan.VkPipelineLayout,
	layoutRanges []vulkan.VkPushConstantRange, stageFlags vulkan.VkShaderStageFlags,
	offset uint32, values []byte) {

	end := int(offset) + len(values)
	for _, r := range layoutRanges {
		if rangeEnd := int(r.Offset) + int(r.Size); rangeEnd > end {
			end = rangeEnd
		}
	}
	if end > len(cb.pushConstantData) {
		grown := make([]byte, end)
		copy(grown, cb.pushConstantData)
		cb.pushConstantData = grown
	}
	copy(cb.pushConstantData[offset:], values)
	cb.pushConstantRanges = append([]vulkan.VkPushConstantRange(nil), layoutRanges...)
}

// RecordBindShaders tracks a CmdBindShadersEXT call. stages and shaders are
// parallel; a null shader unbinds its stage. Binding shader objects, null
// or not, unbinds the pipeline at each stage's bind point.
func (cb *CommandBuffer) RecordBindShaders(stages []vulkan.VkShaderStageFlagBits, shaders []vulkan.VkShaderEXT) {
	if len(stages) != len(shaders) {
		panic(fmt.Errorf("%d stages for %d shaders", len(stages), len(shaders)))
	}
	for i, stage := range stages {
		var lb *LastBound
		switch {
		case stage == vulkan.ShaderStageComputeBit:
			lb = &cb.compute
		case IsGraphicsStage(stage):
			lb = &cb.graphics
		default:
			panic(fmt.Errorf("stage %v cannot hold a shader object", stage))
		}
		lb.Pipeline = 0
		lb.PushConstantRanges = nil
		if shaders[i] == 0 {
			delete(lb.ShaderObjects, stage)
			continue
		}
		if lb.ShaderObjects == nil {
			lb.ShaderObjects = map[vulkan.VkShaderStageFlagBits]vulkan.VkShaderEXT{}
		}
		lb.ShaderObjects[stage] = shaders[i]
	}
}
