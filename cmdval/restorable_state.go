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

	"github.com/google/gpuav/core/log"
	"github.com/google/gpuav/state"
	"github.com/google/gpuav/vulkan"
)

// RestorablePipelineState is a deep snapshot of one bind point of a
// recording command buffer. Capture it before injecting validation
// commands, Restore it after: the replay re-binds exactly what capture
// saw, regardless of what the injected commands bound in between.
type RestorablePipelineState struct {
	dispatch  vulkan.CommandDispatcher
	cb        vulkan.VkCommandBuffer
	bindPoint vulkan.VkPipelineBindPoint
	bindings  capturedBindings
}

// capturedBindings is the captured state of one binding model. A snapshot
// holds exactly one implementation, keeping the pipeline and shader object
// models exclusive.
type capturedBindings interface {
	restore(d vulkan.CommandDispatcher, cb vulkan.VkCommandBuffer, bindPoint vulkan.VkPipelineBindPoint)
}

// Capture snapshots the bound state of cb's bindPoint. Descriptor handles,
// dynamic offsets, pending push descriptor writes and push constant bytes
// are all copied, never referenced: recording between Capture and Restore
// may overwrite the live state.
//
// Only the graphics and compute bind points are modeled; any other bind
// point panics.
func Capture(ctx context.Context, dispatch vulkan.CommandDispatcher,
	cb *state.CommandBuffer, bindPoint vulkan.VkPipelineBindPoint) *RestorablePipelineState {

	lb := cb.LastBound(bindPoint)
	s := &RestorablePipelineState{
		dispatch:  dispatch,
		cb:        cb.Handle,
		bindPoint: bindPoint,
	}
	if lb.Pipeline != 0 {
		s.bindings = capturePipeline(cb, lb)
		log.D(ctx, "captured pipeline state of %v", bindPoint)
	} else {
		s.bindings = captureShaderObjects(lb, bindPoint)
		log.D(ctx, "captured shader object state of %v", bindPoint)
	}
	return s
}

// Restore replays the captured bindings through the dispatcher. It is
// intended to be called once per capture; calling it again re-issues the
// same calls, which is harmless to GPU state but repeats their cost.
func (s *RestorablePipelineState) Restore(ctx context.Context) {
	s.bindings.restore(s.dispatch, s.cb, s.bindPoint)
}

// capturedSet is one bound descriptor set: handle, set index and the
// dynamic offsets it was bound with.
type capturedSet struct {
	set     vulkan.VkDescriptorSet
	index   uint32
	offsets []uint32
}

// pipelineBindings is the pipeline-model snapshot.
type pipelineBindings struct {
	pipeline vulkan.VkPipeline
	layout   vulkan.VkPipelineLayout

	sets []capturedSet

	pushDescriptorSetIndex uint32
	pushDescriptorWrites   []vulkan.VkWriteDescriptorSet

	// Push constant state, captured only when the pipeline layout's
	// declared ranges matched the tracked ones. Replaying bytes against a
	// layout with different ranges would smear them across the wrong
	// stages.
	pushConstantData   []byte
	pushConstantRanges []vulkan.VkPushConstantRange
}

func capturePipeline(cb *state.CommandBuffer, lb *state.LastBound) *pipelineBindings {
	b := &pipelineBindings{
		pipeline: lb.Pipeline,
		layout:   lb.PipelineLayout,
	}
	for i := range lb.DescriptorSets {
		slot := &lb.DescriptorSets[i]
		if slot.Set == 0 {
			continue
		}
		b.sets = append(b.sets, capturedSet{
			set:     slot.Set,
			index:   uint32(i),
			offsets: append([]uint32(nil), slot.DynamicOffsets...),
		})
	}
	if push := lb.PushDescriptorSetIndex(); push >= 0 {
		b.pushDescriptorSetIndex = uint32(push)
		b.pushDescriptorWrites = vulkan.CloneWrites(lb.PushDescriptorWrites)
	}
	if rangesEqual(lb.PushConstantRanges, cb.PushConstantRanges()) {
		b.pushConstantData = append([]byte(nil), cb.PushConstantData()...)
		b.pushConstantRanges = append([]vulkan.VkPushConstantRange(nil), lb.PushConstantRanges...)
	}
	return b
}

func (b *pipelineBindings) restore(d vulkan.CommandDispatcher, cb vulkan.VkCommandBuffer,
	bindPoint vulkan.VkPipelineBindPoint) {

	d.CmdBindPipeline(cb, bindPoint, b.pipeline)

	// One call per set: captured sets need not be contiguous.
	for _, s := range b.sets {
		d.CmdBindDescriptorSets(cb, bindPoint, b.layout, s.index,
			[]vulkan.VkDescriptorSet{s.set}, s.offsets)
	}

	if len(b.pushDescriptorWrites) > 0 {
		d.CmdPushDescriptorSetKHR(cb, bindPoint, b.layout,
			b.pushDescriptorSetIndex, b.pushDescriptorWrites)
	}

	if len(b.pushConstantData) > 0 {
		for _, r := range b.pushConstantRanges {
			if r.Size == 0 {
				continue
			}
			d.CmdPushConstants(cb, b.layout, r.StageFlags, r.Offset,
				b.pushConstantData[r.Offset:r.Offset+r.Size])
		}
	}
}

// shaderObjectBindings is the shader-object-model snapshot: parallel stage
// and handle lists in fixed stage order.
type shaderObjectBindings struct {
	stages  []vulkan.VkShaderStageFlagBits
	shaders []vulkan.VkShaderEXT
}

func captureShaderObjects(lb *state.LastBound, bindPoint vulkan.VkPipelineBindPoint) *shaderObjectBindings {
	b := &shaderObjectBindings{}
	if bindPoint == vulkan.PipelineBindPointGraphics {
		for _, stage := range state.GraphicsShaderObjectStages {
			if shader, ok := lb.ShaderObjects[stage]; ok {
				b.stages = append(b.stages, stage)
				b.shaders = append(b.shaders, shader)
			}
		}
		return b
	}
	if shader, ok := lb.ShaderObjects[vulkan.ShaderStageComputeBit]; ok {
		b.stages = append(b.stages, vulkan.ShaderStageComputeBit)
		b.shaders = append(b.shaders, shader)
	}
	return b
}

func (b *shaderObjectBindings) restore(d vulkan.CommandDispatcher, cb vulkan.VkCommandBuffer,
	bindPoint vulkan.VkPipelineBindPoint) {

	if len(b.stages) == 0 {
		return
	}
	// All stages go back in a single batched call.
	d.CmdBindShadersEXT(cb, b.stages, b.shaders)
}

// rangesEqual reports element-wise equality of two push constant range
// lists.
func rangesEqual(a, b []vulkan.VkPushConstantRange) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
