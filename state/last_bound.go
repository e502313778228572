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

package state

import "github.com/google/gpuav/vulkan"

// GraphicsShaderObjectStages lists the graphics stages that can hold an
// independently bound shader object, in the fixed order captures use.
var GraphicsShaderObjectStages = []vulkan.VkShaderStageFlagBits{
	vulkan.ShaderStageVertexBit,
	vulkan.ShaderStageTessellationControlBit,
	vulkan.ShaderStageTessellationEvaluationBit,
	vulkan.ShaderStageGeometryBit,
	vulkan.ShaderStageFragmentBit,
	vulkan.ShaderStageTaskBitEXT,
	vulkan.ShaderStageMeshBitEXT,
}

// IsGraphicsStage reports whether stage is one of the graphics shader
// object stages.
func IsGraphicsStage(stage vulkan.VkShaderStageFlagBits) bool {
	for _, s := range GraphicsShaderObjectStages {
		if s == stage {
			return true
		}
	}
	return false
}

// BoundDescriptorSet is one slot of a bind point's descriptor set table.
type BoundDescriptorSet struct {
	// Set is the bound handle. It is 0 when the slot is empty or holds the
	// push descriptor set.
	Set vulkan.VkDescriptorSet
	// DynamicOffsets are the offsets consumed for the set when it was bound.
	DynamicOffsets []uint32
	// Push marks the slot as the bind point's push descriptor set.
	Push bool
}

// LastBound is the binding state of one pipeline bind point.
// A bind point is in the pipeline model or the shader object model, never
// both: binding on one side clears the other.
type LastBound struct {
	// Pipeline is the bound pipeline object. It is 0 when the shader object
	// model is active or nothing is bound yet.
	Pipeline vulkan.VkPipeline
	// PipelineLayout is the layout most recently used to bind anything at
	// this bind point.
	PipelineLayout vulkan.VkPipelineLayout
	// PushConstantRanges are the push constant ranges declared by the bound
	// pipeline's layout. Empty when no pipeline is bound.
	PushConstantRanges []vulkan.VkPushConstantRange
	// DescriptorSets is the per-set-index table of bound sets. The table
	// only reaches the highest index bound so far; inner slots may be empty.
	DescriptorSets []BoundDescriptorSet
	// PushDescriptorWrites are the pending writes of the push descriptor
	// slot, if one is marked in DescriptorSets.
	PushDescriptorWrites []vulkan.VkWriteDescriptorSet
	// ShaderObjects are the independently bound per-stage shader objects.
	ShaderObjects map[vulkan.VkShaderStageFlagBits]vulkan.VkShaderEXT
}

// PushDescriptorSetIndex returns the slot index marked as the push
// descriptor set, or -1 when there is none.
func (lb *LastBound) PushDescriptorSetIndex() int {
	for i := range lb.DescriptorSets {
		if lb.DescriptorSets[i].Push {
			return i
		}
	}
	return -1
}

// grow extends the descriptor set table to cover n slots.
func (lb *LastBound) grow(n uint32) {
	for uint32(len(lb.DescriptorSets)) < n {
		lb.DescriptorSets = append(lb.DescriptorSets, BoundDescriptorSet{})
	}
}
