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

// VkPipelineBindPoint selects which of a command buffer's binding states a
// command addresses.
type VkPipelineBindPoint uint32

const (
	PipelineBindPointGraphics      VkPipelineBindPoint = 0
	PipelineBindPointCompute       VkPipelineBindPoint = 1
	PipelineBindPointRayTracingKHR VkPipelineBindPoint = 1000165000
)

func (b VkPipelineBindPoint) String() string {
	switch b {
	case PipelineBindPointGraphics:
		return "VK_PIPELINE_BIND_POINT_GRAPHICS"
	case PipelineBindPointCompute:
		return "VK_PIPELINE_BIND_POINT_COMPUTE"
	case PipelineBindPointRayTracingKHR:
		return "VK_PIPELINE_BIND_POINT_RAY_TRACING_KHR"
	default:
		return fmt.Sprintf("VkPipelineBindPoint(%d)", uint32(b))
	}
}

// VkShaderStageFlagBits is a single shader stage bit.
type VkShaderStageFlagBits uint32

// VkShaderStageFlags is a mask of VkShaderStageFlagBits.
type VkShaderStageFlags uint32

const (
	ShaderStageVertexBit                 VkShaderStageFlagBits = 0x00000001
	ShaderStageTessellationControlBit    VkShaderStageFlagBits = 0x00000002
	ShaderStageTessellationEvaluationBit VkShaderStageFlagBits = 0x00000004
	ShaderStageGeometryBit               VkShaderStageFlagBits = 0x00000008
	ShaderStageFragmentBit               VkShaderStageFlagBits = 0x00000010
	ShaderStageComputeBit                VkShaderStageFlagBits = 0x00000020
	ShaderStageTaskBitEXT                VkShaderStageFlagBits = 0x00000040
	ShaderStageMeshBitEXT                VkShaderStageFlagBits = 0x00000080

	ShaderStageAllGraphics VkShaderStageFlags = 0x0000001f
	ShaderStageAll         VkShaderStageFlags = 0x7fffffff
)

func (s VkShaderStageFlagBits) String() string {
	switch s {
	case ShaderStageVertexBit:
		return "VK_SHADER_STAGE_VERTEX_BIT"
	case ShaderStageTessellationControlBit:
		return "VK_SHADER_STAGE_TESSELLATION_CONTROL_BIT"
	case ShaderStageTessellationEvaluationBit:
		return "VK_SHADER_STAGE_TESSELLATION_EVALUATION_BIT"
	case ShaderStageGeometryBit:
		return "VK_SHADER_STAGE_GEOMETRY_BIT"
	case ShaderStageFragmentBit:
		return "VK_SHADER_STAGE_FRAGMENT_BIT"
	case ShaderStageComputeBit:
		return "VK_SHADER_STAGE_COMPUTE_BIT"
	case ShaderStageTaskBitEXT:
		return "VK_SHADER_STAGE_TASK_BIT_EXT"
	case ShaderStageMeshBitEXT:
		return "VK_SHADER_STAGE_MESH_BIT_EXT"
	default:
		return fmt.Sprintf("VkShaderStageFlagBits(0x%x)", uint32(s))
	}
}

// VkDescriptorType is the kind of resource a descriptor refers to.
type VkDescriptorType uint32

const (
	DescriptorTypeSampler              VkDescriptorType = 0
	DescriptorTypeCombinedImageSampler VkDescriptorType = 1
	DescriptorTypeSampledImage         VkDescriptorType = 2
	DescriptorTypeStorageImage         VkDescriptorType = 3
	DescriptorTypeUniformTexelBuffer   VkDescriptorType = 4
	DescriptorTypeStorageTexelBuffer   VkDescriptorType = 5
	DescriptorTypeUniformBuffer        VkDescriptorType = 6
	DescriptorTypeStorageBuffer        VkDescriptorType = 7
	DescriptorTypeUniformBufferDynamic VkDescriptorType = 8
	DescriptorTypeStorageBufferDynamic VkDescriptorType = 9
	DescriptorTypeInputAttachment      VkDescriptorType = 10
)

// IsDynamic reports whether descriptors of this type consume a dynamic
// offset at bind time.
func (t VkDescriptorType) IsDynamic() bool {
	return t == DescriptorTypeUniformBufferDynamic || t == DescriptorTypeStorageBufferDynamic
}

// VkImageLayout is the layout an image subresource is kept in.
// Only the layouts descriptor image info can carry are listed.
type VkImageLayout uint32

const (
	ImageLayoutUndefined             VkImageLayout = 0
	ImageLayoutGeneral               VkImageLayout = 1
	ImageLayoutShaderReadOnlyOptimal VkImageLayout = 5
)
