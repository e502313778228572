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
	"testing"

	"github.com/google/gpuav/cmdval"
	"github.com/google/gpuav/core/assert"
	"github.com/google/gpuav/core/log"
	"github.com/google/gpuav/state"
	"github.com/google/gpuav/vulkan"
)

const cbHandle = vulkan.VkCommandBuffer(0x1000)

func TestRestoreReplaysPipelineState(t *testing.T) {
	ctx := log.Testing(t)
	setA, setB := vulkan.VkDescriptorSet(0xa), vulkan.VkDescriptorSet(0xb)
	layout := vulkan.VkPipelineLayout(0x99)
	ranges := []vulkan.VkPushConstantRange{{StageFlags: vulkan.VkShaderStageFlags(vulkan.ShaderStageVertexBit), Offset: 0, Size: 8}}

	cb := state.NewCommandBuffer(cbHandle, dynCounts{setA: 1, setB: 0})
	cb.RecordBindPipeline(vulkan.PipelineBindPointGraphics, 0x41, layout, ranges)
	cb.RecordBindDescriptorSets(vulkan.PipelineBindPointGraphics, layout, 0, []vulkan.VkDescriptorSet{setA}, []uint32{64})
	cb.RecordBindDescriptorSets(vulkan.PipelineBindPointGraphics, layout, 2, []vulkan.VkDescriptorSet{setB}, nil)
	cb.RecordPushConstants(layout, ranges, ranges[0].StageFlags, 0, []byte{1, 2, 3, 4, 5, 6, 7, 8})

	r := &commandRecorder{}
	snapshot := cmdval.Capture(ctx, r, cb, vulkan.PipelineBindPointGraphics)
	snapshot.Restore(ctx)

	assert.For(ctx, "calls").That(r.calls).DeepEquals([]interface{}{
		bindPipelineCall{cbHandle, vulkan.PipelineBindPointGraphics, 0x41},
		bindDescriptorSetsCall{cbHandle, vulkan.PipelineBindPointGraphics, layout, 0,
			[]vulkan.VkDescriptorSet{setA}, []uint32{64}},
		bindDescriptorSetsCall{cbHandle, vulkan.PipelineBindPointGraphics, layout, 2,
			[]vulkan.VkDescriptorSet{setB}, nil},
		pushConstantsCall{cbHandle, layout, ranges[0].StageFlags, 0,
			[]byte{1, 2, 3, 4, 5, 6, 7, 8}},
	})
}

func TestCaptureIsIsolatedFromLaterRecording(t *testing.T) {
	ctx := log.Testing(t)
	setA, setC := vulkan.VkDescriptorSet(0xa), vulkan.VkDescriptorSet(0xc)
	layout := vulkan.VkPipelineLayout(0x99)
	ranges := []vulkan.VkPushConstantRange{{StageFlags: vulkan.ShaderStageAllGraphics, Offset: 0, Size: 4}}

	cb := state.NewCommandBuffer(cbHandle, dynCounts{setA: 1, setC: 1})
	cb.RecordBindPipeline(vulkan.PipelineBindPointGraphics, 0x41, layout, ranges)
	cb.RecordBindDescriptorSets(vulkan.PipelineBindPointGraphics, layout, 0, []vulkan.VkDescriptorSet{setA}, []uint32{64})
	cb.RecordPushConstants(layout, ranges, ranges[0].StageFlags, 0, []byte{1, 2, 3, 4})

	r := &commandRecorder{}
	snapshot := cmdval.Capture(ctx, r, cb, vulkan.PipelineBindPointGraphics)

	// Injected commands rebind the same slots before the restore runs.
	cb.RecordBindPipeline(vulkan.PipelineBindPointGraphics, 0x42, layout, ranges)
	cb.RecordBindDescriptorSets(vulkan.PipelineBindPointGraphics, layout, 0, []vulkan.VkDescriptorSet{setC}, []uint32{128})
	cb.RecordPushConstants(layout, ranges, ranges[0].StageFlags, 0, []byte{9, 9, 9, 9})

	snapshot.Restore(ctx)

	pipelines := r.pipelineCalls()
	assert.For(ctx, "pipeline calls").ThatSlice(pipelines).IsLength(1)
	assert.For(ctx, "pipeline").That(pipelines[0].pipeline).Equals(vulkan.VkPipeline(0x41))

	sets := r.descriptorSetCalls()
	assert.For(ctx, "set calls").ThatSlice(sets).IsLength(1)
	assert.For(ctx, "set").ThatSlice(sets[0].sets).Equals([]vulkan.VkDescriptorSet{setA})
	assert.For(ctx, "offsets").ThatSlice(sets[0].dynamicOffsets).Equals([]uint32{64})

	pushes := r.pushConstantCalls()
	assert.For(ctx, "push calls").ThatSlice(pushes).IsLength(1)
	assert.For(ctx, "bytes").ThatSlice(pushes[0].values).Equals([]byte{1, 2, 3, 4})
}

func TestMismatchedPushConstantRangesAreSuppressed(t *testing.T) {
	ctx := log.Testing(t)
	layout := vulkan.VkPipelineLayout(0x99)
	pipelineRanges := []vulkan.VkPushConstantRange{{StageFlags: vulkan.VkShaderStageFlags(vulkan.ShaderStageVertexBit), Offset: 0, Size: 8}}
	pushedRanges := []vulkan.VkPushConstantRange{{StageFlags: vulkan.VkShaderStageFlags(vulkan.ShaderStageFragmentBit), Offset: 0, Size: 8}}

	cb := state.NewCommandBuffer(cbHandle, dynCounts{})
	cb.RecordPushConstants(0x98, pushedRanges, pushedRanges[0].StageFlags, 0, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	cb.RecordBindPipeline(vulkan.PipelineBindPointGraphics, 0x41, layout, pipelineRanges)

	r := &commandRecorder{}
	cmdval.Capture(ctx, r, cb, vulkan.PipelineBindPointGraphics).Restore(ctx)

	assert.For(ctx, "push calls").ThatSlice(r.pushConstantCalls()).IsEmpty()
	assert.For(ctx, "pipeline still restored").ThatSlice(r.pipelineCalls()).IsLength(1)
}

func TestPushDescriptorWritesAreReplayed(t *testing.T) {
	ctx := log.Testing(t)
	layout := vulkan.VkPipelineLayout(0x99)
	writes := []vulkan.VkWriteDescriptorSet{{
		DstBinding:     0,
		DescriptorType: vulkan.DescriptorTypeUniformBuffer,
		BufferInfo:     []vulkan.VkDescriptorBufferInfo{{Buffer: 0x20, Offset: 0, Range: 64}},
	}}

	cb := state.NewCommandBuffer(cbHandle, dynCounts{})
	cb.RecordBindPipeline(vulkan.PipelineBindPointGraphics, 0x41, layout, nil)
	cb.RecordPushDescriptorSet(vulkan.PipelineBindPointGraphics, layout, 1, writes)

	r := &commandRecorder{}
	snapshot := cmdval.Capture(ctx, r, cb, vulkan.PipelineBindPointGraphics)

	// Injected work pushes its own descriptors over the same slot.
	cb.RecordPushDescriptorSet(vulkan.PipelineBindPointGraphics, layout, 1,
		[]vulkan.VkWriteDescriptorSet{{
			DstBinding:     0,
			DescriptorType: vulkan.DescriptorTypeStorageBuffer,
			BufferInfo:     []vulkan.VkDescriptorBufferInfo{{Buffer: 0x77, Range: 16}},
		}})

	snapshot.Restore(ctx)

	pushed := r.pushDescriptorCalls()
	assert.For(ctx, "push descriptor calls").ThatSlice(pushed).IsLength(1)
	assert.For(ctx, "set index").That(pushed[0].set).Equals(uint32(1))
	assert.For(ctx, "writes").That(pushed[0].writes).DeepEquals(writes)
}

func TestComputeShaderObjectRestoreIsOneBatchedCall(t *testing.T) {
	ctx := log.Testing(t)
	cb := state.NewCommandBuffer(cbHandle, dynCounts{})
	cb.RecordBindShaders(
		[]vulkan.VkShaderStageFlagBits{vulkan.ShaderStageComputeBit},
		[]vulkan.VkShaderEXT{0x61})

	r := &commandRecorder{}
	cmdval.Capture(ctx, r, cb, vulkan.PipelineBindPointCompute).Restore(ctx)

	assert.For(ctx, "calls").That(r.calls).DeepEquals([]interface{}{
		bindShadersCall{cbHandle,
			[]vulkan.VkShaderStageFlagBits{vulkan.ShaderStageComputeBit},
			[]vulkan.VkShaderEXT{0x61}},
	})
}

func TestGraphicsShaderObjectsRestoreInStageOrder(t *testing.T) {
	ctx := log.Testing(t)
	cb := state.NewCommandBuffer(cbHandle, dynCounts{})
	// Bound fragment first; the capture order is the fixed stage order.
	cb.RecordBindShaders(
		[]vulkan.VkShaderStageFlagBits{vulkan.ShaderStageFragmentBit},
		[]vulkan.VkShaderEXT{0x52})
	cb.RecordBindShaders(
		[]vulkan.VkShaderStageFlagBits{vulkan.ShaderStageVertexBit},
		[]vulkan.VkShaderEXT{0x51})

	r := &commandRecorder{}
	cmdval.Capture(ctx, r, cb, vulkan.PipelineBindPointGraphics).Restore(ctx)

	shaders := r.shaderCalls()
	assert.For(ctx, "shader calls").ThatSlice(shaders).IsLength(1)
	assert.For(ctx, "stages").ThatSlice(shaders[0].stages).Equals(
		[]vulkan.VkShaderStageFlagBits{vulkan.ShaderStageVertexBit, vulkan.ShaderStageFragmentBit})
	assert.For(ctx, "handles").ThatSlice(shaders[0].shaders).Equals(
		[]vulkan.VkShaderEXT{0x51, 0x52})
}

func TestEmptyBindPointRestoresNothing(t *testing.T) {
	ctx := log.Testing(t)
	cb := state.NewCommandBuffer(cbHandle, dynCounts{})

	r := &commandRecorder{}
	cmdval.Capture(ctx, r, cb, vulkan.PipelineBindPointGraphics).Restore(ctx)

	assert.For(ctx, "calls").ThatSlice(r.calls).IsEmpty()
}

func TestRestoreTwiceReissuesTheSameCalls(t *testing.T) {
	ctx := log.Testing(t)
	cb := state.NewCommandBuffer(cbHandle, dynCounts{})
	cb.RecordBindShaders(
		[]vulkan.VkShaderStageFlagBits{vulkan.ShaderStageComputeBit},
		[]vulkan.VkShaderEXT{0x61})

	r := &commandRecorder{}
	snapshot := cmdval.Capture(ctx, r, cb, vulkan.PipelineBindPointCompute)
	snapshot.Restore(ctx)
	snapshot.Restore(ctx)

	shaders := r.shaderCalls()
	assert.For(ctx, "shader calls").ThatSlice(shaders).IsLength(2)
	assert.For(ctx, "same call").That(shaders[0]).DeepEquals(shaders[1])
}

func TestCaptureRejectsUnmodeledBindPoints(t *testing.T) {
	ctx := log.Testing(t)
	cb := state.NewCommandBuffer(cbHandle, dynCounts{})
	defer func() {
		if recover() == nil {
			t.Error("ray tracing bind point did not panic")
		}
	}()
	cmdval.Capture(ctx, &commandRecorder{}, cb, vulkan.PipelineBindPointRayTracingKHR)
}
