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

// VkPushConstantRange describes one range of a pipeline layout's push
// constant block.
type VkPushConstantRange struct {
	StageFlags VkShaderStageFlags
	Offset     uint32
	Size       uint32
}

// VkDescriptorImageInfo is the image part of a descriptor write.
type VkDescriptorImageInfo struct {
	Sampler     VkSampler
	ImageView   VkImageView
	ImageLayout VkImageLayout
}

// VkDescriptorBufferInfo is the buffer part of a descriptor write.
type VkDescriptorBufferInfo struct {
	Buffer VkBuffer
	Offset VkDeviceSize
	Range  VkDeviceSize
}

// VkWriteDescriptorSet describes one descriptor write. Slices replace the
// count+pointer pairs of the native struct; only the slice matching
// DescriptorType is consulted.
type VkWriteDescriptorSet struct {
	DstSet          VkDescriptorSet
	DstBinding      uint32
	DstArrayElement uint32
	DescriptorType  VkDescriptorType
	ImageInfo       []VkDescriptorImageInfo
	BufferInfo      []VkDescriptorBufferInfo
	TexelBufferView []VkBufferView
}

// Clone returns a deep copy of the write. The backing arrays of the info
// slices are copied so the result is unaffected by later mutation of w.
func (w VkWriteDescriptorSet) Clone() VkWriteDescriptorSet {
	out := w
	if w.ImageInfo != nil {
		out.ImageInfo = make([]VkDescriptorImageInfo, len(w.ImageInfo))
		copy(out.ImageInfo, w.ImageInfo)
	}
	if w.BufferInfo != nil {
		out.BufferInfo = make([]VkDescriptorBufferInfo, len(w.BufferInfo))
		copy(out.BufferInfo, w.BufferInfo)
	}
	if w.TexelBufferView != nil {
		out.TexelBufferView = make([]VkBufferView, len(w.TexelBufferView))
		copy(out.TexelBufferView, w.TexelBufferView)
	}
	return out
}

// CloneWrites deep-copies a slice of descriptor writes.
// A nil slice stays nil.
func CloneWrites(writes []VkWriteDescriptorSet) []VkWriteDescriptorSet {
	if writes == nil {
		return nil
	}
	out := make([]VkWriteDescriptorSet, len(writes))
	for i, w := range writes {
		out[i] = w.Clone()
	}
	return out
}

// VkBufferDeviceAddressInfo names the buffer whose device address is being
// queried.
type VkBufferDeviceAddressInfo struct {
	Buffer VkBuffer
}
