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
	"fmt"

	"github.com/google/gpuav/settings"
	"github.com/google/gpuav/state"
	"github.com/google/gpuav/vulkan"
)

// indexSlotBytes is the stride of one entry in the command index and error
// logger tables.
const indexSlotBytes = 4

// CommonSetBinder binds the diagnostic common descriptor set that injected
// validation commands read their table indices from. One static set per
// command buffer serves every injected command: only the two dynamic
// offsets vary, so instrumentation causes no descriptor allocation.
type CommonSetBinder struct {
	dispatch vulkan.CommandDispatcher
	setIndex uint32
	slots    uint32
}

// NewCommonSetBinder returns a binder for the reserved set index and table
// sizing in s.
func NewCommonSetBinder(dispatch vulkan.CommandDispatcher, s settings.Settings) *CommonSetBinder {
	return &CommonSetBinder{
		dispatch: dispatch,
		setIndex: s.DiagCommonSetIndex,
		slots:    s.DiagIndexSlots,
	}
}

// Bind binds cb's diagnostic common set at the reserved set index with
// dynamic offsets selecting the cmdIndex'th command table slot and the
// errorLoggerIndex'th error logger slot. Indices at or beyond the table
// size are a caller bug.
func (b *CommonSetBinder) Bind(ctx context.Context, cb *state.CommandBuffer,
	bindPoint vulkan.VkPipelineBindPoint, layout vulkan.VkPipelineLayout,
	cmdIndex, errorLoggerIndex uint32) {

	if cmdIndex >= b.slots {
		panic(fmt.Errorf("command index %d outside the %d slot table", cmdIndex, b.slots))
	}
	if errorLoggerIndex >= b.slots {
		panic(fmt.Errorf("error logger index %d outside the %d slot table", errorLoggerIndex, b.slots))
	}
	offsets := []uint32{cmdIndex * indexSlotBytes, errorLoggerIndex * indexSlotBytes}
	b.dispatch.CmdBindDescriptorSets(cb.Handle, bindPoint, layout, b.setIndex,
		[]vulkan.VkDescriptorSet{cb.DiagCommonSet}, offsets)
}
