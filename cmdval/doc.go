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

// Package cmdval provides the primitives validation command injection is
// built from.
//
// Injected commands run inside an application's command buffer, so they
// must leave no trace on its binding state: RestorablePipelineState deep
// snapshots the bound state of one bind point before injection and replays
// it afterwards. The injected work itself reads two rotating table indices
// from the diagnostic common descriptor set, bound by CommonSetBinder with
// per-command dynamic offsets. GetBufferDeviceAddress gives injected work a
// raw device pointer to a buffer, probing the capability paths the device
// actually has.
package cmdval
