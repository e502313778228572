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

// Package gpuav is the core of a GPU-assisted-validation command stream
// instrumentation layer. It preserves and restores the binding state of a
// recording command buffer around injected validation work, binds the
// diagnostic descriptor data that work reads, and resolves device addresses
// for the buffers it writes.
//
// The heavy machinery lives in the sub-packages:
//
//	vulkan    API vocabulary and the dispatcher contracts
//	state     recording-state tracker for command buffers
//	cmdval    capture/restore, diagnostic set binding, address resolution
//	settings  composition-time configuration
//
// This package carries the validator context that ties a device's
// negotiated capabilities to its dispatch tables.
package gpuav
