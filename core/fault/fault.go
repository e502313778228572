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

// Package fault provides a simple immutable error type.
//
// Errors declared as fault.Const values are comparable constants, which
// makes them safe to use as package-level sentinel errors without the risk
// of anybody mutating them.
package fault

// Const is the type for constant error values.
type Const string

// Error implements error, returning the string value of the const.
func (e Const) Error() string { return string(e) }
