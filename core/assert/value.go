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

package assert

import "reflect"

// OnValue is the result of calling That on an Assertion.
// It provides generic assertion tests that work for any type.
type OnValue struct {
	assertion *Assertion
	value     interface{}
}

// That returns an OnValue for the given untyped value.
func (a *Assertion) That(value interface{}) *OnValue {
	return &OnValue{assertion: a, value: value}
}

// isNil reports whether the wrapped value is nil, either directly or
// through a nil-valued pointer, slice, map, channel or interface.
func (o *OnValue) isNil() bool {
	if o.value == nil {
		return true
	}
	v := reflect.ValueOf(o.value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

// IsNil asserts that the value was a nil.
func (o *OnValue) IsNil() bool {
	return o.assertion.Compare(o.value, "==", nil).Test(o.isNil())
}

// IsNotNil asserts that the value was not a nil.
func (o *OnValue) IsNotNil() bool {
	return o.assertion.Compare(o.value, "!=", nil).Test(!o.isNil())
}

// Equals asserts that the value is equal to the expected value.
// The values are compared with the == operator.
func (o *OnValue) Equals(expect interface{}) bool {
	return o.assertion.Compare(o.value, "==", expect).Test(o.value == expect)
}

// NotEquals asserts that the value is not equal to the unexpected value.
func (o *OnValue) NotEquals(unexpected interface{}) bool {
	return o.assertion.Compare(o.value, "!=", unexpected).Test(o.value != unexpected)
}

// DeepEquals asserts that the value matches the expected value using
// reflect.DeepEqual.
func (o *OnValue) DeepEquals(expect interface{}) bool {
	return o.assertion.TestDeepEqual(o.value, expect)
}

// DeepNotEquals asserts that the value does not match the unexpected value
// using reflect.DeepEqual.
func (o *OnValue) DeepNotEquals(unexpected interface{}) bool {
	return o.assertion.TestDeepNotEqual(o.value, unexpected)
}
