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

// OnSlice is the result of calling ThatSlice on an Assertion.
// It provides assertion tests on slices and arrays.
type OnSlice struct {
	assertion *Assertion
	slice     interface{}
}

// ThatSlice returns an OnSlice for assertions on slice and array objects.
// Calling this with a non slice or array type will result in panics.
func (a *Assertion) ThatSlice(slice interface{}) *OnSlice {
	return &OnSlice{assertion: a, slice: slice}
}

// length returns the length of the underlying slice.
func (o *OnSlice) length() int {
	return reflect.ValueOf(o.slice).Len()
}

// IsEmpty asserts that the slice was of length 0.
func (o *OnSlice) IsEmpty() bool {
	return o.assertion.Compare(o.slice, "len ==", 0).Test(o.length() == 0)
}

// IsNotEmpty asserts that the slice has elements.
func (o *OnSlice) IsNotEmpty() bool {
	return o.assertion.Compare(o.slice, "len >", 0).Test(o.length() > 0)
}

// IsLength asserts that the slice has exactly the specified number of
// elements.
func (o *OnSlice) IsLength(length int) bool {
	return o.assertion.Compare(o.slice, "len ==", length).Test(o.length() == length)
}

// Equals asserts the array or slice matches the expected values, comparing
// each element with the == operator.
func (o *OnSlice) Equals(expected interface{}) bool {
	gv, ev := reflect.ValueOf(o.slice), reflect.ValueOf(expected)
	equal := gv.Len() == ev.Len()
	for i := 0; equal && i < gv.Len(); i++ {
		equal = gv.Index(i).Interface() == ev.Index(i).Interface()
	}
	return o.assertion.Compare(o.slice, "==", expected).Test(equal)
}

// DeepEquals asserts the array or slice matches the expected values using
// reflect.DeepEqual on each element.
func (o *OnSlice) DeepEquals(expected interface{}) bool {
	gv, ev := reflect.ValueOf(o.slice), reflect.ValueOf(expected)
	equal := gv.Len() == ev.Len()
	for i := 0; equal && i < gv.Len(); i++ {
		equal = reflect.DeepEqual(gv.Index(i).Interface(), ev.Index(i).Interface())
	}
	return o.assertion.Compare(o.slice, "deep ==", expected).Test(equal)
}
