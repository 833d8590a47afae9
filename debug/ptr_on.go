// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build debug

package debug

import (
	"reflect"
	"unsafe"
)

var ptrThreshold = envPtrThreshold()

// SetPtrThreshold changes the highest rejected address and returns the
// previous value.
func SetPtrThreshold(t uintptr) uintptr {
	prev := ptrThreshold
	ptrThreshold = t
	return prev
}

// AssertValidPtr reports p if its address is not above the pointer
// threshold. nil always fails.
//
// p may be a pointer, unsafe.Pointer, map, chan, func or slice, or a raw
// address. Raw addresses must be passed as a uintptr or an integer: an
// unsafe.Pointer cannot legally hold an address in the first page.
// Any other value is invalid.
//
// This is a heuristic: it catches pointers derived from nil, not dangling
// ones.
func AssertValidPtr(p interface{}) int {
	return checkPtr(p, false, "AssertValidPtr", 1)
}

// AssertValidPtrOrNil is AssertValidPtr but also accepts nil.
func AssertValidPtrOrNil(p interface{}) int {
	return checkPtr(p, true, "AssertValidPtrOrNil", 1)
}

// AssertValidObj checks that o is a valid pointer and that it holds a T.
// It stops at the first failing check.
func AssertValidObj[T any](o interface{}) int {
	if rc := checkPtr(o, false, "AssertValidObj", 1); rc != 0 {
		return rc
	}
	if _, ok := o.(T); ok {
		return 0
	}
	return objFailed(typeName[T](), 1)
}

func checkPtr(p interface{}, allowNil bool, fn string, depth int) int {
	addr, ok := address(p)
	if ok && (addr > ptrThreshold || (allowNil && addr == 0)) {
		return 0
	}
	return invalidPtr(addr, fn, depth+1)
}

//go:noinline
func invalidPtr(addr uintptr, fn string, depth int) int {
	r := callSite(depth)
	r.Kind = KindInvalidPtr
	r.Name = condText(r.File, r.Line, fn)
	r.Addr = addr
	return handler.InvalidPtr(&r)
}

//go:noinline
func objFailed(typ string, depth int) int {
	r := callSite(depth)
	r.Kind = KindInvalidObj
	r.Name = typ
	if expr := condText(r.File, r.Line, "AssertValidObj"); expr != "" {
		r.Cond = expr + ".(" + typ + ")"
	}
	return handler.Assert(&r)
}

// address returns the numeric address held by p. ok is false when p is not
// something that can hold an address.
func address(p interface{}) (addr uintptr, ok bool) {
	switch v := p.(type) {
	case nil:
		return 0, true
	case uintptr:
		return v, true
	case unsafe.Pointer:
		return uintptr(v), true
	}

	rv := reflect.ValueOf(p)
	switch rv.Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		return rv.Pointer(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if i := rv.Int(); i >= 0 {
			return uintptr(i), true
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uintptr(rv.Uint()), true
	}
	return 0, false
}
