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
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/slices"
)

// instances maps a reflect.Type to its *atomic.Int64 live count.
var instances sync.Map

func counter[T any]() *atomic.Int64 {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if c, ok := instances.Load(t); ok {
		return c.(*atomic.Int64)
	}
	c, _ := instances.LoadOrStore(t, new(atomic.Int64))
	return c.(*atomic.Int64)
}

// NewInstance counts a new live T. Call it where T values are constructed.
func NewInstance[T any]() { counter[T]().Add(1) }

// DeleteInstance counts a destroyed T. Call it where T values are released.
func DeleteInstance[T any]() { counter[T]().Add(-1) }

// InstanceCount returns the number of live T. It only exists in debug
// builds.
func InstanceCount[T any]() int64 { return counter[T]().Load() }

// AssertZeroInstances reports a failure if any T is still alive, or if more
// were deleted than created.
func AssertZeroInstances[T any]() int {
	n := InstanceCount[T]()
	if n == 0 {
		return 0
	}
	return leaked(typeName[T](), n, 1)
}

//go:noinline
func leaked(typ string, n int64, depth int) int {
	r := callSite(depth)
	r.Kind = KindLeak
	r.Name = typ
	r.Count = n
	return handler.Assert(&r)
}

// InstanceInfo is the live count of one tracked type.
type InstanceInfo struct {
	Type  reflect.Type
	Count int64
}

// Instances returns every tracked type with a non-zero count, sorted by
// type name.
func Instances() []InstanceInfo {
	var out []InstanceInfo
	instances.Range(func(k, v interface{}) bool {
		if n := v.(*atomic.Int64).Load(); n != 0 {
			out = append(out, InstanceInfo{Type: k.(reflect.Type), Count: n})
		}
		return true
	})
	slices.SortFunc(out, func(a, b InstanceInfo) int {
		return strings.Compare(a.Type.String(), b.Type.String())
	})
	return out
}

// AssertNoInstances fails t for every type that still has live instances.
// Use it at the end of a test:
//
//	defer debug.AssertNoInstances(t)
func AssertNoInstances(t TestingT) {
	for _, info := range Instances() {
		t.Helper()
		t.Errorf("LEAK of %d instances of %s", info.Count, info.Type)
	}
}
