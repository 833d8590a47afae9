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

package memory_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bertos-go/kdebug/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeT struct {
	errors []string
}

func (f *fakeT) Errorf(format string, args ...interface{}) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

func (f *fakeT) Helper() {}

func TestGuardedAllocatorAllocate(t *testing.T) {
	mem := memory.NewGuardedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	for _, sz := range []int{0, 1, 7, 64, 4097} {
		t.Run(fmt.Sprint(sz), func(t *testing.T) {
			buf := mem.Allocate(sz)
			assert.Len(t, buf, sz)
			assert.Equal(t, sz, cap(buf))
			assert.Equal(t, sz, mem.CurrentAlloc())
			for i := range buf {
				buf[i] = byte(i)
			}
			assert.Zero(t, mem.CheckAll())
			mem.Free(buf)
			assert.Zero(t, mem.CurrentAlloc())
		})
	}
}

func TestGuardedAllocatorReallocate(t *testing.T) {
	mem := memory.NewGuardedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	buf := mem.Allocate(10)
	copy(buf, "0123456789")

	buf = mem.Reallocate(20, buf)
	assert.Equal(t, 20, mem.CurrentAlloc())
	assert.Equal(t, []byte("0123456789"), buf[:10])

	buf = mem.Reallocate(4, buf)
	assert.Equal(t, 4, mem.CurrentAlloc())
	assert.Equal(t, []byte("0123"), buf)

	mem.Free(buf)
}

func TestGuardedAllocatorReportsLeaks(t *testing.T) {
	mem := memory.NewGuardedAllocator(memory.NewGoAllocator())

	buf := mem.Allocate(32)

	var ft fakeT
	mem.AssertSize(&ft, 0)
	require.Len(t, ft.errors, 2)
	assert.True(t, strings.HasPrefix(ft.errors[0], "LEAK of 32 bytes FROM "), ft.errors[0])
	assert.Contains(t, ft.errors[0], "TestGuardedAllocatorReportsLeaks")
	assert.Equal(t, "invalid memory size exp=0, got=32", ft.errors[1])

	mem.Free(buf)
	mem.AssertSize(t, 0)
}

func TestGuardedAllocatorScope(t *testing.T) {
	mem := memory.NewGuardedAllocator(memory.NewGoAllocator())
	outer := mem.Allocate(8)
	defer mem.Free(outer)

	scope := memory.NewGuardedAllocatorScope(mem)
	buf := mem.Allocate(16)

	var ft fakeT
	scope.CheckSize(&ft)
	assert.Equal(t, []string{"invalid memory size exp=8, got=24"}, ft.errors)

	mem.Free(buf)
	scope.CheckSize(t)
}

func TestGuardedAllocatorDefault(t *testing.T) {
	mem := memory.NewGuardedAllocator(nil)
	defer mem.AssertSize(t, 0)

	buf := mem.Allocate(100)
	assert.Len(t, buf, 100)
	assert.Zero(t, mem.CheckAll())
	mem.Free(buf)
}
