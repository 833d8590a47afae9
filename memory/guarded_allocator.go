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

package memory

import (
	"os"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/bertos-go/kdebug/debug"
)

// GuardedAllocator checks the buffers it hands out for overruns and leaks.
//
// Each buffer is allocated from mem with a wall before and after it. The
// walls are checked by Free, Reallocate and CheckAll; a broken wall is
// reported through the debug Handler at the caller of those methods, with
// the allocation site in the report's Name. Freed memory is filled with
// 0xdd before it goes back to mem.
//
// The head wall is padded to 64 bytes, so buffers keep the alignment of mem.
// In release builds both walls are empty.
type GuardedAllocator struct {
	mem Allocator
	sz  int64

	allocs sync.Map
}

// NewGuardedAllocator wraps mem, or DefaultAllocator if mem is nil.
func NewGuardedAllocator(mem Allocator) *GuardedAllocator {
	if mem == nil {
		mem = DefaultAllocator
	}
	return &GuardedAllocator{mem: mem}
}

func (a *GuardedAllocator) CurrentAlloc() int { return int(atomic.LoadInt64(&a.sz)) }

func (a *GuardedAllocator) Allocate(size int) []byte {
	return a.allocate(size, allocFrames)
}

func (a *GuardedAllocator) Reallocate(size int, b []byte) []byte {
	out := a.allocate(size, allocFrames)
	copy(out, b)
	a.free(b)
	return out
}

func (a *GuardedAllocator) allocate(size, frames int) []byte {
	atomic.AddInt64(&a.sz, int64(size))
	if size == 0 {
		return []byte{}
	}

	raw := a.mem.Allocate(headSize + size + tailSize)
	debug.InitWallBytes(raw[:headSize])
	debug.InitWallBytes(raw[headSize+size:])
	out := raw[headSize : headSize+size : headSize+size]

	info := &galloc{raw: raw, sz: size}
	var pc [1]uintptr
	if runtime.Callers(frames+1, pc[:]) > 0 {
		frame, _ := runtime.CallersFrames(pc[:]).Next()
		info.fn, info.line = frame.Function, frame.Line
	}
	a.allocs.Store(addressOf(out), info)
	return out
}

func (a *GuardedAllocator) Free(b []byte) { a.free(b) }

// free must be called directly from an exported method; wall reports skip
// two frames to reach that method's caller.
func (a *GuardedAllocator) free(b []byte) {
	atomic.AddInt64(&a.sz, int64(len(b)*-1))
	if len(b) == 0 {
		return
	}

	v, ok := a.allocs.LoadAndDelete(addressOf(b))
	if !ok {
		debug.AssertMsg(ok, "memory: free of a buffer not allocated here")
		return
	}

	info := v.(*galloc)
	info.check(2)
	if debug.Enabled {
		Set(info.raw, freePoison)
	}
	a.mem.Free(info.raw)
}

// CheckAll checks the walls of every live buffer and returns the number of
// broken ones.
func (a *GuardedAllocator) CheckAll() int {
	broken := 0
	a.allocs.Range(func(_, value interface{}) bool {
		// closure, sync.Map.Range, CheckAll, caller
		if value.(*galloc).check(3) != 0 {
			broken++
		}
		return true
	})
	return broken
}

// The allocation site recorded for a buffer is the caller of Allocate or
// Reallocate. When those are reached through a wrapper such as a pool, set
// KDEBUG_ALLOC_FRAMES to skip more frames (0 is the allocator itself).
const defAllocFrames = 2

var allocFrames = defAllocFrames

func init() {
	if val, ok := os.LookupEnv("KDEBUG_ALLOC_FRAMES"); ok {
		if f, err := strconv.Atoi(val); err == nil {
			allocFrames = f
		}
	}
}

type galloc struct {
	raw  []byte
	fn   string
	line int
	sz   int
}

func (g *galloc) site() string { return g.fn + ":" + strconv.Itoa(g.line) }

// check reports broken walls at the frame skip levels above its caller.
func (g *galloc) check(skip int) int {
	if !debug.Enabled {
		return 0
	}
	head := g.raw[:headSize]
	tail := g.raw[headSize+g.sz : headSize+g.sz+tailSize]
	return debug.CheckWallBytesAt(skip+1, head, g.site()+" head") |
		debug.CheckWallBytesAt(skip+1, tail, g.site()+" tail")
}

func (a *GuardedAllocator) AssertSize(t debug.TestingT, sz int) {
	a.allocs.Range(func(_, value interface{}) bool {
		info := value.(*galloc)
		t.Helper()
		t.Errorf("LEAK of %d bytes FROM %s line %d\n", info.sz, info.fn, info.line)
		return true
	})

	if cur := a.CurrentAlloc(); cur != sz {
		t.Helper()
		t.Errorf("invalid memory size exp=%d, got=%d", sz, cur)
	}
}

// GuardedAllocatorScope checks that the allocator returns to the size it
// had when the scope was opened.
type GuardedAllocatorScope struct {
	alloc *GuardedAllocator
	sz    int
}

func NewGuardedAllocatorScope(alloc *GuardedAllocator) *GuardedAllocatorScope {
	return &GuardedAllocatorScope{alloc: alloc, sz: alloc.CurrentAlloc()}
}

func (c *GuardedAllocatorScope) CheckSize(t debug.TestingT) {
	if sz := c.alloc.CurrentAlloc(); c.sz != sz {
		t.Helper()
		t.Errorf("invalid memory size exp=%d, got=%d", c.sz, sz)
	}
}

var (
	_ Allocator = (*GuardedAllocator)(nil)
)
