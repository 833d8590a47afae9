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

//go:build linux || darwin || freebsd || netbsd || openbsd

package memory

import (
	"github.com/bertos-go/kdebug/debug"
	"golang.org/x/sys/unix"
	"golang.org/x/xerrors"
)

// MmapAllocator serves each allocation from its own anonymous mapping,
// rounded up to whole pages. Buffers live outside the Go heap, so overruns
// written through unsafe or by a device are not hidden by the garbage
// collector's size classes.
//
// Slices returned by Allocate have a capacity of whole pages. Callers must
// pass the slice back to Free without reslicing its capacity away.
type MmapAllocator struct {
	pageSize int
}

func NewMmapAllocator() *MmapAllocator {
	ps := unix.Getpagesize()
	debug.AssertMsg(isMultipleOfPowerOf2(ps, ps), "page size is a power of two")
	return &MmapAllocator{pageSize: ps}
}

func (a *MmapAllocator) Allocate(size int) []byte {
	if size < 0 {
		panic("memory: negative size")
	}
	if size == 0 {
		return []byte{}
	}

	n := roundToPowerOf2(size, a.pageSize)
	b, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		panic(xerrors.Errorf("memory: mmap %d bytes: %w", n, err))
	}
	return b[:size]
}

func (a *MmapAllocator) Reallocate(size int, b []byte) []byte {
	if size < 0 {
		panic("memory: negative size")
	}
	if size == 0 {
		a.Free(b)
		return []byte{}
	}
	if size <= cap(b) {
		if size > len(b) {
			Set(b[len(b):size], 0)
		}
		return b[:size]
	}

	out := a.Allocate(size)
	copy(out, b)
	a.Free(b)
	return out
}

func (a *MmapAllocator) Free(b []byte) {
	if cap(b) == 0 {
		return
	}
	if err := unix.Munmap(b[:cap(b)]); err != nil {
		panic(xerrors.Errorf("memory: munmap: %w", err))
	}
}

var (
	_ Allocator = (*MmapAllocator)(nil)
)
