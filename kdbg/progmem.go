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

package kdbg

// Text is a read-only string that may live outside data memory.
//
// On Harvard targets string literals in flash cannot be dereferenced like
// RAM, so output of such text goes byte by byte through ByteAt.
type Text interface {
	Len() int
	ByteAt(i int) byte
}

// RAM is Text held in ordinary, directly addressable memory.
type RAM string

func (s RAM) Len() int          { return len(s) }
func (s RAM) ByteAt(i int) byte { return s[i] }

// ProgramMemory reads one byte of program (flash) memory. Platforms provide
// it, on AVR typically as a wrapper around the LPM instruction.
type ProgramMemory interface {
	LoadByte(addr uintptr) byte
}

// ProgMem is Text of length N stored in program memory at Addr.
type ProgMem struct {
	Mem  ProgramMemory
	Addr uintptr
	N    int
}

func (p ProgMem) Len() int          { return p.N }
func (p ProgMem) ByteAt(i int) byte { return p.Mem.LoadByte(p.Addr + uintptr(i)) }

// load copies t into data memory.
func load(t Text) string {
	if s, ok := t.(RAM); ok {
		return string(s)
	}
	b := make([]byte, t.Len())
	for i := range b {
		b[i] = t.ByteAt(i)
	}
	return string(b)
}

var (
	_ Text = RAM("")
	_ Text = ProgMem{}
)
