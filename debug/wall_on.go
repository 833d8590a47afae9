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

import "unsafe"

// Wall is a guard region of WallSize bytes. Place it next to a buffer,
// fill it with InitWall and verify it with CheckWall.
type Wall [WallSize / 4]uint32

// InitWall fills w with WallValue.
func InitWall(w *Wall) { InitWords(w[:]) }

// CheckWall reports a failure naming the wall if any word of w differs
// from WallValue. Only the first wrong word is reported.
func CheckWall(w *Wall, name string) int {
	return checkWords(w[:], name, 1)
}

// InitWords fills an arbitrary word region with WallValue.
func InitWords(words []uint32) {
	for i := range words {
		words[i] = WallValue
	}
}

// CheckWords is CheckWall for a region initialized with InitWords.
func CheckWords(words []uint32, name string) int {
	return checkWords(words, name, 1)
}

// InitWallBytes fills b with WallValue in little-endian byte order. A
// length that is not a multiple of 4 ends with a partial word.
func InitWallBytes(b []byte) {
	for i := range b {
		b[i] = wallByte(i)
	}
}

// CheckWallBytes is CheckWall for a region initialized with InitWallBytes.
func CheckWallBytes(b []byte, name string) int {
	return checkWallBytes(b, name, 1)
}

// CheckWallBytesAt is CheckWallBytes for helpers that check walls on behalf
// of their callers. The report is attributed skip frames above the caller
// of CheckWallBytesAt; 0 makes it CheckWallBytes.
func CheckWallBytesAt(skip int, b []byte, name string) int {
	return checkWallBytes(b, name, skip+1)
}

func checkWallBytes(b []byte, name string, depth int) int {
	for i := range b {
		if b[i] == wallByte(i) {
			continue
		}
		word := i &^ 3
		var got uint32
		for j := word; j < word+4 && j < len(b); j++ {
			got |= uint32(b[j]) << (8 * uint(j-word))
		}
		return wallBroken(name, uintptr(unsafe.Pointer(&b[word])), word/4, got, depth+1)
	}
	return 0
}

func wallByte(i int) byte { return byte(WallValue >> (8 * uint(i&3))) }

func checkWords(words []uint32, name string, depth int) int {
	for i, v := range words {
		if v != WallValue {
			return wallBroken(name, uintptr(unsafe.Pointer(&words[i])), i, v, depth+1)
		}
	}
	return 0
}

//go:noinline
func wallBroken(name string, addr uintptr, index int, got uint32, depth int) int {
	r := callSite(depth)
	r.Kind = KindWall
	r.Name = name
	r.Addr = addr
	r.Index = index
	r.Got = got
	return handler.Assert(&r)
}
