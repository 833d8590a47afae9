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

import "unsafe"

// roundToPowerOf2 rounds v up to the next multiple of round, which must be
// a power of two.
func roundToPowerOf2(v, round int) int {
	return (v + round - 1) &^ (round - 1)
}

func alignUp(addr uintptr) int { return roundToPowerOf2(int(addr), alignment) }

func isMultipleOfPowerOf2(v, d int) bool { return v&(d-1) == 0 }

// addressOf returns the address of the first byte of a non-empty b.
func addressOf(b []byte) uintptr {
	return uintptr(unsafe.Pointer(&b[0]))
}
