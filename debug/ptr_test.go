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
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssertValidPtr(t *testing.T) {
	var (
		x      int
		nilPtr *int
		nilMap map[string]int
	)
	tests := []struct {
		name       string
		p          interface{}
		valid      bool
		validOrNil bool
	}{
		{"nil", nil, false, true},
		{"typed nil", nilPtr, false, true},
		{"nil map", nilMap, false, true},
		{"zero", uintptr(0), false, true},
		{"one", uintptr(1), false, false},
		{"below", uintptr(0x1ff), false, false},
		{"threshold", uintptr(DefaultPtrThreshold), false, false},
		{"above", uintptr(DefaultPtrThreshold + 1), true, true},
		{"register", 0x40021000, true, true},
		{"negative", -1, false, false},
		{"field of nil", uintptr(16), false, false},
		{"pointer", &x, true, true},
		{"unsafe", unsafe.Pointer(&x), true, true},
		{"map", map[string]int{}, true, true},
		{"func", TestAssertValidPtr, true, true},
		{"string", "not a pointer", false, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := record(t)

			rc := AssertValidPtr(test.p)
			if test.valid {
				assert.Zero(t, rc)
			} else {
				assert.Equal(t, 2, rc)
			}

			rc = AssertValidPtrOrNil(test.p)
			if test.validOrNil {
				assert.Zero(t, rc)
			} else {
				assert.Equal(t, 2, rc)
			}

			fails := 0
			if !test.valid {
				fails++
			}
			if !test.validOrNil {
				fails++
			}
			assert.Len(t, rec.reports, fails)
		})
	}
}

func TestAssertValidPtrReport(t *testing.T) {
	rec := record(t)
	p := uintptr(0x10)

	file, line := here()
	AssertValidPtr(p)

	require.Len(t, rec.reports, 1)
	r := rec.reports[0]
	assert.Equal(t, KindInvalidPtr, r.Kind)
	assert.Equal(t, uintptr(0x10), r.Addr)
	assert.Equal(t, file, r.File)
	assert.Equal(t, line+1, r.Line)
	if withText {
		assert.Equal(t, "p", r.Name)
		assert.Equal(t, fmt.Sprintf("%s:%d: Invalid ptr: p = 0x10", file, line+1), r.String())
	}
}

func TestSetPtrThreshold(t *testing.T) {
	rec := record(t)

	prev := SetPtrThreshold(0)
	defer SetPtrThreshold(prev)

	assert.Zero(t, AssertValidPtr(uintptr(1)))
	assert.Equal(t, 2, AssertValidPtr(uintptr(0)))

	assert.Equal(t, uintptr(0), SetPtrThreshold(0x1000))
	assert.Equal(t, 2, AssertValidPtr(uintptr(0x1000)))
	assert.Zero(t, AssertValidPtr(uintptr(0x1001)))
	assert.Len(t, rec.reports, 2)
}

type shape interface{ Area() float64 }

type square struct{ side float64 }

func (s *square) Area() float64 { return s.side * s.side }

type circle struct{ r float64 }

func TestAssertValidObj(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		rec := record(t)
		sq := &square{side: 2}
		assert.Zero(t, AssertValidObj[shape](sq))
		assert.Zero(t, AssertValidObj[*square](sq))
		assert.Empty(t, rec.reports)
	})

	t.Run("wrong type", func(t *testing.T) {
		rec := record(t)
		sq := &square{side: 2}
		assert.Equal(t, 1, AssertValidObj[*circle](sq))
		require.Len(t, rec.reports, 1)
		assert.Equal(t, KindInvalidObj, rec.reports[0].Kind)
		assert.Equal(t, "*debug.circle", rec.reports[0].Name)
		if withText {
			assert.Equal(t, "sq.(*debug.circle)", rec.reports[0].Cond)
		}
	})

	t.Run("invalid pointer", func(t *testing.T) {
		rec := record(t)
		var sq *square
		assert.Equal(t, 2, AssertValidObj[shape](sq))
		require.Len(t, rec.reports, 1)
		assert.Equal(t, KindInvalidPtr, rec.reports[0].Kind)
	})
}

func TestAddress(t *testing.T) {
	x := 1
	addr, ok := address(&x)
	assert.True(t, ok)
	assert.Equal(t, uintptr(unsafe.Pointer(&x)), addr)

	_, ok = address(struct{}{})
	assert.False(t, ok)

	addr, ok = address(uint16(0x300))
	assert.True(t, ok)
	assert.Equal(t, uintptr(0x300), addr)
}
