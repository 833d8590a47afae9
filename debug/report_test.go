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

package debug

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

func TestReportString(t *testing.T) {
	tests := []struct {
		name string
		r    Report
		exp  string
	}{
		{"assert", Report{Kind: KindAssert, Cond: "n > 0", File: "a.go", Line: 3},
			`a.go:3: Assertion failed: "n > 0"`},
		{"assert no text", Report{Kind: KindAssert, File: "a.go", Line: 3},
			"a.go:3: Assertion failed"},
		{"wall", Report{Kind: KindWall, Name: "rx", File: "b.go", Line: 10, Addr: 0x1000, Index: 1, Got: 0xabadca00},
			"b.go:10: Wall broken: rx[1] (0x1000) = 0xabadca00"},
		{"ptr", Report{Kind: KindInvalidPtr, Name: "p", File: "c.go", Line: 7, Addr: 0x10},
			"c.go:7: Invalid ptr: p = 0x10"},
		{"ptr no text", Report{Kind: KindInvalidPtr, File: "c.go", Line: 7},
			"c.go:7: Invalid ptr: ptr = 0x0"},
		{"obj", Report{Kind: KindInvalidObj, Cond: "o.(*T)", Name: "*T", File: "d.go", Line: 1},
			`d.go:1: Invalid object: "o.(*T)"`},
		{"leak", Report{Kind: KindLeak, Name: "pkg.Conn", File: "e.go", Line: 2, Count: 3},
			"e.go:2: Instances not zero: pkg.Conn = 3"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.exp, test.r.String())
			assert.Equal(t, test.exp, test.r.Error())
		})
	}
}

func TestReportIsError(t *testing.T) {
	var err error = xerrors.Errorf("selftest: %w", &Report{Kind: KindLeak, Name: "T", Count: 1})

	var r *Report
	require.True(t, xerrors.As(err, &r))
	assert.Equal(t, KindLeak, r.Kind)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "assert", KindAssert.String())
	assert.Equal(t, "invalid_ptr", KindInvalidPtr.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestReportJSON(t *testing.T) {
	r := &Report{Kind: KindWall, Name: "tx", File: "f.go", Line: 9, Index: 1, Got: 7}
	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"wall","name":"tx","file":"f.go","line":9,"index":1,"got":7}`, string(b))
}
