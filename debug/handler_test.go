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

//go:build debug && !baremetal

package debug

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useHandler(t *testing.T, h Handler) {
	t.Helper()
	prev := SetHandler(h)
	t.Cleanup(func() { SetHandler(prev) })
}

func TestHostedHandlerContinue(t *testing.T) {
	out := captureOutput(t)
	useHandler(t, &HostedHandler{OnFailure: Continue})

	file, line := here()
	rc := Assert(len(file) == 0)

	assert.Equal(t, 1, rc)
	exp := fmt.Sprintf("%s:%d: Assertion failed", file, line+1)
	if withText {
		exp += ": \"len(file) == 0\""
	}
	assert.Equal(t, exp+"\n", out.String())
}

func TestHostedHandlerPanic(t *testing.T) {
	out := captureOutput(t)
	useHandler(t, &HostedHandler{OnFailure: Panic})

	var recovered interface{}
	func() {
		defer func() { recovered = recover() }()
		CheckWords([]uint32{WallValue, 0}, "tail")
	}()

	require.IsType(t, &Report{}, recovered)
	r := recovered.(*Report)
	assert.Equal(t, KindWall, r.Kind)
	assert.Equal(t, 1, r.Index)
	assert.Equal(t, r.String()+"\n", out.String())
}

func TestHostedHandlerExit(t *testing.T) {
	captureOutput(t)
	useHandler(t, &HostedHandler{OnFailure: Exit})

	code := -1
	exit = func(c int) { code = c }
	defer func() { exit = os.Exit }()

	assert.Equal(t, 1, AssertValidPtr(nil))
	assert.Equal(t, 2, code)
}

func TestHostedHandlerJSON(t *testing.T) {
	out := captureOutput(t)
	useHandler(t, &HostedHandler{OnFailure: Continue, JSON: true})

	NewInstance[leakA]()
	defer DeleteInstance[leakA]()
	_, line := here()
	AssertZeroInstances[leakA]()

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "leak", got["kind"])
	assert.Equal(t, "debug.leakA", got["name"])
	assert.EqualValues(t, line+1, got["line"])
	assert.EqualValues(t, 1, got["count"])
	assert.True(t, strings.HasSuffix(out.String(), "}\n"))
}

func TestHostedHandlerColor(t *testing.T) {
	out := captureOutput(t)
	useHandler(t, &HostedHandler{OnFailure: Continue, Color: true})

	Assert(false)
	assert.Contains(t, out.String(), "\x1b[")
	assert.Contains(t, out.String(), "Assertion failed")
}

func TestDefaultHandlerFromEnv(t *testing.T) {
	t.Setenv("KDEBUG_ON_FAILURE", "continue")
	t.Setenv("KDEBUG_FORMAT", "json")
	t.Setenv("KDEBUG_COLOR", "always")

	h, ok := defaultHandler().(*HostedHandler)
	require.True(t, ok)
	assert.Equal(t, Continue, h.OnFailure)
	assert.True(t, h.JSON)
	assert.True(t, h.Color)

	t.Setenv("KDEBUG_ON_FAILURE", "exit")
	t.Setenv("KDEBUG_FORMAT", "text")
	t.Setenv("KDEBUG_COLOR", "never")
	h = defaultHandler().(*HostedHandler)
	assert.Equal(t, Exit, h.OnFailure)
	assert.False(t, h.JSON)
	assert.False(t, h.Color)
}

func TestEnvPtrThreshold(t *testing.T) {
	t.Setenv("KDEBUG_PTR_THRESHOLD", "0x1000")
	assert.Equal(t, uintptr(0x1000), envPtrThreshold())

	t.Setenv("KDEBUG_PTR_THRESHOLD", "bogus")
	assert.Equal(t, DefaultPtrThreshold, envPtrThreshold())
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	prev := SetHandler(nil)
	defer SetHandler(prev)

	_, ok := handler.(*HostedHandler)
	assert.True(t, ok)
}
