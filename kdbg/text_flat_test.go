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

//go:build debug && !avr

package kdbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPutStringPWritesOnce(t *testing.T) {
	s, buf := useCallSink(t)

	PutStringP(ProgMem{Mem: flash("boot ok"), Addr: 0x8000, N: 7})

	assert.Equal(t, "boot ok", buf.String())
	assert.Zero(t, s.chars)
	assert.Equal(t, 1, s.strings)
}
