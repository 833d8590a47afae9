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

package kdbg

import (
	"bytes"
	"testing"
)

// callSink counts how output reaches the sink.
type callSink struct {
	Console
	chars, strings int
}

func (s *callSink) PutChar(c byte) error {
	s.chars++
	return s.Console.PutChar(c)
}

func (s *callSink) PutString(str string) error {
	s.strings++
	return s.Console.PutString(str)
}

func useCallSink(t *testing.T) (*callSink, *bytes.Buffer) {
	var buf bytes.Buffer
	s := &callSink{Console: Console{w: &buf}}
	useSink(t, s)
	return s, &buf
}
