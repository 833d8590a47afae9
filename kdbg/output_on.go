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

import "fmt"

var (
	sink  = defaultSink()
	ready bool
)

// SetSink installs s as the output channel and returns the previous one.
// A nil s disconnects output. The new sink is started on next use.
func SetSink(s Sink) Sink {
	if s == nil {
		s = unset{}
	}
	prev := sink
	sink, ready = s, false
	return prev
}

// Init starts the current sink. Calling it again once the sink is running
// does nothing.
func Init() {
	if ready {
		return
	}
	ready = sink.Init() == nil
}

// Write errors below are dropped: there is no channel left to report them on.

func PutChar(c byte) {
	Init()
	_ = sink.PutChar(c)
}

func PutString(s string) {
	Init()
	_ = sink.PutString(s)
}

func Printf(format string, args ...interface{}) {
	PutString(fmt.Sprintf(format, args...))
}

// Dump writes a hex listing of buf.
func Dump(buf []byte) {
	Init()
	_ = sink.Dump(buf)
}

// PutStringP writes t. Harvard (avr) builds stream it a byte at a time
// without copying it to RAM.
func PutStringP(t Text) {
	Init()
	putText(t)
}

// PrintfP is Printf with a format string that may live in program memory.
func PrintfP(format Text, args ...interface{}) {
	Printf(load(format), args...)
}
