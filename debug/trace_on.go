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
	"runtime"
	"strings"

	"github.com/bertos-go/kdebug/kdbg"
)

// Trace prints the name of the calling function.
func Trace() {
	kdbg.PutString(callerName() + "()\n")
}

// TraceMsg prints the name of the calling function followed by a message.
func TraceMsg(format string, args ...interface{}) {
	kdbg.PutString(callerName() + "(): " + fmt.Sprintf(format, args...) + "\n")
}

// callerName returns the name of the function calling a Trace function,
// without its package path.
func callerName() string {
	var pc [1]uintptr
	if runtime.Callers(3, pc[:]) == 0 {
		return "?"
	}
	frame, _ := runtime.CallersFrames(pc[:]).Next()
	name := frame.Function
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
