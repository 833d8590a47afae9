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
	"reflect"
	"runtime"
)

// getStringValue accepts a string, func() string or fmt.Stringer so costly
// messages are only built on failure.
func getStringValue(v interface{}) string {
	switch a := v.(type) {
	case nil:
		return ""

	case func() string:
		return a()

	case string:
		return a

	case fmt.Stringer:
		return a.String()

	default:
		return fmt.Sprint(v)
	}
}

// callSite fills the location of a failed check. depth counts the frames
// between the caller of callSite and the exported check.
func callSite(depth int) Report {
	var (
		r  Report
		pc [1]uintptr
	)
	if runtime.Callers(depth+3, pc[:]) > 0 {
		frame, _ := runtime.CallersFrames(pc[:]).Next()
		r.File, r.Line, r.Func = frame.File, frame.Line, frame.Function
	}
	return r
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
