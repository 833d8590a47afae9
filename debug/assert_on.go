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

// Assert reports a failure if cond is false.
//
// It returns 0 when cond holds, otherwise the result of the Handler.
func Assert(cond bool) int {
	if cond {
		return 0
	}
	return assertFailed("Assert", nil, 1)
}

// AssertMsg is Assert with a short explanation prepended to the condition
// text.
//
// help must be a string, func() string or fmt.Stringer.
func AssertMsg(cond bool, help interface{}) int {
	if cond {
		return 0
	}
	return assertFailed("AssertMsg", help, 1)
}

// assertFailed is kept out of line so the passing path of a check inlines
// to a single branch.
//
//go:noinline
func assertFailed(fn string, help interface{}, depth int) int {
	r := callSite(depth)
	r.Kind = KindAssert
	if withText {
		r.Cond = condText(r.File, r.Line, fn)
		if msg := getStringValue(help); msg != "" {
			if r.Cond == "" {
				r.Cond = msg
			} else {
				r.Cond = msg + " (" + r.Cond + ")"
			}
		}
	}
	return handler.Assert(&r)
}
