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
	"fmt"
	"strconv"
)

// Kind classifies a failed check.
type Kind int8

const (
	KindAssert Kind = iota
	KindWall
	KindInvalidPtr
	KindInvalidObj
	KindLeak
)

var kindNames = [...]string{
	KindAssert:     "assert",
	KindWall:       "wall",
	KindInvalidPtr: "invalid_ptr",
	KindInvalidObj: "invalid_obj",
	KindLeak:       "leak",
}

var kindLabels = [...]string{
	KindAssert:     "Assertion failed",
	KindWall:       "Wall broken",
	KindInvalidPtr: "Invalid ptr",
	KindInvalidObj: "Invalid object",
	KindLeak:       "Instances not zero",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Report describes one failed check. It is built at the failure site, handed
// to the Handler and not kept.
type Report struct {
	Kind Kind `json:"kind"`
	// Cond is the checked expression, prefixed by the help text of
	// AssertMsg. Empty when source text is unavailable.
	Cond string `json:"cond,omitempty"`
	// Name is the wall name, pointer expression or type involved.
	Name string `json:"name,omitempty"`
	File string `json:"file"`
	Line int    `json:"line"`
	Func string `json:"func,omitempty"`

	// Addr is the rejected pointer or the broken wall word.
	Addr uintptr `json:"addr,omitempty"`
	// Index and Got locate the first wrong word of a wall.
	Index int    `json:"index,omitempty"`
	Got   uint32 `json:"got,omitempty"`
	// Count is the live instance count of a leak.
	Count int64 `json:"count,omitempty"`
}

// parts splits the rendering so handlers can highlight the label.
func (r *Report) parts() (loc, label, detail string) {
	loc = r.File + ":" + strconv.Itoa(r.Line)
	label = kindLabels[KindAssert]
	if int(r.Kind) < len(kindLabels) {
		label = kindLabels[r.Kind]
	}

	switch r.Kind {
	case KindWall:
		detail = fmt.Sprintf(": %s[%d] (%#x) = %#x", r.Name, r.Index, r.Addr, r.Got)
	case KindInvalidPtr:
		name := r.Name
		if name == "" {
			name = "ptr"
		}
		detail = fmt.Sprintf(": %s = %#x", name, r.Addr)
	case KindLeak:
		detail = fmt.Sprintf(": %s = %d", r.Name, r.Count)
	default:
		if r.Cond != "" {
			detail = ": \"" + r.Cond + "\""
		}
	}
	return loc, label, detail
}

func (r *Report) String() string {
	loc, label, detail := r.parts()
	return loc + ": " + label + detail
}

func (r *Report) Error() string { return r.String() }
