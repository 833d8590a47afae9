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

//go:build debug && baremetal

package debug

import "github.com/bertos-go/kdebug/kdbg"

// FatalHandler prints the report and stops. A device without memory
// protection cannot be trusted after one of its invariants broke.
type FatalHandler struct{}

func (FatalHandler) Assert(r *Report) int     { return halt(r) }
func (FatalHandler) InvalidPtr(r *Report) int { return halt(r) }

// stop parks the CPU once a report is out.
var stop = func() {
	for {
	}
}

func halt(r *Report) int {
	render(r)
	stop()
	return 1
}

func render(r *Report) {
	kdbg.PutString(r.String())
	kdbg.PutChar('\n')
}

func defaultHandler() Handler { return FatalHandler{} }

func envPtrThreshold() uintptr { return DefaultPtrThreshold }
