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
	"bytes"
	"runtime"
	"testing"

	"github.com/bertos-go/kdebug/kdbg"
)

// recorder keeps reports instead of printing them. Pointer failures return
// 2 so tests can tell the two entry points apart.
type recorder struct {
	reports []*Report
}

func (r *recorder) Assert(rep *Report) int {
	r.reports = append(r.reports, rep)
	return 1
}

func (r *recorder) InvalidPtr(rep *Report) int {
	r.reports = append(r.reports, rep)
	return 2
}

func record(t *testing.T) *recorder {
	t.Helper()
	rec := &recorder{}
	prev := SetHandler(rec)
	t.Cleanup(func() { SetHandler(prev) })
	return rec
}

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := kdbg.SetSink(kdbg.NewConsole(&buf))
	t.Cleanup(func() { kdbg.SetSink(prev) })
	return &buf
}

// here returns the file and line of its caller.
func here() (string, int) {
	_, file, line, _ := runtime.Caller(1)
	return file, line
}
