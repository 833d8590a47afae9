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
	"os"

	"github.com/bertos-go/kdebug/kdbg"
	"github.com/fatih/color"
	"github.com/goccy/go-json"
)

// Policy selects what a HostedHandler does after printing a report.
type Policy int8

const (
	// Panic panics with the *Report. Tests and servers can recover it.
	Panic Policy = iota
	// Continue returns 1 to the failed check.
	Continue
	// Exit terminates the process with status 2.
	Exit
)

var exit = os.Exit

// HostedHandler prints reports on the kdbg channel and then applies
// OnFailure.
type HostedHandler struct {
	OnFailure Policy
	// JSON prints each report as one JSON object per line.
	JSON bool
	// Color highlights the failure label with ANSI escapes.
	Color bool
}

func (h *HostedHandler) Assert(r *Report) int     { return h.fail(r) }
func (h *HostedHandler) InvalidPtr(r *Report) int { return h.fail(r) }

var labelColor = func() *color.Color {
	c := color.New(color.FgRed, color.Bold)
	c.EnableColor()
	return c
}()

func (h *HostedHandler) fail(r *Report) int {
	if h.JSON {
		if b, err := json.Marshal(r); err == nil {
			kdbg.PutString(string(b) + "\n")
		}
	} else {
		loc, label, detail := r.parts()
		if h.Color {
			label = labelColor.Sprint(label)
		}
		kdbg.PutString(loc + ": " + label + detail + "\n")
	}

	switch h.OnFailure {
	case Continue:
		return 1
	case Exit:
		exit(2)
		return 1
	}
	panic(r)
}
