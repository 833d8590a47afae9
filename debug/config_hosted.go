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
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Hosted builds read their defaults from the environment:
//
//	KDEBUG_ON_FAILURE     panic (default), continue or exit
//	KDEBUG_FORMAT         text (default) or json
//	KDEBUG_COLOR          auto (default), always or never
//	KDEBUG_PTR_THRESHOLD  highest invalid address, e.g. 0x1000
func defaultHandler() Handler {
	h := &HostedHandler{OnFailure: Panic}

	if val, ok := os.LookupEnv("KDEBUG_ON_FAILURE"); ok {
		switch strings.ToLower(val) {
		case "continue":
			h.OnFailure = Continue
		case "exit":
			h.OnFailure = Exit
		}
	}

	if val, ok := os.LookupEnv("KDEBUG_FORMAT"); ok {
		h.JSON = strings.EqualFold(val, "json")
	}

	switch val, _ := os.LookupEnv("KDEBUG_COLOR"); strings.ToLower(val) {
	case "always":
		h.Color = true
	case "never":
		h.Color = false
	default:
		h.Color = term.IsTerminal(int(os.Stderr.Fd()))
	}
	return h
}

func envPtrThreshold() uintptr {
	if val, ok := os.LookupEnv("KDEBUG_PTR_THRESHOLD"); ok {
		if t, err := strconv.ParseUint(val, 0, 64); err == nil {
			return uintptr(t)
		}
	}
	return DefaultPtrThreshold
}
