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

/*
Package debug provides assertions, guard walls, pointer sanity checks and
instance counting that compile to nothing in release builds.

# Build modes

Diagnostics are compiled in only when building with the debug tag:

	go build -tags debug ./...

Without it every function in this package is an empty stub returning 0, the
Wall type has zero size and InstanceCount does not exist, so code that reads
a counter fails to compile instead of silently seeing 0. The release tag
names the default explicitly and cannot be combined with debug. Guard costly
checks with Enabled:

	if debug.Enabled {
		debug.Assert(list.Len() == countNodes(list))
	}

# Failures

A failed check produces one Report with the file and line of the call, and,
when the source is available, the text of the checked expression. The report
is passed to the installed Handler. Hosted builds print it on the kdbg channel
and then panic with the *Report; set KDEBUG_ON_FAILURE=continue to log and go
on, or exit to stop the process. Freestanding builds (baremetal tag) print the
report and halt.

Checks return 0 when they pass and the handler's result, non-zero, when they
fail.

# Walls

A Wall placed next to a buffer detects writes that run past it:

	type frame struct {
		pre  debug.Wall
		data [64]byte
		post debug.Wall
	}

	debug.InitWall(&f.pre)
	debug.InitWall(&f.post)
	dma.Read(f.data[:])
	debug.CheckWall(&f.pre, "frame.pre")
	debug.CheckWall(&f.post, "frame.post")

Instances

	func NewConn() *Conn {
		debug.NewInstance[Conn]()
		...
	}

	func (c *Conn) Close() {
		debug.DeleteInstance[Conn]()
		...
	}

	debug.AssertZeroInstances[Conn]()
*/
package debug
