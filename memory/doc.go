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
Package memory provides allocators for buffers that must be checked for
overruns and leaks.

GuardedAllocator wraps another Allocator. It brackets every allocation with
two walls, checks them when the buffer is freed or reallocated, and remembers
where each live buffer was allocated so tests can report leaks:

	mem := memory.NewGuardedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

Walls are only present in debug builds; in release builds they are zero
bytes wide and GuardedAllocator only tracks sizes.
*/
package memory
