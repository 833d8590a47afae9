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
Package kdbg is the low-level output channel used by diagnostics.

The channel is a Sink: a device that can put a single character, put a string
and hex dump a buffer. Everything else, formatted output included, is layered
on top of those primitives so callers never depend on the device.

Hosted programs write to standard error through a Console. Freestanding
programs (TinyGo, baremetal tag) have no default device: the board support
code must install one with SetSink, usually a Serial wrapping a UART or a JTAG
data channel.

Targets with separate program memory (avr tag) can keep message text in flash
and pass it as a ProgMem Text to PutStringP and PrintfP. With the avr tag
PutStringP streams the text to the sink a byte at a time; elsewhere it is
copied and written in one call.

Output is only compiled in with the debug build tag. Without it, every
function in this package is an empty stub.
*/
package kdbg
