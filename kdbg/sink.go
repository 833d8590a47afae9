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

package kdbg

import "golang.org/x/xerrors"

// ErrNoSink is returned by the placeholder device used until a freestanding
// platform installs its own Sink.
var ErrNoSink = xerrors.New("kdbg: no output sink installed")

// Sink is the contract a platform fulfils to carry diagnostic output.
type Sink interface {
	// Init starts the device. It may be called more than once.
	Init() error
	PutChar(c byte) error
	PutString(s string) error
	// Dump writes a hex listing of buf.
	Dump(buf []byte) error
}

type unset struct{}

func (unset) Init() error            { return ErrNoSink }
func (unset) PutChar(byte) error     { return ErrNoSink }
func (unset) PutString(string) error { return ErrNoSink }
func (unset) Dump([]byte) error      { return ErrNoSink }

var (
	_ Sink = unset{}
	_ Sink = (*Console)(nil)
	_ Sink = (*Serial)(nil)
)
