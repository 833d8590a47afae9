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

import (
	"io"

	"golang.org/x/xerrors"
)

// Serial is a Sink for byte oriented ports such as a UART or a JTAG data
// channel. Line feeds go out as CR LF so raw terminals render lines properly.
//
// If the port has an Init() error method it is called by Serial.Init.
type Serial struct {
	port io.ByteWriter
}

func NewSerial(port io.ByteWriter) *Serial { return &Serial{port: port} }

func (s *Serial) Init() error {
	in, ok := s.port.(interface{ Init() error })
	if !ok {
		return nil
	}
	if err := in.Init(); err != nil {
		return xerrors.Errorf("kdbg: serial init: %w", err)
	}
	return nil
}

func (s *Serial) PutChar(c byte) error {
	if c == '\n' {
		if err := s.port.WriteByte('\r'); err != nil {
			return err
		}
	}
	return s.port.WriteByte(c)
}

func (s *Serial) PutString(str string) error {
	for i := 0; i < len(str); i++ {
		if err := s.PutChar(str[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Serial) Dump(buf []byte) error {
	return dump(s.PutString, buf)
}
