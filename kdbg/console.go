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

import "io"

// Console is a Sink writing to an io.Writer, standard error on hosted builds.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console { return &Console{w: w} }

// Writer returns the destination of c.
func (c *Console) Writer() io.Writer { return c.w }

func (c *Console) Init() error { return nil }

func (c *Console) PutChar(ch byte) error {
	_, err := c.w.Write([]byte{ch})
	return err
}

func (c *Console) PutString(s string) error {
	_, err := io.WriteString(c.w, s)
	return err
}

func (c *Console) Dump(buf []byte) error {
	return dump(c.PutString, buf)
}
