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

// Package i2ctest provides an in-memory i2c.Bus for driver tests.
package i2ctest

import (
	"github.com/bertos-go/kdebug/drv/i2c"
	"golang.org/x/xerrors"
)

// Tx is one completed transaction.
type Tx struct {
	Addr uint8
	Data []byte
}

// Recorder is an i2c.Bus that records every transaction. Devices listed in
// Nack do not acknowledge their address.
type Recorder struct {
	Txs  []Tx
	Nack map[uint8]bool

	open *Tx
}

func (r *Recorder) Start(addr uint8) error {
	if r.open != nil {
		return xerrors.New("i2ctest: start inside a transaction")
	}
	if r.Nack[addr] {
		return i2c.ErrNack
	}
	r.open = &Tx{Addr: addr}
	return nil
}

func (r *Recorder) Put(data ...byte) error {
	if r.open == nil {
		return xerrors.New("i2ctest: put outside a transaction")
	}
	r.open.Data = append(r.open.Data, data...)
	return nil
}

func (r *Recorder) Stop() error {
	if r.open == nil {
		return xerrors.New("i2ctest: stop outside a transaction")
	}
	r.Txs = append(r.Txs, *r.open)
	r.open = nil
	return nil
}

var _ i2c.Bus = (*Recorder)(nil)
