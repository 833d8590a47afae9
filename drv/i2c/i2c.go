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

// Package i2c defines the two-wire bus controller used by peripheral
// drivers. Boards implement Bus on top of their hardware peripheral.
package i2c

import "golang.org/x/xerrors"

// ErrNack is returned when the addressed device does not acknowledge.
var ErrNack = xerrors.New("i2c: no acknowledge")

// Bus is a byte oriented two-wire bus controller in master mode.
type Bus interface {
	// Start issues a start condition and addresses the 7-bit device addr
	// for writing.
	Start(addr uint8) error
	// Put sends data to the addressed device.
	Put(data ...byte) error
	// Stop releases the bus.
	Stop() error
}

// WriteReg writes data to the device at addr in one transaction. The bus is
// released even when the transfer fails.
func WriteReg(bus Bus, addr uint8, data ...byte) (err error) {
	if err = bus.Start(addr); err != nil {
		return xerrors.Errorf("i2c: start %#02x: %w", addr, err)
	}
	defer func() {
		if serr := bus.Stop(); serr != nil && err == nil {
			err = xerrors.Errorf("i2c: stop %#02x: %w", addr, serr)
		}
	}()

	if err = bus.Put(data...); err != nil {
		return xerrors.Errorf("i2c: write %#02x: %w", addr, err)
	}
	return nil
}
