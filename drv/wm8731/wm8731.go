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

// Package wm8731 drives the Wolfson WM8731 audio codec over its two-wire
// control interface.
//
// Each control write carries a 7-bit register address and a 9-bit value:
//
//	byte 0: A6..A0 D8
//	byte 1: D7..D0
package wm8731

import (
	"github.com/bertos-go/kdebug/debug"
	"github.com/bertos-go/kdebug/drv/i2c"
	"golang.org/x/xerrors"
)

// Device addresses, selected by the CSB pin.
const (
	AddrCSBLow  uint8 = 0x1a
	AddrCSBHigh uint8 = 0x1b
)

// Control registers.
const (
	RegLeftLineIn    uint8 = 0x00
	RegRightLineIn   uint8 = 0x01
	RegLeftHPOut     uint8 = 0x02
	RegRightHPOut    uint8 = 0x03
	RegAnalogPath    uint8 = 0x04
	RegDigitalPath   uint8 = 0x05
	RegPowerDown     uint8 = 0x06
	RegDigitalFormat uint8 = 0x07
	RegSampling      uint8 = 0x08
	RegActive        uint8 = 0x09
	RegReset         uint8 = 0x0f
)

const (
	dacMute = 1 << 3
	maxVal  = 0x1ff
)

// initSeq sets the codec up for I2S slave playback at 48 kHz with line in,
// microphone and ADC powered down.
var initSeq = [...]struct {
	reg uint8
	val uint16
}{
	{RegReset, 0x000},
	{RegPowerDown, 0x007},
	{RegLeftLineIn, 0x197},    // both channels, muted
	{RegLeftHPOut, 0x179},     // both channels, 0 dB
	{RegAnalogPath, 0x012},    // DAC selected, mic muted
	{RegDigitalPath, 0x000},   // DAC unmuted, no de-emphasis
	{RegDigitalFormat, 0x002}, // I2S, 16 bit
	{RegSampling, 0x000},      // normal mode, 48 kHz
	{RegActive, 0x001},
}

// Codec is a WM8731 on a two-wire bus. The transmit buffer is walled so a
// bus driver writing past it is caught on the next transfer.
type Codec struct {
	// Addr is the device address; zero means AddrCSBLow.
	Addr uint8

	bus  i2c.Bus
	live bool

	pre  debug.Wall
	tx   [2]byte
	post debug.Wall
}

// New returns a codec on bus, programmed by Init.
func New(bus i2c.Bus) (*Codec, error) {
	c := &Codec{}
	if err := c.Init(bus); err != nil {
		return nil, err
	}
	return c, nil
}

// Init resets the codec and programs its control registers over bus.
func (c *Codec) Init(bus i2c.Bus) error {
	debug.AssertValidPtr(c)
	debug.AssertMsg(bus != nil, "wm8731: nil bus")

	c.bus = bus
	if c.Addr == 0 {
		c.Addr = AddrCSBLow
	}
	debug.InitWall(&c.pre)
	debug.InitWall(&c.post)

	for _, w := range initSeq {
		if err := c.Write(w.reg, w.val); err != nil {
			return xerrors.Errorf("wm8731: init: %w", err)
		}
	}
	if !c.live {
		debug.NewInstance[Codec]()
		c.live = true
	}
	return nil
}

// Write sets register reg to the 9-bit value val.
func (c *Codec) Write(reg uint8, val uint16) error {
	debug.AssertMsg(c.bus != nil, "wm8731: codec not initialized")
	debug.AssertMsg(reg <= RegReset, "wm8731: no such register")
	debug.AssertMsg(val <= maxVal, "wm8731: value wider than 9 bits")

	c.tx[0] = reg<<1 | uint8(val>>8)&1
	c.tx[1] = uint8(val)
	err := i2c.WriteReg(c.bus, c.Addr, c.tx[:]...)

	debug.CheckWall(&c.pre, "wm8731.pre")
	debug.CheckWall(&c.post, "wm8731.post")
	if err != nil {
		return xerrors.Errorf("wm8731: reg %#02x: %w", reg, err)
	}
	return nil
}

// Mute silences or restores the DAC output.
func (c *Codec) Mute(on bool) error {
	var val uint16
	if on {
		val = dacMute
	}
	return c.Write(RegDigitalPath, val)
}

// Close deactivates the codec. The Codec can be initialized again.
func (c *Codec) Close() error {
	if !c.live {
		return nil
	}
	debug.DeleteInstance[Codec]()
	c.live = false
	return c.Write(RegActive, 0x000)
}
