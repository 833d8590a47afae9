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

const (
	dumpWidth = 16
	hexDigits = "0123456789abcdef"
)

// dump renders buf as lines of
//
//	00000000  68 65 6c 6c 6f 2c 20 77  6f 72 6c 64 0a           |hello, world.|
//
// and hands each line to put.
func dump(put func(string) error, buf []byte) error {
	line := make([]byte, 0, 80)
	for off := 0; off < len(buf); off += dumpWidth {
		end := off + dumpWidth
		if end > len(buf) {
			end = len(buf)
		}

		line = appendHex(line[:0], uint64(off), 8)
		line = append(line, ' ')
		for i := off; i < off+dumpWidth; i++ {
			if i == off+dumpWidth/2 {
				line = append(line, ' ')
			}
			if i < end {
				line = append(line, ' ')
				line = appendHex(line, uint64(buf[i]), 2)
			} else {
				line = append(line, "   "...)
			}
		}

		line = append(line, "  |"...)
		for _, c := range buf[off:end] {
			if c < 0x20 || c > 0x7e {
				c = '.'
			}
			line = append(line, c)
		}
		line = append(line, "|\n"...)

		if err := put(string(line)); err != nil {
			return err
		}
	}
	return nil
}

func appendHex(dst []byte, v uint64, width int) []byte {
	for shift := (width - 1) * 4; shift >= 0; shift -= 4 {
		dst = append(dst, hexDigits[(v>>uint(shift))&0xf])
	}
	return dst
}
