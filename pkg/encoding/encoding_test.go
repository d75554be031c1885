// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package encoding_test

import (
	"fmt"
	"testing"

	"github.com/lassandro/gochip8/pkg/encoding"
	"github.com/retroenv/retrogolib/assert"
)

func TestInstructionFields(t *testing.T) {
	const instruction uint16 = 0xD1A5

	assert.Equal(t, uint16(0xD), encoding.Opcode(instruction))
	assert.Equal(t, uint16(0x1), encoding.RegX(instruction))
	assert.Equal(t, uint16(0xA), encoding.RegY(instruction))
	assert.Equal(t, uint16(0x5), encoding.Nibble(instruction))
	assert.Equal(t, uint8(0xA5), encoding.Byte(instruction))
	assert.Equal(t, uint16(0x1A5), encoding.Address(instruction))
}

func TestBCD(t *testing.T) {
	assert.Equal(t, [3]uint8{1, 5, 6}, encoding.BCD(156))
	assert.Equal(t, [3]uint8{0, 0, 7}, encoding.BCD(7))
	assert.Equal(t, [3]uint8{2, 5, 5}, encoding.BCD(255))
}

func TestDecodeColor(t *testing.T) {
	value, err := encoding.DecodeColor("#FFC936")
	assert.NoError(t, err)
	assert.Equal(t, uint32(0xFFC936), value)

	r, g, b := encoding.RGB(value)
	assert.Equal(t, uint8(0xFF), r)
	assert.Equal(t, uint8(0xC9), g)
	assert.Equal(t, uint8(0x36), b)

	value, err = encoding.DecodeColor("0xd4962c")
	assert.NoError(t, err)
	assert.Equal(t, uint32(0xD4962C), value)

	for _, s := range []string{"FFC936", "#FFF", "#GGGGGG", ""} {
		_, err := encoding.DecodeColor(s)
		assert.Error(t, err, fmt.Sprintf("Invalid color string '%s'", s))
	}
}

func TestDecodeSize(t *testing.T) {
	width, height, err := encoding.DecodeSize("640x320")
	assert.NoError(t, err)
	assert.Equal(t, 640, width)
	assert.Equal(t, 320, height)

	width, height, err = encoding.DecodeSize("1920X1080")
	assert.NoError(t, err)
	assert.Equal(t, 1920, width)
	assert.Equal(t, 1080, height)

	for _, s := range []string{"640", "0x320", "640x", "axb", "1x2x3"} {
		_, _, err := encoding.DecodeSize(s)
		assert.Error(t, err, fmt.Sprintf("Invalid size string '%s'", s))
	}
}
