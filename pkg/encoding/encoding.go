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

package encoding

import (
	"fmt"
	"strconv"
	"strings"
)

// DecodeColor parses a 24-bit RGB value written as #RRGGBB or 0xRRGGBB.
func DecodeColor(s string) (uint32, error) {
	digits := s

	if strings.HasPrefix(digits, "#") {
		digits = digits[1:]
	} else if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
	} else {
		return 0, fmt.Errorf("Invalid color string '%s'", s)
	}

	if len(digits) != 6 {
		return 0, fmt.Errorf("Invalid color string '%s'", s)
	}

	result, err := strconv.ParseUint(digits, 16, 32)

	if err != nil {
		return 0, fmt.Errorf("Invalid color string '%s'", s)
	}

	return uint32(result), nil
}

// DecodeSize parses a WIDTHxHEIGHT pair such as 640x320.
func DecodeSize(s string) (int, int, error) {
	parts := strings.Split(strings.ToLower(s), "x")

	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("Invalid size string '%s'", s)
	}

	width, err := strconv.ParseUint(parts[0], 10, 16)

	if err != nil {
		return 0, 0, fmt.Errorf("Invalid size string '%s'", s)
	}

	height, err := strconv.ParseUint(parts[1], 10, 16)

	if err != nil {
		return 0, 0, fmt.Errorf("Invalid size string '%s'", s)
	}

	if width == 0 || height == 0 {
		return 0, 0, fmt.Errorf("Invalid size string '%s'", s)
	}

	return int(width), int(height), nil
}

// |op      |X      |Y      |N      |
// |op      |X      |NN             |
// |op      |NNN                    |
// [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]

func Opcode(instruction uint16) uint16 {
	return instruction >> 12
}

func RegX(instruction uint16) uint16 {
	return (instruction >> 8) & 0xF
}

func RegY(instruction uint16) uint16 {
	return (instruction >> 4) & 0xF
}

func Nibble(instruction uint16) uint16 {
	return instruction & 0xF
}

func Byte(instruction uint16) uint8 {
	return uint8(instruction & 0xFF)
}

func Address(instruction uint16) uint16 {
	return instruction & 0xFFF
}

// BCD splits value into its hundreds, tens and ones digits.
func BCD(value uint8) [3]uint8 {
	return [3]uint8{value / 100, (value % 100) / 10, value % 10}
}

func RGB(color uint32) (r, g, b uint8) {
	return uint8(color >> 16), uint8(color >> 8), uint8(color)
}
