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

package memory

import (
	"encoding/binary"
)

// New returns a memory image with the built-in font in place.
func New() *Memory {
	var mem Memory
	mem.Reset()
	return &mem
}

func (mem *Memory) Reset() {
	for i := range mem.cells {
		mem.cells[i] = 0x00
	}

	copy(mem.cells[MEMSPACE_FONT:], font[:])
}

func (mem *Memory) check(addr int) error {
	if addr < 0 || addr >= int(MEMSPACE_END) {
		return &AddressError{addr}
	}

	return nil
}

func (mem *Memory) ReadByte(addr int) (byte, error) {
	if err := mem.check(addr); err != nil {
		return 0, err
	}

	return mem.cells[addr], nil
}

// ReadHalfword reads the big-endian word at addr and addr+1.
func (mem *Memory) ReadHalfword(addr int) (uint16, error) {
	if err := mem.check(addr); err != nil {
		return 0, err
	}

	if err := mem.check(addr + 1); err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint16(mem.cells[addr:]), nil
}

func (mem *Memory) Write(addr int, value byte) error {
	if err := mem.check(addr); err != nil {
		return err
	}

	mem.cells[addr] = value
	return nil
}

// Load copies program into memory starting at MEMSPACE_PROGRAM. Nothing is
// written if the program does not fit.
func (mem *Memory) Load(program []byte) error {
	capacity := int(MEMSPACE_END - MEMSPACE_PROGRAM)

	if len(program) > capacity {
		return &OversizedProgramError{
			Size:     len(program),
			Capacity: capacity,
		}
	}

	copy(mem.cells[MEMSPACE_PROGRAM:], program)
	return nil
}
