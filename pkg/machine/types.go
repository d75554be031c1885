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

package machine

import (
	"fmt"

	"github.com/lassandro/gochip8/pkg/memory"
)

// Display is the drawing surface driven by the clear and draw instructions.
// *display.FrameBuffer satisfies it.
type Display interface {
	Clear()
	DrawRow(x, y int, row byte) bool
}

type MachineState struct {
	Registers [16]uint8
	Program   uint16
	Index     uint16
	Stack     []uint16
	Delay     uint8
}

type Machine struct {
	State  MachineState
	Memory memory.Memory

	// Random supplies the bytes masked by CXNN. Nil uses math/rand.
	Random func() uint8

	// StandardBCD stores FX33 digits as hundreds, tens, ones at I, I+1, I+2.
	// When false the hundreds go to I and the tens to I+2, leaving I+1 as is.
	StandardBCD bool
}

type DecodeError struct {
	Program     uint16
	Instruction uint16
}

func (err *DecodeError) Error() string {
	return fmt.Sprintf(
		"Unrecognized instruction %#04x:%#04x",
		err.Program,
		err.Instruction,
	)
}
