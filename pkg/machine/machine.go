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
	"io"
	"math/rand"

	"github.com/lassandro/gochip8/pkg/encoding"
	"github.com/lassandro/gochip8/pkg/memory"
)

// New returns a machine in its power-on state.
func New() *Machine {
	var mc Machine
	mc.Reset()
	return &mc
}

func (mc *Machine) Reset() {
	mc.State.Reset()
	mc.Memory.Reset()
}

func (state *MachineState) Reset() {
	for i := range state.Registers {
		state.Registers[i] = 0x00
	}

	// Everything below the program space belongs to the font
	state.Program = memory.MEMSPACE_PROGRAM
	state.Index = 0x0000
	state.Stack = nil
	state.Delay = 0x00
}

// Load resets the machine and places program at the start of program space.
func (mc *Machine) Load(program []byte) error {
	mc.Reset()
	return mc.Memory.Load(program)
}

func (mc *Machine) LoadBin(reader io.Reader) error {
	program, err := io.ReadAll(reader)

	if err != nil {
		return err
	}

	return mc.Load(program)
}

func (mc *Machine) random() uint8 {
	if mc.Random != nil {
		return mc.Random()
	}

	return uint8(rand.Intn(0x100))
}

func (mc *Machine) push(value uint16) {
	mc.State.Stack = append(mc.State.Stack, value)
}

func (mc *Machine) pop() (uint16, bool) {
	depth := len(mc.State.Stack)

	if depth == 0 {
		return 0, false
	}

	result := mc.State.Stack[depth-1]
	mc.State.Stack = mc.State.Stack[:depth-1]
	return result, true
}

func (mc *Machine) read(addr int) (byte, error) {
	value, err := mc.Memory.ReadByte(addr)

	if err != nil {
		return 0, fmt.Errorf("%#04x: %w", mc.State.Program, err)
	}

	return value, nil
}

func (mc *Machine) write(addr int, value byte) error {
	if err := mc.Memory.Write(addr, value); err != nil {
		return fmt.Errorf("%#04x: %w", mc.State.Program, err)
	}

	return nil
}

func (mc *Machine) skipIf(condition bool) {
	if condition {
		mc.State.Program += 2
	}
}

// Run executes up to count steps with the same key held, stopping at the first
// fault.
func (mc *Machine) Run(dsp Display, key uint8, count int) error {
	for i := 0; i < count; i++ {
		if err := mc.Step(dsp, key); err != nil {
			return err
		}
	}

	return nil
}

// Step executes the instruction at the program counter. key is the code of the
// key currently held, KEY_NONE when nothing is pressed. A returned error leaves
// the machine in an undefined state and no further steps should be taken.
func (mc *Machine) Step(dsp Display, key uint8) error {
	instruction, err := mc.Memory.ReadHalfword(int(mc.State.Program))

	if err != nil {
		return fmt.Errorf("Fetching instruction: %w", err)
	}

	regs := &mc.State.Registers
	vx := encoding.RegX(instruction)
	vy := encoding.RegY(instruction)

	switch encoding.Opcode(instruction) {
	// CLS  |0000    |0000   |1110   |0000   | Clear display
	// RET  |0000    |0000   |1110   |1110   | Return from subroutine
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_SYS:
		switch encoding.Byte(instruction) {
		case SYS_CLS:
			dsp.Clear()

		case SYS_RET:
			// An empty stack falls through to the next instruction
			if addr, ok := mc.pop(); ok {
				mc.State.Program = addr
				return nil
			}

		default:
			return mc.decodeError(instruction)
		}

	// JP   |0001    |NNN                    | Jump
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_JP:
		mc.State.Program = encoding.Address(instruction)
		return nil

	// CALL |0010    |NNN                    | Call subroutine
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_CALL:
		mc.push(mc.State.Program + 2)
		mc.State.Program = encoding.Address(instruction)
		return nil

	// SE   |0011    |X      |NN             | Skip if Vx == NN
	// SNE  |0100    |X      |NN             | Skip if Vx != NN
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_SE_IMM:
		mc.skipIf(regs[vx] == encoding.Byte(instruction))

	case OP_SNE_IMM:
		mc.skipIf(regs[vx] != encoding.Byte(instruction))

	// SE   |0101    |X      |Y      |0000   | Skip if Vx == Vy
	// SNE  |1001    |X      |Y      |0000   | Skip if Vx != Vy
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_SE_REG:
		mc.skipIf(regs[vx] == regs[vy])

	case OP_SNE_REG:
		mc.skipIf(regs[vx] != regs[vy])

	// LD   |0110    |X      |NN             | Vx = NN
	// ADD  |0111    |X      |NN             | Vx += NN, no carry
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_LD_IMM:
		regs[vx] = encoding.Byte(instruction)

	case OP_ADD_IMM:
		regs[vx] += encoding.Byte(instruction)

	// ALU  |1000    |X      |Y      |op     | Register arithmetic
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_ALU:
		if err := mc.alu(instruction, vx, vy); err != nil {
			return err
		}

	// LD   |1010    |NNN                    | I = NNN
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_LD_I:
		mc.State.Index = encoding.Address(instruction)

	// JP   |1011    |NNN                    | Jump to V0 + NNN
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_JP_V0:
		mc.State.Program = uint16(regs[0]) + encoding.Address(instruction)
		return nil

	// RND  |1100    |X      |NN             | Vx = random & NN
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_RND:
		regs[vx] = mc.random() & encoding.Byte(instruction)

	// DRW  |1101    |X      |Y      |N      | Draw N rows from I at Vx, Vy
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_DRW:
		unset := false
		regs[FLAG_REGISTER] = 0

		for h := uint16(0); h < encoding.Nibble(instruction); h++ {
			row, err := mc.read(int(mc.State.Index) + int(h))

			if err != nil {
				return err
			}

			// Coordinates are read after VF is cleared, so VF as X or Y is 0
			if dsp.DrawRow(int(regs[vx]), int(regs[vy]+uint8(h)), row) {
				unset = true
			}
		}

		if unset {
			regs[FLAG_REGISTER] = 1
		} else {
			regs[FLAG_REGISTER] = 0
		}

	// SKP  |1110    |X      |1001   |1110   | Skip if key == Vx
	// SKNP |1110    |X      |1010   |0001   | Skip if key != Vx
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_SKP:
		switch encoding.Byte(instruction) {
		case SKP_PRESSED:
			mc.skipIf(key == regs[vx])

		case SKP_RELEASED:
			mc.skipIf(key != regs[vx])

		default:
			return mc.decodeError(instruction)
		}

	// MISC |1111    |X      |op             | Timers, keys, index and memory
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case OP_MISC:
		if encoding.Byte(instruction) == MISC_LD_KEY && key == KEY_NONE {
			// Re-run this instruction until a key is held
			return nil
		}

		if err := mc.misc(instruction, vx, key); err != nil {
			return err
		}
	}

	mc.State.Program += 2
	return nil
}

func (mc *Machine) alu(instruction uint16, vx, vy uint16) error {
	regs := &mc.State.Registers

	switch encoding.Nibble(instruction) {
	case ALU_LD:
		regs[vx] = regs[vy]

	case ALU_OR:
		regs[vx] |= regs[vy]

	case ALU_AND:
		regs[vx] &= regs[vy]

	case ALU_XOR:
		regs[vx] ^= regs[vy]

	case ALU_ADD:
		sum := uint16(regs[vx]) + uint16(regs[vy])
		regs[vx] = uint8(sum)

		// VF is only ever raised here, never cleared
		if sum > 0xFF {
			regs[FLAG_REGISTER] = 1
		}

	case ALU_SUB:
		borrow := regs[vx] < regs[vy]
		regs[vx] -= regs[vy]
		regs[FLAG_REGISTER] = flag(borrow)

	case ALU_SHR:
		regs[FLAG_REGISTER] = regs[vx] & 0x1
		regs[vx] >>= 1

	case ALU_SUBN:
		borrow := regs[vy] < regs[vx]
		regs[vx] = regs[vy] - regs[vx]
		regs[FLAG_REGISTER] = flag(borrow)

	case ALU_SHL:
		regs[FLAG_REGISTER] = regs[vx] >> 7
		regs[vx] <<= 1

	default:
		return mc.decodeError(instruction)
	}

	return nil
}

func (mc *Machine) misc(instruction uint16, vx uint16, key uint8) error {
	regs := &mc.State.Registers

	switch encoding.Byte(instruction) {
	case MISC_LD_DT:
		// The delay counter only runs down when it is read
		if mc.State.Delay > 0 {
			mc.State.Delay--
		}

		regs[vx] = mc.State.Delay

	case MISC_LD_KEY:
		regs[vx] = key

	case MISC_SET_DT:
		mc.State.Delay = regs[vx]

	case MISC_SET_ST:
		// No sound timer

	case MISC_ADD_I:
		mc.State.Index += uint16(regs[vx])

	case MISC_GLYPH:
		mc.State.Index = uint16(regs[vx]) * memory.GLYPH_SIZE

	case MISC_BCD:
		digits := encoding.BCD(regs[vx])
		addr := int(mc.State.Index)

		if err := mc.write(addr, digits[0]); err != nil {
			return err
		}

		if mc.StandardBCD {
			if err := mc.write(addr+1, digits[1]); err != nil {
				return err
			}

			return mc.write(addr+2, digits[2])
		}

		return mc.write(addr+2, digits[1])

	case MISC_STORE:
		for i := uint16(0); i <= vx; i++ {
			if err := mc.write(int(mc.State.Index)+int(i), regs[i]); err != nil {
				return err
			}
		}

	case MISC_RESTORE:
		for i := uint16(0); i <= vx; i++ {
			value, err := mc.read(int(mc.State.Index) + int(i))

			if err != nil {
				return err
			}

			regs[i] = value
		}

	default:
		return mc.decodeError(instruction)
	}

	return nil
}

func (mc *Machine) decodeError(instruction uint16) error {
	return &DecodeError{
		Program:     mc.State.Program,
		Instruction: instruction,
	}
}

func flag(set bool) uint8 {
	if set {
		return 1
	}

	return 0
}
