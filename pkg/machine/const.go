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

const FLAG_REGISTER = 0xF

const (
	OP_SYS     uint16 = 0x0
	OP_JP      uint16 = 0x1
	OP_CALL    uint16 = 0x2
	OP_SE_IMM  uint16 = 0x3
	OP_SNE_IMM uint16 = 0x4
	OP_SE_REG  uint16 = 0x5
	OP_LD_IMM  uint16 = 0x6
	OP_ADD_IMM uint16 = 0x7
	OP_ALU     uint16 = 0x8
	OP_SNE_REG uint16 = 0x9
	OP_LD_I    uint16 = 0xA
	OP_JP_V0   uint16 = 0xB
	OP_RND     uint16 = 0xC
	OP_DRW     uint16 = 0xD
	OP_SKP     uint16 = 0xE
	OP_MISC    uint16 = 0xF
)

// Selected by the low byte of OP_SYS
const (
	SYS_CLS uint8 = 0xE0
	SYS_RET uint8 = 0xEE
)

// Selected by the low nibble of OP_ALU
const (
	ALU_LD   uint16 = 0x0
	ALU_OR   uint16 = 0x1
	ALU_AND  uint16 = 0x2
	ALU_XOR  uint16 = 0x3
	ALU_ADD  uint16 = 0x4
	ALU_SUB  uint16 = 0x5
	ALU_SHR  uint16 = 0x6
	ALU_SUBN uint16 = 0x7
	ALU_SHL  uint16 = 0xE
)

// Selected by the low byte of OP_SKP
const (
	SKP_PRESSED  uint8 = 0x9E
	SKP_RELEASED uint8 = 0xA1
)

// Selected by the low byte of OP_MISC
const (
	MISC_LD_DT   uint8 = 0x07
	MISC_LD_KEY  uint8 = 0x0A
	MISC_SET_DT  uint8 = 0x15
	MISC_SET_ST  uint8 = 0x18
	MISC_ADD_I   uint8 = 0x1E
	MISC_GLYPH   uint8 = 0x29
	MISC_BCD     uint8 = 0x33
	MISC_STORE   uint8 = 0x55
	MISC_RESTORE uint8 = 0x65
)

const KEY_NONE uint8 = 0x0
