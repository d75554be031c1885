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

package display

const (
	DEFAULT_WIDTH  = 64
	DEFAULT_HEIGHT = 32
)

// FrameBuffer is a row-major grid of 1-bit pixels.
type FrameBuffer struct {
	width  int
	height int
	cells  []byte
}

// New returns a cleared frame buffer. Non-positive dimensions fall back to
// DEFAULT_WIDTH x DEFAULT_HEIGHT.
func New(width, height int) *FrameBuffer {
	if width <= 0 || height <= 0 {
		width, height = DEFAULT_WIDTH, DEFAULT_HEIGHT
	}

	return &FrameBuffer{
		width:  width,
		height: height,
		cells:  make([]byte, width*height),
	}
}

func (fb *FrameBuffer) Width() int {
	return fb.width
}

func (fb *FrameBuffer) Height() int {
	return fb.height
}

func (fb *FrameBuffer) Clear() {
	for i := range fb.cells {
		fb.cells[i] = 0
	}
}

// At reports the pixel at x, y after wrapping both coordinates.
func (fb *FrameBuffer) At(x, y int) byte {
	return fb.cells[fb.index(x, y)]
}

func (fb *FrameBuffer) index(x, y int) int {
	x %= fb.width
	if x < 0 {
		x += fb.width
	}

	y %= fb.height
	if y < 0 {
		y += fb.height
	}

	return y*fb.width + x
}

// DrawRow XORs the 8 bits of row, most significant first, into the cells
// starting at x, y. Columns and the row wrap around the edges. It returns true
// when any cell went from set to unset.
func (fb *FrameBuffer) DrawRow(x, y int, row byte) bool {
	unset := false

	for b := 0; b < 8; b++ {
		i := fb.index(x+b, y)
		bit := (row >> (7 - b)) & 0x1
		prev := fb.cells[i]

		fb.cells[i] ^= bit

		if prev == 1 && fb.cells[i] == 0 {
			unset = true
		}
	}

	return unset
}

// Snapshot returns a copy of the cells, width*height long.
func (fb *FrameBuffer) Snapshot() []byte {
	result := make([]byte, len(fb.cells))
	copy(result, fb.cells)
	return result
}
