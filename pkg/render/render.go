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

// Package render turns frame buffer cells into host pixels.
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lassandro/gochip8/pkg/display"
	"github.com/lassandro/gochip8/pkg/encoding"
)

const (
	DEFAULT_FOREGROUND uint32 = 0xFFC936
	DEFAULT_BACKGROUND uint32 = 0xD4962C
)

type Palette struct {
	Foreground uint32
	Background uint32
}

func DefaultPalette() Palette {
	return Palette{
		Foreground: DEFAULT_FOREGROUND,
		Background: DEFAULT_BACKGROUND,
	}
}

// RGBA expands cells into dst as 4 bytes per cell. dst must hold at least
// 4*len(cells) bytes.
func RGBA(dst []byte, cells []byte, palette Palette) {
	for i, cell := range cells {
		color := palette.Background
		if cell != 0 {
			color = palette.Foreground
		}

		r, g, b := encoding.RGB(color)
		dst[i*4+0] = r
		dst[i*4+1] = g
		dst[i*4+2] = b
		dst[i*4+3] = 0xFF
	}
}

// ANSI draws fb with one half-block character per two rows using 24-bit
// colour escapes, starting from the top-left corner of the terminal.
func ANSI(w io.Writer, fb *display.FrameBuffer, palette Palette) error {
	out := bufio.NewWriter(w)

	if _, err := out.WriteString("\033[H"); err != nil {
		return err
	}

	for y := 0; y < fb.Height(); y += 2 {
		for x := 0; x < fb.Width(); x++ {
			top := palette.Background
			if fb.At(x, y) != 0 {
				top = palette.Foreground
			}

			bottom := palette.Background
			if y+1 < fb.Height() && fb.At(x, y+1) != 0 {
				bottom = palette.Foreground
			}

			tr, tg, tb := encoding.RGB(top)
			br, bg, bb := encoding.RGB(bottom)

			if _, err := fmt.Fprintf(
				out,
				"\033[38;2;%d;%d;%dm\033[48;2;%d;%d;%dm▀",
				tr, tg, tb,
				br, bg, bb,
			); err != nil {
				return err
			}
		}

		if _, err := out.WriteString("\033[0m\r\n"); err != nil {
			return err
		}
	}

	return out.Flush()
}
