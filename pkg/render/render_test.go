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

package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lassandro/gochip8/pkg/display"
	"github.com/lassandro/gochip8/pkg/render"
	"github.com/retroenv/retrogolib/assert"
)

func TestRGBA(t *testing.T) {
	palette := render.Palette{Foreground: 0x112233, Background: 0xA0B0C0}
	dst := make([]byte, 3*4)

	render.RGBA(dst, []byte{1, 0, 1}, palette)

	assert.Equal(t, []byte{
		0x11, 0x22, 0x33, 0xFF,
		0xA0, 0xB0, 0xC0, 0xFF,
		0x11, 0x22, 0x33, 0xFF,
	}, dst)
}

func TestDefaultPalette(t *testing.T) {
	palette := render.DefaultPalette()
	assert.Equal(t, uint32(0xFFC936), palette.Foreground)
	assert.Equal(t, uint32(0xD4962C), palette.Background)
}

func TestANSI(t *testing.T) {
	fb := display.New(8, 3)
	fb.DrawRow(0, 0, 0x80)
	fb.DrawRow(0, 1, 0x40)

	var out bytes.Buffer
	palette := render.Palette{Foreground: 0xFFFFFF, Background: 0x000000}
	assert.NoError(t, render.ANSI(&out, fb, palette))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "\033[H"))

	// Three rows fold into two terminal lines
	assert.Equal(t, 2, strings.Count(text, "\r\n"))
	assert.Equal(t, 16, strings.Count(text, "▀"))

	lines := strings.Split(strings.TrimPrefix(text, "\033[H"), "\r\n")
	cells := strings.Split(lines[0], "▀")

	// Column 0: top set, bottom clear. Column 1: top clear, bottom set.
	assert.Equal(t, "\033[38;2;255;255;255m\033[48;2;0;0;0m", cells[0])
	assert.Equal(t, "\033[38;2;0;0;0m\033[48;2;255;255;255m", cells[1])
	assert.Equal(t, "\033[38;2;0;0;0m\033[48;2;0;0;0m", cells[2])
}
