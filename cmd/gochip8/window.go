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

package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/lassandro/gochip8/pkg/display"
	"github.com/lassandro/gochip8/pkg/encoding"
	"github.com/lassandro/gochip8/pkg/keypad"
	"github.com/lassandro/gochip8/pkg/machine"
	"github.com/lassandro/gochip8/pkg/render"
)

var windowKeys = map[rune]ebiten.Key{
	'1': ebiten.Key1, '2': ebiten.Key2, '3': ebiten.Key3, '4': ebiten.Key4,
	'q': ebiten.KeyQ, 'w': ebiten.KeyW, 'e': ebiten.KeyE, 'r': ebiten.KeyR,
	'a': ebiten.KeyA, 's': ebiten.KeyS, 'd': ebiten.KeyD, 'f': ebiten.KeyF,
	'z': ebiten.KeyZ, 'x': ebiten.KeyX, 'c': ebiten.KeyC, 'v': ebiten.KeyV,
}

// window runs the machine from ebiten's game loop. Update and Draw are called
// from the same goroutine, so the machine is never shared.
type window struct {
	mc      *machine.Machine
	fb      *display.FrameBuffer
	rate    int
	palette render.Palette
	width   int
	height  int

	image  *ebiten.Image
	pixels []byte
	fault  error
}

func runWindow(
	mc *machine.Machine,
	fb *display.FrameBuffer,
	width, height, rate int,
	palette render.Palette,
) error {
	win := &window{
		mc:      mc,
		fb:      fb,
		rate:    rate,
		palette: palette,
		width:   width,
		height:  height,
		pixels:  make([]byte, fb.Width()*fb.Height()*4),
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("gochip8")
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(win); err != nil {
		return err
	}

	return win.fault
}

func pollKeypad() uint8 {
	for _, binding := range keypad.Layout {
		if ebiten.IsKeyPressed(windowKeys[binding.Rune]) {
			return binding.Code
		}
	}

	return keypad.NONE
}

func (win *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// Keep the last frame up after a fault until the window is closed
	if win.fault != nil {
		return nil
	}

	win.fault = win.mc.Run(win.fb, pollKeypad(), win.rate)
	return nil
}

func (win *window) Draw(screen *ebiten.Image) {
	if win.image == nil {
		win.image = ebiten.NewImage(win.fb.Width(), win.fb.Height())
	}

	render.RGBA(win.pixels, win.fb.Snapshot(), win.palette)
	win.image.WritePixels(win.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(
		float64(win.width)/float64(win.fb.Width()),
		float64(win.height)/float64(win.fb.Height()),
	)
	screen.DrawImage(win.image, op)

	if win.fault != nil {
		r, g, b := encoding.RGB(win.palette.Foreground)
		face := basicfont.Face7x13
		text.Draw(screen, win.fault.Error(), face, 4, 16, color.RGBA{R: r, G: g, B: b, A: 0xFF})
	}
}

func (win *window) Layout(_, _ int) (int, int) {
	return win.width, win.height
}
