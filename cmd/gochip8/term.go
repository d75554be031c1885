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
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/lassandro/gochip8/pkg/display"
	"github.com/lassandro/gochip8/pkg/keypad"
	"github.com/lassandro/gochip8/pkg/machine"
	"github.com/lassandro/gochip8/pkg/render"
)

const (
	KEY_ESCAPE byte = 0x1B
	KEY_CTRL_C byte = 0x03
)

var termRestore *term.State

func enterRawTerm() error {
	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)

	if err != nil {
		return err
	}

	if err := unix.SetNonblock(fd, true); err != nil {
		_ = term.Restore(fd, state)
		return err
	}

	termRestore = state

	// Hide the cursor and clear the screen
	fmt.Print("\033[?25l\033[2J")
	return nil
}

func exitRawTerm() {
	fd := int(os.Stdin.Fd())

	fmt.Print("\033[0m\033[?25h\r\n")

	if err := unix.SetNonblock(fd, false); err != nil {
		panic(err)
	}

	if err := term.Restore(fd, termRestore); err != nil {
		panic(err)
	}
}

// readKeys forwards raw stdin bytes until ctx is done.
func readKeys(ctx context.Context, keys chan<- byte) {
	fd := int(os.Stdin.Fd())
	buf := make([]byte, 16)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		n, err := unix.Read(fd, buf)

		if err == unix.EAGAIN || err == unix.EWOULDBLOCK || n == 0 {
			time.Sleep(5 * time.Millisecond)
			continue
		} else if err != nil {
			return
		}

		for _, b := range buf[:n] {
			select {
			case keys <- b:
			case <-ctx.Done():
				return
			}
		}
	}
}

func runTerm(
	ctx context.Context,
	mc *machine.Machine,
	fb *display.FrameBuffer,
	rate int,
	palette render.Palette,
) error {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))

	if err != nil {
		return err
	}

	if cols < fb.Width() || rows < (fb.Height()+1)/2 {
		return fmt.Errorf(
			"Terminal too small\n\twant:%dx%d\n\thave:%dx%d",
			fb.Width(),
			(fb.Height()+1)/2,
			cols,
			rows,
		)
	}

	if err := enterRawTerm(); err != nil {
		return err
	}

	defer exitRawTerm()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := make(chan byte, 16)
	go readKeys(ctx, keys)

	var latch keypad.Latch

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case b := <-keys:
			// Raw mode delivers ^C as a byte instead of a signal
			if b == KEY_ESCAPE || b == KEY_CTRL_C {
				return nil
			}

			if code, ok := keypad.FromRune(rune(b)); ok {
				latch.Press(code, time.Now())
			}

		case now := <-ticker.C:
			key := latch.Key(now)

			if err := mc.Run(fb, key, rate); err != nil {
				return err
			}

			if err := render.ANSI(os.Stdout, fb, palette); err != nil {
				return err
			}
		}
	}
}
