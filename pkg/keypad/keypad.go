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

// Package keypad maps host keyboards onto the 16-key hex keypad.
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   <-   Q W E R
//	7 8 9 E        A S D F
//	A 0 B F        Z X C V
package keypad

import (
	"time"
	"unicode"
)

const NONE uint8 = 0x0

type Binding struct {
	Rune rune
	Code uint8
}

// Layout lists the bindings in the order they are polled; the first held key
// wins when several are down.
var Layout = []Binding{
	{'1', 0x1}, {'2', 0x2}, {'3', 0x3}, {'4', 0xC},
	{'q', 0x4}, {'w', 0x5}, {'e', 0x6}, {'r', 0xD},
	{'a', 0x7}, {'s', 0x8}, {'d', 0x9}, {'f', 0xE},
	{'z', 0xA}, {'x', 0x0}, {'c', 0xB}, {'v', 0xF},
}

func FromRune(r rune) (uint8, bool) {
	r = unicode.ToLower(r)

	for _, binding := range Layout {
		if binding.Rune == r {
			return binding.Code, true
		}
	}

	return NONE, false
}

// Latch keeps the last pressed key held for a while. Terminals only report
// presses, so a key counts as down until Hold elapses without a repeat.
type Latch struct {
	Hold time.Duration

	key     uint8
	expires time.Time
}

const DEFAULT_HOLD = 150 * time.Millisecond

func (l *Latch) Press(code uint8, now time.Time) {
	hold := l.Hold
	if hold <= 0 {
		hold = DEFAULT_HOLD
	}

	l.key = code
	l.expires = now.Add(hold)
}

func (l *Latch) Key(now time.Time) uint8 {
	if now.Before(l.expires) {
		return l.key
	}

	return NONE
}
