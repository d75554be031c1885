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
	"fmt"
)

type Memory struct {
	cells [MEMSPACE_END]byte
}

type AddressError struct {
	Address int
}

func (err *AddressError) Error() string {
	return fmt.Sprintf(
		"Address %#04x is outside of memory [%#04x-%#04x]",
		err.Address,
		0,
		MEMSPACE_END-1,
	)
}

type OversizedProgramError struct {
	Size     int
	Capacity int
}

func (err *OversizedProgramError) Error() string {
	return fmt.Sprintf(
		"Program exceeds memory size\n\twant:<=%d bytes\n\thave:%d bytes",
		err.Capacity,
		err.Size,
	)
}
