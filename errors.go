// seehuhn.de/go/exif - Exif metadata entries in Go
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package exif

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow matches every [*OverflowError] via [errors.Is].
	ErrOverflow = errors.New("exif: value out of range")

	// ErrInvalidArgument matches every [*InvalidArgumentError] via
	// [errors.Is].
	ErrInvalidArgument = errors.New("exif: invalid argument")
)

// OverflowError is returned when a value lies outside the range permitted by
// the format of an entry.
type OverflowError struct {
	Value    int64
	Min, Max int64
}

func (err *OverflowError) Error() string {
	return fmt.Sprintf("exif: value %d out of range [%d, %d]",
		err.Value, err.Min, err.Max)
}

// Is implements the interface used by [errors.Is].
func (err *OverflowError) Is(target error) bool {
	return target == ErrOverflow
}

// InvalidArgumentError is returned when a constructor or setter is called
// with malformed arguments.
type InvalidArgumentError struct {
	Op  string
	Msg string
}

func (err *InvalidArgumentError) Error() string {
	return "exif: " + err.Op + ": " + err.Msg
}

// Is implements the interface used by [errors.Is].
func (err *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalidArgument(op, format string, args ...any) error {
	return &InvalidArgumentError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
