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

// Package exif represents the values of Exif metadata entries.
//
// # Entries
//
// An Exif entry is a single typed value, bound to a [Tag] which identifies
// its meaning.  Every entry implements the [Entry] interface, which gives
// access to the tag, the storage [Format], the number of components and the
// serialised form of the value.  The package provides the following entry
// types:
//
//   - [NumericEntry] holds one or more integers of one of the integer
//     formats (BYTE, SHORT, LONG, SBYTE, SSHORT, SLONG).
//   - [ASCIIEntry] holds a NUL-terminated ASCII string.
//   - [TimeEntry] holds a date and time in the fixed Exif layout
//     "YYYY:MM:DD HH:MM:SS".  The value can be read and set as a Unix
//     timestamp, as an Exif string or as a Julian day count.
//   - [CopyrightEntry] holds the photographer and editor copyright
//     strings.
//
// # Validation
//
// All values are checked when an entry is constructed or modified.  Numeric
// values outside the range of the entry format are rejected with an
// [*OverflowError], malformed arguments with an [*InvalidArgumentError].
// Once an entry exists, the accessors cannot fail.
//
// # Byte order
//
// Entries are serialised using [Entry.Bytes], which takes the target byte
// order as an argument.  Byte order handling lives in the
// [seehuhn.de/go/exif/convert] package.  [Decode] reverses the
// serialisation.
package exif
