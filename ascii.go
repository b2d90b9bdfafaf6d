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
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"seehuhn.de/go/exif/convert"
)

// ASCIIEntry holds a single ASCII string.
//
// The string is stored with a terminating NUL byte, so the number of
// components is one more than the length of the string.
type ASCIIEntry struct {
	tag Tag
	str string
}

// NewASCII returns a new entry holding the given string.
// See [ASCIIEntry.SetValue] for how non-ASCII input is handled.
func NewASCII(tag Tag, s string) *ASCIIEntry {
	e := &ASCIIEntry{tag: tag}
	e.SetValue(s)
	return e
}

// SetValue replaces the stored string.
//
// NUL bytes are removed from s and every other character outside the 7-bit
// ASCII range is replaced by a question mark.
func (e *ASCIIEntry) SetValue(s string) {
	e.str = toASCII(s)
}

// Value returns the stored string.
func (e *ASCIIEntry) Value() string {
	return e.str
}

// Tag implements the [Entry] interface.
func (e *ASCIIEntry) Tag() Tag {
	return e.tag
}

// Format implements the [Entry] interface.
func (e *ASCIIEntry) Format() Format {
	return FormatASCII
}

// Components implements the [Entry] interface.
func (e *ASCIIEntry) Components() int {
	return len(e.str) + 1
}

// Bytes implements the [Entry] interface.
func (e *ASCIIEntry) Bytes(convert.ByteOrder) []byte {
	return appendCString(nil, e.str)
}

// Text implements the [Entry] interface.
func (e *ASCIIEntry) Text(bool) string {
	return e.str
}

// DecodeASCII reads an ASCII entry.  The string ends at the first NUL byte,
// or at the end of data if there is none.
func DecodeASCII(tag Tag, data []byte) *ASCIIEntry {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	return NewASCII(tag, string(data))
}

func appendCString(dst []byte, s string) []byte {
	dst = append(dst, s...)
	return append(dst, 0)
}

// asciiFilter returns a transformer which removes NUL characters and
// replaces everything outside the 7-bit range.  Invalid UTF-8 arrives here as
// utf8.RuneError.
func asciiFilter() transform.Transformer {
	return transform.Chain(
		runes.Remove(runes.Predicate(func(r rune) bool { return r == 0 })),
		runes.Map(func(r rune) rune {
			if r >= utf8.RuneSelf {
				return '?'
			}
			return r
		}),
	)
}

func toASCII(s string) string {
	isASCII := true
	for i := 0; i < len(s); i++ {
		if c := s[i]; c == 0 || c >= utf8.RuneSelf {
			isASCII = false
			break
		}
	}
	if isASCII {
		return s
	}

	res, _, _ := transform.String(asciiFilter(), s)
	return res
}
