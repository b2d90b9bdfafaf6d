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
	"fmt"

	"seehuhn.de/go/exif/convert"
)

// Entry is a single Exif metadata value.
type Entry interface {
	// Tag returns the tag which identifies the meaning of the entry.
	Tag() Tag

	// Format returns the storage format of the entry.
	Format() Format

	// Components returns the number of components of the entry, counted
	// in units of the entry format.
	Components() int

	// Bytes returns the serialised value, in the given byte order.
	Bytes(o convert.ByteOrder) []byte

	// Text returns a human readable representation of the value.  If brief
	// is true, a shorter form is used where one exists.
	Text(brief bool) string
}

// Tag identifies an Exif entry.
type Tag uint16

// These are the tags with special handling in this package.
const (
	TagDateTime          Tag = 0x0132
	TagCopyright         Tag = 0x8298
	TagDateTimeOriginal  Tag = 0x9003
	TagDateTimeDigitized Tag = 0x9004
)

var tagNames = map[Tag]string{
	TagDateTime:          "DateTime",
	TagCopyright:         "Copyright",
	TagDateTimeOriginal:  "DateTimeOriginal",
	TagDateTimeDigitized: "DateTimeDigitized",
}

func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tag(0x%04x)", uint16(t))
}

// isTimeTag reports whether entries with tag t hold a date and time.
func isTimeTag(t Tag) bool {
	switch t {
	case TagDateTime, TagDateTimeOriginal, TagDateTimeDigitized:
		return true
	}
	return false
}

// Format is the storage format of an Exif entry.
// The values are the TIFF field type codes.
type Format uint16

// The formats defined by TIFF 6.0.
const (
	FormatByte      Format = 1
	FormatASCII     Format = 2
	FormatShort     Format = 3
	FormatLong      Format = 4
	FormatRational  Format = 5
	FormatSByte     Format = 6
	FormatUndefined Format = 7
	FormatSShort    Format = 8
	FormatSLong     Format = 9
	FormatSRational Format = 10
	FormatFloat     Format = 11
	FormatDouble    Format = 12
)

var formatNames = map[Format]string{
	FormatByte:      "Byte",
	FormatASCII:     "Ascii",
	FormatShort:     "Short",
	FormatLong:      "Long",
	FormatRational:  "Rational",
	FormatSByte:     "SByte",
	FormatUndefined: "Undefined",
	FormatSShort:    "SShort",
	FormatSLong:     "SLong",
	FormatSRational: "SRational",
	FormatFloat:     "Float",
	FormatDouble:    "Double",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", uint16(f))
}
