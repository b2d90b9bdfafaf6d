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

import "seehuhn.de/go/exif/convert"

// Decode constructs an entry from the data of an Exif directory entry.
//
// The argument count is the number of components, in units of format, and
// data must contain at least the corresponding number of bytes.  The entry
// type is chosen from tag and format: ASCII data for [TagCopyright] gives a
// [*CopyrightEntry], ASCII data for the date and time tags gives a
// [*TimeEntry], other ASCII data gives an [*ASCIIEntry], and integer formats
// give a [*NumericEntry].
func Decode(tag Tag, format Format, count int, data []byte, o convert.ByteOrder) (Entry, error) {
	if format != FormatASCII {
		if _, isNumeric := numericFormats[format]; !isNumeric {
			return nil, invalidArgument("Decode", "unsupported format %s for %s", format, tag)
		}
		e, err := DecodeNumeric(tag, format, count, data, o)
		if err != nil {
			return nil, err
		}
		return e, nil
	}

	if count < 0 || len(data) < count {
		return nil, invalidArgument("Decode",
			"%d bytes are too short for %d ASCII components", len(data), count)
	}
	data = data[:count]

	switch {
	case tag == TagCopyright:
		return DecodeCopyright(data), nil
	case isTimeTag(tag):
		e, err := DecodeTime(tag, data)
		if err != nil {
			return nil, err
		}
		return e, nil
	default:
		return DecodeASCII(tag, data), nil
	}
}
