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

	"seehuhn.de/go/exif/convert"
)

// CopyrightEntry holds the copyright information of an image.
//
// Exif stores two copyright notices in a single ASCII entry: one for the
// photographer and one for the editor.  Either of the two may be empty.
type CopyrightEntry struct {
	photographer string
	editor       string
}

// NewCopyright returns a new copyright entry with empty photographer and
// editor notices.  The tag of the entry is [TagCopyright].
func NewCopyright() *CopyrightEntry {
	return &CopyrightEntry{}
}

// CopyrightOption changes one of the fields of a [CopyrightEntry].
type CopyrightOption func(*CopyrightEntry)

// Photographer sets the photographer copyright notice.
func Photographer(s string) CopyrightOption {
	return func(e *CopyrightEntry) {
		e.photographer = toASCII(s)
	}
}

// Editor sets the editor copyright notice.
func Editor(s string) CopyrightOption {
	return func(e *CopyrightEntry) {
		e.editor = toASCII(s)
	}
}

// SetValue updates the copyright notices.  Fields without a corresponding
// option keep their current value.  Non-ASCII input is handled as for
// [ASCIIEntry.SetValue].
func (e *CopyrightEntry) SetValue(opts ...CopyrightOption) {
	for _, opt := range opts {
		opt(e)
	}
}

// Value returns the photographer and editor copyright notices.
func (e *CopyrightEntry) Value() (photographer, editor string) {
	return e.photographer, e.editor
}

// Tag implements the [Entry] interface.
func (e *CopyrightEntry) Tag() Tag {
	return TagCopyright
}

// Format implements the [Entry] interface.
func (e *CopyrightEntry) Format() Format {
	return FormatASCII
}

// Components implements the [Entry] interface.
func (e *CopyrightEntry) Components() int {
	return len(e.Bytes(convert.LittleEndian))
}

// Bytes implements the [Entry] interface.
//
// The photographer notice comes first, followed by the editor notice if
// this is non-empty.  Each notice is terminated by a NUL byte.  If only the
// editor notice is present, the photographer notice is written as a single
// space.
func (e *CopyrightEntry) Bytes(convert.ByteOrder) []byte {
	photographer := e.photographer
	if photographer == "" && e.editor != "" {
		photographer = " "
	}

	buf := appendCString(nil, photographer)
	if e.editor != "" {
		buf = appendCString(buf, e.editor)
	}
	return buf
}

// Text implements the [Entry] interface.
//
// In compact form, the notices are joined by " - ".  Otherwise each notice
// is followed by "(Photographer)" or "(Editor)".
func (e *CopyrightEntry) Text(compact bool) string {
	p, ed := e.photographer, e.editor
	if !compact {
		if p != "" {
			p += " (Photographer)"
		}
		if ed != "" {
			ed += " (Editor)"
		}
	}

	switch {
	case p != "" && ed != "":
		return p + " - " + ed
	case p != "":
		return p
	default:
		return ed
	}
}

// DecodeCopyright reads a copyright entry from its serialised form.
func DecodeCopyright(data []byte) *CopyrightEntry {
	photographer, rest, _ := bytes.Cut(data, []byte{0})
	editor, _, _ := bytes.Cut(rest, []byte{0})

	e := &CopyrightEntry{
		photographer: toASCII(string(photographer)),
		editor:       toASCII(string(editor)),
	}
	if e.photographer == " " && e.editor != "" {
		e.photographer = ""
	}
	return e
}
