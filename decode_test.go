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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/exif/convert"
)

func TestDecode(t *testing.T) {
	type testCase struct {
		desc   string
		tag    Tag
		format Format
		count  int
		data   []byte
		order  convert.ByteOrder
		want   string // Text(false) of the decoded entry
	}
	testCases := []testCase{
		{"copyright", TagCopyright, FormatASCII, 6, []byte(" \x00Bob\x00"),
			convert.LittleEndian, "Bob (Editor)"},
		{"date time", TagDateTimeOriginal, FormatASCII, 20, []byte("2001:02:03 04:05:06\x00"),
			convert.LittleEndian, "2001:02:03 04:05:06"},
		{"ascii", 0x010f, FormatASCII, 6, []byte("Canon\x00padding"),
			convert.LittleEndian, "Canon"},
		{"slong", 0x9201, FormatSLong, 2, []byte{0, 0, 0, 1, 0xff, 0xff, 0xff, 0xff},
			convert.BigEndian, "1, -1"},
		{"short", 0x0112, FormatShort, 1, []byte{6, 0},
			convert.LittleEndian, "6"},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			e, err := Decode(tc.tag, tc.format, tc.count, tc.data, tc.order)
			if err != nil {
				t.Fatal(err)
			}
			if e.Tag() != tc.tag || e.Format() != tc.format {
				t.Errorf("wrong tag or format: %s, %s", e.Tag(), e.Format())
			}
			if text := e.Text(false); text != tc.want {
				t.Errorf("Text(false) = %q, want %q", text, tc.want)
			}
			got := e.Bytes(tc.order)
			if len(got) > len(tc.data) {
				t.Fatalf("re-encoding is too long: %q", got)
			}
			if d := cmp.Diff(tc.data[:len(got)], got); d != "" {
				t.Errorf("re-encoding differs (-want +got):\n%s", d)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	type testCase struct {
		desc   string
		tag    Tag
		format Format
		count  int
		data   []byte
	}
	testCases := []testCase{
		{"unsupported format", 1, FormatRational, 1, make([]byte, 8)},
		{"short ASCII", 1, FormatASCII, 10, []byte("abc\x00")},
		{"short numeric", 1, FormatLong, 2, make([]byte, 4)},
		{"malformed date", TagDateTime, FormatASCII, 5, []byte("2001\x00")},
		{"negative count", 1, FormatASCII, -1, nil},
		{"huge numeric count", 1, FormatSLong, 1 << 62, []byte{1, 2, 3, 4}},
		{"huge short count", 1, FormatShort, 1<<62 + 1, make([]byte, 6)},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			e, err := Decode(tc.tag, tc.format, tc.count, tc.data, convert.LittleEndian)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected an invalid argument error, got %v", err)
			}
			if e != nil {
				t.Errorf("got entry %v together with an error", e)
			}
		})
	}
}
