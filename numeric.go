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
	"math"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"seehuhn.de/go/exif/convert"
)

// NumericEntry holds one or more integers in one of the integer formats.
//
// The range of permitted values is fixed by the format.  For example, an
// entry with format [FormatSLong] can hold values between -2147483648 and
// 2147483647 (inclusive).
type NumericEntry struct {
	tag    Tag
	format Format
	info   *numericFormat
	values []int64
}

// NewNumeric returns a new entry with the given integer format.
//
// If one of the values is outside the range of the format, an
// [*OverflowError] is returned.  If the format is not an integer format, an
// [*InvalidArgumentError] is returned.  Use [Formats] to list the supported
// formats.
func NewNumeric(tag Tag, format Format, values ...int64) (*NumericEntry, error) {
	info, ok := numericFormats[format]
	if !ok {
		return nil, invalidArgument("NewNumeric", "%s is not an integer format", format)
	}
	e := &NumericEntry{
		tag:    tag,
		format: format,
		info:   info,
	}
	err := e.SetValue(values...)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// NewNumericFrom is like [NewNumeric], but accepts a slice of any integer
// type.  Unsigned values which do not fit into an int64 are reported as an
// [*OverflowError] with Value set to math.MaxInt64.
func NewNumericFrom[T constraints.Integer](tag Tag, format Format, values []T) (*NumericEntry, error) {
	info, ok := numericFormats[format]
	if !ok {
		return nil, invalidArgument("NewNumericFrom", "%s is not an integer format", format)
	}
	vv := make([]int64, len(values))
	for i, v := range values {
		w := int64(v)
		if v > 0 && w < 0 {
			return nil, &OverflowError{Value: math.MaxInt64, Min: info.min, Max: info.max}
		}
		vv[i] = w
	}
	return NewNumeric(tag, format, vv...)
}

// NewByte returns a new entry with format [FormatByte].
func NewByte(tag Tag, values ...int64) (*NumericEntry, error) {
	return NewNumeric(tag, FormatByte, values...)
}

// NewShort returns a new entry with format [FormatShort].
func NewShort(tag Tag, values ...int64) (*NumericEntry, error) {
	return NewNumeric(tag, FormatShort, values...)
}

// NewLong returns a new entry with format [FormatLong].
func NewLong(tag Tag, values ...int64) (*NumericEntry, error) {
	return NewNumeric(tag, FormatLong, values...)
}

// NewSByte returns a new entry with format [FormatSByte].
func NewSByte(tag Tag, values ...int64) (*NumericEntry, error) {
	return NewNumeric(tag, FormatSByte, values...)
}

// NewSShort returns a new entry with format [FormatSShort].
func NewSShort(tag Tag, values ...int64) (*NumericEntry, error) {
	return NewNumeric(tag, FormatSShort, values...)
}

// NewSLong returns a new entry which holds signed 32-bit integers.
func NewSLong(tag Tag, values ...int64) (*NumericEntry, error) {
	return NewNumeric(tag, FormatSLong, values...)
}

// Tag implements the [Entry] interface.
func (e *NumericEntry) Tag() Tag {
	return e.tag
}

// Format implements the [Entry] interface.
func (e *NumericEntry) Format() Format {
	return e.format
}

// Min returns the smallest value permitted by the entry format.
func (e *NumericEntry) Min() int64 {
	return e.info.min
}

// Max returns the largest value permitted by the entry format.
func (e *NumericEntry) Max() int64 {
	return e.info.max
}

// SetValue replaces the values stored in the entry.
//
// If one of the values is out of range, an [*OverflowError] is returned and
// the entry is left unchanged.
func (e *NumericEntry) SetValue(values ...int64) error {
	for _, v := range values {
		if v < e.info.min || v > e.info.max {
			return &OverflowError{Value: v, Min: e.info.min, Max: e.info.max}
		}
	}
	e.values = slices.Clone(values)
	return nil
}

// Values returns a copy of the stored values, in storage order.
func (e *NumericEntry) Values() []int64 {
	return slices.Clone(e.values)
}

// Value returns the value of an entry which holds exactly one number.
// The second return value is false if the entry holds zero or several
// values.
func (e *NumericEntry) Value() (int64, bool) {
	if len(e.values) != 1 {
		return 0, false
	}
	return e.values[0], true
}

// Components implements the [Entry] interface.
// The result is the number of stored values.
func (e *NumericEntry) Components() int {
	return len(e.values)
}

// NumberToBytes encodes a single number using the entry format.
// The number must be within the range of the format.
func (e *NumericEntry) NumberToBytes(v int64, o convert.ByteOrder) []byte {
	return e.info.encode(nil, v, o)
}

// Bytes implements the [Entry] interface.
func (e *NumericEntry) Bytes(o convert.ByteOrder) []byte {
	buf := make([]byte, 0, len(e.values)*e.info.size)
	for _, v := range e.values {
		buf = e.info.encode(buf, v, o)
	}
	return buf
}

// Text implements the [Entry] interface.
// The values are separated by a comma, or by a space if brief is true.
func (e *NumericEntry) Text(brief bool) string {
	sep := ", "
	if brief {
		sep = " "
	}
	parts := make([]string, len(e.values))
	for i, v := range e.values {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, sep)
}

// DecodeNumeric reads count values of the given integer format from data.
func DecodeNumeric(tag Tag, format Format, count int, data []byte, o convert.ByteOrder) (*NumericEntry, error) {
	info, ok := numericFormats[format]
	if !ok {
		return nil, invalidArgument("DecodeNumeric", "%s is not an integer format", format)
	}
	if count < 0 || count > len(data)/info.size {
		return nil, invalidArgument("DecodeNumeric",
			"%d bytes are too short for %d values of format %s", len(data), count, format)
	}
	values := make([]int64, count)
	for i := range values {
		values[i] = info.decode(data[i*info.size:], o)
	}
	return &NumericEntry{
		tag:    tag,
		format: format,
		info:   info,
		values: values,
	}, nil
}

// Formats returns the integer formats supported by [NewNumeric], in
// increasing order.
func Formats() []Format {
	ff := maps.Keys(numericFormats)
	slices.Sort(ff)
	return ff
}

// numericFormat describes the range and the byte encoding of an integer
// format.
type numericFormat struct {
	size     int
	min, max int64
	encode   func(dst []byte, v int64, o convert.ByteOrder) []byte
	decode   func(b []byte, o convert.ByteOrder) int64
}

var numericFormats = map[Format]*numericFormat{
	FormatByte: {
		size: 1,
		min:  0,
		max:  math.MaxUint8,
		encode: func(dst []byte, v int64, o convert.ByteOrder) []byte {
			return convert.AppendByte(dst, uint8(v), o)
		},
		decode: func(b []byte, o convert.ByteOrder) int64 {
			return int64(convert.BytesToByte(b, o))
		},
	},
	FormatShort: {
		size: 2,
		min:  0,
		max:  math.MaxUint16,
		encode: func(dst []byte, v int64, o convert.ByteOrder) []byte {
			return convert.AppendShort(dst, uint16(v), o)
		},
		decode: func(b []byte, o convert.ByteOrder) int64 {
			return int64(convert.BytesToShort(b, o))
		},
	},
	FormatLong: {
		size: 4,
		min:  0,
		max:  math.MaxUint32,
		encode: func(dst []byte, v int64, o convert.ByteOrder) []byte {
			return convert.AppendLong(dst, uint32(v), o)
		},
		decode: func(b []byte, o convert.ByteOrder) int64 {
			return int64(convert.BytesToLong(b, o))
		},
	},
	FormatSByte: {
		size: 1,
		min:  math.MinInt8,
		max:  math.MaxInt8,
		encode: func(dst []byte, v int64, o convert.ByteOrder) []byte {
			return convert.AppendSByte(dst, int8(v), o)
		},
		decode: func(b []byte, o convert.ByteOrder) int64 {
			return int64(convert.BytesToSByte(b, o))
		},
	},
	FormatSShort: {
		size: 2,
		min:  math.MinInt16,
		max:  math.MaxInt16,
		encode: func(dst []byte, v int64, o convert.ByteOrder) []byte {
			return convert.AppendSShort(dst, int16(v), o)
		},
		decode: func(b []byte, o convert.ByteOrder) int64 {
			return int64(convert.BytesToSShort(b, o))
		},
	},
	FormatSLong: {
		size: 4,
		min:  math.MinInt32,
		max:  math.MaxInt32,
		encode: func(dst []byte, v int64, o convert.ByteOrder) []byte {
			return convert.AppendSLong(dst, int32(v), o)
		},
		decode: func(b []byte, o convert.ByteOrder) int64 {
			return int64(convert.BytesToSLong(b, o))
		},
	},
}
