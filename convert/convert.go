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

// Package convert encodes and decodes the fixed-width integers used in Exif
// and TIFF data.
//
// All functions take a [ByteOrder] argument which selects between the two
// byte orders allowed by the TIFF specification.  Encoding never fails: the
// caller is responsible for passing values which fit into the target width.
package convert

import (
	"encoding/binary"
	"errors"
)

// ByteOrder is the byte order of a TIFF or Exif data block.
//
// The zero value and all other values besides [LittleEndian] and [BigEndian]
// are invalid.  The encoding and decoding functions in this package, and
// [ByteOrder.Mark], treat invalid byte orders as [LittleEndian].  Use
// [ByteOrder.IsValid] to check values from untrusted sources.
type ByteOrder uint8

// These are the two byte orders defined by TIFF.
const (
	LittleEndian ByteOrder = iota + 1 // "II", Intel byte order
	BigEndian                         // "MM", Motorola byte order
)

func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "little-endian"
	case BigEndian:
		return "big-endian"
	default:
		return "invalid byte order"
	}
}

// IsValid reports whether o is one of the two TIFF byte orders.
func (o ByteOrder) IsValid() bool {
	return o == LittleEndian || o == BigEndian
}

// Mark returns the two-byte marker which starts a TIFF header in this byte
// order.
func (o ByteOrder) Mark() []byte {
	switch o {
	case BigEndian:
		return []byte("MM")
	default:
		return []byte("II")
	}
}

// ParseByteOrder reads the byte order marker at the start of a TIFF header.
func ParseByteOrder(mark []byte) (ByteOrder, error) {
	if len(mark) < 2 {
		return 0, errInvalidMark
	}
	switch string(mark[:2]) {
	case "II":
		return LittleEndian, nil
	case "MM":
		return BigEndian, nil
	}
	return 0, errInvalidMark
}

type codec interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// binary returns the [encoding/binary] implementation for o.  Invalid byte
// orders fall back to little-endian.
func (o ByteOrder) binary() codec {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// The Append* variants of the codec.  These append the encoded value to dst
// and return the extended slice.

// AppendByte appends an unsigned 8-bit value.
func AppendByte(dst []byte, v uint8, _ ByteOrder) []byte {
	return append(dst, v)
}

// AppendSByte appends a signed 8-bit value.
func AppendSByte(dst []byte, v int8, _ ByteOrder) []byte {
	return append(dst, byte(v))
}

// AppendShort appends an unsigned 16-bit value.
func AppendShort(dst []byte, v uint16, o ByteOrder) []byte {
	return o.binary().AppendUint16(dst, v)
}

// AppendSShort appends a signed 16-bit value.
func AppendSShort(dst []byte, v int16, o ByteOrder) []byte {
	return AppendShort(dst, uint16(v), o)
}

// AppendLong appends an unsigned 32-bit value.
func AppendLong(dst []byte, v uint32, o ByteOrder) []byte {
	return o.binary().AppendUint32(dst, v)
}

// AppendSLong appends a signed 32-bit value, in two's complement.
func AppendSLong(dst []byte, v int32, o ByteOrder) []byte {
	return AppendLong(dst, uint32(v), o)
}

// SLongToBytes encodes a signed 32-bit value as four bytes.
func SLongToBytes(v int32, o ByteOrder) []byte {
	return AppendSLong(make([]byte, 0, 4), v, o)
}

// BytesToSLong decodes four bytes as a signed 32-bit value.
// The function panics if b is shorter than four bytes.
func BytesToSLong(b []byte, o ByteOrder) int32 {
	return int32(o.binary().Uint32(b))
}

// BytesToLong decodes four bytes as an unsigned 32-bit value.
func BytesToLong(b []byte, o ByteOrder) uint32 {
	return o.binary().Uint32(b)
}

// BytesToShort decodes two bytes as an unsigned 16-bit value.
func BytesToShort(b []byte, o ByteOrder) uint16 {
	return o.binary().Uint16(b)
}

// BytesToSShort decodes two bytes as a signed 16-bit value.
func BytesToSShort(b []byte, o ByteOrder) int16 {
	return int16(o.binary().Uint16(b))
}

// BytesToByte decodes one byte as an unsigned 8-bit value.
func BytesToByte(b []byte, _ ByteOrder) uint8 {
	return b[0]
}

// BytesToSByte decodes one byte as a signed 8-bit value.
func BytesToSByte(b []byte, _ ByteOrder) int8 {
	return int8(b[0])
}

var errInvalidMark = errors.New("invalid TIFF byte order mark")
