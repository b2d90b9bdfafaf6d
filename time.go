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
	"math"
	"time"

	"seehuhn.de/go/exif/convert"
)

// TimeEntry holds a date and time.
//
// The value is stored in the Exif layout "YYYY:MM:DD HH:MM:SS", followed by
// a NUL byte, and can be accessed in three representations:
//
//   - as a Unix timestamp, see [TimeEntry.UnixTimestamp],
//   - as an Exif string, see [TimeEntry.ExifString],
//   - as a Julian day count, see [TimeEntry.JulianDay].
//
// The Julian day count is continuous: the fractional part is the time of day
// divided by 86400.  Times have no time zone and are treated as UTC.
//
// The all-zero string "0000:00:00 00:00:00" is used in Exif data to mark an
// unknown date.  It has Julian day count 0 and no Unix timestamp.
type TimeEntry struct {
	tag Tag
	dt  dateTime
}

// NewTime returns a new entry for the given Unix timestamp.
func NewTime(tag Tag, timestamp int64) (*TimeEntry, error) {
	e := &TimeEntry{tag: tag}
	err := e.SetUnixTimestamp(timestamp)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// NewTimeFromString returns a new entry for a date given in Exif string form.
// See [TimeEntry.SetExifString] for the accepted input.
func NewTimeFromString(tag Tag, s string) (*TimeEntry, error) {
	e := &TimeEntry{tag: tag}
	err := e.SetExifString(s)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// NewTimeFromJulianDay returns a new entry for the given Julian day count.
func NewTimeFromJulianDay(tag Tag, jd float64) (*TimeEntry, error) {
	e := &TimeEntry{tag: tag}
	err := e.SetJulianDay(jd)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Tag implements the [Entry] interface.
func (e *TimeEntry) Tag() Tag {
	return e.tag
}

// Format implements the [Entry] interface.
func (e *TimeEntry) Format() Format {
	return FormatASCII
}

// Components implements the [Entry] interface.
// Time entries always have 20 components.
func (e *TimeEntry) Components() int {
	return exifStringLen + 1
}

// Bytes implements the [Entry] interface.
func (e *TimeEntry) Bytes(convert.ByteOrder) []byte {
	return appendCString(make([]byte, 0, exifStringLen+1), e.dt.String())
}

// Text implements the [Entry] interface.
// The result is the Exif string representation of the value.
func (e *TimeEntry) Text(bool) string {
	return e.dt.String()
}

// UnixTimestamp returns the value as a Unix timestamp.
//
// Only times between 1970-01-01 00:00:00 and 9999-12-31 23:59:59 can be
// represented.  For all other values, including the unknown date, the second
// return value is false.
func (e *TimeEntry) UnixTimestamp() (int64, bool) {
	if e.dt.IsZero() {
		return 0, false
	}
	t := (e.dt.jdn()-unixEpochJDN)*secondsPerDay + e.dt.secondOfDay()
	if t < 0 {
		return 0, false
	}
	return t, true
}

// SetUnixTimestamp sets the value from a Unix timestamp.
// Timestamps outside the range given in [TimeEntry.UnixTimestamp] are
// rejected with an [*OverflowError].
func (e *TimeEntry) SetUnixTimestamp(t int64) error {
	if t < 0 || t > maxUnixTimestamp {
		return &OverflowError{Value: t, Min: 0, Max: maxUnixTimestamp}
	}
	e.dt = fromJDN(unixEpochJDN+t/secondsPerDay, t%secondsPerDay)
	return nil
}

// ExifString returns the value in the form "YYYY:MM:DD HH:MM:SS".
func (e *TimeEntry) ExifString() string {
	return e.dt.String()
}

// SetExifString sets the value from a string of the form
// "YYYY:MM:DD HH:MM:SS".
//
// The parser only looks at the digits: any non-digit characters are
// accepted as separators, as long as the input consists of six groups of
// 4, 2, 2, 2, 2 and 2 digits.  Other input is rejected with an
// [*InvalidArgumentError].  Fields which are out of range roll over into the
// next larger field, so that "2007:04:30 24:00:00" is stored as
// "2007:05:01 00:00:00".  If this moves the year outside 0 to 9999, an
// [*OverflowError] is returned.
//
// The string "0000:00:00 00:00:00" sets the value to the unknown date.
func (e *TimeEntry) SetExifString(s string) error {
	f, ok := parseExifString(s)
	if !ok {
		return invalidArgument("SetExifString", "malformed date %q", s)
	}
	if f == [6]int{} {
		e.dt = dateTime{}
		return nil
	}

	t := time.Date(f[0], time.Month(f[1]), f[2], f[3], f[4], f[5], 0, time.UTC)
	dt, err := fromTime(t)
	if err != nil {
		return err
	}
	e.dt = dt
	return nil
}

// JulianDay returns the value as a Julian day count.
// The unknown date has Julian day count 0.
func (e *TimeEntry) JulianDay() float64 {
	if e.dt.IsZero() {
		return 0
	}
	return float64(e.dt.jdn()) + float64(e.dt.secondOfDay())/secondsPerDay
}

// SetJulianDay sets the value from a Julian day count.
//
// The time of day is rounded to the nearest second.  Day counts for years
// outside 0 to 9999 are rejected with an [*OverflowError].
func (e *TimeEntry) SetJulianDay(jd float64) error {
	if math.IsNaN(jd) || math.IsInf(jd, 0) {
		return invalidArgument("SetJulianDay", "invalid Julian day count %g", jd)
	}

	day := math.Floor(jd)
	sec := math.Round((jd - day) * secondsPerDay)
	if sec >= secondsPerDay {
		day++
		sec = 0
	}
	if day < float64(minJDN) || day > float64(maxJDN) {
		v := int64(math.MaxInt64)
		if day < 0 {
			v = math.MinInt64
		}
		if math.Abs(day) < 1<<62 {
			v = int64(day)
		}
		return &OverflowError{Value: v, Min: minJDN, Max: maxJDN}
	}

	e.dt = fromJDN(int64(day), int64(sec))
	return nil
}

// Time returns the value as a [time.Time] in UTC.
// The second return value is false for the unknown date.
func (e *TimeEntry) Time() (time.Time, bool) {
	if e.dt.IsZero() {
		return time.Time{}, false
	}
	dt := e.dt
	return time.Date(dt.year, time.Month(dt.month), dt.day,
		dt.hour, dt.minute, dt.second, 0, time.UTC), true
}

// SetTime sets the value from a [time.Time].
// The time is converted to UTC and truncated to whole seconds.
func (e *TimeEntry) SetTime(t time.Time) error {
	dt, err := fromTime(t.UTC())
	if err != nil {
		return err
	}
	e.dt = dt
	return nil
}

// DecodeTime reads a time entry from its serialised form.
func DecodeTime(tag Tag, data []byte) (*TimeEntry, error) {
	return NewTimeFromString(tag, DecodeASCII(tag, data).Value())
}

// dateTime is a calendar date and time of day in the proleptic Gregorian
// calendar.  The zero value represents the unknown date.
type dateTime struct {
	year, month, day     int
	hour, minute, second int
}

// IsZero reports whether dt is the unknown date.
func (dt dateTime) IsZero() bool {
	return dt == dateTime{}
}

func (dt dateTime) String() string {
	return fmt.Sprintf("%04d:%02d:%02d %02d:%02d:%02d",
		dt.year, dt.month, dt.day, dt.hour, dt.minute, dt.second)
}

func (dt dateTime) jdn() int64 {
	return gregorianToJDN(dt.year, dt.month, dt.day)
}

func (dt dateTime) secondOfDay() int64 {
	return int64(dt.hour)*3600 + int64(dt.minute)*60 + int64(dt.second)
}

// fromJDN converts a Julian day number and a time of day, in seconds, to a
// dateTime.  The caller must ensure 0 <= sec < secondsPerDay.
func fromJDN(jdn, sec int64) dateTime {
	year, month, day := jdnToGregorian(jdn)
	return dateTime{
		year:   year,
		month:  month,
		day:    day,
		hour:   int(sec / 3600),
		minute: int(sec / 60 % 60),
		second: int(sec % 60),
	}
}

func fromTime(t time.Time) (dateTime, error) {
	if y := t.Year(); y < 0 || y > 9999 {
		return dateTime{}, &OverflowError{Value: int64(y), Min: 0, Max: 9999}
	}
	return dateTime{
		year:   t.Year(),
		month:  int(t.Month()),
		day:    t.Day(),
		hour:   t.Hour(),
		minute: t.Minute(),
		second: t.Second(),
	}, nil
}

// gregorianToJDN returns the Julian day number of a date in the proleptic
// Gregorian calendar.  The result is exact for all years >= -4800.
func gregorianToJDN(year, month, day int) int64 {
	a := int64(14-month) / 12
	y := int64(year) + 4800 - a
	m := int64(month) + 12*a - 3
	return int64(day) + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// jdnToGregorian is the inverse of gregorianToJDN, for jdn >= 0.
func jdnToGregorian(jdn int64) (year, month, day int) {
	f := jdn + 1401 + (((4*jdn+274277)/146097)*3)/4 - 38
	e := 4*f + 3
	g := (e % 1461) / 4
	h := 5*g + 2
	day = int((h%153)/5 + 1)
	month = int((h/153+2)%12 + 1)
	year = int(e/1461 - 4716 + (12+2-int64(month))/12)
	return year, month, day
}

// parseExifString extracts the six numeric fields from a date string.
// The input must consist of digit runs of length 4, 2, 2, 2, 2 and 2,
// separated by arbitrary non-digit characters.
func parseExifString(s string) ([6]int, bool) {
	var fields [6]int
	widths := [6]int{4, 2, 2, 2, 2, 2}

	n := 0
	for i := 0; i < len(s); {
		if !isDigit(s[i]) {
			i++
			continue
		}
		j := i
		v := 0
		for j < len(s) && isDigit(s[j]) {
			v = 10*v + int(s[j]-'0')
			j++
			if j-i > 4 {
				return fields, false
			}
		}
		if n >= len(fields) || j-i != widths[n] {
			return fields, false
		}
		fields[n] = v
		n++
		i = j
	}
	return fields, n == len(fields)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

const (
	secondsPerDay = 86400

	// exifStringLen is the length of "YYYY:MM:DD HH:MM:SS".
	exifStringLen = 19

	// unixEpochJDN is the Julian day number of 1970-01-01.
	unixEpochJDN = 2440588

	// maxUnixTimestamp is 9999-12-31 23:59:59 UTC.
	maxUnixTimestamp = 253402300799
)

var (
	minJDN = gregorianToJDN(0, 1, 1)
	maxJDN = gregorianToJDN(9999, 12, 31)
)
