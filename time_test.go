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
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/exif/convert"
)

// approx compares Julian day counts, allowing for rounding errors far below
// one second.
var approx = cmpopts.EquateApprox(0, 1e-9)

func TestTimeViews(t *testing.T) {
	e, err := NewTime(42, 10)
	if err != nil {
		t.Fatal(err)
	}

	if e.Components() != 20 {
		t.Errorf("wrong number of components %d", e.Components())
	}
	if ts, ok := e.UnixTimestamp(); !ok || ts != 10 {
		t.Errorf("UnixTimestamp() = %d, %t", ts, ok)
	}
	if s := e.ExifString(); s != "1970:01:01 00:00:10" {
		t.Errorf("ExifString() = %q", s)
	}
	if jd := e.JulianDay(); !cmp.Equal(jd, 2440588+10.0/86400, approx) {
		t.Errorf("JulianDay() = %f", jd)
	}
	if s := e.Text(false); s != "1970:01:01 00:00:10" {
		t.Errorf("Text() = %q", s)
	}
}

func TestTimeMalformedSeparators(t *testing.T) {
	e, err := NewTime(42, 10)
	if err != nil {
		t.Fatal(err)
	}
	err = e.SetExifString("1970!01-01 00 00 30")
	if err != nil {
		t.Fatal(err)
	}
	if ts, ok := e.UnixTimestamp(); !ok || ts != 30 {
		t.Errorf("UnixTimestamp() = %d, %t", ts, ok)
	}
}

func TestTimeBeforeEpoch(t *testing.T) {
	e, err := NewTimeFromJulianDay(42, 2415021.75)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := e.UnixTimestamp(); ok {
		t.Error("1900 has a Unix timestamp")
	}
	if s := e.ExifString(); s != "1900:01:01 18:00:00" {
		t.Errorf("ExifString() = %q", s)
	}
	if jd := e.JulianDay(); jd != 2415021.75 {
		t.Errorf("JulianDay() = %f", jd)
	}
}

func TestTimeUnknownDate(t *testing.T) {
	e, err := NewTimeFromString(42, "0000:00:00 00:00:00")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := e.UnixTimestamp(); ok {
		t.Error("unknown date has a Unix timestamp")
	}
	if _, ok := e.Time(); ok {
		t.Error("unknown date has a time.Time")
	}
	if s := e.ExifString(); s != "0000:00:00 00:00:00" {
		t.Errorf("ExifString() = %q", s)
	}
	if jd := e.JulianDay(); jd != 0 {
		t.Errorf("JulianDay() = %f", jd)
	}
	want := []byte("0000:00:00 00:00:00\x00")
	if d := cmp.Diff(want, e.Bytes(convert.BigEndian)); d != "" {
		t.Errorf("wrong encoding (-want +got):\n%s", d)
	}
}

func TestTimeLastDay(t *testing.T) {
	e, err := NewTimeFromString(42, "9999:12:31 23:59:59")
	if err != nil {
		t.Fatal(err)
	}
	if ts, ok := e.UnixTimestamp(); !ok || ts != 253402300799 {
		t.Errorf("UnixTimestamp() = %d, %t", ts, ok)
	}
	if s := e.ExifString(); s != "9999:12:31 23:59:59" {
		t.Errorf("ExifString() = %q", s)
	}
	if jd := e.JulianDay(); !cmp.Equal(jd, 5373484+86399.0/86400, approx) {
		t.Errorf("JulianDay() = %f", jd)
	}
}

func TestTimeDayRollover(t *testing.T) {
	e, err := NewTimeFromString(42, "2007:04:23 23:30:00")
	if err != nil {
		t.Fatal(err)
	}
	ts, ok := e.UnixTimestamp()
	if !ok {
		t.Fatal("no Unix timestamp")
	}
	err = e.SetUnixTimestamp(ts + 3600)
	if err != nil {
		t.Fatal(err)
	}
	if s := e.ExifString(); s != "2007:04:24 00:30:00" {
		t.Errorf("ExifString() = %q", s)
	}

	// month and year boundaries
	err = e.SetExifString("2007:12:31 23:30:00")
	if err != nil {
		t.Fatal(err)
	}
	ts, _ = e.UnixTimestamp()
	err = e.SetUnixTimestamp(ts + 3600)
	if err != nil {
		t.Fatal(err)
	}
	if s := e.ExifString(); s != "2008:01:01 00:30:00" {
		t.Errorf("ExifString() = %q", s)
	}

	err = e.SetJulianDay(e.JulianDay() - 1.0/24)
	if err != nil {
		t.Fatal(err)
	}
	if s := e.ExifString(); s != "2007:12:31 23:30:00" {
		t.Errorf("ExifString() = %q", s)
	}
}

func TestTimeStringNormalisation(t *testing.T) {
	type testCase struct {
		in, out string
	}
	testCases := []testCase{
		{"2007:04:30 24:00:00", "2007:05:01 00:00:00"},
		{"2008:02:30 00:00:00", "2008:03:01 00:00:00"},
		{"2007:13:01 00:00:60", "2008:01:01 00:01:00"},
		{"2000-01-02T03:04:05", "2000:01:02 03:04:05"},
		{"2000:01:02 03:04:05\x00", "2000:01:02 03:04:05"},
	}
	for _, tc := range testCases {
		e, err := NewTimeFromString(1, tc.in)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if s := e.ExifString(); s != tc.out {
			t.Errorf("%q: got %q, want %q", tc.in, s, tc.out)
		}
	}
}

func TestTimeMalformed(t *testing.T) {
	malformed := []string{
		"",
		"1970:01:01",
		"1970:01:01 00:00",
		"70:01:01 00:00:00",
		"1970:1:01 00:00:00",
		"19700:01:01 00:00:00",
		"1970:01:01 00:00:00:00",
		"19700101000000",
	}
	for _, s := range malformed {
		e, err := NewTime(1, 5)
		if err != nil {
			t.Fatal(err)
		}
		err = e.SetExifString(s)
		var invalid *InvalidArgumentError
		if !errors.As(err, &invalid) {
			t.Errorf("%q: expected an invalid argument error, got %v", s, err)
		}
		if ts, _ := e.UnixTimestamp(); ts != 5 {
			t.Errorf("%q: failed SetExifString changed the value", s)
		}
	}
}

func TestTimeOverflow(t *testing.T) {
	e, err := NewTime(1, 0)
	if err != nil {
		t.Fatal(err)
	}

	for _, ts := range []int64{-1, 253402300800, math.MinInt64, math.MaxInt64} {
		if err := e.SetUnixTimestamp(ts); !errors.Is(err, ErrOverflow) {
			t.Errorf("%d: expected an overflow error, got %v", ts, err)
		}
	}
	for _, jd := range []float64{0, -1, 1e300, float64(maxJDN) + 1} {
		if err := e.SetJulianDay(jd); !errors.Is(err, ErrOverflow) {
			t.Errorf("%g: expected an overflow error, got %v", jd, err)
		}
	}
	for _, jd := range []float64{math.NaN(), math.Inf(1)} {
		if err := e.SetJulianDay(jd); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%g: expected an invalid argument error, got %v", jd, err)
		}
	}
	if err := e.SetExifString("9999:12:31 23:59:60"); !errors.Is(err, ErrOverflow) {
		t.Errorf("expected an overflow error, got %v", err)
	}
	if err := e.SetExifString("0000:00:00 00:00:01"); !errors.Is(err, ErrOverflow) {
		t.Errorf("expected an overflow error, got %v", err)
	}

	if ts, ok := e.UnixTimestamp(); !ok || ts != 0 {
		t.Errorf("failed setters changed the value to %d, %t", ts, ok)
	}
}

func TestTimeYearZero(t *testing.T) {
	e, err := NewTimeFromString(1, "0000:01:01 12:00:00")
	if err != nil {
		t.Fatal(err)
	}
	if jd := e.JulianDay(); jd != float64(minJDN)+0.5 {
		t.Errorf("JulianDay() = %f", jd)
	}
	err = e.SetJulianDay(e.JulianDay())
	if err != nil {
		t.Fatal(err)
	}
	if s := e.ExifString(); s != "0000:01:01 12:00:00" {
		t.Errorf("ExifString() = %q", s)
	}
}

func TestTimeTime(t *testing.T) {
	loc := time.FixedZone("test", 2*3600)
	in := time.Date(2024, time.February, 29, 1, 2, 3, 999, loc)

	e := &TimeEntry{}
	err := e.SetTime(in)
	if err != nil {
		t.Fatal(err)
	}
	if s := e.ExifString(); s != "2024:02:28 23:02:03" {
		t.Errorf("ExifString() = %q", s)
	}

	out, ok := e.Time()
	if !ok {
		t.Fatal("no time.Time")
	}
	if !out.Equal(in.Truncate(time.Second)) {
		t.Errorf("Time() = %s", out)
	}
	if ts, _ := e.UnixTimestamp(); ts != in.Unix() {
		t.Errorf("UnixTimestamp() = %d, want %d", ts, in.Unix())
	}
}

func TestDecodeTime(t *testing.T) {
	e, err := DecodeTime(TagDateTime, []byte("2007:04:23 23:30:00\x00"))
	if err != nil {
		t.Fatal(err)
	}
	if e.Tag() != TagDateTime || e.Format() != FormatASCII {
		t.Errorf("wrong tag or format: %s, %s", e.Tag(), e.Format())
	}
	if s := e.ExifString(); s != "2007:04:23 23:30:00" {
		t.Errorf("ExifString() = %q", s)
	}
}

// FuzzTimeRoundTrip checks that the three views of a time entry are
// consistent with each other.
func FuzzTimeRoundTrip(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(10))
	f.Add(int64(1177371000))
	f.Add(int64(253402300799))
	f.Fuzz(func(t *testing.T, ts int64) {
		if ts < 0 {
			ts = -(ts + 1)
		}
		ts %= 253402300800

		e, err := NewTime(1, ts)
		if err != nil {
			t.Fatal(err)
		}
		s := e.ExifString()
		jd := e.JulianDay()

		e2, err := NewTimeFromString(1, s)
		if err != nil {
			t.Fatal(err)
		}
		if got, ok := e2.UnixTimestamp(); !ok || got != ts {
			t.Errorf("%d -> %q -> %d", ts, s, got)
		}

		e3, err := NewTimeFromJulianDay(1, jd)
		if err != nil {
			t.Fatal(err)
		}
		if got, ok := e3.UnixTimestamp(); !ok || got != ts {
			t.Errorf("%d -> %f -> %d", ts, jd, got)
		}
		if got := e3.JulianDay(); got != jd {
			t.Errorf("%f -> %f", jd, got)
		}
		if got := e3.ExifString(); got != s {
			t.Errorf("%q -> %q", s, got)
		}
	})
}
