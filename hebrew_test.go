// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars_test

import (
	"errors"
	"testing"

	"cloudeng.io/calendars"
)

func TestHebrewLeapYears(t *testing.T) {
	// Leap years fall at positions 3, 6, 8, 11, 14, 17 and 19 of the
	// 19-year Metonic cycle.
	leapPositions := map[int]bool{3: true, 6: true, 8: true, 11: true, 14: true, 17: true, 0: true}
	for year := 1; year <= 19*4; year++ {
		leap, err := calendars.Hebrew.IsLeapYear(year)
		if err != nil {
			t.Fatalf("%v: %v", year, err)
		}
		if got, want := leap, leapPositions[year%19]; got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
		months, err := calendars.Hebrew.MonthsPerYear(year)
		if err != nil {
			t.Fatalf("%v: %v", year, err)
		}
		want := 12
		if leap {
			want = 13
		}
		if got := months; got != want {
			t.Errorf("%v: got %v months, want %v", year, got, want)
		}
	}
	for _, tc := range []struct {
		year int
		leap bool
	}{
		{5784, true},
		{5785, false},
		{5786, false},
		{5787, true},
	} {
		if got, _ := calendars.Hebrew.IsLeapYear(tc.year); got != tc.leap {
			t.Errorf("%v: got %v, want %v", tc.year, got, tc.leap)
		}
	}
}

// TestHebrewNewYears checks Tishri 1 against known Rosh Hashanah dates.
func TestHebrewNewYears(t *testing.T) {
	for _, tc := range []struct {
		hebrewYear             int
		year, month, day       int // Gregorian
	}{
		{5784, 2023, 9, 16},
		{5785, 2024, 10, 3},
		{5786, 2025, 9, 23},
	} {
		hd := newCivilDate(t, tc.hebrewYear, 1, 1, calendars.Hebrew)
		gd := convertTo(t, hd, calendars.Gregorian)
		want := newCivilDate(t, tc.year, tc.month, tc.day, calendars.Gregorian)
		if got := gd; got != want {
			t.Errorf("%v: got %v, want %v", hd, got, want)
		}
		back := convertTo(t, want, calendars.Hebrew)
		if got := back; got != hd {
			t.Errorf("%v: got %v, want %v", want, got, hd)
		}
	}
}

func TestHebrewYearLengths(t *testing.T) {
	valid := map[int]bool{353: true, 354: true, 355: true, 383: true, 384: true, 385: true}
	for year := 5700; year <= 5810; year++ {
		ny, err := calendars.Hebrew.ToAbsoluteDay(year, 1, 1)
		if err != nil {
			t.Fatalf("%v: %v", year, err)
		}
		next, err := calendars.Hebrew.ToAbsoluteDay(year+1, 1, 1)
		if err != nil {
			t.Fatalf("%v: %v", year+1, err)
		}
		length := int(next - ny)
		if !valid[length] {
			t.Errorf("%v: invalid year length %v", year, length)
		}
		leap, _ := calendars.Hebrew.IsLeapYear(year)
		if got, want := length > 380, leap; got != want {
			t.Errorf("%v: length %v does not agree with leapness %v", year, length, leap)
		}
		// The months of the year must account for every day of it.
		months, _ := calendars.Hebrew.MonthsPerYear(year)
		sum := 0
		for month := 1; month <= months; month++ {
			n, err := calendars.Hebrew.DaysInMonth(year, month)
			if err != nil {
				t.Fatalf("%v-%v: %v", year, month, err)
			}
			sum += n
		}
		if got, want := sum, length; got != want {
			t.Errorf("%v: months sum to %v, want %v", year, got, want)
		}
	}
	for _, tc := range []struct {
		year, length int
	}{
		{5784, 383},
		{5785, 355},
		{5786, 354},
	} {
		ny, _ := calendars.Hebrew.ToAbsoluteDay(tc.year, 1, 1)
		next, _ := calendars.Hebrew.ToAbsoluteDay(tc.year+1, 1, 1)
		if got, want := int(next-ny), tc.length; got != want {
			t.Errorf("%v: got length %v, want %v", tc.year, got, want)
		}
	}
}

// TestHebrewVariableMonths exercises Marcheshvan and Kislev, whose
// lengths depend on the year's computed length.
func TestHebrewVariableMonths(t *testing.T) {
	// 5785 is complete (355 days): Marcheshvan has 30 days.
	if _, err := calendars.New(5785, 2, 30, calendars.Hebrew); err != nil {
		t.Errorf("5785-02-30: %v", err)
	}
	// 5786 is regular (354 days): Marcheshvan has 29.
	_, err := calendars.New(5786, 2, 30, calendars.Hebrew)
	if !errors.Is(err, calendars.ErrInvalidDate) {
		t.Errorf("5786-02-30: got %v, want %v", err, calendars.ErrInvalidDate)
	}
	// 5784 is deficient (383 days): Kislev has 29.
	_, err = calendars.New(5784, 3, 30, calendars.Hebrew)
	if !errors.Is(err, calendars.ErrInvalidDate) {
		t.Errorf("5784-03-30: got %v, want %v", err, calendars.ErrInvalidDate)
	}
	if _, err := calendars.New(5786, 3, 30, calendars.Hebrew); err != nil {
		t.Errorf("5786-03-30: %v", err)
	}
}

func TestHebrewAdar(t *testing.T) {
	// In leap year 5784, Adar I is month 6 with 30 days and Adar II
	// month 7 with 29; in common year 5785 Adar is month 6 with 29.
	if n, _ := calendars.Hebrew.DaysInMonth(5784, 6); n != 30 {
		t.Errorf("5784 adar I: got %v days, want 30", n)
	}
	if n, _ := calendars.Hebrew.DaysInMonth(5784, 7); n != 29 {
		t.Errorf("5784 adar II: got %v days, want 29", n)
	}
	if n, _ := calendars.Hebrew.DaysInMonth(5785, 6); n != 29 {
		t.Errorf("5785 adar: got %v days, want 29", n)
	}
	_, err := calendars.New(5785, 13, 1, calendars.Hebrew)
	if !errors.Is(err, calendars.ErrInvalidDate) {
		t.Errorf("5785-13-01: got %v, want %v", err, calendars.ErrInvalidDate)
	}
}

func TestHebrewOutOfRange(t *testing.T) {
	for _, year := range []int{0, -1, 1_000_001} {
		_, err := calendars.Hebrew.ToAbsoluteDay(year, 1, 1)
		if !errors.Is(err, calendars.ErrOutOfRange) {
			t.Errorf("%v: got %v, want %v", year, err, calendars.ErrOutOfRange)
		}
	}
	// Days before Tishri 1 of year 1 are not representable.
	gd := newCivilDate(t, -4000, 1, 1, calendars.Gregorian)
	_, err := gd.ConvertTo(calendars.Hebrew)
	if !errors.Is(err, calendars.ErrOutOfRange) {
		t.Errorf("%v: got %v, want %v", gd, err, calendars.ErrOutOfRange)
	}
}

func TestHebrewRoundTrip(t *testing.T) {
	for year := 1; year <= 40; year++ {
		roundTripYear(t, calendars.Hebrew, year)
	}
	for year := 5700; year <= 5800; year += 7 {
		roundTripYear(t, calendars.Hebrew, year)
		contiguousYear(t, calendars.Hebrew, year)
	}
}
