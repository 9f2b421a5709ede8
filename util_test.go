// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars_test

import (
	"testing"

	"cloudeng.io/calendars"
)

// rdToJD is the offset between a Rata Die day number and the Julian Day
// at 0h of that day.
const rdToJD = 1721424.5

func newCivilDate(t *testing.T, year, month, day int, kind calendars.CalendarKind) calendars.CivilDate {
	t.Helper()
	cd, err := calendars.New(year, month, day, kind)
	if err != nil {
		t.Fatalf("New(%v, %v, %v, %v): %v", year, month, day, kind, err)
	}
	return cd
}

func convertTo(t *testing.T, cd calendars.CivilDate, kind calendars.CalendarKind) calendars.CivilDate {
	t.Helper()
	ncd, err := cd.ConvertTo(kind)
	if err != nil {
		t.Fatalf("%v: ConvertTo(%v): %v", cd, kind, err)
	}
	return ncd
}

func roundTripYear(t *testing.T, kind calendars.CalendarKind, year int) {
	t.Helper()
	months, err := kind.MonthsPerYear(year)
	if err != nil {
		t.Fatalf("%v: MonthsPerYear(%v): %v", kind, year, err)
	}
	for month := 1; month <= months; month++ {
		days, err := kind.DaysInMonth(year, month)
		if err != nil {
			t.Fatalf("%v: DaysInMonth(%v, %v): %v", kind, year, month, err)
		}
		for day := 1; day <= days; day++ {
			ad, err := kind.ToAbsoluteDay(year, month, day)
			if err != nil {
				t.Fatalf("%v %v-%v-%v: %v", kind, year, month, day, err)
			}
			y, m, d, err := kind.FromAbsoluteDay(ad)
			if err != nil {
				t.Fatalf("%v: FromAbsoluteDay(%v): %v", kind, ad, err)
			}
			if y != year || m != month || d != day {
				t.Fatalf("%v: absolute day %v: got %v-%v-%v, want %v-%v-%v", kind, ad, y, m, d, year, month, day)
			}
		}
	}
}

// contiguousYear verifies that the days of a year map onto a contiguous
// ascending run of absolute days.
func contiguousYear(t *testing.T, kind calendars.CalendarKind, year int) {
	t.Helper()
	prev, err := kind.ToAbsoluteDay(year, 1, 1)
	if err != nil {
		t.Fatalf("%v %v-1-1: %v", kind, year, err)
	}
	months, _ := kind.MonthsPerYear(year)
	for month := 1; month <= months; month++ {
		days, _ := kind.DaysInMonth(year, month)
		for day := 1; day <= days; day++ {
			if month == 1 && day == 1 {
				continue
			}
			ad, err := kind.ToAbsoluteDay(year, month, day)
			if err != nil {
				t.Fatalf("%v %v-%v-%v: %v", kind, year, month, day, err)
			}
			if got, want := ad, prev+1; got != want {
				t.Fatalf("%v %v-%v-%v: got absolute day %v, want %v", kind, year, month, day, got, want)
			}
			prev = ad
		}
	}
}
