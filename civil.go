// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"cmp"
	"fmt"
)

// CivilDate is an immutable day-granularity date tagged with the
// calendar it is expressed in. Values are validated at construction and
// carry their AbsoluteDay, computed once, so comparison and conversion
// never revalidate or recompute. A "changed" date is a new value; the
// zero value is not a valid date, use New.
type CivilDate struct {
	year  int
	month uint8
	day   uint8
	kind  CalendarKind
	abs   AbsoluteDay
}

// New returns the CivilDate for year, month and day in the given
// calendar. It returns an error wrapping ErrInvalidDate for a triple
// that does not exist in the calendar, ErrOutOfRange for a year outside
// the calendar's supported span, or ErrUnsupportedCalendar.
func New(year, month, day int, kind CalendarKind) (CivilDate, error) {
	ad, err := kind.ToAbsoluteDay(year, month, day)
	if err != nil {
		return CivilDate{}, err
	}
	return CivilDate{year: year, month: uint8(month), day: uint8(day), kind: kind, abs: ad}, nil
}

// CivilDate returns the date denoted by the given AbsoluteDay expressed
// in this calendar.
func (k CalendarKind) CivilDate(ad AbsoluteDay) (CivilDate, error) {
	y, m, d, err := k.FromAbsoluteDay(ad)
	if err != nil {
		return CivilDate{}, err
	}
	return CivilDate{year: y, month: uint8(m), day: uint8(d), kind: k, abs: ad}, nil
}

// Year returns the (possibly negative) year.
func (cd CivilDate) Year() int { return cd.year }

// Month returns the 1-based month.
func (cd CivilDate) Month() int { return int(cd.month) }

// Day returns the 1-based day of month.
func (cd CivilDate) Day() int { return int(cd.day) }

// Calendar returns the calendar the date is expressed in.
func (cd CivilDate) Calendar() CalendarKind { return cd.kind }

// AbsoluteDay returns the canonical day count for the date.
func (cd CivilDate) AbsoluteDay() AbsoluteDay { return cd.abs }

// Date returns the year, month, day triple.
func (cd CivilDate) Date() (year, month, day int) {
	return cd.year, int(cd.month), int(cd.day)
}

func (cd CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %s", cd.year, cd.month, cd.day, cd.kind)
}

// ConvertTo returns the same day expressed in the target calendar. It
// returns an error wrapping ErrOutOfRange if the day lies outside the
// target calendar's span. Converting to the date's own calendar returns
// the date unchanged.
func (cd CivilDate) ConvertTo(kind CalendarKind) (CivilDate, error) {
	if kind == cd.kind {
		if _, err := kind.lookup(); err != nil {
			return CivilDate{}, err
		}
		return cd, nil
	}
	return kind.CivilDate(cd.abs)
}

// Compare orders two dates by their position in absolute-day space
// regardless of the calendars they are expressed in, returning -1 if cd
// is earlier than other, 0 if they denote the same day and +1 if later.
// It is a total order suitable for slices.SortFunc.
func (cd CivilDate) Compare(other CivilDate) int {
	return cmp.Compare(cd.abs, other.abs)
}

// Before returns true if cd is earlier than other.
func (cd CivilDate) Before(other CivilDate) bool { return cd.abs < other.abs }

// After returns true if cd is later than other.
func (cd CivilDate) After(other CivilDate) bool { return cd.abs > other.abs }

// Same returns true if the two dates denote the same day, even when
// expressed in different calendars.
func (cd CivilDate) Same(other CivilDate) bool { return cd.abs == other.abs }

// AddDays returns the date n days later (earlier for negative n)
// expressed in the same calendar. It returns an error wrapping
// ErrOutOfRange if the result falls outside the calendar's span.
func (cd CivilDate) AddDays(n int) (CivilDate, error) {
	return cd.kind.CivilDate(cd.abs + AbsoluteDay(n))
}

// Tomorrow returns the next day.
func (cd CivilDate) Tomorrow() (CivilDate, error) {
	return cd.AddDays(1)
}

// Yesterday returns the previous day.
func (cd CivilDate) Yesterday() (CivilDate, error) {
	return cd.AddDays(-1)
}

// IsLeapYear returns true if the date's year is a leap year in its
// calendar.
func (cd CivilDate) IsLeapYear() bool {
	leap, _ := cd.kind.IsLeapYear(cd.year) // cannot fail, validated by New
	return leap
}

// DaysInMonth returns the number of days in the date's month.
func (cd CivilDate) DaysInMonth() int {
	n, _ := cd.kind.DaysInMonth(cd.year, int(cd.month))
	return n
}

// MonthsPerYear returns the number of months in the date's year.
func (cd CivilDate) MonthsPerYear() int {
	n, _ := cd.kind.MonthsPerYear(cd.year)
	return n
}
