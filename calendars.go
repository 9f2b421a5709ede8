// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendars provides exact, reversible conversion of day-granularity
// civil dates between the calendar systems commonly encountered in
// genealogical records: proleptic Gregorian, proleptic Julian, French
// Republican and Hebrew. All conversions pass through a single canonical
// day count (AbsoluteDay) so that dates expressed in different calendars
// can be compared, converted and shifted without ever materializing
// intermediate dates. All operations are pure functions of their arguments
// and are safe for concurrent use.
package calendars

import (
	"fmt"
	"strings"
)

// AbsoluteDay is a continuous count of civil days used as the
// calendar-independent intermediate for all conversions and comparisons.
// Day 1 is 1 January of year 1 in the proleptic Gregorian calendar
// (Rata Die), so day 0 is 31 December of year 0. Every valid date in a
// supported calendar maps to exactly one AbsoluteDay and back.
type AbsoluteDay int64

// CalendarKind identifies one of the supported calendar systems. The set
// is closed; adding a calendar means adding a converter entry to the
// dispatch table below.
type CalendarKind uint8

const (
	Gregorian CalendarKind = iota
	Julian
	FrenchRepublican
	Hebrew
	numCalendars // must be last
)

var calendarNames = [numCalendars]string{
	Gregorian:        "gregorian",
	Julian:           "julian",
	FrenchRepublican: "french republican",
	Hebrew:           "hebrew",
}

func (k CalendarKind) String() string {
	if k >= numCalendars {
		return fmt.Sprintf("calendar(%d)", uint8(k))
	}
	return calendarNames[k]
}

// ParseCalendarKind parses one of the fixed calendar tags, "gregorian",
// "julian", "french republican" or "hebrew", in either lower or upper
// case. Hyphens and underscores are accepted in place of spaces.
func ParseCalendarKind(val string) (CalendarKind, error) {
	name := strings.NewReplacer("-", " ", "_", " ").Replace(
		strings.ToLower(strings.TrimSpace(val)))
	for i, n := range calendarNames {
		if n == name {
			return CalendarKind(i), nil
		}
	}
	return 0, fmt.Errorf("invalid calendar %q: %w", val, ErrUnsupportedCalendar)
}

// Parse is like ParseCalendarKind but updates the receiver.
func (k *CalendarKind) Parse(val string) error {
	n, err := ParseCalendarKind(val)
	if err != nil {
		return err
	}
	*k = n
	return nil
}

// MarshalText implements encoding.TextMarshaler using the fixed
// calendar tags.
func (k CalendarKind) MarshalText() ([]byte, error) {
	if k >= numCalendars {
		return nil, fmt.Errorf("calendar %d: %w", uint8(k), ErrUnsupportedCalendar)
	}
	return []byte(calendarNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *CalendarKind) UnmarshalText(data []byte) error {
	return k.Parse(string(data))
}

// CalendarKinds returns all supported calendars.
func CalendarKinds() []CalendarKind {
	return []CalendarKind{Gregorian, Julian, FrenchRepublican, Hebrew}
}

// converter is the pair of canonical day-count conversions plus the
// introspection functions for a single calendar system.
type converter struct {
	toAbsolute    func(year, month, day int) (AbsoluteDay, error)
	fromAbsolute  func(ad AbsoluteDay) (year, month, day int, err error)
	isLeap        func(year int) bool
	daysInMonth   func(year, month int) (int, error)
	monthsPerYear func(year int) (int, error)
}

var converters = [numCalendars]converter{
	Gregorian: {
		toAbsolute:    gregorianToAbsolute,
		fromAbsolute:  gregorianFromAbsolute,
		isLeap:        gregorianIsLeap,
		daysInMonth:   gregorianDaysInMonth,
		monthsPerYear: gregorianMonthsPerYear,
	},
	Julian: {
		toAbsolute:    julianToAbsolute,
		fromAbsolute:  julianFromAbsolute,
		isLeap:        julianIsLeap,
		daysInMonth:   julianDaysInMonth,
		monthsPerYear: julianMonthsPerYear,
	},
	FrenchRepublican: {
		toAbsolute:    frenchToAbsolute,
		fromAbsolute:  frenchFromAbsolute,
		isLeap:        frenchIsLeap,
		daysInMonth:   frenchDaysInMonth,
		monthsPerYear: frenchMonthsPerYear,
	},
	Hebrew: {
		toAbsolute:    hebrewToAbsolute,
		fromAbsolute:  hebrewFromAbsolute,
		isLeap:        hebrewIsLeap,
		daysInMonth:   hebrewDaysInMonth,
		monthsPerYear: hebrewMonthsPerYear,
	},
}

func (k CalendarKind) lookup() (*converter, error) {
	if k >= numCalendars {
		return nil, fmt.Errorf("calendar %d: %w", uint8(k), ErrUnsupportedCalendar)
	}
	return &converters[k], nil
}

// ToAbsoluteDay returns the AbsoluteDay for year, month, day in this
// calendar. It returns an error wrapping ErrInvalidDate if the triple is
// not a valid date in the calendar, ErrOutOfRange if the year lies
// outside the calendar's supported span, or ErrUnsupportedCalendar for a
// kind outside the enumeration.
func (k CalendarKind) ToAbsoluteDay(year, month, day int) (AbsoluteDay, error) {
	cv, err := k.lookup()
	if err != nil {
		return 0, err
	}
	return cv.toAbsolute(year, month, day)
}

// FromAbsoluteDay returns the year, month and day in this calendar for
// the given AbsoluteDay. It returns an error wrapping ErrOutOfRange if
// the day lies outside the calendar's supported span.
func (k CalendarKind) FromAbsoluteDay(ad AbsoluteDay) (year, month, day int, err error) {
	cv, err := k.lookup()
	if err != nil {
		return 0, 0, 0, err
	}
	return cv.fromAbsolute(ad)
}

// IsLeapYear returns true if year is a leap year in this calendar.
func (k CalendarKind) IsLeapYear(year int) (bool, error) {
	cv, err := k.lookup()
	if err != nil {
		return false, err
	}
	return cv.isLeap(year), nil
}

// DaysInMonth returns the number of days in the given month of year.
func (k CalendarKind) DaysInMonth(year, month int) (int, error) {
	cv, err := k.lookup()
	if err != nil {
		return 0, err
	}
	return cv.daysInMonth(year, month)
}

// MonthsPerYear returns the number of months in the given year; this
// varies by year for the Hebrew calendar and includes the short
// complementary-days month for the French Republican calendar.
func (k CalendarKind) MonthsPerYear(year int) (int, error) {
	cv, err := k.lookup()
	if err != nil {
		return 0, err
	}
	return cv.monthsPerYear(year)
}

// floorDiv returns the quotient of a divided by b rounded towards
// negative infinity. b must be positive.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// floorMod returns a - floorDiv(a, b)*b, ie. the remainder with the
// sign of b. b must be positive.
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
