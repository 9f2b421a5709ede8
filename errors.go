// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDate indicates a year/month/day triple that does not
	// exist in the stated calendar, such as a bad month number, a day
	// beyond the end of its month or a leap day in a non-leap year.
	ErrInvalidDate = errors.New("invalid date")

	// ErrOutOfRange indicates a year or absolute day outside the span
	// over which a calendar is arithmetically defined.
	ErrOutOfRange = errors.New("out of range")

	// ErrUnsupportedCalendar indicates a CalendarKind value outside the
	// closed enumeration. It should be unreachable for correctly
	// constructed values.
	ErrUnsupportedCalendar = errors.New("unsupported calendar")
)

func invalidDate(k CalendarKind, year, month, day int, why string) error {
	return fmt.Errorf("%v %d-%02d-%02d: %s: %w", k, year, month, day, why, ErrInvalidDate)
}

func invalidMonth(k CalendarKind, year, month int) error {
	return fmt.Errorf("%v year %d: invalid month %d: %w", k, year, month, ErrInvalidDate)
}

func yearOutOfRange(k CalendarKind, year int) error {
	return fmt.Errorf("%v year %d: %w", k, year, ErrOutOfRange)
}

func dayOutOfRange(k CalendarKind, ad AbsoluteDay) error {
	return fmt.Errorf("%v absolute day %d: %w", k, ad, ErrOutOfRange)
}
