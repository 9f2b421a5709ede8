// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package equinox computes the astronomically observed French
// Republican new year, the day of the autumn equinox in Paris, so that
// the divergence from the arithmetic (Romme) leap rule used by the
// calendars package can be inspected. Conversions in the calendars
// package always use the arithmetic rule; this package exists because
// the calendar's historically active years (An I-XIV) placed leap years
// by equinox observation instead.
package equinox

import (
	"fmt"

	"cloudeng.io/calendars"
	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/solstice"
)

// parisMeridianOffset is the longitude of the Paris Observatory
// (2°20'14" E) as a fraction of a day, the meridian the Republican
// calendar's equinox observations were referred to.
const parisMeridianOffset = 2.3372 / 360

// September returns the Gregorian calendar day of the September equinox
// for the given Gregorian year, as observed on the Paris meridian.
func September(year int) (calendars.CivilDate, error) {
	jde := solstice.September(year)
	y, m, d := julian.JDToCalendar(jde + parisMeridianOffset)
	return calendars.New(y, m, int(d), calendars.Gregorian)
}

// RepublicanNewYear returns the Gregorian day on which the given
// Republican year would have begun under the historical equinox rule.
// Republican year 1 corresponds to the equinox of Gregorian 1792.
func RepublicanNewYear(republicanYear int) (calendars.CivilDate, error) {
	if republicanYear < 1 {
		return calendars.CivilDate{}, fmt.Errorf("republican year %d: %w", republicanYear, calendars.ErrOutOfRange)
	}
	return September(1791 + republicanYear)
}

// ArithmeticNewYear returns the Gregorian day on which the given
// Republican year begins under the arithmetic rule used for
// conversions.
func ArithmeticNewYear(republicanYear int) (calendars.CivilDate, error) {
	cd, err := calendars.New(republicanYear, 1, 1, calendars.FrenchRepublican)
	if err != nil {
		return calendars.CivilDate{}, err
	}
	return cd.ConvertTo(calendars.Gregorian)
}

// Diverges reports whether the equinox rule and the arithmetic rule
// place the start of the given Republican year on different days.
func Diverges(republicanYear int) (bool, error) {
	observed, err := RepublicanNewYear(republicanYear)
	if err != nil {
		return false, err
	}
	arithmetic, err := ArithmeticNewYear(republicanYear)
	if err != nil {
		return false, err
	}
	return !observed.Same(arithmetic), nil
}
