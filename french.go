// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

// The French Republican calendar: twelve 30-day months followed by 5
// complementary days (6 in leap years) treated as a short 13th month.
// Year 1 begins on 22 September 1792 (Gregorian), the historical
// adoption date.
//
// Historically the start of each year was tied to the autumn equinox as
// observed in Paris, which made leap placement unpredictable and is only
// attested for the calendar's active years (An I-XIV). This
// implementation instead uses the Romme arithmetic rule throughout:
// a Republican year is leap when divisible by 4, except multiples of 100
// that are not multiples of 400. The two rules disagree for a few known
// years (An III, VII and XI were equinox leap years; the arithmetic rule
// makes An IV, VIII and XII leap instead); the equinox subpackage exposes
// the observed equinox dates so the divergence can be inspected.

const maxFrenchYear = 1_000_000

// frenchEpoch is 1 Vendémiaire An I, derived from the Gregorian
// converter rather than hardcoded.
var frenchEpoch = gregorianRD(1792, 9, 22)

var maxFrenchDay = frenchNewYear(maxFrenchYear+1) - 1

func frenchIsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func frenchMonthsPerYear(year int) (int, error) {
	if year < 1 || year > maxFrenchYear {
		return 0, yearOutOfRange(FrenchRepublican, year)
	}
	return 13, nil
}

func frenchDaysInMonth(year, month int) (int, error) {
	if year < 1 || year > maxFrenchYear {
		return 0, yearOutOfRange(FrenchRepublican, year)
	}
	switch {
	case month >= 1 && month <= 12:
		return 30, nil
	case month == 13:
		if frenchIsLeap(year) {
			return 6, nil
		}
		return 5, nil
	}
	return 0, invalidMonth(FrenchRepublican, year, month)
}

// frenchNewYear returns the Rata Die day of 1 Vendémiaire of the given
// Republican year.
func frenchNewYear(year int) AbsoluteDay {
	y := int64(year) - 1
	return frenchEpoch + AbsoluteDay(365*y+floorDiv(y, 4)-floorDiv(y, 100)+floorDiv(y, 400))
}

func frenchToAbsolute(year, month, day int) (AbsoluteDay, error) {
	n, err := frenchDaysInMonth(year, month)
	if err != nil {
		return 0, err
	}
	if day < 1 || day > n {
		return 0, invalidDate(FrenchRepublican, year, month, day, "day of month out of range")
	}
	return frenchNewYear(year) + AbsoluteDay(30*(month-1)+day-1), nil
}

func frenchFromAbsolute(ad AbsoluteDay) (int, int, int, error) {
	if ad < frenchEpoch || ad > maxFrenchDay {
		return 0, 0, 0, dayOutOfRange(FrenchRepublican, ad)
	}
	// The Romme rule shares the Gregorian 146097 day 400-year cycle, so
	// the same cycle decomposition applies, here relative to the
	// Republican epoch.
	d0 := int64(ad - frenchEpoch)
	n400 := floorDiv(d0, 146097)
	d1 := floorMod(d0, 146097)
	n100 := floorDiv(d1, 36524)
	d2 := floorMod(d1, 36524)
	n4 := floorDiv(d2, 1461)
	d3 := floorMod(d2, 1461)
	n1 := floorDiv(d3, 365)
	year := int(400*n400 + 100*n100 + 4*n4 + n1)
	if n100 != 4 && n1 != 4 {
		year++
	}
	dayOfYear := int(ad - frenchNewYear(year))
	month := dayOfYear/30 + 1
	day := dayOfYear - 30*(month-1) + 1
	return year, month, day, nil
}
