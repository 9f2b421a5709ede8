// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

// The proleptic Gregorian calendar. The leap rule, every 4th year except
// centuries that are not multiples of 400, is applied uniformly to all
// years using astronomical numbering (year 0 exists and precedes year 1),
// with no Julian/Gregorian cutover. Conversions use the closed-form
// Rata Die formulas from the standard calendrical literature rather than
// iteration.

// Years outside this span are rejected rather than risk surprising
// consumers with astronomically distant dates.
const (
	minGregorianYear = -1_000_000
	maxGregorianYear = 1_000_000
)

var (
	daysInMonth     = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	daysInMonthLeap = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
)

var (
	minGregorianDay = gregorianRD(minGregorianYear, 1, 1)
	maxGregorianDay = gregorianRD(maxGregorianYear, 12, 31)
)

func gregorianIsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func gregorianMonthsPerYear(year int) (int, error) {
	if year < minGregorianYear || year > maxGregorianYear {
		return 0, yearOutOfRange(Gregorian, year)
	}
	return 12, nil
}

func gregorianDaysInMonth(year, month int) (int, error) {
	if year < minGregorianYear || year > maxGregorianYear {
		return 0, yearOutOfRange(Gregorian, year)
	}
	if month < 1 || month > 12 {
		return 0, invalidMonth(Gregorian, year, month)
	}
	if gregorianIsLeap(year) {
		return daysInMonthLeap[month-1], nil
	}
	return daysInMonth[month-1], nil
}

// gregorianRD returns the Rata Die day number for a proleptic Gregorian
// date assumed to be valid.
func gregorianRD(year, month, day int) AbsoluteDay {
	y, m := int64(year)-1, int64(month)
	rd := 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) +
		floorDiv(367*m-362, 12) + int64(day)
	if month > 2 {
		if gregorianIsLeap(year) {
			rd--
		} else {
			rd -= 2
		}
	}
	return AbsoluteDay(rd)
}

func gregorianToAbsolute(year, month, day int) (AbsoluteDay, error) {
	n, err := gregorianDaysInMonth(year, month)
	if err != nil {
		return 0, err
	}
	if day < 1 || day > n {
		return 0, invalidDate(Gregorian, year, month, day, "day of month out of range")
	}
	return gregorianRD(year, month, day), nil
}

// gregorianYearFromRD decomposes the day count into completed 400, 100,
// 4 and 1 year cycles. The 146097 day 400-year cycle is exact for the
// Gregorian leap rule.
func gregorianYearFromRD(rd int64) int {
	d0 := rd - 1
	n400 := floorDiv(d0, 146097)
	d1 := floorMod(d0, 146097)
	n100 := floorDiv(d1, 36524)
	d2 := floorMod(d1, 36524)
	n4 := floorDiv(d2, 1461)
	d3 := floorMod(d2, 1461)
	n1 := floorDiv(d3, 365)
	year := 400*n400 + 100*n100 + 4*n4 + n1
	if n100 == 4 || n1 == 4 {
		// Last day of a leap year, not the first day of the next.
		return int(year)
	}
	return int(year + 1)
}

func gregorianFromAbsolute(ad AbsoluteDay) (int, int, int, error) {
	if ad < minGregorianDay || ad > maxGregorianDay {
		return 0, 0, 0, dayOutOfRange(Gregorian, ad)
	}
	year := gregorianYearFromRD(int64(ad))
	priorDays := int64(ad - gregorianRD(year, 1, 1))
	var correction int64
	if ad >= gregorianRD(year, 3, 1) {
		if gregorianIsLeap(year) {
			correction = 1
		} else {
			correction = 2
		}
	}
	month := int(floorDiv(12*(priorDays+correction)+373, 367))
	day := int(ad-gregorianRD(year, month, 1)) + 1
	return year, month, day, nil
}
