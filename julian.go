// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

// The proleptic Julian calendar: a leap year every 4th year with no
// century exceptions, using astronomical year numbering (year 0 exists).
// The conversion is an independent closed form anchored to the same
// Rata Die epoch as the Gregorian converter; the drifting offset between
// the two calendars falls out of the two formulas rather than being
// stated anywhere.

const (
	minJulianYear = -1_000_000
	maxJulianYear = 1_000_000
)

var (
	minJulianDay = julianRD(minJulianYear, 1, 1)
	maxJulianDay = julianRD(maxJulianYear, 12, 31)
)

func julianIsLeap(year int) bool {
	return year%4 == 0
}

func julianMonthsPerYear(year int) (int, error) {
	if year < minJulianYear || year > maxJulianYear {
		return 0, yearOutOfRange(Julian, year)
	}
	return 12, nil
}

func julianDaysInMonth(year, month int) (int, error) {
	if year < minJulianYear || year > maxJulianYear {
		return 0, yearOutOfRange(Julian, year)
	}
	if month < 1 || month > 12 {
		return 0, invalidMonth(Julian, year, month)
	}
	if julianIsLeap(year) {
		return daysInMonthLeap[month-1], nil
	}
	return daysInMonth[month-1], nil
}

// julianRD returns the Rata Die day number for a proleptic Julian date
// assumed to be valid. Julian 1 January of year 1 is Rata Die -1.
func julianRD(year, month, day int) AbsoluteDay {
	y, m := int64(year)-1, int64(month)
	rd := -2 + 365*y + floorDiv(y, 4) + floorDiv(367*m-362, 12) + int64(day)
	if month > 2 {
		if julianIsLeap(year) {
			rd--
		} else {
			rd -= 2
		}
	}
	return AbsoluteDay(rd)
}

func julianToAbsolute(year, month, day int) (AbsoluteDay, error) {
	n, err := julianDaysInMonth(year, month)
	if err != nil {
		return 0, err
	}
	if day < 1 || day > n {
		return 0, invalidDate(Julian, year, month, day, "day of month out of range")
	}
	return julianRD(year, month, day), nil
}

func julianFromAbsolute(ad AbsoluteDay) (int, int, int, error) {
	if ad < minJulianDay || ad > maxJulianDay {
		return 0, 0, 0, dayOutOfRange(Julian, ad)
	}
	// The uniform 1461 day cycle makes this exact, not approximate.
	year := int(floorDiv(4*(int64(ad)+1)+1464, 1461))
	priorDays := int64(ad - julianRD(year, 1, 1))
	var correction int64
	if ad >= julianRD(year, 3, 1) {
		if julianIsLeap(year) {
			correction = 1
		} else {
			correction = 2
		}
	}
	month := int(floorDiv(12*(priorDays+correction)+373, 367))
	day := int(ad-julianRD(year, month, 1)) + 1
	return year, month, day, nil
}
