// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"sync"

	"cloudeng.io/algo/container/circular"
)

// The Hebrew calendar, using the fixed arithmetic (molad based) form.
// Months are numbered civilly with Tishri as month 1; in leap years
// Adar I is month 6 and Adar II month 7, with Nisan through Elul
// shifted up by one. Leap years are placed by the 19-year Metonic
// cycle. A year is deficient, regular or complete (353/354/355 days,
// or 383/384/385 in leap years), with Marcheshvan (month 2) and Kislev
// (month 3) absorbing the variation.

const maxHebrewYear = 1_000_000

// hebrewEpoch is Tishri 1 of AM 1, proleptic Julian 7 October 3761 BCE,
// derived from the Julian converter (Rata Die -1373427).
var hebrewEpoch = julianRD(-3760, 10, 7)

var (
	minHebrewDay = hebrewYears.newYear(1)
	maxHebrewDay = hebrewYears.newYear(maxHebrewYear+1) - 1
)

func hebrewIsLeap(year int) bool {
	return floorMod(7*int64(year)+1, 19) < 7
}

func hebrewMonthsPerYear(year int) (int, error) {
	if year < 1 || year > maxHebrewYear {
		return 0, yearOutOfRange(Hebrew, year)
	}
	if hebrewIsLeap(year) {
		return 13, nil
	}
	return 12, nil
}

// hebrewElapsedDays returns the number of days from the Hebrew epoch to
// the mean new year of the given year, including the molad postponement
// that keeps Rosh Hashanah off Sunday, Wednesday and Friday. A month is
// 29 days, 12 hours and 793 parts; there are 25920 parts in a day.
func hebrewElapsedDays(year int64) int64 {
	monthsElapsed := floorDiv(235*year-234, 19)
	partsElapsed := 12084 + 13753*monthsElapsed
	days := 29*monthsElapsed + floorDiv(partsElapsed, 25920)
	if floorMod(3*(days+1), 7) < 3 {
		return days + 1
	}
	return days
}

// hebrewNewYearDelay returns the additional postponement (0, 1 or 2
// days) needed to keep year lengths within their permitted bounds.
func hebrewNewYearDelay(year int64) int64 {
	ny0 := hebrewElapsedDays(year - 1)
	ny1 := hebrewElapsedDays(year)
	ny2 := hebrewElapsedDays(year + 1)
	switch {
	case ny2-ny1 == 356:
		return 2
	case ny1-ny0 == 382:
		return 1
	}
	return 0
}

// hebrewYearCache memoizes new year computations, which dominate the
// cost of every Hebrew conversion. The cache is bounded: once full, the
// oldest entries are evicted in insertion order. Correctness never
// depends on a hit since the underlying computation is pure.
type hebrewYearCache struct {
	mu    sync.Mutex
	limit int
	days  map[int]AbsoluteDay
	order *circular.Buffer[int]
}

var hebrewYears = newHebrewYearCache(1024)

func newHebrewYearCache(limit int) *hebrewYearCache {
	return &hebrewYearCache{
		limit: limit,
		days:  make(map[int]AbsoluteDay, limit),
		order: circular.NewBuffer[int](limit),
	}
}

// newYear returns the Rata Die day of Tishri 1 of the given year.
func (c *hebrewYearCache) newYear(year int) AbsoluteDay {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d, ok := c.days[year]; ok {
		return d
	}
	y := int64(year)
	d := hebrewEpoch + AbsoluteDay(hebrewElapsedDays(y)+hebrewNewYearDelay(y))
	if excess := len(c.days) - c.limit + 1; excess > 0 {
		for _, evict := range c.order.Head(excess) {
			delete(c.days, evict)
		}
	}
	c.days[year] = d
	c.order.Append([]int{year})
	return d
}

func hebrewDaysInYear(year int) int {
	return int(hebrewYears.newYear(year+1) - hebrewYears.newYear(year))
}

func hebrewLongMarheshvan(year int) bool {
	switch hebrewDaysInYear(year) {
	case 355, 385:
		return true
	}
	return false
}

func hebrewShortKislev(year int) bool {
	switch hebrewDaysInYear(year) {
	case 353, 383:
		return true
	}
	return false
}

// hebrewMonthLength returns the length of a civil-numbered month in a
// year assumed to be in range; month is assumed to be within the year's
// month count.
func hebrewMonthLength(year, month int) int {
	switch month {
	case 1: // Tishri
		return 30
	case 2: // Marcheshvan
		if hebrewLongMarheshvan(year) {
			return 30
		}
		return 29
	case 3: // Kislev
		if hebrewShortKislev(year) {
			return 29
		}
		return 30
	case 4: // Tevet
		return 29
	case 5: // Shevat
		return 30
	}
	m := month
	if hebrewIsLeap(year) {
		switch month {
		case 6: // Adar I
			return 30
		case 7: // Adar II
			return 29
		}
		m-- // Nisan..Elul occupy 8..13; fold onto the common numbering.
	}
	// Adar then Nisan..Elul alternate 29/30 starting from Adar at 29.
	if m%2 == 0 {
		return 29
	}
	return 30
}

func hebrewDaysInMonth(year, month int) (int, error) {
	n, err := hebrewMonthsPerYear(year)
	if err != nil {
		return 0, err
	}
	if month < 1 || month > n {
		return 0, invalidMonth(Hebrew, year, month)
	}
	return hebrewMonthLength(year, month), nil
}

func hebrewToAbsolute(year, month, day int) (AbsoluteDay, error) {
	n, err := hebrewDaysInMonth(year, month)
	if err != nil {
		return 0, err
	}
	if day < 1 || day > n {
		return 0, invalidDate(Hebrew, year, month, day, "day of month out of range")
	}
	ad := hebrewYears.newYear(year) + AbsoluteDay(day-1)
	for m := 1; m < month; m++ {
		ad += AbsoluteDay(hebrewMonthLength(year, m))
	}
	return ad, nil
}

func hebrewFromAbsolute(ad AbsoluteDay) (int, int, int, error) {
	if ad < minHebrewDay || ad > maxHebrewDay {
		return 0, 0, 0, dayOutOfRange(Hebrew, ad)
	}
	// The mean year is 35975351/98496 days; the estimate below is at
	// most one year high, so start one back and scan forward.
	year := int(floorDiv(98496*int64(ad-hebrewEpoch), 35975351))
	for hebrewYears.newYear(year+1) <= ad {
		year++
	}
	month := 1
	day := int(ad-hebrewYears.newYear(year)) + 1
	for {
		n := hebrewMonthLength(year, month)
		if day <= n {
			break
		}
		day -= n
		month++
	}
	return year, month, day, nil
}
