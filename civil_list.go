// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"fmt"
	"slices"
	"strings"

	"cloudeng.io/errors"
)

// CivilDateList represents a list of CivilDate values, possibly in
// mixed calendars.
type CivilDateList []CivilDate

// Sort sorts the list into ascending absolute-day order.
func (cdl CivilDateList) Sort() {
	slices.SortFunc(cdl, CivilDate.Compare)
}

// Contains returns true if the list contains a date denoting the same
// day as d, in any calendar.
func (cdl CivilDateList) Contains(d CivilDate) bool {
	for _, cd := range cdl {
		if cd.Same(d) {
			return true
		}
	}
	return false
}

// ConvertTo converts every date in the list to the target calendar.
// Dates that cannot be represented in the target calendar are omitted
// from the result and their failures aggregated into the returned
// error.
func (cdl CivilDateList) ConvertTo(kind CalendarKind) (CivilDateList, error) {
	errs := errors.M{}
	converted := make(CivilDateList, 0, len(cdl))
	for _, cd := range cdl {
		ncd, err := cd.ConvertTo(kind)
		if err != nil {
			errs.Append(fmt.Errorf("%v: %w", cd, err))
			continue
		}
		converted = append(converted, ncd)
	}
	return converted, errs.Err()
}

func (cdl CivilDateList) String() string {
	var out strings.Builder
	for i, cd := range cdl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(cd.String())
	}
	return out.String()
}
