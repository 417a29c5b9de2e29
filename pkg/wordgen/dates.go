package wordgen

import (
	"strconv"
	"time"
)

// Common birth-year window appended regardless of the configured range.
const (
	birthYearStart = 1970
	birthYearEnd   = 2010
)

var monthStrings = []string{
	"01", "02", "03", "04", "05", "06",
	"07", "08", "09", "10", "11", "12",
}

var repeatedTriples = []string{
	"123", "321", "111", "222", "333", "444",
	"555", "666", "777", "888", "999", "000",
}

// Dates produces year and date-like strings for every year in
// [startYear, endYear), both 4-digit and 2-digit forms, plus month
// strings, repeated-digit triples and the common birth-year range.
// A non-positive endYear defaults to two years past the current one.
func Dates(startYear, endYear int) Set {
	dates := NewSet()

	if endYear <= 0 {
		endYear = time.Now().Year() + 2
	}

	for year := startYear; year < endYear; year++ {
		addYear(dates, year)
	}

	for _, m := range monthStrings {
		dates.Add(m)
	}
	for _, t := range repeatedTriples {
		dates.Add(t)
	}

	for year := birthYearStart; year < birthYearEnd; year++ {
		addYear(dates, year)
	}

	return dates
}

func addYear(dates Set, year int) {
	s := strconv.Itoa(year)
	dates.Add(s)
	if len(s) >= 2 {
		dates.Add(s[len(s)-2:])
	}
}
