// Copyright (c) 2019,CAO HONGJU. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cron

// This file is the CalendarProbe described in §4.6: pure integer
// arithmetic over (year, month, day) triples, with no dependency on the
// time package. The resolver uses it for month lengths and weekdays;
// Next itself walks candidate instants as time.Time values in the
// location of its input.

// isLeapYear reports whether y is a Gregorian leap year.
func isLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

var monthLengths = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// lengthOfMonth returns the number of days in (y, m), m in [1,12].
func lengthOfMonth(y, m int) int {
	if m == 2 && isLeapYear(y) {
		return 29
	}
	return monthLengths[m]
}

// dayOfWeek returns the weekday of (y, m, d) as Sunday=0 .. Saturday=6,
// via Zeller's congruence: January and February are treated
// as months 13 and 14 of the preceding year so the leap-day adjustment
// for the current year never has to be special-cased.
func dayOfWeek(y, m, d int) int {
	yy, mm := y, m
	if mm < 3 {
		mm += 12
		yy--
	}
	h := d + (13*(mm+1))/5 + yy + yy/4 - yy/100 + yy/400
	h %= 7
	if h < 0 {
		h += 7
	}
	// h is 0=Saturday..6=Friday; rotate to 0=Sunday..6=Saturday.
	return (h + 6) % 7
}
