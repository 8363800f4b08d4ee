// Copyright (c) 2019,CAO HONGJU. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cron

// yearWords is the number of 64-bit words used to hold the year mask.
// [YearMin,YearMax] spans 230 years, so 4 words (256 bits) are needed.
const yearWords = 4

// Expression is the compiled, immutable bitmask form of a cron text
// (CompiledExpression in the design). Value-copy semantics apply: there
// is no shared mutable state, and nothing in this package ever mutates
// an Expression after it is returned from Compile/CompileFromFields.
type Expression struct {
	raw string // the original, or alias-expanded, source text

	seconds uint64    // 0..59
	minutes uint64    // 0..59
	hours   uint64    // 0..23
	months  uint64    // 1..12
	years   [yearWords]uint64

	daysOfMonth uint64 // 1..31

	// workdaysOfMonth, lastDayOfMonth and lastWorkdayOfMonth extend the
	// day-of-month field per §3/§4.2.
	workdaysOfMonth    uint64 // bit d set => "dW" (nearest weekday to day d)
	lastDayOfMonth     bool   // "L"
	lastWorkdayOfMonth bool   // "LW"

	// daysOfWeek is expanded to a 35-bit "5-week" mask per §4.3.1 so bit 1
	// represents "day-of-month 1, if it falls on this weekday".
	daysOfWeek uint64

	// ithWeekdaysOfWeek and lastWeekdaysOfWeek extend the day-of-week
	// field per §3/§4.2. Both use the same one-bit offset as daysOfWeek.
	ithWeekdaysOfWeek  uint64 // bit at (n-1)*7+w+1 => "w#n"
	lastWeekdaysOfWeek uint64 // "wL" weekdays, expanded like daysOfWeek
}

// String returns the text the Expression was compiled from (or, for
// CompileFromFields-built and alias-expanded expressions, whatever raw
// text was recorded at construction time).
func (e Expression) String() string {
	return e.raw
}

// Equal reports whether two Expressions compile to the identical
// bitmask record. Two Expressions built from different but equivalent
// text (e.g. "*" and "?" in a day field) are Equal.
func (e Expression) Equal(o Expression) bool {
	if e.seconds != o.seconds || e.minutes != o.minutes || e.hours != o.hours ||
		e.months != o.months || e.daysOfMonth != o.daysOfMonth ||
		e.workdaysOfMonth != o.workdaysOfMonth ||
		e.lastDayOfMonth != o.lastDayOfMonth ||
		e.lastWorkdayOfMonth != o.lastWorkdayOfMonth ||
		e.daysOfWeek != o.daysOfWeek ||
		e.ithWeekdaysOfWeek != o.ithWeekdaysOfWeek ||
		e.lastWeekdaysOfWeek != o.lastWeekdaysOfWeek {
		return false
	}
	return e.years == o.years
}
