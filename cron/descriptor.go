// Copyright (c) 2019,CAO HONGJU. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cron

import "strings"

// YearMin and YearMax bound the year field. A compiled expression whose
// year mask admits no value in this range can never fire.
const (
	YearMin = 1970
	YearMax = 2199
)

// fieldDescriptor holds the static metadata for one time field: its valid
// integer range and, for fields that accept names (month, day-of-week),
// the case-insensitive name table used to resolve tokens to integers.
type fieldDescriptor struct {
	name  string
	min   int
	max   int
	names map[string]int // lower-cased name/abbreviation -> value
}

// validate reports whether n falls within the field's valid range.
func (d fieldDescriptor) validate(n int) bool {
	return n >= d.min && n <= d.max
}

// fullMask is the bitmask with every valid-range bit set; it is the
// "unrestricted" sentinel that both `*` and `?` compile to. For day of
// week the compiled form is this mask after expansion (dowFullMask).
func (d fieldDescriptor) fullMask() uint64 {
	return setRange(0, d.min, d.max)
}

// intFromToken converts a numeric or named token to its integer value,
// returning -1 if the token is not recognized by this field at all
// (further range validation is the caller's job).
func (d fieldDescriptor) intFromToken(tok string) int {
	if n, ok := atoiStrict(tok); ok {
		return n
	}
	if d.names != nil {
		if n, ok := d.names[strings.ToLower(tok)]; ok {
			return n
		}
	}
	return -1
}

// atoiStrict parses a decimal, non-negative integer without relying on
// strconv's acceptance of leading '+' or underscores, since cron tokens
// should be plain digits.
func atoiStrict(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

// setRange ORs bits [a,b] (inclusive, using the MSB-down encoding from
// §3: bit i = value i) into mask and returns the result.
func setRange(mask uint64, a, b int) uint64 {
	for i := a; i <= b; i++ {
		mask |= uint64(1) << uint(63-i)
	}
	return mask
}

var secondDescriptor = fieldDescriptor{name: "second", min: 0, max: 59}
var minuteDescriptor = fieldDescriptor{name: "minute", min: 0, max: 59}
var hourDescriptor = fieldDescriptor{name: "hour", min: 0, max: 23}
var domDescriptor = fieldDescriptor{name: "day of month", min: 1, max: 31}
var monthDescriptor = fieldDescriptor{name: "month", min: 1, max: 12, names: monthNames}
var dowDescriptor = fieldDescriptor{name: "day of week", min: 0, max: 7, names: weekdayNames}

// monthNames maps full and 3-letter (both case folded to lower) month
// names to their 1-based integer value.
var monthNames = map[string]int{
	"january": 1, "jan": 1,
	"february": 2, "feb": 2,
	"march": 3, "mar": 3,
	"april": 4, "apr": 4,
	"may": 5,
	"june": 6, "jun": 6,
	"july": 7, "jul": 7,
	"august": 8, "aug": 8,
	"september": 9, "sep": 9,
	"october": 10, "oct": 10,
	"november": 11, "nov": 11,
	"december": 12, "dec": 12,
}

// weekdayNames maps full and 3-letter weekday names to Sunday=0..Saturday=6.
// "7" (Sunday alias) is handled as a plain numeric token by intFromToken,
// not listed here, and is normalized back to 0 during compilation (§4.3.1).
var weekdayNames = map[string]int{
	"sunday": 0, "sun": 0,
	"monday": 1, "mon": 1,
	"tuesday": 2, "tue": 2,
	"wednesday": 3, "wed": 3,
	"thursday": 4, "thu": 4,
	"friday": 5, "fri": 5,
	"saturday": 6, "sat": 6,
}
