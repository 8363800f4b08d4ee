// Copyright (c) 2019,CAO HONGJU. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cron

import "strings"

// Compile parses a cron expression into an Expression (ExpressionCompiler
// in the design). Every token is validated before Compile returns: a
// malformed token in one field does not short-circuit validation of the
// rest, and every failure found is reported together via the returned
// error (see errors.go). No partial Expression is ever handed back
// alongside an error.
func Compile(spec string) (Expression, error) {
	trimmed := strings.TrimSpace(spec)
	if trimmed == "" {
		return Expression{}, &InvalidSpec{}
	}

	if strings.HasPrefix(trimmed, "@") {
		return compileAlias(trimmed)
	}

	fields := strings.Fields(trimmed)
	if len(fields) < 5 || len(fields) > 7 {
		return Expression{}, &MissingFields{Count: len(fields)}
	}

	e := Expression{raw: spec}
	var errs []error

	// Seconds default to "0" when only 5 fields are given (§4.3 step 4).
	secondsGiven := len(fields) != 5
	if !secondsGiven {
		e.seconds = uint64(1) << 63 // second 0
	}

	// Year defaults to "every year" unless all 7 fields are present.
	yearGiven := len(fields) == 7

	idx := 0
	parseField := func(l *fieldLexer, token string) {
		if err := l.parse(token); err != nil {
			errs = append(errs, err)
		}
	}

	if secondsGiven {
		parseField(secondLexer(&e), fields[idx])
		idx++
	}
	parseField(minuteLexer(&e), fields[idx])
	idx++
	parseField(hourLexer(&e), fields[idx])
	idx++
	parseField(domLexer(&e), fields[idx])
	idx++
	parseField(monthLexer(&e), fields[idx])
	idx++
	parseField(dowLexer(&e), fields[idx])
	idx++

	if yearGiven {
		parseField(yearLexer(&e), fields[idx])
		idx++
	} else {
		e.years = allYears()
	}

	adjustWeekdayBits(&e)

	if err := newCompileErrors(errs); err != nil {
		return Expression{}, err
	}
	return e, nil
}

// MustCompile is like Compile but panics if spec is malformed.
func MustCompile(spec string) Expression {
	e, err := Compile(spec)
	if err != nil {
		panic(err)
	}
	return e
}

// CompileFromFields builds an Expression directly from six raw masks
// (seconds, minutes, hours, daysOfMonth, months, daysOfWeek), with the
// year mask defaulting to "every year". daysOfWeek is taken as already
// being in final (post §4.3.1 expansion) form. This is the one builder
// path besides Compile itself — Expression exposes no mutating setters.
func CompileFromFields(seconds, minutes, hours, daysOfMonth, months, daysOfWeek uint64) Expression {
	return Expression{
		seconds:     seconds,
		minutes:     minutes,
		hours:       hours,
		daysOfMonth: daysOfMonth,
		months:      months,
		daysOfWeek:  daysOfWeek,
		years:       allYears(),
	}
}

func allYears() [yearWords]uint64 {
	var words [yearWords]uint64
	for i := range words {
		words[i] = ^uint64(0)
	}
	return words
}

// dowFullMask is the fully-expanded (post §4.3.1) "every weekday"
// sentinel: bits 1..35 set, i.e. every day-of-month offset in the 5-week
// window satisfies some weekday.
var dowFullMask = setRange(0, 1, 35)

func compileAlias(spec string) (Expression, error) {
	switch spec {
	case "@yearly", "@annually":
		return aliasExpr(spec, 1<<63, 1<<63, 1<<63, setRange(0, 1, 1), setRange(0, 1, 1), dowFullMask), nil
	case "@monthly":
		return aliasExpr(spec, 1<<63, 1<<63, 1<<63, setRange(0, 1, 1), monthDescriptor.fullMask(), dowFullMask), nil
	case "@weekly":
		return aliasExpr(spec, 1<<63, 1<<63, 1<<63, domDescriptor.fullMask(), monthDescriptor.fullMask(), expandWeekdayMask(setRange(0, 0, 0))), nil
	case "@daily", "@midnight":
		return aliasExpr(spec, 1<<63, 1<<63, 1<<63, domDescriptor.fullMask(), monthDescriptor.fullMask(), dowFullMask), nil
	case "@hourly":
		return aliasExpr(spec, 1<<63, 1<<63, hourDescriptor.fullMask(), domDescriptor.fullMask(), monthDescriptor.fullMask(), dowFullMask), nil
	}
	return Expression{}, &UnknownAlias{Name: spec}
}

func aliasExpr(raw string, seconds, minutes, hours, dom, months, dow uint64) Expression {
	e := CompileFromFields(seconds, minutes, hours, dom, months, dow)
	e.raw = raw
	return e
}

// --- per-field lexer constructors -----------------------------------

func secondLexer(e *Expression) *fieldLexer {
	return &fieldLexer{
		desc:     secondDescriptor,
		populate: func(a, b, step int) { populateInto(&e.seconds, a, b, step) },
	}
}

func minuteLexer(e *Expression) *fieldLexer {
	return &fieldLexer{
		desc:     minuteDescriptor,
		populate: func(a, b, step int) { populateInto(&e.minutes, a, b, step) },
	}
}

func hourLexer(e *Expression) *fieldLexer {
	return &fieldLexer{
		desc:     hourDescriptor,
		populate: func(a, b, step int) { populateInto(&e.hours, a, b, step) },
	}
}

func monthLexer(e *Expression) *fieldLexer {
	return &fieldLexer{
		desc:     monthDescriptor,
		populate: func(a, b, step int) { populateInto(&e.months, a, b, step) },
	}
}

func domLexer(e *Expression) *fieldLexer {
	return &fieldLexer{
		desc:     domDescriptor,
		populate: func(a, b, step int) { populateInto(&e.daysOfMonth, a, b, step) },
		ext: func(entry string) (bool, error) {
			switch {
			case entry == "?":
				e.daysOfMonth |= domDescriptor.fullMask()
				return true, nil
			case entry == "LW":
				e.lastWorkdayOfMonth = true
				return true, nil
			case entry == "L":
				e.lastDayOfMonth = true
				return true, nil
			case strings.HasSuffix(entry, "W"):
				n, ok := atoiStrict(entry[:len(entry)-1])
				if !ok || !domDescriptor.validate(n) {
					return true, &InvalidFieldSyntax{Field: domDescriptor.name, Token: entry}
				}
				e.workdaysOfMonth |= uint64(1) << uint(63-n)
				return true, nil
			}
			return false, nil
		},
	}
}

func dowLexer(e *Expression) *fieldLexer {
	return &fieldLexer{
		desc:     dowDescriptor,
		populate: func(a, b, step int) { populateInto(&e.daysOfWeek, a, b, step) },
		wrapBase: 1,
		ext: func(entry string) (bool, error) {
			switch {
			case entry == "?":
				e.daysOfWeek |= dowFullMask << 1
				return true, nil
			case strings.HasSuffix(entry, "L"):
				n, ok := dowDescriptor.intFromTokenOK(entry[:len(entry)-1])
				if !ok || !dowDescriptor.validate(n) {
					return true, &InvalidFieldSyntax{Field: dowDescriptor.name, Token: entry}
				}
				e.lastWeekdaysOfWeek |= uint64(1) << uint(63-n)
				return true, nil
			}
			if i := strings.IndexByte(entry, '#'); i != -1 {
				weekday, ok1 := dowDescriptor.intFromTokenOK(entry[:i])
				ith, ok2 := atoiStrict(entry[i+1:])
				if !ok1 || !ok2 || !dowDescriptor.validate(weekday) || ith < 1 || ith > 5 {
					return true, &InvalidFieldSyntax{Field: dowDescriptor.name, Token: entry}
				}
				if weekday == 7 {
					weekday = 0
				}
				n := (ith-1)*7 + weekday
				e.ithWeekdaysOfWeek |= uint64(1) << uint(62-n)
				return true, nil
			}
			return false, nil
		},
	}
}

func yearLexer(e *Expression) *fieldLexer {
	yd := fieldDescriptor{name: "year", min: YearMin, max: YearMax}
	return &fieldLexer{
		desc:   yd,
		noWrap: true,
		populate: func(a, b, step int) {
			for y := a; y <= b; y += step {
				i := y - YearMin
				e.years[i>>6] |= uint64(1) << uint(63-(i&63))
			}
		},
	}
}

func populateInto(mask *uint64, a, b, step int) {
	for i := a; i <= b; i += step {
		*mask |= uint64(1) << uint(63-i)
	}
}

// intFromTokenOK is like intFromToken but also reports whether the
// token was recognized at all (numeric or named), distinct from being
// out of range.
func (d fieldDescriptor) intFromTokenOK(tok string) (int, bool) {
	n := d.intFromToken(tok)
	return n, n != -1
}

// adjustWeekdayBits performs the §4.3.1 weekday bit adjustment: folds
// the Sunday-as-7 alias into Sunday-as-0, replicates the 7-bit weekday
// pattern across the 5-week window, and shifts right by one so bit 1
// aligns with "day-of-month 1".
func adjustWeekdayBits(e *Expression) {
	const sunAsSeven = uint64(1) << (63 - 7)
	const sunAsZero = uint64(1) << 63

	if e.daysOfWeek&sunAsSeven != 0 {
		e.daysOfWeek |= sunAsZero
	}
	if e.lastWeekdaysOfWeek&sunAsSeven != 0 {
		e.lastWeekdaysOfWeek |= sunAsZero
	}

	e.daysOfWeek = expandWeekdayMask(e.daysOfWeek)
	e.lastWeekdaysOfWeek = expandWeekdayMask(e.lastWeekdaysOfWeek)
}

// expandWeekdayMask takes a raw weekday mask (bit i = weekday i, i in
// 0..7, Sunday-as-7 already folded into Sunday-as-0 by the caller if
// needed) and replicates its top 7 bits across a 35-bit, 5-week window,
// then shifts right by one so bit 1 represents "day-of-month 1, if it
// falls on an accepted weekday".
func expandWeekdayMask(raw uint64) uint64 {
	const weekBits = uint64(0xfe00000000000000) // bits for weekday 0..6
	top := raw & weekBits
	var expanded uint64
	for i := 0; i < 35; i += 7 {
		expanded |= top >> uint(i)
	}
	return expanded >> 1
}
