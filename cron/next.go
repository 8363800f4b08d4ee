// Copyright (c) 2019,CAO HONGJU. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cron

import "time"

// Next returns the next activation time strictly after t, in t's
// location. It returns the zero Time (Time.IsZero()) when no instant
// satisfies the expression at or before the end of the supported year
// range — the same "never again" sentinel the scheduler package's
// Schedule interface uses, so an Expression satisfies that interface
// directly.
func (e Expression) Next(t time.Time) time.Time {
	loc := t.Location()
	cur := t.Add(time.Second - time.Duration(t.Nanosecond()))
	cur = time.Date(cur.Year(), cur.Month(), cur.Day(), cur.Hour(), cur.Minute(), cur.Second(), 0, loc)

WRAP:
	for {
		if cur.Year() > YearMax {
			return time.Time{}
		}

		for !e.yearMatches(cur.Year()) {
			if cur.Year()+1 > YearMax {
				return time.Time{}
			}
			cur = time.Date(cur.Year()+1, time.January, 1, 0, 0, 0, 0, loc)
		}

		for !matchField(e.months, int(cur.Month())) {
			cur = time.Date(cur.Year(), cur.Month(), 1, 0, 0, 0, 0, loc)
			cur = cur.AddDate(0, 1, 0)
			if cur.Month() == time.January {
				continue WRAP
			}
		}

		dom := actualDaysOfMonth(cur.Year(), int(cur.Month()), &e)
		for !matchField(dom, cur.Day()) {
			cur = cur.AddDate(0, 0, 1)
			cur = time.Date(cur.Year(), cur.Month(), cur.Day(), 0, 0, 0, 0, loc)
			if cur.Day() == 1 {
				continue WRAP
			}
		}

		for !matchField(e.hours, cur.Hour()) {
			cur = cur.Add(time.Hour)
			cur = time.Date(cur.Year(), cur.Month(), cur.Day(), cur.Hour(), 0, 0, 0, loc)
			if cur.Hour() == 0 {
				continue WRAP
			}
		}

		for !matchField(e.minutes, cur.Minute()) {
			cur = cur.Add(time.Minute)
			cur = time.Date(cur.Year(), cur.Month(), cur.Day(), cur.Hour(), cur.Minute(), 0, 0, loc)
			if cur.Minute() == 0 {
				continue WRAP
			}
		}

		for !matchField(e.seconds, cur.Second()) {
			cur = cur.Add(time.Second)
			if cur.Second() == 0 {
				continue WRAP
			}
		}

		return cur
	}
}

// NextN returns up to n successive activation times strictly after t. It
// stops early, with fewer than n results, once Next reports no further
// match.
func (e Expression) NextN(t time.Time, n int) []time.Time {
	times := make([]time.Time, 0, n)
	cur := t
	for i := 0; i < n; i++ {
		nx := e.Next(cur)
		if nx.IsZero() {
			break
		}
		times = append(times, nx)
		cur = nx
	}
	return times
}

func matchField(mask uint64, n int) bool {
	return mask&(uint64(1)<<uint(63-n)) != 0
}

func (e Expression) yearMatches(y int) bool {
	i := y - YearMin
	if i < 0 || i >= yearWords*64 {
		return false
	}
	return e.years[i>>6]&(uint64(1)<<uint(63-(i&63))) != 0
}
