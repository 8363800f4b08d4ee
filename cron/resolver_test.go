// Copyright (c) 2019,CAO HONGJU. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cron

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func dayBit(d int) uint64 { return uint64(1) << uint(63-d) }

func TestActualDaysOfMonthUnrestricted(t *testing.T) {
	e := MustCompile("0 0 * * *")
	got := actualDaysOfMonth(2013, 2, &e)
	assert.Equal(t, setRange(0, 1, 28), got)
}

func TestActualDaysOfMonthLastDay(t *testing.T) {
	e := MustCompile("0 0 L * *")
	assert.Equal(t, dayBit(30), actualDaysOfMonth(2013, 9, &e))
	assert.Equal(t, dayBit(29), actualDaysOfMonth(2016, 2, &e))
}

func TestActualDaysOfMonthLastWorkday(t *testing.T) {
	e := MustCompile("0 0 LW * *")
	// November 30, 2013 is a Saturday.
	assert.Equal(t, dayBit(29), actualDaysOfMonth(2013, 11, &e))
	// August 31, 2014 is a Sunday.
	assert.Equal(t, dayBit(29), actualDaysOfMonth(2014, 8, &e))
	// September 30, 2013 is a Monday: no shift needed.
	assert.Equal(t, dayBit(30), actualDaysOfMonth(2013, 9, &e))
}

func TestActualDaysOfMonthNearestWorkday(t *testing.T) {
	e := MustCompile("0 0 14W * *")
	// April 14, 2013 is a Sunday -> shifts forward to Monday the 15th.
	assert.Equal(t, dayBit(15), actualDaysOfMonth(2013, 4, &e))
	// September 14, 2013 is a Saturday -> shifts back to Friday the 13th.
	assert.Equal(t, dayBit(13), actualDaysOfMonth(2013, 9, &e))
}

func TestActualDaysOfMonthNearestWorkdayAtMonthEnd(t *testing.T) {
	e := MustCompile("0 0 30W * *")
	// June 30, 2013 is a Sunday; shifting forward would cross into July, so
	// it resolves like LW would: back to Friday the 28th.
	assert.Equal(t, dayBit(28), actualDaysOfMonth(2013, 6, &e))
}

func TestActualDaysOfMonthBothRestrictedIsUnion(t *testing.T) {
	e := MustCompile("0 0 1 * MON")
	got := actualDaysOfMonth(2013, 1, &e)
	assert.NotZero(t, got&dayBit(1), "day-of-month contribution")
	assert.NotZero(t, got&dayBit(7), "Monday Jan 7, 2013, via day-of-week contribution")
}
