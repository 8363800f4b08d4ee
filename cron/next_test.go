// Copyright (c) 2019,CAO HONGJU. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cron

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type crontimes struct {
	from string
	next string
}

type crontest struct {
	expr   string
	layout string
	times  []crontimes
}

var crontests = []crontest{
	// Seconds
	{
		"* * * * * * *",
		"2006-01-02 15:04:05",
		[]crontimes{
			{"2013-01-01 00:00:00", "2013-01-01 00:00:01"},
			{"2013-01-01 00:00:59", "2013-01-01 00:01:00"},
			{"2013-01-01 00:59:59", "2013-01-01 01:00:00"},
			{"2013-01-01 23:59:59", "2013-01-02 00:00:00"},
			{"2013-02-28 23:59:59", "2013-03-01 00:00:00"},
			{"2016-02-28 23:59:59", "2016-02-29 00:00:00"},
			{"2012-12-31 23:59:59", "2013-01-01 00:00:00"},
		},
	},

	// every 5 seconds
	{
		"*/5 * * * * * *",
		"2006-01-02 15:04:05",
		[]crontimes{
			{"2013-01-01 00:00:00", "2013-01-01 00:00:05"},
			{"2013-01-01 00:00:59", "2013-01-01 00:01:00"},
			{"2013-01-01 00:59:59", "2013-01-01 01:00:00"},
		},
	},

	// Minutes
	{
		"* * * * *",
		"2006-01-02 15:04:05",
		[]crontimes{
			{"2013-01-01 00:00:00", "2013-01-01 00:01:00"},
			{"2013-01-01 00:00:59", "2013-01-01 00:01:00"},
			{"2013-01-01 00:59:00", "2013-01-01 01:00:00"},
			{"2013-01-01 23:59:00", "2013-01-02 00:00:00"},
		},
	},

	// Minutes with interval
	{
		"17-43/5 * * * *",
		"2006-01-02 15:04:05",
		[]crontimes{
			{"2013-01-01 00:00:00", "2013-01-01 00:17:00"},
			{"2013-01-01 00:16:59", "2013-01-01 00:17:00"},
			{"2013-01-01 00:30:00", "2013-01-01 00:32:00"},
			{"2013-01-01 00:50:00", "2013-01-01 01:17:00"},
		},
	},

	// Minutes interval, list
	{
		"15-30/4,55 * * * *",
		"2006-01-02 15:04:05",
		[]crontimes{
			{"2013-01-01 00:00:00", "2013-01-01 00:15:00"},
			{"2013-01-01 00:16:00", "2013-01-01 00:19:00"},
			{"2013-01-01 00:30:00", "2013-01-01 00:55:00"},
			{"2012-12-31 23:54:00", "2012-12-31 23:55:00"},
		},
	},

	// Days of week
	{
		"0 0 * * MON",
		"Mon 2006-01-02 15:04",
		[]crontimes{
			{"2013-01-01 00:00:00", "Mon 2013-01-07 00:00"},
			{"2013-01-28 00:00:00", "Mon 2013-02-04 00:00"},
			{"2013-12-30 00:30:00", "Mon 2014-01-06 00:00"},
		},
	},
	{
		"0 0 * * friday",
		"Mon 2006-01-02 15:04",
		[]crontimes{
			{"2013-01-01 00:00:00", "Fri 2013-01-04 00:00"},
			{"2013-01-28 00:00:00", "Fri 2013-02-01 00:00"},
		},
	},
	{
		"0 0 * * 6,7",
		"Mon 2006-01-02 15:04",
		[]crontimes{
			{"2013-01-01 00:00:00", "Sat 2013-01-05 00:00"},
			{"2013-01-28 00:00:00", "Sat 2013-02-02 00:00"},
		},
	},

	// wraparound range: Sat, Sun, Mon (Tue-Fri excluded)
	{
		"0 0 12 ? * sat-mon",
		"Mon 2006-01-02 15:04",
		[]crontimes{
			{"2013-01-01 00:00:00", "Sat 2013-01-05 12:00"},
			{"2013-01-05 13:00:00", "Sun 2013-01-06 12:00"},
			{"2013-01-07 13:00:00", "Sat 2013-01-12 12:00"},
		},
	},

	// Specific weekday occurrence
	{
		"0 0 * * 6#5",
		"Mon 2006-01-02 15:04",
		[]crontimes{
			{"2013-09-02 00:00:00", "Sat 2013-11-30 00:00"},
		},
	},

	// Work day of month, interior
	{
		"0 0 14W * *",
		"Mon 2006-01-02 15:04",
		[]crontimes{
			{"2013-03-31 00:00:00", "Mon 2013-04-15 00:00"},
			{"2013-08-31 00:00:00", "Fri 2013-09-13 00:00"},
		},
	},

	// Work day of month, at the month boundary
	{
		"0 0 30W * *",
		"Mon 2006-01-02 15:04",
		[]crontimes{
			{"2013-03-02 00:00:00", "Fri 2013-03-29 00:00"},
			{"2013-06-02 00:00:00", "Fri 2013-06-28 00:00"},
			{"2013-09-02 00:00:00", "Mon 2013-09-30 00:00"},
			{"2013-11-02 00:00:00", "Fri 2013-11-29 00:00"},
		},
	},

	// Last day of month
	{
		"0 0 L * *",
		"Mon 2006-01-02 15:04",
		[]crontimes{
			{"2013-09-02 00:00:00", "Mon 2013-09-30 00:00"},
			{"2014-01-01 00:00:00", "Fri 2014-01-31 00:00"},
			{"2014-02-01 00:00:00", "Fri 2014-02-28 00:00"},
			{"2016-02-15 00:00:00", "Mon 2016-02-29 00:00"},
		},
	},

	// Last work day of month
	{
		"0 0 LW * *",
		"Mon 2006-01-02 15:04",
		[]crontimes{
			{"2013-09-02 00:00:00", "Mon 2013-09-30 00:00"},
			{"2013-11-02 00:00:00", "Fri 2013-11-29 00:00"},
			{"2014-08-15 00:00:00", "Fri 2014-08-29 00:00"},
		},
	},

	{
		"0 30 08 15 Jul ?",
		"Mon 2006-01-02 15:04",
		[]crontimes{
			{"2012-07-16 08:29:59", "Mon 2013-07-15 08:30"},
		},
	},
	{
		"0 * * */10 * Sun",
		"Mon 2006-01-02 15:04",
		[]crontimes{
			{"2012-07-14 23:59:59", "Sun 2012-07-15 00:00"},
		},
	},
}

func TestNext(t *testing.T) {
	for _, test := range crontests {
		for _, times := range test.times {
			from, _ := time.Parse("2006-01-02 15:04:05", times.from)
			expr := MustCompile(test.expr)
			next := expr.Next(from)
			nextstr := next.Format(test.layout)
			assert.Equal(t, times.next, nextstr,
				fmt.Sprintf(`("%s").Next("%s")`, test.expr, times.from))
		}
	}
}

func TestNextYearBounds(t *testing.T) {
	from, _ := time.Parse("2006-01-02", "2013-08-31")

	next := MustCompile("0 * * * * * 1980").Next(from)
	assert.True(t, next.IsZero(), `("0 * * * * * 1980").Next("2013-08-31")`)

	next = MustCompile("0 * * * * * 2050").Next(from)
	assert.False(t, next.IsZero(), `("0 * * * * * 2050").Next("2013-08-31")`)

	next = MustCompile("0 * * * * * 2099").Next(time.Time{})
	assert.False(t, next.IsZero(), `("0 * * * * * 2099").Next(time.Time{})`)
}

func TestNextMonthAdvanceFromHighDayOfMonth(t *testing.T) {
	from := time.Date(2021, time.March, 31, 0, 0, 0, 0, time.UTC)

	next := MustCompile("0 0 1 4 *").Next(from)
	assert.Equal(t, time.Date(2021, time.April, 1, 0, 0, 0, 0, time.UTC), next)
}

func TestNextAliases(t *testing.T) {
	from, _ := time.Parse("2006-01-02 15:04:05", "2013-01-01 00:00:01")

	assert.Equal(t, MustCompile("0 0 0 1 1 ?").Next(from), MustCompile("@yearly").Next(from))
	assert.Equal(t, MustCompile("0 0 0 1 * ?").Next(from), MustCompile("@monthly").Next(from))
	assert.Equal(t, MustCompile("0 0 0 * * 0").Next(from), MustCompile("@weekly").Next(from))
	assert.Equal(t, MustCompile("0 0 0 * * ?").Next(from), MustCompile("@daily").Next(from))
	assert.Equal(t, MustCompile("0 0 * * * ?").Next(from), MustCompile("@hourly").Next(from))
}

var benchmarkExpressions = []string{
	"0 * * * * *",
	"@hourly",
	"@weekly",
	"@yearly",
	"30 3 15W 3/3 *",
	"30 0 0 1-31/5 Oct-Dec *",
	"0 0 0 * Feb-Nov/2 thu#3",
}

var benchmarkExpressionsLen = len(benchmarkExpressions)

func BenchmarkCompile(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = MustCompile(benchmarkExpressions[i%benchmarkExpressionsLen])
	}
}

func BenchmarkNext(b *testing.B) {
	exprs := make([]Expression, benchmarkExpressionsLen)
	for i := 0; i < benchmarkExpressionsLen; i++ {
		exprs[i] = MustCompile(benchmarkExpressions[i])
	}
	from := time.Now()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		expr := exprs[i%benchmarkExpressionsLen]
		next := expr.Next(from)
		next = expr.Next(next)
		next = expr.Next(next)
	}
}
