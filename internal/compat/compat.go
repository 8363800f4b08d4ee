// Copyright (c) 2019,CAO HONGJU. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package compat cross-checks this module's Next against robfig/cron's
// Next for the plain 5/6-field subset both dialects understand. It does
// not attempt to cross-check the extended L/W/# syntax robfig/cron has
// no notion of.
package compat

import (
	"fmt"
	"time"

	"github.com/caohongju/cronspec/cron"
	robfigcron "github.com/robfig/cron/v3"
)

var standardParser = robfigcron.NewParser(
	robfigcron.SecondOptional | robfigcron.Minute | robfigcron.Hour |
		robfigcron.Dom | robfigcron.Month | robfigcron.Dow,
)

// Divergence describes the first point at which two schedules disagreed.
type Divergence struct {
	From time.Time
	Want time.Time
	Got  time.Time
}

func (d *Divergence) Error() string {
	return fmt.Sprintf("next(%s): robfig/cron got %s, cronspec got %s",
		d.From.Format(time.RFC3339), d.Want.Format(time.RFC3339), d.Got.Format(time.RFC3339))
}

// Check parses spec with both this module's compiler and robfig/cron's
// standard parser, then walks iterations firings forward from start and
// reports the first disagreement, if any. spec must stay within the
// plain 5/6-field vocabulary both parsers accept: no L, W, # or ?.
func Check(spec string, start time.Time, iterations int) error {
	ours, err := cron.Compile(spec)
	if err != nil {
		return fmt.Errorf("cronspec: %w", err)
	}

	theirs, err := standardParser.Parse(spec)
	if err != nil {
		return fmt.Errorf("robfig/cron: %w", err)
	}

	cur := start
	for i := 0; i < iterations; i++ {
		want := theirs.Next(cur)
		got := ours.Next(cur)
		if !want.Equal(got) {
			return &Divergence{From: cur, Want: want, Got: got}
		}
		cur = want
	}
	return nil
}
