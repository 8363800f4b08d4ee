// Copyright (c) 2019,CAO HONGJU. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cronspec",
	Short: "cronspec - compile and evaluate extended cron expressions",
	Long: `cronspec compiles extended unix-style cron expressions into bitmasks
and evaluates their next activation times.

Supports the standard 5/6/7-field grammar plus the extended day-of-month
and day-of-week syntax: L, LW, nW, wL, w#n, the ? sentinel and wrap-around
ranges (e.g. sat-mon).`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetOutput redirects the root command's stdout/stderr.
func SetOutput(out, err io.Writer) {
	rootCmd.SetOut(out)
	rootCmd.SetErr(err)
}
