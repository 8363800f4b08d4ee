// Copyright (c) 2019,CAO HONGJU. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"time"

	"github.com/caohongju/cronspec/cron"
	"github.com/spf13/cobra"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <cron-expression>",
		Short: "Validate a cron expression and warn about schedules that never fire",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			expr, err := cron.Compile(args[0])
			if err != nil {
				fmt.Fprintf(c.OutOrStdout(), "invalid: %v\n", err)
				return nil
			}

			next := expr.Next(time.Now())
			if next.IsZero() {
				fmt.Fprintln(c.OutOrStdout(), "valid, but never fires within the supported year range (1970-2199)")
				return nil
			}

			fmt.Fprintf(c.OutOrStdout(), "valid, next run: %s\n", next.Format("2006-01-02 15:04:05 MST"))
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newCheckCommand())
}
