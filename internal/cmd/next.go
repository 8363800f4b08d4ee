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

func newNextCommand() *cobra.Command {
	var count int

	c := &cobra.Command{
		Use:   "next <cron-expression>",
		Short: "Show the next scheduled run times for a cron expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if count < 1 || count > 100 {
				return fmt.Errorf("count must be between 1 and 100")
			}

			expr, err := cron.Compile(args[0])
			if err != nil {
				return fmt.Errorf("invalid expression: %w", err)
			}

			times := expr.NextN(time.Now(), count)
			if len(times) == 0 {
				fmt.Fprintln(c.OutOrStdout(), "no upcoming run within the supported year range")
				return nil
			}
			for i, t := range times {
				fmt.Fprintf(c.OutOrStdout(), "%d. %s\n", i+1, t.Format("2006-01-02 15:04:05 MST"))
			}
			return nil
		},
	}

	c.Flags().IntVarP(&count, "count", "c", 10, "number of runs to show (1-100)")
	return c
}

func init() {
	rootCmd.AddCommand(newNextCommand())
}
