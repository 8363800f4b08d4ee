// Copyright (c) 2019,CAO HONGJU. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/caohongju/cronspec/cron"
	"github.com/spf13/cobra"
)

func newCompileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compile <cron-expression>",
		Short: "Compile a cron expression and report whether it's valid",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			expr, err := cron.Compile(args[0])
			if err != nil {
				return fmt.Errorf("invalid expression: %w", err)
			}
			fmt.Fprintf(c.OutOrStdout(), "ok: %s\n", expr.String())
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newCompileCommand())
}
