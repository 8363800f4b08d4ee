// Copyright (c) 2019,CAO HONGJU. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cron

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// InvalidSpec is returned when the input to Compile is empty or
// consists only of whitespace.
type InvalidSpec struct{}

func (e *InvalidSpec) Error() string { return "cron: empty expression" }

// MissingFields is returned when the input splits into fewer than five
// or more than seven tokens.
type MissingFields struct {
	Count int
}

func (e *MissingFields) Error() string {
	return fmt.Sprintf("cron: missing field(s): got %d, want 5, 6 or 7", e.Count)
}

// InvalidFieldSyntax is returned when a single field token cannot be
// parsed under that field's grammar. Field names the failing field
// ("second", "minute", "hour", "day of month", "month", "day of week",
// "year"); Token is the offending token.
type InvalidFieldSyntax struct {
	Field string
	Token string
}

func (e *InvalidFieldSyntax) Error() string {
	return fmt.Sprintf("cron: syntax error in %s field: %q", e.Field, e.Token)
}

// UnknownAlias is returned when an `@`-prefixed expression doesn't match
// any of the recognized shorthand names.
type UnknownAlias struct {
	Name string
}

func (e *UnknownAlias) Error() string {
	return fmt.Sprintf("cron: unrecognized alias: %q", e.Name)
}

// newCompileErrors aggregates every validation failure gathered while
// compiling an expression's fields into a single error, the way
// hashicorp/go-multierror is used elsewhere in this codebase's pack to
// report every bad input in one pass instead of stopping at the first.
// Compilation never returns a partial Expression alongside this error.
func newCompileErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	var merr *multierror.Error
	for _, e := range errs {
		merr = multierror.Append(merr, e)
	}
	return merr.ErrorOrNil()
}
