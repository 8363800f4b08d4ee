// Copyright (c) 2019,CAO HONGJU. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cron

import "strings"

// fieldLexer (FieldLexer in the design) turns one whitespace-delimited
// cron field string into a bitmask by repeatedly applying populate to
// each comma-separated, possibly stepped, possibly wrapped sub-range it
// finds, and falling back to ext for the field-specific extended syntax
// (`?`, `L`, `LW`, `nW`, `wL`, `w#n`) that doesn't fit the numeric
// grammar at all.
type fieldLexer struct {
	desc     fieldDescriptor
	populate func(begin, end, step int)
	ext      func(entry string) (bool, error) // handles tokens outside the numeric grammar
	wrapBase int                              // low end used when a range wraps (a > b); 0 means desc.min
	noWrap   bool                             // true forbids a > b entirely (year field)
}

func (fl *fieldLexer) lowWrapBase() int {
	if fl.wrapBase != 0 {
		return fl.wrapBase
	}
	return fl.desc.min
}

// parse splits field on commas and parses each element.
func (fl *fieldLexer) parse(field string) error {
	for _, entry := range strings.Split(field, ",") {
		if err := fl.parseEntry(entry); err != nil {
			return err
		}
	}
	return nil
}

func (fl *fieldLexer) syntaxError(entry string) error {
	return &InvalidFieldSyntax{Field: fl.desc.name, Token: entry}
}

func (fl *fieldLexer) parseEntry(entry string) error {
	if entry == "*" {
		fl.populate(fl.desc.min, fl.desc.max, 1)
		return nil
	}

	if n := fl.desc.intFromToken(entry); n != -1 {
		if !fl.desc.validate(n) {
			return fl.syntaxError(entry)
		}
		fl.populate(n, n, 1)
		return nil
	}

	if idx := strings.IndexByte(entry, '/'); idx != -1 {
		step, ok := atoiStrict(entry[idx+1:])
		if !ok || step < 1 || step > fl.desc.max-fl.desc.min {
			return fl.syntaxError(entry)
		}
		return fl.parseStepped(entry[:idx], step, entry)
	}

	if strings.ContainsRune(entry, '-') {
		return fl.parseRange(entry, 1, entry)
	}

	if fl.ext != nil {
		if ok, err := fl.ext(entry); ok {
			return err
		}
	}
	return fl.syntaxError(entry)
}

// parseStepped handles the "e/step" grammar where e is "*", a bare value
// (meaning value..max), or an "a-b" range.
func (fl *fieldLexer) parseStepped(base string, step int, whole string) error {
	if base == "*" {
		fl.populate(fl.desc.min, fl.desc.max, step)
		return nil
	}
	if n := fl.desc.intFromToken(base); n != -1 {
		if !fl.desc.validate(n) {
			return fl.syntaxError(whole)
		}
		fl.populate(n, fl.desc.max, step)
		return nil
	}
	if strings.ContainsRune(base, '-') {
		return fl.parseRange(base, step, whole)
	}
	return fl.syntaxError(whole)
}

// parseRange handles "a-b", including wrap-around (a > b) per §4.2.
func (fl *fieldLexer) parseRange(rng string, step int, whole string) error {
	idx := strings.IndexByte(rng, '-')
	if idx <= 0 || idx == len(rng)-1 {
		return fl.syntaxError(whole)
	}
	a := fl.desc.intFromToken(rng[:idx])
	b := fl.desc.intFromToken(rng[idx+1:])
	if a == -1 || b == -1 || !fl.desc.validate(a) || !fl.desc.validate(b) {
		return fl.syntaxError(whole)
	}

	if a <= b {
		fl.populate(a, b, step)
		return nil
	}

	if fl.noWrap {
		return fl.syntaxError(whole)
	}

	fl.populate(a, fl.desc.max, step)
	fl.populate(fl.lowWrapBase(), b, step)
	return nil
}
