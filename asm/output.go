// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"fmt"
	"sort"
	"strings"
)

// Output holds the rendered contents of the three files spec.md §6
// describes. Ent and Ext are empty when there is nothing to report,
// matching "omitted if no entries"/"omitted if no extern usages".
type Output struct {
	Object string
	Ent    string
	Ext    string
}

// buildOutput renders the final memory image, symbol table and extern
// usage list into the object/entries/externals file bodies.
func (u *unit) buildOutput() Output {
	return Output{
		Object: u.renderObject(),
		Ent:    u.renderEntries(),
		Ext:    u.renderExterns(),
	}
}

// renderObject renders the .ob body: a header line, then one line per
// word in address order (instruction region first, then data).
func (u *unit) renderObject() string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %d %d\n", len(u.code), len(u.data))

	addr := baseAddress
	for _, w := range u.code {
		fmt.Fprintf(&b, "%04d %05o\n", addr, w)
		addr++
	}
	for _, w := range u.data {
		fmt.Fprintf(&b, "%04d %05o\n", addr, w)
		addr++
	}
	return b.String()
}

// renderEntries renders the .ent body: one "NAME AAAA" line per entry
// symbol, sorted by address to give the output a stable, reviewable
// order (the symbol table itself is unordered).
func (u *unit) renderEntries() string {
	entries := make([]*Symbol, 0)
	for _, sym := range u.symbols.all() {
		if sym.IsEntry {
			entries = append(entries, sym)
		}
	}
	if len(entries) == 0 {
		return ""
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Address != entries[j].Address {
			return entries[i].Address < entries[j].Address
		}
		return entries[i].Name < entries[j].Name
	})

	var b strings.Builder
	for _, sym := range entries {
		fmt.Fprintf(&b, "%s %04d\n", sym.Name, sym.Address)
	}
	return b.String()
}

// renderExterns renders the .ext body: one "NAME AAAA" line per usage
// site, in the order the second pass encountered them.
func (u *unit) renderExterns() string {
	if len(u.externUses) == 0 {
		return ""
	}
	var b strings.Builder
	for _, use := range u.externUses {
		fmt.Fprintf(&b, "%s %04d\n", use.Name, use.Address)
	}
	return b.String()
}
