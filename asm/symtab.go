// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"fmt"

	"github.com/beevik/mmn14/internal/diag"
)

// symtabError carries the diag.Kind a symbol-table conflict should be
// reported under, so the table itself decides the classification
// instead of every caller re-deriving it.
type symtabError struct {
	kind diag.Kind
	msg  string
}

func (e *symtabError) Error() string { return e.msg }

// symtab is the symbol table: name -> {address, kind, entry-flag}. A
// name appears at most once.
type symtab struct {
	symbols           map[string]*Symbol
	pendingEntry      map[string]bool // mark_entry queued before the name was defined
	pendingEntryOrder []string        // names in pendingEntry, in the order markEntry queued them
}

func newSymtab() *symtab {
	return &symtab{
		symbols:      make(map[string]*Symbol),
		pendingEntry: make(map[string]bool),
	}
}

// define adds a symbol, failing if a conflicting local definition
// already exists. Redefining the same name with identical attributes
// (a repeated ".extern" of the same symbol) is a silent no-op.
func (t *symtab) define(name string, address int, kind SymbolKind) error {
	if existing, ok := t.symbols[name]; ok {
		if existing.Kind == kind && existing.Address == address {
			return nil
		}
		switch {
		case kind == ExternalSymbol && existing.IsEntry:
			return &symtabError{diag.EntryExternConflict, fmt.Sprintf("'%s' is marked entry and cannot also be external", name)}
		case kind == ExternalSymbol || existing.Kind == ExternalSymbol:
			return &symtabError{diag.SymbolConflict, fmt.Sprintf("'%s' is already defined as %s", name, existing.Kind)}
		default:
			return &symtabError{diag.DuplicateLabel, fmt.Sprintf("'%s' is already defined as %s", name, existing.Kind)}
		}
	}
	sym := &Symbol{Name: name, Address: address, Kind: kind}
	if t.pendingEntry[name] {
		if kind == ExternalSymbol {
			return &symtabError{diag.EntryExternConflict, fmt.Sprintf("'%s' cannot be both entry and external", name)}
		}
		sym.IsEntry = true
		delete(t.pendingEntry, name)
	}
	t.symbols[name] = sym
	return nil
}

// markEntry marks name as an entry. If name isn't defined yet, the mark
// is queued and resolved by resolvePendingEntries at the end of pass 1.
func (t *symtab) markEntry(name string) error {
	if sym, ok := t.symbols[name]; ok {
		if sym.Kind == ExternalSymbol {
			return &symtabError{diag.EntryExternConflict, fmt.Sprintf("'%s' cannot be both entry and external", name)}
		}
		sym.IsEntry = true
		return nil
	}
	if !t.pendingEntry[name] {
		t.pendingEntry[name] = true
		t.pendingEntryOrder = append(t.pendingEntryOrder, name)
	}
	return nil
}

// symtabErrorKind extracts the diag.Kind a define/markEntry error
// should be reported under.
func symtabErrorKind(err error) diag.Kind {
	if se, ok := err.(*symtabError); ok {
		return se.kind
	}
	return diag.SymbolConflict
}

// lookup returns the entry for name, or nil if it isn't defined.
func (t *symtab) lookup(name string) *Symbol {
	return t.symbols[name]
}

// resolvePendingEntries resolves every queued ".entry" mark against the
// final symbol table, returning the names that were never defined, in
// the order their ".entry" directives were encountered in the source
// (spec.md §5: diagnostics are reported in source-encounter order, so
// this must not range over the pendingEntry map directly).
func (t *symtab) resolvePendingEntries() []string {
	var undefined []string
	for _, name := range t.pendingEntryOrder {
		if sym, ok := t.symbols[name]; ok {
			sym.IsEntry = true
		} else {
			undefined = append(undefined, name)
		}
	}
	return undefined
}

// relocateData adds ic (the translation unit's final instruction word
// count) to the address of every Data-kind symbol. Data symbols were
// defined with address baseAddress+dc at definition time; after this
// call their address is baseAddress+dc+ic, placing the data region
// immediately after the instruction region in the final image.
func (t *symtab) relocateData(ic int) {
	for _, sym := range t.symbols {
		if sym.Kind == Data {
			sym.Address += ic
		}
	}
}

// all returns every symbol in the table, in no particular order.
func (t *symtab) all() []*Symbol {
	out := make([]*Symbol, 0, len(t.symbols))
	for _, sym := range t.symbols {
		out = append(out, sym)
	}
	return out
}
