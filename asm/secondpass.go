// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "github.com/beevik/mmn14/internal/diag"

// runSecondPass resolves every fixup recorded by the first pass,
// assigns final ARE bits, and records extern usage sites. Per
// spec.md §4.8.
//
// Rather than re-scanning the whole instruction region and detecting
// unresolved placeholders by inspecting their ARE bits (the original
// string-table-index design spec.md's design notes call out as a
// "backdoor"), this walks the Fixup list built during the first pass
// directly: each fixup already names its word's address and the label
// it refers to, in first-pass (source) order, which is exactly the
// forward-scan order spec.md §5 requires of the .ext output.
func (u *unit) runSecondPass() {
	u.tracer.Section("second pass")
	for _, fx := range u.fixups {
		sym := u.symbols.lookup(fx.Label)
		switch {
		case sym == nil:
			u.journal.Record(diag.UndefinedLabel, u.file, 0, "undefined label '%s'", fx.Label)
		case sym.Kind == ExternalSymbol:
			u.setCodeWord(fx.Address, encodeDirectExternal())
			u.externUses = append(u.externUses, ExternUse{Name: fx.Label, Address: fx.Address})
		default:
			u.setCodeWord(fx.Address, encodeDirectInternal(sym.Address))
		}
	}
}

// setCodeWord overwrites the instruction-region word at the given
// absolute address.
func (u *unit) setCodeWord(address int, w Word) {
	u.code[address-baseAddress] = w
}
