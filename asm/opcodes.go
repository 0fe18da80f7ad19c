// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "strconv"

// Opcode identifies one of the sixteen machine instructions by its
// position in the opcode table, which doubles as its 4-bit encoded
// value.
type Opcode int

const (
	opMov Opcode = iota
	opCmp
	opAdd
	opSub
	opLea
	opClr
	opNot
	opInc
	opDec
	opJmp
	opBne
	opRed
	opPrn
	opJsr
	opRts
	opStop
	numOpcodes
)

// opcodeInfo is one opcode's dispatch entry: its mnemonic and the
// addressing-mode bitmasks legal for its source and destination
// operands, keyed by bit position == Mode value (Immediate=0, Direct=1,
// Index=2, Register=3). A mask of 0 means "no operand on that side";
// src==0 && dst==0 means the instruction takes no operands at all.
type opcodeInfo struct {
	name string
	src  uint8
	dst  uint8
}

// opcodeTable is keyed by opcode identity rather than compared by
// mnemonic string at every call site.
var opcodeTable = [numOpcodes]opcodeInfo{
	opMov:  {"mov", 0b1111, 0b1110},
	opCmp:  {"cmp", 0b1111, 0b1111},
	opAdd:  {"add", 0b1111, 0b1110},
	opSub:  {"sub", 0b1111, 0b1110},
	opLea:  {"lea", 0b0010, 0b1110},
	opClr:  {"clr", 0b0000, 0b1110},
	opNot:  {"not", 0b0000, 0b1110},
	opInc:  {"inc", 0b0000, 0b1110},
	opDec:  {"dec", 0b0000, 0b1110},
	opJmp:  {"jmp", 0b0000, 0b0110},
	opBne:  {"bne", 0b0000, 0b0110},
	opRed:  {"red", 0b0000, 0b1110},
	opPrn:  {"prn", 0b0000, 0b1111},
	opJsr:  {"jsr", 0b0000, 0b0110},
	opRts:  {"rts", 0b0000, 0b0000},
	opStop: {"stop", 0b0000, 0b0000},
}

var mnemonicToOpcode = func() map[string]Opcode {
	m := make(map[string]Opcode, numOpcodes)
	for i := Opcode(0); i < numOpcodes; i++ {
		m[opcodeTable[i].name] = i
	}
	return m
}()

// lookupOpcode returns the opcode matching a mnemonic, and whether one
// was found.
func lookupOpcode(mnemonic string) (Opcode, bool) {
	op, ok := mnemonicToOpcode[mnemonic]
	return op, ok
}

// allowsMode reports whether the opcode's source (src=true) or
// destination (src=false) operand may use the given addressing mode.
func (info opcodeInfo) allowsMode(mode Mode, src bool) bool {
	mask := info.dst
	if src {
		mask = info.src
	}
	return mask&(1<<uint(mode)) != 0
}

// operandCount returns how many operands the opcode expects: 0, 1 or 2.
// An opcode with a zero source mask and a nonzero destination mask
// expects exactly one operand, which fills the destination slot.
func (info opcodeInfo) operandCount() int {
	switch {
	case info.src == 0 && info.dst == 0:
		return 0
	case info.src == 0:
		return 1
	default:
		return 2
	}
}

// directiveNames is the closed set of directive keywords, reserved the
// same way opcode mnemonics are (original_source/word_check.c treats
// ".data"/".string"/".entry"/".extern" as known words alongside the
// opcode groups, and the label grammar must reject them as label
// spellings).
var directiveNames = map[string]bool{
	".data":   true,
	".string": true,
	".entry":  true,
	".extern": true,
}

// macro keywords. The source material shows both "macro/endmacro" and
// "macr/endmacr" in circulation; this implementation settles on the
// shorter pair, matching original_source/word_check.c.
const (
	macroOpen  = "macr"
	macroClose = "endmacr"
)

// isReservedWord reports whether name may not be used as a label or
// macro name: an opcode mnemonic, a register name (r0-r7), a directive
// keyword, or a macro keyword.
func isReservedWord(name string) bool {
	if _, ok := mnemonicToOpcode[name]; ok {
		return true
	}
	if directiveNames[name] {
		return true
	}
	if name == macroOpen || name == macroClose {
		return true
	}
	if _, ok := parseRegisterName(name); ok {
		return true
	}
	return false
}

// parseRegisterName parses "rN" where N is a single digit 0-7.
func parseRegisterName(s string) (int, bool) {
	if len(s) != 2 || s[0] != 'r' {
		return 0, false
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 0 || n > 7 {
		return 0, false
	}
	return n, true
}
