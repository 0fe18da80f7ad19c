// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"strconv"
	"strings"

	"github.com/beevik/mmn14/internal/diag"
)

// unit holds the mutable state threaded through one translation unit's
// pipeline: the macro-expanded source goes in, and a memory image,
// symbol table, fixup list and extern-use list come out. This is the
// explicit value the teacher's design notes call for in place of
// global mutable IC/DC/memory/symbol-array state (asm.go's assembler
// struct plays the same role for 6502 expressions).
type unit struct {
	file    string
	journal *diag.Journal
	tracer  *diag.Tracer
	symbols *symtab
	macros  *macroTable

	code []Word
	data []Word

	fixups     []Fixup
	externUses []ExternUse
}

func newUnit(file string, j *diag.Journal, tr *diag.Tracer, macros *macroTable) *unit {
	return &unit{
		file:    file,
		journal: j,
		tracer:  tr,
		symbols: newSymtab(),
		macros:  macros,
	}
}

func (u *unit) ic() int { return len(u.code) }
func (u *unit) dc() int { return len(u.data) }

// runFirstPass walks the macro-expanded source, defining labels and
// laying out instructions and data. Per spec.md §4.7.
func (u *unit) runFirstPass(lines []expandedLine) {
	u.tracer.Section("first pass")
	for _, l := range lines {
		u.tracer.LogLine(l.line, l.text, "first pass")
		u.firstPassLine(l.line, l.text)
	}

	u.symbols.relocateData(u.ic())

	for _, name := range u.symbols.resolvePendingEntries() {
		u.journal.Record(diag.UndefinedLabel, u.file, 0, "entry '%s' has no definition", name)
	}
}

func (u *unit) firstPassLine(lineNo int, text string) {
	trimmed := trimSpace(text)
	if trimmed == "" || trimmed[0] == ';' {
		return
	}

	tok, rest := firstToken(trimmed)

	label := ""
	if strings.HasSuffix(tok, ":") {
		label = strings.TrimSuffix(tok, ":")
		tok, rest = firstToken(rest)
	}

	if label != "" {
		if kind, bad := u.checkLabelName(label); bad {
			u.journal.Record(kind, u.file, lineNo, "invalid label '%s'", label)
			return
		}
	}

	switch tok {
	case ".data":
		u.parseData(lineNo, label, rest)
	case ".string":
		u.parseString(lineNo, label, rest)
	case ".entry":
		u.parseEntry(lineNo, rest)
	case ".extern":
		u.parseExtern(lineNo, rest)
	case "":
		u.journal.Record(diag.InvalidInstruction, u.file, lineNo, "missing instruction or directive")
	default:
		u.parseInstruction(lineNo, label, tok, rest)
	}
}

// checkLabelName validates a label token, returning the diag.Kind to
// report if it's unusable as a label at all (bad syntax, a reserved
// word, or already in use as a macro name).
func (u *unit) checkLabelName(name string) (diag.Kind, bool) {
	if !isValidLabelSyntax(name) {
		return diag.InvalidLabel, true
	}
	if isReservedWord(name) {
		return diag.ReservedWordAsLabel, true
	}
	if _, ok := u.macros.lookup(name); ok {
		return diag.SymbolConflict, true
	}
	return 0, false
}

func (u *unit) defineLabel(lineNo int, name string, address int, kind SymbolKind) {
	if name == "" {
		return
	}
	if err := u.symbols.define(name, address, kind); err != nil {
		u.journal.Record(symtabErrorKind(err), u.file, lineNo, "%s", err.Error())
	}
}

func (u *unit) parseData(lineNo int, label, rest string) {
	fields := splitOperands(rest)
	if len(fields) == 1 && fields[0] == "" {
		u.journal.Record(diag.InvalidOperand, u.file, lineNo, ".data requires at least one value")
		return
	}

	values := make([]int, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			u.journal.Record(diag.InvalidOperand, u.file, lineNo, ".data has an empty value (stray comma)")
			return
		}
		v, ok := parseSignedDecimal(f)
		if !ok {
			u.journal.Record(diag.InvalidOperand, u.file, lineNo, "'%s' is not a valid integer", f)
			return
		}
		if v < dataMin || v > dataMax {
			u.journal.Record(diag.InvalidOperand, u.file, lineNo, "%d is out of range for a data word", v)
			return
		}
		values = append(values, v)
	}

	u.defineLabel(lineNo, label, baseAddress+u.dc(), Data)
	for _, v := range values {
		u.data = append(u.data, encodeData(v))
	}
}

func (u *unit) parseString(lineNo int, label, rest string) {
	rest = trimSpace(rest)
	if len(rest) < 1 || rest[0] != '"' {
		u.journal.Record(diag.InvalidOperand, u.file, lineNo, ".string requires a quoted string")
		return
	}
	end := strings.IndexByte(rest[1:], '"')
	if end < 0 {
		u.journal.Record(diag.InvalidOperand, u.file, lineNo, ".string is missing its closing quote")
		return
	}
	content := rest[1 : 1+end]
	if trimSpace(rest[1+end+1:]) != "" {
		u.journal.Record(diag.InvalidOperand, u.file, lineNo, "unexpected text after .string literal")
		return
	}
	for i := 0; i < len(content); i++ {
		if content[i] < 0x20 || content[i] > 0x7e {
			u.journal.Record(diag.InvalidOperand, u.file, lineNo, ".string contains a non-printable character")
			return
		}
	}

	u.defineLabel(lineNo, label, baseAddress+u.dc(), Data)
	for i := 0; i < len(content); i++ {
		u.data = append(u.data, encodeChar(content[i]))
	}
	u.data = append(u.data, 0)
}

func (u *unit) parseEntry(lineNo int, rest string) {
	name := trimSpace(rest)
	if !isValidLabelSyntax(name) {
		u.journal.Record(diag.InvalidLabel, u.file, lineNo, ".entry requires a valid label name")
		return
	}
	if err := u.symbols.markEntry(name); err != nil {
		u.journal.Record(symtabErrorKind(err), u.file, lineNo, "%s", err.Error())
	}
}

func (u *unit) parseExtern(lineNo int, rest string) {
	name := trimSpace(rest)
	if !isValidLabelSyntax(name) || isReservedWord(name) {
		u.journal.Record(diag.InvalidLabel, u.file, lineNo, ".extern requires a valid label name")
		return
	}
	if err := u.symbols.define(name, 0, ExternalSymbol); err != nil {
		u.journal.Record(symtabErrorKind(err), u.file, lineNo, "%s", err.Error())
	}
}

func (u *unit) parseInstruction(lineNo int, label, mnemonic, rest string) {
	addr := baseAddress + u.ic()

	op, ok := lookupOpcode(mnemonic)
	if !ok {
		u.journal.Record(diag.InvalidInstruction, u.file, lineNo, "'%s' is not a known instruction or directive", mnemonic)
		return
	}
	info := opcodeTable[op]

	fields := splitOperands(rest)
	if trimSpace(rest) == "" {
		fields = nil
	}
	if len(fields) > 2 {
		u.journal.Record(diag.InvalidInstruction, u.file, lineNo, "'%s' takes at most 2 operands", mnemonic)
		return
	}
	if len(fields) != info.operandCount() {
		u.journal.Record(diag.InvalidInstruction, u.file, lineNo, "'%s' expects %d operand(s), got %d", mnemonic, info.operandCount(), len(fields))
		return
	}

	var src, dst Operand
	src.Mode, dst.Mode = None, None

	switch len(fields) {
	case 2:
		s, err := parseOperand(fields[0])
		if err != nil {
			u.journal.Record(diag.InvalidOperand, u.file, lineNo, "invalid source operand '%s'", fields[0])
			return
		}
		d, err := parseOperand(fields[1])
		if err != nil {
			u.journal.Record(diag.InvalidOperand, u.file, lineNo, "invalid destination operand '%s'", fields[1])
			return
		}
		src, dst = s, d
	case 1:
		// A mnemonic that expects a single operand classifies it as
		// the destination (spec.md §4.5).
		d, err := parseOperand(fields[0])
		if err != nil {
			u.journal.Record(diag.InvalidOperand, u.file, lineNo, "invalid operand '%s'", fields[0])
			return
		}
		dst = d
	}

	if src.Mode != None && !info.allowsMode(src.Mode, true) {
		u.journal.Record(diag.InvalidOperand, u.file, lineNo, "'%s' does not allow %s addressing for its source", mnemonic, src.Mode)
		return
	}
	if dst.Mode != None && !info.allowsMode(dst.Mode, false) {
		u.journal.Record(diag.InvalidOperand, u.file, lineNo, "'%s' does not allow %s addressing for its destination", mnemonic, dst.Mode)
		return
	}

	u.defineLabel(lineNo, label, addr, Code)
	u.emitInstruction(op, src, dst)
}

// emitInstruction appends the head word and operand word(s) for one
// instruction, per spec.md §4.6.
func (u *unit) emitInstruction(op Opcode, src, dst Operand) {
	u.code = append(u.code, encodeHead(op, src.Mode, dst.Mode))

	if isRegisterLike(src.Mode) && isRegisterLike(dst.Mode) {
		u.code = append(u.code, encodeRegisterPair(src.Value, dst.Value))
		return
	}

	if src.Mode != None {
		u.emitOperandWord(src, true)
	}
	if dst.Mode != None {
		u.emitOperandWord(dst, false)
	}
}

func (u *unit) emitOperandWord(o Operand, isSrc bool) {
	switch o.Mode {
	case Immediate:
		u.code = append(u.code, encodeImmediate(o.Value))
	case Direct:
		u.fixups = append(u.fixups, Fixup{Address: baseAddress + u.ic(), Label: o.Label})
		u.code = append(u.code, encodeDirectPlaceholder())
	case Register, Index:
		if isSrc {
			u.code = append(u.code, encodeRegisterSrc(o.Value))
		} else {
			u.code = append(u.code, encodeRegisterDst(o.Value))
		}
	}
}

// parseSignedDecimal parses an optionally-signed decimal integer,
// rejecting anything that isn't one (stray commas produce empty
// fields, rejected by the caller before this is reached).
func parseSignedDecimal(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	i := 0
	if s[0] == '+' || s[0] == '-' {
		i = 1
	}
	if i == len(s) {
		return 0, false
	}
	for ; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, false
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
