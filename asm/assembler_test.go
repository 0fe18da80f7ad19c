// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"fmt"
	"testing"

	"github.com/beevik/mmn14/internal/diag"
	"github.com/stretchr/testify/require"
)

func objectLine(addr int, w Word) string {
	return fmt.Sprintf("%04d %05o\n", addr, w)
}

// TestAssembleMinimalProgram covers a mov with an immediate source and a
// register destination, followed by stop.
func TestAssembleMinimalProgram(t *testing.T) {
	src := "MAIN: mov #3, r2\n      stop\n"
	r := Assemble("t.as", src)
	require.False(t, r.Journal.Any())
	require.Empty(t, r.Output.Ent)
	require.Empty(t, r.Output.Ext)

	w1 := encodeHead(opMov, Immediate, Register)
	w2 := encodeImmediate(3)
	w3 := encodeRegisterDst(2)
	w4 := encodeHead(opStop, None, None)

	expected := fmt.Sprintf("  %d %d\n", 4, 0) +
		objectLine(100, w1) + objectLine(101, w2) + objectLine(102, w3) + objectLine(103, w4)
	require.Equal(t, expected, r.Output.Object)
}

// TestAssembleDataAndLabelReference covers a Direct operand referencing a
// label defined later, in the data region.
func TestAssembleDataAndLabelReference(t *testing.T) {
	src := "      mov X, r1\n      stop\nX:    .data 7, -1\n"
	r := Assemble("t.as", src)
	require.False(t, r.Journal.Any())
	require.Empty(t, r.Output.Ent)
	require.Empty(t, r.Output.Ext)

	xAddr := 104 // baseAddress + dc(0) + final ic(4)
	w1 := encodeHead(opMov, Direct, Register)
	w2 := encodeDirectInternal(xAddr)
	w3 := encodeRegisterDst(1)
	w4 := encodeHead(opStop, None, None)
	d1 := encodeData(7)
	d2 := encodeData(-1)

	expected := fmt.Sprintf("  %d %d\n", 4, 2) +
		objectLine(100, w1) + objectLine(101, w2) + objectLine(102, w3) + objectLine(103, w4) +
		objectLine(104, d1) + objectLine(105, d2)
	require.Equal(t, expected, r.Output.Object)
}

// TestAssembleExtern covers a jmp to an externally declared label: the
// operand word is resolved to External with a zero payload, and the use
// site is recorded in the externals file.
func TestAssembleExtern(t *testing.T) {
	src := "      .extern K\n      jmp K\n      stop\n"
	r := Assemble("t.as", src)
	require.False(t, r.Journal.Any())
	require.Empty(t, r.Output.Ent)
	require.Equal(t, "K 0101\n", r.Output.Ext)

	w1 := encodeHead(opJmp, None, Direct)
	w2 := encodeDirectExternal()
	w3 := encodeHead(opStop, None, None)

	expected := fmt.Sprintf("  %d %d\n", 3, 0) +
		objectLine(100, w1) + objectLine(101, w2) + objectLine(102, w3)
	require.Equal(t, expected, r.Output.Object)
}

// TestAssembleEntry covers a label marked for export via .entry.
func TestAssembleEntry(t *testing.T) {
	src := "      .entry MAIN\nMAIN: stop\n"
	r := Assemble("t.as", src)
	require.False(t, r.Journal.Any())
	require.Empty(t, r.Output.Ext)
	require.Equal(t, "MAIN 0100\n", r.Output.Ent)

	w1 := encodeHead(opStop, None, None)
	expected := fmt.Sprintf("  %d %d\n", 1, 0) + objectLine(100, w1)
	require.Equal(t, expected, r.Output.Object)
}

// TestAssembleRegisterPairing covers two Register operands folding into a
// single combined operand word.
func TestAssembleRegisterPairing(t *testing.T) {
	src := "      mov r3, r5\n      stop\n"
	r := Assemble("t.as", src)
	require.False(t, r.Journal.Any())

	w1 := encodeHead(opMov, Register, Register)
	w2 := encodeRegisterPair(3, 5)
	w3 := encodeHead(opStop, None, None)

	expected := fmt.Sprintf("  %d %d\n", 3, 0) +
		objectLine(100, w1) + objectLine(101, w2) + objectLine(102, w3)
	require.Equal(t, expected, r.Output.Object)
}

// TestAssembleMacroExpansion covers one-shot macro expansion: the body is
// substituted verbatim at each invocation site.
func TestAssembleMacroExpansion(t *testing.T) {
	src := "      macr greet\n      prn #7\n      endmacr\n      greet\n      greet\n      stop\n"
	r := Assemble("t.as", src)
	require.False(t, r.Journal.Any())

	w1 := encodeHead(opPrn, None, Immediate)
	w2 := encodeImmediate(7)
	w5 := encodeHead(opStop, None, None)

	expected := fmt.Sprintf("  %d %d\n", 5, 0) +
		objectLine(100, w1) + objectLine(101, w2) +
		objectLine(102, w1) + objectLine(103, w2) +
		objectLine(104, w5)
	require.Equal(t, expected, r.Output.Object)

	am := AssembledSource("t.as", src)
	require.Equal(t, "      prn #7\n      prn #7\n      stop\n", am)
}

func TestAssembleUndefinedLabelReported(t *testing.T) {
	src := "      mov MISSING, r1\n      stop\n"
	r := Assemble("t.as", src)
	require.True(t, r.Journal.Any())
	require.Equal(t, diag.UndefinedLabel, r.Journal.Entries()[0].Kind)
	require.Empty(t, r.Output.Object)
}

func TestAssembleDataTrailingComma(t *testing.T) {
	src := "X: .data 1,2,\n"
	r := Assemble("t.as", src)
	require.True(t, r.Journal.Any())
	require.Equal(t, diag.InvalidOperand, r.Journal.Entries()[0].Kind)
}

func TestAssembleDataDoubleComma(t *testing.T) {
	src := "X: .data 1,,2\n"
	r := Assemble("t.as", src)
	require.True(t, r.Journal.Any())
	require.Equal(t, diag.InvalidOperand, r.Journal.Entries()[0].Kind)
}

func TestAssembleStringMissingClosingQuote(t *testing.T) {
	src := "X: .string \"hello\n"
	r := Assemble("t.as", src)
	require.True(t, r.Journal.Any())
	require.Equal(t, diag.InvalidOperand, r.Journal.Entries()[0].Kind)
}

func TestAssembleDuplicateLabelStopsOutput(t *testing.T) {
	src := "X: stop\nX: stop\n"
	r := Assemble("t.as", src)
	require.True(t, r.Journal.Any())
	require.Equal(t, diag.DuplicateLabel, r.Journal.Entries()[0].Kind)
	require.Empty(t, r.Output.Object)
}

func TestAssembleMacroNameCannotBeLabel(t *testing.T) {
	src := "      macr greet\n      stop\n      endmacr\ngreet: stop\n"
	r := Assemble("t.as", src)
	require.True(t, r.Journal.Any())
	require.Equal(t, diag.SymbolConflict, r.Journal.Entries()[0].Kind)
}

func TestAssembleReservedWordAsLabel(t *testing.T) {
	src := "mov: stop\n"
	r := Assemble("t.as", src)
	require.True(t, r.Journal.Any())
	require.Equal(t, diag.ReservedWordAsLabel, r.Journal.Entries()[0].Kind)
}
