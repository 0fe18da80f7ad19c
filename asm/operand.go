// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"errors"
	"strconv"
)

// errInvalidOperand is returned by parseOperand when the operand string
// has no addressing-mode shape spec.md §4.4 recognizes.
var errInvalidOperand = errors.New("invalid operand")

// parseOperand classifies one trimmed operand string into an Operand,
// per spec.md §4.4.
func parseOperand(s string) (Operand, error) {
	s = trimSpace(s)

	switch {
	case s == "":
		return Operand{Mode: None}, nil

	case s[0] == '#':
		return parseImmediate(s[1:])

	case s[0] == '*':
		reg, ok := parseRegisterName(s[1:])
		if !ok {
			return Operand{}, errInvalidOperand
		}
		return Operand{Mode: Index, Value: reg}, nil

	default:
		if reg, ok := parseRegisterName(s); ok {
			return Operand{Mode: Register, Value: reg}, nil
		}
		if isValidLabelSyntax(s) {
			return Operand{Mode: Direct, Label: s}, nil
		}
		return Operand{}, errInvalidOperand
	}
}

// parseImmediate parses the decimal integer (optionally signed) that
// follows a leading '#', rejecting values that don't fit the signed
// 12-bit field an Immediate operand word carries.
func parseImmediate(s string) (Operand, error) {
	if s == "" {
		return Operand{}, errInvalidOperand
	}
	for i, c := range []byte(s) {
		if c == '+' || c == '-' {
			if i != 0 {
				return Operand{}, errInvalidOperand
			}
			continue
		}
		if !isDigit(c) {
			return Operand{}, errInvalidOperand
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return Operand{}, errInvalidOperand
	}
	if v < immediateMin || v > immediateMax {
		return Operand{}, errInvalidOperand
	}
	return Operand{Mode: Immediate, Value: v}, nil
}

// splitOperands splits a comma-separated operand list into its trimmed
// fields. A leading, trailing, or doubled comma yields an empty field,
// which the caller reports as InvalidOperand (original_source's
// operand_validation.c rejects the same malformed lists).
func splitOperands(s string) []string {
	var fields []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			fields = append(fields, trimSpace(s[start:i]))
			start = i + 1
		}
	}
	fields = append(fields, trimSpace(s[start:]))
	return fields
}
