// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

// encodeHead builds the instruction head word: opcode in bits 14-11, a
// one-hot source-method bitmap in bits 10-7, a one-hot destination-
// method bitmap in bits 6-3, and Absolute ARE in bits 2-0.
func encodeHead(op Opcode, src, dst Mode) Word {
	var srcBits, dstBits Word
	if src != None {
		srcBits = 1 << uint(src)
	}
	if dst != None {
		dstBits = 1 << uint(dst)
	}
	return Word(op)<<11 | srcBits<<7 | dstBits<<3 | Word(Absolute)
}

// encodeImmediate builds an immediate operand word: the two's-
// complement low 12 bits of v, followed by Absolute ARE.
func encodeImmediate(v int) Word {
	return (Word(v) & 0xFFF) << 3 | Word(Absolute)
}

// encodeDirectPlaceholder builds the zeroed placeholder a pass-1 Direct
// operand word starts as. ARE is preset to Relocatable, matching
// spec.md §4.6, so that an un-fixed-up word would still satisfy the ARE
// exclusivity property even if pass 2 were skipped; the actual label
// spelling lives in the accompanying Fixup record rather than being
// smuggled through the bits (see the design notes on the string-table
// index alternative).
func encodeDirectPlaceholder() Word {
	return Word(Relocatable)
}

// encodeDirectInternal builds the final Direct operand word for a
// locally defined symbol at the given address.
func encodeDirectInternal(address int) Word {
	return (Word(address) & 0xFFF) << 3 | Word(Relocatable)
}

// encodeDirectExternal builds the final Direct operand word for a
// symbol resolved to an external declaration: zero payload, External
// ARE.
func encodeDirectExternal() Word {
	return Word(External)
}

// encodeRegisterPair builds the single combined word emitted when both
// operands are Register and/or Index.
func encodeRegisterPair(srcReg, dstReg int) Word {
	return Word(srcReg&0x7)<<6 | Word(dstReg&0x7)<<3 | Word(Absolute)
}

// encodeRegisterSrc builds the operand word for a lone source-side
// Register/Index operand (no paired destination register).
func encodeRegisterSrc(reg int) Word {
	return Word(reg&0x7)<<6 | Word(Absolute)
}

// encodeRegisterDst builds the operand word for a lone destination-side
// Register/Index operand (no paired source register).
func encodeRegisterDst(reg int) Word {
	return Word(reg&0x7)<<3 | Word(Absolute)
}

// encodeData builds a .data directive's 15-bit two's-complement word.
// Unlike operand words, data words carry no ARE tag.
func encodeData(v int) Word {
	return Word(v) & wordMask
}

// encodeChar builds a .string directive character word: the low 7 bits
// of c.
func encodeChar(c byte) Word {
	return Word(c) & 0x7F
}

// are extracts the low 3 ARE bits from a word.
func are(w Word) ARE {
	return ARE(w & 0x7)
}

// isRegisterLike reports whether a mode occupies the combined
// register/index operand word path.
func isRegisterLike(m Mode) bool {
	return m == Register || m == Index
}
