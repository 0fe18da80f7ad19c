// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeHead(t *testing.T) {
	w := encodeHead(opMov, Immediate, Register)
	require.Equal(t, Absolute, are(w))
	require.Equal(t, Word(opMov), (w>>11)&0xF)
	require.Equal(t, Word(1<<uint(Immediate)), (w>>7)&0xF)
	require.Equal(t, Word(1<<uint(Register)), (w>>3)&0xF)
}

func TestEncodeHeadNoOperands(t *testing.T) {
	w := encodeHead(opStop, None, None)
	require.Equal(t, Absolute, are(w))
	require.Equal(t, Word(0), (w>>7)&0xF)
	require.Equal(t, Word(0), (w>>3)&0xF)
}

func TestEncodeImmediate(t *testing.T) {
	w := encodeImmediate(3)
	require.Equal(t, Absolute, are(w))
	require.Equal(t, Word(3), (w>>3)&0xFFF)

	w = encodeImmediate(-1)
	require.Equal(t, Word(0xFFF), (w>>3)&0xFFF)
}

func TestEncodeDirectPlaceholderIsRelocatableZero(t *testing.T) {
	w := encodeDirectPlaceholder()
	require.Equal(t, Relocatable, are(w))
	require.Equal(t, Word(0), (w>>3)&0xFFF)
}

func TestEncodeDirectInternal(t *testing.T) {
	w := encodeDirectInternal(103)
	require.Equal(t, Relocatable, are(w))
	require.Equal(t, Word(103), (w>>3)&0xFFF)
}

func TestEncodeDirectExternal(t *testing.T) {
	w := encodeDirectExternal()
	require.Equal(t, External, are(w))
	require.Equal(t, Word(0), (w>>3)&0xFFF)
}

func TestEncodeRegisterPair(t *testing.T) {
	w := encodeRegisterPair(3, 5)
	require.Equal(t, Absolute, are(w))
	require.Equal(t, Word(3), (w>>6)&0x7)
	require.Equal(t, Word(5), (w>>3)&0x7)
}

func TestEncodeRegisterSrcAndDst(t *testing.T) {
	w := encodeRegisterSrc(4)
	require.Equal(t, Word(4), (w>>6)&0x7)
	require.Equal(t, Word(0), (w>>3)&0x7)

	w = encodeRegisterDst(4)
	require.Equal(t, Word(4), (w>>3)&0x7)
}

func TestEncodeData(t *testing.T) {
	w := encodeData(7)
	require.Equal(t, Word(7), w)

	w = encodeData(-1)
	require.Equal(t, Word(wordMask), w)
}

func TestEncodeChar(t *testing.T) {
	require.Equal(t, Word('A'), encodeChar('A'))
}
