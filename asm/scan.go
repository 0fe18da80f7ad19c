// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

// A cursor is a cheap value-type view of the unconsumed part of a
// source line. It keeps no position information, so it cannot report
// columns. It plays the same role as the teacher's fstring, pared
// down to what this grammar actually needs (no expression parsing, no
// multi-file indexing).
type cursor struct {
	str string
}

func newCursor(s string) cursor {
	return cursor{str: s}
}

func (c cursor) isEmpty() bool {
	return len(c.str) == 0
}

func (c cursor) startsWith(fn func(b byte) bool) bool {
	return len(c.str) > 0 && fn(c.str[0])
}

func (c cursor) startsWithByte(b byte) bool {
	return len(c.str) > 0 && c.str[0] == b
}

func (c cursor) consume(n int) cursor {
	return cursor{str: c.str[n:]}
}

func (c cursor) trunc(n int) cursor {
	return cursor{str: c.str[:n]}
}

func (c *cursor) scanWhile(fn func(b byte) bool) int {
	i := 0
	for ; i < len(c.str) && fn(c.str[i]); i++ {
	}
	return i
}

func (c cursor) consumeWhile(fn func(b byte) bool) (consumed, remain cursor) {
	i := c.scanWhile(fn)
	return c.trunc(i), c.consume(i)
}

func (c cursor) consumeWhitespace() cursor {
	_, remain := c.consumeWhile(isSpace)
	return remain
}

func (c cursor) trimmed() string {
	return trimSpace(c.str)
}

//
// character classifiers
//

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isLabelStart(b byte) bool {
	return isAlpha(b)
}

func isLabelChar(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

func isWordChar(b byte) bool {
	return b != ' ' && b != '\t' && b != '\r'
}

// trimSpace trims leading and trailing ASCII whitespace without pulling
// in the unicode-aware strings.TrimSpace semantics this grammar never
// needs.
func trimSpace(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	j := len(s)
	for j > i && isSpace(s[j-1]) {
		j--
	}
	return s[i:j]
}
