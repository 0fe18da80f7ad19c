// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

// isValidLabelSyntax reports whether name matches the label grammar of
// spec.md §3: `[A-Za-z][A-Za-z0-9]{0,30}`, i.e. starts with a letter,
// continues with letters or digits, and is at most MaxLabelLength
// characters long. It says nothing about whether name is reserved;
// callers combine this with isReservedWord.
func isValidLabelSyntax(name string) bool {
	if len(name) == 0 || len(name) > MaxLabelLength {
		return false
	}
	if !isLabelStart(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isLabelChar(name[i]) {
			return false
		}
	}
	return true
}

// isValidLabel reports whether name may be declared as a label: valid
// syntax and not a reserved word.
func isValidLabel(name string) bool {
	return isValidLabelSyntax(name) && !isReservedWord(name)
}
