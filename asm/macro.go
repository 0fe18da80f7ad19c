// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"strings"

	"github.com/beevik/mmn14/internal/diag"
)

// macroDef is one macro table entry: its name and the exact lines
// between its "macr" and "endmacr" markers, in order.
type macroDef struct {
	name string
	body []string
}

// macroTable maps macro names to their bodies.
type macroTable struct {
	macros map[string]*macroDef
}

func newMacroTable() *macroTable {
	return &macroTable{macros: make(map[string]*macroDef)}
}

func (t *macroTable) lookup(name string) (*macroDef, bool) {
	m, ok := t.macros[name]
	return m, ok
}

// expandedLine is one line of the macro-expanded source, carrying the
// originating source line number so later stages can report accurate
// diagnostics. Lines that came from inside a macro body all report the
// line number of the invocation, matching the teacher's
// position-tracking fstring idiom (asm/fstring.go) applied to a
// line-oriented rather than expression-oriented grammar.
type expandedLine struct {
	line int
	text string
}

// preprocess runs the macro pre-pass over src, the raw contents of one
// .as file. It returns the macro-expanded line stream (the would-be
// .am file) and the macro table it built along the way, so the first
// pass (checkLabelName) can reject labels that reuse a macro name.
func preprocess(file string, src string, j *diag.Journal) ([]expandedLine, *macroTable) {
	table := newMacroTable()
	var out []expandedLine

	var current *macroDef
	defLine := 0

	lines := strings.Split(strings.TrimSuffix(src, "\n"), "\n")
	for i, raw := range lines {
		lineNo := i + 1
		text := strings.TrimRight(raw, "\r")

		if current != nil {
			first, _ := firstToken(text)
			if first == macroClose {
				table.macros[current.name] = current
				current = nil
				continue
			}
			if first == macroOpen {
				j.Record(diag.InvalidMacroDefinition, file, lineNo, "nested macro definitions are not allowed")
				continue
			}
			current.body = append(current.body, text)
			continue
		}

		trimmed := trimSpace(text)
		if trimmed == "" || trimmed[0] == ';' {
			out = append(out, expandedLine{lineNo, text})
			continue
		}

		first, rest := firstToken(text)
		if first == macroOpen {
			name, extra := firstToken(rest)
			switch {
			case name == "":
				j.Record(diag.InvalidMacroDefinition, file, lineNo, "macro definition missing a name")
			case !isValidLabelSyntax(name):
				j.Record(diag.InvalidMacroDefinition, file, lineNo, "invalid macro name '%s'", name)
			case isReservedWord(name):
				j.Record(diag.InvalidMacroDefinition, file, lineNo, "macro name '%s' is a reserved word", name)
			case trimSpace(extra) != "":
				j.Record(diag.InvalidMacroDefinition, file, lineNo, "extra tokens after macro name '%s'", name)
			case table.macros[name] != nil:
				j.Record(diag.InvalidMacroDefinition, file, lineNo, "macro '%s' is already defined", name)
			default:
				current = &macroDef{name: name}
				defLine = lineNo
				continue
			}
			// On any error, still consume the definition body (up to
			// endmacr, if present) so later lines parse cleanly.
			current = &macroDef{name: "\x00invalid"}
			defLine = lineNo
			continue
		}

		if def, ok := table.macros[first]; ok {
			for _, bodyLine := range def.body {
				out = append(out, expandedLine{lineNo, bodyLine})
			}
			continue
		}

		out = append(out, expandedLine{lineNo, text})
	}

	if current != nil {
		j.Record(diag.InvalidMacroDefinition, file, defLine, "macro definition not closed before end of file")
	}

	return out, table
}

// firstToken splits s into its first whitespace-delimited token and the
// remainder of the line following it.
func firstToken(s string) (token, rest string) {
	c := newCursor(s).consumeWhitespace()
	tok, remain := c.consumeWhile(isWordChar)
	return tok.str, remain.str
}

// render joins the expanded line stream back into .am file text, one
// line per entry.
func render(lines []expandedLine) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.text
	}
	return strings.Join(parts, "\n") + "\n"
}
