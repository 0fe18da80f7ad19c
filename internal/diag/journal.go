// Package diag implements the assembler's error journal: an append-only
// list of diagnostics that accumulates across every stage of a
// translation unit's pipeline instead of aborting on the first problem.
package diag

import (
	"fmt"
	"io"
)

// Kind identifies the category of a diagnostic. The set is closed: every
// stage of the pipeline reports one of these.
type Kind int

const (
	Macro Kind = iota
	InvalidLabel
	InvalidInstruction
	InvalidMacroDefinition
	DuplicateLabel
	EntryExternConflict
	SymbolConflict
	ReservedWordAsLabel
	UndefinedLabel
	InvalidOperand
	FileNotFound
	MemoryAllocation
)

var kindName = map[Kind]string{
	Macro:                  "macro",
	InvalidLabel:           "invalid-label",
	InvalidInstruction:     "invalid-instruction",
	InvalidMacroDefinition: "invalid-macro-definition",
	DuplicateLabel:         "duplicate-label",
	EntryExternConflict:    "entry-extern-conflict",
	SymbolConflict:         "symbol-conflict",
	ReservedWordAsLabel:    "reserved-word-as-label",
	UndefinedLabel:         "undefined-label",
	InvalidOperand:         "invalid-operand",
	FileNotFound:           "file-not-found",
	MemoryAllocation:       "memory-allocation",
}

func (k Kind) String() string {
	if s, ok := kindName[k]; ok {
		return s
	}
	return "unknown"
}

// Entry is a single recorded diagnostic.
type Entry struct {
	Kind    Kind
	File    string
	Line    int
	Message string
}

// String renders an entry as "kind: message (file:line)", the form
// spec.md §7 requires on the diagnostic stream.
func (e Entry) String() string {
	return fmt.Sprintf("%s: %s (%s:%d)", e.Kind, e.Message, e.File, e.Line)
}

// Journal is an ordered, append-only list of diagnostics for one
// translation unit. Recording never fails: callers keep accumulating
// diagnostics and let later stages run even after earlier ones found
// problems, since later diagnostics (undefined externals, entries with
// no definition) are often more informative than the first error seen.
type Journal struct {
	entries []Entry
}

// New returns an empty journal, ready to accumulate diagnostics for a
// fresh translation unit.
func New() *Journal {
	return &Journal{}
}

// Record appends a diagnostic to the journal. It never returns an error;
// the caller simply continues to the next line or stage.
func (j *Journal) Record(kind Kind, file string, line int, format string, args ...interface{}) {
	j.entries = append(j.entries, Entry{
		Kind:    kind,
		File:    file,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	})
}

// Any reports whether the journal holds any diagnostic at all.
func (j *Journal) Any() bool {
	return len(j.entries) > 0
}

// Len returns the number of recorded diagnostics.
func (j *Journal) Len() int {
	return len(j.entries)
}

// Entries returns the diagnostics in the order they were recorded.
func (j *Journal) Entries() []Entry {
	return j.entries
}

// Print writes every diagnostic, one per line, to w.
func (j *Journal) Print(w io.Writer) {
	for _, e := range j.entries {
		fmt.Fprintln(w, e.String())
	}
}
