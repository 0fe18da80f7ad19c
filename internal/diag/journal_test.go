package diag

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJournalAccumulates(t *testing.T) {
	j := New()
	require.False(t, j.Any())

	j.Record(DuplicateLabel, "a.as", 3, "label '%s' already defined", "LOOP")
	j.Record(UndefinedLabel, "a.as", 9, "undefined label '%s'", "X")

	require.True(t, j.Any())
	require.Equal(t, 2, j.Len())

	var buf bytes.Buffer
	j.Print(&buf)
	require.Equal(t,
		"duplicate-label: label 'LOOP' already defined (a.as:3)\n"+
			"undefined-label: undefined label 'X' (a.as:9)\n",
		buf.String())
}

func TestKindString(t *testing.T) {
	require.Equal(t, "invalid-operand", InvalidOperand.String())
	require.Equal(t, "unknown", Kind(999).String())
}
