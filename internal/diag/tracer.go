package diag

import (
	"fmt"
	"io"
	"strings"
)

// Tracer is the assembler's verbose-mode trace log, the same role the
// teacher's asm.assembler.log/logLine/logSection play: a set of no-ops
// unless verbose mode is on, writing through an injected io.Writer
// instead of unconditionally to os.Stdout.
//
// A nil *Tracer is valid and silent, so pipeline code can carry a
// tracer field unconditionally without a surrounding "if tracer != nil"
// at every call site.
type Tracer struct {
	out     io.Writer
	verbose bool
}

// NewTracer returns a Tracer that writes to out when verbose is true.
func NewTracer(out io.Writer, verbose bool) *Tracer {
	return &Tracer{out: out, verbose: verbose}
}

// Log writes one formatted trace line, like the teacher's a.log.
func (t *Tracer) Log(format string, args ...interface{}) {
	if !t.enabled() {
		return
	}
	fmt.Fprintf(t.out, format, args...)
	fmt.Fprintln(t.out)
}

// LogLine writes a trace line annotated with the source line it
// describes, like the teacher's a.logLine.
func (t *Tracer) LogLine(line int, text string, format string, args ...interface{}) {
	if !t.enabled() {
		return
	}
	detail := fmt.Sprintf(format, args...)
	fmt.Fprintf(t.out, "%-3d | %-20s | %s\n", line, detail, text)
}

// Section writes a banner marking the start of a pipeline stage, like
// the teacher's a.logSection.
func (t *Tracer) Section(name string) {
	if !t.enabled() {
		return
	}
	bar := strings.Repeat("-", len(name)+6)
	fmt.Fprintln(t.out, bar)
	fmt.Fprintf(t.out, "-- %s --\n", name)
	fmt.Fprintln(t.out, bar)
}

func (t *Tracer) enabled() bool {
	return t != nil && t.verbose && t.out != nil
}
