// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/beevik/mmn14/internal/diag"
)

// Result is everything one translation unit's pipeline produced: the
// rendered output files (valid only when the journal holds no
// diagnostics) and the journal itself.
type Result struct {
	File    string
	Output  Output
	Journal *diag.Journal
}

// Assemble runs the macro pre-pass, first pass and second pass over
// src (the contents of one .as file) and returns the rendered outputs
// alongside the accumulated diagnostics. It performs no file I/O,
// which is what lets the test suite exercise the whole pipeline
// in-memory.
func Assemble(file, src string) Result {
	return assemble(file, src, nil)
}

// assemble is Assemble with an optional verbose-mode Tracer threaded
// through every pipeline stage. A nil tracer is silent, so Assemble
// can delegate here without every caller needing one.
func assemble(file, src string, tr *diag.Tracer) Result {
	j := diag.New()

	tr.Section("macro pre-pass")
	expanded, macros := preprocess(file, src, j)

	u := newUnit(file, j, tr, macros)
	u.runFirstPass(expanded)
	u.runSecondPass()

	var out Output
	if !j.Any() {
		out = u.buildOutput()
	}

	return Result{File: file, Output: out, Journal: j}
}

// AssembledSource exposes the macro-expanded ".am" text for a source
// file, independent of whether assembly succeeds, so the driver can
// persist the pre-pass artifact spec.md §4.3 describes even when later
// stages fail.
func AssembledSource(file, src string) string {
	j := diag.New()
	expanded, _ := preprocess(file, src, j)
	return render(expanded)
}

// AssembleFile reads path (a ".as" file), runs the full pipeline, and
// writes the ".am", ".ob", ".ent" and ".ext" files alongside it. The
// object/entries/externals files are written only when the journal
// recorded no diagnostics; the ".am" file is always written, since the
// macro pre-pass is useful for debugging even a failed assembly.
func AssembleFile(path string, tr *diag.Tracer) Result {
	tr.Log("assembling %s", path)

	src, err := os.ReadFile(path)
	if err != nil {
		j := diag.New()
		j.Record(diag.FileNotFound, path, 0, "%v", err)
		return Result{File: path, Journal: j}
	}

	base := strings.TrimSuffix(path, filepath.Ext(path))

	am := AssembledSource(path, string(src))
	_ = os.WriteFile(base+".am", []byte(am), 0644)

	result := assemble(path, string(src), tr)
	if result.Journal.Any() {
		return result
	}

	_ = os.WriteFile(base+".ob", []byte(result.Output.Object), 0644)
	if result.Output.Ent != "" {
		_ = os.WriteFile(base+".ent", []byte(result.Output.Ent), 0644)
	}
	if result.Output.Ext != "" {
		_ = os.WriteFile(base+".ext", []byte(result.Output.Ext), 0644)
	}
	return result
}

// Run is the Driver (spec.md §4.10): it assembles every path
// independently, reports their diagnostics, and returns true if any
// file recorded a diagnostic (false when every file assembled
// cleanly). Per spec.md §5 ("an implementation MAY parallelize across
// files"), each file's pipeline owns its own tables and runs
// concurrently; within a file, every stage stays strictly serial.
func Run(paths []string, tr *diag.Tracer, diagOut func(Result)) bool {
	results := make([]Result, len(paths))

	var wg sync.WaitGroup
	for i, p := range paths {
		wg.Add(1)
		go func(i int, p string) {
			defer wg.Done()
			results[i] = AssembleFile(p, tr)
		}(i, p)
	}
	wg.Wait()

	anyFailed := false
	for _, r := range results {
		if r.Journal.Any() {
			anyFailed = true
		}
		if diagOut != nil {
			diagOut(r)
		}
	}
	return anyFailed
}
