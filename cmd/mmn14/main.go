// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mmn14 assembles one or more source files into object,
// entries and externals files.
package main

import (
	"fmt"
	"os"

	"github.com/beevik/mmn14/asm"
	"github.com/beevik/mmn14/internal/console"
	"github.com/beevik/mmn14/internal/diag"
	"github.com/spf13/cobra"
)

var (
	interactive bool
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "mmn14 [files...]",
	Short: "Two-pass assembler for the mmn14 machine architecture",
	Long: `mmn14 reads one or more .as source files, expands their macros,
assembles them in two passes and writes the resulting .ob, .ent and
.ext files alongside each source file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "page diagnostics one at a time")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace each pipeline stage as it runs")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	pager := console.NewPager(os.Stdin, os.Stdout, interactive)
	defer pager.Close()

	tracer := diag.NewTracer(os.Stdout, verbose)

	anyFailed := asm.Run(args, tracer, func(r asm.Result) {
		if !r.Journal.Any() {
			pager.Show(fmt.Sprintf("%s: assembled cleanly", r.File))
			return
		}
		for _, e := range r.Journal.Entries() {
			pager.Show(e.String())
		}
	})

	if anyFailed {
		return fmt.Errorf("one or more files failed to assemble")
	}
	return nil
}
