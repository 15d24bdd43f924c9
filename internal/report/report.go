// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report pretty-prints pipeline.Check results to a terminal,
// colorized with github.com/kortschak/ct the way the teacher project
// colorizes its own misspelling report.
package report

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/kortschak/ct"

	"github.com/codebook-lsp/codebook/internal/dictionary"
	"github.com/codebook-lsp/codebook/internal/wordspan"
)

var (
	warnPaint    = (ct.Italic | ct.Fg(ct.BoldRed)).Paint
	suggestPaint = (ct.Italic | ct.Fg(ct.BoldGreen)).Paint
)

// Finding pairs a file path with the WordLocations found in it, the
// unit the report package prints one block of output for.
type Finding struct {
	Path      string
	Source    []byte
	Locations []wordspan.WordLocation
}

// Print writes a human-readable report for every finding to w, in the
// teacher's own style: one line per occurrence giving file:line:col,
// the misspelled text, and its role, followed by suggestions when dicts
// is non-nil and asked for them.
func Print(w io.Writer, findings []Finding, dicts *dictionary.Set, suggest bool) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	for _, f := range findings {
		lineStarts := lineStarts(f.Source)
		type occurrence struct {
			word   string
			origin wordspan.Role
			loc    wordspan.Location
		}
		var occs []occurrence
		for _, wl := range f.Locations {
			for _, loc := range wl.Locations {
				occs = append(occs, occurrence{word: wl.Word, origin: loc.Origin, loc: loc})
			}
		}
		sort.Slice(occs, func(i, j int) bool { return occs[i].loc.Range.Start < occs[j].loc.Range.Start })

		for _, o := range occs {
			line, col := position(lineStarts, o.loc.Range.Start)
			fmt.Fprintf(bw, "%s:%d:%d: %q is misspelled in %s", f.Path, line, col, warnPaint(o.word), o.origin)

			if suggest && dicts != nil {
				if s := dicts.Suggest(o.word); len(s) > 0 {
					fmt.Fprint(bw, " (suggest: ")
					for i, cand := range s {
						if i != 0 {
							fmt.Fprint(bw, ", ")
						}
						fmt.Fprint(bw, suggestPaint(cand))
					}
					fmt.Fprint(bw, ")")
				}
			}
			fmt.Fprintln(bw)
		}
	}
}

// lineStarts returns the byte offset of the start of each line in src,
// line 1 first.
func lineStarts(src []byte) []int {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// position converts a byte offset into a 1-based line and column,
// counting columns in bytes, as go/token does.
func position(lineStarts []int, offset uint32) (line, col int) {
	i := sort.Search(len(lineStarts), func(i int) bool { return lineStarts[i] > int(offset) }) - 1
	if i < 0 {
		i = 0
	}
	line = i + 1
	col = int(offset) - lineStarts[i] + 1
	return line, col
}

// Summary returns a one-line count of total misspellings across every
// finding, in the teacher's terse closing-line style.
func Summary(findings []Finding) string {
	n := 0
	for _, f := range findings {
		for _, wl := range f.Locations {
			n += len(wl.Locations)
		}
	}
	switch n {
	case 0:
		return "no misspellings found"
	case 1:
		return "1 misspelling found"
	default:
		return fmt.Sprintf("%d misspellings found", n)
	}
}
