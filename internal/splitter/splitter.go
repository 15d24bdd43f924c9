// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package splitter decomposes a capture's text into atomic Words,
// splitting identifiers on camelCase, snake_case, kebab-case and similar
// boundaries while carrying absolute, UTF-8-accurate byte offsets back
// into the source buffer.
//
// The camelCase/acronym boundary rule is delegated to
// github.com/kortschak/camel, the same splitter the teacher project uses
// for its own fragment-acceptability checks. Everything camel does not
// provide — outer tokenization on non-letter runes, digit segmentation,
// and byte-offset recovery through UTF-8 text — is implemented here.
package splitter

import (
	"unicode"

	"github.com/kortschak/camel"

	"github.com/codebook-lsp/codebook/internal/wordspan"
)

// Splitter decomposes capture text into Words. It is safe for concurrent
// use: the underlying camel.Splitter holds no mutable per-call state.
//
// Splitter does not itself apply the minimum-word-length cutoff of rule
// 4: a deny-listed word must survive splitting regardless of length (the
// deny-list wins over all other dispositions), so the length check is
// instead applied by the caller after the deny-list has had a chance to
// match.
type Splitter struct {
	camel camel.Splitter
}

// New returns a Splitter.
func New() *Splitter {
	return &Splitter{
		// The connector runes below are exactly the boundaries named by
		// the splitting contract rule 2. The outer tokenizer already
		// splits on them, as on every other rune that is neither a letter
		// nor a digit, so camel only ever sees connector-free runs.
		camel: camel.NewSplitter([]string{"_", "-", ".", "/", "\\", ":"}),
	}
}

// Split decomposes text, whose first byte lies at absolute offset base in
// the source buffer, into a sequence of Words in source order. The
// origin is recorded on every produced Word.
func (s *Splitter) Split(text string, base uint32, origin wordspan.Role) []wordspan.Word {
	var words []wordspan.Word
	for _, run := range letterDigitRuns(text) {
		frags := s.splitRun(run.text)
		partial := len(frags) > 1
		for _, frag := range frags {
			start := base + run.start + frag.start
			words = append(words, wordspan.Word{
				Text:  frag.text,
				Lower: lowerASCII(frag.text),
				Range: wordspan.Range{
					Start: start,
					End:   start + uint32(len(frag.text)),
				},
				Origin:  origin,
				Partial: partial,
			})
		}
	}
	return words
}

// lowerASCII lowercases only ASCII letters, leaving non-ASCII letters
// untouched so the dictionary engine's own Unicode-aware case folding
// (driven by the active language's casing rules) is not preempted.
func lowerASCII(s string) string {
	b := []byte(s)
	changed := false
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}

type span struct {
	start uint32 // byte offset relative to the run's start
	text  string
}

// run is a maximal substring of text composed only of letters and
// digits; everything else (whitespace, symbols, and the connector
// punctuation of rule 2) is a hard boundary between runs.
type run struct {
	start uint32 // byte offset relative to the input text
	text  string
}

func letterDigitRuns(text string) []run {
	var runs []run
	start := -1
	for i, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, run{start: uint32(start), text: text[start:i]})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, run{start: uint32(start), text: text[start:]})
	}
	return runs
}

// splitRun applies rule 3 to a single letter/digit run: it first isolates
// digit segments from letter segments, then hands each letter segment to
// camel for camelCase/acronym splitting, and finally recovers byte
// offsets by walking the fragments back over the run in order.
func (s *Splitter) splitRun(runText string) []span {
	segments := digitLetterSegments(runText)

	var frags []string
	for _, seg := range segments {
		if seg.isDigit {
			frags = append(frags, seg.text)
			continue
		}
		frags = append(frags, s.camel.Split(seg.text)...)
	}

	var spans []span
	pos := 0
	for _, f := range frags {
		if f == "" {
			continue
		}
		idx := indexFrom(runText, f, pos)
		if idx < 0 {
			// Defensive: camel should never invent characters that
			// aren't in its input, but fall back to appending at the
			// current position rather than losing the fragment.
			idx = pos
		}
		spans = append(spans, span{start: uint32(idx), text: f})
		pos = idx + len(f)
	}
	return spans
}

type segment struct {
	text    string
	isDigit bool
}

// digitLetterSegments splits a letter/digit run at every digit<->letter
// boundary, per rule 3.
func digitLetterSegments(text string) []segment {
	var segs []segment
	start := 0
	var prevDigit bool
	first := true
	for i, r := range text {
		isDigit := unicode.IsDigit(r)
		if !first && isDigit != prevDigit {
			segs = append(segs, segment{text: text[start:i], isDigit: prevDigit})
			start = i
		}
		prevDigit = isDigit
		first = false
	}
	if start < len(text) {
		segs = append(segs, segment{text: text[start:], isDigit: prevDigit})
	}
	return segs
}

func indexFrom(s, substr string, from int) int {
	if from > len(s) {
		return -1
	}
	i := indexByte(s[from:], substr)
	if i < 0 {
		return -1
	}
	return from + i
}

// indexByte is strings.Index without importing the whole package twice
// for a single call site; kept local for clarity of intent at the call
// site above.
func indexByte(s, substr string) int {
	n := len(substr)
	if n == 0 {
		return 0
	}
	for i := 0; i+n <= len(s); i++ {
		if s[i:i+n] == substr {
			return i
		}
	}
	return -1
}
