// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mask computes the set of byte ranges in a source buffer that
// should be exempt from spell checking: URLs, hex colors, emails, file
// paths, UUIDs, base64 blobs, git hashes, Markdown links, and whatever
// additional regular expressions the user configures.
//
// The built-in patterns are compiled with github.com/coregx/coregex, a
// linear-time regex engine retrieved alongside this project's other
// examples; the built-ins use groups only for grouping and need no
// multiline anchors, so they sit comfortably inside coregex v1's
// documented feature set. User-supplied patterns run with multiline
// semantics and may use capture groups, so they are compiled with the
// standard library regexp package instead (RE2 syntax: a pattern with a
// backreference or lookaround does not compile and is skipped) — see
// DESIGN.md for why that split is deliberate rather than an oversight.
package mask

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/coregx/coregex"
	"mvdan.cc/xurls/v2"

	"github.com/codebook-lsp/codebook/internal/wordspan"
)

// builtinSources lists the built-in patterns, each compiled once with
// coregex at package init.
var builtinSources = []string{
	`#[0-9a-fA-F]{3}([0-9a-fA-F]{3}([0-9a-fA-F]{2})?)?`, // hex colors, #abc/#aabbcc/#aabbccdd
	`[[:alnum:]._%+\-]+@[[:alnum:].\-]+\.[[:alpha:]]{2,}`, // emails
	`/(?:[\w.\-]+/)+[\w.\-]+`,                             // absolute Unix paths
	`[A-Za-z]:\\(?:[\w .\-]+\\)*[\w .\-]+`,                // absolute Windows paths
	`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`, // UUIDs
	`(?:[A-Za-z0-9+/]{4}){5,}(?:[A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=)?`,           // base64 runs >= 20 chars
	`[0-9a-fA-F]{7,40}`,                                                          // git hashes
	`\[[^\]\n]+\]\([^)\n]+\)`,                                                    // Markdown links
}

var builtins []*coregex.Regex

func init() {
	for _, src := range builtinSources {
		builtins = append(builtins, coregex.MustCompile(src))
	}
}

// urls reuses the teacher's own URL matcher: a strict xurls matcher that
// only accepts URLs with an explicit scheme or a well-known TLD.
var urls = xurls.Strict()

// Set is the compiled mask configuration: built-ins plus the user's own
// ignore_patterns.
type Set struct {
	user []*regexp.Regexp
}

// Compile compiles the user-supplied regular expression sources in
// addition to the always-on built-in patterns. A malformed pattern is
// skipped and reported via badPattern rather than failing the whole set,
// per the BadRegex error disposition.
func Compile(patterns []string, badPattern func(pattern string, err error)) *Set {
	s := &Set{}
	for _, p := range patterns {
		re, err := regexp.Compile(`(?m)` + p)
		if err != nil {
			if badPattern != nil {
				badPattern(p, err)
			}
			continue
		}
		s.user = append(s.user, re)
	}
	return s
}

// Ranges returns the sorted, merged union of every byte range in text
// matched by the built-in patterns, the URL matcher, or the user
// patterns in s.
func (s *Set) Ranges(text string) []wordspan.Range {
	var ranges []wordspan.Range

	for _, re := range builtins {
		ranges = append(ranges, findAllCoregex(re, text)...)
	}
	for _, loc := range urls.FindAllStringIndex(text, -1) {
		ranges = append(ranges, wordspan.Range{Start: uint32(loc[0]), End: uint32(loc[1])})
	}
	if s != nil {
		for _, re := range s.user {
			for _, loc := range re.FindAllStringIndex(text, -1) {
				ranges = append(ranges, wordspan.Range{Start: uint32(loc[0]), End: uint32(loc[1])})
			}
		}
	}

	return merge(ranges)
}

// findAllCoregex replicates stdlib regexp's FindAllStringIndex using
// coregex's single-match FindStringIndex in a loop, since coregex v1
// does not itself expose a FindAll that returns indices.
func findAllCoregex(re *coregex.Regex, text string) []wordspan.Range {
	var out []wordspan.Range
	pos := 0
	for pos <= len(text) {
		loc := re.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		out = append(out, wordspan.Range{Start: uint32(start), End: uint32(end)})
		if end > pos {
			pos = end
		} else {
			pos++
		}
	}
	return out
}

// merge sorts and coalesces overlapping or adjacent ranges.
func merge(ranges []wordspan.Range) []wordspan.Range {
	if len(ranges) == 0 {
		return nil
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Start < ranges[j].Start })
	out := ranges[:1]
	for _, r := range ranges[1:] {
		last := &out[len(out)-1]
		if r.Start <= last.End {
			if r.End > last.End {
				last.End = r.End
			}
			continue
		}
		out = append(out, r)
	}
	return out
}

// Masked reports whether r lies entirely within the masked ranges, which
// must be sorted and merged (as returned by Ranges).
func Masked(masked []wordspan.Range, r wordspan.Range) bool {
	i := sort.Search(len(masked), func(i int) bool { return masked[i].End >= r.End })
	if i == len(masked) {
		return false
	}
	return r.Within(masked[i])
}

// ValidatePattern reports a BadRegex for pattern, compiled the same way
// Compile compiles it, with a message naming the pattern. The config
// loader does not call it; Compile reports bad patterns through its
// badPattern callback instead.
func ValidatePattern(pattern string) error {
	_, err := regexp.Compile(`(?m)` + pattern)
	if err != nil {
		return fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
	}
	return nil
}
