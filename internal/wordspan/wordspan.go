// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wordspan holds the core data types shared by every stage of the
// spell-check pipeline: a Word extracted from source text and the
// half-open byte Range it occupies.
package wordspan

import "fmt"

// Range is a half-open byte range [Start, End) into a source buffer. Both
// ends must land on UTF-8 codepoint boundaries.
type Range struct {
	Start, End uint32
}

// Len returns the number of bytes spanned by r.
func (r Range) Len() int { return int(r.End - r.Start) }

// within reports whether r lies entirely inside other.
func (r Range) within(other Range) bool {
	return other.Start <= r.Start && r.End <= other.Start+uint32(other.Len())
}

// Within reports whether r lies entirely inside other.
func (r Range) Within(other Range) bool { return r.within(other) }

func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// Role classifies the syntactic origin of a Word or Capture.
type Role int

const (
	// RoleComment is text drawn from a comment (line, block, or doc).
	RoleComment Role = iota
	// RoleString is text drawn from the content of a string literal.
	RoleString
	// RoleIdentifier is a name at its definition site.
	RoleIdentifier
	// RolePlainText marks a capture synthesized for the plain-text
	// fallback descriptor, where the entire buffer is one span.
	RolePlainText
)

func (k Role) String() string {
	switch k {
	case RoleComment:
		return "comment"
	case RoleString:
		return "string"
	case RoleIdentifier:
		return "identifier"
	case RolePlainText:
		return "text"
	default:
		return "unknown"
	}
}

// Word is a maximal linguistic atom extracted from a capture, carrying its
// original casing, a lookup-normalized lowercase form, its absolute byte
// Range in the source buffer, and the role of the capture it came from.
type Word struct {
	Text   string
	Lower  string
	Range  Range
	Origin Role

	// Partial reports whether this Word is one of several fragments the
	// splitter produced from a single token (e.g. "Case" out of
	// "camelCase"), as opposed to a token that was already atomic. A
	// handful of heuristics only make sense against a whole token.
	Partial bool
}

// Location is a single place a misspelled Word was found.
type Location struct {
	Range Range
	// Origin is the role of the capture the word was drawn from, kept
	// so code actions and diagnostics can report context.
	Origin Role
}

// WordLocation groups every occurrence of a single misspelled word
// (case-insensitive key) within one file.
type WordLocation struct {
	// Word is the first-seen original casing; lookups are always
	// performed on the lowercase form.
	Word      string
	Lower     string
	Locations []Location
}

// Add records an occurrence, de-duplicating by Range.
func (wl *WordLocation) Add(loc Location) {
	for _, have := range wl.Locations {
		if have.Range == loc.Range {
			return
		}
	}
	wl.Locations = append(wl.Locations, loc)
}
