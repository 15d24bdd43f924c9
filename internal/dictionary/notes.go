// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dictionary

import (
	"regexp"
	"strings"

	"github.com/codebook-lsp/codebook/internal/splitter"
	"github.com/codebook-lsp/codebook/internal/wordspan"
)

// noteMarkerRx matches a "MARKER(uid):" note annotation, e.g.
// "BUG(kortschak): fix this" or "TODO(alice): handle nil". This is
// generalized from the teacher's Go-specific addNoteAuthors, which
// walked go/ast.CommentGroup values; here it runs directly over any
// comment capture's text regardless of source language, since every
// supported language's comment syntax agrees on "// MARKER(uid): ..."
// or "/* MARKER(uid): ... */" framing.
var noteMarkerRx = regexp.MustCompile(`(?:^|[/*]\s*)([A-Z][A-Z]+)\(([^)]+)\)\s*:`)

// NoteAuthorWords scans comment text for note annotations and returns
// the uid field split into words, so a reviewer's handle used as a note
// author isn't flagged. text is the raw content of a single comment
// capture (§4.E RoleComment).
func NoteAuthorWords(text string) []string {
	m := noteMarkerRx.FindStringSubmatchIndex(text)
	if m == nil {
		return nil
	}
	uid := text[m[4]:m[5]]
	if strings.TrimSpace(uid) == "" {
		return nil
	}
	var words []string
	for _, w := range noteSplitter.Split(uid, 0, wordspan.RoleComment) {
		words = append(words, w.Text)
	}
	return words
}

var noteSplitter = splitter.New()
