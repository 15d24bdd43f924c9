// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lspadapter

import (
	"strings"
	"unicode/utf16"
)

// lineIndex converts an absolute byte offset into an LSP document
// position (UTF-16 code units, per the protocol's default position
// encoding).
type lineIndex struct {
	text    string
	offsets []int
}

func newLineIndex(text string) *lineIndex {
	offsets := []int{0}
	for i, b := range []byte(text) {
		if b == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return &lineIndex{text: text, offsets: offsets}
}

type pos struct{ line, col int }

func (idx *lineIndex) position(byteOffset uint32) pos {
	off := int(byteOffset)
	line := 0
	for i, start := range idx.offsets {
		if start > off {
			break
		}
		line = i
	}
	lineStart := idx.offsets[line]
	if lineStart > len(idx.text) {
		lineStart = len(idx.text)
	}
	if off > len(idx.text) {
		off = len(idx.text)
	}
	units := utf16.Encode([]rune(idx.text[lineStart:off]))
	return pos{line: line, col: len(units)}
}

// uriToPath strips the file:// scheme from an LSP DocumentUri, leaving
// a plain filesystem path suitable for the ignore_paths glob matcher.
func uriToPath(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}
