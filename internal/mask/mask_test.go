// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codebook-lsp/codebook/internal/wordspan"
)

func TestRangesMasksBuiltinURL(t *testing.T) {
	s := Compile(nil, nil)
	url := "https://exmaple.com/speling"
	text := "see " + url + " for details"
	ranges := s.Ranges(text)
	require.NotEmpty(t, ranges)

	idx := indexOf(text, url)
	r := wordspan.Range{Start: uint32(idx), End: uint32(idx + len(url))}
	assert.True(t, Masked(ranges, r))
}

func TestRangesMasksHexColor(t *testing.T) {
	s := Compile(nil, nil)
	text := "color: #aabbcc;"
	ranges := s.Ranges(text)
	idx := indexOf(text, "#aabbcc")
	r := wordspan.Range{Start: uint32(idx), End: uint32(idx + len("#aabbcc"))}
	assert.True(t, Masked(ranges, r))
}

func TestRangesMasksEmail(t *testing.T) {
	s := Compile(nil, nil)
	text := "contact zzxxyy@example.com please"
	ranges := s.Ranges(text)
	idx := indexOf(text, "zzxxyy@example.com")
	r := wordspan.Range{Start: uint32(idx), End: uint32(idx + len("zzxxyy@example.com"))}
	assert.True(t, Masked(ranges, r))
}

func TestRangesMasksGitHash(t *testing.T) {
	s := Compile(nil, nil)
	text := "fixed in a1b2c3d4e5f6"
	ranges := s.Ranges(text)
	idx := indexOf(text, "a1b2c3d4e5f6")
	r := wordspan.Range{Start: uint32(idx), End: uint32(idx + len("a1b2c3d4e5f6"))}
	assert.True(t, Masked(ranges, r))
}

func TestUnmaskedWordIsNotMasked(t *testing.T) {
	s := Compile(nil, nil)
	text := "a totally normal sentence"
	ranges := s.Ranges(text)
	idx := indexOf(text, "normal")
	r := wordspan.Range{Start: uint32(idx), End: uint32(idx + len("normal"))}
	assert.False(t, Masked(ranges, r))
}

func TestUserPatternAppendsToBuiltins(t *testing.T) {
	s := Compile([]string{`SECRET-\d+`}, nil)
	text := "token SECRET-42 issued"
	ranges := s.Ranges(text)
	idx := indexOf(text, "SECRET-42")
	r := wordspan.Range{Start: uint32(idx), End: uint32(idx + len("SECRET-42"))}
	assert.True(t, Masked(ranges, r))

	// Built-ins still apply alongside the user pattern.
	text2 := "see https://exmaple.com/x"
	ranges2 := s.Ranges(text2)
	idx2 := indexOf(text2, "https://exmaple.com/x")
	r2 := wordspan.Range{Start: uint32(idx2), End: uint32(idx2 + len("https://exmaple.com/x"))}
	assert.True(t, Masked(ranges2, r2))
}

func TestMalformedUserPatternIsSkippedNotFatal(t *testing.T) {
	var badCalls int
	s := Compile([]string{`(unclosed`, `goodword`}, func(pattern string, err error) {
		badCalls++
	})
	require.Equal(t, 1, badCalls)

	text := "a goodword here"
	ranges := s.Ranges(text)
	idx := indexOf(text, "goodword")
	r := wordspan.Range{Start: uint32(idx), End: uint32(idx + len("goodword"))}
	assert.True(t, Masked(ranges, r))
}

func TestWordPartiallyOverlappingMaskIsNotFullyMasked(t *testing.T) {
	s := Compile(nil, nil)
	text := "#abc"
	ranges := s.Ranges(text)
	// A range that starts inside the hex color but extends past it is not
	// entirely contained, so it must not be treated as masked.
	r := wordspan.Range{Start: 1, End: uint32(len(text) + 5)}
	assert.False(t, Masked(ranges, r))
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
