// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codebook-lsp/codebook/internal/wordspan"
)

func words(t *testing.T, s *Splitter, text string) []string {
	t.Helper()
	var out []string
	for _, w := range s.Split(text, 0, wordspan.RoleIdentifier) {
		out = append(out, w.Text)
	}
	return out
}

func TestSplitCamelCase(t *testing.T) {
	s := New()
	assert.Equal(t, []string{"camel", "Case"}, words(t, s, "camelCase"))
}

func TestSplitAcronymBoundary(t *testing.T) {
	s := New()
	assert.Equal(t, []string{"HTML", "Parser"}, words(t, s, "HTMLParser"))
}

func TestSplitSnakeAndKebabCase(t *testing.T) {
	s := New()
	assert.Equal(t, []string{"my", "var", "name"}, words(t, s, "my_var-name"))
}

func TestSplitDigitBoundaries(t *testing.T) {
	s := New()
	assert.Equal(t, []string{"v", "2", "beta"}, words(t, s, "v2beta"))
}

func TestSplitDoesNotApplyMinLengthCutoff(t *testing.T) {
	// The minimum-word-length cutoff is applied by the pipeline
	// orchestrator, not here: a deny-listed word shorter than
	// min_word_length must still reach the orchestrator's deny-list
	// check, so the splitter itself must not drop short fragments.
	s := New()
	assert.Equal(t, []string{"my", "Varible"}, words(t, s, "myVarible"))
}

func TestSplitPreservesOriginalCasing(t *testing.T) {
	s := New()
	assert.Equal(t, []string{"HTTP", "Server"}, words(t, s, "HTTPServer"))
}

func TestSplitReportsAbsoluteByteOffsets(t *testing.T) {
	s := New()
	// base=10 simulates a capture that starts 10 bytes into the source
	// buffer; every returned Word's Range must be relative to the whole
	// buffer, not to the capture's own text.
	got := s.Split("myVarible", 10, wordspan.RoleIdentifier)
	if len(got) != 2 {
		t.Fatalf("got %d words, want 2", len(got))
	}
	assert.Equal(t, uint32(10), got[0].Range.Start)
	assert.Equal(t, uint32(12), got[0].Range.End) // "my"
	assert.Equal(t, uint32(12), got[1].Range.Start)
	assert.Equal(t, uint32(19), got[1].Range.End) // "Varible"
}

func TestSplitLowercasesASCIIOnlyForLookup(t *testing.T) {
	s := New()
	got := s.Split("Wolrd", 0, wordspan.RoleIdentifier)
	if len(got) != 1 {
		t.Fatalf("got %d words, want 1", len(got))
	}
	assert.Equal(t, "Wolrd", got[0].Text)
	assert.Equal(t, "wolrd", got[0].Lower)
}

func TestSplitMarksPartialFragments(t *testing.T) {
	s := New()
	got := s.Split("camelCase", 0, wordspan.RoleIdentifier)
	for _, w := range got {
		assert.True(t, w.Partial, "fragment %q of a multi-part split should be Partial", w.Text)
	}

	got = s.Split("standalone", 0, wordspan.RoleIdentifier)
	if len(got) != 1 {
		t.Fatalf("got %d words, want 1", len(got))
	}
	assert.False(t, got[0].Partial, "a single atomic token should not be marked Partial")
}

func TestSplitHandlesMultiByteUTF8(t *testing.T) {
	s := New()
	// "café" has a 2-byte trailing rune; the offsets returned must land on
	// codepoint boundaries and reconstruct the original text exactly.
	src := "café word"
	got := s.Split(src, 0, wordspan.RoleIdentifier)
	for _, w := range got {
		assert.Equal(t, w.Text, src[w.Range.Start:w.Range.End])
	}
}

func TestSplitEmptyInputYieldsNoWords(t *testing.T) {
	s := New()
	assert.Empty(t, s.Split("", 0, wordspan.RoleIdentifier))
}

func TestSplitDigitOnlyTokenYieldsOneFragment(t *testing.T) {
	// The splitter itself only tokenizes on letter/digit runs; filtering a
	// run that carries no letters at all (§8 "identifier consisting
	// solely of non-letters") is the pipeline orchestrator's job, applied
	// after splitting, not the splitter's.
	s := New()
	assert.Equal(t, []string{"12345"}, words(t, s, "12345"))
}
