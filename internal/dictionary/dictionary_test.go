// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codebook-lsp/codebook/internal/lru"
)

// fakeSpeller is a minimal speller used to test merge/casing logic
// without a real hunspell affix/dictionary pair.
type fakeSpeller struct {
	correct     map[string]bool
	suggestions []string
}

func (f *fakeSpeller) IsCorrect(word string) bool { return f.correct[word] }
func (f *fakeSpeller) Suggest(word string) []string { return f.suggestions }

func newTestSet(entries ...entry) *Set {
	return &Set{dicts: entries, fingerprint: "test", cache: lru.New(64)}
}

func TestCheckAnyDictionaryAccepts(t *testing.T) {
	s := newTestSet(
		entry{name: "a", spell: &fakeSpeller{correct: map[string]bool{}}},
		entry{name: "b", spell: &fakeSpeller{correct: map[string]bool{"gopher": true}}},
	)
	assert.True(t, s.Check("gopher"))
	assert.False(t, s.Check("gofer"))
}

func TestCheckCaches(t *testing.T) {
	calls := 0
	s := newTestSet(entry{name: "a", spell: &countingSpeller{correct: true, calls: &calls}})
	s.Check("word")
	s.Check("word")
	assert.Equal(t, 1, calls)
}

type countingSpeller struct {
	correct bool
	calls   *int
}

func (c *countingSpeller) IsCorrect(string) bool { *c.calls++; return c.correct }
func (c *countingSpeller) Suggest(string) []string { return nil }

func TestSuggestFairRoundRobin(t *testing.T) {
	s := newTestSet(
		entry{name: "a", spell: &fakeSpeller{suggestions: []string{"apple", "avocado"}}},
		entry{name: "b", spell: &fakeSpeller{suggestions: []string{"banana", "blueberry"}}},
	)
	got := s.Suggest("fruit")
	assert.Equal(t, []string{"apple", "banana", "avocado", "blueberry"}, got)
}

func TestSuggestCapsAtSeven(t *testing.T) {
	var list []string
	for i := 0; i < 20; i++ {
		list = append(list, string(rune('a'+i)))
	}
	s := newTestSet(entry{name: "a", spell: &fakeSpeller{suggestions: list}})
	assert.Len(t, s.Suggest("x"), maxSuggestions)
}

func TestSuggestDeduplicates(t *testing.T) {
	s := newTestSet(
		entry{name: "a", spell: &fakeSpeller{suggestions: []string{"same"}}},
		entry{name: "b", spell: &fakeSpeller{suggestions: []string{"same"}}},
	)
	assert.Equal(t, []string{"same"}, s.Suggest("x"))
}

func TestApplyCasingPreservesStyle(t *testing.T) {
	tests := []struct {
		word, cand, want string
	}{
		{"HELLO", "world", "WORLD"},
		{"Hello", "world", "World"},
		{"hello", "WORLD", "world"},
	}
	for _, tt := range tests {
		got := applyCasing(tt.cand, casingOf(tt.word))
		assert.Equal(t, tt.want, got, "word=%s cand=%s", tt.word, tt.cand)
	}
}

func TestCheckFailsOpenWhenNoDictionaryLoaded(t *testing.T) {
	s := newTestSet() // non-nil Set, every requested dictionary failed to load
	assert.True(t, s.Check("anyword"))
}

func TestNamesAndFingerprint(t *testing.T) {
	s := newTestSet(entry{name: "en_US", spell: &fakeSpeller{}})
	assert.Equal(t, []string{"en_US"}, s.Names())
	assert.Equal(t, "test", s.Fingerprint())

	var nilSet *Set
	assert.Nil(t, nilSet.Names())
	assert.Equal(t, "", nilSet.Fingerprint())
	assert.False(t, nilSet.Check("anything"))
	assert.Nil(t, nilSet.Suggest("anything"))
}
