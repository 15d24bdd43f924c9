// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dictionary implements the Dictionary Engine: affix-expanded
// Hunspell word acceptance and suggestion, composed across every
// dictionary configured for a check and cached on the hot path, in the
// manner of the teacher project's own single-dictionary dictionary.go,
// generalized to many simultaneously loaded dictionaries.
package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/kortschak/hunspell"

	"github.com/codebook-lsp/codebook/internal/lru"
)

// maxSuggestions bounds the merged suggestion list, per §4.A's "stop at
// N=7 unique suggestions".
const maxSuggestions = 7

// speller is the subset of *hunspell.Spell the engine depends on,
// extracted so tests can exercise the fair-merge and casing logic
// without a real .aff/.dic pair on disk.
type speller interface {
	IsCorrect(word string) bool
	Suggest(word string) []string
}

// entry pairs a loaded dictionary with the name it was configured
// under, so diagnostics and the fingerprint can refer back to it.
type entry struct {
	name  string
	spell speller
}

// Set is an immutable, atomically-swappable composition of every
// dictionary active for a check, plus the hot-path correctness cache.
// A Set is safe for concurrent read access once built; it is never
// mutated after Load returns.
type Set struct {
	dicts       []entry
	fingerprint string
	cache       *lru.Cache
}

// Resolver downloads the .aff/.dic pair for a dictionary name not found
// on any of Load's searchPaths, returning local file paths to both. The
// internal/cache.Cache type satisfies this (component I, SPEC_FULL §2),
// keeping the dictionary engine itself free of any knowledge of HTTP or
// the on-disk cache manifest.
type Resolver interface {
	ResolveDictionary(ctx context.Context, name string) (aff, dic string, err error)
}

// Load locates and opens a hunspell dictionary for each name in names
// by searching searchPaths (colon/semicolon separated, in the style of
// hunspell.Paths' dir argument, with leading "~" expanded), falling
// back to resolver (if non-nil) for any name found nowhere on
// searchPaths, then layers extraWords on top of each one as an
// in-memory supplement using the teacher's write-a-temp-dictionary-then-
// reopen technique, since hunspell cannot load additional words except
// from a file on disk.
//
// A dictionary name that cannot be found by either means is skipped
// with a non-fatal error returned in the second value (DictionaryLoad,
// §7); Load always returns a non-nil Set, even when every requested
// dictionary failed to load, so that Set.Check's own fail-open rule
// governs correctness from that point on.
func Load(ctx context.Context, names []string, searchPaths string, extraWords []string, resolver Resolver) (*Set, []error) {
	var (
		dicts []entry
		errs  []error
	)
	for _, name := range names {
		sp, err := open(ctx, name, searchPaths, extraWords, resolver)
		if err != nil {
			errs = append(errs, fmt.Errorf("dictionary %q: %w", name, err))
			continue
		}
		dicts = append(dicts, entry{name: name, spell: sp})
	}

	names2 := make([]string, len(dicts))
	for i, d := range dicts {
		names2[i] = d.name
	}
	sort.Strings(names2)

	return &Set{
		dicts:       dicts,
		fingerprint: strings.Join(names2, "+"),
		cache:       lru.New(4096),
	}, errs
}

// open loads a single hunspell dictionary, seeding it with extraWords
// the same way the teacher seeds knownWords: written to a temporary
// .dic file since hunspell only loads additional words from disk.
func open(ctx context.Context, name, searchPaths string, extraWords []string, resolver Resolver) (*hunspell.Spell, error) {
	var (
		aff, dic string
		err      error
		found    bool
	)
	for _, p := range filepath.SplitList(searchPaths) {
		if strings.HasPrefix(p, "~"+string(filepath.Separator)) {
			home, herr := os.UserHomeDir()
			if herr != nil {
				continue
			}
			p = filepath.Join(home, p[2:])
		}
		aff, dic, err = hunspell.Paths(p, name)
		if err == nil {
			found = true
			break
		}
	}
	if !found && resolver != nil {
		aff, dic, err = resolver.ResolveDictionary(ctx, name)
		found = err == nil
	}
	if !found {
		return nil, fmt.Errorf("no dictionary found in %q: %w", searchPaths, err)
	}

	if len(extraWords) == 0 {
		return hunspell.NewSpellPaths(aff, dic)
	}

	merged, err := mergeWords(dic, extraWords)
	if err != nil {
		return nil, err
	}
	defer os.Remove(merged)
	return hunspell.NewSpellPaths(aff, merged)
}

// mergeWords writes a temporary .dic file containing the union of the
// words already in dic plus extra, in hunspell's counted-lines format.
func mergeWords(dic string, extra []string) (string, error) {
	words := make(map[string]bool)

	f, err := os.Open(dic)
	if err != nil {
		return "", err
	}
	sc := bufio.NewScanner(f)
	for i := 0; sc.Scan(); i++ {
		if i == 0 {
			continue
		}
		words[sc.Text()] = true
	}
	f.Close()
	if err := sc.Err(); err != nil {
		return "", err
	}
	for _, w := range extra {
		words[w] = true
	}

	tmp, err := os.CreateTemp("", "codebook-dict")
	if err != nil {
		return "", err
	}
	defer tmp.Close()

	list := make([]string, 0, len(words))
	for w := range words {
		list = append(list, w)
	}
	sort.Strings(list)

	if _, err := fmt.Fprintln(tmp, len(list)); err != nil {
		return "", err
	}
	for _, w := range list {
		if _, err := fmt.Fprintln(tmp, w); err != nil {
			return "", err
		}
	}
	return tmp.Name(), nil
}

// Check reports whether word is accepted by any active dictionary. The
// allow-list/deny-list/min-length/no-letters short-circuits named in
// §4.A are the caller's responsibility (the pipeline orchestrator);
// Check only consults the affix-expanded word lists.
//
// A nil Set (no dictionary engine at all, e.g. in a context that never
// attempted to load one) reports every word as misspelled, leaving the
// other filters to decide. A non-nil Set with zero successfully loaded
// dictionaries is the §4.A "failure semantics" case instead: every
// dictionary requested by config failed to load, so Check fails open
// and reports every word as correct, while the load errors returned by
// Load are left for the caller to publish to the log channel.
func (s *Set) Check(word string) bool {
	if s == nil {
		return false
	}
	if len(s.dicts) == 0 {
		return true
	}
	lower := strings.ToLower(word)
	key := lower + "\x00" + s.fingerprint
	if v, ok := s.cache.Get(key); ok {
		return v
	}

	correct := s.check(word)
	s.cache.Add(key, correct)
	return correct
}

func (s *Set) check(word string) bool {
	for _, d := range s.dicts {
		if d.spell.IsCorrect(word) {
			return true
		}
	}
	return false
}

// Suggest returns up to maxSuggestions unique suggestions for word,
// drawn fairly from every active dictionary in a fixed round-robin
// order so no single dictionary can crowd out the others, with each
// candidate's casing conformed to word's original style.
func (s *Set) Suggest(word string) []string {
	if s == nil || len(s.dicts) == 0 {
		return nil
	}

	lists := make([][]string, len(s.dicts))
	for i, d := range s.dicts {
		lists[i] = d.spell.Suggest(word)
	}

	style := casingOf(word)
	seen := make(map[string]bool, maxSuggestions)
	var out []string
	for i := 0; len(out) < maxSuggestions; i++ {
		progressed := false
		for li := range lists {
			if i >= len(lists[li]) {
				continue
			}
			progressed = true
			cand := applyCasing(lists[li][i], style)
			if seen[cand] {
				continue
			}
			seen[cand] = true
			out = append(out, cand)
			if len(out) == maxSuggestions {
				break
			}
		}
		if !progressed {
			break
		}
	}
	return out
}

// casing is the casing style a word was originally written in.
type casing int

const (
	casingLower casing = iota
	casingUpper
	casingTitle
	casingMixed
)

func casingOf(word string) casing {
	letters := 0
	upper := 0
	for i, r := range word {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.IsUpper(r) {
			upper++
		}
		if i == 0 && unicode.IsUpper(r) {
			continue
		}
	}
	switch {
	case letters == 0:
		return casingMixed
	case upper == 0:
		return casingLower
	case upper == letters:
		return casingUpper
	case upper == 1 && len(word) > 0 && unicode.IsUpper([]rune(word)[0]):
		return casingTitle
	default:
		return casingMixed
	}
}

func applyCasing(s string, style casing) string {
	switch style {
	case casingLower:
		return strings.ToLower(s)
	case casingUpper:
		return strings.ToUpper(s)
	case casingTitle:
		r := []rune(s)
		if len(r) == 0 {
			return s
		}
		return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
	default:
		return s
	}
}

// Names returns the configured dictionary names that loaded
// successfully, in load order.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.dicts))
	for i, d := range s.dicts {
		names[i] = d.name
	}
	return names
}

// Fingerprint identifies the composed set of active dictionaries, used
// as part of the hot-path cache key so that a config change that swaps
// dictionaries can't serve stale answers from the old set.
func (s *Set) Fingerprint() string {
	if s == nil {
		return ""
	}
	return s.fingerprint
}
