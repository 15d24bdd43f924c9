// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config defines the effective configuration consumed by the
// spell-check pipeline, and the project/global TOML loader that produces
// immutable snapshots of it.
package config

import (
	"github.com/codebook-lsp/codebook/internal/heuristic"
	"github.com/codebook-lsp/codebook/internal/mask"
)

// Suggest controls how aggressively the dictionary engine is asked for
// suggestions, since computing them is the most expensive part of a
// check.
//
//go:generate stringer -type=Suggest
type Suggest int

const (
	SuggestNever Suggest = iota
	SuggestOnce
	SuggestAlways
)

func (s Suggest) String() string {
	switch s {
	case SuggestNever:
		return "never"
	case SuggestOnce:
		return "once"
	case SuggestAlways:
		return "always"
	default:
		return "never"
	}
}

// EntropyFilter mirrors mask.EntropyFilter's fields so it can have TOML
// tags without pulling TOML concerns into the mask package.
type EntropyFilter struct {
	Filter         bool `toml:"filter"`
	MinLenFiltered int  `toml:"min_len_filtered"`
	AcceptLow      int  `toml:"accept_low"`
	AcceptHigh     int  `toml:"accept_high"`
}

func (e EntropyFilter) toMask() mask.EntropyFilter {
	return mask.EntropyFilter{
		Enabled:    e.Filter,
		MinLen:     e.MinLenFiltered,
		AcceptLow:  e.AcceptLow,
		AcceptHigh: e.AcceptHigh,
	}
}

// Config is the recognized option set from a codebook.toml/.codebook.toml
// or global config file, per the §4.G option table plus the ambient
// options the teacher project carries (license/author harvesting,
// suggestion behaviour, and the experimental entropy filter).
type Config struct {
	Dictionaries   []string `toml:"dictionaries"`
	Words          []string `toml:"words"`
	FlagWords      []string `toml:"flag_words"`
	IgnorePaths    []string `toml:"ignore_paths"`
	IgnorePatterns []string `toml:"ignore_patterns"`
	MinWordLength  int      `toml:"min_word_length"`
	UseGlobal      bool     `toml:"use_global"`

	Lang            string        `toml:"lang"`
	MaxWordLen      int           `toml:"max_word_len"`
	MinNakedHex     int           `toml:"min_naked_hex"`
	ReadLicenses    bool          `toml:"read_licenses"`
	ReadGitLog      bool          `toml:"read_git_log"`
	MakeSuggestions Suggest       `toml:"suggest"`
	EntropyFilter   EntropyFilter `toml:"entropy_filter"`
	Severity        string        `toml:"severity"`
}

// Defaults returns the built-in option values applied before any TOML
// file is read.
func Defaults() Config {
	return Config{
		Dictionaries:  []string{"en_US"},
		MinWordLength: 3,
		UseGlobal:     true,

		Lang:            "en_US",
		MaxWordLen:      40,
		MinNakedHex:     8,
		ReadLicenses:    true,
		ReadGitLog:      true,
		MakeSuggestions: SuggestNever,
		EntropyFilter: EntropyFilter{
			Filter:         false,
			MinLenFiltered: 16,
			AcceptLow:      14,
			AcceptHigh:     20,
		},
		Severity: "information",
	}
}

// Effective is the fully merged, immutable snapshot the pipeline reads
// for a single check. It owns its own compiled pattern set and glob
// matchers so no stage needs to recompile them per call.
type Effective struct {
	Config

	Patterns   *mask.Set
	Paths      *PathFilter
	Heuristics heuristic.Set

	// allow and deny are lower-cased for case-insensitive membership
	// tests, per §4.A.
	allow map[string]bool
	deny  map[string]bool
}

// IsAllowed reports whether lower (already lowercased for ASCII letters)
// is on the allow-list.
func (e *Effective) IsAllowed(lower string) bool { return e.allow[lower] }

// IsDenied reports whether lower is on the deny-list; deny always wins
// over every other correctness signal.
func (e *Effective) IsDenied(lower string) bool { return e.deny[lower] }

// Entropy returns the mask-package view of the configured entropy
// filter.
func (e *Effective) Entropy() mask.EntropyFilter { return e.Config.EntropyFilter.toMask() }

// Build compiles a Config into an immutable Effective snapshot. badRegex
// is called for every ignore_patterns entry that fails to compile; the
// pattern is then skipped rather than aborting the build, per the
// BadRegex disposition in §7.
func Build(cfg Config, badRegex func(pattern string, err error)) (*Effective, error) {
	allow := make(map[string]bool, len(cfg.Words))
	for _, w := range cfg.Words {
		allow[lowerASCII(w)] = true
	}
	deny := make(map[string]bool, len(cfg.FlagWords))
	for _, w := range cfg.FlagWords {
		deny[lowerASCII(w)] = true
	}
	// Invariant: allow-list and deny-list are disjoint after
	// normalization; deny wins when both name the same word.
	for w := range deny {
		delete(allow, w)
	}

	paths, err := NewPathFilter(cfg.IgnorePaths)
	if err != nil {
		return nil, err
	}

	return &Effective{
		Config:   cfg,
		Patterns: mask.Compile(cfg.IgnorePatterns, badRegex),
		Paths:    paths,
		Heuristics: heuristic.Set{
			heuristic.MaxLen{Max: cfg.MaxWordLen},
			heuristic.AllUpper{},
			heuristic.Single{},
			heuristic.NakedHex{MinLen: cfg.MinNakedHex},
			heuristic.Numeric{},
			heuristic.EscapeSequence{},
			heuristic.Unit{},
		},
		allow: allow,
		deny:  deny,
	}, nil
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
