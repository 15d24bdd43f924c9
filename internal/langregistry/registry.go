// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package langregistry resolves a file extension or LSP languageId to
// the LanguageDescriptor that drives tree-sitter parsing and query
// selection for it (§4.D).
package langregistry

import tree_sitter "github.com/tree-sitter/go-tree-sitter"

// Descriptor names everything the pipeline needs to know about a
// supported language: its tree-sitter grammar, the compiled query used
// to find comments/strings/identifier definition sites, and the
// dictionary_hints supplemental vocabulary key (§4.A) it contributes.
type Descriptor struct {
	// ID is the canonical language id, matching the LSP languageId
	// values the adapter receives from editors (e.g. "go", "python").
	ID string

	// Extensions are file suffixes, including the leading dot, that
	// resolve to this descriptor when no explicit languageId is known,
	// e.g. a path given to the pipeline without going through the LSP
	// didOpen/didChange notifications that carry one.
	Extensions []string

	// Language is the compiled tree-sitter grammar, or nil for the
	// plain-text fallback descriptor, which never parses.
	Language func() *tree_sitter.Language

	// Query is the embedded .scm query source naming the @comment,
	// @string, and @identifier captures for this grammar. Empty for the
	// plain-text fallback.
	Query string

	// DictionaryHint is the dictionary.WordsFor key contributing this
	// language's builtin/keyword vocabulary.
	DictionaryHint string
}

// Registry is an immutable, concurrency-safe lookup table built once at
// startup (§5 "no global mutable state" beyond the named exceptions);
// Registry itself holds no pointer that changes after New returns.
type Registry struct {
	byID  map[string]*Descriptor
	byExt map[string]*Descriptor
}

// New builds a Registry from descriptors, indexing each by its ID and
// every extension it claims. A later descriptor silently wins a
// conflicting extension, which cannot happen for the built-in set but
// keeps New total for caller-supplied descriptors too.
func New(descriptors []*Descriptor) *Registry {
	r := &Registry{
		byID:  make(map[string]*Descriptor, len(descriptors)),
		byExt: make(map[string]*Descriptor),
	}
	for _, d := range descriptors {
		r.byID[d.ID] = d
		for _, ext := range d.Extensions {
			r.byExt[ext] = d
		}
	}
	return r
}

// ByID resolves a language by its canonical id (the LSP languageId).
func (r *Registry) ByID(id string) (*Descriptor, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// ByExtension resolves a language by file extension, including the
// leading dot (e.g. ".go").
func (r *Registry) ByExtension(ext string) (*Descriptor, bool) {
	d, ok := r.byExt[ext]
	return d, ok
}

// Default is the descriptor used when no language can be resolved: the
// whole buffer is treated as one plain-text span (§4.D).
func Default() *Descriptor {
	return &Descriptor{ID: "plaintext", DictionaryHint: "plaintext"}
}
