// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lspadapter

import (
	"sync"

	"github.com/codebook-lsp/codebook/internal/pipeline"
)

// document is the server's view of one open text document.
type document struct {
	uri        string
	languageID string
	text       string
	rev        pipeline.Revision
}

// Store is the document store keyed by URI, tracking each document's
// current text and revision counter for the staleness/cancellation rule
// in §5.
type Store struct {
	mu   sync.Mutex
	docs map[string]*document
}

// NewStore returns an empty document store.
func NewStore() *Store {
	return &Store{docs: make(map[string]*document)}
}

// Open records a newly opened document and returns its initial
// revision.
func (s *Store) Open(uri, languageID, text string) (*document, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := &document{uri: uri, languageID: languageID, text: text}
	d.rev.Next()
	s.docs[uri] = d
	return d, d.rev.Current()
}

// Change replaces a document's full text (this server declares full
// text sync only, per §6) and advances its revision.
func (s *Store) Change(uri, text string) (*document, uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.docs[uri]
	if !ok {
		return nil, 0, false
	}
	d.text = text
	return d, d.rev.Next(), true
}

// Get returns a document and its current revision by URI.
func (s *Store) Get(uri string) (*document, uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.docs[uri]
	if !ok {
		return nil, 0, false
	}
	return d, d.rev.Current(), true
}

// URIs returns the URIs of every currently open document, in no
// particular order, for handlers that need to act on the whole open set
// (e.g. re-checking everything after a configuration reload).
func (s *Store) URIs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	uris := make([]string, 0, len(s.docs))
	for uri := range s.docs {
		uris = append(uris, uri)
	}
	return uris
}

// Close discards a document and its revision counter.
func (s *Store) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

// Stale reports whether rev is behind uri's current revision.
func (s *Store) Stale(uri string, rev uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.docs[uri]
	if !ok {
		return true
	}
	return d.rev.Stale(rev)
}
