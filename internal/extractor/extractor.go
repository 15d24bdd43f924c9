// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package extractor drives tree-sitter parsing and querying to pull
// comment text, string-literal content, and definition-site identifiers
// out of a source buffer (§4.E). It never captures a use-site
// identifier: only the query source decides what counts as a
// definition, and every shipped query is written to only match
// declaration positions.
package extractor

import (
	"context"
	"fmt"
	"sync"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/codebook-lsp/codebook/internal/langregistry"
	"github.com/codebook-lsp/codebook/internal/wordspan"
)

// Capture is one tree-sitter match result tagged with the role its
// capture name implies.
type Capture struct {
	Range wordspan.Range
	Role  wordspan.Role
	Text  string
}

// Extractor holds one parser pool and one compiled query per language,
// built lazily on first use and cached for the process lifetime. The
// compiled *tree_sitter.Query is immutable and shared across concurrent
// callers, as tree-sitter's own documentation guarantees is safe;
// *tree_sitter.Parser is not, hence the pool.
type Extractor struct {
	registry *langregistry.Registry

	mu      sync.Mutex
	pools   map[string]*parserPool
	queries map[string]*tree_sitter.Query
}

// New returns an Extractor resolving languages through registry.
func New(registry *langregistry.Registry) *Extractor {
	return &Extractor{
		registry: registry,
		pools:    make(map[string]*parserPool),
		queries:  make(map[string]*tree_sitter.Query),
	}
}

// Extract parses source with the grammar named by d and returns every
// comment, string, and definition-site identifier capture in document
// order. ctx is checked between captures so a superseded check can be
// abandoned promptly (§5).
func (e *Extractor) Extract(ctx context.Context, d *langregistry.Descriptor, source []byte) ([]Capture, error) {
	if d.Language == nil {
		// Plain-text fallback: the whole buffer is one capture.
		return []Capture{{
			Range: wordspan.Range{Start: 0, End: uint32(len(source))},
			Role:  wordspan.RolePlainText,
			Text:  string(source),
		}}, nil
	}

	pool, query, err := e.languageResources(d)
	if err != nil {
		return nil, err
	}

	parser := pool.get()
	defer pool.put(parser)

	tree := parser.Parse(source, nil)
	defer tree.Close()

	cursor := tree_sitter.NewQueryCursor()
	defer cursor.Close()

	names := query.CaptureNames()
	matches := cursor.Matches(query, tree.RootNode(), source)

	var captures []Capture
	for match := matches.Next(); match != nil; match = matches.Next() {
		for _, c := range match.Captures {
			select {
			case <-ctx.Done():
				return captures, ctx.Err()
			default:
			}
			role, ok := roleForCaptureName(names[c.Index])
			if !ok {
				continue
			}
			node := c.Node
			start, end := uint32(node.StartByte()), uint32(node.EndByte())
			captures = append(captures, Capture{
				Range: wordspan.Range{Start: start, End: end},
				Role:  role,
				Text:  string(source[start:end]),
			})
		}
	}
	return captures, nil
}

func roleForCaptureName(name string) (wordspan.Role, bool) {
	switch name {
	case "comment":
		return wordspan.RoleComment, true
	case "string":
		return wordspan.RoleString, true
	case "identifier":
		return wordspan.RoleIdentifier, true
	default:
		return 0, false
	}
}

func (e *Extractor) languageResources(d *langregistry.Descriptor) (*parserPool, *tree_sitter.Query, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if pool, ok := e.pools[d.ID]; ok {
		return pool, e.queries[d.ID], nil
	}

	pool := newParserPool(d)
	query, qErr := tree_sitter.NewQuery(d.Language(), d.Query)
	if qErr != nil {
		return nil, nil, fmt.Errorf("compiling query for %s: %w", d.ID, qErr)
	}
	e.pools[d.ID] = pool
	e.queries[d.ID] = query
	return pool, query, nil
}
