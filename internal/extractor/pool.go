// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extractor

import (
	"sync"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/codebook-lsp/codebook/internal/langregistry"
)

// parserPool hands out *tree_sitter.Parser instances configured for a
// single language, reusing them across checks instead of constructing
// one per call (§5: "Parser instances are pooled per language").
type parserPool struct {
	mu   sync.Mutex
	free []*tree_sitter.Parser
	lang *tree_sitter.Language
}

func newParserPool(d *langregistry.Descriptor) *parserPool {
	return &parserPool{lang: d.Language()}
}

func (p *parserPool) get() *tree_sitter.Parser {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n := len(p.free); n > 0 {
		parser := p.free[n-1]
		p.free = p.free[:n-1]
		return parser
	}
	parser := tree_sitter.NewParser()
	parser.SetLanguage(p.lang)
	return parser
}

func (p *parserPool) put(parser *tree_sitter.Parser) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.free = append(p.free, parser)
}
