// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package langregistry

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	tree_sitter_bash "github.com/tree-sitter/tree-sitter-bash/bindings/go"
	tree_sitter_c "github.com/tree-sitter/tree-sitter-c/bindings/go"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	tree_sitter_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
	tree_sitter_yaml "github.com/tree-sitter-grammars/tree-sitter-yaml/bindings/go"

	"github.com/codebook-lsp/codebook/internal/queries"
)

func goLanguage() *tree_sitter.Language {
	return tree_sitter.NewLanguage(tree_sitter_go.Language())
}

func pythonLanguage() *tree_sitter.Language {
	return tree_sitter.NewLanguage(tree_sitter_python.Language())
}

func javascriptLanguage() *tree_sitter.Language {
	return tree_sitter.NewLanguage(tree_sitter_javascript.Language())
}

func typescriptLanguage() *tree_sitter.Language {
	return tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript())
}

func rustLanguage() *tree_sitter.Language {
	return tree_sitter.NewLanguage(tree_sitter_rust.Language())
}

func cLanguage() *tree_sitter.Language {
	return tree_sitter.NewLanguage(tree_sitter_c.Language())
}

func bashLanguage() *tree_sitter.Language {
	return tree_sitter.NewLanguage(tree_sitter_bash.Language())
}

func yamlLanguage() *tree_sitter.Language {
	return tree_sitter.NewLanguage(tree_sitter_yaml.Language())
}

// Builtin is the concrete descriptor set shipped with the binary,
// covering the initial supported-language surface named in §4.D.
var Builtin = []*Descriptor{
	{ID: "go", Extensions: []string{".go"}, Language: goLanguage, Query: queries.Go, DictionaryHint: "go"},
	{ID: "python", Extensions: []string{".py", ".pyi"}, Language: pythonLanguage, Query: queries.Python, DictionaryHint: "python"},
	{ID: "javascript", Extensions: []string{".js", ".jsx", ".mjs", ".cjs"}, Language: javascriptLanguage, Query: queries.JavaScript, DictionaryHint: "javascript"},
	{ID: "typescript", Extensions: []string{".ts", ".tsx", ".mts"}, Language: typescriptLanguage, Query: queries.TypeScript, DictionaryHint: "typescript"},
	{ID: "rust", Extensions: []string{".rs"}, Language: rustLanguage, Query: queries.Rust, DictionaryHint: "rust"},
	{ID: "c", Extensions: []string{".c", ".h"}, Language: cLanguage, Query: queries.C, DictionaryHint: "c"},
	{ID: "shellscript", Extensions: []string{".sh", ".bash"}, Language: bashLanguage, Query: queries.Bash, DictionaryHint: "bash"},
	{ID: "yaml", Extensions: []string{".yaml", ".yml"}, Language: yamlLanguage, Query: queries.Yaml, DictionaryHint: "yaml"},
}

// NewDefault returns a Registry over Builtin, since every caller wants
// the same base set. The plain-text fallback is not registered; it
// comes from Default.
func NewDefault() *Registry {
	return New(Builtin)
}
