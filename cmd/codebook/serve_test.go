// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"testing"

	"github.com/codebook-lsp/codebook/internal/config"
	"github.com/codebook-lsp/codebook/internal/xdg"
)

func TestCollectExtraWordsSkipsDisabledHarvesters(t *testing.T) {
	log := newLogger()
	cfg := config.Defaults()
	cfg.ReadLicenses = false
	cfg.ReadGitLog = false

	words := collectExtraWords(t.TempDir(), cfg, log)
	if len(words) == 0 {
		t.Fatal("expected builtin per-language jargon even with harvesters disabled")
	}
}

func TestDictionarySearchPathsIncludesCacheDir(t *testing.T) {
	paths := dictionarySearchPaths()
	parts := filepath.SplitList(paths)
	if len(parts) == 0 {
		t.Fatal("dictionarySearchPaths returned no entries")
	}
	if parts[0] != xdg.CacheDir() {
		t.Errorf("first search path = %q, want the cache dir %q", parts[0], xdg.CacheDir())
	}
}
