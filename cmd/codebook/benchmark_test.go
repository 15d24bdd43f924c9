// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"testing"

	"github.com/codebook-lsp/codebook/internal/config"
	"github.com/codebook-lsp/codebook/internal/langregistry"
	"github.com/codebook-lsp/codebook/internal/pipeline"
)

func TestRunFixedBenchmarkFindsTheSeededMisspellings(t *testing.T) {
	cfg := config.Defaults()
	eff, err := config.Build(cfg, func(string, error) {})
	if err != nil {
		t.Fatalf("config.Build: %v", err)
	}

	pipe := pipeline.New(langregistry.NewDefault())

	locations, elapsed, err := runFixedBenchmark(context.Background(), pipe, eff, nil)
	if err != nil {
		t.Fatalf("runFixedBenchmark: %v", err)
	}
	if elapsed <= 0 {
		t.Fatal("expected a positive elapsed duration")
	}

	found := make(map[string]bool, len(locations))
	for _, loc := range locations {
		found[loc.Lower] = true
	}
	for _, want := range []string{"calcualte", "totl", "helllo"} {
		if !found[want] {
			t.Errorf("expected benchmark sample to flag %q, got %v", want, found)
		}
	}
}
