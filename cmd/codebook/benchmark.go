// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/codebook-lsp/codebook/internal/cache"
	"github.com/codebook-lsp/codebook/internal/config"
	"github.com/codebook-lsp/codebook/internal/dictionary"
	"github.com/codebook-lsp/codebook/internal/langregistry"
	"github.com/codebook-lsp/codebook/internal/pipeline"
	"github.com/codebook-lsp/codebook/internal/report"
	"github.com/codebook-lsp/codebook/internal/wordspan"
	"github.com/codebook-lsp/codebook/internal/xdg"
)

// benchmarkRuns is how many times the fixed sample is checked; enough to
// smooth out the first run's cold parser-pool allocation.
const benchmarkRuns = 50

// benchmarkSource is a small, fixed sample exercising every extracted
// role (an identifier definition, a comment, and a string literal) with
// one misspelling in each, so --benchmark always has something to both
// time and report on.
const benchmarkSource = `package sample

// calcualte returns the running total for a set of vals.
func calcualte(vals []int) int {
	var totl int
	for _, v := range vals {
		totl += v
	}
	return totl
}

const greeting = "helllo, world"
`

// runBenchmark implements --benchmark (§6): load the built-in default
// configuration and its dictionaries through the same cache and search
// paths "serve" uses (no project or global config, no supplemental
// words), then run the
// pipeline against a fixed sample a fixed number of times and report
// both the timing and the findings, the way the teacher project's own
// CLI printed a report after a one-shot run.
func runBenchmark(cmd *cobra.Command) error {
	log := newLogger()
	ctx := cmd.Context()

	cfg := config.Defaults()
	eff, err := config.Build(cfg, func(pattern string, err error) {
		log.Warn("skipping invalid ignore_patterns entry", "pattern", pattern, "error", err)
	})
	if err != nil {
		return oops.Code("STARTUP_FAILED").With("operation", "build benchmark configuration").Wrap(err)
	}

	if err := xdg.EnsureDir(xdg.CacheDir()); err != nil {
		return oops.Code("STARTUP_FAILED").With("operation", "prepare cache directory").Wrap(err)
	}
	dictCache, err := cache.Open(xdg.CacheDir(), cache.NewHTTPFetcher(), log)
	if err != nil {
		return oops.Code("STARTUP_FAILED").With("operation", "open dictionary cache").Wrap(err)
	}

	dicts, loadErrs := dictionary.Load(ctx, cfg.Dictionaries, dictionarySearchPaths(), nil, dictCache)
	for _, e := range loadErrs {
		log.Warn("dictionary load failed", "error", e)
	}

	registry := langregistry.NewDefault()
	pipe := pipeline.New(registry)

	locations, elapsed, err := runFixedBenchmark(ctx, pipe, eff, dicts)
	if err != nil {
		return oops.Code("BENCHMARK_FAILED").Wrap(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d runs over %d bytes in %s (%s/run)\n",
		benchmarkRuns, len(benchmarkSource), elapsed, elapsed/benchmarkRuns)

	findings := []report.Finding{{Path: "sample.go", Source: []byte(benchmarkSource), Locations: locations}}
	report.Print(out, findings, dicts, cfg.MakeSuggestions != config.SuggestNever)
	fmt.Fprintln(out, report.Summary(findings))
	return nil
}

func runFixedBenchmark(ctx context.Context, pipe *pipeline.Pipeline, eff *config.Effective, dicts *dictionary.Set) (locations []wordspan.WordLocation, elapsed time.Duration, err error) {
	start := time.Now()
	for i := 0; i < benchmarkRuns; i++ {
		locations, err = pipe.Check(ctx, []byte(benchmarkSource), "go", "sample.go", eff, dicts)
		if err != nil {
			return nil, 0, err
		}
	}
	return locations, time.Since(start), nil
}
