// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/codebook-lsp/codebook/internal/cache"
	"github.com/codebook-lsp/codebook/internal/config"
	"github.com/codebook-lsp/codebook/internal/dictionary"
	"github.com/codebook-lsp/codebook/internal/langregistry"
	"github.com/codebook-lsp/codebook/internal/lspadapter"
	"github.com/codebook-lsp/codebook/internal/pipeline"
	"github.com/codebook-lsp/codebook/internal/xdg"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the spell-checking language server over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	return cmd
}

// runServe loads the merged global/project configuration, builds the
// dictionary engine and pipeline, and blocks serving LSP requests over
// stdio until the client disconnects or ctx is cancelled, mirroring the
// teacher project's single-shot main but wired for a long-lived server
// instead of a one-pass linter run.
func runServe(ctx context.Context) error {
	log := newLogger()

	root := rootFlag
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return oops.Code("STARTUP_FAILED").With("operation", "resolve working directory").Wrap(err)
		}
		root = wd
	}

	globalPath := xdg.GlobalConfigFile()
	global, err := config.LoadFile(globalPath, config.Defaults())
	if err != nil {
		log.Warn("malformed global config, falling back to defaults", "path", globalPath, "error", err)
		global = config.Defaults()
	}

	projectPath := config.FindProjectFile(root)
	project, err := config.LoadFile(projectPath, config.Defaults())
	if err != nil {
		log.Warn("malformed project config, falling back to defaults", "path", projectPath, "error", err)
		project = config.Defaults()
	}

	merged := config.Merge(global, project)

	eff, err := config.Build(merged, func(pattern string, err error) {
		log.Warn("skipping invalid ignore_patterns entry", "pattern", pattern, "error", err)
	})
	if err != nil {
		return oops.Code("CONFIG_INVALID").With("operation", "build effective configuration").Wrap(err)
	}

	if err := xdg.EnsureDir(xdg.CacheDir()); err != nil {
		return oops.Code("STARTUP_FAILED").With("operation", "prepare cache directory").Wrap(err)
	}
	dictCache, err := cache.Open(xdg.CacheDir(), cache.NewHTTPFetcher(), log)
	if err != nil {
		return oops.Code("STARTUP_FAILED").With("operation", "open dictionary cache").Wrap(err)
	}

	extraWords := collectExtraWords(root, merged, log)

	dicts, loadErrs := dictionary.Load(ctx, merged.Dictionaries, dictionarySearchPaths(), extraWords, dictCache)
	for _, e := range loadErrs {
		log.Warn("dictionary load failed", "error", e)
	}

	registry := langregistry.NewDefault()
	pipe := pipeline.New(registry)

	cfgSnap := config.NewSnapshot(eff)
	dictSnap := dictionary.NewSnapshot(dicts)

	opts := lspadapter.Options{
		LogLevel:           logLevelFlag,
		GlobalConfigPath:   globalPath,
		CheckWhileTyping:   true,
		DiagnosticSeverity: merged.Severity,
	}

	adapter := lspadapter.New(pipe, cfgSnap, dictSnap, opts, log, root)
	return lspadapter.Serve(adapter)
}

// collectExtraWords gathers the supplemental vocabulary layered on top
// of every loaded dictionary: each supported language's builtin jargon
// list, plus, unless disabled, words harvested from the project's
// license text and recent git log (§4.A, §4.G).
func collectExtraWords(root string, cfg config.Config, log *slog.Logger) []string {
	var words []string
	for _, d := range langregistry.Builtin {
		words = append(words, dictionary.WordsFor(d.DictionaryHint)...)
	}

	if cfg.ReadLicenses {
		lw, err := dictionary.LicenseWords(root, 0.9)
		if err != nil {
			log.Warn("license word harvest failed", "error", err)
		} else {
			words = append(words, lw...)
		}
	}

	if cfg.ReadGitLog {
		words = append(words, dictionary.GitLogWords(root)...)
	}

	return words
}

// dictionarySearchPaths returns the filepath.ListSeparator-joined set of
// directories Load searches before falling back to the network
// resolver: the downloaded-dictionary cache, $DICPATH if set, and the
// common system hunspell locations the teacher project itself relies
// on via hunspell.Paths.
func dictionarySearchPaths() string {
	paths := []string{xdg.CacheDir()}
	if dicpath := os.Getenv("DICPATH"); dicpath != "" {
		paths = append(paths, dicpath)
	}
	paths = append(paths,
		"/usr/share/hunspell",
		"/usr/share/myspell/dicts",
		filepath.Join("~", ".config", "codebook", "dictionaries"),
	)
	return strings.Join(paths, string(filepath.ListSeparator))
}
