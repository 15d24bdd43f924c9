// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Global flags shared by every subcommand (§6).
var (
	rootFlag      string
	logLevelFlag  string
	benchmarkFlag bool
)

// NewRootCmd builds the codebook command tree: "serve" runs the
// language server, "clean" clears the on-disk dictionary cache, in the
// style of holomush's NewRootCmd/newXCmd split for its own cobra tree.
// --benchmark runs a fixed self-benchmark instead of dispatching to a
// subcommand, since §6 lists it alongside serve/clean as a root-level
// option rather than as its own verb.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codebook",
		Short: "A code-aware spell-checking language server",
		Long: `codebook analyzes source files across many programming languages and
surfaces misspelled words the author actually controls: identifiers at
their definition site, comments, and string literals. It ignores
keywords, imported symbols, and non-linguistic tokens such as URLs,
hex colors, and UUIDs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if benchmarkFlag {
				return runBenchmark(cmd)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&rootFlag, "root", "", "workspace root hint (defaults to the working directory)")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn, error (overridden by the logLevel LSP init option)")
	cmd.Flags().BoolVar(&benchmarkFlag, "benchmark", false, "run a fixed self-benchmark and print its timing and findings")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newCleanCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// newLogger builds the process-wide structured logger, writing to
// stderr so stdout stays clear for the LSP wire protocol (§6). Level
// resolution follows the RUST_LOG-style env var named in §6, with the
// --log-level flag and, once the server is initialized, the LSP
// client's logLevel init option (§4.H) each taking precedence over it
// in turn.
func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(effectiveLogLevel("")),
	}))
}

// effectiveLogLevel resolves the log level from, in priority order: an
// explicit override (e.g. the LSP logLevel init option once the server
// is running), the --log-level flag, then the CODEBOOK_LOG environment
// variable.
func effectiveLogLevel(override string) string {
	for _, v := range []string{override, logLevelFlag, os.Getenv("CODEBOOK_LOG")} {
		if v != "" {
			return v
		}
	}
	return "info"
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
