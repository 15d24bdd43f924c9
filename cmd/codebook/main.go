// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The codebook command runs the code-aware spell-checking language
// server described by the core pipeline in internal/pipeline, wiring
// the config, dictionary, cache and LSP adapter packages together
// behind the "serve" and "clean" subcommands (§6). It replaces the
// teacher project's single flag-parsed entry point with a cobra command
// tree, since this project exposes more than one operation.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/oops"
)

// Exit status codes (§6: "0 normal, non-zero for startup failures"),
// kept as a bit-flagged block in the teacher's own style even though
// only two are currently distinguished.
const (
	success      = 0
	startupError = 1 << iota
	invocationError
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := NewRootCmd()
	cmd.SilenceUsage = true
	if err := cmd.ExecuteContext(ctx); err != nil {
		logStartupError(err)
		return startupError
	}
	return success
}

// logStartupError reports a command failure with its oops code and
// context fields when available, since most startup failures (serve's
// config/cache/dictionary bootstrap) are wrapped with oops.Code, and
// falls back to a plain message for everything else, such as cobra's
// own invocation errors.
func logStartupError(err error) {
	log := newLogger()
	if oopsErr, ok := oops.AsOops(err); ok {
		attrs := []any{"error", oopsErr.Error()}
		if code := oopsErr.Code(); code != nil {
			attrs = append(attrs, "code", code)
		}
		if ctx := oopsErr.Context(); len(ctx) > 0 {
			attrs = append(attrs, "context", ctx)
		}
		log.Error("codebook failed to start", attrs...)
		return
	}
	log.Error("codebook failed to start", "error", err)
}
