// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lspadapter

import (
	"context"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/codebook-lsp/codebook/internal/wordspan"
)

// runCheck kicks off (on the worker pool) a pipeline check for uri at
// its current revision, cancelling any previous in-flight check for the
// same document first, and publishes diagnostics if the result is still
// current when it completes (§5 ordering guarantee).
func (a *Adapter) runCheck(lspCtx *glsp.Context, uri string) {
	doc, rev, ok := a.docs.Get(uri)
	if !ok {
		return
	}

	a.cancelInFlight(uri)

	ctx, cancel := context.WithCancel(context.Background())
	a.mu.Lock()
	a.cancels[uri] = cancel
	a.mu.Unlock()

	go func() {
		defer cancel()

		cfg := a.cfg.Load()
		dicts := a.dicts.Load()

		var locations []wordspan.WordLocation
		err := a.pool.Run(ctx, func(ctx context.Context) error {
			var runErr error
			locations, runErr = a.pipeline.Check(ctx, []byte(doc.text), doc.languageID, uriToPath(uri), cfg, dicts)
			return runErr
		})
		if err != nil {
			return
		}
		if a.docs.Stale(uri, rev) {
			return
		}

		lspCtx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentUri(uri),
			Diagnostics: toDiagnostics(locations, doc.text, a.severity()),
		})
	}()
}

func (a *Adapter) severity() protocol.DiagnosticSeverity {
	switch a.opts.DiagnosticSeverity {
	case "error":
		return protocol.DiagnosticSeverityError
	case "warning":
		return protocol.DiagnosticSeverityWarning
	case "hint":
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityInformation
	}
}

// toDiagnostics converts every occurrence in locations into one LSP
// Diagnostic, computing UTF-16 line/column positions the way the LSP
// spec requires.
func toDiagnostics(locations []wordspan.WordLocation, text string, severity protocol.DiagnosticSeverity) []protocol.Diagnostic {
	idx := newLineIndex(text)
	var diags []protocol.Diagnostic
	sev := severity
	for _, wl := range locations {
		for _, loc := range wl.Locations {
			start := idx.position(loc.Range.Start)
			end := idx.position(loc.Range.End)
			diags = append(diags, protocol.Diagnostic{
				Range: protocol.Range{
					Start: protocol.Position{Line: uint32(start.line), Character: uint32(start.col)},
					End:   protocol.Position{Line: uint32(end.line), Character: uint32(end.col)},
				},
				Severity: &sev,
				Source:   strPtr(sourceName),
				Message:  wl.Word + " is misspelled",
				Code:     &protocol.IntegerOrString{Value: wl.Lower},
			})
		}
	}
	return diags
}

func strPtr(s string) *string { return &s }
