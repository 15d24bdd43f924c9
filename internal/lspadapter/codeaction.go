// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lspadapter

import (
	"fmt"
	"path/filepath"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/codebook-lsp/codebook/internal/config"
)

// Command names advertised via ExecuteCommandProvider (§4.H) and
// referenced by the code actions below.
const (
	cmdAddWord     = "codebook.addWord"
	cmdAddFlagWord = "codebook.addFlagWord"
)

// codeAction offers, for each diagnostic authored by this server at the
// request range, a quick-fix per dictionary suggestion plus the three
// standing actions named in §4.H: "Add to project dictionary", "Add to
// global dictionary", and "Add to flag words".
func (a *Adapter) codeAction(ctx *glsp.Context, params *protocol.CodeActionParams) (any, error) {
	var actions []protocol.CodeAction

	for _, d := range params.Context.Diagnostics {
		if d.Source == nil || *d.Source != sourceName {
			continue
		}
		word, _ := d.Code.Value.(string)
		if word == "" {
			continue
		}

		dicts := a.dicts.Load()
		for _, s := range dicts.Suggest(word) {
			actions = append(actions, quickFix(params.TextDocument.URI, d, s))
		}

		actions = append(actions,
			addWordAction(params.TextDocument.URI, word, "Add to project dictionary", false),
			addWordAction(params.TextDocument.URI, word, "Add to global dictionary", true),
			flagWordAction(params.TextDocument.URI, word),
		)
	}
	return actions, nil
}

func quickFix(uri protocol.DocumentUri, d protocol.Diagnostic, replacement string) protocol.CodeAction {
	kind := protocol.CodeActionKindQuickFix
	edit := protocol.WorkspaceEdit{
		Changes: map[protocol.DocumentUri][]protocol.TextEdit{
			uri: {{Range: d.Range, NewText: replacement}},
		},
	}
	diags := []protocol.Diagnostic{d}
	return protocol.CodeAction{
		Title:       fmt.Sprintf("Replace with %q", replacement),
		Kind:        &kind,
		Diagnostics: diags,
		Edit:        &edit,
	}
}

// addWordAction and flagWordAction describe a code action whose effect
// is carried out by executeCommand (registered via ExecuteCommandProvider
// below) rather than a WorkspaceEdit, since the target file (project or
// global config) is usually not the open document and may not exist yet.
func addWordAction(uri protocol.DocumentUri, word, title string, global bool) protocol.CodeAction {
	kind := protocol.CodeActionKindQuickFix
	return protocol.CodeAction{
		Title: fmt.Sprintf("%s (%q)", title, word),
		Kind:  &kind,
		Command: &protocol.Command{
			Title:     title,
			Command:   cmdAddWord,
			Arguments: []any{string(uri), word, global},
		},
	}
}

func flagWordAction(uri protocol.DocumentUri, word string) protocol.CodeAction {
	kind := protocol.CodeActionKindQuickFix
	return protocol.CodeAction{
		Title: fmt.Sprintf("Add to flag words (%q)", word),
		Kind:  &kind,
		Command: &protocol.Command{
			Title:     "Add to flag words",
			Command:   cmdAddFlagWord,
			Arguments: []any{string(uri), word},
		},
	}
}

// executeCommand implements workspace/executeCommand for the two
// commands codeAction advertises (§4.H). Both append a word to a TOML
// config file and then reload the config snapshot so the effect is
// visible on the next check without waiting for an external file watch.
func (a *Adapter) executeCommand(ctx *glsp.Context, params *protocol.ExecuteCommandParams) (any, error) {
	switch params.Command {
	case cmdAddWord:
		return nil, a.runAddWord(params.Arguments)
	case cmdAddFlagWord:
		return nil, a.runAddFlagWord(params.Arguments)
	default:
		return nil, fmt.Errorf("codebook: unknown command %q", params.Command)
	}
}

func (a *Adapter) runAddWord(args []any) error {
	uri, word, global, ok := addWordArgs(args)
	if !ok {
		return fmt.Errorf("codebook.addWord: unexpected arguments %v", args)
	}
	path := a.configTarget(uri, global)
	if err := config.AppendWord(path, word); err != nil {
		return fmt.Errorf("adding %q to %s: %w", word, path, err)
	}
	a.reloadConfig()
	return nil
}

func (a *Adapter) runAddFlagWord(args []any) error {
	uri, word, ok := flagWordArgs(args)
	if !ok {
		return fmt.Errorf("codebook.addFlagWord: unexpected arguments %v", args)
	}
	path := a.configTarget(uri, false)
	if err := config.AppendFlagWord(path, word); err != nil {
		return fmt.Errorf("flagging %q in %s: %w", word, path, err)
	}
	a.reloadConfig()
	return nil
}

// configTarget resolves the TOML file an add-word command should edit:
// the global config path when global is true, otherwise the project
// config file nearest uri's directory, falling back to a new file named
// after the first recognized project filename if none exists yet.
func (a *Adapter) configTarget(uri string, global bool) string {
	if global {
		return a.opts.GlobalConfigPath
	}
	dir := filepath.Dir(uriToPath(uri))
	if p := config.FindProjectFile(dir); p != "" {
		return p
	}
	return filepath.Join(dir, config.ProjectFileNames[0])
}

func addWordArgs(args []any) (uri, word string, global bool, ok bool) {
	if len(args) != 3 {
		return "", "", false, false
	}
	uri, uok := args[0].(string)
	word, wok := args[1].(string)
	global, gok := args[2].(bool)
	return uri, word, global, uok && wok && gok
}

func flagWordArgs(args []any) (uri, word string, ok bool) {
	if len(args) != 2 {
		return "", "", false
	}
	uri, uok := args[0].(string)
	word, wok := args[1].(string)
	return uri, word, uok && wok
}
