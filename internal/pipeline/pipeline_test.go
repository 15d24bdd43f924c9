// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codebook-lsp/codebook/internal/config"
	"github.com/codebook-lsp/codebook/internal/langregistry"
)

// newTestPipeline builds a Pipeline with no languages registered, so
// every Check call exercises the plain-text fallback path, which needs
// no real tree-sitter grammar to run.
func newTestPipeline() *Pipeline {
	return New(langregistry.New(nil))
}

func buildConfig(t *testing.T, cfg config.Config) *config.Effective {
	t.Helper()
	eff, err := config.Build(cfg, nil)
	require.NoError(t, err)
	return eff
}

func TestCheckEmptySourceYieldsEmptyResult(t *testing.T) {
	p := newTestPipeline()
	cfg := buildConfig(t, config.Defaults())
	got, err := p.Check(context.Background(), nil, "", "", cfg, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCheckRespectsIgnorePaths(t *testing.T) {
	p := newTestPipeline()
	c := config.Defaults()
	c.IgnorePaths = []string{"vendor/**"}
	cfg := buildConfig(t, c)

	got, err := p.Check(context.Background(), []byte("zzxxyy"), "", "vendor/pkg/file.go", cfg, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCheckHonorsAllowAndDenyLists(t *testing.T) {
	p := newTestPipeline()
	c := config.Defaults()
	c.Words = []string{"zzxxyy"}
	c.FlagWords = []string{"badword"}
	cfg := buildConfig(t, c)

	got, err := p.Check(context.Background(), []byte("zzxxyy badword"), "", "", cfg, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "badword", got[0].Lower)
}

func TestCheckSkipsWordsShorterThanMinLength(t *testing.T) {
	p := newTestPipeline()
	c := config.Defaults()
	c.MinWordLength = 5
	cfg := buildConfig(t, c)

	got, err := p.Check(context.Background(), []byte("ab zzxxyyzz"), "", "", cfg, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "zzxxyyzz", got[0].Lower)
}

func TestCheckDeniedWordSurvivesMinLength(t *testing.T) {
	p := newTestPipeline()
	c := config.Defaults()
	c.MinWordLength = 5
	c.FlagWords = []string{"bad"}
	cfg := buildConfig(t, c)

	got, err := p.Check(context.Background(), []byte("bad zzxxyyzz"), "", "", cfg, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "bad", got[0].Lower)
	assert.Equal(t, "zzxxyyzz", got[1].Lower)
}

func TestCheckMasksURLsAndEmails(t *testing.T) {
	p := newTestPipeline()
	cfg := buildConfig(t, config.Defaults())

	src := "see https://zzxxyy.example.com/path or mail zzxxyy@example.com for qqrrssqq"
	got, err := p.Check(context.Background(), []byte(src), "", "", cfg, nil)
	require.NoError(t, err)

	for _, wl := range got {
		assert.NotEqual(t, "zzxxyy", wl.Lower)
	}
	found := false
	for _, wl := range got {
		if wl.Lower == "qqrrssqq" {
			found = true
		}
	}
	assert.True(t, found, "expected the unmasked nonsense word to be flagged")
}

func TestCheckAppliesHeuristics(t *testing.T) {
	p := newTestPipeline()
	cfg := buildConfig(t, config.Defaults())

	// DEADBEEF is masked as a hex run and 192 has no letters, so neither
	// reaches the word checks; ZZXXYY is not in any dictionary but the
	// all-uppercase heuristic accepts it, while the lowercase nonsense
	// word alongside them still gets flagged.
	got, err := p.Check(context.Background(), []byte("DEADBEEF 192 ZZXXYY zzxxyyzz"), "", "", cfg, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "zzxxyyzz", got[0].Lower)
}

func TestCheckSkipsNoteAuthorHandles(t *testing.T) {
	// NoteAuthorWords only ever sees wordspan.RoleComment captures, which
	// the plain-text fallback descriptor never produces, so this exercises
	// the real Go grammar/query pair instead of newTestPipeline's fallback.
	p := New(langregistry.New(langregistry.Builtin))
	cfg := buildConfig(t, config.Defaults())

	src := "package p\n\n// BUG(zzxxyy): fix this qqrrssqq\nfunc f() {}\n"
	got, err := p.Check(context.Background(), []byte(src), "go", "", cfg, nil)
	require.NoError(t, err)
	for _, wl := range got {
		assert.NotEqual(t, "zzxxyy", wl.Lower, "note-author handle should not be flagged")
	}
}
