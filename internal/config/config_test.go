// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeUnionsListFieldsByDefault(t *testing.T) {
	global := Config{UseGlobal: true, Words: []string{"foo"}, Dictionaries: []string{"en_US"}}
	project := Config{UseGlobal: true, Words: []string{"bar"}, Dictionaries: []string{"en_US"}}

	merged := Merge(global, project)
	assert.ElementsMatch(t, []string{"foo", "bar"}, merged.Words)
	assert.ElementsMatch(t, []string{"en_US"}, merged.Dictionaries)
}

func TestMergeDropsGlobalWhenUseGlobalFalse(t *testing.T) {
	global := Config{UseGlobal: true, Words: []string{"foo"}}
	project := Config{UseGlobal: false, Words: []string{"bar"}}

	merged := Merge(global, project)
	assert.Equal(t, []string{"bar"}, merged.Words)
}

func TestMergeProjectScalarOverridesGlobal(t *testing.T) {
	global := Config{UseGlobal: true, MinWordLength: 2, Severity: "error"}
	project := Config{UseGlobal: true, MinWordLength: 5, Severity: "warning"}

	merged := Merge(global, project)
	assert.Equal(t, 5, merged.MinWordLength)
	assert.Equal(t, "warning", merged.Severity)
}

func TestBuildAllowAndDenyListsAreDisjoint(t *testing.T) {
	cfg := Defaults()
	cfg.Words = []string{"Zzxxyy", "shared"}
	cfg.FlagWords = []string{"SHARED", "badword"}

	eff, err := Build(cfg, nil)
	require.NoError(t, err)

	// "shared" is on both lists; deny must win, so it's dropped from
	// allow and stays on deny.
	assert.False(t, eff.IsAllowed("shared"))
	assert.True(t, eff.IsDenied("shared"))

	assert.True(t, eff.IsAllowed("zzxxyy"))
	assert.True(t, eff.IsDenied("badword"))
}

func TestBuildReportsBadRegexButStillBuilds(t *testing.T) {
	cfg := Defaults()
	cfg.IgnorePatterns = []string{`(unclosed`, `SECRET-\d+`}

	var bad []string
	eff, err := Build(cfg, func(pattern string, err error) {
		bad = append(bad, pattern)
	})
	require.NoError(t, err)
	require.NotNil(t, eff)
	assert.Equal(t, []string{`(unclosed`}, bad)
}
