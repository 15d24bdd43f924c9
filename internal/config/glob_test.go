// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathFilterMatchesNestedGlob(t *testing.T) {
	pf, err := NewPathFilter([]string{"vendor/**"})
	require.NoError(t, err)

	assert.True(t, pf.Ignored("vendor/pkg/file.go"))
	assert.False(t, pf.Ignored("internal/pkg/file.go"))
}

func TestPathFilterNilIsNeverIgnored(t *testing.T) {
	var pf *PathFilter
	assert.False(t, pf.Ignored("anything.go"))
}

func TestPathFilterRejectsInvalidPattern(t *testing.T) {
	_, err := NewPathFilter([]string{"[unterminated"})
	assert.Error(t, err)
}
