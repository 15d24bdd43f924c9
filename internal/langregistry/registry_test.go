// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package langregistry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByIDResolvesKnownLanguage(t *testing.T) {
	r := NewDefault()
	d, ok := r.ByID("go")
	require.True(t, ok)
	assert.Equal(t, "go", d.ID)
	assert.Equal(t, "go", d.DictionaryHint)
}

func TestByIDMissesUnknownLanguage(t *testing.T) {
	r := NewDefault()
	_, ok := r.ByID("cobol")
	assert.False(t, ok)
}

func TestByExtensionResolvesKnownExtension(t *testing.T) {
	r := NewDefault()
	d, ok := r.ByExtension(".py")
	require.True(t, ok)
	assert.Equal(t, "python", d.ID)

	d, ok = r.ByExtension(".pyi")
	require.True(t, ok)
	assert.Equal(t, "python", d.ID)
}

func TestByExtensionMissesUnknownExtension(t *testing.T) {
	r := NewDefault()
	_, ok := r.ByExtension(".cobol")
	assert.False(t, ok)
}

func TestDefaultIsPlainTextWithNoLanguage(t *testing.T) {
	d := Default()
	assert.Nil(t, d.Language)
	assert.Equal(t, "plaintext", d.ID)
}

func TestEveryBuiltinDescriptorHasAQueryAndLanguage(t *testing.T) {
	for _, d := range Builtin {
		assert.NotEmpty(t, d.Query, "descriptor %q has no query", d.ID)
		assert.NotNil(t, d.Language, "descriptor %q has no grammar constructor", d.ID)
		assert.NotEmpty(t, d.Extensions, "descriptor %q claims no extensions", d.ID)
	}
}
