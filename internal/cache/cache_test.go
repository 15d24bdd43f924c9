// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	calls   int
	content string
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	f.calls++
	return io.NopCloser(strings.NewReader(f.content)), nil
}

func TestResolveDownloadsOnceAndCaches(t *testing.T) {
	dir := t.TempDir()
	fetcher := &fakeFetcher{content: "hunspell dictionary bytes"}
	c, err := Open(dir, fetcher, nil)
	require.NoError(t, err)

	p1, err := c.Resolve(context.Background(), "https://example.com/en_US.dic")
	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.calls)

	p2, err := c.Resolve(context.Background(), "https://example.com/en_US.dic")
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
	assert.Equal(t, 1, fetcher.calls, "second Resolve should hit the cache, not refetch")
}

func TestResolveRefetchesOnCorruption(t *testing.T) {
	dir := t.TempDir()
	fetcher := &fakeFetcher{content: "original"}
	c, err := Open(dir, fetcher, nil)
	require.NoError(t, err)

	p, err := c.Resolve(context.Background(), "https://example.com/en_US.dic")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(p, []byte("tampered"), 0o600))

	_, err = c.Resolve(context.Background(), "https://example.com/en_US.dic")
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.calls)
}

func TestCleanRemovesCacheDir(t *testing.T) {
	dir := t.TempDir()
	fetcher := &fakeFetcher{content: "x"}
	c, err := Open(dir, fetcher, nil)
	require.NoError(t, err)
	_, err = c.Resolve(context.Background(), "https://example.com/en_US.dic")
	require.NoError(t, err)

	require.NoError(t, Clean(dir))
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}
