// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Cache resolves a dictionary URL to a local file path, downloading and
// recording it in the manifest on first use. A Cache is not safe for
// concurrent use: Resolve updates the manifest's entry map without
// locking. Each save replaces the manifest file by atomic rename.
type Cache struct {
	dir      string
	manifest *Manifest
	fetcher  Fetcher
	log      *slog.Logger
}

// Open loads (or creates) the manifest at dir/manifest.json, using dir
// to store downloaded files.
func Open(dir string, fetcher Fetcher, log *slog.Logger) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	m, err := Load(filepath.Join(dir, "manifest.json"))
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	return &Cache{dir: dir, manifest: m, fetcher: fetcher, log: log}, nil
}

// Resolve returns the local path of the dictionary fetched from url,
// downloading it if it is not already cached or if its cached copy
// fails its hash check.
func (c *Cache) Resolve(ctx context.Context, url string) (string, error) {
	if e, ok := c.manifest.Entries[url]; ok {
		if e.Verify() {
			return e.Path, nil
		}
		c.log.Warn("cached dictionary failed verification, refetching", "url", url)
	}

	body, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer body.Close()

	dst := filepath.Join(c.dir, sanitize(url))
	sum, err := downloadTo(dst, body)
	if err != nil {
		return "", fmt.Errorf("caching %s: %w", url, err)
	}

	entry := Entry{Path: dst, SHA256: sum, FetchedAt: time.Now()}
	if err := c.manifest.Put(url, entry); err != nil {
		c.log.Warn("failed to persist cache manifest", "error", err)
	}
	return dst, nil
}

// Clean removes every cached file and the manifest itself, for the
// "clean" CLI subcommand (§6).
func Clean(dir string) error {
	return os.RemoveAll(dir)
}

func sanitize(url string) string {
	b := []byte(url)
	for i, c := range b {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		default:
			b[i] = '_'
		}
	}
	return string(b)
}
