// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Fetcher retrieves the bytes of a dictionary file named by url. The
// production implementation is httpFetcher; tests substitute a fake
// that never touches the network.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}

// httpFetcher fetches over plain HTTP(S) using the default client.
type httpFetcher struct {
	client *http.Client
}

// NewHTTPFetcher returns a Fetcher backed by http.DefaultClient.
func NewHTTPFetcher() Fetcher {
	return &httpFetcher{client: http.DefaultClient}
}

func (f *httpFetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}
	return resp.Body, nil
}

// downloadTo streams src's content into a new file at dst, returning
// the file's SHA256 hex digest.
func downloadTo(dst string, src io.Reader) (string, error) {
	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(f, io.TeeReader(src, h)); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
