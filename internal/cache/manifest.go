// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache implements the dictionary downloader/cache manifest
// (component I, added in SPEC_FULL): resolving a dictionary id to a
// local .aff/.dic pair, downloading and verifying it against a
// persisted JSON manifest when it is not already cached.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Entry records one cached file: where it lives on disk, its content
// hash (checked on every read so a truncated or tampered download is
// detected rather than silently fed to hunspell), and when it was
// fetched.
type Entry struct {
	Path      string    `json:"path"`
	SHA256    string    `json:"sha256"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Manifest maps a source URL to the Entry describing its cached copy.
// It is persisted as JSON beside the cached files and validated on
// every read (§3 CacheManifest, §7 IoError disposition: a corrupt
// manifest is treated as empty rather than fatal; Load does not log it).
type Manifest struct {
	Entries map[string]Entry `json:"entries"`

	path string
}

// Load reads the manifest at path, returning an empty Manifest (not an
// error) if the file does not exist or fails to parse; a corrupt
// manifest is non-fatal per the IoError disposition.
func Load(path string) (*Manifest, error) {
	m := &Manifest{Entries: make(map[string]Entry), path: path}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return m, err
	}
	var onDisk Manifest
	if err := json.Unmarshal(b, &onDisk); err != nil {
		// Corrupt manifest: drop it and start fresh rather than fail.
		return m, nil
	}
	for url, e := range onDisk.Entries {
		if validEntry(e) {
			m.Entries[url] = e
		}
	}
	return m, nil
}

func validEntry(e Entry) bool {
	if e.Path == "" || e.SHA256 == "" {
		return false
	}
	if _, err := os.Stat(e.Path); err != nil {
		return false
	}
	return true
}

// Verify reports whether the file at e.Path's content still matches its
// recorded hash.
func (e Entry) Verify() bool {
	f, err := os.Open(e.Path)
	if err != nil {
		return false
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return false
	}
	return hex.EncodeToString(h.Sum(nil)) == e.SHA256
}

// Put records a new entry and writes the manifest through to disk via
// an atomic rename, so a crash mid-write never leaves a half-written
// manifest for the next Load to choke on.
func (m *Manifest) Put(url string, entry Entry) error {
	m.Entries[url] = entry
	return m.save()
}

func (m *Manifest) save() error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".manifest-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), m.path)
}

// MarshalJSON excludes the unexported path field by delegating to a
// plain alias type.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	type alias struct {
		Entries map[string]Entry `json:"entries"`
	}
	return json.Marshal(alias{Entries: m.Entries})
}
