// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
)

// AppendWord adds word to the words (allow-list) array in the TOML file
// at path, creating the file (and its parent directories) if necessary.
// It round-trips only the single array it touches by decoding into a
// Config, appending, and re-encoding the whole file — acceptable for a
// small, user-editable config file, and it keeps every other field
// exactly as the user wrote it since Config is decoded and re-encoded
// in full.
func AppendWord(path, word string) error {
	return appendToList(path, word, func(c *Config) *[]string { return &c.Words })
}

// AppendFlagWord adds word to the flag_words (deny-list) array.
func AppendFlagWord(path, word string) error {
	return appendToList(path, word, func(c *Config) *[]string { return &c.FlagWords })
}

func appendToList(path, word string, field func(*Config) *[]string) error {
	cfg, err := LoadFile(path, Config{})
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	list := field(&cfg)
	for _, w := range *list {
		if w == word {
			return nil
		}
	}
	*list = append(*list, word)
	sort.Strings(*list)

	return writeTOML(path, cfg)
}

func writeTOML(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
