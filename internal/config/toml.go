// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ProjectFileNames are searched, in order, at each ancestor directory of
// the file being checked, exactly as the teacher project looks for its
// own ".gospel.conf".
var ProjectFileNames = []string{"codebook.toml", ".codebook.toml"}

// FindProjectFile walks up from dir looking for the nearest project
// config file. It returns "" if none is found before reaching the
// filesystem root.
func FindProjectFile(dir string) string {
	for {
		for _, name := range ProjectFileNames {
			p := filepath.Join(dir, name)
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// LoadFile decodes a TOML config file on top of the supplied base,
// mutating only the fields present in the file. A missing file is not an
// error; it simply returns base unchanged, since both project and global
// config are optional (§6, §7 ConfigParse disposition: malformed TOML is
// reported by the caller and falls back to defaults, the LSP keeps
// running).
func LoadFile(path string, base Config) (Config, error) {
	if path == "" {
		return base, nil
	}
	cfg := base
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return base, nil
		}
		return base, err
	}
	return cfg, nil
}

// Merge combines a global and a project config per the §4.G merge
// policy: project scalar fields override global; list-valued fields are
// unioned unless the project sets use_global=false, in which case the
// global config is dropped entirely and only the project config (layered
// over Defaults) applies.
func Merge(global, project Config) Config {
	if !project.UseGlobal {
		return project
	}

	merged := project
	merged.Dictionaries = union(global.Dictionaries, project.Dictionaries)
	merged.Words = union(global.Words, project.Words)
	merged.FlagWords = union(global.FlagWords, project.FlagWords)
	merged.IgnorePaths = union(global.IgnorePaths, project.IgnorePaths)
	merged.IgnorePatterns = union(global.IgnorePatterns, project.IgnorePatterns)
	return merged
}

func union(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, s := range list {
			if seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
