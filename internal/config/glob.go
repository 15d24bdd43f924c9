// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"

	"github.com/gobwas/glob"
)

// PathFilter tests a file path against the ignore_paths glob list.
type PathFilter struct {
	globs []glob.Glob
}

// NewPathFilter compiles patterns using '/' as the glob separator so
// that "**" behaves as a recursive wildcard across path components.
func NewPathFilter(patterns []string) (*PathFilter, error) {
	pf := &PathFilter{globs: make([]glob.Glob, 0, len(patterns))}
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore_paths pattern %q: %w", p, err)
		}
		pf.globs = append(pf.globs, g)
	}
	return pf, nil
}

// Ignored reports whether path matches any configured glob.
func (pf *PathFilter) Ignored(path string) bool {
	if pf == nil {
		return false
	}
	for _, g := range pf.globs {
		if g.Match(path) {
			return true
		}
	}
	return false
}
