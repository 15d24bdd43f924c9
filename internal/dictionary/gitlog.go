// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dictionary

import (
	"bytes"
	"os/exec"

	"github.com/codebook-lsp/codebook/internal/splitter"
	"github.com/codebook-lsp/codebook/internal/wordspan"
)

// GitLogWords runs "git log" in root and returns the words of every
// author name and email address in its history (duplicates included;
// an address's domain parts are returned too), so that a
// contributor's name isn't flagged as a misspelling in every file they
// touch. Grounded on the teacher's own readGitLog; the teacher shells
// out via golang.org/x/sys/execabs to avoid PATH-based executable
// hijacking on Windows, a dependency this project otherwise has no use
// for elsewhere, so the same protection is achieved here with the
// standard library's os/exec.LookPath check instead (see DESIGN.md).
// A missing git binary or a non-repository root is not an error: it
// simply yields no words.
func GitLogWords(root string) []string {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return nil
	}
	cmd := exec.Command(gitPath, "log", "--format=%an %ae")
	cmd.Dir = root
	var buf bytes.Buffer
	cmd.Stdout = &buf
	if err := cmd.Run(); err != nil {
		return nil
	}

	var words []string
	for _, w := range gitLogSplitter.Split(buf.String(), 0, wordspan.RolePlainText) {
		words = append(words, w.Text)
	}
	return words
}

var gitLogSplitter = splitter.New()
