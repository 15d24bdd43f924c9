// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dictionary

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/google/licensecheck"

	"github.com/codebook-lsp/codebook/internal/splitter"
	"github.com/codebook-lsp/codebook/internal/wordspan"
)

// licenseCandidates lists the file names LicenseWords considers,
// carried over verbatim from the teacher's own license-file allow-list.
var licenseCandidates = []string{
	"COPYING",
	"LICENCE",
	"LICENSE",
	"LICENSE-2.0",
	"LICENCE-2.0",
	"LICENSE-APACHE",
	"LICENCE-APACHE",
	"LICENSE-APACHE-2.0",
	"LICENCE-APACHE-2.0",
	"LICENSE-MIT",
	"LICENCE-MIT",
	"MIT-LICENSE",
	"MIT-LICENCE",
	"MIT_LICENSE",
	"MIT_LICENCE",
	"UNLICENSE",
	"UNLICENCE",
}

// licenseSplitter has no minimum fragment length: license boilerplate
// is expected to seed even very short terms of art.
var licenseSplitter = splitter.New()

// LicenseWords walks root looking for files named like a well-known
// open-source license, and returns the words found in any file whose
// content licensecheck identifies as a real license with at least
// thresh confidence, so that defining terms like "Sublicense" or
// "Noninfringement" aren't flagged project-wide. This mirrors the
// teacher's own readLicenses, generalized from a single affix-expanded
// hunspell.Spell target to a plain word list the caller folds into
// whichever dictionaries are active.
func LicenseWords(root string, thresh float64) ([]string, error) {
	candidates := make(map[string]bool, len(licenseCandidates))
	for _, c := range licenseCandidates {
		candidates[strings.ToLower(c)] = true
	}

	var words []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
		if !candidates[strings.ToLower(name)] {
			return nil
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if licensecheck.Scan(b).Percent < thresh {
			return nil
		}
		for _, w := range licenseSplitter.Split(string(b), 0, wordspan.RoleComment) {
			words = append(words, quietly(w.Text))
		}
		return nil
	})
	return words, err
}

// quietly lower-cases a word if every rune in it is upper case, the way
// the teacher avoids seeding the dictionary with shout-cased noise from
// license headers ("THE SOFTWARE IS PROVIDED ...").
func quietly(s string) string {
	for _, r := range s {
		if !unicode.IsUpper(r) {
			return s
		}
	}
	return strings.ToLower(s)
}
