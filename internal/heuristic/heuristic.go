// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heuristic holds small, independent acceptability tests applied
// to a word before it is looked up in a dictionary. They let the pipeline
// avoid flagging things that are not, linguistically, words at all:
// numbers, hex digests, acronyms, quantities with units, and so on.
package heuristic

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Heuristic reports whether a word should be treated as correctly
// spelled without consulting a dictionary. If partial is true, word is a
// fragment produced by splitting a larger identifier.
type Heuristic interface {
	Acceptable(word string, partial bool) bool
}

// Set is an ordered collection of heuristics; a word is acceptable if any
// member accepts it.
type Set []Heuristic

// Acceptable reports whether any heuristic in s accepts word.
func (s Set) Acceptable(word string, partial bool) bool {
	for _, h := range s {
		if h.Acceptable(word, partial) {
			return true
		}
	}
	return false
}

// MaxLen rejects words longer than Max bytes from consideration (treats
// them as acceptable, i.e. not worth flagging). Max of zero disables it.
type MaxLen struct{ Max int }

func (h MaxLen) Acceptable(word string, _ bool) bool {
	return h.Max > 0 && len(word) > h.Max
}

// AllUpper accepts all-uppercase words, a common shape for initialisms
// and acronyms. Digits and underscores count as uppercase for this test,
// and a trailing 's' is tolerated to allow plurals of acronyms.
type AllUpper struct{}

func (AllUpper) Acceptable(word string, _ bool) bool {
	word = strings.TrimSuffix(word, "s")
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsUpper(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// Single accepts single-rune words.
type Single struct{}

func (Single) Acceptable(word string, _ bool) bool {
	return utf8.RuneCountInString(word) == 1
}

// NakedHex accepts words that are entirely hex digits, provided they are
// at least MinLen bytes long. Shorter strings are left to the dictionary
// since short hex-looking words are frequently real misspellings.
type NakedHex struct{ MinLen int }

func (h NakedHex) Acceptable(word string, _ bool) bool {
	return h.MinLen != 0 && len(word) >= h.MinLen && isHex(word)
}

// Numeric accepts decimal, hexadecimal (0x-prefixed), octal (0o-prefixed)
// and binary (0b-prefixed) numeric literals, with an optional sign,
// decimal point, and exponent, in the style common to C-family languages.
type Numeric struct{}

func (Numeric) Acceptable(word string, _ bool) bool {
	return isNumber(word)
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	t := s
	if t[0] == '+' || t[0] == '-' {
		t = t[1:]
	}
	if t == "" {
		return false
	}
	if len(t) > 2 && t[0] == '0' && (t[1] == 'x' || t[1] == 'X') {
		return isHex(t[2:]) && t[2:] != ""
	}
	if len(t) > 2 && t[0] == '0' && (t[1] == 'o' || t[1] == 'O') {
		return isOctal(t[2:]) && t[2:] != ""
	}
	if len(t) > 2 && t[0] == '0' && (t[1] == 'b' || t[1] == 'B') {
		return isBinary(t[2:]) && t[2:] != ""
	}
	_, err := strconv.ParseFloat(strings.TrimSuffix(t, "f"), 64)
	return err == nil
}

func isOctal(s string) bool {
	for _, b := range s {
		if b < '0' || '7' < b {
			return false
		}
	}
	return true
}

func isBinary(s string) bool {
	for _, b := range s {
		if b != '0' && b != '1' {
			return false
		}
	}
	return true
}

// EscapeSequence accepts C-family backslash escape sequences that leak
// into a split fragment: \xNN, \uNNNN, \UNNNNNNNN and \NNN octal escapes.
type EscapeSequence struct{}

func (EscapeSequence) Acceptable(word string, _ bool) bool {
	if len(word) < 4 || word[0] != '\\' {
		return false
	}
	switch word[1] {
	case 'x':
		return len(word) == 4 && isHex(word[2:4])
	case 'u':
		return len(word) == 6 && isHex(word[2:6])
	case 'U':
		return len(word) == 10 && isHex(word[2:10])
	default:
		if len(word) != 4 {
			return false
		}
		return isOctal(word[1:])
	}
}

// Unit accepts quantities with a recognized unit suffix, e.g. "64KB" or
// "200ms". Naked units without a numeric prefix are left to the
// dictionary. Unit is never applied to partial (split) fragments, since a
// unit suffix only makes sense directly adjacent to its magnitude.
type Unit struct{}

func (Unit) Acceptable(word string, partial bool) bool {
	if partial {
		return false
	}
	for _, u := range knownUnits {
		if strings.HasSuffix(word, u) {
			if _, err := strconv.ParseFloat(strings.TrimSuffix(word, u), 64); err == nil {
				return true
			}
		}
	}
	return false
}

var knownUnits = []string{
	"k", "M", "x",
	"Kb", "kb", "Mb", "Gb", "Tb",
	"KB", "kB", "MB", "GB", "TB",
	"Kib", "kib", "Mib", "Gib", "Tib",
	"KiB", "kiB", "MiB", "GiB", "TiB",
	"nm", "um", "mm", "cm", "m", "km",
	"ns", "us", "ms", "s", "min", "hr",
	"Hz", "kHz", "MHz", "GHz",
}

// isHex reports whether every byte of s is a hex digit.
func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, b := range []byte(s) {
		b |= 'a' - 'A' // Lower-case the relevant range.
		if (b < '0' || '9' < b) && (b < 'a' || 'f' < b) {
			return false
		}
	}
	return true
}
