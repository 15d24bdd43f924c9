// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mask

import (
	"math"
	"unicode"
)

// EntropyFilter rejects string-literal captures whose character
// distribution falls outside the range expected of ordinary prose or
// identifiers, the way the teacher project's experimental entropy filter
// flags embedded binary/base64/token-like data that no regex pattern
// happens to match. It is off by default (see config.EntropyFilter).
type EntropyFilter struct {
	Enabled bool

	// MinLen is the shortest text that will be considered; short strings
	// don't carry enough signal for the entropy estimate to be useful.
	MinLen int

	// AcceptLow and AcceptHigh bound the expected effective alphabet
	// size of ordinary text at the sample's length.
	AcceptLow, AcceptHigh int
}

// Reject reports whether text should be skipped entirely (treated as
// non-linguistic) because its entropy falls outside the accepted range.
func (f EntropyFilter) Reject(text string) bool {
	if !f.Enabled || len(text) < f.MinLen {
		return false
	}
	e := entropy(text)
	low := expectedEntropy(len(text), f.AcceptLow)
	high := expectedEntropy(len(text), f.AcceptHigh)
	return e < low || high < e
}

// entropy returns the Shannon entropy of text in bits. Non-printable
// bytes are left out of every symbol class but still count towards the
// length.
func entropy(text string) float64 {
	if text == "" {
		return 0
	}
	var counts [256]float64
	for _, b := range []byte(text) {
		if !unicode.IsPrint(rune(b)) {
			continue
		}
		counts[b]++
	}
	n := float64(len(text))

	var e float64
	for _, cnt := range counts {
		if cnt == 0 {
			continue
		}
		p := cnt / n
		e += p * math.Log2(p)
	}
	if e == 0 {
		return 0
	}
	return -e
}

// expectedEntropy returns the entropy of a sequence of n symbols drawn
// uniformly from an alphabet of size s.
func expectedEntropy(n, s int) float64 {
	if n > s {
		n = s
	}
	if n < 2 {
		return 0
	}
	return -math.Log2(1 / float64(n))
}
