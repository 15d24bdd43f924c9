// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heuristic

import "testing"

func TestAllUpper(t *testing.T) {
	cases := []struct {
		word string
		want bool
	}{
		{"HTML", true},
		{"URLs", true},
		{"JSON_RPC", true},
		{"Hello", false},
		{"", false},
	}
	for _, c := range cases {
		if got := (AllUpper{}).Acceptable(c.word, false); got != c.want {
			t.Errorf("AllUpper.Acceptable(%q) = %v, want %v", c.word, got, c.want)
		}
	}
}

func TestSingle(t *testing.T) {
	if !(Single{}).Acceptable("x", false) {
		t.Error("expected single-rune word to be acceptable")
	}
	if (Single{}).Acceptable("xy", false) {
		t.Error("expected multi-rune word to be rejected")
	}
}

func TestNakedHex(t *testing.T) {
	h := NakedHex{MinLen: 6}
	if !h.Acceptable("DEADBEEF", false) {
		t.Error("expected DEADBEEF to be accepted as a naked hex run")
	}
	if h.Acceptable("cafe", false) {
		t.Error("expected a too-short hex string to be left to the dictionary")
	}
	if h.Acceptable("feedbag", false) {
		t.Error("expected a non-hex word to be rejected")
	}
}

func TestNumeric(t *testing.T) {
	cases := []struct {
		word string
		want bool
	}{
		{"192", true},
		{"-3.14", true},
		{"0x1F", true},
		{"0b1010", true},
		{"0o17", true},
		{"1e10", true},
		{"proccess", false},
	}
	for _, c := range cases {
		if got := (Numeric{}).Acceptable(c.word, false); got != c.want {
			t.Errorf("Numeric.Acceptable(%q) = %v, want %v", c.word, got, c.want)
		}
	}
}

func TestEscapeSequence(t *testing.T) {
	cases := []struct {
		word string
		want bool
	}{
		{`\x41`, true},
		{`é`, false},
		{`\U0001F600`, true},
		{`\101`, true},
		{`notanescape`, false},
	}
	for _, c := range cases {
		if got := (EscapeSequence{}).Acceptable(c.word, false); got != c.want {
			t.Errorf("EscapeSequence.Acceptable(%q) = %v, want %v", c.word, got, c.want)
		}
	}
}

func TestUnit(t *testing.T) {
	if !(Unit{}).Acceptable("64KB", false) {
		t.Error("expected 64KB to be accepted as a quantity with a unit")
	}
	if !(Unit{}).Acceptable("200ms", false) {
		t.Error("expected 200ms to be accepted as a quantity with a unit")
	}
	if (Unit{}).Acceptable("KB", false) {
		t.Error("expected a naked unit with no magnitude to be rejected")
	}
	// Unit never applies to split fragments: even a complete quantity
	// such as "64KB" is not accepted when it is marked as a fragment of
	// a larger identifier.
	if (Unit{}).Acceptable("64KB", true) {
		t.Error("expected Unit to reject partial fragments outright")
	}
}

func TestMaxLen(t *testing.T) {
	h := MaxLen{Max: 4}
	if !h.Acceptable("toolongaword", false) {
		t.Error("expected an over-long word to be accepted (not worth flagging)")
	}
	if h.Acceptable("ab", false) {
		t.Error("expected a short word to fall through to the dictionary")
	}
	if (MaxLen{Max: 0}).Acceptable("anything", false) {
		t.Error("expected Max of zero to disable the heuristic entirely")
	}
}

func TestSetAcceptableIsAnyOf(t *testing.T) {
	s := Set{AllUpper{}, NakedHex{MinLen: 6}, Numeric{}}
	if !s.Acceptable("HTML", false) {
		t.Error("expected the set to defer to AllUpper")
	}
	if !s.Acceptable("192", false) {
		t.Error("expected the set to defer to Numeric")
	}
	if s.Acceptable("proccess", false) {
		t.Error("expected a real misspelling to be rejected by every heuristic")
	}
}
