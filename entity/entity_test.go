package entity

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want rune
	}{
		{"amp", '&'},
		{"AMP", '&'},
		{"nbsp", ' '},
		{"eacute", 'é'},
		{"Eacute", 'É'},
		{"AELIG", 'æ'},
		{"EACUTE", 'é'},
		{"ALPHA", 'α'},
		{"aelig", 'æ'},
		{"le", '≤'},
		{"euro", '€'},
		{"sigmaf", 'ς'},
		{"cedil", '¸'},
		{"frac12", '½'},
		{"foo", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		if got := Lookup([]byte(tt.name)); got != tt.want {
			t.Errorf("Lookup(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestLookup_TableNamesResolve(t *testing.T) {
	if Len() < 250 {
		t.Errorf("Len() = %d, want at least 250", Len())
	}
	for _, e := range named {
		if got := Lookup([]byte(e.name)); got != e.r {
			t.Errorf("Lookup(%q) = %d, want %d", e.name, got, e.r)
		}
	}
}

func TestSymbol(t *testing.T) {
	tests := []struct {
		in   rune
		want rune
	}{
		{'a', 'α'},
		{'W', 'Ω'},
		{'p', 'π'},
		{174, '→'},
		{165, '∞'},
		{'1', '1'},
		{'?', '?'},
	}

	for _, tt := range tests {
		if got := Symbol(tt.in); got != tt.want {
			t.Errorf("Symbol(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSuperscriptSubscript(t *testing.T) {
	if got := Superscript('2'); got != '²' {
		t.Errorf("Superscript('2') = %q, want %q", got, '²')
	}
	if got := Superscript('n'); got != 'ⁿ' {
		t.Errorf("Superscript('n') = %q, want %q", got, 'ⁿ')
	}
	if got := Superscript('z'); got != 'z' {
		t.Errorf("Superscript('z') = %q, want %q", got, 'z')
	}
	if got := Subscript('2'); got != '₂' {
		t.Errorf("Subscript('2') = %q, want %q", got, '₂')
	}
	if got := Subscript('b'); got != 'b' {
		t.Errorf("Subscript('b') = %q, want %q", got, 'b')
	}
}

func TestLigature(t *testing.T) {
	if s, ok := Ligature(0xFB03); !ok || s != "ffi" {
		t.Errorf("Ligature(0xFB03) = %q, %v, want \"ffi\", true", s, ok)
	}
	if _, ok := Ligature('f'); ok {
		t.Error("Ligature('f') should not be a ligature")
	}
}
