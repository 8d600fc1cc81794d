package rebrand

import "testing"

func TestReplacerApply(t *testing.T) {
	r := New(DefaultCompetitors)

	tests := []struct {
		name     string
		input    string
		brand    string
		expected string
	}{
		{"simple replace", "Buy FitPro today", "Acme", "Buy Acme today"},
		{"case insensitive", "gymshark is great", "Acme", "Acme is great"},
		{"multi-word competitor", "Powered by Optimum Nutrition formula", "Acme", "Powered by Acme formula"},
		{"word boundary", "ROBSN is not a brand", "Acme", "ROBSN is not a brand"},
		{"multiple occurrences", "FitPro vs BSN", "Acme", "Acme vs Acme"},
		{"no competitor", "Just a plain sentence", "Acme", "Just a plain sentence"},
		{"empty brand keeps text", "Buy FitPro today", "", "Buy FitPro today"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Apply(tt.input, tt.brand)
			if got != tt.expected {
				t.Errorf("\nInput:    %q\nExpected: %q\nGot:      %q", tt.input, tt.expected, got)
			}
		})
	}
}

func TestReplacerIdempotent(t *testing.T) {
	r := New(DefaultCompetitors)

	once := r.Apply("Try MyProtein and MuscleTech", "Acme")
	twice := r.Apply(once, "Acme")
	if once != twice {
		t.Errorf("apply not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestNewSkipsEmptyNames(t *testing.T) {
	r := New([]string{"", "  ", "BrandX"})
	if len(r.patterns) != 1 {
		t.Errorf("expected 1 pattern, got %d", len(r.patterns))
	}

	got := r.Apply("BrandX rocks", "Acme")
	if got != "Acme rocks" {
		t.Errorf("expected replacement, got %q", got)
	}
}

func TestDefaultSingleton(t *testing.T) {
	if Default() != Default() {
		t.Error("Default should return the same instance")
	}
}
