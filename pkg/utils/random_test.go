package utils

import (
	"regexp"
	"testing"
)

func TestGenerateRandomString(t *testing.T) {
	s := GenerateRandomString(16)
	if len(s) != 16 {
		t.Errorf("expected length 16, got %d", len(s))
	}

	for _, r := range s {
		switch r {
		case '0', 'O', 'l', '1', 'I':
			t.Errorf("ambiguous character %q in %q", r, s)
		}
	}
}

func TestGenerateBlobKey(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{13}-[a-z2-9]{9}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key := GenerateBlobKey()
		if !pattern.MatchString(key) {
			t.Fatalf("key %q does not match expected format", key)
		}
		if seen[key] {
			t.Fatalf("duplicate key generated: %q", key)
		}
		seen[key] = true
	}
}
