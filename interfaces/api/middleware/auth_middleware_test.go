package middleware

import "testing"

func TestStudioIDPattern(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"studio_abc123", true},
		{"aB3-xY7_kQ9z", true},
		{"12345678", true},
		{"short", false},
		{"", false},
		{"has space 123", false},
		{"emoji🙂id1234", false},
		{"semi;colon123", false},
	}

	for _, tt := range tests {
		if got := studioIDPattern.MatchString(tt.id); got != tt.valid {
			t.Errorf("studioIDPattern(%q) = %v, expected %v", tt.id, got, tt.valid)
		}
	}
}
