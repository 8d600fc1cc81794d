package handlers

import "testing"

func TestParseRangeHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantStart int64
		wantEnd   int64
		wantOK    bool
	}{
		{"start and end", "bytes=0-499", 0, 499, true},
		{"open ended", "bytes=500-", 500, -1, true},
		{"middle range", "bytes=100-200", 100, 200, true},
		{"missing prefix", "0-499", 0, 0, false},
		{"end before start", "bytes=500-100", 0, 0, false},
		{"negative start", "bytes=-500", 0, 0, false},
		{"garbage", "bytes=abc-def", 0, 0, false},
		{"empty", "", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := parseRangeHeader(tt.header)
			if ok != tt.wantOK {
				t.Fatalf("parseRangeHeader(%q) ok = %v, expected %v", tt.header, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("parseRangeHeader(%q) = (%d, %d), expected (%d, %d)",
					tt.header, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
