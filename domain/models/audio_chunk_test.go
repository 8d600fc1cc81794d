package models

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEffectiveDurationOf(t *testing.T) {
	tests := []struct {
		name     string
		measured float64
		floor    float64
		expected float64
	}{
		{"above floor", 3.5, 2, 3.5},
		{"below floor", 1.2, 2, 2},
		{"exactly floor", 2, 2, 2},
		{"zero duration", 0, 2, 2},
		{"zero floor", 1.5, 0, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveDurationOf(tt.measured, tt.floor)
			if !almostEqual(got, tt.expected) {
				t.Errorf("EffectiveDurationOf(%v, %v) = %v, expected %v",
					tt.measured, tt.floor, got, tt.expected)
			}
		})
	}
}

func TestRecalculateTimeline(t *testing.T) {
	chunks := []AudioChunk{
		{ID: "1", Duration: 1.0},
		{ID: "2", Duration: 3.5},
		{ID: "3", Duration: 0},
	}

	got := RecalculateTimeline(chunks, 2)

	wantEffective := []float64{2, 3.5, 2}
	wantStart := []float64{0, 2, 5.5}

	for i := range got {
		if !almostEqual(got[i].EffectiveDuration, wantEffective[i]) {
			t.Errorf("chunk %d effective = %v, expected %v", i, got[i].EffectiveDuration, wantEffective[i])
		}
		if !almostEqual(got[i].StartTime, wantStart[i]) {
			t.Errorf("chunk %d start = %v, expected %v", i, got[i].StartTime, wantStart[i])
		}
	}

	// startTime[i] ต้องเท่ากับผลรวม effective duration ก่อนหน้า
	elapsed := 0.0
	for i := range got {
		if !almostEqual(got[i].StartTime, elapsed) {
			t.Errorf("chunk %d breaks timeline invariant: start %v, sum %v", i, got[i].StartTime, elapsed)
		}
		elapsed += got[i].EffectiveDuration
	}

	if total := TotalTimelineDuration(got, 2); !almostEqual(total, 7.5) {
		t.Errorf("total = %v, expected 7.5", total)
	}
}

func TestRecalculateTimelineReordering(t *testing.T) {
	// ลบ chunk กลางออกแล้วคำนวณใหม่ chunk หลังต้องเลื่อนขึ้นมา
	chunks := []AudioChunk{
		{ID: "1", Duration: 4},
		{ID: "2", Duration: 3},
		{ID: "3", Duration: 5},
	}
	RecalculateTimeline(chunks, 2)

	remaining := []AudioChunk{chunks[0], chunks[2]}
	RecalculateTimeline(remaining, 2)

	if !almostEqual(remaining[1].StartTime, 4) {
		t.Errorf("chunk after removal starts at %v, expected 4", remaining[1].StartTime)
	}
}

func TestRecalculateTimelineEmpty(t *testing.T) {
	if got := RecalculateTimeline(nil, 2); len(got) != 0 {
		t.Errorf("expected empty result, got %d chunks", len(got))
	}
	if total := TotalTimelineDuration(nil, 2); total != 0 {
		t.Errorf("expected total 0, got %v", total)
	}
}
