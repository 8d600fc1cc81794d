package models

// DefaultMinEffectiveDuration คือ floor ของ effective duration (วินาที)
// override ได้ผ่าน settings (audio.min_effective_duration)
const DefaultMinEffectiveDuration = 2.0

// MaxAudioChunks จำนวน chunks สูงสุดต่อ project
const MaxAudioChunks = 10

// AudioChunk หนึ่งท่อนข้อความพร้อมเสียงที่ generate แล้ว
type AudioChunk struct {
	ID                string  `json:"id"`
	Text              string  `json:"text"`
	AudioURL          string  `json:"audioUrl,omitempty"`
	Duration          float64 `json:"duration,omitempty"` // วัดจากไฟล์จริง (วินาที)
	EffectiveDuration float64 `json:"effectiveDuration,omitempty"`
	StartTime         float64 `json:"startTime"`
	IsGenerating      bool    `json:"isGenerating"`
	VideoURL          string  `json:"videoUrl,omitempty"` // video ที่แนบกับ chunk นี้
}

// EffectiveDurationOf คำนวณ effective duration = max(floor, measured)
func EffectiveDurationOf(measured, floor float64) float64 {
	if measured < floor {
		return floor
	}
	return measured
}

// RecalculateTimeline คำนวณ startTime ใหม่ทั้ง list
// invariant: startTime[i] = Σ effectiveDuration[0..i-1] และ startTime[0] = 0
// mutate in place และ return slice เดิมเพื่อความสะดวก
func RecalculateTimeline(chunks []AudioChunk, floor float64) []AudioChunk {
	elapsed := 0.0
	for i := range chunks {
		chunks[i].EffectiveDuration = EffectiveDurationOf(chunks[i].Duration, floor)
		chunks[i].StartTime = elapsed
		elapsed += chunks[i].EffectiveDuration
	}
	return chunks
}

// TotalTimelineDuration ความยาวรวมของ timeline
func TotalTimelineDuration(chunks []AudioChunk, floor float64) float64 {
	total := 0.0
	for i := range chunks {
		total += EffectiveDurationOf(chunks[i].Duration, floor)
	}
	return total
}
