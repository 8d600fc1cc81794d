package ports

import "context"

// ═══════════════════════════════════════════════════════════════════════════════
// TTS Port - สำหรับ text-to-speech synthesis
// ═══════════════════════════════════════════════════════════════════════════════

// SpeechRequest คำขอ synthesize เสียงพูด
type SpeechRequest struct {
	Text      string
	VoiceID   string
	ModelID   string
	Stability *float64
	Speed     *float64
}

// SpeechResult ไฟล์เสียงที่ synthesize ได้
type SpeechResult struct {
	Audio       []byte
	ContentType string
}

// Voice เสียงที่ provider มีให้เลือก
type Voice struct {
	ID   string
	Name string
}

// TTSPort - Interface สำหรับ TTS provider (ElevenLabs)
type TTSPort interface {
	// Synthesize สร้างไฟล์เสียงจากข้อความ
	Synthesize(ctx context.Context, req *SpeechRequest) (*SpeechResult, error)

	// ListVoices ดึงรายการเสียงจาก provider
	ListVoices(ctx context.Context) ([]Voice, error)
}
