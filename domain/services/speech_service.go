package services

import (
	"context"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
)

type SpeechService interface {
	// Synthesize สร้างเสียงพูดจากข้อความ
	// voiceId ต้องอยู่ใน allowed list จาก settings
	Synthesize(ctx context.Context, userID string, req *dto.SynthesizeSpeechRequest) (*dto.SynthesizeSpeechResponse, error)

	// ListVoices ดึงเสียงที่อนุญาตให้ใช้
	ListVoices(ctx context.Context) ([]dto.VoiceResponse, error)
}
