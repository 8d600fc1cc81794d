package dto

import "github.com/creative-sdg/multitulza-sub000/domain/models"

// RecalculateTimelineRequest คำนวณ start time ของ audio chunks ใหม่
// หลัง user ลบ/เพิ่ม/อัดใหม่
type RecalculateTimelineRequest struct {
	Chunks []models.AudioChunk `json:"chunks" validate:"required,max=10,dive"`
	// MinEffectiveDuration override ค่าจาก settings (0 = ใช้ค่า settings)
	MinEffectiveDuration float64 `json:"minEffectiveDuration" validate:"gte=0,lte=60"`
}

type RecalculateTimelineResponse struct {
	Chunks        []models.AudioChunk `json:"chunks"`
	TotalDuration float64             `json:"totalDuration"`
}

// GenerateChunkSpeechRequest สร้างเสียงให้ chunk เดียวใน timeline
// index ของ chunk มาจาก path param
type GenerateChunkSpeechRequest struct {
	Chunks  []models.AudioChunk `json:"chunks" validate:"required,max=10,dive"`
	VoiceID string              `json:"voiceId" validate:"max=100"` // ว่าง = default จาก settings
	// MinEffectiveDuration override ค่าจาก settings (0 = ใช้ค่า settings)
	MinEffectiveDuration float64 `json:"minEffectiveDuration" validate:"gte=0,lte=60"`
}
