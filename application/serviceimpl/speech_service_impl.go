package serviceimpl

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
	"github.com/creative-sdg/multitulza-sub000/domain/ports"
	"github.com/creative-sdg/multitulza-sub000/domain/services"
	"github.com/creative-sdg/multitulza-sub000/pkg/logger"
	"github.com/creative-sdg/multitulza-sub000/pkg/settings"
)

const (
	defaultMaxTextLength = 5000

	// ElevenLabs คืน MP3 128kbps เป็น default = 16000 bytes/sec
	mp3BytesPerSecond = 16000.0
)

type SpeechServiceImpl struct {
	tts      ports.TTSPort
	blobSvc  services.BlobService
	settings *settings.SettingsCache
}

func NewSpeechService(tts ports.TTSPort, blobSvc services.BlobService, cache *settings.SettingsCache) services.SpeechService {
	return &SpeechServiceImpl{
		tts:      tts,
		blobSvc:  blobSvc,
		settings: cache,
	}
}

// Synthesize สร้างเสียงพูดจากข้อความ
// voice ต้องอยู่ใน allowed list, text ยาวเกิน limit ถูกปัดตกก่อนถึง provider
func (s *SpeechServiceImpl) Synthesize(ctx context.Context, userID string, req *dto.SynthesizeSpeechRequest) (*dto.SynthesizeSpeechResponse, error) {
	maxLen := s.settings.GetInt("speech", "max_text_length", defaultMaxTextLength)
	if len([]rune(req.Text)) > maxLen {
		return nil, fmt.Errorf("%w: text exceeds %d characters", services.ErrInvalidInput, maxLen)
	}

	voiceID := req.VoiceID
	if voiceID == "" {
		voiceID = s.settings.Get("speech", "default_voice")
	}
	if !s.isVoiceAllowed(voiceID) {
		return nil, fmt.Errorf("%w: voice %s is not allowed", services.ErrForbidden, voiceID)
	}

	result, err := s.tts.Synthesize(ctx, &ports.SpeechRequest{
		Text:      req.Text,
		VoiceID:   voiceID,
		ModelID:   req.ModelID,
		Stability: req.Stability,
		Speed:     req.Speed,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrUpstream, err)
	}

	resp := &dto.SynthesizeSpeechResponse{
		ContentType: result.ContentType,
		Size:        int64(len(result.Audio)),
		Duration:    float64(len(result.Audio)) / mp3BytesPerSecond,
	}

	if req.Save {
		blob, err := s.blobSvc.SaveFromReader(ctx, userID, bytes.NewReader(result.Audio), int64(len(result.Audio)), result.ContentType)
		if err != nil {
			return nil, fmt.Errorf("failed to cache audio: %w", err)
		}
		resp.BlobKey = blob.Key
		resp.URL = s.blobSvc.PublicURL(blob.Key)
	} else {
		// ไม่ save ส่งกลับเป็น data URI ให้เล่นได้ทันที
		resp.URL = fmt.Sprintf("data:%s;base64,%s",
			result.ContentType, base64.StdEncoding.EncodeToString(result.Audio))
	}

	logger.InfoContext(ctx, "Speech synthesized",
		"user_id", userID,
		"voice_id", voiceID,
		"chars", len([]rune(req.Text)),
		"size", resp.Size,
		"saved", req.Save,
	)
	return resp, nil
}

// ListVoices ดึงเสียงจาก provider กรองด้วย allowed list จาก settings
func (s *SpeechServiceImpl) ListVoices(ctx context.Context) ([]dto.VoiceResponse, error) {
	voices, err := s.tts.ListVoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrUpstream, err)
	}

	allowed := s.settings.GetList("speech", "allowed_voices", ",")
	allowedSet := make(map[string]bool, len(allowed))
	for _, id := range allowed {
		allowedSet[id] = true
	}

	out := make([]dto.VoiceResponse, 0, len(voices))
	for _, v := range voices {
		if len(allowedSet) > 0 && !allowedSet[v.ID] {
			continue
		}
		out = append(out, dto.VoiceResponse{ID: v.ID, Name: v.Name})
	}
	return out, nil
}

func (s *SpeechServiceImpl) isVoiceAllowed(voiceID string) bool {
	allowed := s.settings.GetList("speech", "allowed_voices", ",")
	if len(allowed) == 0 {
		return true
	}
	for _, id := range allowed {
		if id == voiceID {
			return true
		}
	}
	return false
}
