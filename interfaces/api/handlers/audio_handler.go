package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
	"github.com/creative-sdg/multitulza-sub000/domain/models"
	"github.com/creative-sdg/multitulza-sub000/domain/services"
	"github.com/creative-sdg/multitulza-sub000/interfaces/api/middleware"
	"github.com/creative-sdg/multitulza-sub000/pkg/settings"
	"github.com/creative-sdg/multitulza-sub000/pkg/utils"
)

type AudioHandler struct {
	settings      *settings.SettingsCache
	speechService services.SpeechService
}

func NewAudioHandler(cache *settings.SettingsCache, speechService services.SpeechService) *AudioHandler {
	return &AudioHandler{settings: cache, speechService: speechService}
}

// RecalculateTimeline คำนวณ startTime ของทุก chunk ใหม่
// timeline เป็น pure function - server เป็นแหล่งความจริงเรื่องสูตร
// POST /api/v1/audio/timeline
func (h *AudioHandler) RecalculateTimeline(c *fiber.Ctx) error {
	var req dto.RecalculateTimelineRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	maxChunks := h.settings.GetInt("audio", "max_chunks", models.MaxAudioChunks)
	if len(req.Chunks) > maxChunks {
		return utils.BadRequestResponse(c, "Too many audio chunks")
	}

	floor := req.MinEffectiveDuration
	if floor <= 0 {
		floor = h.settings.GetFloat64("audio", "min_effective_duration", models.DefaultMinEffectiveDuration)
	}

	chunks := models.RecalculateTimeline(req.Chunks, floor)

	return utils.SuccessResponse(c, dto.RecalculateTimelineResponse{
		Chunks:        chunks,
		TotalDuration: models.TotalTimelineDuration(chunks, floor),
	})
}

// GenerateChunkSpeech สังเคราะห์เสียงให้ chunk เดียว เก็บลง blob cache
// แล้วคืน timeline ที่คำนวณใหม่ทั้งชุด
// POST /api/v1/audio/chunks/:index/speech
func (h *AudioHandler) GenerateChunkSpeech(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	index, err := c.ParamsInt("index")
	if err != nil || index < 0 {
		return utils.BadRequestResponse(c, "Invalid chunk index")
	}

	var req dto.GenerateChunkSpeechRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	maxChunks := h.settings.GetInt("audio", "max_chunks", models.MaxAudioChunks)
	if len(req.Chunks) > maxChunks {
		return utils.BadRequestResponse(c, "Too many audio chunks")
	}
	if index >= len(req.Chunks) {
		return utils.BadRequestResponse(c, "Chunk index out of range")
	}

	chunk := &req.Chunks[index]
	if chunk.Text == "" {
		return utils.BadRequestResponse(c, "Chunk has no text")
	}

	synth, err := h.speechService.Synthesize(c.UserContext(), user.Key(), &dto.SynthesizeSpeechRequest{
		Text:    chunk.Text,
		VoiceID: req.VoiceID,
		Save:    true,
	})
	if err != nil {
		return middleware.ServiceError(c, err)
	}

	chunk.AudioURL = synth.URL
	chunk.Duration = synth.Duration
	chunk.IsGenerating = false

	floor := req.MinEffectiveDuration
	if floor <= 0 {
		floor = h.settings.GetFloat64("audio", "min_effective_duration", models.DefaultMinEffectiveDuration)
	}

	chunks := models.RecalculateTimeline(req.Chunks, floor)

	return utils.SuccessResponse(c, dto.RecalculateTimelineResponse{
		Chunks:        chunks,
		TotalDuration: models.TotalTimelineDuration(chunks, floor),
	})
}
