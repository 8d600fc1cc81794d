package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
	"github.com/creative-sdg/multitulza-sub000/domain/models"
	"github.com/creative-sdg/multitulza-sub000/pkg/settings"
	"github.com/creative-sdg/multitulza-sub000/pkg/utils"
)

// fakeSpeechService คืนเสียงคงที่ยาว 2.5 วินาที
type fakeSpeechService struct {
	lastText string
}

func (f *fakeSpeechService) Synthesize(ctx context.Context, userID string, req *dto.SynthesizeSpeechRequest) (*dto.SynthesizeSpeechResponse, error) {
	f.lastText = req.Text
	return &dto.SynthesizeSpeechResponse{
		BlobKey:     "audio-key",
		URL:         "/api/v1/blobs/audio-key",
		ContentType: "audio/mpeg",
		Size:        40000,
		Duration:    2.5,
	}, nil
}

func (f *fakeSpeechService) ListVoices(ctx context.Context) ([]dto.VoiceResponse, error) {
	return nil, nil
}

func newChunkSpeechApp(tts *fakeSpeechService) *fiber.App {
	h := NewAudioHandler(settings.InitCache(nil), tts)

	app := fiber.New()
	app.Post("/audio/chunks/:index/speech", func(c *fiber.Ctx) error {
		c.Locals("user", &utils.UserContext{StudioID: "studio-1", Pseudo: true})
		return h.GenerateChunkSpeech(c)
	})
	return app
}

func postChunkSpeech(t *testing.T, app *fiber.App, path string, req dto.GenerateChunkSpeechRequest) (int, []byte) {
	t.Helper()

	body, _ := json.Marshal(req)
	httpReq := httptest.NewRequest("POST", path, bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(httpReq)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, raw
}

func TestGenerateChunkSpeechUpdatesTimeline(t *testing.T) {
	tts := &fakeSpeechService{}
	app := newChunkSpeechApp(tts)

	status, raw := postChunkSpeech(t, app, "/audio/chunks/1/speech", dto.GenerateChunkSpeechRequest{
		Chunks: []models.AudioChunk{
			{ID: "c1", Text: "first line", Duration: 3.0},
			{ID: "c2", Text: "second line"},
			{ID: "c3", Text: "third line", Duration: 4.0},
		},
	})
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, body %s", status, raw)
	}
	if tts.lastText != "second line" {
		t.Errorf("synthesized text = %q, want chunk 1", tts.lastText)
	}

	var envelope struct {
		Success bool                            `json:"success"`
		Data    dto.RecalculateTimelineResponse `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("bad response body: %v", err)
	}

	chunks := envelope.Data.Chunks
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	if chunks[1].AudioURL != "/api/v1/blobs/audio-key" {
		t.Errorf("audioUrl = %q", chunks[1].AudioURL)
	}
	if chunks[1].Duration != 2.5 {
		t.Errorf("duration = %v, want 2.5", chunks[1].Duration)
	}

	// timeline คำนวณใหม่หลังใส่เสียง: 3.0 + 2.5 + 4.0 (floor 2.0 ไม่มีผล)
	if chunks[1].StartTime != 3.0 {
		t.Errorf("chunk 1 startTime = %v, want 3.0", chunks[1].StartTime)
	}
	if chunks[2].StartTime != 5.5 {
		t.Errorf("chunk 2 startTime = %v, want 5.5", chunks[2].StartTime)
	}
	if envelope.Data.TotalDuration != 9.5 {
		t.Errorf("totalDuration = %v, want 9.5", envelope.Data.TotalDuration)
	}
}

func TestGenerateChunkSpeechIndexOutOfRange(t *testing.T) {
	app := newChunkSpeechApp(&fakeSpeechService{})

	status, _ := postChunkSpeech(t, app, "/audio/chunks/5/speech", dto.GenerateChunkSpeechRequest{
		Chunks: []models.AudioChunk{{ID: "c1", Text: "only one"}},
	})
	if status != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
}

func TestGenerateChunkSpeechEmptyText(t *testing.T) {
	app := newChunkSpeechApp(&fakeSpeechService{})

	status, _ := postChunkSpeech(t, app, "/audio/chunks/0/speech", dto.GenerateChunkSpeechRequest{
		Chunks: []models.AudioChunk{{ID: "c1"}},
	})
	if status != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
}
