package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/creative-sdg/multitulza-sub000/domain/ports"
	"github.com/creative-sdg/multitulza-sub000/pkg/config"
	"github.com/creative-sdg/multitulza-sub000/pkg/logger"
)

const (
	apiBaseURL     = "https://api.elevenlabs.io/v1"
	defaultTimeout = 60 * time.Second
	defaultModel   = "eleven_multilingual_v2"
)

// Client เรียก ElevenLabs text-to-speech API
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.ElevenLabsConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("elevenlabs API key is required")
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &Client{
		apiKey: cfg.APIKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger.GetLogger().With("component", "elevenlabs"),
	}, nil
}

type ttsRequest struct {
	Text          string         `json:"text"`
	ModelID       string         `json:"model_id"`
	VoiceSettings *voiceSettings `json:"voice_settings,omitempty"`
}

type voiceSettings struct {
	Stability       float64  `json:"stability"`
	SimilarityBoost float64  `json:"similarity_boost"`
	Speed           *float64 `json:"speed,omitempty"`
}

type voicesResponse struct {
	Voices []struct {
		VoiceID string `json:"voice_id"`
		Name    string `json:"name"`
	} `json:"voices"`
}

// Synthesize แปลง text เป็นเสียง (MP3)
func (c *Client) Synthesize(ctx context.Context, req *ports.SpeechRequest) (*ports.SpeechResult, error) {
	if req.Text == "" {
		return nil, fmt.Errorf("text is required")
	}
	if req.VoiceID == "" {
		return nil, fmt.Errorf("voice ID is required")
	}

	modelID := req.ModelID
	if modelID == "" {
		modelID = c.model
	}

	reqBody := ttsRequest{
		Text:    req.Text,
		ModelID: modelID,
	}
	if req.Stability != nil || req.Speed != nil {
		settings := &voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,
			Speed:           req.Speed,
		}
		if req.Stability != nil {
			settings.Stability = *req.Stability
		}
		reqBody.VoiceSettings = settings
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/text-to-speech/%s", apiBaseURL, req.VoiceID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("xi-api-key", c.apiKey)
	httpReq.Header.Set("Accept", "audio/mpeg")

	c.logger.InfoContext(ctx, "Synthesizing speech",
		"voice_id", req.VoiceID,
		"model_id", modelID,
		"char_count", len([]rune(req.Text)),
	)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("TTS request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("TTS API error: %d - %s", resp.StatusCode, string(body))
	}

	audioData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}
	if len(audioData) == 0 {
		return nil, fmt.Errorf("empty audio response")
	}

	c.logger.InfoContext(ctx, "Speech synthesized",
		"voice_id", req.VoiceID,
		"audio_size", len(audioData),
	)

	return &ports.SpeechResult{
		Audio:       audioData,
		ContentType: "audio/mpeg",
	}, nil
}

// ListVoices ดึงรายการเสียงทั้งหมดใน account
func (c *Client) ListVoices(ctx context.Context) ([]ports.Voice, error) {
	url := apiBaseURL + "/voices"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("voices request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("voices API error: %d - %s", resp.StatusCode, string(body))
	}

	var result voicesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse voices response: %w", err)
	}

	voices := make([]ports.Voice, 0, len(result.Voices))
	for _, v := range result.Voices {
		voices = append(voices, ports.Voice{
			ID:   v.VoiceID,
			Name: v.Name,
		})
	}
	return voices, nil
}
