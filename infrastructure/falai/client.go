package falai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/creative-sdg/multitulza-sub000/domain/ports"
	"github.com/creative-sdg/multitulza-sub000/pkg/config"
	"github.com/creative-sdg/multitulza-sub000/pkg/logger"
)

const (
	defaultPollInterval = 2 * time.Second
	defaultPollTimeout  = 10 * time.Minute
	requestTimeout      = 60 * time.Second

	statusCompleted = "COMPLETED"
	statusFailed    = "FAILED"
)

// Client เรียก fal.ai queue API: submit job แล้ว poll จนเสร็จ
type Client struct {
	apiKey       string
	baseURL      string
	pollInterval time.Duration
	pollTimeout  time.Duration
	httpClient   *http.Client
	logger       *slog.Logger
}

func NewClient(cfg config.FalConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("fal API key is required")
	}

	pollInterval := defaultPollInterval
	if cfg.PollInterval > 0 {
		pollInterval = time.Duration(cfg.PollInterval) * time.Second
	}
	pollTimeout := defaultPollTimeout
	if cfg.PollTimeout > 0 {
		pollTimeout = time.Duration(cfg.PollTimeout) * time.Second
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://queue.fal.run"
	}

	return &Client{
		apiKey:       cfg.APIKey,
		baseURL:      baseURL,
		pollInterval: pollInterval,
		pollTimeout:  pollTimeout,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger.GetLogger().With("component", "falai"),
	}, nil
}

// ═══════════════════════════════════════════════════════════════════════════════
// Queue wire types
// ═══════════════════════════════════════════════════════════════════════════════

type queueSubmitResponse struct {
	RequestID   string `json:"request_id"`
	StatusURL   string `json:"status_url"`
	ResponseURL string `json:"response_url"`
}

type queueStatusResponse struct {
	Status        string `json:"status"`
	QueuePosition int    `json:"queue_position"`
}

type mediaFile struct {
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	FileSize    int64  `json:"file_size"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

type queueResult struct {
	Images []mediaFile `json:"images"`
	Image  *mediaFile  `json:"image"`
	Video  *mediaFile  `json:"video"`
	Seed   int64       `json:"seed"`
}

// ═══════════════════════════════════════════════════════════════════════════════
// MediaGenPort
// ═══════════════════════════════════════════════════════════════════════════════

func (c *Client) GenerateImage(ctx context.Context, req *ports.ImageGenRequest) (*ports.MediaResult, error) {
	if req.Prompt == "" {
		return nil, fmt.Errorf("prompt is required")
	}

	numImages := req.NumImages
	if numImages <= 0 {
		numImages = 1
	}

	payload := map[string]any{
		"prompt":     req.Prompt,
		"num_images": numImages,
	}
	// edit model รับ reference images, text-to-image ไม่ต้อง
	if len(req.ImageURLs) > 0 {
		payload["image_urls"] = req.ImageURLs
	}
	if req.Width > 0 && req.Height > 0 {
		payload["image_size"] = map[string]int{
			"width":  req.Width,
			"height": req.Height,
		}
	}
	if req.Seed != nil {
		payload["seed"] = *req.Seed
	}
	if req.Resolution != "" {
		payload["resolution"] = req.Resolution
	}
	if req.AspectRatio != "" {
		payload["aspect_ratio"] = req.AspectRatio
	}

	result, requestID, err := c.runJob(ctx, req.Model, payload)
	if err != nil {
		return nil, err
	}

	file := firstImage(result)
	if file == nil {
		return nil, fmt.Errorf("no image in response (request_id %s)", requestID)
	}

	return &ports.MediaResult{
		URL:         file.URL,
		ContentType: contentTypeOrDefault(file.ContentType, "image/png"),
		Width:       file.Width,
		Height:      file.Height,
		Seed:        result.Seed,
		RequestID:   requestID,
		FileSize:    file.FileSize,
	}, nil
}

func (c *Client) GenerateVideo(ctx context.Context, req *ports.VideoGenRequest) (*ports.MediaResult, error) {
	if req.Prompt == "" {
		return nil, fmt.Errorf("prompt is required")
	}
	if req.ImageURL == "" {
		return nil, fmt.Errorf("source image URL is required")
	}

	payload := map[string]any{
		"prompt":    req.Prompt,
		"image_url": req.ImageURL,
	}
	if req.Duration > 0 {
		payload["duration"] = fmt.Sprintf("%d", req.Duration)
	}
	if req.Resolution != "" {
		payload["resolution"] = req.Resolution
	}
	if req.AspectRatio != "" {
		payload["aspect_ratio"] = req.AspectRatio
	}

	result, requestID, err := c.runJob(ctx, req.Model, payload)
	if err != nil {
		return nil, err
	}

	if result.Video == nil || result.Video.URL == "" {
		return nil, fmt.Errorf("no video in response (request_id %s)", requestID)
	}

	return &ports.MediaResult{
		URL:         result.Video.URL,
		ContentType: contentTypeOrDefault(result.Video.ContentType, "video/mp4"),
		Width:       result.Video.Width,
		Height:      result.Video.Height,
		Seed:        result.Seed,
		RequestID:   requestID,
		FileSize:    result.Video.FileSize,
	}, nil
}

func (c *Client) ReframeImage(ctx context.Context, req *ports.ReframeRequest) (*ports.MediaResult, error) {
	if req.ImageURL == "" {
		return nil, fmt.Errorf("image URL is required")
	}
	if req.AspectRatio == "" {
		return nil, fmt.Errorf("aspect ratio is required")
	}

	payload := map[string]any{
		"image_url":    req.ImageURL,
		"aspect_ratio": req.AspectRatio,
	}

	result, requestID, err := c.runJob(ctx, req.Model, payload)
	if err != nil {
		return nil, err
	}

	file := firstImage(result)
	if file == nil {
		return nil, fmt.Errorf("no image in response (request_id %s)", requestID)
	}

	return &ports.MediaResult{
		URL:         file.URL,
		ContentType: contentTypeOrDefault(file.ContentType, "image/png"),
		Width:       file.Width,
		Height:      file.Height,
		Seed:        result.Seed,
		RequestID:   requestID,
		FileSize:    file.FileSize,
	}, nil
}

// ═══════════════════════════════════════════════════════════════════════════════
// Submit + poll
// ═══════════════════════════════════════════════════════════════════════════════

// runJob submit job เข้า queue แล้ว block จนได้ผลลัพธ์/timeout/cancel
func (c *Client) runJob(ctx context.Context, model string, payload map[string]any) (*queueResult, string, error) {
	if model == "" {
		return nil, "", fmt.Errorf("model is required")
	}

	submit, err := c.submit(ctx, model, payload)
	if err != nil {
		return nil, "", err
	}

	c.logger.InfoContext(ctx, "fal job submitted",
		"model", model,
		"request_id", submit.RequestID,
	)

	result, err := c.pollUntilDone(ctx, submit)
	if err != nil {
		return nil, submit.RequestID, err
	}
	return result, submit.RequestID, nil
}

func (c *Client) submit(ctx context.Context, model string, payload map[string]any) (*queueSubmitResponse, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, strings.TrimLeft(model, "/"))
	body, err := c.doRequest(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("submit failed: %w", err)
	}

	var submit queueSubmitResponse
	if err := json.Unmarshal(body, &submit); err != nil {
		return nil, fmt.Errorf("failed to parse submit response: %w", err)
	}
	if submit.RequestID == "" || submit.ResponseURL == "" {
		return nil, fmt.Errorf("incomplete submit response: %s", string(body))
	}
	return &submit, nil
}

func (c *Client) pollUntilDone(ctx context.Context, submit *queueSubmitResponse) (*queueResult, error) {
	deadline := time.Now().Add(c.pollTimeout)
	pollCount := 0

	for {
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("job %s timed out after %v (%d polls)",
				submit.RequestID, c.pollTimeout, pollCount)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("job %s cancelled: %w", submit.RequestID, ctx.Err())
		case <-time.After(c.pollInterval):
		}

		pollCount++
		body, err := c.doRequest(ctx, http.MethodGet, submit.StatusURL, nil)
		if err != nil {
			// transient poll error ไม่ fail job ทันที รอรอบถัดไป
			c.logger.WarnContext(ctx, "fal status poll failed",
				"request_id", submit.RequestID,
				"poll", pollCount,
				"error", err,
			)
			continue
		}

		var status queueStatusResponse
		if err := json.Unmarshal(body, &status); err != nil {
			return nil, fmt.Errorf("failed to parse status response: %w", err)
		}

		switch status.Status {
		case statusCompleted:
			return c.fetchResult(ctx, submit)
		case statusFailed:
			return nil, fmt.Errorf("job %s failed on provider side", submit.RequestID)
		default:
			c.logger.DebugContext(ctx, "fal job in progress",
				"request_id", submit.RequestID,
				"status", status.Status,
				"queue_position", status.QueuePosition,
				"poll", pollCount,
			)
		}
	}
}

func (c *Client) fetchResult(ctx context.Context, submit *queueSubmitResponse) (*queueResult, error) {
	body, err := c.doRequest(ctx, http.MethodGet, submit.ResponseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch result: %w", err)
	}

	var result queueResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse result: %w", err)
	}
	return &result, nil
}

func (c *Client) doRequest(ctx context.Context, method, url string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Key "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API error: %d - %s", resp.StatusCode, string(respBody))
	}
	return respBody, nil
}

func firstImage(result *queueResult) *mediaFile {
	if len(result.Images) > 0 && result.Images[0].URL != "" {
		return &result.Images[0]
	}
	if result.Image != nil && result.Image.URL != "" {
		return result.Image
	}
	return nil
}

func contentTypeOrDefault(ct, fallback string) string {
	if ct == "" {
		return fallback
	}
	return ct
}
