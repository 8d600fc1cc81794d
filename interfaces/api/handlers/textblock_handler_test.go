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
)

// fakeTextBlockService แถว 2 มีข้อมูล แถวอื่นว่าง
type fakeTextBlockService struct{}

func (f *fakeTextBlockService) FetchBlock(ctx context.Context, req *dto.FetchTextBlockRequest) (*models.TextBlock, error) {
	if req.Row == 2 {
		return &models.TextBlock{Hook: "Stop scrolling", CTA: "Buy now"}, nil
	}
	return &models.TextBlock{}, nil
}

func (f *fakeTextBlockService) Rebrand(text, brand string) string { return text }

func newTextBlockApp() *fiber.App {
	h := NewTextBlockHandler(&fakeTextBlockService{})

	app := fiber.New()
	app.Post("/textblocks/fetch", h.Fetch)
	return app
}

func fetchTextBlock(t *testing.T, app *fiber.App, req dto.FetchTextBlockRequest) (int, []byte) {
	t.Helper()

	body, _ := json.Marshal(req)
	httpReq := httptest.NewRequest("POST", "/textblocks/fetch", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(httpReq)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, raw
}

func TestFetchTextBlockReturnsRow(t *testing.T) {
	app := newTextBlockApp()

	status, raw := fetchTextBlock(t, app, dto.FetchTextBlockRequest{Row: 2})
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, body %s", status, raw)
	}

	var envelope struct {
		Data dto.TextBlockResponse `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if envelope.Data.TextBlock == nil {
		t.Fatal("expected textBlock, got null")
	}
	if envelope.Data.TextBlock.Hook != "Stop scrolling" {
		t.Errorf("hook = %q", envelope.Data.TextBlock.Hook)
	}
}

// แถวว่างต้องคืน textBlock: null ไม่ใช่ object ที่ field ว่างหมด
func TestFetchTextBlockEmptyRowIsNull(t *testing.T) {
	app := newTextBlockApp()

	status, raw := fetchTextBlock(t, app, dto.FetchTextBlockRequest{Row: 7})
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, body %s", status, raw)
	}

	var envelope struct {
		Data struct {
			Row       int             `json:"row"`
			TextBlock json.RawMessage `json:"textBlock"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if string(envelope.Data.TextBlock) != "null" {
		t.Errorf("textBlock = %s, want null", envelope.Data.TextBlock)
	}
	if envelope.Data.Row != 7 {
		t.Errorf("row = %d, want 7", envelope.Data.Row)
	}
}

func TestFetchTextBlockRejectsRowZero(t *testing.T) {
	app := newTextBlockApp()

	status, _ := fetchTextBlock(t, app, dto.FetchTextBlockRequest{Row: 0})
	if status != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
}
