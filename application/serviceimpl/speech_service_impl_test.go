package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
	"github.com/creative-sdg/multitulza-sub000/domain/services"
	"github.com/creative-sdg/multitulza-sub000/pkg/settings"
)

const allowedVoice = "21m00Tcm4TlvDq8ikWAM"

func newTestSpeechService() (services.SpeechService, *fakeTTS) {
	tts := &fakeTTS{}
	return NewSpeechService(tts, &fakeBlobService{}, settings.InitCache(nil)), tts
}

func TestSynthesizeTextLengthBoundary(t *testing.T) {
	svc, _ := newTestSpeechService()

	// 5000 ตัวอักษรพอดีผ่าน 5001 ไม่ผ่าน
	atLimit := strings.Repeat("ก", 5000)
	if _, err := svc.Synthesize(context.Background(), "user-1", &dto.SynthesizeSpeechRequest{
		Text:    atLimit,
		VoiceID: allowedVoice,
	}); err != nil {
		t.Errorf("5000-char text should pass: %v", err)
	}

	if _, err := svc.Synthesize(context.Background(), "user-1", &dto.SynthesizeSpeechRequest{
		Text:    atLimit + "ก",
		VoiceID: allowedVoice,
	}); !errors.Is(err, services.ErrInvalidInput) {
		t.Errorf("5001-char text should be rejected, got %v", err)
	}
}

func TestSynthesizeEstimatesDuration(t *testing.T) {
	svc, _ := newTestSpeechService()

	resp, err := svc.Synthesize(context.Background(), "user-1", &dto.SynthesizeSpeechRequest{
		Text:    "hello",
		VoiceID: allowedVoice,
	})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	// fake audio 7 bytes ที่ 16000 bytes/sec
	want := 7.0 / 16000.0
	if resp.Duration != want {
		t.Errorf("duration = %v, want %v", resp.Duration, want)
	}
	if resp.Size != 7 {
		t.Errorf("size = %d, want 7", resp.Size)
	}
}

func TestSynthesizeVoiceAllowList(t *testing.T) {
	svc, tts := newTestSpeechService()

	if _, err := svc.Synthesize(context.Background(), "user-1", &dto.SynthesizeSpeechRequest{
		Text:    "hello",
		VoiceID: "not-in-the-list",
	}); !errors.Is(err, services.ErrForbidden) {
		t.Errorf("disallowed voice should be rejected, got %v", err)
	}

	// ไม่ระบุ voice ใช้ default จาก settings
	if _, err := svc.Synthesize(context.Background(), "user-1", &dto.SynthesizeSpeechRequest{
		Text: "hello",
	}); err != nil {
		t.Fatalf("default voice should pass: %v", err)
	}
	if tts.lastVoice != allowedVoice {
		t.Errorf("expected default voice %s, got %s", allowedVoice, tts.lastVoice)
	}
}

func TestSynthesizeReturnsDataURIWithoutSave(t *testing.T) {
	svc, _ := newTestSpeechService()

	resp, err := svc.Synthesize(context.Background(), "user-1", &dto.SynthesizeSpeechRequest{
		Text:    "hello",
		VoiceID: allowedVoice,
	})
	if err != nil {
		t.Fatalf("synthesize failed: %v", err)
	}

	if !strings.HasPrefix(resp.URL, "data:audio/mpeg;base64,") {
		t.Errorf("expected data URI, got %q", resp.URL)
	}
	if resp.BlobKey != "" {
		t.Errorf("no blob expected without save, got %q", resp.BlobKey)
	}
}

func TestSynthesizeSaveGoesToBlobCache(t *testing.T) {
	svc, _ := newTestSpeechService()

	resp, err := svc.Synthesize(context.Background(), "user-1", &dto.SynthesizeSpeechRequest{
		Text:    "hello",
		VoiceID: allowedVoice,
		Save:    true,
	})
	if err != nil {
		t.Fatalf("synthesize failed: %v", err)
	}

	if resp.BlobKey != "blob-key" {
		t.Errorf("expected blob key, got %q", resp.BlobKey)
	}
	if resp.URL != "/api/v1/blobs/blob-key" {
		t.Errorf("expected API URL, got %q", resp.URL)
	}
}

func TestListVoicesFiltersByAllowList(t *testing.T) {
	svc, _ := newTestSpeechService()

	voices, err := svc.ListVoices(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	for _, v := range voices {
		if v.ID == "unlisted-voice" {
			t.Error("unlisted voice leaked through the allow-list")
		}
	}
	if len(voices) != 1 {
		t.Errorf("expected 1 allowed voice, got %d", len(voices))
	}
}
