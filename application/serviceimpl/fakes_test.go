package serviceimpl

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"strings"
	"sync"

	"github.com/creative-sdg/multitulza-sub000/domain/models"
	"github.com/creative-sdg/multitulza-sub000/domain/ports"
)

// fakeMediaGen จำลอง provider: prompt ที่มีคำว่า "fail" ล้มเหลว
// "block" ค้างจนกว่า ctx ถูก cancel
type fakeMediaGen struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeMediaGen) run(ctx context.Context, prompt string) (*ports.MediaResult, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if strings.Contains(prompt, "block") {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if strings.Contains(prompt, "fail") {
		return nil, errors.New("provider rejected the prompt")
	}
	return &ports.MediaResult{
		URL:         "https://cdn.example/" + prompt + ".png",
		ContentType: "image/png",
	}, nil
}

func (f *fakeMediaGen) GenerateImage(ctx context.Context, req *ports.ImageGenRequest) (*ports.MediaResult, error) {
	return f.run(ctx, req.Prompt)
}

func (f *fakeMediaGen) GenerateVideo(ctx context.Context, req *ports.VideoGenRequest) (*ports.MediaResult, error) {
	return f.run(ctx, req.Prompt)
}

func (f *fakeMediaGen) ReframeImage(ctx context.Context, req *ports.ReframeRequest) (*ports.MediaResult, error) {
	return f.run(ctx, req.ImageURL)
}

// fakeLLM นับจำนวนครั้งที่ provider ถูกเรียก
type fakeLLM struct {
	mu           sync.Mutex
	profileCalls int
	promptCalls  int
	fail         bool
}

func (f *fakeLLM) GenerateProfile(ctx context.Context, req *ports.ProfileRequest) (*models.CharacterProfile, error) {
	f.mu.Lock()
	f.profileCalls++
	f.mu.Unlock()
	if f.fail {
		return nil, errors.New("model overloaded")
	}
	return &models.CharacterProfile{Name: "Mali", Style: "casual"}, nil
}

func (f *fakeLLM) GenerateScenePrompts(ctx context.Context, req *ports.ScenePromptRequest) ([]models.ImagePrompt, error) {
	f.mu.Lock()
	f.promptCalls++
	f.mu.Unlock()
	if f.fail {
		return nil, errors.New("model overloaded")
	}
	out := make([]models.ImagePrompt, len(req.Activities))
	for i, a := range req.Activities {
		out[i] = models.ImagePrompt{Scene: a, Prompt: "detailed prompt for " + a}
	}
	return out, nil
}

// fakeBlobService เก็บแค่ key ไม่แตะ storage จริง
type fakeBlobService struct {
	mu      sync.Mutex
	saved   int
	failSav bool
}

func (f *fakeBlobService) SaveFromURL(ctx context.Context, userID, sourceURL, contentType string) (*models.Blob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSav {
		return nil, errors.New("storage unavailable")
	}
	f.saved++
	return &models.Blob{Key: "blob-key", UserID: userID, ContentType: contentType, SourceURL: sourceURL}, nil
}

func (f *fakeBlobService) SaveFromReader(ctx context.Context, userID string, r io.Reader, size int64, contentType string) (*models.Blob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved++
	return &models.Blob{Key: "blob-key", UserID: userID, ContentType: contentType, Size: size}, nil
}

func (f *fakeBlobService) SaveFromUpload(ctx context.Context, userID string, file *multipart.FileHeader) (*models.Blob, error) {
	return &models.Blob{Key: "blob-key", UserID: userID}, nil
}

func (f *fakeBlobService) Get(ctx context.Context, key string) (*models.Blob, io.ReadCloser, error) {
	return &models.Blob{Key: key, ContentType: "image/png"},
		io.NopCloser(strings.NewReader("imagebytes")), nil
}

func (f *fakeBlobService) GetRange(ctx context.Context, key string, start, end int64) (*models.Blob, io.ReadCloser, int64, error) {
	return nil, nil, 0, errors.New("not implemented")
}

func (f *fakeBlobService) GetMeta(ctx context.Context, key string) (*models.Blob, error) {
	return &models.Blob{Key: key}, nil
}

func (f *fakeBlobService) List(ctx context.Context, userID string, offset, limit int) ([]*models.Blob, int64, error) {
	return nil, 0, nil
}

func (f *fakeBlobService) Delete(ctx context.Context, userID, key string) error { return nil }

func (f *fakeBlobService) PublicURL(key string) string { return "/api/v1/blobs/" + key }

func (f *fakeBlobService) CleanupOrphans(ctx context.Context) (int, error) { return 0, nil }

func (f *fakeBlobService) savedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saved
}

// fakeTTS คืน audio คงที่
type fakeTTS struct {
	lastVoice string
}

func (f *fakeTTS) Synthesize(ctx context.Context, req *ports.SpeechRequest) (*ports.SpeechResult, error) {
	f.lastVoice = req.VoiceID
	return &ports.SpeechResult{Audio: []byte("mp3data"), ContentType: "audio/mpeg"}, nil
}

func (f *fakeTTS) ListVoices(ctx context.Context) ([]ports.Voice, error) {
	return []ports.Voice{
		{ID: "21m00Tcm4TlvDq8ikWAM", Name: "Rachel"},
		{ID: "unlisted-voice", Name: "Nobody"},
	}, nil
}
