package serviceimpl

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
	"github.com/creative-sdg/multitulza-sub000/domain/ports"
	"github.com/creative-sdg/multitulza-sub000/domain/services"
	"github.com/creative-sdg/multitulza-sub000/pkg/logger"
	"github.com/creative-sdg/multitulza-sub000/pkg/settings"
	"github.com/creative-sdg/multitulza-sub000/pkg/tasks"
)

const defaultReframeModel = "fal-ai/image-apps-v2/reframe"

type MediaServiceImpl struct {
	registry  *tasks.Registry
	mediaGen  ports.MediaGenPort
	blobSvc   services.BlobService
	publisher ports.TaskEventPublisherPort
	settings  *settings.SettingsCache
}

func NewMediaService(
	registry *tasks.Registry,
	mediaGen ports.MediaGenPort,
	blobSvc services.BlobService,
	publisher ports.TaskEventPublisherPort,
	cache *settings.SettingsCache,
) services.MediaService {
	return &MediaServiceImpl{
		registry:  registry,
		mediaGen:  mediaGen,
		blobSvc:   blobSvc,
		publisher: publisher,
		settings:  cache,
	}
}

// StartImageGeneration ลงทะเบียน task แล้ว return ทันที งานจริงวิ่งใน goroutine
// แต่ละ scene เป็น task อิสระ - fail หนึ่งไม่กระทบตัวอื่น
func (s *MediaServiceImpl) StartImageGeneration(ctx context.Context, userID string, req *dto.GenerateImageRequest) (*tasks.Task, error) {
	model := req.Model
	if model == "" {
		model = s.settings.Get("generation", "default_image_model")
	}

	// reference images แปลงเป็น data URI ก่อน เพราะ blob cache ไม่ public
	imageURLs, err := s.resolveImageURLs(ctx, userID, req.ImageKeys)
	if err != nil {
		return nil, err
	}

	// parent เป็น Background - task ต้องรอดข้าม HTTP request ที่สั่งมัน
	task, taskCtx := s.registry.Begin(context.Background(), tasks.KindImage, userID, req.ImageID, req.Scene)

	genReq := &ports.ImageGenRequest{
		Model:       model,
		Prompt:      req.Prompt,
		ImageURLs:   imageURLs,
		Width:       req.Width,
		Height:      req.Height,
		Seed:        req.Seed,
		NumImages:   1,
		Resolution:  req.Resolution,
		AspectRatio: req.AspectRatio,
	}

	go s.runGeneration(taskCtx, task, func(c context.Context) (*ports.MediaResult, error) {
		return s.mediaGen.GenerateImage(c, genReq)
	})

	logger.InfoContext(ctx, "Image generation started",
		"task_id", task.ID,
		"user_id", userID,
		"image_id", req.ImageID,
		"scene", req.Scene,
		"model", model,
	)
	return &task, nil
}

// StartVideoGeneration เริ่ม image-to-video task
func (s *MediaServiceImpl) StartVideoGeneration(ctx context.Context, userID string, req *dto.GenerateVideoRequest) (*tasks.Task, error) {
	model := req.Model
	if model == "" {
		model = s.settings.Get("generation", "default_video_model")
	}

	task, taskCtx := s.registry.Begin(context.Background(), tasks.KindVideo, userID, req.ImageID, req.Scene)

	genReq := &ports.VideoGenRequest{
		Model:       model,
		Prompt:      req.Prompt,
		ImageURL:    req.SourceURL,
		Duration:    req.Duration,
		Resolution:  req.Resolution,
		AspectRatio: req.AspectRatio,
	}

	go s.runGeneration(taskCtx, task, func(c context.Context) (*ports.MediaResult, error) {
		return s.mediaGen.GenerateVideo(c, genReq)
	})

	logger.InfoContext(ctx, "Video generation started",
		"task_id", task.ID,
		"user_id", userID,
		"image_id", req.ImageID,
		"model", model,
	)
	return &task, nil
}

// StartReframe ขยายภาพเป็น aspect ratio ใหม่
func (s *MediaServiceImpl) StartReframe(ctx context.Context, userID string, req *dto.ReframeImageRequest) (*tasks.Task, error) {
	model := req.Model
	if model == "" {
		model = defaultReframeModel
	}

	task, taskCtx := s.registry.Begin(context.Background(), tasks.KindImage, userID, req.ImageID, "")

	genReq := &ports.ReframeRequest{
		Model:       model,
		ImageURL:    req.SourceURL,
		AspectRatio: req.AspectRatio,
	}

	go s.runGeneration(taskCtx, task, func(c context.Context) (*ports.MediaResult, error) {
		return s.mediaGen.ReframeImage(c, genReq)
	})

	logger.InfoContext(ctx, "Image reframe started",
		"task_id", task.ID,
		"user_id", userID,
		"image_id", req.ImageID,
		"aspect_ratio", req.AspectRatio,
	)
	return &task, nil
}

// runGeneration เรียก provider, cache ผลลัพธ์ แล้วปิด task พร้อม broadcast
func (s *MediaServiceImpl) runGeneration(ctx context.Context, task tasks.Task, generate func(context.Context) (*ports.MediaResult, error)) {
	s.publishState(task.ID)

	result, err := generate(ctx)
	if err != nil {
		if ctx.Err() != nil {
			// ถูก cancel ระหว่างรอ provider - registry เก็บ state cancelled ไว้แล้ว
			logger.Info("Generation task cancelled", "task_id", task.ID)
		} else {
			s.registry.Fail(task.ID, err.Error())
			logger.Error("Generation task failed",
				"task_id", task.ID,
				"user_id", task.UserID,
				"error", err,
			)
		}
		s.publishState(task.ID)
		return
	}

	// provider URL หมดอายุเร็ว - cache ลง blob ทันที
	// cache fail ไม่ทำให้ task fail ผู้ใช้ยังได้ transient URL ไปก่อน
	url := result.URL
	blobKey := ""
	if blob, err := s.blobSvc.SaveFromURL(ctx, task.UserID, result.URL, result.ContentType); err == nil {
		blobKey = blob.Key
		url = s.blobSvc.PublicURL(blob.Key)
	} else if ctx.Err() == nil {
		logger.Warn("Failed to cache generated media",
			"task_id", task.ID,
			"error", err,
		)
	}

	s.registry.Succeed(task.ID, tasks.Result{URL: url, BlobKey: blobKey})
	s.publishState(task.ID)

	logger.Info("Generation task finished",
		"task_id", task.ID,
		"user_id", task.UserID,
		"kind", task.Kind,
		"blob_key", blobKey,
	)
}

// publishState ส่ง snapshot ปัจจุบันของ task เข้า event bus
// ถ้าไม่มี publisher (NATS down) ฝั่ง client ยัง poll GET /tasks ได้
func (s *MediaServiceImpl) publishState(taskID uuid.UUID) {
	if s.publisher == nil {
		return
	}

	task, ok := s.registry.Get(taskID)
	if !ok {
		return
	}

	event := &ports.TaskEventData{
		TaskID:  task.ID.String(),
		UserID:  task.UserID,
		Kind:    string(task.Kind),
		State:   string(task.State),
		Error:   task.Error,
		Scene:   task.Scene,
		Message: fmt.Sprintf("%s %s", task.Kind, task.State),
	}
	if task.Result != nil {
		event.URL = task.Result.URL
		event.BlobKey = task.Result.BlobKey
		event.Progress = 100
	}

	if err := s.publisher.PublishTaskEvent(context.Background(), event); err != nil {
		logger.Warn("Failed to publish task event", "task_id", task.ID, "error", err)
	}
}

func (s *MediaServiceImpl) GetTask(userID string, taskID uuid.UUID) (*tasks.Task, error) {
	task, ok := s.registry.Get(taskID)
	if !ok {
		return nil, services.ErrNotFound
	}
	if task.UserID != userID {
		return nil, services.ErrForbidden
	}
	return &task, nil
}

func (s *MediaServiceImpl) ListTasks(userID string) []tasks.Task {
	return s.registry.ListByUser(userID)
}

func (s *MediaServiceImpl) CancelTask(userID string, taskID uuid.UUID) error {
	task, ok := s.registry.Get(taskID)
	if !ok {
		return services.ErrNotFound
	}
	if task.UserID != userID {
		return services.ErrForbidden
	}
	if !s.registry.Cancel(taskID) {
		return fmt.Errorf("%w: task already finished", services.ErrConflict)
	}

	s.publishState(taskID)
	logger.Info("Task cancelled", "task_id", taskID, "user_id", userID)
	return nil
}

func (s *MediaServiceImpl) DismissTask(userID string, taskID uuid.UUID) error {
	task, ok := s.registry.Get(taskID)
	if !ok {
		return services.ErrNotFound
	}
	if task.UserID != userID {
		return services.ErrForbidden
	}
	if !s.registry.Dismiss(taskID) {
		return fmt.Errorf("%w: task is still running", services.ErrConflict)
	}
	return nil
}

// resolveImageURLs แปลง blob keys เป็น data URI สำหรับส่งให้ provider
func (s *MediaServiceImpl) resolveImageURLs(ctx context.Context, userID string, keys []string) ([]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	urls := make([]string, 0, len(keys))
	for _, key := range keys {
		blob, reader, err := s.blobSvc.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("%w: reference image %s", services.ErrNotFound, key)
		}
		if blob.UserID != userID {
			reader.Close()
			return nil, services.ErrForbidden
		}

		data, err := io.ReadAll(reader)
		reader.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read reference image %s: %w", key, err)
		}

		urls = append(urls, fmt.Sprintf("data:%s;base64,%s",
			blob.ContentType, base64.StdEncoding.EncodeToString(data)))
	}
	return urls, nil
}
