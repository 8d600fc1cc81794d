package serviceimpl

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
	"github.com/creative-sdg/multitulza-sub000/domain/models"
	"github.com/creative-sdg/multitulza-sub000/domain/ports"
	"github.com/creative-sdg/multitulza-sub000/domain/services"
	"github.com/creative-sdg/multitulza-sub000/pkg/logger"
	"github.com/creative-sdg/multitulza-sub000/pkg/settings"
)

const (
	defaultSceneCount = 6
	maxSceneCount     = 12
)

type CharacterServiceImpl struct {
	llm      ports.LLMPort
	blobSvc  services.BlobService
	settings *settings.SettingsCache
}

func NewCharacterService(llm ports.LLMPort, blobSvc services.BlobService, cache *settings.SettingsCache) services.CharacterService {
	return &CharacterServiceImpl{
		llm:      llm,
		blobSvc:  blobSvc,
		settings: cache,
	}
}

// GenerateProfile วิเคราะห์รูปใน blob cache แล้วคืน structured profile
func (s *CharacterServiceImpl) GenerateProfile(ctx context.Context, userID string, req *dto.GenerateProfileRequest) (*models.CharacterProfile, error) {
	images, err := s.loadImages(ctx, userID, req.ImageKeys)
	if err != nil {
		return nil, err
	}

	instruction := s.settings.Get("prompts", "profile_instruction")
	if req.Style != "" {
		instruction += fmt.Sprintf(" Lean the visual style toward: %s.", req.Style)
	}

	profile, err := s.llm.GenerateProfile(ctx, &ports.ProfileRequest{
		Images:       images,
		Instructions: instruction,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrUpstream, err)
	}

	logger.InfoContext(ctx, "Character profile generated",
		"user_id", userID,
		"name", profile.Name,
		"images", len(images),
	)
	return profile, nil
}

// GeneratePrompts สร้าง scene prompts หนึ่งชุดสำหรับ profile
// activity ต่อ scene สุ่มจาก list ของ mode โดยไม่ซ้ำจนกว่า list จะหมด
func (s *CharacterServiceImpl) GeneratePrompts(ctx context.Context, userID string, req *dto.GeneratePromptsRequest) ([]models.ImagePrompt, error) {
	mode := models.GenerationMode(req.Mode)

	sceneCount := req.SceneCount
	if sceneCount <= 0 {
		sceneCount = s.settings.GetInt("generation", "scene_count", defaultSceneCount)
	}
	if sceneCount > maxSceneCount {
		sceneCount = maxSceneCount
	}

	activities := s.pickActivities(mode, sceneCount)
	if len(activities) == 0 {
		return nil, fmt.Errorf("%w: no activities configured for mode %s", services.ErrInvalidInput, mode)
	}

	prompts, err := s.llm.GenerateScenePrompts(ctx, &ports.ScenePromptRequest{
		Profile:      req.Profile,
		Mode:         mode,
		Style:        req.Style,
		Activities:   activities,
		Instructions: s.buildTemplate(mode, req.Profile, req.Style),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrUpstream, err)
	}

	logger.InfoContext(ctx, "Scene prompts generated",
		"user_id", userID,
		"image_id", req.ImageID,
		"mode", mode,
		"count", len(prompts),
	)
	return prompts, nil
}

// RegeneratePrompt สร้าง prompt ใหม่สำหรับ scene เดียว
func (s *CharacterServiceImpl) RegeneratePrompt(ctx context.Context, userID string, req *dto.RegeneratePromptRequest) (*models.ImagePrompt, error) {
	mode := models.GenerationMode(req.Mode)

	prompts, err := s.llm.GenerateScenePrompts(ctx, &ports.ScenePromptRequest{
		Profile:      req.Profile,
		Mode:         mode,
		Style:        req.Style,
		Activities:   []string{req.Scene},
		Instructions: s.buildTemplate(mode, req.Profile, req.Style),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrUpstream, err)
	}
	if len(prompts) == 0 {
		return nil, fmt.Errorf("%w: empty prompt result", services.ErrUpstream)
	}

	logger.InfoContext(ctx, "Scene prompt regenerated",
		"user_id", userID,
		"image_id", req.ImageID,
		"scene", req.Scene,
	)
	return &prompts[0], nil
}

// loadImages อ่าน blob ของรูปอ้างอิง - ทุก key ต้องเป็นของ user เอง
func (s *CharacterServiceImpl) loadImages(ctx context.Context, userID string, keys []string) ([]ports.ImageInput, error) {
	images := make([]ports.ImageInput, 0, len(keys))
	for _, key := range keys {
		blob, reader, err := s.blobSvc.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("%w: image %s", services.ErrNotFound, key)
		}
		if blob.UserID != userID {
			reader.Close()
			return nil, services.ErrForbidden
		}
		if !strings.HasPrefix(blob.ContentType, "image/") {
			reader.Close()
			return nil, fmt.Errorf("%w: blob %s is not an image (%s)", services.ErrInvalidInput, key, blob.ContentType)
		}

		data, err := io.ReadAll(reader)
		reader.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read image %s: %w", key, err)
		}

		images = append(images, ports.ImageInput{
			Data:     data,
			MimeType: blob.ContentType,
		})
	}
	return images, nil
}

// pickActivities สุ่ม activities แบบไม่ซ้ำ - ถ้าขอเกินจำนวนใน list จะ reshuffle รอบใหม่
func (s *CharacterServiceImpl) pickActivities(mode models.GenerationMode, count int) []string {
	pool := s.settings.GetList("generation", "activities_"+string(mode), "|")
	if len(pool) == 0 {
		return nil
	}

	out := make([]string, 0, count)
	for len(out) < count {
		perm := rand.Perm(len(pool))
		for _, i := range perm {
			if len(out) == count {
				break
			}
			out = append(out, pool[i])
		}
	}
	return out
}

// buildTemplate substitute profile fields ลง template ของ mode
// {{activity}} ถูกปล่อยไว้ให้ LLM เติมต่อ scene
func (s *CharacterServiceImpl) buildTemplate(mode models.GenerationMode, profile *models.CharacterProfile, style string) string {
	tpl := s.settings.Get("prompts", "template_"+string(mode))
	if tpl == "" || profile == nil {
		return tpl
	}

	if style == "" {
		style = profile.Style
	}

	r := strings.NewReplacer(
		"{{name}}", profile.Name,
		"{{personality}}", profile.Personality,
		"{{backstory}}", profile.Backstory,
		"{{livingPlace}}", profile.LivingPlace,
		"{{style}}", style,
	)
	return r.Replace(tpl)
}
