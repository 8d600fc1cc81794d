package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
	"github.com/creative-sdg/multitulza-sub000/domain/models"
	"github.com/creative-sdg/multitulza-sub000/domain/services"
	"github.com/creative-sdg/multitulza-sub000/pkg/settings"
)

func TestGeneratePromptsReturnsOnePromptPerScene(t *testing.T) {
	llm := &fakeLLM{}
	svc := NewCharacterService(llm, &fakeBlobService{}, settings.InitCache(nil))

	prompts, err := svc.GeneratePrompts(context.Background(), "user-1", &dto.GeneratePromptsRequest{
		ImageID:    "img-1",
		Profile:    &models.CharacterProfile{Name: "Mali"},
		Mode:       "normal",
		SceneCount: 4,
	})
	if err != nil {
		t.Fatalf("GeneratePrompts: %v", err)
	}
	if len(prompts) != 4 {
		t.Fatalf("expected 4 prompts, got %d", len(prompts))
	}
	for i, p := range prompts {
		if p.Prompt == "" {
			t.Errorf("prompt %d is empty", i)
		}
	}
}

// provider ล้มเหลวต้องเรียกแค่ครั้งเดียวแล้ว error กลับทันที ให้ user กด retry เอง
func TestGeneratePromptsFailureIsNotRetried(t *testing.T) {
	llm := &fakeLLM{fail: true}
	svc := NewCharacterService(llm, &fakeBlobService{}, settings.InitCache(nil))

	_, err := svc.GeneratePrompts(context.Background(), "user-1", &dto.GeneratePromptsRequest{
		ImageID: "img-1",
		Profile: &models.CharacterProfile{Name: "Mali"},
		Mode:    "normal",
	})
	if !errors.Is(err, services.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if llm.promptCalls != 1 {
		t.Fatalf("provider called %d times, want 1", llm.promptCalls)
	}
}

func TestRegeneratePromptSingleScene(t *testing.T) {
	llm := &fakeLLM{}
	svc := NewCharacterService(llm, &fakeBlobService{}, settings.InitCache(nil))

	prompt, err := svc.RegeneratePrompt(context.Background(), "user-1", &dto.RegeneratePromptRequest{
		ImageID: "img-1",
		Profile: &models.CharacterProfile{Name: "Mali"},
		Mode:    "selfie",
		Scene:   "selfie in a car",
	})
	if err != nil {
		t.Fatalf("RegeneratePrompt: %v", err)
	}
	if prompt.Scene != "selfie in a car" {
		t.Errorf("scene = %q", prompt.Scene)
	}
	if llm.promptCalls != 1 {
		t.Errorf("provider called %d times, want 1", llm.promptCalls)
	}
}
