package services

import (
	"context"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
	"github.com/creative-sdg/multitulza-sub000/domain/models"
)

type CharacterService interface {
	// GenerateProfile วิเคราะห์รูปใน blob cache แล้วคืน structured profile
	GenerateProfile(ctx context.Context, userID string, req *dto.GenerateProfileRequest) (*models.CharacterProfile, error)

	// GeneratePrompts สร้าง scene prompts หนึ่งชุดสำหรับ profile
	// จำนวน scene มาจาก req.SceneCount หรือ settings ถ้าเป็น 0
	// activity ต่อ scene สุ่มจาก activity list ของ mode โดยไม่ซ้ำกัน
	GeneratePrompts(ctx context.Context, userID string, req *dto.GeneratePromptsRequest) ([]models.ImagePrompt, error)

	// RegeneratePrompt สร้าง prompt ใหม่สำหรับ scene เดียว
	RegeneratePrompt(ctx context.Context, userID string, req *dto.RegeneratePromptRequest) (*models.ImagePrompt, error)
}
