package ports

import (
	"context"

	"github.com/creative-sdg/multitulza-sub000/domain/models"
)

// ═══════════════════════════════════════════════════════════════════════════════
// LLM Port - สำหรับ profile analysis และ scene prompt generation
// ═══════════════════════════════════════════════════════════════════════════════

// ImageInput รูปที่ส่งให้ LLM วิเคราะห์
type ImageInput struct {
	Data     []byte
	MimeType string
}

// ProfileRequest คำขอสร้าง character profile จากรูป
type ProfileRequest struct {
	Images       []ImageInput
	Instructions string // system prompt template หลัง substitute placeholder แล้ว
}

// ScenePromptRequest คำขอสร้าง scene prompts ชุดหนึ่งจาก profile
type ScenePromptRequest struct {
	Profile      *models.CharacterProfile
	Mode         models.GenerationMode
	Style        string
	Activities   []string // activity ที่สุ่มเลือกแล้ว หนึ่งรายการต่อ scene
	Instructions string
}

// LLMPort - Interface สำหรับ multimodal LLM (Gemini)
type LLMPort interface {
	// GenerateProfile วิเคราะห์รูปตัวละครแล้วคืน structured profile
	GenerateProfile(ctx context.Context, req *ProfileRequest) (*models.CharacterProfile, error)

	// GenerateScenePrompts สร้าง prompt รายละเอียดหนึ่งชุดต่อ scene
	// จำนวน prompt ที่คืนต้องเท่ากับ len(req.Activities)
	GenerateScenePrompts(ctx context.Context, req *ScenePromptRequest) ([]models.ImagePrompt, error)
}
