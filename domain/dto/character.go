package dto

import "github.com/creative-sdg/multitulza-sub000/domain/models"

// GenerateProfileRequest คำขอวิเคราะห์ตัวละครจากรูปอ้างอิง
// รูปส่งเป็น blob key ที่อัปโหลดไว้ก่อนแล้ว
type GenerateProfileRequest struct {
	ImageKeys []string `json:"imageKeys" validate:"required,min=1,max=4,dive,required"`
	Mode      string   `json:"mode" validate:"required,oneof=normal selfie romantic date couple"`
	Style     string   `json:"style" validate:"max=100"`
}

type GenerateProfileResponse struct {
	Profile models.CharacterProfile `json:"profile"`
}

// UpdateProfileRequest แก้ไข profile ที่ user ปรับมือ
type UpdateProfileRequest struct {
	ImageID string                  `json:"imageId" validate:"required,max=100"`
	Profile models.CharacterProfile `json:"profile" validate:"required"`
}

// GeneratePromptsRequest คำขอสร้าง scene prompts จาก profile
type GeneratePromptsRequest struct {
	ImageID    string                   `json:"imageId" validate:"required,max=100"`
	Profile    *models.CharacterProfile `json:"profile" validate:"required"`
	Mode       string                   `json:"mode" validate:"required,oneof=normal selfie romantic date couple"`
	Style      string                   `json:"style" validate:"max=100"`
	SceneCount int                      `json:"sceneCount" validate:"gte=0,lte=12"`
}

type GeneratePromptsResponse struct {
	Prompts []models.ImagePrompt `json:"prompts"`
}

// RegeneratePromptRequest สร้าง prompt ใหม่เฉพาะ scene เดียว
type RegeneratePromptRequest struct {
	ImageID string                   `json:"imageId" validate:"required,max=100"`
	Profile *models.CharacterProfile `json:"profile" validate:"required"`
	Mode    string                   `json:"mode" validate:"required,oneof=normal selfie romantic date couple"`
	Style   string                   `json:"style" validate:"max=100"`
	Scene   string                   `json:"scene" validate:"required,max=200"`
}

type RegeneratePromptResponse struct {
	Prompt models.ImagePrompt `json:"prompt"`
}
