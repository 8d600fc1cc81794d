package dto

import (
	"time"

	"github.com/creative-sdg/multitulza-sub000/domain/models"
)

// SaveHistoryRequest บันทึก state ของ image หนึ่งรายการ
// เรียกซ้ำจาก (user, imageId) เดิมเป็นการทับของเก่า
type SaveHistoryRequest struct {
	ImageID          string                   `json:"imageId" validate:"required,max=100"`
	CompanionImageID string                   `json:"companionImageId" validate:"max=100"`
	Mode             string                   `json:"mode" validate:"required,oneof=normal selfie romantic date couple"`
	Style            string                   `json:"style" validate:"max=100"`
	Profile          *models.CharacterProfile `json:"profile"`
	Prompts          []models.ImagePrompt     `json:"prompts" validate:"max=20"`
}

type HistoryItemResponse struct {
	ID               string                   `json:"id"`
	ImageID          string                   `json:"imageId"`
	CompanionImageID string                   `json:"companionImageId,omitempty"`
	Mode             string                   `json:"mode"`
	Style            string                   `json:"style,omitempty"`
	Profile          *models.CharacterProfile `json:"profile,omitempty"`
	Prompts          []models.ImagePrompt     `json:"prompts,omitempty"`
	CreatedAt        time.Time                `json:"createdAt"`
	UpdatedAt        time.Time                `json:"updatedAt"`
}

type HistoryListResponse struct {
	Items []HistoryItemResponse `json:"items"`
	Meta  PaginationMeta        `json:"meta"`
}
