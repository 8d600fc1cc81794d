package services

import (
	"context"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
	"github.com/creative-sdg/multitulza-sub000/domain/models"
)

type TextBlockService interface {
	// FetchBlock อ่าน text block จาก spreadsheet แถวเดียว
	// ถ้า brand ไม่ว่าง ทุก field ผ่าน rebrand ก่อนคืน
	FetchBlock(ctx context.Context, req *dto.FetchTextBlockRequest) (*models.TextBlock, error)

	// Rebrand แทน competitor brand ในข้อความ
	Rebrand(text, brand string) string
}
