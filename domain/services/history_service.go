package services

import (
	"context"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
	"github.com/creative-sdg/multitulza-sub000/domain/models"
)

type HistoryService interface {
	// Save upsert history item ของ (user, imageId)
	// การ save ของ imageId เดียวกันถูก serialize ด้วย lock - last write wins
	Save(ctx context.Context, userID string, req *dto.SaveHistoryRequest) (*models.HistoryItem, error)

	// Get ดึง history item เดียว
	Get(ctx context.Context, userID, imageID string) (*models.HistoryItem, error)

	// List ดึง history ของ user เรียงใหม่สุดก่อน
	List(ctx context.Context, userID string, offset, limit int) ([]*models.HistoryItem, int64, error)

	// Delete ลบ item เดียว
	Delete(ctx context.Context, userID, imageID string) error

	// DeleteAll ล้าง history ทั้งหมดของ user คืนจำนวนที่ลบ
	DeleteAll(ctx context.Context, userID string) (int64, error)
}
