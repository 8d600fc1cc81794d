package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/creative-sdg/multitulza-sub000/domain/models"
)

// userID เป็น string เพราะรองรับทั้ง UUID ของ registered user
// และ studio ID ของ pseudo user
type HistoryRepository interface {
	// Upsert บันทึก history item; ถ้ามี (user_id, image_id) อยู่แล้วให้ทับของเดิม
	Upsert(ctx context.Context, item *models.HistoryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.HistoryItem, error)
	GetByImageID(ctx context.Context, userID, imageID string) (*models.HistoryItem, error)
	// ListByUser เรียงใหม่สุดก่อน
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]*models.HistoryItem, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, userID, imageID string) error
	DeleteAllByUser(ctx context.Context, userID string) (int64, error)
}
