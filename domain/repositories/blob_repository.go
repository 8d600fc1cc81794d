package repositories

import (
	"context"
	"time"

	"github.com/creative-sdg/multitulza-sub000/domain/models"
)

type BlobRepository interface {
	Create(ctx context.Context, blob *models.Blob) error
	GetByKey(ctx context.Context, key string) (*models.Blob, error)
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]*models.Blob, error)
	Delete(ctx context.Context, key string) error
	DeleteMany(ctx context.Context, keys []string) (int64, error)
	// ListOrphans ดึง blobs ที่เก่ากว่า threshold และไม่ถูกอ้างจาก history ใด
	// ใช้โดย cleanup job
	ListOrphans(ctx context.Context, threshold time.Time, limit int) ([]*models.Blob, error)
	// TotalSizeByUser รวมขนาด blob ของ user (bytes)
	TotalSizeByUser(ctx context.Context, userID string) (int64, error)
	Count(ctx context.Context) (int64, error)
}
