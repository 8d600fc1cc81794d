package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/creative-sdg/multitulza-sub000/domain/models"
	"github.com/creative-sdg/multitulza-sub000/domain/repositories"
)

type BlobRepositoryImpl struct {
	db *gorm.DB
}

func NewBlobRepository(db *gorm.DB) repositories.BlobRepository {
	return &BlobRepositoryImpl{db: db}
}

func (r *BlobRepositoryImpl) Create(ctx context.Context, blob *models.Blob) error {
	return r.db.WithContext(ctx).Create(blob).Error
}

func (r *BlobRepositoryImpl) GetByKey(ctx context.Context, key string) (*models.Blob, error) {
	var blob models.Blob
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&blob).Error
	if err != nil {
		return nil, err
	}
	return &blob, nil
}

func (r *BlobRepositoryImpl) ListByUser(ctx context.Context, userID string, offset, limit int) ([]*models.Blob, error) {
	var blobs []*models.Blob
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&blobs).Error
	return blobs, err
}

func (r *BlobRepositoryImpl) Delete(ctx context.Context, key string) error {
	result := r.db.WithContext(ctx).Where("key = ?", key).Delete(&models.Blob{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BlobRepositoryImpl) DeleteMany(ctx context.Context, keys []string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Where("key IN ?", keys).Delete(&models.Blob{})
	return result.RowsAffected, result.Error
}

// ListOrphans ดึง blob ที่เก่ากว่า threshold และ key ไม่ปรากฏใน history
// ทั้งใน image_id, companion_image_id และใน prompts jsonb
func (r *BlobRepositoryImpl) ListOrphans(ctx context.Context, threshold time.Time, limit int) ([]*models.Blob, error) {
	var blobs []*models.Blob
	err := r.db.WithContext(ctx).
		Where("created_at < ?", threshold).
		Where(`NOT EXISTS (
			SELECT 1 FROM history_items h
			WHERE h.image_id = blobs.key
			   OR h.companion_image_id = blobs.key
			   OR h.prompts::text LIKE '%' || blobs.key || '%'
		)`).
		Order("created_at ASC").
		Limit(limit).
		Find(&blobs).Error
	return blobs, err
}

func (r *BlobRepositoryImpl) TotalSizeByUser(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Blob{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(size), 0)").
		Scan(&total).Error
	return total, err
}

func (r *BlobRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Blob{}).Count(&count).Error
	return count, err
}
