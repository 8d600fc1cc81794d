package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/creative-sdg/multitulza-sub000/domain/models"
	"github.com/creative-sdg/multitulza-sub000/domain/repositories"
)

type HistoryRepositoryImpl struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) repositories.HistoryRepository {
	return &HistoryRepositoryImpl{db: db}
}

// Upsert conflict ที่ (user_id, image_id) - last write wins
func (r *HistoryRepositoryImpl) Upsert(ctx context.Context, item *models.HistoryItem) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "image_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"companion_image_id", "profile", "prompts", "mode", "style", "updated_at",
			}),
		}).
		Create(item).Error
}

func (r *HistoryRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.HistoryItem, error) {
	var item models.HistoryItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *HistoryRepositoryImpl) GetByImageID(ctx context.Context, userID, imageID string) (*models.HistoryItem, error) {
	var item models.HistoryItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND image_id = ?", userID, imageID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *HistoryRepositoryImpl) ListByUser(ctx context.Context, userID string, offset, limit int) ([]*models.HistoryItem, error) {
	var items []*models.HistoryItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *HistoryRepositoryImpl) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.HistoryItem{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *HistoryRepositoryImpl) Delete(ctx context.Context, userID, imageID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND image_id = ?", userID, imageID).
		Delete(&models.HistoryItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *HistoryRepositoryImpl) DeleteAllByUser(ctx context.Context, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.HistoryItem{})
	return result.RowsAffected, result.Error
}
