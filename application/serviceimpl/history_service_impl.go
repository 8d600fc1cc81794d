package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
	"github.com/creative-sdg/multitulza-sub000/domain/models"
	"github.com/creative-sdg/multitulza-sub000/domain/repositories"
	"github.com/creative-sdg/multitulza-sub000/domain/services"
	"github.com/creative-sdg/multitulza-sub000/pkg/logger"
	"github.com/creative-sdg/multitulza-sub000/pkg/settings"
)

const (
	saveLockTTL       = 10 * time.Second
	defaultMaxHistory = 200
)

// Locker serialize การเขียนต่อ key: redis.Client ใช้ข้าม process,
// LocalLocker ใช้ตอน dev ที่ปิด Redis
type Locker interface {
	WithLock(ctx context.Context, lockKey string, ttl time.Duration, fn func() error) error
}

type HistoryServiceImpl struct {
	historyRepo repositories.HistoryRepository
	locker      Locker
	settings    *settings.SettingsCache
}

func NewHistoryService(historyRepo repositories.HistoryRepository, locker Locker, cache *settings.SettingsCache) services.HistoryService {
	return &HistoryServiceImpl{
		historyRepo: historyRepo,
		locker:      locker,
		settings:    cache,
	}
}

// Save upsert history item ของ (user, imageId) แบบ last-write-wins
// lock ต่อ (user, imageId) กัน save ซ้อนจากหลาย tab
func (s *HistoryServiceImpl) Save(ctx context.Context, userID string, req *dto.SaveHistoryRequest) (*models.HistoryItem, error) {
	item := &models.HistoryItem{
		UserID:           userID,
		ImageID:          req.ImageID,
		CompanionImageID: req.CompanionImageID,
		Mode:             models.GenerationMode(req.Mode),
		Style:            req.Style,
		Prompts:          models.ImagePromptList(req.Prompts),
	}
	if req.Profile != nil {
		item.Profile = *req.Profile
	}

	lockKey := fmt.Sprintf("save:%s:%s", userID, req.ImageID)
	err := s.locker.WithLock(ctx, lockKey, saveLockTTL, func() error {
		existing, err := s.historyRepo.GetByImageID(ctx, userID, req.ImageID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing history: %w", err)
		}

		// รายการใหม่เช็ค limit ก่อน - upsert ของเดิมผ่านได้เสมอ
		if existing == nil {
			maxRows := s.settings.GetInt("general", "history_max_rows", defaultMaxHistory)
			count, err := s.historyRepo.CountByUser(ctx, userID)
			if err != nil {
				return fmt.Errorf("failed to count history: %w", err)
			}
			if count >= int64(maxRows) {
				return fmt.Errorf("%w: history limit of %d items reached", services.ErrConflict, maxRows)
			}
		}

		return s.historyRepo.Upsert(ctx, item)
	})
	if err != nil {
		return nil, err
	}

	saved, err := s.historyRepo.GetByImageID(ctx, userID, req.ImageID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload saved history: %w", err)
	}

	logger.InfoContext(ctx, "History item saved",
		"user_id", userID,
		"image_id", req.ImageID,
		"prompts", len(req.Prompts),
	)
	return saved, nil
}

func (s *HistoryServiceImpl) Get(ctx context.Context, userID, imageID string) (*models.HistoryItem, error) {
	item, err := s.historyRepo.GetByImageID(ctx, userID, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get history item: %w", err)
	}
	return item, nil
}

func (s *HistoryServiceImpl) List(ctx context.Context, userID string, offset, limit int) ([]*models.HistoryItem, int64, error) {
	items, err := s.historyRepo.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list history: %w", err)
	}

	total, err := s.historyRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count history: %w", err)
	}
	return items, total, nil
}

func (s *HistoryServiceImpl) Delete(ctx context.Context, userID, imageID string) error {
	err := s.historyRepo.Delete(ctx, userID, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return services.ErrNotFound
		}
		return fmt.Errorf("failed to delete history item: %w", err)
	}

	logger.InfoContext(ctx, "History item deleted", "user_id", userID, "image_id", imageID)
	return nil
}

func (s *HistoryServiceImpl) DeleteAll(ctx context.Context, userID string) (int64, error) {
	n, err := s.historyRepo.DeleteAllByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}

	logger.InfoContext(ctx, "History cleared", "user_id", userID, "removed", n)
	return n, nil
}
