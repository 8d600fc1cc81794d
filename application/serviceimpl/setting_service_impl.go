package serviceimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
	"github.com/creative-sdg/multitulza-sub000/domain/models"
	"github.com/creative-sdg/multitulza-sub000/domain/repositories"
	"github.com/creative-sdg/multitulza-sub000/domain/services"
	"github.com/creative-sdg/multitulza-sub000/pkg/logger"
	"github.com/creative-sdg/multitulza-sub000/pkg/settings"
)

type SettingServiceImpl struct {
	repo  repositories.SettingRepository
	cache *settings.SettingsCache
}

func NewSettingService(repo repositories.SettingRepository, cache *settings.SettingsCache) services.SettingService {
	return &SettingServiceImpl{
		repo:  repo,
		cache: cache,
	}
}

// GetAll ดึง settings ทุก category พร้อม source (env/database/default)
func (s *SettingServiceImpl) GetAll(ctx context.Context) ([]dto.SettingsCategoryResponse, error) {
	var result []dto.SettingsCategoryResponse

	for _, category := range models.ValidCategories {
		resp, err := s.GetByCategory(ctx, string(category))
		if err != nil {
			return nil, err
		}
		result = append(result, *resp)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Category < result[j].Category
	})
	return result, nil
}

// GetByCategory ดึง settings ใน category เดียว
// ไล่จาก defaults เพื่อให้ได้ครบทุก key แม้ DB ยังไม่มี row
func (s *SettingServiceImpl) GetByCategory(ctx context.Context, category string) (*dto.SettingsCategoryResponse, error) {
	catDefaults, ok := settings.DefaultSettings[category]
	if !ok {
		return nil, fmt.Errorf("%w: unknown category %s", services.ErrNotFound, category)
	}

	// DB rows สำหรับ UpdatedAt
	dbRows, err := s.repo.GetByCategory(ctx, category)
	if err != nil {
		logger.WarnContext(ctx, "Failed to read settings from DB, using cache only",
			"category", category,
			"error", err,
		)
	}
	byKey := make(map[string]*models.SystemSetting, len(dbRows))
	for _, row := range dbRows {
		byKey[row.Key] = row
	}

	resp := &dto.SettingsCategoryResponse{Category: category}
	for key, def := range catDefaults {
		value, source := s.cache.GetWithSource(category, key)

		setting := &models.SystemSetting{
			Category:    category,
			Key:         key,
			Value:       value,
			ValueType:   string(def.Type),
			Description: def.Description,
			IsSecret:    def.IsSecret,
		}
		if row, ok := byKey[key]; ok {
			setting.UpdatedAt = row.UpdatedAt
		}

		resp.Settings = append(resp.Settings, dto.SettingToResponse(
			&repositories.SettingWithSource{SystemSetting: setting, Source: source},
			s.cache.GetEnvKey(category, key),
		))
	}

	sort.Slice(resp.Settings, func(i, j int) bool {
		return resp.Settings[i].Key < resp.Settings[j].Key
	})
	return resp, nil
}

// Update แก้ไขค่า setting เดียว
// ค่าที่ถูก ENV override แก้ไม่ได้ - ต้องแก้ที่ environment
func (s *SettingServiceImpl) Update(ctx context.Context, category, key, value string, changedBy *uuid.UUID) error {
	def, err := s.lookupDefinition(category, key)
	if err != nil {
		return err
	}

	if s.cache.IsEnvOverridden(category, key) {
		return fmt.Errorf("%w: %s.%s is set via %s", services.ErrLocked, category, key, s.cache.GetEnvKey(category, key))
	}

	if err := validateSettingValue(def.Type, value); err != nil {
		return fmt.Errorf("%w: %v", services.ErrInvalidInput, err)
	}

	oldValue := s.cache.Get(category, key)

	setting := &models.SystemSetting{
		Category:    category,
		Key:         key,
		Value:       value,
		ValueType:   string(def.Type),
		Description: def.Description,
		IsSecret:    def.IsSecret,
		UpdatedBy:   changedBy,
	}
	if err := s.repo.Upsert(ctx, setting); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}

	s.cache.Set(category, key, value)

	if err := s.repo.CreateAuditLog(ctx, &models.SettingAuditLog{
		Category:  category,
		Key:       key,
		OldValue:  oldValue,
		NewValue:  value,
		ChangedBy: changedBy,
	}); err != nil {
		logger.WarnContext(ctx, "Failed to write setting audit log",
			"category", category,
			"key", key,
			"error", err,
		)
	}

	logger.InfoContext(ctx, "Setting updated",
		"category", category,
		"key", key,
	)
	return nil
}

// UpdateBatch แก้หลายค่าใน category เดียว - ตรวจทุกค่าก่อนเริ่มเขียน
func (s *SettingServiceImpl) UpdateBatch(ctx context.Context, category string, values map[string]string, changedBy *uuid.UUID) error {
	for key, value := range values {
		def, err := s.lookupDefinition(category, key)
		if err != nil {
			return err
		}
		if s.cache.IsEnvOverridden(category, key) {
			return fmt.Errorf("%w: %s.%s is set via %s", services.ErrLocked, category, key, s.cache.GetEnvKey(category, key))
		}
		if err := validateSettingValue(def.Type, value); err != nil {
			return fmt.Errorf("%w: %s: %v", services.ErrInvalidInput, key, err)
		}
	}

	for key, value := range values {
		if err := s.Update(ctx, category, key, value, changedBy); err != nil {
			return err
		}
	}
	return nil
}

// Reset ลบค่าใน database ให้ fallback กลับไป default
func (s *SettingServiceImpl) Reset(ctx context.Context, category, key string, changedBy *uuid.UUID) error {
	def, err := s.lookupDefinition(category, key)
	if err != nil {
		return err
	}

	oldValue := s.cache.Get(category, key)

	if err := s.repo.Delete(ctx, category, key); err != nil {
		return fmt.Errorf("failed to reset setting: %w", err)
	}

	s.cache.Invalidate(category)
	if err := s.cache.Reload(ctx); err != nil {
		logger.WarnContext(ctx, "Failed to reload settings cache after reset", "error", err)
	}

	if err := s.repo.CreateAuditLog(ctx, &models.SettingAuditLog{
		Category:  category,
		Key:       key,
		OldValue:  oldValue,
		NewValue:  def.Value,
		ChangedBy: changedBy,
	}); err != nil {
		logger.WarnContext(ctx, "Failed to write setting audit log", "error", err)
	}

	logger.InfoContext(ctx, "Setting reset to default",
		"category", category,
		"key", key,
	)
	return nil
}

func (s *SettingServiceImpl) GetAuditLogs(ctx context.Context, limit, offset int) ([]dto.SettingAuditLogResponse, int64, error) {
	if limit <= 0 {
		limit = 50
	}

	logs, total, err := s.repo.GetAuditLogs(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get audit logs: %w", err)
	}

	out := make([]dto.SettingAuditLogResponse, len(logs))
	for i, log := range logs {
		out[i] = dto.AuditLogToResponse(log)
	}
	return out, total, nil
}

// SeedDefaults insert default ที่ยังไม่มีใน database (รันตอน start)
func (s *SettingServiceImpl) SeedDefaults(ctx context.Context) error {
	if err := s.repo.InsertDefaults(ctx, settings.GetDefaultModels()); err != nil {
		return fmt.Errorf("failed to seed default settings: %w", err)
	}
	return s.cache.Reload(ctx)
}

func (s *SettingServiceImpl) lookupDefinition(category, key string) (*settings.SettingDefinition, error) {
	catDefaults, ok := settings.DefaultSettings[category]
	if !ok {
		return nil, fmt.Errorf("%w: unknown category %s", services.ErrNotFound, category)
	}
	def, ok := catDefaults[key]
	if !ok {
		return nil, fmt.Errorf("%w: unknown setting %s.%s", services.ErrNotFound, category, key)
	}
	return &def, nil
}

func validateSettingValue(valueType models.SettingValueType, value string) error {
	switch valueType {
	case models.SettingTypeNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("expected a number, got %q", value)
		}
	case models.SettingTypeBoolean:
		if value != "true" && value != "false" && value != "1" && value != "0" {
			return fmt.Errorf("expected a boolean, got %q", value)
		}
	case models.SettingTypeJSON:
		if !json.Valid([]byte(value)) {
			return fmt.Errorf("expected valid JSON")
		}
	}
	return nil
}
