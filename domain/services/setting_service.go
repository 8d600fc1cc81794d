package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
)

type SettingService interface {
	// GetAll ดึง settings ทุก category พร้อม source (env/database/default)
	GetAll(ctx context.Context) ([]dto.SettingsCategoryResponse, error)

	// GetByCategory ดึง settings ใน category เดียว
	GetByCategory(ctx context.Context, category string) (*dto.SettingsCategoryResponse, error)

	// Update แก้ไขค่า setting เดียว (env-overridden แก้ไม่ได้)
	Update(ctx context.Context, category, key, value string, changedBy *uuid.UUID) error

	// UpdateBatch แก้หลายค่าใน category เดียว
	UpdateBatch(ctx context.Context, category string, values map[string]string, changedBy *uuid.UUID) error

	// Reset ลบค่าใน database ให้ fallback กลับไป default
	Reset(ctx context.Context, category, key string, changedBy *uuid.UUID) error

	// GetAuditLogs ดึงประวัติการแก้ไข
	GetAuditLogs(ctx context.Context, limit, offset int) ([]dto.SettingAuditLogResponse, int64, error)

	// SeedDefaults insert default ที่ยังไม่มีใน database (รันตอน start)
	SeedDefaults(ctx context.Context) error
}
