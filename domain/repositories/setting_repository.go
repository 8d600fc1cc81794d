package repositories

import (
	"context"

	"github.com/creative-sdg/multitulza-sub000/domain/models"
)

type SettingRepository interface {
	// Settings CRUD
	GetAll(ctx context.Context) ([]*models.SystemSetting, error)
	GetByCategory(ctx context.Context, category string) ([]*models.SystemSetting, error)
	GetByKey(ctx context.Context, category, key string) (*models.SystemSetting, error)
	Upsert(ctx context.Context, setting *models.SystemSetting) error
	UpsertMany(ctx context.Context, settings []*models.SystemSetting) error
	Delete(ctx context.Context, category, key string) error
	DeleteByCategory(ctx context.Context, category string) error

	// Audit Logs
	CreateAuditLog(ctx context.Context, log *models.SettingAuditLog) error
	GetAuditLogs(ctx context.Context, limit int, offset int) ([]*models.SettingAuditLog, int64, error)
	GetAuditLogsByCategory(ctx context.Context, category string, limit int) ([]*models.SettingAuditLog, error)

	// Bulk operations
	InsertDefaults(ctx context.Context, settings []*models.SystemSetting) error
	GetAllGroupedByCategory(ctx context.Context) (map[string][]*models.SystemSetting, error)
}

// SettingWithSource เพิ่ม source information
type SettingWithSource struct {
	*models.SystemSetting
	Source models.SettingSource `json:"source"`
}
