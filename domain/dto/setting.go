package dto

import "time"

type SettingResponse struct {
	Category    string    `json:"category"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	ValueType   string    `json:"valueType"`
	Description string    `json:"description,omitempty"`
	IsSecret    bool      `json:"isSecret"`
	Source      string    `json:"source"` // env, database, default
	EnvKey      string    `json:"envKey,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type SettingsCategoryResponse struct {
	Category string            `json:"category"`
	Settings []SettingResponse `json:"settings"`
}

type UpdateSettingRequest struct {
	Value string `json:"value" validate:"required"`
}

type UpdateSettingsBatchRequest struct {
	Settings map[string]string `json:"settings" validate:"required,min=1"`
}

type SettingAuditLogResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Key       string    `json:"key"`
	OldValue  string    `json:"oldValue"`
	NewValue  string    `json:"newValue"`
	ChangedBy string    `json:"changedBy,omitempty"`
	ChangedAt time.Time `json:"changedAt"`
}

type SettingAuditLogListResponse struct {
	Logs []SettingAuditLogResponse `json:"logs"`
	Meta PaginationMeta            `json:"meta"`
}
