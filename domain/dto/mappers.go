package dto

import (
	"github.com/creative-sdg/multitulza-sub000/domain/models"
	"github.com/creative-sdg/multitulza-sub000/domain/repositories"
)

func HistoryItemToResponse(item *models.HistoryItem) HistoryItemResponse {
	resp := HistoryItemResponse{
		ID:               item.ID.String(),
		ImageID:          item.ImageID,
		CompanionImageID: item.CompanionImageID,
		Mode:             string(item.Mode),
		Style:            item.Style,
		Prompts:          item.Prompts,
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}
	if item.Profile != (models.CharacterProfile{}) {
		profile := item.Profile
		resp.Profile = &profile
	}
	return resp
}

func HistoryItemsToResponse(items []*models.HistoryItem) []HistoryItemResponse {
	out := make([]HistoryItemResponse, len(items))
	for i, item := range items {
		out[i] = HistoryItemToResponse(item)
	}
	return out
}

func BlobToResponse(blob *models.Blob, url string) BlobResponse {
	return BlobResponse{
		Key:         blob.Key,
		ContentType: blob.ContentType,
		Size:        blob.Size,
		URL:         url,
		CreatedAt:   blob.CreatedAt,
	}
}

func UserToResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		Username: user.Username,
		StudioID: user.StudioID,
		Role:     user.Role,
	}
}

func SettingToResponse(s *repositories.SettingWithSource, envKey string) SettingResponse {
	value := s.Value
	if s.IsSecret && value != "" {
		value = "********"
	}
	return SettingResponse{
		Category:    s.Category,
		Key:         s.Key,
		Value:       value,
		ValueType:   s.ValueType,
		Description: s.Description,
		IsSecret:    s.IsSecret,
		Source:      string(s.Source),
		EnvKey:      envKey,
		UpdatedAt:   s.UpdatedAt,
	}
}

func AuditLogToResponse(log *models.SettingAuditLog) SettingAuditLogResponse {
	resp := SettingAuditLogResponse{
		ID:        log.ID.String(),
		Category:  log.Category,
		Key:       log.Key,
		OldValue:  log.OldValue,
		NewValue:  log.NewValue,
		ChangedAt: log.ChangedAt,
	}
	if log.ChangedBy != nil {
		resp.ChangedBy = log.ChangedBy.String()
	}
	return resp
}
