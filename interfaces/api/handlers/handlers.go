package handlers

import (
	"github.com/creative-sdg/multitulza-sub000/domain/services"
	"github.com/creative-sdg/multitulza-sub000/pkg/settings"
)

// Services รวมทุก service ที่ handler ใช้
type Services struct {
	UserService      services.UserService
	CharacterService services.CharacterService
	MediaService     services.MediaService
	BlobService      services.BlobService
	HistoryService   services.HistoryService
	SpeechService    services.SpeechService
	TextBlockService services.TextBlockService
	SettingService   services.SettingService
	SettingsCache    *settings.SettingsCache
	JWTSecret        string
}

// Handlers รวมทุก HTTP handler
type Handlers struct {
	AuthHandler      *AuthHandler
	CharacterHandler *CharacterHandler
	MediaHandler     *MediaHandler
	TaskHandler      *TaskHandler
	BlobHandler      *BlobHandler
	HistoryHandler   *HistoryHandler
	SpeechHandler    *SpeechHandler
	AudioHandler     *AudioHandler
	TextBlockHandler *TextBlockHandler
	SettingHandler   *SettingHandler

	Services *Services
}

func NewHandlers(svcs *Services) *Handlers {
	return &Handlers{
		AuthHandler:      NewAuthHandler(svcs.UserService),
		CharacterHandler: NewCharacterHandler(svcs.CharacterService),
		MediaHandler:     NewMediaHandler(svcs.MediaService),
		TaskHandler:      NewTaskHandler(svcs.MediaService),
		BlobHandler:      NewBlobHandler(svcs.BlobService),
		HistoryHandler:   NewHistoryHandler(svcs.HistoryService),
		SpeechHandler:    NewSpeechHandler(svcs.SpeechService),
		AudioHandler:     NewAudioHandler(svcs.SettingsCache, svcs.SpeechService),
		TextBlockHandler: NewTextBlockHandler(svcs.TextBlockService),
		SettingHandler:   NewSettingHandler(svcs.SettingService),
		Services:         svcs,
	}
}
