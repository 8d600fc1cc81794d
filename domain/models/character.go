package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// GenerationMode preset ที่เลือก activity list และ prompt template
type GenerationMode string

const (
	ModeNormal   GenerationMode = "normal"
	ModeSelfie   GenerationMode = "selfie"
	ModeRomantic GenerationMode = "romantic"
	ModeDate     GenerationMode = "date"
	ModeCouple   GenerationMode = "couple"
)

// ValidModes รายการ modes ที่ถูกต้อง
var ValidModes = []GenerationMode{ModeNormal, ModeSelfie, ModeRomantic, ModeDate, ModeCouple}

// IsValidMode ตรวจสอบว่า mode ถูกต้องหรือไม่
func IsValidMode(m string) bool {
	for _, valid := range ValidModes {
		if string(valid) == m {
			return true
		}
	}
	return false
}

// CharacterProfile โปรไฟล์ตัวละครที่ LLM สร้างจากรูปภาพ
type CharacterProfile struct {
	Name        string `json:"name"`
	Personality string `json:"personality"`
	Backstory   string `json:"backstory"`
	LivingPlace string `json:"livingPlace"`
	Style       string `json:"style"`
}

// Scan implements sql.Scanner for CharacterProfile
func (p *CharacterProfile) Scan(value interface{}) error {
	if value == nil {
		*p = CharacterProfile{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, p)
}

// Value implements driver.Valuer for CharacterProfile
func (p CharacterProfile) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// MediaType ประเภทของ generated media
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// GeneratedMedia หนึ่ง asset ที่ generate สำเร็จแล้ว (append-only ต่อ prompt)
type GeneratedMedia struct {
	Prompt     string    `json:"prompt"`
	URL        string    `json:"url"` // blob key หรือ transient URL
	Type       MediaType `json:"type"`
	Model      string    `json:"model"`
	Width      int       `json:"width,omitempty"`
	Height     int       `json:"height,omitempty"`
	Size       int64     `json:"size,omitempty"`
	Seed       int64     `json:"seed,omitempty"`
	Scene      string    `json:"scene"`
	Resolution string    `json:"resolution,omitempty"` // video เท่านั้น
	Duration   int       `json:"duration,omitempty"`   // วินาที, video เท่านั้น
	IsFavorite bool      `json:"isFavorite"`
}

// ImagePrompt หนึ่ง scene prompt พร้อมผลการ generate
// Error เก็บข้อความล้มเหลวล่าสุดของ prompt นี้ (ผู้ใช้ dismiss เอง)
type ImagePrompt struct {
	Scene             string           `json:"scene"`
	Prompt            string           `json:"prompt"`
	Variations        []string         `json:"variations,omitempty"`
	GeneratedImageURL string           `json:"generatedImageUrl,omitempty"` // blob key หรือ URL
	GeneratedMedia    []GeneratedMedia `json:"generatedMedia,omitempty"`
	Error             string           `json:"error,omitempty"`
}

// ImagePromptList เก็บเป็น jsonb column เดียว
type ImagePromptList []ImagePrompt

// Scan implements sql.Scanner for ImagePromptList
func (l *ImagePromptList) Scan(value interface{}) error {
	if value == nil {
		*l = ImagePromptList{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, l)
}

// Value implements driver.Valuer for ImagePromptList
func (l ImagePromptList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

// HistoryItem หน่วย persistence ของหนึ่ง character
// unique key คือ (user_id, image_id) - upsert แบบ last-write-wins
type HistoryItem struct {
	ID               uuid.UUID        `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID           string           `gorm:"size:100;not null;uniqueIndex:idx_history_user_image"`
	ImageID          string           `gorm:"size:100;not null;uniqueIndex:idx_history_user_image"` // blob key ของรูปต้นฉบับ
	CompanionImageID string           `gorm:"size:100"`
	Profile          CharacterProfile `gorm:"type:jsonb"`
	Prompts          ImagePromptList  `gorm:"type:jsonb"`
	Mode             GenerationMode   `gorm:"size:20;default:'normal'"`
	Style            string           `gorm:"size:100"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (HistoryItem) TableName() string {
	return "history_items"
}
