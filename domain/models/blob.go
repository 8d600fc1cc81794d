package models

import "time"

// Blob บันทึก index ของ binary ที่เก็บใน storage
// Key เป็น opaque ID (timestamp + random suffix) ที่แจกให้ client แทน transient URL
type Blob struct {
	Key         string `gorm:"primaryKey;size:100"`
	UserID      string `gorm:"size:100;index"`
	ContentType string `gorm:"size:100"`
	Size        int64
	StoragePath string `gorm:"size:255;not null"` // path ใน StoragePort
	SourceURL   string `gorm:"type:text"`         // transient URL ต้นทาง (ถ้ามี)
	CreatedAt   time.Time
}

func (Blob) TableName() string {
	return "blobs"
}
