package dto

import "time"

// SaveBlobRequest เก็บ binary จาก URL ภายนอกลง cache
// ใช้ตอน provider คืน transient URL ที่จะหมดอายุ
type SaveBlobRequest struct {
	SourceURL   string `json:"sourceUrl" validate:"required,url,max=2000"`
	ContentType string `json:"contentType" validate:"max=100"`
}

type BlobResponse struct {
	Key         string    `json:"key"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	URL         string    `json:"url"` // endpoint ที่อ่าน blob กลับได้
	CreatedAt   time.Time `json:"createdAt"`
}

type BlobListResponse struct {
	Blobs     []BlobResponse `json:"blobs"`
	TotalSize int64          `json:"totalSize"`
	Meta      PaginationMeta `json:"meta"`
}
