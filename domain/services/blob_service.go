package services

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/creative-sdg/multitulza-sub000/domain/models"
)

type BlobService interface {
	// SaveFromURL ดาวน์โหลด transient URL แล้วเก็บลง cache คืน blob record
	SaveFromURL(ctx context.Context, userID, sourceURL, contentType string) (*models.Blob, error)

	// SaveFromReader เก็บ binary ที่มีอยู่แล้ว (upload, TTS output)
	SaveFromReader(ctx context.Context, userID string, r io.Reader, size int64, contentType string) (*models.Blob, error)

	// SaveFromUpload เก็บไฟล์จาก multipart form
	SaveFromUpload(ctx context.Context, userID string, file *multipart.FileHeader) (*models.Blob, error)

	// Get อ่าน blob กลับ - reader ต้องถูก Close โดย caller
	Get(ctx context.Context, key string) (*models.Blob, io.ReadCloser, error)

	// GetRange อ่านบางส่วนของ blob (byte range request)
	GetRange(ctx context.Context, key string, start, end int64) (*models.Blob, io.ReadCloser, int64, error)

	// GetMeta อ่านเฉพาะ record โดยไม่เปิดไฟล์
	GetMeta(ctx context.Context, key string) (*models.Blob, error)

	// List ดึง blob ของ user พร้อมขนาดรวม
	List(ctx context.Context, userID string, offset, limit int) ([]*models.Blob, int64, error)

	// Delete ลบ blob (เฉพาะเจ้าของ)
	Delete(ctx context.Context, userID, key string) error

	// PublicURL คืน URL ที่ client ใช้อ่าน blob ผ่าน API
	PublicURL(key string) string

	// CleanupOrphans ลบ blob ที่เก่าเกิน TTL และไม่ถูก history อ้างถึง
	// คืนจำนวนที่ลบ
	CleanupOrphans(ctx context.Context) (int, error)
}
