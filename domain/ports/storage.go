package ports

import (
	"io"
)

// StoragePort คือ interface หลักสำหรับ blob storage
// ทำให้เปลี่ยน storage provider ได้ง่าย (Local, S3/MinIO)
type StoragePort interface {
	// UploadFile อัปโหลดไฟล์ไปยัง storage
	// path: เส้นทางที่จะเก็บไฟล์ (เช่น "blobs/user-id/key")
	// contentType: MIME type ของไฟล์
	// return: URL ที่เข้าถึงไฟล์ได้
	UploadFile(file io.Reader, path string, contentType string) (string, error)

	// DeleteFile ลบไฟล์จาก storage
	DeleteFile(path string) error

	// DeleteFolder ลบไฟล์ทั้งหมดใน folder (prefix)
	// สำหรับลบ blob ทั้งหมดของ user
	DeleteFolder(prefix string) error

	// GetFileURL รับ URL สำหรับเข้าถึงไฟล์
	GetFileURL(path string) string

	// GetFileContent อ่านไฟล์จาก storage
	// return: io.ReadCloser, contentType, error
	GetFileContent(path string) (io.ReadCloser, string, error)

	// GetFileRange อ่านไฟล์บางส่วน (สำหรับ byte range requests ตอน stream วิดีโอ)
	// end = -1 หมายถึงถึงท้ายไฟล์
	// return: io.ReadCloser, totalFileSize, error
	GetFileRange(path string, start, end int64) (io.ReadCloser, int64, error)

	// GetProviderName ชื่อ provider (local, s3)
	GetProviderName() string
}
