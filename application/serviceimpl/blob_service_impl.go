package serviceimpl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"github.com/creative-sdg/multitulza-sub000/domain/models"
	"github.com/creative-sdg/multitulza-sub000/domain/ports"
	"github.com/creative-sdg/multitulza-sub000/domain/repositories"
	"github.com/creative-sdg/multitulza-sub000/domain/services"
	"github.com/creative-sdg/multitulza-sub000/pkg/config"
	"github.com/creative-sdg/multitulza-sub000/pkg/logger"
	"github.com/creative-sdg/multitulza-sub000/pkg/utils"
)

const (
	downloadTimeout    = 120 * time.Second
	orphanCleanupBatch = 100
	defaultMaxBlobSize = 100 * 1024 * 1024 // 100MB
	defaultOrphanTTL   = 24 * time.Hour
	defaultContentType = "application/octet-stream"
)

type BlobServiceImpl struct {
	blobRepo    repositories.BlobRepository
	storage     ports.StoragePort
	cfg         config.StorageConfig
	httpClient  *http.Client
	maxBlobSize int64
	orphanTTL   time.Duration
}

func NewBlobService(blobRepo repositories.BlobRepository, storage ports.StoragePort, cfg config.StorageConfig) services.BlobService {
	maxSize := cfg.MaxBlobSize
	if maxSize <= 0 {
		maxSize = defaultMaxBlobSize
	}
	ttl := defaultOrphanTTL
	if cfg.OrphanTTLHours > 0 {
		ttl = time.Duration(cfg.OrphanTTLHours) * time.Hour
	}

	return &BlobServiceImpl{
		blobRepo: blobRepo,
		storage:  storage,
		cfg:      cfg,
		httpClient: &http.Client{
			Timeout: downloadTimeout,
		},
		maxBlobSize: maxSize,
		orphanTTL:   ttl,
	}
}

// SaveFromURL ดาวน์โหลด transient URL แล้วเก็บลง cache
// provider URL หมดอายุเร็ว ต้อง cache ทันทีหลัง generate เสร็จ
func (s *BlobServiceImpl) SaveFromURL(ctx context.Context, userID, sourceURL, contentType string) (*models.Blob, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid source URL: %v", services.ErrInvalidInput, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: download failed: %v", services.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: source returned %d", services.ErrUpstream, resp.StatusCode)
	}

	if resp.ContentLength > s.maxBlobSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit %d", services.ErrTooLarge, resp.ContentLength, s.maxBlobSize)
	}

	if contentType == "" {
		contentType = resp.Header.Get("Content-Type")
	}

	// อ่านทั้งก้อนพร้อม limit+1 เพื่อตรวจ oversize กรณี server ไม่ส่ง Content-Length
	data, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBlobSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read failed: %v", services.ErrUpstream, err)
	}
	if int64(len(data)) > s.maxBlobSize {
		return nil, fmt.Errorf("%w: exceeds limit %d bytes", services.ErrTooLarge, s.maxBlobSize)
	}

	blob, err := s.store(ctx, userID, bytes.NewReader(data), int64(len(data)), contentType, sourceURL, "")
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Blob cached from URL",
		"key", blob.Key,
		"user_id", userID,
		"size", blob.Size,
		"content_type", blob.ContentType,
	)
	return blob, nil
}

func (s *BlobServiceImpl) SaveFromReader(ctx context.Context, userID string, r io.Reader, size int64, contentType string) (*models.Blob, error) {
	if size > s.maxBlobSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit %d", services.ErrTooLarge, size, s.maxBlobSize)
	}
	return s.store(ctx, userID, r, size, contentType, "", "")
}

func (s *BlobServiceImpl) SaveFromUpload(ctx context.Context, userID string, file *multipart.FileHeader) (*models.Blob, error) {
	if file.Size > s.maxBlobSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit %d", services.ErrTooLarge, file.Size, s.maxBlobSize)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")

	blob, err := s.store(ctx, userID, src, file.Size, contentType, "", file.Filename)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Blob uploaded",
		"key", blob.Key,
		"user_id", userID,
		"filename", file.Filename,
		"size", blob.Size,
	)
	return blob, nil
}

func (s *BlobServiceImpl) store(ctx context.Context, userID string, r io.Reader, size int64, contentType, sourceURL, filename string) (*models.Blob, error) {
	if contentType == "" {
		contentType = defaultContentType
	}

	// local storage เช็ค disk ก่อนเขียน กัน disk เต็มกลางไฟล์
	if s.storage.GetProviderName() == "local" && size > 0 {
		ok, info, err := utils.CheckDiskSpace(s.cfg.BasePath, size, 0)
		if err == nil && !ok {
			return nil, utils.NewDiskSpaceError(size, info.Free)
		}
	}

	key := utils.GenerateBlobKey()
	storagePath := fmt.Sprintf("blobs/%s/%s", userID, key)

	// filename จาก upload ติดไว้ท้าย path ให้อ่านออกเวลาไล่ดูใน storage
	if filename != "" {
		ext := filepath.Ext(filename)
		base := slug.Make(strings.TrimSuffix(filename, ext))
		if base != "" {
			storagePath = fmt.Sprintf("%s-%s%s", storagePath, base, strings.ToLower(ext))
		}
	}

	if _, err := s.storage.UploadFile(r, storagePath, contentType); err != nil {
		return nil, fmt.Errorf("failed to store blob: %w", err)
	}

	blob := &models.Blob{
		Key:         key,
		UserID:      userID,
		ContentType: contentType,
		Size:        size,
		StoragePath: storagePath,
		SourceURL:   sourceURL,
	}

	if err := s.blobRepo.Create(ctx, blob); err != nil {
		// record ไม่เข้า ลบไฟล์ทิ้งไม่ให้ค้าง
		_ = s.storage.DeleteFile(storagePath)
		return nil, fmt.Errorf("failed to save blob record: %w", err)
	}

	return blob, nil
}

func (s *BlobServiceImpl) Get(ctx context.Context, key string) (*models.Blob, io.ReadCloser, error) {
	blob, err := s.blobRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, nil, services.ErrNotFound
	}

	reader, _, err := s.storage.GetFileContent(blob.StoragePath)
	if err != nil {
		logger.WarnContext(ctx, "Blob record exists but file is missing",
			"key", key,
			"path", blob.StoragePath,
		)
		return nil, nil, services.ErrNotFound
	}
	return blob, reader, nil
}

func (s *BlobServiceImpl) GetRange(ctx context.Context, key string, start, end int64) (*models.Blob, io.ReadCloser, int64, error) {
	blob, err := s.blobRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, nil, 0, services.ErrNotFound
	}

	reader, total, err := s.storage.GetFileRange(blob.StoragePath, start, end)
	if err != nil {
		return nil, nil, 0, services.ErrNotFound
	}
	return blob, reader, total, nil
}

func (s *BlobServiceImpl) GetMeta(ctx context.Context, key string) (*models.Blob, error) {
	blob, err := s.blobRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, services.ErrNotFound
	}
	return blob, nil
}

func (s *BlobServiceImpl) List(ctx context.Context, userID string, offset, limit int) ([]*models.Blob, int64, error) {
	blobs, err := s.blobRepo.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list blobs: %w", err)
	}

	totalSize, err := s.blobRepo.TotalSizeByUser(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to sum blob sizes: %w", err)
	}
	return blobs, totalSize, nil
}

func (s *BlobServiceImpl) Delete(ctx context.Context, userID, key string) error {
	blob, err := s.blobRepo.GetByKey(ctx, key)
	if err != nil {
		return services.ErrNotFound
	}
	if blob.UserID != userID {
		return services.ErrForbidden
	}

	if err := s.storage.DeleteFile(blob.StoragePath); err != nil {
		logger.WarnContext(ctx, "Failed to delete blob file, removing record anyway",
			"key", key,
			"error", err,
		)
	}

	if err := s.blobRepo.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete blob record: %w", err)
	}

	logger.InfoContext(ctx, "Blob deleted", "key", key, "user_id", userID)
	return nil
}

// PublicURL คืน API path ที่ client ใช้อ่าน blob กลับ
func (s *BlobServiceImpl) PublicURL(key string) string {
	return fmt.Sprintf("/api/v1/blobs/%s", key)
}

// CleanupOrphans ลบ blob ที่เก่าเกิน TTL และไม่ถูก history อ้างถึง
// รันจาก scheduler เป็นรอบ ๆ
func (s *BlobServiceImpl) CleanupOrphans(ctx context.Context) (int, error) {
	threshold := time.Now().Add(-s.orphanTTL)
	removed := 0

	for {
		orphans, err := s.blobRepo.ListOrphans(ctx, threshold, orphanCleanupBatch)
		if err != nil {
			return removed, fmt.Errorf("failed to list orphan blobs: %w", err)
		}
		if len(orphans) == 0 {
			break
		}

		keys := make([]string, 0, len(orphans))
		for _, blob := range orphans {
			if err := s.storage.DeleteFile(blob.StoragePath); err != nil {
				logger.WarnContext(ctx, "Failed to delete orphan file",
					"key", blob.Key,
					"error", err,
				)
			}
			keys = append(keys, blob.Key)
		}

		n, err := s.blobRepo.DeleteMany(ctx, keys)
		if err != nil {
			return removed, fmt.Errorf("failed to delete orphan records: %w", err)
		}
		removed += int(n)

		if len(orphans) < orphanCleanupBatch {
			break
		}
	}

	if removed > 0 {
		logger.InfoContext(ctx, "Orphan blobs cleaned up", "removed", removed)
	}
	return removed, nil
}
