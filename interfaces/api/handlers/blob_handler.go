package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
	"github.com/creative-sdg/multitulza-sub000/domain/services"
	"github.com/creative-sdg/multitulza-sub000/interfaces/api/middleware"
	"github.com/creative-sdg/multitulza-sub000/pkg/utils"
)

type BlobHandler struct {
	blobService services.BlobService
}

func NewBlobHandler(blobService services.BlobService) *BlobHandler {
	return &BlobHandler{blobService: blobService}
}

// Upload รับไฟล์จาก multipart form
// POST /api/v1/blobs/upload
func (h *BlobHandler) Upload(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequestResponse(c, "Missing file field")
	}

	blob, err := h.blobService.SaveFromUpload(c.UserContext(), user.Key(), file)
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	return utils.CreatedResponse(c, dto.BlobToResponse(blob, h.blobService.PublicURL(blob.Key)))
}

// SaveFromURL ดาวน์โหลด transient URL แล้วเก็บลง cache
// POST /api/v1/blobs
func (h *BlobHandler) SaveFromURL(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.SaveBlobRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	blob, err := h.blobService.SaveFromURL(c.UserContext(), user.Key(), req.SourceURL, req.ContentType)
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	return utils.CreatedResponse(c, dto.BlobToResponse(blob, h.blobService.PublicURL(blob.Key)))
}

// Get stream blob กลับ - รองรับ byte range สำหรับ video/audio
// GET /api/v1/blobs/:key
func (h *BlobHandler) Get(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return utils.BadRequestResponse(c, "Blob key is required")
	}

	rangeHeader := c.Get("Range")
	if rangeHeader != "" {
		return h.streamRange(c, key, rangeHeader)
	}

	blob, reader, err := h.blobService.Get(c.UserContext(), key)
	if err != nil {
		return middleware.ServiceError(c, err)
	}

	c.Set("Content-Type", blob.ContentType)
	c.Set("Accept-Ranges", "bytes")
	c.Set("Cache-Control", "private, max-age=86400")
	if blob.Size > 0 {
		c.Set("Content-Length", strconv.FormatInt(blob.Size, 10))
	}
	return c.SendStream(reader)
}

func (h *BlobHandler) streamRange(c *fiber.Ctx, key, rangeHeader string) error {
	start, end, ok := parseRangeHeader(rangeHeader)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid Range header")
	}

	blob, reader, total, err := h.blobService.GetRange(c.UserContext(), key, start, end)
	if err != nil {
		return middleware.ServiceError(c, err)
	}

	if end < 0 || end >= total {
		end = total - 1
	}

	c.Status(fiber.StatusPartialContent)
	c.Set("Content-Type", blob.ContentType)
	c.Set("Accept-Ranges", "bytes")
	c.Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", start, end, total))
	c.Set("Content-Length", strconv.FormatInt(end-start+1, 10))
	return c.SendStream(reader)
}

// Meta อ่านเฉพาะ record ไม่เปิดไฟล์
// GET /api/v1/blobs/:key/meta
func (h *BlobHandler) Meta(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return utils.BadRequestResponse(c, "Blob key is required")
	}

	blob, err := h.blobService.GetMeta(c.UserContext(), key)
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	return utils.SuccessResponse(c, dto.BlobToResponse(blob, h.blobService.PublicURL(blob.Key)))
}

// List ดึง blob ของ user พร้อมขนาดรวม
// GET /api/v1/blobs
func (h *BlobHandler) List(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	var page dto.PaginationRequest
	if err := c.QueryParser(&page); err != nil {
		return utils.BadRequestResponse(c, "Invalid pagination parameters")
	}
	if err := utils.ValidateStruct(&page); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}
	page.Normalize()

	blobs, totalSize, err := h.blobService.List(c.UserContext(), user.Key(), page.Offset, page.Limit)
	if err != nil {
		return middleware.ServiceError(c, err)
	}

	resp := dto.BlobListResponse{
		Blobs:     make([]dto.BlobResponse, 0, len(blobs)),
		TotalSize: totalSize,
		Meta: dto.PaginationMeta{
			Total:  int64(len(blobs)),
			Offset: page.Offset,
			Limit:  page.Limit,
		},
	}
	for _, blob := range blobs {
		resp.Blobs = append(resp.Blobs, dto.BlobToResponse(blob, h.blobService.PublicURL(blob.Key)))
	}
	return utils.SuccessResponse(c, resp)
}

// Delete ลบ blob (เฉพาะเจ้าของ)
// DELETE /api/v1/blobs/:key
func (h *BlobHandler) Delete(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	key := c.Params("key")
	if key == "" {
		return utils.BadRequestResponse(c, "Blob key is required")
	}

	if err := h.blobService.Delete(c.UserContext(), user.Key(), key); err != nil {
		return middleware.ServiceError(c, err)
	}
	return utils.NoContentResponse(c)
}

// parseRangeHeader รองรับ "bytes=start-end" และ "bytes=start-"
func parseRangeHeader(header string) (start, end int64, ok bool) {
	if !strings.HasPrefix(header, "bytes=") {
		return 0, 0, false
	}
	parts := strings.SplitN(strings.TrimPrefix(header, "bytes="), "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	start, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || start < 0 {
		return 0, 0, false
	}

	end = -1
	if parts[1] != "" {
		end, err = strconv.ParseInt(parts[1], 10, 64)
		if err != nil || end < start {
			return 0, 0, false
		}
	}
	return start, end, true
}
