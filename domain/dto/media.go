package dto

import "github.com/creative-sdg/multitulza-sub000/domain/models"

// GenerateImageRequest เริ่ม image generation task หนึ่งรายการ
// แต่ละ scene ยิงแยก request ของตัวเอง task ไม่เกี่ยวกัน
type GenerateImageRequest struct {
	ImageID     string   `json:"imageId" validate:"required,max=100"`
	Prompt      string   `json:"prompt" validate:"required,max=4000"`
	Scene       string   `json:"scene" validate:"max=200"`
	Model       string   `json:"model" validate:"max=100"`
	ImageKeys   []string `json:"imageKeys" validate:"max=4,dive,required"` // reference images สำหรับ edit model
	Width       int      `json:"width" validate:"gte=0,lte=4096"`
	Height      int      `json:"height" validate:"gte=0,lte=4096"`
	Seed        *int64   `json:"seed"`
	Resolution  string   `json:"resolution" validate:"omitempty,oneof=1K 2K"`
	AspectRatio string   `json:"aspectRatio" validate:"max=10"`
}

// GenerateVideoRequest เริ่ม image-to-video task
type GenerateVideoRequest struct {
	ImageID     string `json:"imageId" validate:"required,max=100"`
	Prompt      string `json:"prompt" validate:"required,max=4000"`
	Scene       string `json:"scene" validate:"max=200"`
	Model       string `json:"model" validate:"max=100"`
	SourceURL   string `json:"sourceUrl" validate:"required,url"`
	Duration    int    `json:"duration" validate:"gte=0,lte=10"`
	Resolution  string `json:"resolution" validate:"max=10"`
	AspectRatio string `json:"aspectRatio" validate:"max=10"`
}

// ReframeImageRequest ขยายภาพเป็น aspect ratio ใหม่
type ReframeImageRequest struct {
	ImageID     string `json:"imageId" validate:"required,max=100"`
	SourceURL   string `json:"sourceUrl" validate:"required,url"`
	AspectRatio string `json:"aspectRatio" validate:"required,max=10"`
	Model       string `json:"model" validate:"max=100"`
}

// TaskAcceptedResponse ส่งกลับทันทีเมื่อ task ถูกรับเข้า registry
type TaskAcceptedResponse struct {
	TaskID string `json:"taskId"`
	Kind   string `json:"kind"`
	State  string `json:"state"`
}

type MediaResultResponse struct {
	Media models.GeneratedMedia `json:"media"`
}
