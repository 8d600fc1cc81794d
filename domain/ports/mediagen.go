package ports

import "context"

// ═══════════════════════════════════════════════════════════════════════════════
// Media Generation Port - สำหรับ image/video generation ผ่าน fal.ai queue
// ═══════════════════════════════════════════════════════════════════════════════

// ImageGenRequest คำขอ generate รูปจาก prompt
type ImageGenRequest struct {
	Model       string
	Prompt      string
	ImageURLs   []string // reference images สำหรับ edit model (ว่าง = text-to-image)
	Width       int
	Height      int
	Seed        *int64
	NumImages   int
	Resolution  string // "1K", "2K" ตามที่ model รองรับ
	AspectRatio string
}

// VideoGenRequest คำขอ generate วิดีโอจากรูปตั้งต้น
type VideoGenRequest struct {
	Model       string
	Prompt      string
	ImageURL    string
	Duration    int // วินาที
	Resolution  string
	AspectRatio string
}

// ReframeRequest คำขอขยาย/เปลี่ยน aspect ratio ของรูป (outpaint)
type ReframeRequest struct {
	Model       string
	ImageURL    string
	AspectRatio string
}

// MediaResult ผลลัพธ์จาก provider
type MediaResult struct {
	URL         string
	ContentType string
	Width       int
	Height      int
	Seed        int64
	RequestID   string
	FileSize    int64
}

// MediaGenPort - Interface สำหรับ media generation provider
// ทุก method block จน job เสร็จหรือ ctx ถูก cancel
type MediaGenPort interface {
	GenerateImage(ctx context.Context, req *ImageGenRequest) (*MediaResult, error)
	GenerateVideo(ctx context.Context, req *VideoGenRequest) (*MediaResult, error)
	ReframeImage(ctx context.Context, req *ReframeRequest) (*MediaResult, error)
}
