package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
	"github.com/creative-sdg/multitulza-sub000/pkg/tasks"
)

type MediaService interface {
	// StartImageGeneration ลงทะเบียน task แล้ว return ทันที
	// งานจริงวิ่งใน goroutine - ผลตามได้ทาง task registry และ websocket
	StartImageGeneration(ctx context.Context, userID string, req *dto.GenerateImageRequest) (*tasks.Task, error)

	// StartVideoGeneration เหมือน image แต่เป็น image-to-video
	StartVideoGeneration(ctx context.Context, userID string, req *dto.GenerateVideoRequest) (*tasks.Task, error)

	// StartReframe ขยายภาพเป็น aspect ratio ใหม่
	StartReframe(ctx context.Context, userID string, req *dto.ReframeImageRequest) (*tasks.Task, error)

	// GetTask ดึงสถานะ task (เฉพาะของ user เอง)
	GetTask(userID string, taskID uuid.UUID) (*tasks.Task, error)

	// ListTasks ดึง task ทั้งหมดของ user
	ListTasks(userID string) []tasks.Task

	// CancelTask ยกเลิก task ที่ยังไม่จบ
	CancelTask(userID string, taskID uuid.UUID) error

	// DismissTask ลบ task ที่จบแล้วออกจากรายการ
	DismissTask(userID string, taskID uuid.UUID) error
}
