package services

import (
	"context"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
	"github.com/creative-sdg/multitulza-sub000/domain/models"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)

	// ResolveStudioUser ดึงหรือสร้าง pseudo user จาก X-Studio-User header
	// studio ID เดิมได้ user เดิมเสมอ
	ResolveStudioUser(ctx context.Context, studioID string) (*models.User, error)
}
