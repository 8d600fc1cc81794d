package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/creative-sdg/multitulza-sub000/domain/dto"
	"github.com/creative-sdg/multitulza-sub000/domain/models"
	"github.com/creative-sdg/multitulza-sub000/domain/repositories"
	"github.com/creative-sdg/multitulza-sub000/domain/services"
	"github.com/creative-sdg/multitulza-sub000/pkg/logger"
	"github.com/creative-sdg/multitulza-sub000/pkg/utils"
)

const tokenExpiry = 24 * time.Hour

type UserServiceImpl struct {
	userRepo  repositories.UserRepository
	jwtSecret string
}

func NewUserService(userRepo repositories.UserRepository, jwtSecret string) services.UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if existing, _ := s.userRepo.GetByEmail(ctx, req.Email); existing != nil {
		return nil, fmt.Errorf("%w: email already registered", services.ErrConflict)
	}
	if existing, _ := s.userRepo.GetByUsername(ctx, req.Username); existing != nil {
		return nil, fmt.Errorf("%w: username already taken", services.ErrConflict)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    req.Email,
		Username: req.Username,
		Password: string(hashed),
		Role:     "user",
		IsActive: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "User registered",
		"user_id", user.ID,
		"username", user.Username,
	)
	return &dto.RegisterResponse{
		Token: token,
		User:  dto.UserToResponse(user),
	}, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", services.ErrForbidden)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: account disabled", services.ErrForbidden)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", services.ErrForbidden)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID)
	return &dto.LoginResponse{
		Token: token,
		User:  dto.UserToResponse(user),
	}, nil
}

// ResolveStudioUser ดึงหรือสร้าง pseudo user จาก X-Studio-User header
// studio ID เดิมได้ user เดิมเสมอ - email/username สังเคราะห์จาก ID
func (s *UserServiceImpl) ResolveStudioUser(ctx context.Context, studioID string) (*models.User, error) {
	if studioID == "" {
		return nil, fmt.Errorf("%w: studio ID is required", services.ErrInvalidInput)
	}

	user, err := s.userRepo.GetByStudioID(ctx, studioID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up studio user: %w", err)
	}

	user = &models.User{
		Email:    studioID + "@studio.local",
		Username: "studio-" + studioID,
		StudioID: studioID,
		Role:     "user",
		IsActive: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// race กับ request อื่นที่สร้าง user เดียวกันพอดี - อ่านซ้ำ
		if existing, readErr := s.userRepo.GetByStudioID(ctx, studioID); readErr == nil {
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create studio user: %w", err)
	}

	logger.InfoContext(ctx, "Studio user created",
		"user_id", user.ID,
		"studio_id", studioID,
	)
	return user, nil
}

func (s *UserServiceImpl) issueToken(user *models.User) (string, error) {
	token, err := utils.GenerateToken(&utils.UserContext{
		ID:       user.ID,
		StudioID: user.StudioID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}, s.jwtSecret, tokenExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
