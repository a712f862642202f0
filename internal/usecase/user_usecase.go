package usecase

import (
	"context"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/nguyentranbao-ct/team-chat/internal/models"
	"github.com/nguyentranbao-ct/team-chat/internal/repo/memory"
)

// UserUsecase exposes the identity directory: who is known, and their
// presence.
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateStatus(ctx context.Context, id string, status models.UserStatus) (*models.User, error)
}

type userUsecase struct {
	userRepo memory.UserRepository
}

func NewUserUsecase(userRepo memory.UserRepository) UserUsecase {
	return &userUsecase{userRepo: userRepo}
}

func (uc *userUsecase) ListUsers(ctx context.Context) ([]models.User, error) {
	return uc.userRepo.List(ctx)
}

func (uc *userUsecase) GetUser(ctx context.Context, id string) (*models.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

func (uc *userUsecase) UpdateStatus(ctx context.Context, id string, status models.UserStatus) (*models.User, error) {
	if !status.Valid() {
		return nil, models.NewValidation("status", "must be one of online, away, offline")
	}
	user, err := uc.userRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	log.Debugw(ctx, "presence updated", "user_id", id, "status", status)
	return user, nil
}
