package usecase

import (
	"context"
	"strings"
	"time"

	"laptek/internal/domain/entity"
	"laptek/internal/domain/repository"
	"laptek/pkg/errors"
	"laptek/pkg/logger"
)

type UserUseCase struct {
	userRepo repository.UserRepository
	claims   AdminClaimSetter
	now      func() time.Time
}

func NewUserUseCase(userRepo repository.UserRepository, claims AdminClaimSetter) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		claims:   claims,
		now:      time.Now,
	}
}

type RegisterProfileRequest struct {
	DisplayName string `json:"display_name" validate:"max=100"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin customer"`
}

// Register creates the profile document after client-side sign-up. It is
// idempotent: an existing profile is returned unchanged.
func (uc *UserUseCase) Register(ctx context.Context, uid, email string, admin bool, req RegisterProfileRequest) (*entity.User, bool, error) {
	existing, err := uc.userRepo.GetByID(ctx, uid)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, false, err
	}

	role := entity.RoleCustomer
	if admin {
		role = entity.RoleAdmin
	}

	now := uc.now()
	user := &entity.User{
		ID:          uid,
		Email:       email,
		DisplayName: strings.TrimSpace(req.DisplayName),
		Role:        role,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, false, err
	}

	logger.Info("Registered user %s (%s)", uid, role)
	return user, true, nil
}

func (uc *UserUseCase) GetProfile(ctx context.Context, uid string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, uid)
}

func (uc *UserUseCase) List(ctx context.Context, page, limit int) ([]*entity.User, int64, error) {
	return uc.userRepo.List(ctx, limit, (page-1)*limit)
}

// UpdateRole changes the stored role and mirrors it into the auth claim the
// admin middleware checks.
func (uc *UserUseCase) UpdateRole(ctx context.Context, actorID, id string, req UpdateRoleRequest) (*entity.User, error) {
	if actorID == id && req.Role != entity.RoleAdmin {
		return nil, errors.BadRequest("Admins cannot demote themselves", nil)
	}

	if err := uc.userRepo.UpdateRole(ctx, id, req.Role); err != nil {
		return nil, err
	}

	if uc.claims != nil {
		if err := uc.claims.SetAdminClaim(ctx, id, req.Role == entity.RoleAdmin); err != nil {
			return nil, errors.Upstream("Failed to update auth claims", err)
		}
	}

	return uc.userRepo.GetByID(ctx, id)
}
