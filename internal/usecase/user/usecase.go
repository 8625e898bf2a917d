package user

import (
	"context"
	"errors"
	"strings"

	"givemarket-backend/internal/domain/authz"
	"givemarket-backend/internal/domain/shared"
	domainUser "givemarket-backend/internal/domain/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Usecase struct {
	repo domainUser.Repository
	log  *zap.Logger
}

func NewUsecase(repo domainUser.Repository, log *zap.Logger) *Usecase {
	return &Usecase{repo: repo, log: log}
}

type RegisterInput struct {
	Email string     `json:"email"`
	Name  string     `json:"name"`
	Role  authz.Role `json:"role"`
}

type UpdateProfileInput struct {
	Name *string `json:"name"`
}

// Register stores the profile; credentials and token issuance live in the
// external identity provider.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*domainUser.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.ErrValidation.WithMessage("a valid email is required")
	}
	switch in.Role {
	case authz.RoleCustomer, authz.RoleSeller:
	case "":
		in.Role = authz.RoleCustomer
	default:
		return nil, shared.ErrValidation.WithMessage("role must be customer or seller")
	}

	if _, err := u.repo.GetByEmail(ctx, email); err == nil {
		return nil, shared.ErrConflict.WithMessage("email %s is already registered", email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	usr := &domainUser.User{Email: email, Name: in.Name, Role: in.Role}
	if err := u.repo.Create(ctx, usr); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, shared.ErrConflict.WithMessage("email %s is already registered", email)
		}
		return nil, err
	}
	u.log.Info("user registered", zap.Uint64("user_id", usr.ID), zap.String("role", string(usr.Role)))
	return usr, nil
}

func (u *Usecase) Get(ctx context.Context, userID uint64) (*domainUser.User, error) {
	usr, err := u.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound.WithMessage("user not found")
		}
		return nil, err
	}
	return usr, nil
}

func (u *Usecase) UpdateProfile(ctx context.Context, actor authz.Actor, userID uint64, in UpdateProfileInput) (*domainUser.User, error) {
	if !authz.Can(actor.Role, authz.ActionUserUpdate, actor.ID == userID) {
		return nil, shared.ErrNotAuthorized.WithMessage("not allowed to update this profile")
	}
	usr, err := u.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		usr.Name = *in.Name
	}
	if err := u.repo.Save(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}
