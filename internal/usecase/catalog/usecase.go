package catalog

import (
	"context"
	"errors"
	"strings"

	"givemarket-backend/internal/domain/authz"
	domainCategory "givemarket-backend/internal/domain/category"
	"givemarket-backend/internal/domain/shared"

	"gorm.io/gorm"
)

// Usecase is the category glue around the product catalog.
type Usecase struct {
	repo domainCategory.Repository
}

func NewUsecase(repo domainCategory.Repository) *Usecase { return &Usecase{repo: repo} }

type CategoryInput struct {
	NameEn        string `json:"name_en"`
	NameAr        string `json:"name_ar"`
	DescriptionEn string `json:"description_en"`
	DescriptionAr string `json:"description_ar"`
}

func (u *Usecase) Create(ctx context.Context, actor authz.Actor, in CategoryInput) (*domainCategory.Category, error) {
	if !authz.Can(actor.Role, authz.ActionCategoryWrite, false) {
		return nil, shared.ErrNotAuthorized.WithMessage("only admins manage categories")
	}
	if strings.TrimSpace(in.NameEn) == "" && strings.TrimSpace(in.NameAr) == "" {
		return nil, shared.ErrValidation.WithMessage("category name is required")
	}
	c := &domainCategory.Category{
		NameEn:        in.NameEn,
		NameAr:        in.NameAr,
		DescriptionEn: in.DescriptionEn,
		DescriptionAr: in.DescriptionAr,
	}
	if err := u.repo.Create(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, shared.ErrConflict.WithMessage("category name already exists")
		}
		return nil, err
	}
	return c, nil
}

func (u *Usecase) Delete(ctx context.Context, actor authz.Actor, categoryID uint64) error {
	if !authz.Can(actor.Role, authz.ActionCategoryWrite, false) {
		return shared.ErrNotAuthorized.WithMessage("only admins manage categories")
	}
	if _, err := u.Get(ctx, categoryID); err != nil {
		return err
	}
	return u.repo.Delete(ctx, categoryID)
}

func (u *Usecase) Get(ctx context.Context, categoryID uint64) (*domainCategory.Category, error) {
	c, err := u.repo.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound.WithMessage("category not found")
		}
		return nil, err
	}
	return c, nil
}

func (u *Usecase) List(ctx context.Context) ([]domainCategory.Category, error) {
	return u.repo.List(ctx)
}
