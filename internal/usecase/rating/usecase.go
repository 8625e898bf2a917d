package rating

import (
	"context"
	"errors"

	"givemarket-backend/internal/domain/authz"
	domainRating "givemarket-backend/internal/domain/rating"
	"givemarket-backend/internal/domain/shared"

	"gorm.io/gorm"
)

type Usecase struct {
	repo domainRating.Repository
}

func NewUsecase(repo domainRating.Repository) *Usecase { return &Usecase{repo: repo} }

type RateInput struct {
	ProductID uint64 `json:"product_id"`
	Score     int    `json:"score"`
	Comment   string `json:"comment"`
}

// Rate records one rating per (user, product).
func (u *Usecase) Rate(ctx context.Context, actor authz.Actor, in RateInput) (*domainRating.Rating, error) {
	if !authz.Can(actor.Role, authz.ActionRatingCreate, false) {
		return nil, shared.ErrNotAuthorized.WithMessage("not allowed to rate products")
	}
	if in.Score < 1 || in.Score > 5 {
		return nil, shared.ErrValidation.WithMessage("score must be between 1 and 5")
	}

	if _, err := u.repo.GetByUserAndProduct(ctx, actor.ID, in.ProductID); err == nil {
		return nil, shared.ErrConflict.WithMessage("product already rated by this user")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	r := &domainRating.Rating{
		UserID:    actor.ID,
		ProductID: in.ProductID,
		Score:     in.Score,
		Comment:   in.Comment,
	}
	if err := u.repo.Create(ctx, r); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, shared.ErrConflict.WithMessage("product already rated by this user")
		}
		return nil, err
	}
	return r, nil
}

func (u *Usecase) ListByProduct(ctx context.Context, productID uint64) ([]domainRating.Rating, error) {
	return u.repo.ListByProduct(ctx, productID)
}
