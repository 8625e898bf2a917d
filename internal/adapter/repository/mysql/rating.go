package mysql

import (
	"context"

	ratingDomain "givemarket-backend/internal/domain/rating"

	"gorm.io/gorm"
)

type RatingRepository struct{ db *gorm.DB }

func NewRatingRepository(db *gorm.DB) *RatingRepository { return &RatingRepository{db: db} }

func (r *RatingRepository) Create(ctx context.Context, rt *ratingDomain.Rating) error {
	return r.db.WithContext(ctx).Create(rt).Error
}

func (r *RatingRepository) GetByUserAndProduct(ctx context.Context, userID, productID uint64) (*ratingDomain.Rating, error) {
	var out ratingDomain.Rating
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&out)
	return &out, res.Error
}

func (r *RatingRepository) ListByProduct(ctx context.Context, productID uint64) ([]ratingDomain.Rating, error) {
	var out []ratingDomain.Rating
	res := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("id DESC").Find(&out)
	return out, res.Error
}
