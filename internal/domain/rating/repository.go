package rating

import "context"

type Repository interface {
	Create(ctx context.Context, r *Rating) error
	GetByUserAndProduct(ctx context.Context, userID, productID uint64) (*Rating, error)
	ListByProduct(ctx context.Context, productID uint64) ([]Rating, error)
}
