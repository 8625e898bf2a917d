package uow

import (
	"context"

	"givemarket-backend/internal/domain/category"
	"givemarket-backend/internal/domain/donation"
	"givemarket-backend/internal/domain/order"
	"givemarket-backend/internal/domain/organization"
	"givemarket-backend/internal/domain/product"
	"givemarket-backend/internal/domain/rating"
	"givemarket-backend/internal/domain/user"
)

type Repos struct {
	Users         user.Repository
	Products      product.Repository
	Orders        order.Repository
	OrderItems    order.ItemRepository
	Donations     donation.Repository
	Organizations organization.Repository
	Categories    category.Repository
	Ratings       rating.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the donation row first, then pass it in. This is the
	// boundary that keeps status transition and balance increment atomic.
	WithinDonationTx(ctx context.Context, donationID uint64, fn func(r Repos, d *donation.Donation) error) error
	// convenience: lock the order row first (cancel / payment updates).
	WithinOrderTx(ctx context.Context, orderID uint64, fn func(r Repos, o *order.Order) error) error
}
