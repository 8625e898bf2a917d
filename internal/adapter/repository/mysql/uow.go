package mysql

import (
	"context"

	"givemarket-backend/internal/domain/donation"
	"givemarket-backend/internal/domain/order"
	"givemarket-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Users:         &UserRepository{db: tx},
		Products:      &ProductRepository{db: tx},
		Orders:        &OrderRepository{db: tx},
		OrderItems:    &OrderItemRepository{db: tx},
		Donations:     &DonationRepository{db: tx},
		Organizations: &OrganizationRepository{db: tx},
		Categories:    &CategoryRepository{db: tx},
		Ratings:       &RatingRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinDonationTx(ctx context.Context, donationID uint64, fn func(r uow.Repos, d *donation.Donation) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the donation row up-front so concurrent confirmations serialize
		d, err := r.Donations.GetByIDForUpdate(ctx, donationID)
		if err != nil {
			return err
		}
		return fn(r, d)
	})
}

func (u *GormUoW) WithinOrderTx(ctx context.Context, orderID uint64, fn func(r uow.Repos, o *order.Order) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		o, err := r.Orders.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		return fn(r, o)
	})
}
