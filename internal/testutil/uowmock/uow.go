package uowmock

import (
	"context"
	"errors"

	"givemarket-backend/internal/domain/donation"
	"givemarket-backend/internal/domain/order"
	"givemarket-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn         func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinDonationTxFn func(ctx context.Context, donationID uint64, fn func(r uow.Repos, d *donation.Donation) error) error
	WithinOrderTxFn    func(ctx context.Context, orderID uint64, fn func(r uow.Repos, o *order.Order) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough runs every callback directly against the given repos, standing
// in for a real transaction. The locked row is fetched through the repos'
// GetByIDForUpdate, same as the real implementation.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(r)
		},
		WithinDonationTxFn: func(ctx context.Context, donationID uint64, fn func(r uow.Repos, d *donation.Donation) error) error {
			d, err := r.Donations.GetByIDForUpdate(ctx, donationID)
			if err != nil {
				return err
			}
			return fn(r, d)
		},
		WithinOrderTxFn: func(ctx context.Context, orderID uint64, fn func(r uow.Repos, o *order.Order) error) error {
			o, err := r.Orders.GetByIDForUpdate(ctx, orderID)
			if err != nil {
				return err
			}
			return fn(r, o)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinDonationTx(ctx context.Context, donationID uint64, fn func(r uow.Repos, d *donation.Donation) error) error {
	if m.WithinDonationTxFn != nil {
		return m.WithinDonationTxFn(ctx, donationID, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinOrderTx(ctx context.Context, orderID uint64, fn func(r uow.Repos, o *order.Order) error) error {
	if m.WithinOrderTxFn != nil {
		return m.WithinOrderTxFn(ctx, orderID, fn)
	}
	return errUnimplemented
}
