package orgmock

import (
	"context"

	domain "givemarket-backend/internal/domain/organization"

	"github.com/shopspring/decimal"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                 func(ctx context.Context, o *domain.Organization) error
	GetByIDFn                func(ctx context.Context, id uint64) (*domain.Organization, error)
	GetByIDForUpdateFn       func(ctx context.Context, id uint64) (*domain.Organization, error)
	SaveFn                   func(ctx context.Context, o *domain.Organization) error
	DeleteFn                 func(ctx context.Context, id uint64) error
	ListFn                   func(ctx context.Context, f domain.Filter) ([]domain.Organization, error)
	NameOrAddressExistsFn    func(ctx context.Context, nameEn, nameAr, address string) (bool, error)
	IncrementTotalReceivedFn func(ctx context.Context, id uint64, amount decimal.Decimal) error
}

func (m *Repo) Create(ctx context.Context, o *domain.Organization) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, o)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Organization, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Organization, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, o *domain.Organization) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, o)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.Organization, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) NameOrAddressExists(ctx context.Context, nameEn, nameAr, address string) (bool, error) {
	if m.NameOrAddressExistsFn != nil {
		return m.NameOrAddressExistsFn(ctx, nameEn, nameAr, address)
	}
	return false, nil
}

func (m *Repo) IncrementTotalReceived(ctx context.Context, id uint64, amount decimal.Decimal) error {
	if m.IncrementTotalReceivedFn != nil {
		return m.IncrementTotalReceivedFn(ctx, id, amount)
	}
	return nil
}
