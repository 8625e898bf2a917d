package productmock

import (
	"context"

	domain "givemarket-backend/internal/domain/product"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn              func(ctx context.Context, p *domain.Product) error
	GetByIDFn             func(ctx context.Context, id uint64) (*domain.Product, error)
	GetByIDForUpdateFn    func(ctx context.Context, id uint64) (*domain.Product, error)
	SaveFn                func(ctx context.Context, p *domain.Product) error
	DeleteFn              func(ctx context.Context, id uint64) error
	HardDeleteFn          func(ctx context.Context, id uint64) error
	ListFn                func(ctx context.Context, f domain.Filter) ([]domain.Product, error)
	ListPublicFn          func(ctx context.Context, f domain.Filter) ([]domain.Product, error)
	CountByOrganizationFn func(ctx context.Context, organizationID uint64) (int64, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Product) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Product, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Product, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, p *domain.Product) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) HardDelete(ctx context.Context, id uint64) error {
	if m.HardDeleteFn != nil {
		return m.HardDeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.Product, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) ListPublic(ctx context.Context, f domain.Filter) ([]domain.Product, error) {
	if m.ListPublicFn != nil {
		return m.ListPublicFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) CountByOrganization(ctx context.Context, organizationID uint64) (int64, error) {
	if m.CountByOrganizationFn != nil {
		return m.CountByOrganizationFn(ctx, organizationID)
	}
	return 0, nil
}
