package donationmock

import (
	"context"

	domain "givemarket-backend/internal/domain/donation"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, d *domain.Donation) error
	GetByIDFn              func(ctx context.Context, id uint64) (*domain.Donation, error)
	GetByIDForUpdateFn     func(ctx context.Context, id uint64) (*domain.Donation, error)
	SaveFn                 func(ctx context.Context, d *domain.Donation) error
	DeleteFn               func(ctx context.Context, id uint64) error
	ListFn                 func(ctx context.Context, f domain.Filter) ([]domain.Donation, error)
	ExistsByOrderFn        func(ctx context.Context, orderID uint64) (bool, error)
	ExistsByOrganizationFn func(ctx context.Context, organizationID uint64) (bool, error)
	OrgStatsFn             func(ctx context.Context, organizationID uint64) (*domain.OrgStats, error)
}

func (m *Repo) Create(ctx context.Context, d *domain.Donation) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Donation, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Donation, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, d *domain.Donation) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.Donation, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) ExistsByOrder(ctx context.Context, orderID uint64) (bool, error) {
	if m.ExistsByOrderFn != nil {
		return m.ExistsByOrderFn(ctx, orderID)
	}
	return false, nil
}

func (m *Repo) ExistsByOrganization(ctx context.Context, organizationID uint64) (bool, error) {
	if m.ExistsByOrganizationFn != nil {
		return m.ExistsByOrganizationFn(ctx, organizationID)
	}
	return false, nil
}

func (m *Repo) OrgStats(ctx context.Context, organizationID uint64) (*domain.OrgStats, error) {
	if m.OrgStatsFn != nil {
		return m.OrgStatsFn(ctx, organizationID)
	}
	return nil, context.Canceled
}
