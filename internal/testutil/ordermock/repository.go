package ordermock

import (
	"context"

	domain "givemarket-backend/internal/domain/order"
)

var (
	_ domain.Repository     = (*Repo)(nil)
	_ domain.ItemRepository = (*ItemRepo)(nil)
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, o *domain.Order) error
	GetByIDFn           func(ctx context.Context, id uint64) (*domain.Order, error)
	GetByIDForUpdateFn  func(ctx context.Context, id uint64) (*domain.Order, error)
	GetByOrderNumberFn  func(ctx context.Context, number string) (*domain.Order, error)
	OrderNumberExistsFn func(ctx context.Context, number string) (bool, error)
	SaveFn              func(ctx context.Context, o *domain.Order) error
	DeleteFn            func(ctx context.Context, id uint64) error
	ListFn              func(ctx context.Context, f domain.Filter) ([]domain.Order, error)
	StatsFn             func(ctx context.Context) (*domain.Stats, error)
}

func (m *Repo) Create(ctx context.Context, o *domain.Order) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, o)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Order, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Order, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByOrderNumber(ctx context.Context, number string) (*domain.Order, error) {
	if m.GetByOrderNumberFn != nil {
		return m.GetByOrderNumberFn(ctx, number)
	}
	return nil, context.Canceled
}

func (m *Repo) OrderNumberExists(ctx context.Context, number string) (bool, error) {
	if m.OrderNumberExistsFn != nil {
		return m.OrderNumberExistsFn(ctx, number)
	}
	return false, nil
}

func (m *Repo) Save(ctx context.Context, o *domain.Order) error {
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

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.Order, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) Stats(ctx context.Context) (*domain.Stats, error) {
	if m.StatsFn != nil {
		return m.StatsFn(ctx)
	}
	return nil, context.Canceled
}

// ItemRepo is a function-backed mock that satisfies domain.ItemRepository.
type ItemRepo struct {
	CreateFn       func(ctx context.Context, it *domain.OrderItem) error
	GetByIDFn      func(ctx context.Context, id uint64) (*domain.OrderItem, error)
	DeleteFn       func(ctx context.Context, id uint64) error
	ListByOrderFn  func(ctx context.Context, orderID uint64) ([]domain.OrderItem, error)
	CountByOrderFn func(ctx context.Context, orderID uint64) (int64, error)
}

func (m *ItemRepo) Create(ctx context.Context, it *domain.OrderItem) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, it)
	}
	return nil
}

func (m *ItemRepo) GetByID(ctx context.Context, id uint64) (*domain.OrderItem, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *ItemRepo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *ItemRepo) ListByOrder(ctx context.Context, orderID uint64) ([]domain.OrderItem, error) {
	if m.ListByOrderFn != nil {
		return m.ListByOrderFn(ctx, orderID)
	}
	return nil, nil
}

func (m *ItemRepo) CountByOrder(ctx context.Context, orderID uint64) (int64, error) {
	if m.CountByOrderFn != nil {
		return m.CountByOrderFn(ctx, orderID)
	}
	return 0, nil
}
