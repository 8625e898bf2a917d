package order

import (
	"context"

	"github.com/shopspring/decimal"
)

type Filter struct {
	UserID        *uint64
	Status        *Status
	PaymentStatus *PaymentStatus
	Limit         int
	Offset        int
}

// Stats is the admin aggregate view over all orders.
type Stats struct {
	CountsByStatus map[Status]int64 `json:"counts_by_status"`
	// Revenue is the sum of total_amount over orders with payment_status=paid.
	Revenue decimal.Decimal `json:"revenue"`
}

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id uint64) (*Order, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Order, error)
	GetByOrderNumber(ctx context.Context, number string) (*Order, error)
	OrderNumberExists(ctx context.Context, number string) (bool, error)
	Save(ctx context.Context, o *Order) error
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context, f Filter) ([]Order, error)
	Stats(ctx context.Context) (*Stats, error)
}

type ItemRepository interface {
	Create(ctx context.Context, it *OrderItem) error
	GetByID(ctx context.Context, id uint64) (*OrderItem, error)
	Delete(ctx context.Context, id uint64) error
	ListByOrder(ctx context.Context, orderID uint64) ([]OrderItem, error)
	CountByOrder(ctx context.Context, orderID uint64) (int64, error)
}
