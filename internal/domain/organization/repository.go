package organization

import (
	"context"

	"github.com/shopspring/decimal"
)

type Filter struct {
	Verified *bool
	Limit    int
	Offset   int
}

type Repository interface {
	Create(ctx context.Context, o *Organization) error
	GetByID(ctx context.Context, id uint64) (*Organization, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Organization, error)
	Save(ctx context.Context, o *Organization) error
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context, f Filter) ([]Organization, error)
	NameOrAddressExists(ctx context.Context, nameEn, nameAr, address string) (bool, error)
	// IncrementTotalReceived must be a single atomic UPDATE expression
	// (total_received = total_received + amount), never read-modify-write.
	IncrementTotalReceived(ctx context.Context, id uint64, amount decimal.Decimal) error
}
