package product

import "context"

type Filter struct {
	SellerID *uint64
	Status   *Status
	Query    string // matches either language name
	Limit    int
	Offset   int
}

type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id uint64) (*Product, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Product, error)
	Save(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uint64) error
	HardDelete(ctx context.Context, id uint64) error
	List(ctx context.Context, f Filter) ([]Product, error)
	// ListPublic returns approved, active products only.
	ListPublic(ctx context.Context, f Filter) ([]Product, error)
	CountByOrganization(ctx context.Context, organizationID uint64) (int64, error)
}
