package donation

import (
	"context"

	"github.com/shopspring/decimal"
)

type Filter struct {
	UserID         *uint64
	OrganizationID *uint64
	Status         *Status
	Limit          int
	Offset         int
}

// OrgStats is computed from donation rows alone, independently of the stored
// organization balance. For direct donations the completed sum and the stored
// total_received must agree.
type OrgStats struct {
	CountsByStatus       map[Status]int64 `json:"counts_by_status"`
	CompletedTotal       decimal.Decimal  `json:"completed_total"`
	DirectCompletedTotal decimal.Decimal  `json:"direct_completed_total"`
}

type Repository interface {
	Create(ctx context.Context, d *Donation) error
	GetByID(ctx context.Context, id uint64) (*Donation, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Donation, error)
	Save(ctx context.Context, d *Donation) error
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context, f Filter) ([]Donation, error)
	ExistsByOrder(ctx context.Context, orderID uint64) (bool, error)
	ExistsByOrganization(ctx context.Context, organizationID uint64) (bool, error)
	OrgStats(ctx context.Context, organizationID uint64) (*OrgStats, error)
}
