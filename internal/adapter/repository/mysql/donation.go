package mysql

import (
	"context"

	donationDomain "givemarket-backend/internal/domain/donation"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DonationRepository struct{ db *gorm.DB }

func NewDonationRepository(db *gorm.DB) *DonationRepository { return &DonationRepository{db: db} }

func (r *DonationRepository) Create(ctx context.Context, d *donationDomain.Donation) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DonationRepository) Save(ctx context.Context, d *donationDomain.Donation) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DonationRepository) GetByID(ctx context.Context, id uint64) (*donationDomain.Donation, error) {
	var out donationDomain.Donation
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *DonationRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*donationDomain.Donation, error) {
	var out donationDomain.Donation
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, id)
	return &out, res.Error
}

func (r *DonationRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&donationDomain.Donation{}, id).Error
}

func (r *DonationRepository) List(ctx context.Context, f donationDomain.Filter) ([]donationDomain.Donation, error) {
	q := r.db.WithContext(ctx)
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.OrganizationID != nil {
		q = q.Where("organization_id = ?", *f.OrganizationID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	var out []donationDomain.Donation
	res := q.Order("id DESC").Find(&out)
	return out, res.Error
}

func (r *DonationRepository) ExistsByOrder(ctx context.Context, orderID uint64) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&donationDomain.Donation{}).
		Where("order_id = ?", orderID).
		Count(&n)
	return n > 0, res.Error
}

func (r *DonationRepository) ExistsByOrganization(ctx context.Context, organizationID uint64) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&donationDomain.Donation{}).
		Where("organization_id = ?", organizationID).
		Count(&n)
	return n > 0, res.Error
}

// OrgStats recomputes the aggregate view from donation rows. Deliberately
// independent of organizations.total_received so the two can be compared.
func (r *DonationRepository) OrgStats(ctx context.Context, organizationID uint64) (*donationDomain.OrgStats, error) {
	type statusRow struct {
		Status donationDomain.Status
		N      int64
	}
	var rows []statusRow
	if err := r.db.WithContext(ctx).Model(&donationDomain.Donation{}).
		Select("status, COUNT(*) AS n").
		Where("organization_id = ?", organizationID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := &donationDomain.OrgStats{
		CountsByStatus:       make(map[donationDomain.Status]int64, len(rows)),
		CompletedTotal:       decimal.Zero,
		DirectCompletedTotal: decimal.Zero,
	}
	for _, row := range rows {
		stats.CountsByStatus[row.Status] = row.N
	}

	var completed decimal.NullDecimal
	if err := r.db.WithContext(ctx).Model(&donationDomain.Donation{}).
		Select("SUM(amount)").
		Where("organization_id = ? AND status = ?", organizationID, donationDomain.StatusCompleted).
		Scan(&completed).Error; err != nil {
		return nil, err
	}
	if completed.Valid {
		stats.CompletedTotal = completed.Decimal
	}

	var direct decimal.NullDecimal
	if err := r.db.WithContext(ctx).Model(&donationDomain.Donation{}).
		Select("SUM(amount)").
		Where("organization_id = ? AND status = ? AND type = ?",
			organizationID, donationDomain.StatusCompleted, donationDomain.TypeDirect).
		Scan(&direct).Error; err != nil {
		return nil, err
	}
	if direct.Valid {
		stats.DirectCompletedTotal = direct.Decimal
	}
	return stats, nil
}
