package mysql

import (
	"context"

	orgDomain "givemarket-backend/internal/domain/organization"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrganizationRepository struct{ db *gorm.DB }

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) Create(ctx context.Context, o *orgDomain.Organization) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrganizationRepository) Save(ctx context.Context, o *orgDomain.Organization) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id uint64) (*orgDomain.Organization, error) {
	var out orgDomain.Organization
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *OrganizationRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*orgDomain.Organization, error) {
	var out orgDomain.Organization
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, id)
	return &out, res.Error
}

func (r *OrganizationRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&orgDomain.Organization{}, id).Error
}

func (r *OrganizationRepository) List(ctx context.Context, f orgDomain.Filter) ([]orgDomain.Organization, error) {
	q := r.db.WithContext(ctx)
	if f.Verified != nil {
		q = q.Where("is_verified = ?", *f.Verified)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	var out []orgDomain.Organization
	res := q.Order("id").Find(&out)
	return out, res.Error
}

func (r *OrganizationRepository) NameOrAddressExists(ctx context.Context, nameEn, nameAr, address string) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&orgDomain.Organization{}).
		Where("name_en = ? OR name_ar = ? OR blockchain_address = ?", nameEn, nameAr, address).
		Count(&n)
	return n > 0, res.Error
}

// IncrementTotalReceived applies the balance delta as one UPDATE expression
// so concurrent increments can never lose each other.
func (r *OrganizationRepository) IncrementTotalReceived(ctx context.Context, id uint64, amount decimal.Decimal) error {
	res := r.db.WithContext(ctx).Model(&orgDomain.Organization{}).
		Where("id = ?", id).
		UpdateColumn("total_received", gorm.Expr("total_received + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
