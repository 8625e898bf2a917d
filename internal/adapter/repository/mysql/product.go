package mysql

import (
	"context"

	productDomain "givemarket-backend/internal/domain/product"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{db: db} }

func (r *ProductRepository) Create(ctx context.Context, p *productDomain.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProductRepository) Save(ctx context.Context, p *productDomain.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint64) (*productDomain.Product, error) {
	var out productDomain.Product
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *ProductRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*productDomain.Product, error) {
	var out productDomain.Product
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, id)
	return &out, res.Error
}

func (r *ProductRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&productDomain.Product{}, id).Error
}

func (r *ProductRepository) HardDelete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Unscoped().Delete(&productDomain.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProductRepository) List(ctx context.Context, f productDomain.Filter) ([]productDomain.Product, error) {
	return r.list(ctx, r.db.WithContext(ctx), f)
}

func (r *ProductRepository) ListPublic(ctx context.Context, f productDomain.Filter) ([]productDomain.Product, error) {
	q := r.db.WithContext(ctx).
		Where("approval_status = ? AND is_active = ?", productDomain.StatusApproved, true)
	return r.list(ctx, q, f)
}

func (r *ProductRepository) list(_ context.Context, q *gorm.DB, f productDomain.Filter) ([]productDomain.Product, error) {
	if f.SellerID != nil {
		q = q.Where("seller_id = ?", *f.SellerID)
	}
	if f.Status != nil {
		q = q.Where("approval_status = ?", *f.Status)
	}
	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Where("name_en LIKE ? OR name_ar LIKE ?", like, like)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	var out []productDomain.Product
	res := q.Order("id DESC").Find(&out)
	return out, res.Error
}

func (r *ProductRepository) CountByOrganization(ctx context.Context, organizationID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&productDomain.Product{}).
		Where("organization_id = ?", organizationID).
		Count(&n)
	return n, res.Error
}
