package mysql

import (
	"context"

	orderDomain "givemarket-backend/internal/domain/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{db: db} }

func (r *OrderRepository) Create(ctx context.Context, o *orderDomain.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderRepository) Save(ctx context.Context, o *orderDomain.Order) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *OrderRepository) GetByID(ctx context.Context, id uint64) (*orderDomain.Order, error) {
	var out orderDomain.Order
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *OrderRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*orderDomain.Order, error) {
	var out orderDomain.Order
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, id)
	return &out, res.Error
}

func (r *OrderRepository) GetByOrderNumber(ctx context.Context, number string) (*orderDomain.Order, error) {
	var out orderDomain.Order
	res := r.db.WithContext(ctx).Where("order_number = ?", number).First(&out)
	return &out, res.Error
}

func (r *OrderRepository) OrderNumberExists(ctx context.Context, number string) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&orderDomain.Order{}).
		Where("order_number = ?", number).
		Count(&n)
	return n > 0, res.Error
}

func (r *OrderRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&orderDomain.Order{}, id).Error
}

func (r *OrderRepository) List(ctx context.Context, f orderDomain.Filter) ([]orderDomain.Order, error) {
	q := r.db.WithContext(ctx)
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.PaymentStatus != nil {
		q = q.Where("payment_status = ?", *f.PaymentStatus)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	var out []orderDomain.Order
	res := q.Order("id DESC").Find(&out)
	return out, res.Error
}

func (r *OrderRepository) Stats(ctx context.Context) (*orderDomain.Stats, error) {
	type statusRow struct {
		Status orderDomain.Status
		N      int64
	}
	var rows []statusRow
	if err := r.db.WithContext(ctx).Model(&orderDomain.Order{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := &orderDomain.Stats{
		CountsByStatus: make(map[orderDomain.Status]int64, len(rows)),
		Revenue:        decimal.Zero,
	}
	for _, row := range rows {
		stats.CountsByStatus[row.Status] = row.N
	}

	var revenue decimal.NullDecimal
	if err := r.db.WithContext(ctx).Model(&orderDomain.Order{}).
		Select("SUM(total_amount)").
		Where("payment_status = ?", orderDomain.PaymentPaid).
		Scan(&revenue).Error; err != nil {
		return nil, err
	}
	if revenue.Valid {
		stats.Revenue = revenue.Decimal
	}
	return stats, nil
}
