package mysql

import (
	"context"

	orderDomain "givemarket-backend/internal/domain/order"

	"gorm.io/gorm"
)

type OrderItemRepository struct{ db *gorm.DB }

func NewOrderItemRepository(db *gorm.DB) *OrderItemRepository { return &OrderItemRepository{db: db} }

func (r *OrderItemRepository) Create(ctx context.Context, it *orderDomain.OrderItem) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *OrderItemRepository) GetByID(ctx context.Context, id uint64) (*orderDomain.OrderItem, error) {
	var out orderDomain.OrderItem
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *OrderItemRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&orderDomain.OrderItem{}, id).Error
}

func (r *OrderItemRepository) ListByOrder(ctx context.Context, orderID uint64) ([]orderDomain.OrderItem, error) {
	var out []orderDomain.OrderItem
	res := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id").Find(&out)
	return out, res.Error
}

func (r *OrderItemRepository) CountByOrder(ctx context.Context, orderID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&orderDomain.OrderItem{}).
		Where("order_id = ?", orderID).
		Count(&n)
	return n, res.Error
}
