package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"givemarket-backend/internal/domain/authz"
	domainOrder "givemarket-backend/internal/domain/order"
	"givemarket-backend/internal/domain/shared"
	"givemarket-backend/internal/domain/uow"
	"givemarket-backend/pkg/id"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// how many times Create retries a colliding order number before giving up.
// The storage uniqueness constraint is the final backstop either way.
const maxOrderNumberAttempts = 5

type Usecase struct {
	repo  domainOrder.Repository
	items domainOrder.ItemRepository
	uow   uow.UnitOfWork
	log   *zap.Logger
}

func NewUsecase(repo domainOrder.Repository, items domainOrder.ItemRepository, tx uow.UnitOfWork, log *zap.Logger) *Usecase {
	return &Usecase{repo: repo, items: items, uow: tx, log: log}
}

// Create persists a new order in pending/unpaid with a fresh order number.
func (u *Usecase) Create(ctx context.Context, actor authz.Actor, in CreateInput) (*domainOrder.Order, error) {
	if !authz.Can(actor.Role, authz.ActionOrderCreate, false) {
		return nil, shared.ErrNotAuthorized.WithMessage("not allowed to create orders")
	}
	if !in.TotalAmount.IsPositive() {
		return nil, shared.ErrValidation.WithMessage("total_amount must be positive")
	}

	var lastErr error
	for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
		number := id.NewOrderNumber(time.Now())
		exists, err := u.repo.OrderNumberExists(ctx, number)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}
		o := &domainOrder.Order{
			OrderNumber:    number,
			UserID:         actor.ID,
			TotalAmount:    in.TotalAmount,
			Status:         domainOrder.StatusPending,
			PaymentStatus:  domainOrder.PaymentUnpaid,
			BlockchainTxID: in.BlockchainTxID,
		}
		err = u.repo.Create(ctx, o)
		if err == nil {
			u.log.Info("order created",
				zap.Uint64("order_id", o.ID),
				zap.String("order_number", o.OrderNumber),
				zap.Uint64("user_id", actor.ID))
			return o, nil
		}
		// Lost the check-then-insert race; pick a new number and retry.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			lastErr = err
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("order number generation exhausted %d attempts: %w", maxOrderNumberAttempts, lastErr)
}

// Update is the free-form patch; owner or admin.
func (u *Usecase) Update(ctx context.Context, actor authz.Actor, orderID uint64, in UpdateInput) (*domainOrder.Order, error) {
	if in.TotalAmount != nil && !in.TotalAmount.IsPositive() {
		return nil, shared.ErrValidation.WithMessage("total_amount must be positive")
	}
	var out *domainOrder.Order
	err := u.uow.WithinOrderTx(ctx, orderID, func(r uow.Repos, o *domainOrder.Order) error {
		if !authz.Can(actor.Role, authz.ActionOrderUpdate, o.UserID == actor.ID) {
			return shared.ErrNotAuthorized.WithMessage("not allowed to update this order")
		}
		if in.TotalAmount != nil {
			o.TotalAmount = *in.TotalAmount
		}
		if in.Status != nil {
			o.Status = *in.Status
		}
		if in.PaymentStatus != nil {
			o.PaymentStatus = *in.PaymentStatus
		}
		if in.BlockchainTxID != nil {
			o.BlockchainTxID = *in.BlockchainTxID
		}
		if err := r.Orders.Save(ctx, o); err != nil {
			return err
		}
		out = o
		return nil
	})
	if err != nil {
		return nil, notFoundOr(err)
	}
	return out, nil
}

// UpdatePaymentStatus records the payment state reported by the external
// payment/blockchain integration. Admin-driven, no transition guard.
func (u *Usecase) UpdatePaymentStatus(ctx context.Context, actor authz.Actor, orderID uint64, status domainOrder.PaymentStatus, txID string) (*domainOrder.Order, error) {
	if !authz.Can(actor.Role, authz.ActionOrderPayment, false) {
		return nil, shared.ErrNotAuthorized.WithMessage("only admins update payment status")
	}
	switch status {
	case domainOrder.PaymentUnpaid, domainOrder.PaymentPaid, domainOrder.PaymentRefunded, domainOrder.PaymentFailed:
	default:
		return nil, shared.ErrValidation.WithMessage("unknown payment_status %q", status)
	}
	var out *domainOrder.Order
	err := u.uow.WithinOrderTx(ctx, orderID, func(r uow.Repos, o *domainOrder.Order) error {
		o.PaymentStatus = status
		o.BlockchainTxID = txID
		if err := r.Orders.Save(ctx, o); err != nil {
			return err
		}
		out = o
		return nil
	})
	if err != nil {
		return nil, notFoundOr(err)
	}
	u.log.Info("order payment status updated",
		zap.Uint64("order_id", orderID), zap.String("payment_status", string(status)))
	return out, nil
}

// Cancel succeeds only while the order is pending and unpaid.
func (u *Usecase) Cancel(ctx context.Context, actor authz.Actor, orderID uint64) (*domainOrder.Order, error) {
	var out *domainOrder.Order
	err := u.uow.WithinOrderTx(ctx, orderID, func(r uow.Repos, o *domainOrder.Order) error {
		if !authz.Can(actor.Role, authz.ActionOrderCancel, o.UserID == actor.ID) {
			return shared.ErrNotAuthorized.WithMessage("not allowed to cancel this order")
		}
		if err := domainOrder.Cancellable(o.Status, o.PaymentStatus); err != nil {
			return err
		}
		o.Status = domainOrder.StatusCancelled
		if err := r.Orders.Save(ctx, o); err != nil {
			return err
		}
		out = o
		return nil
	})
	if err != nil {
		return nil, notFoundOr(err)
	}
	u.log.Info("order cancelled", zap.Uint64("order_id", orderID))
	return out, nil
}

// Remove deletes an order, refusing while anything still references it.
func (u *Usecase) Remove(ctx context.Context, actor authz.Actor, orderID uint64) error {
	if !authz.Can(actor.Role, authz.ActionOrderDelete, false) {
		return shared.ErrNotAuthorized.WithMessage("only admins delete orders")
	}
	err := u.uow.WithinOrderTx(ctx, orderID, func(r uow.Repos, o *domainOrder.Order) error {
		itemCount, err := r.OrderItems.CountByOrder(ctx, o.ID)
		if err != nil {
			return err
		}
		if itemCount > 0 {
			return shared.ErrHasDependents.WithMessage("order has %d item(s)", itemCount)
		}
		hasDonations, err := r.Donations.ExistsByOrder(ctx, o.ID)
		if err != nil {
			return err
		}
		if hasDonations {
			return shared.ErrHasDependents.WithMessage("order has linked donations")
		}
		return r.Orders.Delete(ctx, o.ID)
	})
	return notFoundOr(err)
}

// AddItem attaches a line to a pending order.
func (u *Usecase) AddItem(ctx context.Context, actor authz.Actor, orderID uint64, in AddItemInput) (*domainOrder.OrderItem, error) {
	if in.Quantity <= 0 || !in.UnitPrice.IsPositive() {
		return nil, shared.ErrValidation.WithMessage("quantity and unit_price must be positive")
	}
	var out *domainOrder.OrderItem
	err := u.uow.WithinOrderTx(ctx, orderID, func(r uow.Repos, o *domainOrder.Order) error {
		if !authz.Can(actor.Role, authz.ActionOrderUpdate, o.UserID == actor.ID) {
			return shared.ErrNotAuthorized.WithMessage("not allowed to modify this order")
		}
		if o.Status != domainOrder.StatusPending {
			return shared.ErrInvalidState.WithMessage("items can only change while the order is pending")
		}
		it := &domainOrder.OrderItem{
			OrderID:   o.ID,
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			UnitPrice: in.UnitPrice,
			Subtotal:  in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))),
		}
		if err := r.OrderItems.Create(ctx, it); err != nil {
			return err
		}
		out = it
		return nil
	})
	if err != nil {
		return nil, notFoundOr(err)
	}
	return out, nil
}

func (u *Usecase) RemoveItem(ctx context.Context, actor authz.Actor, orderID, itemID uint64) error {
	err := u.uow.WithinOrderTx(ctx, orderID, func(r uow.Repos, o *domainOrder.Order) error {
		if !authz.Can(actor.Role, authz.ActionOrderUpdate, o.UserID == actor.ID) {
			return shared.ErrNotAuthorized.WithMessage("not allowed to modify this order")
		}
		it, err := r.OrderItems.GetByID(ctx, itemID)
		if err != nil || it.OrderID != o.ID {
			return shared.ErrNotFound.WithMessage("order item not found")
		}
		return r.OrderItems.Delete(ctx, itemID)
	})
	return notFoundOr(err)
}

func (u *Usecase) Get(ctx context.Context, actor authz.Actor, orderID uint64) (*domainOrder.Order, error) {
	o, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if !authz.Can(actor.Role, authz.ActionOrderRead, o.UserID == actor.ID) {
		return nil, shared.ErrNotAuthorized.WithMessage("not allowed to read this order")
	}
	return o, nil
}

func (u *Usecase) GetByNumber(ctx context.Context, actor authz.Actor, number string) (*domainOrder.Order, error) {
	o, err := u.repo.GetByOrderNumber(ctx, number)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if !authz.Can(actor.Role, authz.ActionOrderRead, o.UserID == actor.ID) {
		return nil, shared.ErrNotAuthorized.WithMessage("not allowed to read this order")
	}
	return o, nil
}

func (u *Usecase) List(ctx context.Context, f domainOrder.Filter) ([]domainOrder.Order, error) {
	return u.repo.List(ctx, f)
}

// History lists the actor's own orders.
func (u *Usecase) History(ctx context.Context, actor authz.Actor, limit, offset int) ([]domainOrder.Order, error) {
	uid := actor.ID
	return u.repo.List(ctx, domainOrder.Filter{UserID: &uid, Limit: limit, Offset: offset})
}

func (u *Usecase) Items(ctx context.Context, actor authz.Actor, orderID uint64) ([]domainOrder.OrderItem, error) {
	if _, err := u.Get(ctx, actor, orderID); err != nil {
		return nil, err
	}
	return u.items.ListByOrder(ctx, orderID)
}

func (u *Usecase) Stats(ctx context.Context, actor authz.Actor) (*domainOrder.Stats, error) {
	if !authz.Can(actor.Role, authz.ActionOrderStats, false) {
		return nil, shared.ErrNotAuthorized.WithMessage("only admins read order stats")
	}
	return u.repo.Stats(ctx)
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound.WithMessage("order not found")
	}
	return err
}
