package mysql

import (
	"context"
	"testing"

	orderDomain "givemarket-backend/internal/domain/order"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openOrderTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&orderDomain.Order{}, &orderDomain.OrderItem{}), "auto-migrate")
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, number string, status orderDomain.Status, payment orderDomain.PaymentStatus, amount string) *orderDomain.Order {
	t.Helper()
	o := &orderDomain.Order{
		OrderNumber:   number,
		UserID:        7,
		TotalAmount:   money(t, amount),
		Status:        status,
		PaymentStatus: payment,
	}
	require.NoError(t, db.Create(o).Error, "seed order")
	return o
}

func TestOrderRepository_GetByOrderNumber(t *testing.T) {
	db := openOrderTestDB(t)
	ctx := context.Background()
	repo := NewOrderRepository(db)

	seed := seedOrder(t, db, "ORD-20260301-0A0B0C", orderDomain.StatusPending, orderDomain.PaymentUnpaid, "75.00")

	got, err := repo.GetByOrderNumber(ctx, seed.OrderNumber)
	require.NoError(t, err)
	require.Equal(t, seed.ID, got.ID)

	_, err = repo.GetByOrderNumber(ctx, "ORD-20260301-FFFFFF")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestOrderRepository_OrderNumberExists(t *testing.T) {
	db := openOrderTestDB(t)
	ctx := context.Background()
	repo := NewOrderRepository(db)

	seedOrder(t, db, "ORD-20260301-111111", orderDomain.StatusPending, orderDomain.PaymentUnpaid, "10.00")

	exists, err := repo.OrderNumberExists(ctx, "ORD-20260301-111111")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.OrderNumberExists(ctx, "ORD-20260301-222222")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestOrderRepository_Create_DuplicateNumber(t *testing.T) {
	db := openOrderTestDB(t)
	ctx := context.Background()
	repo := NewOrderRepository(db)

	seedOrder(t, db, "ORD-20260301-333333", orderDomain.StatusPending, orderDomain.PaymentUnpaid, "10.00")

	err := repo.Create(ctx, &orderDomain.Order{
		OrderNumber:   "ORD-20260301-333333",
		UserID:        8,
		TotalAmount:   money(t, "20.00"),
		Status:        orderDomain.StatusPending,
		PaymentStatus: orderDomain.PaymentUnpaid,
	})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestOrderRepository_Stats(t *testing.T) {
	db := openOrderTestDB(t)
	ctx := context.Background()
	repo := NewOrderRepository(db)

	seedOrder(t, db, "ORD-20260301-A00001", orderDomain.StatusPending, orderDomain.PaymentUnpaid, "10.00")
	seedOrder(t, db, "ORD-20260301-A00002", orderDomain.StatusCompleted, orderDomain.PaymentPaid, "40.00")
	seedOrder(t, db, "ORD-20260301-A00003", orderDomain.StatusShipped, orderDomain.PaymentPaid, "60.00")
	seedOrder(t, db, "ORD-20260301-A00004", orderDomain.StatusCancelled, orderDomain.PaymentFailed, "99.00")

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)

	require.Equal(t, int64(1), stats.CountsByStatus[orderDomain.StatusPending])
	require.Equal(t, int64(1), stats.CountsByStatus[orderDomain.StatusCompleted])
	require.Equal(t, int64(1), stats.CountsByStatus[orderDomain.StatusShipped])
	require.Equal(t, int64(1), stats.CountsByStatus[orderDomain.StatusCancelled])

	// revenue counts paid orders only
	require.True(t, stats.Revenue.Equal(money(t, "100.00")),
		"revenue = %s, want 100.00", stats.Revenue)
}

func TestOrderItemRepository_ListAndCountByOrder(t *testing.T) {
	db := openOrderTestDB(t)
	ctx := context.Background()
	items := NewOrderItemRepository(db)

	o1 := seedOrder(t, db, "ORD-20260301-B00001", orderDomain.StatusPending, orderDomain.PaymentUnpaid, "0.00")
	o2 := seedOrder(t, db, "ORD-20260301-B00002", orderDomain.StatusPending, orderDomain.PaymentUnpaid, "0.00")

	for i := 0; i < 3; i++ {
		require.NoError(t, items.Create(ctx, &orderDomain.OrderItem{
			OrderID:   o1.ID,
			ProductID: uint64(10 + i),
			Quantity:  1,
			UnitPrice: money(t, "5.00"),
			Subtotal:  money(t, "5.00"),
		}))
	}
	require.NoError(t, items.Create(ctx, &orderDomain.OrderItem{
		OrderID: o2.ID, ProductID: 99, Quantity: 2,
		UnitPrice: money(t, "3.00"), Subtotal: money(t, "6.00"),
	}))

	list, err := items.ListByOrder(ctx, o1.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)

	n, err := items.CountByOrder(ctx, o2.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}
