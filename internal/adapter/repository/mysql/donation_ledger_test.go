package mysql

import (
	"context"
	"sync"
	"testing"

	"givemarket-backend/internal/domain/authz"
	donationDomain "givemarket-backend/internal/domain/donation"
	orderDomain "givemarket-backend/internal/domain/order"
	orgDomain "givemarket-backend/internal/domain/organization"
	"givemarket-backend/internal/domain/shared"
	userDomain "givemarket-backend/internal/domain/user"
	donationuc "givemarket-backend/internal/usecase/donation"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// The ledger tests run the donation usecase against real repositories and a
// real unit of work, so the balance invariant is checked through the full
// stack: organizations.total_received must equal the sum of completed direct
// donations at every step.

func openLedgerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&userDomain.User{},
		&orgDomain.Organization{},
		&orderDomain.Order{},
		&donationDomain.Donation{},
	), "auto-migrate")
	return db
}

type ledgerFixture struct {
	db    *gorm.DB
	uc    *donationuc.Usecase
	orgs  *OrganizationRepository
	org   *orgDomain.Organization
	donor authz.Actor
	admin authz.Actor
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	db := openLedgerTestDB(t)

	donor := &userDomain.User{Email: "donor@example.com", Name: "Donor", Role: authz.RoleCustomer}
	require.NoError(t, db.Create(donor).Error, "seed donor")

	return &ledgerFixture{
		db:    db,
		uc:    donationuc.NewUsecase(NewDonationRepository(db), NewGormUoW(db), zap.NewNop()),
		orgs:  NewOrganizationRepository(db),
		org:   seedOrg(t, db, "ledger-org"),
		donor: authz.Actor{ID: donor.ID, Role: authz.RoleCustomer},
		admin: authz.Actor{ID: 1, Role: authz.RoleAdmin},
	}
}

func (f *ledgerFixture) totalReceived(t *testing.T) string {
	t.Helper()
	got, err := f.orgs.GetByID(context.Background(), f.org.ID)
	require.NoError(t, err)
	return got.TotalReceived.StringFixed(2)
}

func TestLedger_DirectConfirmIncrementsOnce(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	d, err := f.uc.Create(ctx, f.donor, donationuc.CreateInput{
		OrganizationID: f.org.ID,
		Amount:         money(t, "40.00"),
		Type:           donationDomain.TypeDirect,
	})
	require.NoError(t, err)
	require.Equal(t, donationDomain.StatusPending, d.Status)
	require.Equal(t, "0.00", f.totalReceived(t), "pending donations must not move the balance")

	got, err := f.uc.ConfirmBlockchainTransaction(ctx, f.admin, d.ID, "0xabc123")
	require.NoError(t, err)
	require.Equal(t, donationDomain.StatusCompleted, got.Status)
	require.Equal(t, "40.00", f.totalReceived(t))

	// a second confirmation is rejected and cannot double-count
	_, err = f.uc.ConfirmBlockchainTransaction(ctx, f.admin, d.ID, "0xabc123")
	require.ErrorIs(t, err, shared.ErrInvalidTransition)
	require.Equal(t, "40.00", f.totalReceived(t))
}

func TestLedger_PurchaseCompletionDoesNotTouchBalance(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	o := &orderDomain.Order{
		OrderNumber:   "ORD-20260301-C00001",
		UserID:        f.donor.ID,
		TotalAmount:   money(t, "120.00"),
		Status:        orderDomain.StatusCompleted,
		PaymentStatus: orderDomain.PaymentPaid,
	}
	require.NoError(t, f.db.Create(o).Error, "seed order")

	d, err := f.uc.Create(ctx, f.donor, donationuc.CreateInput{
		OrganizationID: f.org.ID,
		Amount:         money(t, "12.00"),
		Type:           donationDomain.TypePurchase,
		OrderID:        &o.ID,
	})
	require.NoError(t, err)

	_, err = f.uc.ConfirmBlockchainTransaction(ctx, f.admin, d.ID, "0xpurchase")
	require.NoError(t, err)
	require.Equal(t, "0.00", f.totalReceived(t), "purchase completions are recorded but never feed the balance")

	stats, err := f.uc.OrgStats(ctx, f.org.ID)
	require.NoError(t, err)
	require.True(t, stats.CompletedTotal.Equal(money(t, "12.00")))
	require.True(t, stats.DirectCompletedTotal.IsZero())
}

func TestLedger_FailedDonationDoesNotIncrement(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	d, err := f.uc.Create(ctx, f.donor, donationuc.CreateInput{
		OrganizationID: f.org.ID,
		Amount:         money(t, "30.00"),
		Type:           donationDomain.TypeDirect,
	})
	require.NoError(t, err)

	got, err := f.uc.UpdateStatus(ctx, f.admin, d.ID, donationDomain.StatusFailed, "")
	require.NoError(t, err)
	require.Equal(t, donationDomain.StatusFailed, got.Status)
	require.Equal(t, "0.00", f.totalReceived(t))

	// failed is terminal, it cannot be completed afterwards
	_, err = f.uc.ConfirmBlockchainTransaction(ctx, f.admin, d.ID, "0xlate")
	require.ErrorIs(t, err, shared.ErrInvalidTransition)
	require.Equal(t, "0.00", f.totalReceived(t))
}

func TestLedger_ConcurrentConfirmsOfDistinctDonations(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	const n = 8
	ids := make([]uint64, 0, n)
	for i := 0; i < n; i++ {
		d, err := f.uc.Create(ctx, f.donor, donationuc.CreateInput{
			OrganizationID: f.org.ID,
			Amount:         money(t, "5.00"),
			Type:           donationDomain.TypeDirect,
		})
		require.NoError(t, err)
		ids = append(ids, d.ID)
	}

	errs := make(chan error, n)
	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id uint64) {
			defer wg.Done()
			_, err := f.uc.ConfirmBlockchainTransaction(ctx, f.admin, id, "0xconcurrent")
			errs <- err
		}(id)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	require.Equal(t, "40.00", f.totalReceived(t))

	// stored balance and the recomputed aggregate agree
	stats, err := f.uc.OrgStats(ctx, f.org.ID)
	require.NoError(t, err)
	require.Equal(t, "40.00", stats.DirectCompletedTotal.StringFixed(2))
	require.Equal(t, int64(n), stats.CountsByStatus[donationDomain.StatusCompleted])
}
