package mysql

import (
	"context"
	"sync"
	"testing"

	orgDomain "givemarket-backend/internal/domain/organization"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openOrgTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&orgDomain.Organization{}), "auto-migrate")
	return db
}

func TestOrganizationRepository_IncrementTotalReceived(t *testing.T) {
	db := openOrgTestDB(t)
	ctx := context.Background()
	repo := NewOrganizationRepository(db)

	org := seedOrg(t, db, "increment-org")

	require.NoError(t, repo.IncrementTotalReceived(ctx, org.ID, money(t, "10.50")))
	require.NoError(t, repo.IncrementTotalReceived(ctx, org.ID, money(t, "5.25")))

	got, err := repo.GetByID(ctx, org.ID)
	require.NoError(t, err)
	require.True(t, got.TotalReceived.Equal(money(t, "15.75")),
		"total_received = %s, want 15.75", got.TotalReceived)
}

func TestOrganizationRepository_IncrementTotalReceived_MissingOrg(t *testing.T) {
	db := openOrgTestDB(t)
	repo := NewOrganizationRepository(db)

	err := repo.IncrementTotalReceived(context.Background(), 9999, money(t, "1.00"))
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// Concurrent increments must all land: the delta is applied in SQL, not
// read-modify-write in Go.
func TestOrganizationRepository_IncrementTotalReceived_Concurrent(t *testing.T) {
	db := openOrgTestDB(t)
	ctx := context.Background()
	repo := NewOrganizationRepository(db)

	org := seedOrg(t, db, "concurrent-org")

	const n = 20
	one := money(t, "1.00")
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.IncrementTotalReceived(ctx, org.ID, one)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := repo.GetByID(ctx, org.ID)
	require.NoError(t, err)
	require.True(t, got.TotalReceived.Equal(money(t, "20.00")),
		"total_received = %s, want 20.00", got.TotalReceived)
}

func TestOrganizationRepository_NameOrAddressExists(t *testing.T) {
	db := openOrgTestDB(t)
	ctx := context.Background()
	repo := NewOrganizationRepository(db)

	seedOrg(t, db, "exists-org")

	cases := []struct {
		nameEn, nameAr, addr string
		want                 bool
	}{
		{"exists-org", "other", "0xother", true},
		{"other", "exists-org-ar", "0xother", true},
		{"other", "other", "0xexists-org", true},
		{"other", "other", "0xother", false},
	}
	for i, c := range cases {
		got, err := repo.NameOrAddressExists(ctx, c.nameEn, c.nameAr, c.addr)
		require.NoError(t, err, "case %d", i)
		require.Equal(t, c.want, got, "case %d", i)
	}
}

func TestOrganizationRepository_Create_DuplicateAddress(t *testing.T) {
	db := openOrgTestDB(t)
	ctx := context.Background()
	repo := NewOrganizationRepository(db)

	first := seedOrg(t, db, "dup-org")
	err := repo.Create(ctx, &orgDomain.Organization{
		NameEn:            "another name",
		NameAr:            "another name ar",
		BlockchainAddress: first.BlockchainAddress,
	})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestOrganizationRepository_List_VerifiedFilter(t *testing.T) {
	db := openOrgTestDB(t)
	ctx := context.Background()
	repo := NewOrganizationRepository(db)

	verified := seedOrg(t, db, "verified-org")
	verified.IsVerified = true
	require.NoError(t, repo.Save(ctx, verified))
	pending := seedOrg(t, db, "pending-org")

	yes := true
	got, err := repo.List(ctx, orgDomain.Filter{Verified: &yes})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, verified.ID, got[0].ID)

	no := false
	got, err = repo.List(ctx, orgDomain.Filter{Verified: &no})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, pending.ID, got[0].ID)

	got, err = repo.List(ctx, orgDomain.Filter{})
	require.NoError(t, err)
	require.Len(t, got, 2)
}
