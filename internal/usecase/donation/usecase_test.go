package donation

import (
	"context"
	"errors"
	"testing"

	"givemarket-backend/internal/domain/authz"
	domainDonation "givemarket-backend/internal/domain/donation"
	domainOrder "givemarket-backend/internal/domain/order"
	domainOrg "givemarket-backend/internal/domain/organization"
	"givemarket-backend/internal/domain/shared"
	"givemarket-backend/internal/domain/uow"
	domainUser "givemarket-backend/internal/domain/user"
	"givemarket-backend/internal/testutil/donationmock"
	"givemarket-backend/internal/testutil/ordermock"
	"givemarket-backend/internal/testutil/orgmock"
	"givemarket-backend/internal/testutil/usermock"
	"givemarket-backend/internal/testutil/uowmock"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	admin    = authz.Actor{ID: 1, Email: "admin@x", Role: authz.RoleAdmin}
	customer = authz.Actor{ID: 7, Email: "c@x", Role: authz.RoleCustomer}
)

func money(s string) decimal.Decimal { d, _ := decimal.NewFromString(s); return d }

// happyRepos wires mocks where donor, organization and order 5 all exist.
func happyRepos(donations *donationmock.Repo, orgs *orgmock.Repo) uow.Repos {
	return uow.Repos{
		Users: &usermock.Repo{
			GetByIDFn: func(ctx context.Context, id uint64) (*domainUser.User, error) {
				return &domainUser.User{ID: id}, nil
			},
		},
		Organizations: orgs,
		Orders: &ordermock.Repo{
			GetByIDFn: func(ctx context.Context, id uint64) (*domainOrder.Order, error) {
				if id == 5 {
					return &domainOrder.Order{ID: 5}, nil
				}
				return nil, gorm.ErrRecordNotFound
			},
		},
		Donations: donations,
	}
}

func orgExists() *orgmock.Repo {
	return &orgmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*domainOrg.Organization, error) {
			return &domainOrg.Organization{ID: id}, nil
		},
	}
}

func TestCreate_Validations(t *testing.T) {
	uc := NewUsecase(&donationmock.Repo{}, uowmock.New(), zap.NewNop())
	orderID := uint64(5)

	cases := []struct {
		name string
		in   CreateInput
	}{
		{"non-positive amount", CreateInput{OrganizationID: 1, Amount: money("0"), Type: domainDonation.TypeDirect}},
		{"purchase without order", CreateInput{OrganizationID: 1, Amount: money("10"), Type: domainDonation.TypePurchase}},
		{"direct with order", CreateInput{OrganizationID: 1, Amount: money("10"), Type: domainDonation.TypeDirect, OrderID: &orderID}},
		{"unknown type", CreateInput{OrganizationID: 1, Amount: money("10"), Type: "weird"}},
	}
	for _, c := range cases {
		if _, err := uc.Create(context.Background(), customer, c.in); !errors.Is(err, shared.ErrValidation) {
			t.Fatalf("%s: error = %v, want ErrValidation", c.name, err)
		}
	}
}

func TestCreate_DirectDonation_StartsPending(t *testing.T) {
	var created *domainDonation.Donation
	donations := &donationmock.Repo{
		CreateFn: func(ctx context.Context, d *domainDonation.Donation) error {
			d.ID = 11
			created = d
			return nil
		},
	}
	uc := NewUsecase(donations, uowmock.Passthrough(happyRepos(donations, orgExists())), zap.NewNop())

	out, err := uc.Create(context.Background(), customer, CreateInput{
		OrganizationID: 3,
		Amount:         money("50.00"),
		Type:           domainDonation.TypeDirect,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created == nil || out.ID != 11 {
		t.Fatalf("donation not persisted: %+v", out)
	}
	if out.Status != domainDonation.StatusPending {
		t.Fatalf("status = %s, want pending", out.Status)
	}
	if out.UserID != customer.ID || out.OrganizationID != 3 || out.OrderID != nil {
		t.Fatalf("unexpected fields: %+v", out)
	}
}

func TestCreate_PurchaseDonation_RequiresExistingOrder(t *testing.T) {
	donations := &donationmock.Repo{}
	uc := NewUsecase(donations, uowmock.Passthrough(happyRepos(donations, orgExists())), zap.NewNop())

	missing := uint64(999)
	_, err := uc.Create(context.Background(), customer, CreateInput{
		OrganizationID: 3,
		Amount:         money("25.00"),
		Type:           domainDonation.TypePurchase,
		OrderID:        &missing,
	})
	if !errors.Is(err, shared.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestUpdateStatus_DirectCompleted_IncrementsBalanceOnce(t *testing.T) {
	d := &domainDonation.Donation{
		ID: 11, UserID: 7, OrganizationID: 3,
		Amount: money("50.00"),
		Type:   domainDonation.TypeDirect,
		Status: domainDonation.StatusPending,
	}
	donations := &donationmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*domainDonation.Donation, error) {
			return d, nil
		},
	}
	increments := 0
	orgs := orgExists()
	orgs.IncrementTotalReceivedFn = func(ctx context.Context, id uint64, amount decimal.Decimal) error {
		increments++
		if id != 3 || !amount.Equal(money("50.00")) {
			t.Fatalf("increment (%d, %s), want (3, 50.00)", id, amount)
		}
		return nil
	}
	uc := NewUsecase(donations, uowmock.Passthrough(happyRepos(donations, orgs)), zap.NewNop())

	out, err := uc.UpdateStatus(context.Background(), admin, 11, domainDonation.StatusCompleted, "0xabc")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if out.Status != domainDonation.StatusCompleted || out.BlockchainTxID != "0xabc" {
		t.Fatalf("donation not completed: %+v", out)
	}
	if increments != 1 {
		t.Fatalf("increments = %d, want 1", increments)
	}

	// second confirmation of the same donation is rejected and does not
	// touch the balance again
	_, err = uc.UpdateStatus(context.Background(), admin, 11, domainDonation.StatusCompleted, "0xabc")
	if !errors.Is(err, shared.ErrInvalidTransition) {
		t.Fatalf("double confirm: error = %v, want ErrInvalidTransition", err)
	}
	if increments != 1 {
		t.Fatalf("double confirm incremented again: %d", increments)
	}
}

func TestUpdateStatus_PurchaseCompleted_DoesNotTouchBalance(t *testing.T) {
	d := &domainDonation.Donation{
		ID: 12, UserID: 7, OrganizationID: 3,
		Amount: money("25.00"),
		Type:   domainDonation.TypePurchase,
		Status: domainDonation.StatusPending,
	}
	donations := &donationmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*domainDonation.Donation, error) {
			return d, nil
		},
	}
	orgs := orgExists()
	orgs.IncrementTotalReceivedFn = func(ctx context.Context, id uint64, amount decimal.Decimal) error {
		t.Fatalf("purchase completion must not increment total_received")
		return nil
	}
	uc := NewUsecase(donations, uowmock.Passthrough(happyRepos(donations, orgs)), zap.NewNop())

	out, err := uc.UpdateStatus(context.Background(), admin, 12, domainDonation.StatusCompleted, "0xdef")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if out.Status != domainDonation.StatusCompleted {
		t.Fatalf("status = %s, want completed", out.Status)
	}
}

func TestUpdateStatus_FailedDoesNotIncrement(t *testing.T) {
	d := &domainDonation.Donation{
		ID: 13, OrganizationID: 3,
		Amount: money("10.00"),
		Type:   domainDonation.TypeDirect,
		Status: domainDonation.StatusPending,
	}
	donations := &donationmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*domainDonation.Donation, error) {
			return d, nil
		},
	}
	orgs := orgExists()
	orgs.IncrementTotalReceivedFn = func(ctx context.Context, id uint64, amount decimal.Decimal) error {
		t.Fatalf("failed donation must not increment total_received")
		return nil
	}
	uc := NewUsecase(donations, uowmock.Passthrough(happyRepos(donations, orgs)), zap.NewNop())

	out, err := uc.UpdateStatus(context.Background(), admin, 13, domainDonation.StatusFailed, "")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if out.Status != domainDonation.StatusFailed {
		t.Fatalf("status = %s, want failed", out.Status)
	}
}

func TestUpdateStatus_NonAdminDenied(t *testing.T) {
	uc := NewUsecase(&donationmock.Repo{}, uowmock.New(), zap.NewNop())
	_, err := uc.UpdateStatus(context.Background(), customer, 1, domainDonation.StatusCompleted, "0x1")
	if !errors.Is(err, shared.ErrNotAuthorized) {
		t.Fatalf("error = %v, want ErrNotAuthorized", err)
	}
}

func TestConfirmBlockchainTransaction_RequiresTxID(t *testing.T) {
	uc := NewUsecase(&donationmock.Repo{}, uowmock.New(), zap.NewNop())
	_, err := uc.ConfirmBlockchainTransaction(context.Background(), admin, 1, "   ")
	if !errors.Is(err, shared.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}

func TestRemove_OnlyPending(t *testing.T) {
	d := &domainDonation.Donation{ID: 14, Status: domainDonation.StatusCompleted}
	donations := &donationmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*domainDonation.Donation, error) {
			return d, nil
		},
	}
	uc := NewUsecase(donations, uowmock.Passthrough(happyRepos(donations, orgExists())), zap.NewNop())

	err := uc.Remove(context.Background(), admin, 14)
	if !errors.Is(err, shared.ErrInvalidState) {
		t.Fatalf("error = %v, want ErrInvalidState", err)
	}

	// pending delete goes through
	deleted := false
	d.Status = domainDonation.StatusPending
	donations.DeleteFn = func(ctx context.Context, id uint64) error { deleted = true; return nil }
	if err := uc.Remove(context.Background(), admin, 14); err != nil {
		t.Fatalf("Remove pending: %v", err)
	}
	if !deleted {
		t.Fatalf("delete not called")
	}
}

func TestGet_OwnershipEnforced(t *testing.T) {
	donations := &donationmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*domainDonation.Donation, error) {
			return &domainDonation.Donation{ID: id, UserID: 99}, nil
		},
	}
	uc := NewUsecase(donations, uowmock.New(), zap.NewNop())

	if _, err := uc.Get(context.Background(), customer, 1); !errors.Is(err, shared.ErrNotAuthorized) {
		t.Fatalf("foreign donation: error = %v, want ErrNotAuthorized", err)
	}
	if _, err := uc.Get(context.Background(), admin, 1); err != nil {
		t.Fatalf("admin read: %v", err)
	}
}
