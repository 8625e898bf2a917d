package donation

import (
	"context"
	"errors"
	"strings"

	"givemarket-backend/internal/domain/authz"
	domainDonation "givemarket-backend/internal/domain/donation"
	"givemarket-backend/internal/domain/shared"
	"givemarket-backend/internal/domain/uow"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Usecase is the donation ledger: it records pledges and is the only code
// path that moves a donation out of pending. The organization balance is
// incremented inside the same transaction as the status write, so two
// concurrent confirmations of one donation cannot double-count.
type Usecase struct {
	repo domainDonation.Repository
	uow  uow.UnitOfWork
	log  *zap.Logger
}

func NewUsecase(repo domainDonation.Repository, tx uow.UnitOfWork, log *zap.Logger) *Usecase {
	return &Usecase{repo: repo, uow: tx, log: log}
}

// Create records a pledge in pending. No funds move yet.
func (u *Usecase) Create(ctx context.Context, actor authz.Actor, in CreateInput) (*domainDonation.Donation, error) {
	if !authz.Can(actor.Role, authz.ActionDonationCreate, false) {
		return nil, shared.ErrNotAuthorized.WithMessage("not allowed to create donations")
	}
	if !in.Amount.IsPositive() {
		return nil, shared.ErrValidation.WithMessage("amount must be positive")
	}
	switch in.Type {
	case domainDonation.TypePurchase:
		if in.OrderID == nil {
			return nil, shared.ErrValidation.WithMessage("purchase donations require an order_id")
		}
	case domainDonation.TypeDirect:
		if in.OrderID != nil {
			return nil, shared.ErrValidation.WithMessage("direct donations cannot reference an order")
		}
	default:
		return nil, shared.ErrValidation.WithMessage("unknown donation type %q", in.Type)
	}

	var out *domainDonation.Donation
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Users.GetByID(ctx, actor.ID); err != nil {
			return notFoundOr(err, "donor")
		}
		if _, err := r.Organizations.GetByID(ctx, in.OrganizationID); err != nil {
			return notFoundOr(err, "organization")
		}
		if in.OrderID != nil {
			if _, err := r.Orders.GetByID(ctx, *in.OrderID); err != nil {
				return notFoundOr(err, "order")
			}
		}
		d := &domainDonation.Donation{
			UserID:         actor.ID,
			OrganizationID: in.OrganizationID,
			OrderID:        in.OrderID,
			Amount:         in.Amount,
			Type:           in.Type,
			Status:         domainDonation.StatusPending,
		}
		if err := r.Donations.Create(ctx, d); err != nil {
			return err
		}
		out = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.Info("donation created",
		zap.Uint64("donation_id", out.ID),
		zap.Uint64("organization_id", out.OrganizationID),
		zap.String("type", string(out.Type)))
	return out, nil
}

// UpdateStatus is the single transition point. The donation row is locked
// for the whole operation; the status guard, the status write and the
// balance increment commit or roll back together.
func (u *Usecase) UpdateStatus(ctx context.Context, actor authz.Actor, donationID uint64, newStatus domainDonation.Status, txID string) (*domainDonation.Donation, error) {
	if !authz.Can(actor.Role, authz.ActionDonationStatus, false) {
		return nil, shared.ErrNotAuthorized.WithMessage("only admins update donation status")
	}
	var out *domainDonation.Donation
	err := u.uow.WithinDonationTx(ctx, donationID, func(r uow.Repos, d *domainDonation.Donation) error {
		if err := domainDonation.ValidateTransition(d.Status, newStatus); err != nil {
			return err
		}
		d.Status = newStatus
		if txID != "" {
			d.BlockchainTxID = txID
		}
		if err := r.Donations.Save(ctx, d); err != nil {
			return err
		}
		// Only completed direct donations feed the aggregate; purchase
		// completions are recorded but do not touch total_received.
		if newStatus == domainDonation.StatusCompleted && d.Type == domainDonation.TypeDirect {
			if err := r.Organizations.IncrementTotalReceived(ctx, d.OrganizationID, d.Amount); err != nil {
				return err
			}
		}
		out = d
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound.WithMessage("donation not found")
		}
		return nil, err
	}
	u.log.Info("donation status updated",
		zap.Uint64("donation_id", donationID),
		zap.String("status", string(newStatus)))
	return out, nil
}

// ConfirmBlockchainTransaction is the external-confirmation entry point:
// requires a pending donation and a transaction id, then completes it.
func (u *Usecase) ConfirmBlockchainTransaction(ctx context.Context, actor authz.Actor, donationID uint64, txID string) (*domainDonation.Donation, error) {
	if strings.TrimSpace(txID) == "" {
		return nil, shared.ErrValidation.WithMessage("blockchain transaction id is required")
	}
	return u.UpdateStatus(ctx, actor, donationID, domainDonation.StatusCompleted, txID)
}

// Remove deletes a donation that never left pending.
func (u *Usecase) Remove(ctx context.Context, actor authz.Actor, donationID uint64) error {
	if !authz.Can(actor.Role, authz.ActionDonationDelete, false) {
		return shared.ErrNotAuthorized.WithMessage("only admins delete donations")
	}
	err := u.uow.WithinDonationTx(ctx, donationID, func(r uow.Repos, d *domainDonation.Donation) error {
		if d.Status != domainDonation.StatusPending {
			return shared.ErrInvalidState.WithMessage(
				"cannot delete a donation in state %q", d.Status)
		}
		return r.Donations.Delete(ctx, d.ID)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound.WithMessage("donation not found")
	}
	return err
}

func (u *Usecase) Get(ctx context.Context, actor authz.Actor, donationID uint64) (*domainDonation.Donation, error) {
	d, err := u.repo.GetByID(ctx, donationID)
	if err != nil {
		return nil, notFoundOr(err, "donation")
	}
	if !authz.Can(actor.Role, authz.ActionDonationRead, d.UserID == actor.ID) {
		return nil, shared.ErrNotAuthorized.WithMessage("not allowed to read this donation")
	}
	return d, nil
}

func (u *Usecase) List(ctx context.Context, f domainDonation.Filter) ([]domainDonation.Donation, error) {
	return u.repo.List(ctx, f)
}

// History lists the actor's own donations.
func (u *Usecase) History(ctx context.Context, actor authz.Actor, limit, offset int) ([]domainDonation.Donation, error) {
	uid := actor.ID
	return u.repo.List(ctx, domainDonation.Filter{UserID: &uid, Limit: limit, Offset: offset})
}

func (u *Usecase) ListByOrganization(ctx context.Context, organizationID uint64, limit, offset int) ([]domainDonation.Donation, error) {
	return u.repo.List(ctx, domainDonation.Filter{OrganizationID: &organizationID, Limit: limit, Offset: offset})
}

// OrgStats recomputes per-organization numbers from donation rows; for
// direct donations the completed sum must match the stored total_received.
func (u *Usecase) OrgStats(ctx context.Context, organizationID uint64) (*domainDonation.OrgStats, error) {
	return u.repo.OrgStats(ctx, organizationID)
}

func notFoundOr(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound.WithMessage("%s not found", what)
	}
	return err
}
