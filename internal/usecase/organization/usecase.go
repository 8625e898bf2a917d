package organization

import (
	"context"
	"errors"
	"strings"
	"time"

	"givemarket-backend/internal/domain/authz"
	domainOrg "givemarket-backend/internal/domain/organization"
	"givemarket-backend/internal/domain/shared"
	"givemarket-backend/internal/domain/uow"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Usecase struct {
	repo domainOrg.Repository
	uow  uow.UnitOfWork
	log  *zap.Logger
}

func NewUsecase(repo domainOrg.Repository, tx uow.UnitOfWork, log *zap.Logger) *Usecase {
	return &Usecase{repo: repo, uow: tx, log: log}
}

// Create registers an unverified organization. Name (per language) and
// blockchain address must be unique.
func (u *Usecase) Create(ctx context.Context, actor authz.Actor, in CreateInput) (*domainOrg.Organization, error) {
	if !authz.Can(actor.Role, authz.ActionOrgCreate, false) {
		return nil, shared.ErrNotAuthorized.WithMessage("only admins create organizations")
	}
	if strings.TrimSpace(in.NameEn) == "" && strings.TrimSpace(in.NameAr) == "" {
		return nil, shared.ErrValidation.WithMessage("organization name is required")
	}
	if strings.TrimSpace(in.BlockchainAddress) == "" {
		return nil, shared.ErrValidation.WithMessage("blockchain_address is required")
	}

	taken, err := u.repo.NameOrAddressExists(ctx, in.NameEn, in.NameAr, in.BlockchainAddress)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.ErrConflict.WithMessage("organization name or blockchain address already in use")
	}

	o := &domainOrg.Organization{
		NameEn:            in.NameEn,
		NameAr:            in.NameAr,
		DescriptionEn:     in.DescriptionEn,
		DescriptionAr:     in.DescriptionAr,
		BlockchainAddress: in.BlockchainAddress,
	}
	if err := u.repo.Create(ctx, o); err != nil {
		// uniqueness constraint is the backstop for the pre-check race
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, shared.ErrConflict.WithMessage("organization name or blockchain address already in use")
		}
		return nil, err
	}
	u.log.Info("organization created", zap.Uint64("organization_id", o.ID))
	return o, nil
}

func (u *Usecase) Verify(ctx context.Context, actor authz.Actor, orgID uint64) (*domainOrg.Organization, error) {
	if !authz.Can(actor.Role, authz.ActionOrgVerify, false) {
		return nil, shared.ErrNotAuthorized.WithMessage("only admins verify organizations")
	}
	var out *domainOrg.Organization
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		o, err := r.Organizations.GetByIDForUpdate(ctx, orgID)
		if err != nil {
			return notFoundOr(err)
		}
		now := time.Now().UTC()
		admin := actor.ID
		o.IsVerified = true
		o.VerifiedBy = &admin
		o.VerifiedAt = &now
		o.RejectionReason = nil
		if err := r.Organizations.Save(ctx, o); err != nil {
			return err
		}
		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.Info("organization verified", zap.Uint64("organization_id", orgID), zap.Uint64("admin_id", actor.ID))
	return out, nil
}

// RejectVerification records a reason and revokes verification if present.
func (u *Usecase) RejectVerification(ctx context.Context, actor authz.Actor, orgID uint64, reason string) (*domainOrg.Organization, error) {
	if !authz.Can(actor.Role, authz.ActionOrgReject, false) {
		return nil, shared.ErrNotAuthorized.WithMessage("only admins reject organizations")
	}
	if strings.TrimSpace(reason) == "" {
		return nil, shared.ErrValidation.WithMessage("rejection reason is required")
	}
	var out *domainOrg.Organization
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		o, err := r.Organizations.GetByIDForUpdate(ctx, orgID)
		if err != nil {
			return notFoundOr(err)
		}
		o.IsVerified = false
		o.VerifiedBy = nil
		o.VerifiedAt = nil
		o.RejectionReason = &reason
		if err := r.Organizations.Save(ctx, o); err != nil {
			return err
		}
		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete refuses while the organization still owns products or donations.
func (u *Usecase) Delete(ctx context.Context, actor authz.Actor, orgID uint64) error {
	if !authz.Can(actor.Role, authz.ActionOrgDelete, false) {
		return shared.ErrNotAuthorized.WithMessage("only admins delete organizations")
	}
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		o, err := r.Organizations.GetByIDForUpdate(ctx, orgID)
		if err != nil {
			return notFoundOr(err)
		}
		productCount, err := r.Products.CountByOrganization(ctx, o.ID)
		if err != nil {
			return err
		}
		if productCount > 0 {
			return shared.ErrHasDependents.WithMessage("organization owns %d product(s)", productCount)
		}
		hasDonations, err := r.Donations.ExistsByOrganization(ctx, o.ID)
		if err != nil {
			return err
		}
		if hasDonations {
			return shared.ErrHasDependents.WithMessage("organization has donations")
		}
		return r.Organizations.Delete(ctx, o.ID)
	})
}

func (u *Usecase) Get(ctx context.Context, orgID uint64) (*domainOrg.Organization, error) {
	o, err := u.repo.GetByID(ctx, orgID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return o, nil
}

func (u *Usecase) List(ctx context.Context, f domainOrg.Filter) ([]domainOrg.Organization, error) {
	return u.repo.List(ctx, f)
}

func (u *Usecase) ListVerified(ctx context.Context, limit, offset int) ([]domainOrg.Organization, error) {
	v := true
	return u.repo.List(ctx, domainOrg.Filter{Verified: &v, Limit: limit, Offset: offset})
}

func (u *Usecase) ListPending(ctx context.Context, limit, offset int) ([]domainOrg.Organization, error) {
	v := false
	return u.repo.List(ctx, domainOrg.Filter{Verified: &v, Limit: limit, Offset: offset})
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound.WithMessage("organization not found")
	}
	return err
}
