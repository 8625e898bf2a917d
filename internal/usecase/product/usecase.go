package product

import (
	"context"
	"errors"
	"strings"
	"time"

	"givemarket-backend/internal/domain/authz"
	domainProduct "givemarket-backend/internal/domain/product"
	"givemarket-backend/internal/domain/shared"
	"givemarket-backend/internal/domain/uow"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Usecase drives a product from draft to publicly purchasable.
type Usecase struct {
	repo domainProduct.Repository
	uow  uow.UnitOfWork
	log  *zap.Logger
}

func NewUsecase(repo domainProduct.Repository, tx uow.UnitOfWork, log *zap.Logger) *Usecase {
	return &Usecase{repo: repo, uow: tx, log: log}
}

func (u *Usecase) Create(ctx context.Context, actor authz.Actor, in CreateInput) (*domainProduct.Product, error) {
	if !authz.Can(actor.Role, authz.ActionProductCreate, false) {
		return nil, shared.ErrNotAuthorized.WithMessage("only admins create products")
	}
	if strings.TrimSpace(in.NameEn) == "" && strings.TrimSpace(in.NameAr) == "" {
		return nil, shared.ErrValidation.WithMessage("product name is required")
	}
	if !in.Price.IsPositive() {
		return nil, shared.ErrValidation.WithMessage("price must be positive")
	}
	if in.SellerID == 0 || in.OrganizationID == 0 {
		return nil, shared.ErrValidation.WithMessage("seller_id and organization_id are required")
	}

	creator := actor.ID
	p := &domainProduct.Product{
		SellerID:       in.SellerID,
		OrganizationID: in.OrganizationID,
		CategoryID:     in.CategoryID,
		CreatorID:      &creator,
		NameEn:         in.NameEn,
		NameAr:         in.NameAr,
		DescriptionEn:  in.DescriptionEn,
		DescriptionAr:  in.DescriptionAr,
		Price:          in.Price,
		ApprovalStatus: domainProduct.StatusDraft,
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	u.log.Info("product created", zap.Uint64("product_id", p.ID), zap.Uint64("seller_id", p.SellerID))
	return p, nil
}

// SubmitForApproval moves draft/rejected into review.
func (u *Usecase) SubmitForApproval(ctx context.Context, actor authz.Actor, productID uint64) (*domainProduct.Product, error) {
	var out *domainProduct.Product
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Products.GetByIDForUpdate(ctx, productID)
		if err != nil {
			return notFoundOr(err)
		}
		if !authz.Can(actor.Role, authz.ActionProductSubmit, p.SellerID == actor.ID) {
			return shared.ErrNotAuthorized.WithMessage("only the owning seller or an admin may submit")
		}
		next, err := domainProduct.Next(p.ApprovalStatus, domainProduct.ActionSubmit)
		if err != nil {
			return err
		}
		p.ApprovalStatus = next
		p.RejectionReason = nil
		if err := r.Products.Save(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.Info("product submitted for approval", zap.Uint64("product_id", productID))
	return out, nil
}

func (u *Usecase) Approve(ctx context.Context, actor authz.Actor, productID uint64) (*domainProduct.Product, error) {
	if !authz.Can(actor.Role, authz.ActionProductApprove, false) {
		return nil, shared.ErrNotAuthorized.WithMessage("only admins approve products")
	}
	var out *domainProduct.Product
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Products.GetByIDForUpdate(ctx, productID)
		if err != nil {
			return notFoundOr(err)
		}
		next, err := domainProduct.Next(p.ApprovalStatus, domainProduct.ActionApprove)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		admin := actor.ID
		p.ApprovalStatus = next
		p.IsApproved = true
		p.IsActive = true
		p.ApprovedBy = &admin
		p.ApprovedAt = &now
		p.RejectionReason = nil
		if err := r.Products.Save(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.Info("product approved", zap.Uint64("product_id", productID), zap.Uint64("admin_id", actor.ID))
	return out, nil
}

func (u *Usecase) Reject(ctx context.Context, actor authz.Actor, productID uint64, reason string) (*domainProduct.Product, error) {
	if !authz.Can(actor.Role, authz.ActionProductReject, false) {
		return nil, shared.ErrNotAuthorized.WithMessage("only admins reject products")
	}
	if strings.TrimSpace(reason) == "" {
		return nil, shared.ErrValidation.WithMessage("rejection reason is required")
	}
	var out *domainProduct.Product
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Products.GetByIDForUpdate(ctx, productID)
		if err != nil {
			return notFoundOr(err)
		}
		next, err := domainProduct.Next(p.ApprovalStatus, domainProduct.ActionReject)
		if err != nil {
			return err
		}
		p.ApprovalStatus = next
		p.IsApproved = false
		p.IsActive = false
		p.RejectionReason = &reason
		if err := r.Products.Save(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ToggleActivation flips is_active without touching approval_status.
func (u *Usecase) ToggleActivation(ctx context.Context, actor authz.Actor, productID uint64) (*domainProduct.Product, error) {
	if !authz.Can(actor.Role, authz.ActionProductToggle, false) {
		return nil, shared.ErrNotAuthorized.WithMessage("only admins toggle activation")
	}
	var out *domainProduct.Product
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Products.GetByIDForUpdate(ctx, productID)
		if err != nil {
			return notFoundOr(err)
		}
		if p.ApprovalStatus != domainProduct.StatusApproved {
			return shared.ErrInvalidTransition.WithMessage(
				"cannot toggle activation of a product in state %q", p.ApprovalStatus)
		}
		p.IsActive = !p.IsActive
		if err := r.Products.Save(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Edit applies a partial patch. Editing a decided product resets it to draft.
func (u *Usecase) Edit(ctx context.Context, actor authz.Actor, productID uint64, in EditInput) (*domainProduct.Product, error) {
	if in.Price != nil && !in.Price.IsPositive() {
		return nil, shared.ErrValidation.WithMessage("price must be positive")
	}
	var out *domainProduct.Product
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Products.GetByIDForUpdate(ctx, productID)
		if err != nil {
			return notFoundOr(err)
		}
		if !authz.Can(actor.Role, authz.ActionProductEdit, p.SellerID == actor.ID) {
			return shared.ErrNotAuthorized.WithMessage("only the owning seller or an admin may edit")
		}
		if in.CategoryID != nil {
			p.CategoryID = in.CategoryID
		}
		if in.NameEn != nil {
			p.NameEn = *in.NameEn
		}
		if in.NameAr != nil {
			p.NameAr = *in.NameAr
		}
		if in.DescriptionEn != nil {
			p.DescriptionEn = *in.DescriptionEn
		}
		if in.DescriptionAr != nil {
			p.DescriptionAr = *in.DescriptionAr
		}
		if in.Price != nil {
			p.Price = *in.Price
		}
		if p.ApprovalStatus == domainProduct.StatusApproved || p.ApprovalStatus == domainProduct.StatusRejected {
			p.ResetToDraft()
		}
		if err := r.Products.Save(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete soft-deletes; only drafts and rejected products can go this way.
func (u *Usecase) Delete(ctx context.Context, actor authz.Actor, productID uint64) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Products.GetByIDForUpdate(ctx, productID)
		if err != nil {
			return notFoundOr(err)
		}
		if !authz.Can(actor.Role, authz.ActionProductDelete, p.SellerID == actor.ID) {
			return shared.ErrNotAuthorized.WithMessage("only the owning seller or an admin may delete")
		}
		if !domainProduct.CanSoftDelete(p.ApprovalStatus) {
			return shared.ErrInvalidTransition.WithMessage(
				"cannot delete a product in state %q", p.ApprovalStatus)
		}
		return r.Products.Delete(ctx, p.ID)
	})
}

// HardDelete bypasses the state machine entirely. Admin escape hatch.
func (u *Usecase) HardDelete(ctx context.Context, actor authz.Actor, productID uint64) error {
	if !authz.Can(actor.Role, authz.ActionProductHardDelete, false) {
		return shared.ErrNotAuthorized.WithMessage("only admins hard-delete products")
	}
	if err := u.repo.HardDelete(ctx, productID); err != nil {
		return notFoundOr(err)
	}
	u.log.Warn("product hard-deleted", zap.Uint64("product_id", productID), zap.Uint64("admin_id", actor.ID))
	return nil
}

func (u *Usecase) Get(ctx context.Context, productID uint64) (*domainProduct.Product, error) {
	p, err := u.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return p, nil
}

func (u *Usecase) List(ctx context.Context, f domainProduct.Filter) ([]domainProduct.Product, error) {
	return u.repo.List(ctx, f)
}

func (u *Usecase) ListPublic(ctx context.Context, f domainProduct.Filter) ([]domainProduct.Product, error) {
	return u.repo.ListPublic(ctx, f)
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound.WithMessage("product not found")
	}
	return err
}
