package http

import (
	"net/http"

	domainDonation "givemarket-backend/internal/domain/donation"
	"givemarket-backend/internal/usecase/donation"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type DonationHandler struct{ uc *donation.Usecase }

func NewDonationHandler(uc *donation.Usecase) *DonationHandler { return &DonationHandler{uc: uc} }

type createDonationReq struct {
	OrganizationID uint64  `json:"organization_id" validate:"required"`
	Amount         string  `json:"amount"          validate:"required"`
	Type           string  `json:"type"            validate:"required,oneof=purchase direct"`
	OrderID        *uint64 `json:"order_id"`
}

func (h *DonationHandler) Create(c echo.Context) error {
	var req createDonationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "amount must be a decimal string"})
	}
	d, err := h.uc.Create(c.Request().Context(), actor(c), donation.CreateInput{
		OrganizationID: req.OrganizationID,
		Amount:         amount,
		Type:           domainDonation.Type(req.Type),
		OrderID:        req.OrderID,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, d)
}

type donationStatusReq struct {
	Status         string `json:"status" validate:"required,oneof=completed failed"`
	BlockchainTxID string `json:"blockchain_tx_id"`
}

func (h *DonationHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req donationStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	d, err := h.uc.UpdateStatus(c.Request().Context(), actor(c), id,
		domainDonation.Status(req.Status), req.BlockchainTxID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

type confirmReq struct {
	BlockchainTxID string `json:"blockchainTxId" validate:"required"`
}

func (h *DonationHandler) Confirm(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req confirmReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	d, err := h.uc.ConfirmBlockchainTransaction(c.Request().Context(), actor(c), id, req.BlockchainTxID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *DonationHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Remove(c.Request().Context(), actor(c), id); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *DonationHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	d, err := h.uc.Get(c.Request().Context(), actor(c), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *DonationHandler) List(c echo.Context) error {
	limit, offset := pagination(c)
	f := domainDonation.Filter{Limit: limit, Offset: offset}
	if s := c.QueryParam("status"); s != "" {
		st := domainDonation.Status(s)
		f.Status = &st
	}
	out, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DonationHandler) History(c echo.Context) error {
	limit, offset := pagination(c)
	out, err := h.uc.History(c.Request().Context(), actor(c), limit, offset)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DonationHandler) ListByOrganization(c echo.Context) error {
	orgID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	limit, offset := pagination(c)
	out, err := h.uc.ListByOrganization(c.Request().Context(), orgID, limit, offset)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DonationHandler) OrgStats(c echo.Context) error {
	orgID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.OrgStats(c.Request().Context(), orgID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
