package http

import (
	"net/http"

	domainOrg "givemarket-backend/internal/domain/organization"
	"givemarket-backend/internal/usecase/organization"

	"github.com/labstack/echo/v4"
)

type OrganizationHandler struct{ uc *organization.Usecase }

func NewOrganizationHandler(uc *organization.Usecase) *OrganizationHandler {
	return &OrganizationHandler{uc: uc}
}

type createOrgReq struct {
	NameEn            string `json:"name_en"`
	NameAr            string `json:"name_ar"`
	DescriptionEn     string `json:"description_en"`
	DescriptionAr     string `json:"description_ar"`
	BlockchainAddress string `json:"blockchain_address" validate:"required"`
}

func (h *OrganizationHandler) Create(c echo.Context) error {
	var req createOrgReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	o, err := h.uc.Create(c.Request().Context(), actor(c), organization.CreateInput{
		NameEn:            req.NameEn,
		NameAr:            req.NameAr,
		DescriptionEn:     req.DescriptionEn,
		DescriptionAr:     req.DescriptionAr,
		BlockchainAddress: req.BlockchainAddress,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *OrganizationHandler) Verify(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	o, err := h.uc.Verify(c.Request().Context(), actor(c), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrganizationHandler) Reject(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req rejectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	o, err := h.uc.RejectVerification(c.Request().Context(), actor(c), id, req.Reason)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrganizationHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Request().Context(), actor(c), id); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *OrganizationHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	o, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrganizationHandler) List(c echo.Context) error {
	limit, offset := pagination(c)
	out, err := h.uc.List(c.Request().Context(), domainOrg.Filter{Limit: limit, Offset: offset})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrganizationHandler) ListVerified(c echo.Context) error {
	limit, offset := pagination(c)
	out, err := h.uc.ListVerified(c.Request().Context(), limit, offset)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrganizationHandler) ListPending(c echo.Context) error {
	limit, offset := pagination(c)
	out, err := h.uc.ListPending(c.Request().Context(), limit, offset)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
