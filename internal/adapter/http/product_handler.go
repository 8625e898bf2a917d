package http

import (
	"net/http"

	domainProduct "givemarket-backend/internal/domain/product"
	"givemarket-backend/internal/usecase/product"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ProductHandler struct{ uc *product.Usecase }

func NewProductHandler(uc *product.Usecase) *ProductHandler { return &ProductHandler{uc: uc} }

type createProductReq struct {
	SellerID       uint64  `json:"seller_id"       validate:"required"`
	OrganizationID uint64  `json:"organization_id" validate:"required"`
	CategoryID     *uint64 `json:"category_id"`
	NameEn         string  `json:"name_en"`
	NameAr         string  `json:"name_ar"`
	DescriptionEn  string  `json:"description_en"`
	DescriptionAr  string  `json:"description_ar"`
	Price          string  `json:"price"           validate:"required"`
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "price must be a decimal string"})
	}
	p, err := h.uc.Create(c.Request().Context(), actor(c), product.CreateInput{
		SellerID:       req.SellerID,
		OrganizationID: req.OrganizationID,
		CategoryID:     req.CategoryID,
		NameEn:         req.NameEn,
		NameAr:         req.NameAr,
		DescriptionEn:  req.DescriptionEn,
		DescriptionAr:  req.DescriptionAr,
		Price:          price,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) Submit(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.uc.SubmitForApproval(c.Request().Context(), actor(c), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Approve(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.uc.Approve(c.Request().Context(), actor(c), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

type rejectReq struct {
	Reason string `json:"rejection_reason"`
}

func (h *ProductHandler) Reject(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req rejectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	p, err := h.uc.Reject(c.Request().Context(), actor(c), id, req.Reason)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) ToggleActivation(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.uc.ToggleActivation(c.Request().Context(), actor(c), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

type editProductReq struct {
	CategoryID    *uint64 `json:"category_id"`
	NameEn        *string `json:"name_en"`
	NameAr        *string `json:"name_ar"`
	DescriptionEn *string `json:"description_en"`
	DescriptionAr *string `json:"description_ar"`
	Price         *string `json:"price"`
}

func (h *ProductHandler) Edit(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req editProductReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	in := product.EditInput{
		CategoryID:    req.CategoryID,
		NameEn:        req.NameEn,
		NameAr:        req.NameAr,
		DescriptionEn: req.DescriptionEn,
		DescriptionAr: req.DescriptionAr,
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "price must be a decimal string"})
		}
		in.Price = &price
	}
	p, err := h.uc.Edit(c.Request().Context(), actor(c), id, in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Request().Context(), actor(c), id); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ProductHandler) HardDelete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.HardDelete(c.Request().Context(), actor(c), id); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) List(c echo.Context) error {
	limit, offset := pagination(c)
	f := domainProduct.Filter{Limit: limit, Offset: offset}
	if s := c.QueryParam("status"); s != "" {
		st := domainProduct.Status(s)
		f.Status = &st
	}
	out, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) ListPublic(c echo.Context) error {
	limit, offset := pagination(c)
	out, err := h.uc.ListPublic(c.Request().Context(), domainProduct.Filter{Limit: limit, Offset: offset})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) Search(c echo.Context) error {
	limit, offset := pagination(c)
	out, err := h.uc.ListPublic(c.Request().Context(), domainProduct.Filter{
		Query: c.QueryParam("q"), Limit: limit, Offset: offset,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) ListBySeller(c echo.Context) error {
	sellerID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	limit, offset := pagination(c)
	out, err := h.uc.List(c.Request().Context(), domainProduct.Filter{
		SellerID: &sellerID, Limit: limit, Offset: offset,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) ListByStatus(c echo.Context) error {
	st := domainProduct.Status(c.Param("status"))
	limit, offset := pagination(c)
	out, err := h.uc.List(c.Request().Context(), domainProduct.Filter{
		Status: &st, Limit: limit, Offset: offset,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
