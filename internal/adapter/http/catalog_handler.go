package http

import (
	"net/http"

	"givemarket-backend/internal/usecase/catalog"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct{ uc *catalog.Usecase }

func NewCatalogHandler(uc *catalog.Usecase) *CatalogHandler { return &CatalogHandler{uc: uc} }

type categoryReq struct {
	NameEn        string `json:"name_en"`
	NameAr        string `json:"name_ar"`
	DescriptionEn string `json:"description_en"`
	DescriptionAr string `json:"description_ar"`
}

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req categoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	cat, err := h.uc.Create(c.Request().Context(), actor(c), catalog.CategoryInput{
		NameEn:        req.NameEn,
		NameAr:        req.NameAr,
		DescriptionEn: req.DescriptionEn,
		DescriptionAr: req.DescriptionAr,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, cat)
}

func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Request().Context(), actor(c), id); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogHandler) GetCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	cat, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	cats, err := h.uc.List(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, cats)
}
