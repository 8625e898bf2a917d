package http

import (
	"net/http"

	"givemarket-backend/internal/usecase/rating"

	"github.com/labstack/echo/v4"
)

type RatingHandler struct{ uc *rating.Usecase }

func NewRatingHandler(uc *rating.Usecase) *RatingHandler { return &RatingHandler{uc: uc} }

type rateReq struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Score     int    `json:"score"      validate:"required,gte=1,lte=5"`
	Comment   string `json:"comment"`
}

func (h *RatingHandler) Rate(c echo.Context) error {
	var req rateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	r, err := h.uc.Rate(c.Request().Context(), actor(c), rating.RateInput{
		ProductID: req.ProductID,
		Score:     req.Score,
		Comment:   req.Comment,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *RatingHandler) ListByProduct(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.ListByProduct(c.Request().Context(), productID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
