package http

import (
	"net/http"

	"givemarket-backend/internal/domain/authz"
	"givemarket-backend/internal/usecase/user"

	"github.com/labstack/echo/v4"
)

type UserHandler struct{ uc *user.Usecase }

func NewUserHandler(uc *user.Usecase) *UserHandler { return &UserHandler{uc: uc} }

type registerReq struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"  validate:"required"`
	Role  string `json:"role"  validate:"omitempty,oneof=customer seller"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	u, err := h.uc.Register(c.Request().Context(), user.RegisterInput{
		Email: req.Email,
		Name:  req.Name,
		Role:  authz.Role(req.Role),
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *UserHandler) Me(c echo.Context) error {
	u, err := h.uc.Get(c.Request().Context(), actor(c).ID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	u, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

type updateProfileReq struct {
	Name *string `json:"name"`
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	u, err := h.uc.UpdateProfile(c.Request().Context(), actor(c), id, user.UpdateProfileInput{Name: req.Name})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, u)
}
