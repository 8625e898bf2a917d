package http

import (
	"net/http"

	domainOrder "givemarket-backend/internal/domain/order"
	"givemarket-backend/internal/usecase/order"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type OrderHandler struct{ uc *order.Usecase }

func NewOrderHandler(uc *order.Usecase) *OrderHandler { return &OrderHandler{uc: uc} }

type createOrderReq struct {
	TotalAmount    string `json:"total_amount" validate:"required"`
	BlockchainTxID string `json:"blockchain_tx_id"`
}

func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	amount, err := decimal.NewFromString(req.TotalAmount)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "total_amount must be a decimal string"})
	}
	o, err := h.uc.Create(c.Request().Context(), actor(c), order.CreateInput{
		TotalAmount:    amount,
		BlockchainTxID: req.BlockchainTxID,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, o)
}

type updateOrderReq struct {
	TotalAmount    *string `json:"total_amount"`
	Status         *string `json:"status"`
	PaymentStatus  *string `json:"payment_status"`
	BlockchainTxID *string `json:"blockchain_tx_id"`
}

func (h *OrderHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	in := order.UpdateInput{BlockchainTxID: req.BlockchainTxID}
	if req.TotalAmount != nil {
		amount, err := decimal.NewFromString(*req.TotalAmount)
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "total_amount must be a decimal string"})
		}
		in.TotalAmount = &amount
	}
	if req.Status != nil {
		st := domainOrder.Status(*req.Status)
		in.Status = &st
	}
	if req.PaymentStatus != nil {
		ps := domainOrder.PaymentStatus(*req.PaymentStatus)
		in.PaymentStatus = &ps
	}
	o, err := h.uc.Update(c.Request().Context(), actor(c), id, in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

type paymentStatusReq struct {
	PaymentStatus  string `json:"payment_status"    validate:"required,oneof=unpaid paid refunded failed"`
	BlockchainTxID string `json:"blockchain_tx_id"  validate:"required"`
}

func (h *OrderHandler) UpdatePaymentStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req paymentStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	o, err := h.uc.UpdatePaymentStatus(c.Request().Context(), actor(c), id,
		domainOrder.PaymentStatus(req.PaymentStatus), req.BlockchainTxID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) Cancel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	o, err := h.uc.Cancel(c.Request().Context(), actor(c), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Remove(c.Request().Context(), actor(c), id); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type addItemReq struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"required,gte=1"`
	UnitPrice string `json:"unit_price" validate:"required"`
}

func (h *OrderHandler) AddItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req addItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	price, err := decimal.NewFromString(req.UnitPrice)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "unit_price must be a decimal string"})
	}
	it, err := h.uc.AddItem(c.Request().Context(), actor(c), id, order.AddItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UnitPrice: price,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, it)
}

func (h *OrderHandler) RemoveItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "item_id")
	if err != nil {
		return err
	}
	if err := h.uc.RemoveItem(c.Request().Context(), actor(c), id, itemID); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *OrderHandler) Items(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	items, err := h.uc.Items(c.Request().Context(), actor(c), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *OrderHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	o, err := h.uc.Get(c.Request().Context(), actor(c), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) GetByNumber(c echo.Context) error {
	number := c.Param("number")
	if number == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid number")
	}
	o, err := h.uc.GetByNumber(c.Request().Context(), actor(c), number)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) List(c echo.Context) error {
	limit, offset := pagination(c)
	f := domainOrder.Filter{Limit: limit, Offset: offset}
	if s := c.QueryParam("status"); s != "" {
		st := domainOrder.Status(s)
		f.Status = &st
	}
	if s := c.QueryParam("payment_status"); s != "" {
		ps := domainOrder.PaymentStatus(s)
		f.PaymentStatus = &ps
	}
	out, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) History(c echo.Context) error {
	limit, offset := pagination(c)
	out, err := h.uc.History(c.Request().Context(), actor(c), limit, offset)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) Stats(c echo.Context) error {
	out, err := h.uc.Stats(c.Request().Context(), actor(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
