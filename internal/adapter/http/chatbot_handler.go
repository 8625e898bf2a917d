package http

import (
	"net/http"

	"givemarket-backend/internal/usecase/chatbot"

	"github.com/labstack/echo/v4"
)

type ChatbotHandler struct{ uc *chatbot.Usecase }

func NewChatbotHandler(uc *chatbot.Usecase) *ChatbotHandler { return &ChatbotHandler{uc: uc} }

type chatReq struct {
	Message string `json:"message" validate:"required"`
}

func (h *ChatbotHandler) Chat(c echo.Context) error {
	var req chatReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	return c.JSON(http.StatusOK, h.uc.Answer(req.Message))
}
