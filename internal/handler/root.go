package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/item-service/internal/model"
	"github.com/deppfellow/item-service/internal/server"
)

type RootHandler struct {
	Handler
}

func NewRootHandler(s *server.Server) *RootHandler {
	return &RootHandler{Handler: NewHandler(s)}
}

func (h *RootHandler) Hello(c echo.Context, _ *model.EmptyPayload) (model.Message, error) {
	return model.Message{Message: "Hello World"}, nil
}
