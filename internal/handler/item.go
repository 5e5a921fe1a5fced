package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/item-service/internal/errs"
	"github.com/deppfellow/item-service/internal/model"
	"github.com/deppfellow/item-service/internal/server"
	"github.com/deppfellow/item-service/internal/service"
)

// ItemHandler serves the /items routes. It turns an absent result from the
// service into a 404 with the route specific message.
type ItemHandler struct {
	Handler
	items *service.ItemService
}

func NewItemHandler(s *server.Server, items *service.ItemService) *ItemHandler {
	return &ItemHandler{
		Handler: NewHandler(s),
		items:   items,
	}
}

func itemNotFound(id int64) error {
	return errs.NewNotFoundError(fmt.Sprintf("Item with id %d not found.", id), nil)
}

func (h *ItemHandler) CreateItem(c echo.Context, payload *model.CreateItemPayload) (model.Item, error) {
	return h.items.CreateItem(c.Request().Context(), *payload.Name, *payload.Description)
}

func (h *ItemHandler) ListItems(c echo.Context, _ *model.EmptyPayload) ([]model.Item, error) {
	return h.items.ListItems(c.Request().Context())
}

func (h *ItemHandler) GetItem(c echo.Context, payload *model.ItemIDPayload) (model.Item, error) {
	item, found, err := h.items.GetItem(c.Request().Context(), payload.ID)
	if err != nil {
		return model.Item{}, err
	}
	if !found {
		return model.Item{}, itemNotFound(payload.ID)
	}

	return item, nil
}

func (h *ItemHandler) UpdateItem(c echo.Context, payload *model.UpdateItemPayload) (model.Item, error) {
	item, found, err := h.items.UpdateItem(c.Request().Context(), payload.ID, *payload.Name, *payload.Description)
	if err != nil {
		return model.Item{}, err
	}
	if !found {
		return model.Item{}, itemNotFound(payload.ID)
	}

	return item, nil
}

// DeleteItem answers with a confirmation message rather than the deleted
// record, and uses its own wording for a missing id.
func (h *ItemHandler) DeleteItem(c echo.Context, payload *model.ItemIDPayload) (model.Message, error) {
	_, found, err := h.items.DeleteItem(c.Request().Context(), payload.ID)
	if err != nil {
		return model.Message{}, err
	}
	if !found {
		return model.Message{}, errs.NewNotFoundError(fmt.Sprintf("item id %d does not exist", payload.ID), nil)
	}

	return model.Message{Message: fmt.Sprintf("Item with id %d deleted successfully", payload.ID)}, nil
}
