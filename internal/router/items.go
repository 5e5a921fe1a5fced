package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/item-service/internal/handler"
)

func registerItemRoutes(g *echo.Group, h *handler.Handlers) {
	items := h.Items

	g.POST("", handler.Handle(items.Handler, items.CreateItem, http.StatusCreated))
	g.GET("", handler.Handle(items.Handler, items.ListItems, http.StatusOK))
	g.GET("/:id", handler.Handle(items.Handler, items.GetItem, http.StatusOK))
	g.PUT("/:id", handler.Handle(items.Handler, items.UpdateItem, http.StatusOK))
	g.DELETE("/:id", handler.Handle(items.Handler, items.DeleteItem, http.StatusOK))
}
