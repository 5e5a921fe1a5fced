package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/item-service/internal/handler"
	"github.com/deppfellow/item-service/static"
)

// registerSystemRoutes registers the endpoints that are not part of the
// item API: the greeting, health status and documentation.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", handler.Handle(h.Root.Handler, h.Root.Hello, http.StatusOK))

	r.GET("/status", h.Health.CheckHealth)

	r.StaticFS("/static", static.FS)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
