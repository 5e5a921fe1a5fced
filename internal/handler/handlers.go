// Package handler is the first layer after the router.
//
// It binds and validates requests through the validation package, calls
// the service layer and writes the response. Errors are returned to the
// global error handler, which owns the error response format.
package handler

import (
	"github.com/deppfellow/item-service/internal/server"
	"github.com/deppfellow/item-service/internal/service"
)

// Handlers is a container that groups all HTTP handlers so the router is
// set up from a single object.
type Handlers struct {
	Root    *RootHandler
	Items   *ItemHandler
	Health  *HealthHandler  // service health with a database check
	OpenAPI *OpenAPIHandler // API documentation UI
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Root:    NewRootHandler(s),
		Items:   NewItemHandler(s, services.Items),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
