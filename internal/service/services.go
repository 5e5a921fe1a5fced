package service

import (
	"github.com/deppfellow/item-service/internal/repository"
	"github.com/deppfellow/item-service/internal/server"
)

// Services is a container that groups all business services.
type Services struct {
	Items *ItemService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Items: NewItemService(repos.Items),
	}, nil
}
