package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/item-service/internal/model"
	"github.com/deppfellow/item-service/internal/repository"
)

// ItemService delegates to an ItemStore and logs every mutation with the
// request-scoped logger found in ctx.
type ItemService struct {
	items repository.ItemStore
}

func NewItemService(items repository.ItemStore) *ItemService {
	return &ItemService{items: items}
}

func (s *ItemService) CreateItem(ctx context.Context, name, description string) (model.Item, error) {
	logger := zerolog.Ctx(ctx)

	item, err := s.items.Create(ctx, name, description)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create item")
		return model.Item{}, err
	}

	logger.Info().Int64("item_id", item.ID).Msg("item created")

	return item, nil
}

func (s *ItemService) ListItems(ctx context.Context) ([]model.Item, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to list items")
		return nil, err
	}

	return items, nil
}

func (s *ItemService) GetItem(ctx context.Context, id int64) (model.Item, bool, error) {
	item, found, err := s.items.Get(ctx, id)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int64("item_id", id).Msg("failed to fetch item")
		return model.Item{}, false, err
	}

	return item, found, nil
}

// UpdateItem overwrites both fields of an existing item. When the id is
// absent nothing is written and found is false.
func (s *ItemService) UpdateItem(ctx context.Context, id int64, name, description string) (model.Item, bool, error) {
	logger := zerolog.Ctx(ctx).With().Int64("item_id", id).Logger()

	item, found, err := s.items.Update(ctx, id, name, description)
	if err != nil {
		logger.Error().Err(err).Msg("failed to update item")
		return model.Item{}, false, err
	}
	if !found {
		logger.Debug().Msg("item to update not found")
		return model.Item{}, false, nil
	}

	logger.Info().Msg("item updated")

	return item, true, nil
}

// DeleteItem removes an item and returns it as it was before removal.
func (s *ItemService) DeleteItem(ctx context.Context, id int64) (model.Item, bool, error) {
	logger := zerolog.Ctx(ctx).With().Int64("item_id", id).Logger()

	item, found, err := s.items.Delete(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msg("failed to delete item")
		return model.Item{}, false, err
	}
	if !found {
		logger.Debug().Msg("item to delete not found")
		return model.Item{}, false, nil
	}

	logger.Info().Msg("item deleted")

	return item, true, nil
}
