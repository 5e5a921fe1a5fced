package repository

import (
	"context"

	"github.com/deppfellow/item-service/internal/model"
)

// ItemStore is the data-access capability for items.
//
// Lookups by id report an absent record with found == false and a nil
// error; errors are reserved for storage failures and always propagate.
// List makes no ordering guarantee.
type ItemStore interface {
	Create(ctx context.Context, name, description string) (model.Item, error)
	List(ctx context.Context) ([]model.Item, error)
	Get(ctx context.Context, id int64) (item model.Item, found bool, err error)
	Update(ctx context.Context, id int64, name, description string) (item model.Item, found bool, err error)
	Delete(ctx context.Context, id int64) (item model.Item, found bool, err error)
}

const (
	insertItemSQL = `INSERT INTO items (name, description) VALUES ($1, $2) RETURNING id, name, description`
	listItemsSQL  = `SELECT id, name, description FROM items`
	getItemSQL    = `SELECT id, name, description FROM items WHERE id = $1`
	updateItemSQL = `UPDATE items SET name = $2, description = $3 WHERE id = $1 RETURNING id, name, description`
	deleteItemSQL = `DELETE FROM items WHERE id = $1 RETURNING id, name, description`
)
