package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/deppfellow/item-service/internal/model"
)

// ItemSQLiteRepository stores items in SQLite. SQLite accepts the same
// numbered placeholders and RETURNING clauses as PostgreSQL, so both
// implementations share their statements.
type ItemSQLiteRepository struct {
	db *sql.DB
}

func NewItemSQLiteRepository(db *sql.DB) *ItemSQLiteRepository {
	return &ItemSQLiteRepository{db: db}
}

func (r *ItemSQLiteRepository) Create(ctx context.Context, name, description string) (model.Item, error) {
	var item model.Item
	err := r.db.QueryRowContext(ctx, insertItemSQL, name, description).
		Scan(&item.ID, &item.Name, &item.Description)
	if err != nil {
		return model.Item{}, fmt.Errorf("create item: %w", err)
	}

	return item, nil
}

func (r *ItemSQLiteRepository) List(ctx context.Context) ([]model.Item, error) {
	rows, err := r.db.QueryContext(ctx, listItemsSQL)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Description); err != nil {
			return nil, fmt.Errorf("list items: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return items, nil
}

func (r *ItemSQLiteRepository) Get(ctx context.Context, id int64) (model.Item, bool, error) {
	return r.one(ctx, "get item", getItemSQL, id)
}

func (r *ItemSQLiteRepository) Update(ctx context.Context, id int64, name, description string) (model.Item, bool, error) {
	return r.one(ctx, "update item", updateItemSQL, id, name, description)
}

func (r *ItemSQLiteRepository) Delete(ctx context.Context, id int64) (model.Item, bool, error) {
	return r.one(ctx, "delete item", deleteItemSQL, id)
}

func (r *ItemSQLiteRepository) one(ctx context.Context, op, query string, args ...any) (model.Item, bool, error) {
	var item model.Item
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&item.ID, &item.Name, &item.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, false, nil
	}
	if err != nil {
		return model.Item{}, false, fmt.Errorf("%s: %w", op, err)
	}

	return item, true, nil
}
