package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deppfellow/item-service/internal/model"
)

// ItemPostgresRepository stores items in PostgreSQL.
type ItemPostgresRepository struct {
	pool *pgxpool.Pool
}

func NewItemPostgresRepository(pool *pgxpool.Pool) *ItemPostgresRepository {
	return &ItemPostgresRepository{pool: pool}
}

func (r *ItemPostgresRepository) Create(ctx context.Context, name, description string) (model.Item, error) {
	rows, err := r.pool.Query(ctx, insertItemSQL, name, description)
	if err != nil {
		return model.Item{}, fmt.Errorf("create item: %w", err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Item])
	if err != nil {
		return model.Item{}, fmt.Errorf("create item: %w", err)
	}

	return item, nil
}

func (r *ItemPostgresRepository) List(ctx context.Context) ([]model.Item, error) {
	rows, err := r.pool.Query(ctx, listItemsSQL)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Item])
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

func (r *ItemPostgresRepository) Get(ctx context.Context, id int64) (model.Item, bool, error) {
	return r.one(ctx, "get item", getItemSQL, id)
}

func (r *ItemPostgresRepository) Update(ctx context.Context, id int64, name, description string) (model.Item, bool, error) {
	return r.one(ctx, "update item", updateItemSQL, id, name, description)
}

func (r *ItemPostgresRepository) Delete(ctx context.Context, id int64) (model.Item, bool, error) {
	return r.one(ctx, "delete item", deleteItemSQL, id)
}

// one runs a statement that yields at most one item row; no row means the
// id is absent.
func (r *ItemPostgresRepository) one(ctx context.Context, op, query string, args ...any) (model.Item, bool, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return model.Item{}, false, fmt.Errorf("%s: %w", op, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Item])
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Item{}, false, nil
	}
	if err != nil {
		return model.Item{}, false, fmt.Errorf("%s: %w", op, err)
	}

	return item, true, nil
}
