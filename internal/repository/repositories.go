// Package repository handles all interactions with the database.
//
// It contains the SQL for the item store and exposes it through the
// ItemStore capability interface, so the layers above never depend on a
// concrete driver.
package repository

import (
	"github.com/deppfellow/item-service/internal/database"
	"github.com/deppfellow/item-service/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Items ItemStore
}

// NewRepositories constructs the repository container over the database
// opened by the server.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Items: NewItemStore(s.DB),
	}
}

// NewItemStore picks the ItemStore implementation matching the open backend.
func NewItemStore(db *database.Database) ItemStore {
	if db.Pool != nil {
		return NewItemPostgresRepository(db.Pool)
	}
	return NewItemSQLiteRepository(db.SQL)
}
