package repository

import (
	"context"

	"portfolio/internal/model"
)

// ContentStore defines generic data access for named collections using SQL
// queries only. No business logic here, strictly persistence operations.
// Create and Update stamp createdAt/updatedAt inside the store; callers
// never supply them.
type ContentStore interface {
	// List returns all records of a collection ordered per the query.
	List(ctx context.Context, collection string, q ListQuery) ([]model.Record, error)

	// Get returns a single record by id. Missing rows surface as sql.ErrNoRows.
	Get(ctx context.Context, collection, id string) (*model.Record, error)

	// Create inserts a new record; the store assigns the id and timestamps.
	Create(ctx context.Context, collection string, fields map[string]any) (*model.Record, error)

	// Update merges fields into an existing record and bumps updatedAt.
	Update(ctx context.Context, collection, id string, fields map[string]any) (*model.Record, error)

	// Delete removes a record by id. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, collection, id string) error
}
