package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"

	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// ContentPostgres is a PostgreSQL implementation of repository.ContentStore.
// Every collection shares one records table; fields live in a JSONB column
// and the write-path timestamps are stamped by the database.
type ContentPostgres struct {
	db *sql.DB
}

// NewContentPostgres creates a new ContentPostgres store.
func NewContentPostgres(db *sql.DB) *ContentPostgres {
	return &ContentPostgres{db: db}
}

var _ repository.ContentStore = (*ContentPostgres)(nil)

// Order fields are interpolated into ORDER BY, so only plain identifiers
// may pass; anything else falls back to created_at.
var orderFieldPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

func orderExpr(q repository.ListQuery) string {
	dir := "DESC"
	if q.Ascending {
		dir = "ASC"
	}

	switch q.OrderField {
	case "", "createdAt", "timestamp":
		return "created_at " + dir + ", id " + dir
	case "updatedAt":
		return "updated_at " + dir + ", id " + dir
	}
	if !orderFieldPattern.MatchString(q.OrderField) {
		return "created_at " + dir + ", id " + dir
	}
	// Compare the jsonb value, not its text form: numeric fields like the
	// social-link order sort numerically (2 before 10), strings stay
	// lexical.
	return fmt.Sprintf("data->'%s' %s, id %s", q.OrderField, dir, dir)
}

func scanRecord(row interface{ Scan(...any) error }) (*model.Record, error) {
	var (
		rec  model.Record
		data []byte
	)
	if err := row.Scan(&rec.ID, &data, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &rec.Fields); err != nil {
		return nil, fmt.Errorf("unmarshal record data: %w", err)
	}
	return &rec, nil
}

// List returns all records of a collection, optionally filtered by field
// equality through a JSONB containment match.
func (s *ContentPostgres) List(ctx context.Context, collection string, q repository.ListQuery) ([]model.Record, error) {
	query := `SELECT id, data, created_at, updated_at FROM records WHERE collection = $1`
	args := []any{collection}

	if len(q.Filter) > 0 {
		filter, err := json.Marshal(q.Filter)
		if err != nil {
			return nil, fmt.Errorf("marshal filter: %w", err)
		}
		query += ` AND data @> $2::jsonb`
		args = append(args, filter)
	}
	query += ` ORDER BY ` + orderExpr(q)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]model.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Get fetches a single record by collection and id.
func (s *ContentPostgres) Get(ctx context.Context, collection, id string) (*model.Record, error) {
	const q = `
		SELECT id, data, created_at, updated_at
		FROM records
		WHERE collection = $1 AND id = $2
	`
	return scanRecord(s.db.QueryRowContext(ctx, q, collection, id))
}

// Create inserts a new record. The database assigns the id and both
// timestamps; caller-supplied timestamp fields never reach this layer.
func (s *ContentPostgres) Create(ctx context.Context, collection string, fields map[string]any) (*model.Record, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("marshal record data: %w", err)
	}

	const q = `
		INSERT INTO records (collection, data)
		VALUES ($1, $2::jsonb)
		RETURNING id, data, created_at, updated_at
	`
	return scanRecord(s.db.QueryRowContext(ctx, q, collection, data))
}

// Update merges fields into the stored document and bumps updated_at.
// Missing rows surface as sql.ErrNoRows.
func (s *ContentPostgres) Update(ctx context.Context, collection, id string, fields map[string]any) (*model.Record, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("marshal record data: %w", err)
	}

	const q = `
		UPDATE records
		SET data = data || $3::jsonb, updated_at = now()
		WHERE collection = $1 AND id = $2
		RETURNING id, data, created_at, updated_at
	`
	return scanRecord(s.db.QueryRowContext(ctx, q, collection, id, data))
}

// Delete removes a record by id. It does not return an error if the row does not exist.
func (s *ContentPostgres) Delete(ctx context.Context, collection, id string) error {
	const q = `DELETE FROM records WHERE collection = $1 AND id = $2`
	res, err := s.db.ExecContext(ctx, q, collection, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
