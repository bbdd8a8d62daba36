package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"portfolio/internal/model"
	"portfolio/internal/repository"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrUnknownCollection = errors.New("unknown collection")
	ErrDefaultProtected  = errors.New("default records cannot be modified or deleted")
)

// ValidationError is returned before any store call is made; nothing has
// been written when a caller sees one.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a pre-write validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func mapNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Collection configures one instance of the generic manager pipeline:
// ordering, required fields, enumerated fields, seed-record protection,
// and an optional normalize hook applied to submitted fields before
// validation.
type Collection struct {
	Name            string
	OrderField      string
	Ascending       bool
	Required        []string
	Enums           map[string][]string
	ProtectDefaults bool
	Normalize       func(fields map[string]any) error
}

// ContentService is the one CRUD pipeline shared by every admin content
// manager. Per-type behavior comes entirely from the Collection configs it
// is constructed with.
type ContentService interface {
	// Collections lists the registered collection names.
	Collections() []string

	List(ctx context.Context, collection string) ([]model.Record, error)
	Get(ctx context.Context, collection, id string) (*model.Record, error)
	Create(ctx context.Context, collection string, fields map[string]any) (*model.Record, error)
	Update(ctx context.Context, collection, id string, fields map[string]any) (*model.Record, error)
	Delete(ctx context.Context, collection, id string) error
}

type contentService struct {
	store       repository.ContentStore
	collections map[string]Collection
	order       []string
}

// NewContentService constructs the generic manager over the given
// collection configs.
func NewContentService(store repository.ContentStore, collections ...Collection) ContentService {
	svc := &contentService{
		store:       store,
		collections: make(map[string]Collection, len(collections)),
	}
	for _, c := range collections {
		svc.collections[c.Name] = c
		svc.order = append(svc.order, c.Name)
	}
	return svc
}

// Timestamps and identity are owned by the write path; strip whatever the
// caller sent.
var reservedFields = []string{"id", "createdAt", "updatedAt", "timestamp"}

func sanitize(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	for _, f := range reservedFields {
		delete(out, f)
	}
	return out
}

func (s *contentService) lookup(collection string) (Collection, error) {
	c, ok := s.collections[collection]
	if !ok {
		return Collection{}, ErrUnknownCollection
	}
	return c, nil
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []string:
		return len(t) == 0
	case []any:
		return len(t) == 0
	}
	return false
}

func (c Collection) validate(fields map[string]any) error {
	for _, req := range c.Required {
		if isEmptyValue(fields[req]) {
			return validationf("%s is required", req)
		}
	}
	for field, allowed := range c.Enums {
		v, ok := fields[field]
		if !ok || isEmptyValue(v) {
			continue
		}
		str, ok := v.(string)
		if !ok {
			return validationf("%s must be a string", field)
		}
		valid := false
		for _, a := range allowed {
			if str == a {
				valid = true
				break
			}
		}
		if !valid {
			return validationf("%s must be one of %s", field, strings.Join(allowed, ", "))
		}
	}
	return nil
}

func (s *contentService) Collections() []string {
	return append([]string(nil), s.order...)
}

func (s *contentService) List(ctx context.Context, collection string) ([]model.Record, error) {
	c, err := s.lookup(collection)
	if err != nil {
		return nil, err
	}
	return s.store.List(ctx, c.Name, repository.ListQuery{
		OrderField: c.OrderField,
		Ascending:  c.Ascending,
	})
}

func (s *contentService) Get(ctx context.Context, collection, id string) (*model.Record, error) {
	c, err := s.lookup(collection)
	if err != nil {
		return nil, err
	}
	rec, err := s.store.Get(ctx, c.Name, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *contentService) Create(ctx context.Context, collection string, fields map[string]any) (*model.Record, error) {
	c, err := s.lookup(collection)
	if err != nil {
		return nil, err
	}

	clean := sanitize(fields)
	if c.Normalize != nil {
		if err := c.Normalize(clean); err != nil {
			return nil, err
		}
	}
	if err := c.validate(clean); err != nil {
		return nil, err
	}
	return s.store.Create(ctx, c.Name, clean)
}

func (s *contentService) Update(ctx context.Context, collection, id string, fields map[string]any) (*model.Record, error) {
	c, err := s.lookup(collection)
	if err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	if c.ProtectDefaults && existing.IsDefault() {
		return nil, ErrDefaultProtected
	}

	clean := sanitize(fields)
	if c.Normalize != nil {
		if err := c.Normalize(clean); err != nil {
			return nil, err
		}
	}

	// Required fields are checked against the merged document, since the
	// store update is a field merge rather than a replace.
	merged := make(map[string]any, len(existing.Fields)+len(clean))
	for k, v := range existing.Fields {
		merged[k] = v
	}
	for k, v := range clean {
		merged[k] = v
	}
	if err := c.validate(merged); err != nil {
		return nil, err
	}

	rec, err := s.store.Update(ctx, c.Name, id, clean)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// Delete refuses to touch seed-flagged records in protected collections;
// the store delete is never invoked for them.
func (s *contentService) Delete(ctx context.Context, collection, id string) error {
	c, err := s.lookup(collection)
	if err != nil {
		return err
	}

	existing, err := s.Get(ctx, collection, id)
	if err != nil {
		return err
	}
	if c.ProtectDefaults && existing.IsDefault() {
		return ErrDefaultProtected
	}
	return s.store.Delete(ctx, c.Name, id)
}
