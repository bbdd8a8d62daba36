package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// Record is a single entry in a named content-store collection: a generated
// id, a schemaless field map, and write-path timestamps. It is the unit the
// generic CRUD pipeline works with; typed views are decoded from it on
// demand.
type Record struct {
	ID        string
	Fields    map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Field returns a field value, or nil when absent.
func (r Record) Field(name string) any {
	if r.Fields == nil {
		return nil
	}
	return r.Fields[name]
}

// BoolField returns a field as a bool; absent or non-bool values are false.
func (r Record) BoolField(name string) bool {
	b, _ := r.Field(name).(bool)
	return b
}

// StringField returns a field as a string; absent or non-string values are "".
func (r Record) StringField(name string) string {
	s, _ := r.Field(name).(string)
	return s
}

// IsDefault reports whether the record carries the seed-data marker.
// Such records are never deletable through protected collections and are
// filtered out when merging with compiled-in seed content.
func (r Record) IsDefault() bool {
	return r.BoolField("isDefault")
}

// MarshalJSON flattens the field map with the id and timestamps, matching
// the wire shape consumers expect ({"id": ..., "createdAt": ..., <fields>}).
func (r Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Fields)+3)
	for k, v := range r.Fields {
		out[k] = v
	}
	out["id"] = r.ID
	out["createdAt"] = r.CreatedAt.UTC().Format(time.RFC3339Nano)
	out["updatedAt"] = r.UpdatedAt.UTC().Format(time.RFC3339Nano)
	return json.Marshal(out)
}

// Decode maps a record's fields onto a typed view using its json tags.
// ID, CreatedAt and UpdatedAt land on identically named struct fields when
// present. Numeric JSONB values decode weakly (float64 into int fields).
func Decode(r Record, out any) error {
	src := make(map[string]any, len(r.Fields)+3)
	for k, v := range r.Fields {
		src[k] = v
	}
	src["id"] = r.ID
	src["createdAt"] = r.CreatedAt
	src["updatedAt"] = r.UpdatedAt
	// timestamp is the contact inbox's name for the creation time.
	src["timestamp"] = r.CreatedAt

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("build decoder: %w", err)
	}
	if err := dec.Decode(src); err != nil {
		return fmt.Errorf("decode record %s: %w", r.ID, err)
	}
	return nil
}

// DecodeAll decodes a slice of records into typed views.
func DecodeAll[T any](records []Record) ([]T, error) {
	out := make([]T, 0, len(records))
	for _, r := range records {
		var v T
		if err := Decode(r, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
