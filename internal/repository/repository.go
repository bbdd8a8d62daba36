package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.

// ListQuery controls ordering and equality filtering for collection reads.
// OrderField defaults to createdAt; "timestamp" is an accepted alias for it
// so contact submissions keep their historical ordering field. Filter
// matches record fields by equality (e.g. published=true, status=unread).
type ListQuery struct {
	OrderField string
	Ascending  bool
	Filter     map[string]any
}
