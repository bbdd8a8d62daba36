package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/repository/mocks"
)

func newTestContentService(store repository.ContentStore) ContentService {
	return NewContentService(store, DefaultCollections()...)
}

func TestContentServiceUnknownCollection(t *testing.T) {
	store := new(mocks.MockContentStore)
	svc := newTestContentService(store)

	_, err := svc.List(context.Background(), "widgets")
	assert.ErrorIs(t, err, ErrUnknownCollection)

	_, err = svc.Create(context.Background(), "widgets", map[string]any{"name": "x"})
	assert.ErrorIs(t, err, ErrUnknownCollection)

	store.AssertNotCalled(t, "List")
	store.AssertNotCalled(t, "Create")
}

func TestContentServiceListUsesCollectionOrder(t *testing.T) {
	store := new(mocks.MockContentStore)
	svc := newTestContentService(store)

	store.On("List", mock.Anything, model.CollectionSkills, repository.ListQuery{
		OrderField: "name",
		Ascending:  true,
	}).Return([]model.Record{}, nil)

	_, err := svc.List(context.Background(), model.CollectionSkills)
	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestContentServiceCreateValidation(t *testing.T) {
	tests := []struct {
		name       string
		collection string
		fields     map[string]any
		wantMsg    string
	}{
		{
			name:       "missing required field",
			collection: model.CollectionExperiences,
			fields:     map[string]any{"period": "2024", "position": "Dev", "company": "Acme"},
			wantMsg:    "description is required",
		},
		{
			name:       "blank required field",
			collection: model.CollectionCertificates,
			fields:     map[string]any{"title": "  ", "issuer": "Org", "date": "2024"},
			wantMsg:    "title is required",
		},
		{
			name:       "invalid enum value",
			collection: model.CollectionSkills,
			fields:     map[string]any{"name": "Go", "icon": "bx", "category": "devops"},
			wantMsg:    "category must be one of frontend, backend, tools",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mocks.MockContentStore)
			svc := newTestContentService(store)

			_, err := svc.Create(context.Background(), tt.collection, tt.fields)
			assert.True(t, IsValidation(err))
			assert.EqualError(t, err, tt.wantMsg)
			store.AssertNotCalled(t, "Create")
		})
	}
}

func TestContentServiceCreateStripsReservedFields(t *testing.T) {
	store := new(mocks.MockContentStore)
	svc := newTestContentService(store)

	want := map[string]any{"name": "Go", "icon": "bx bxl-go", "category": "backend"}
	store.On("Create", mock.Anything, model.CollectionSkills, want).
		Return(&model.Record{ID: "abc", Fields: want}, nil)

	rec, err := svc.Create(context.Background(), model.CollectionSkills, map[string]any{
		"id":        "spoofed",
		"createdAt": "2020-01-01",
		"updatedAt": "2020-01-01",
		"timestamp": "2020-01-01",
		"name":      "Go",
		"icon":      "bx bxl-go",
		"category":  "backend",
	})
	assert.NoError(t, err)
	assert.Equal(t, "abc", rec.ID)
	store.AssertExpectations(t)
}

func TestContentServiceCreateNormalizesProject(t *testing.T) {
	store := new(mocks.MockContentStore)
	svc := newTestContentService(store)

	want := map[string]any{
		"title":        "Site",
		"description":  "A site",
		"technologies": []string{"React", "Go"},
		"imageUrl":     "/img/a.png",
		"images":       []any{"/img/a.png"},
	}
	store.On("Create", mock.Anything, model.CollectionProjects, want).
		Return(&model.Record{ID: "p1", Fields: want}, nil)

	_, err := svc.Create(context.Background(), model.CollectionProjects, map[string]any{
		"title":        "Site",
		"description":  "A site",
		"technologies": "React, Go, ",
		"imageUrl":     "/img/a.png",
	})
	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestContentServiceGetNotFound(t *testing.T) {
	store := new(mocks.MockContentStore)
	svc := newTestContentService(store)

	store.On("Get", mock.Anything, model.CollectionExperiences, "missing").
		Return(nil, sql.ErrNoRows)

	_, err := svc.Get(context.Background(), model.CollectionExperiences, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContentServiceUpdateMergedValidation(t *testing.T) {
	store := new(mocks.MockContentStore)
	svc := newTestContentService(store)

	existing := &model.Record{
		ID: "e1",
		Fields: map[string]any{
			"period":      "2024",
			"position":    "Dev",
			"company":     "Acme",
			"description": "Things",
		},
	}
	store.On("Get", mock.Anything, model.CollectionExperiences, "e1").Return(existing, nil)

	// A partial update leaving required fields untouched passes, since
	// validation runs against the merged document.
	patch := map[string]any{"company": "Initech"}
	store.On("Update", mock.Anything, model.CollectionExperiences, "e1", patch).
		Return(existing, nil)

	_, err := svc.Update(context.Background(), model.CollectionExperiences, "e1", patch)
	assert.NoError(t, err)

	// Blanking a required field fails before the store update.
	_, err = svc.Update(context.Background(), model.CollectionExperiences, "e1", map[string]any{"position": " "})
	assert.True(t, IsValidation(err))
	store.AssertNumberOfCalls(t, "Update", 1)
}

func TestContentServiceDefaultProtection(t *testing.T) {
	store := new(mocks.MockContentStore)
	svc := newTestContentService(store)

	seeded := &model.Record{
		ID: "edu1",
		Fields: map[string]any{
			"year":        "2021",
			"degree":      "BSc",
			"institution": "UNIZIK",
			"isDefault":   true,
		},
	}
	store.On("Get", mock.Anything, model.CollectionEducation, "edu1").Return(seeded, nil)

	_, err := svc.Update(context.Background(), model.CollectionEducation, "edu1", map[string]any{"degree": "MSc"})
	assert.ErrorIs(t, err, ErrDefaultProtected)

	err = svc.Delete(context.Background(), model.CollectionEducation, "edu1")
	assert.ErrorIs(t, err, ErrDefaultProtected)

	store.AssertNotCalled(t, "Update")
	store.AssertNotCalled(t, "Delete")
}

func TestContentServiceDeleteUnprotectedCollection(t *testing.T) {
	store := new(mocks.MockContentStore)
	svc := newTestContentService(store)

	// Experiences carry no default protection even when flagged.
	seeded := &model.Record{ID: "x1", Fields: map[string]any{"isDefault": true}}
	store.On("Get", mock.Anything, model.CollectionExperiences, "x1").Return(seeded, nil)
	store.On("Delete", mock.Anything, model.CollectionExperiences, "x1").Return(nil)

	err := svc.Delete(context.Background(), model.CollectionExperiences, "x1")
	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestSplitTechnologies(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain list", "React, Node.js, MongoDB", []string{"React", "Node.js", "MongoDB"}},
		{"extra whitespace and empties", " Go ,, Rust , ", []string{"Go", "Rust"}},
		{"single entry", "Go", []string{"Go"}},
		{"empty input", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTechnologies(tt.input))
		})
	}
}

func TestContentServiceCollections(t *testing.T) {
	svc := newTestContentService(new(mocks.MockContentStore))
	names := svc.Collections()
	assert.Contains(t, names, model.CollectionExperiences)
	assert.Contains(t, names, model.CollectionSocialLinks)
	assert.NotContains(t, names, model.CollectionBlogs)
	assert.NotContains(t, names, model.CollectionContactMessages)
}
