package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolio/internal/model"
	"portfolio/internal/repository/mocks"
	"portfolio/internal/seed"
)

func TestPortfolioLoadMergesSeedsWithStore(t *testing.T) {
	store := new(mocks.MockContentStore)
	svc := NewPortfolioService(store)

	empty := []model.Record{}
	store.On("List", mock.Anything, model.CollectionExperiences, mock.Anything).Return([]model.Record{
		{ID: "x1", Fields: map[string]any{
			"period": "2026", "position": "Engineer", "company": "Acme", "description": "Work",
		}},
		// A stale store copy of a seed entry must not double-count.
		{ID: "x2", Fields: map[string]any{
			"period": "2023", "position": "Copy", "company": "Copy", "description": "Copy", "isDefault": true,
		}},
	}, nil)
	store.On("List", mock.Anything, model.CollectionEducation, mock.Anything).Return(empty, nil)
	store.On("List", mock.Anything, model.CollectionSkills, mock.Anything).Return(empty, nil)
	store.On("List", mock.Anything, model.CollectionProjects, mock.Anything).Return([]model.Record{
		{ID: "p1", Fields: map[string]any{
			"title": "Legacy", "description": "Old record", "imageUrl": "/img/old.png",
		}},
	}, nil)
	store.On("List", mock.Anything, model.CollectionSocialLinks, mock.Anything).Return(empty, nil)
	store.On("List", mock.Anything, model.CollectionProfilePictures, mock.Anything).Return(empty, nil)

	data, err := svc.Load(context.Background())
	assert.NoError(t, err)

	assert.Len(t, data.Experiences, len(seed.Experiences())+1)
	assert.Equal(t, "Engineer", data.Experiences[len(data.Experiences)-1].Position)

	assert.Equal(t, seed.Education(), data.Education)
	assert.Equal(t, seed.Skills(), data.Skills)
	assert.Equal(t, seed.SocialLinks(), data.SocialLinks)
	assert.Empty(t, data.ProfilePictures)

	// Legacy single-image projects read back with the URL lifted.
	legacy := data.Projects[len(data.Projects)-1]
	assert.Equal(t, "Legacy", legacy.Title)
	assert.Equal(t, []string{"/img/old.png"}, legacy.Images)
}

func TestPortfolioLoadFailsWhenAnyCollectionFails(t *testing.T) {
	store := new(mocks.MockContentStore)
	svc := NewPortfolioService(store)

	store.On("List", mock.Anything, model.CollectionSkills, mock.Anything).
		Return(nil, assert.AnError)
	store.On("List", mock.Anything, mock.Anything, mock.Anything).
		Return([]model.Record{}, nil)

	_, err := svc.Load(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestPortfolioLoadEmptyStoreServesSeeds(t *testing.T) {
	store := new(mocks.MockContentStore)
	svc := NewPortfolioService(store)

	store.On("List", mock.Anything, mock.Anything, mock.Anything).
		Return([]model.Record{}, nil)

	data, err := svc.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, seed.Experiences(), data.Experiences)
	assert.Equal(t, seed.Projects(), data.Projects)
	assert.NotEmpty(t, data.Skills)
}
