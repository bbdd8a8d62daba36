package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/seed"
)

// PortfolioData is the aggregate payload behind the public home page:
// every list already merged with seed defaults.
type PortfolioData struct {
	Experiences     []model.Experience     `json:"experiences"`
	Education       []model.Education      `json:"education"`
	Skills          []model.Skill          `json:"skills"`
	Projects        []model.Project        `json:"projects"`
	SocialLinks     []model.SocialLink     `json:"socialLinks"`
	ProfilePictures []model.ProfilePicture `json:"profilePictures"`
}

// PortfolioService assembles the public aggregate view.
type PortfolioService interface {
	// Load fetches every public collection concurrently and merges each
	// with its seed defaults. Any single collection failure fails the
	// whole load.
	Load(ctx context.Context) (*PortfolioData, error)
}

type portfolioService struct {
	store repository.ContentStore
}

// NewPortfolioService constructs a PortfolioService over the content store.
func NewPortfolioService(store repository.ContentStore) PortfolioService {
	return &portfolioService{store: store}
}

func fetch[T any](ctx context.Context, store repository.ContentStore, collection string, q repository.ListQuery) ([]T, error) {
	records, err := store.List(ctx, collection, q)
	if err != nil {
		return nil, err
	}
	return model.DecodeAll[T](records)
}

// liftLegacyImage keeps projects stored with the old single imageUrl field
// readable: the URL becomes a one-element image list.
func liftLegacyImage(p model.Project) model.Project {
	if len(p.Images) == 0 && p.ImageURL != "" {
		p.Images = []string{p.ImageURL}
	}
	return p
}

func (s *portfolioService) Load(ctx context.Context) (*PortfolioData, error) {
	var (
		experiences []model.Experience
		education   []model.Education
		skills      []model.Skill
		projects    []model.Project
		links       []model.SocialLink
		pictures    []model.ProfilePicture
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		experiences, err = fetch[model.Experience](gctx, s.store, model.CollectionExperiences, repository.ListQuery{})
		return err
	})
	g.Go(func() (err error) {
		education, err = fetch[model.Education](gctx, s.store, model.CollectionEducation, repository.ListQuery{})
		return err
	})
	g.Go(func() (err error) {
		skills, err = fetch[model.Skill](gctx, s.store, model.CollectionSkills, repository.ListQuery{OrderField: "name", Ascending: true})
		return err
	})
	g.Go(func() (err error) {
		projects, err = fetch[model.Project](gctx, s.store, model.CollectionProjects, repository.ListQuery{})
		return err
	})
	g.Go(func() (err error) {
		links, err = fetch[model.SocialLink](gctx, s.store, model.CollectionSocialLinks, repository.ListQuery{OrderField: "order", Ascending: true})
		return err
	})
	g.Go(func() (err error) {
		pictures, err = fetch[model.ProfilePicture](gctx, s.store, model.CollectionProfilePictures, repository.ListQuery{OrderField: "uploadedAt"})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	mergedProjects := seed.Merge(seed.Projects(), projects, func(p model.Project) bool { return p.IsDefault })
	for i := range mergedProjects {
		mergedProjects[i] = liftLegacyImage(mergedProjects[i])
	}

	return &PortfolioData{
		Experiences: seed.Merge(seed.Experiences(), experiences, func(e model.Experience) bool { return e.IsDefault }),
		Education:   seed.Merge(seed.Education(), education, func(e model.Education) bool { return e.IsDefault }),
		Skills:      seed.Merge(seed.Skills(), skills, func(s model.Skill) bool { return s.IsDefault }),
		Projects:    mergedProjects,
		SocialLinks: seed.Merge(seed.SocialLinks(), links, func(l model.SocialLink) bool { return l.IsDefault }),
		// Profile pictures have no seed entries; history is store-owned.
		ProfilePictures: pictures,
	}, nil
}
