package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// ErrSlugTaken means another post (published or not) already owns the slug.
var ErrSlugTaken = errors.New("slug already in use")

var (
	nonSlugChars  = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`-+`)
)

// Slugify derives a URL slug from a title: lowercase, strip everything but
// alphanumerics, whitespace and hyphens, collapse whitespace to single
// hyphens, collapse hyphen runs, trim edge hyphens. Idempotent.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonSlugChars.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// BlogInput is one submitted blog form. An empty Slug means "derive from
// the title"; a filled one was manually edited by the admin and is kept.
type BlogInput struct {
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Excerpt    string `json:"excerpt"`
	Content    string `json:"content"`
	CoverImage string `json:"coverImage"`
	Published  bool   `json:"published"`
}

// BlogService owns the blog manager's special rules: slug derivation and
// uniqueness, and the published gate on the public surface.
type BlogService interface {
	// ListAll returns every post, newest first (admin view).
	ListAll(ctx context.Context) ([]model.BlogPost, error)
	// ListPublished returns only published posts, newest first.
	ListPublished(ctx context.Context) ([]model.BlogPost, error)
	// GetBySlug resolves a published post; unknown slugs and unpublished
	// posts both yield ErrNotFound.
	GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	// Get returns one post by id regardless of published state (admin view).
	Get(ctx context.Context, id string) (*model.BlogPost, error)
	Create(ctx context.Context, in BlogInput) (*model.BlogPost, error)
	Update(ctx context.Context, id string, in BlogInput) (*model.BlogPost, error)
	Delete(ctx context.Context, id string) error
}

type blogService struct {
	store repository.ContentStore
}

// NewBlogService constructs a BlogService over the content store.
func NewBlogService(store repository.ContentStore) BlogService {
	return &blogService{store: store}
}

func (s *blogService) ListAll(ctx context.Context) ([]model.BlogPost, error) {
	records, err := s.store.List(ctx, model.CollectionBlogs, repository.ListQuery{})
	if err != nil {
		return nil, err
	}
	return model.DecodeAll[model.BlogPost](records)
}

func (s *blogService) ListPublished(ctx context.Context) ([]model.BlogPost, error) {
	records, err := s.store.List(ctx, model.CollectionBlogs, repository.ListQuery{
		Filter: map[string]any{"published": true},
	})
	if err != nil {
		return nil, err
	}
	return model.DecodeAll[model.BlogPost](records)
}

// GetBySlug never renders an unpublished post, even when the slug is
// guessed correctly.
func (s *blogService) GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	if slug == "" {
		return nil, ErrNotFound
	}
	records, err := s.store.List(ctx, model.CollectionBlogs, repository.ListQuery{
		Filter: map[string]any{"slug": slug},
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 || !records[0].BoolField("published") {
		return nil, ErrNotFound
	}
	var post model.BlogPost
	if err := model.Decode(records[0], &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *blogService) Get(ctx context.Context, id string) (*model.BlogPost, error) {
	rec, err := s.store.Get(ctx, model.CollectionBlogs, id)
	if err != nil {
		return nil, mapNoRows(err)
	}
	var post model.BlogPost
	if err := model.Decode(*rec, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *blogService) resolveSlug(ctx context.Context, in BlogInput, excludeID string) (string, error) {
	slug := in.Slug
	if slug == "" {
		slug = Slugify(in.Title)
	}
	if slug == "" {
		return "", validationf("slug cannot be derived from an empty title")
	}
	if slug != Slugify(slug) {
		return "", validationf("slug may only contain lowercase letters, digits and hyphens")
	}

	existing, err := s.store.List(ctx, model.CollectionBlogs, repository.ListQuery{
		Filter: map[string]any{"slug": slug},
	})
	if err != nil {
		return "", err
	}
	for _, rec := range existing {
		if rec.ID != excludeID {
			return "", ErrSlugTaken
		}
	}
	return slug, nil
}

func (in BlogInput) fields(slug string) map[string]any {
	return map[string]any{
		"title":      in.Title,
		"slug":       slug,
		"excerpt":    in.Excerpt,
		"content":    in.Content,
		"coverImage": in.CoverImage,
		"published":  in.Published,
	}
}

func (s *blogService) Create(ctx context.Context, in BlogInput) (*model.BlogPost, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, validationf("title is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, validationf("content is required")
	}

	slug, err := s.resolveSlug(ctx, in, "")
	if err != nil {
		return nil, err
	}

	rec, err := s.store.Create(ctx, model.CollectionBlogs, in.fields(slug))
	if err != nil {
		return nil, err
	}
	var post model.BlogPost
	if err := model.Decode(*rec, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *blogService) Update(ctx context.Context, id string, in BlogInput) (*model.BlogPost, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, validationf("title is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, validationf("content is required")
	}

	slug, err := s.resolveSlug(ctx, in, id)
	if err != nil {
		return nil, err
	}

	rec, err := s.store.Update(ctx, model.CollectionBlogs, id, in.fields(slug))
	if err != nil {
		return nil, mapNoRows(err)
	}
	var post model.BlogPost
	if err := model.Decode(*rec, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *blogService) Delete(ctx context.Context, id string) error {
	if _, err := s.store.Get(ctx, model.CollectionBlogs, id); err != nil {
		return mapNoRows(err)
	}
	return s.store.Delete(ctx, model.CollectionBlogs, id)
}
