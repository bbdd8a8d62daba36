package service

import (
	"strings"

	"portfolio/internal/model"
)

// SplitTechnologies turns the comma-separated form input into an ordered
// list: split on commas, trim whitespace, drop empties. Applying it to an
// already split-and-rejoined value yields the same list.
func SplitTechnologies(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// normalizeProject accepts technologies as either a ready list or the
// form's comma-separated string, and lifts the legacy single imageUrl into
// the images list when no list was provided.
func normalizeProject(fields map[string]any) error {
	if raw, ok := fields["technologies"].(string); ok {
		fields["technologies"] = SplitTechnologies(raw)
	}
	images, hasImages := fields["images"].([]any)
	if legacy, ok := fields["imageUrl"].(string); ok && legacy != "" && (!hasImages || len(images) == 0) {
		fields["images"] = []any{legacy}
	}
	return nil
}

// DefaultCollections returns the registered manager configurations: one
// Collection per admin content screen. Blogs and contact submissions are
// intentionally absent; they have dedicated services with their own
// rules (slug handling, read-status side effects).
func DefaultCollections() []Collection {
	return []Collection{
		{
			Name:     model.CollectionExperiences,
			Required: []string{"period", "position", "company", "description"},
		},
		{
			Name:            model.CollectionEducation,
			Required:        []string{"year", "degree", "institution"},
			ProtectDefaults: true,
		},
		{
			Name:       model.CollectionSkills,
			OrderField: "name",
			Ascending:  true,
			Required:   []string{"name", "icon"},
			Enums: map[string][]string{
				"category": {
					model.SkillCategoryFrontend,
					model.SkillCategoryBackend,
					model.SkillCategoryTools,
				},
			},
		},
		{
			Name:      model.CollectionProjects,
			Required:  []string{"title", "description"},
			Normalize: normalizeProject,
		},
		{
			Name:     model.CollectionCertificates,
			Required: []string{"title", "issuer", "date"},
		},
		{
			Name:            model.CollectionSocialLinks,
			OrderField:      "order",
			Ascending:       true,
			Required:        []string{"name", "url", "icon"},
			ProtectDefaults: true,
		},
		{
			Name:     model.CollectionProfilePictures,
			Required: []string{"url", "fileName"},
		},
	}
}
