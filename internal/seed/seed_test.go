package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio/internal/model"
)

func TestMerge(t *testing.T) {
	defaults := Skills()
	stored := []model.Skill{
		{ID: "s1", Name: "Go", Icon: "bx bxl-go"},
		{ID: "s2", Name: "JavaScript", Icon: "bx bxl-javascript", IsDefault: true}, // legacy copy of a seed row
		{ID: "s3", Name: "Docker", Icon: "bx bxl-docker"},
	}

	merged := Merge(defaults, stored, func(s model.Skill) bool { return s.IsDefault })

	// Every seed entry exactly once, plus every non-default store entry.
	assert.Len(t, merged, len(defaults)+2)
	for i, d := range defaults {
		assert.Equal(t, d.Name, merged[i].Name)
	}

	names := make(map[string]int)
	for _, s := range merged {
		names[s.Name]++
	}
	assert.Equal(t, 1, names["JavaScript"], "store record flagged isDefault must not double-count")
	assert.Equal(t, 1, names["Go"])
	assert.Equal(t, 1, names["Docker"])
}

func TestMergeEmptyStore(t *testing.T) {
	defaults := SocialLinks()

	merged := Merge(defaults, nil, func(l model.SocialLink) bool { return l.IsDefault })

	assert.Equal(t, defaults, merged)
}

func TestSeedEntriesFlaggedDefault(t *testing.T) {
	for _, e := range Experiences() {
		assert.True(t, e.IsDefault)
	}
	for _, e := range Education() {
		assert.True(t, e.IsDefault)
	}
	for _, l := range SocialLinks() {
		assert.True(t, l.IsDefault)
	}
	for _, p := range Projects() {
		assert.True(t, p.IsDefault)
	}
}
