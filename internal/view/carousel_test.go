package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarouselWrapsModuloImageCount(t *testing.T) {
	c := NewCarousel([]int{4, 2})

	assert.Equal(t, 0, c.ActiveIndex())
	assert.Equal(t, 0, c.ImageIndex())
	assert.True(t, c.CanNavigate())

	c.NextImage()
	c.NextImage()
	c.NextImage()
	assert.Equal(t, 3, c.ImageIndex())

	c.NextImage()
	assert.Equal(t, 0, c.ImageIndex(), "next wraps to first")

	c.PrevImage()
	assert.Equal(t, 3, c.ImageIndex(), "prev wraps to last")
}

func TestCarouselSetActiveResetsImageIndex(t *testing.T) {
	c := NewCarousel([]int{4, 3})

	c.NextImage()
	c.NextImage()
	assert.Equal(t, 2, c.ImageIndex())

	c.SetActive(1)
	assert.Equal(t, 1, c.ActiveIndex())
	assert.Equal(t, 0, c.ImageIndex())
}

func TestCarouselSingleImageDisablesNavigation(t *testing.T) {
	c := NewCarousel([]int{1})

	assert.False(t, c.CanNavigate())
	c.NextImage()
	assert.Equal(t, 0, c.ImageIndex())
	c.PrevImage()
	assert.Equal(t, 0, c.ImageIndex())
}

func TestCarouselIgnoresOutOfRangeActive(t *testing.T) {
	c := NewCarousel([]int{2, 2})

	c.SetActive(5)
	assert.Equal(t, 0, c.ActiveIndex())
	c.SetActive(-1)
	assert.Equal(t, 0, c.ActiveIndex())
}

func TestTabState(t *testing.T) {
	s := NewTabState()
	assert.Equal(t, TabExperience, s.Active())

	assert.True(t, s.Select(TabSkills))
	assert.Equal(t, TabSkills, s.Active())

	assert.False(t, s.Select(ResumeTab("projects")))
	assert.Equal(t, TabSkills, s.Active(), "unknown tab keeps current state")
}

func TestResumeTabValid(t *testing.T) {
	for _, tab := range []ResumeTab{TabExperience, TabEducation, TabSkills, TabAbout} {
		assert.True(t, tab.Valid())
	}
	assert.False(t, ResumeTab("").Valid())
	assert.False(t, ResumeTab("contact").Valid())
}
