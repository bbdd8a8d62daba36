package view

// Carousel models the public project gallery state: one active project and
// one visible image within it. Image navigation wraps modulo the image
// count; with a single image (or none) navigation is disabled and the
// index never moves.
type Carousel struct {
	imageCounts []int
	active      int
	image       int
}

// NewCarousel builds a carousel over the per-project image counts.
func NewCarousel(imageCounts []int) *Carousel {
	return &Carousel{imageCounts: imageCounts}
}

// ActiveIndex returns the selected project index.
func (c *Carousel) ActiveIndex() int { return c.active }

// ImageIndex returns the visible image index within the active project.
func (c *Carousel) ImageIndex() int { return c.image }

// SetActive selects a project and resets the image index to zero.
// Out-of-range indices are ignored.
func (c *Carousel) SetActive(i int) {
	if i < 0 || i >= len(c.imageCounts) {
		return
	}
	c.active = i
	c.image = 0
}

func (c *Carousel) activeCount() int {
	if c.active >= len(c.imageCounts) {
		return 0
	}
	return c.imageCounts[c.active]
}

// CanNavigate reports whether image navigation is enabled for the active
// project. A single image never wraps.
func (c *Carousel) CanNavigate() bool {
	return c.activeCount() > 1
}

// NextImage advances to the next image, wrapping to the first.
func (c *Carousel) NextImage() {
	if !c.CanNavigate() {
		return
	}
	c.image = (c.image + 1) % c.activeCount()
}

// PrevImage steps back to the previous image, wrapping to the last.
func (c *Carousel) PrevImage() {
	if !c.CanNavigate() {
		return
	}
	n := c.activeCount()
	c.image = (c.image - 1 + n) % n
}
