package tribute

const carouselIntervalMs = 5000

// Carousel shows one slide at a time, advancing on a timer. Each slide has a
// matching dot; clicking a dot jumps to its slide.
type Carousel struct {
	slides  []*Element
	dots    []*Element
	current int
	auto    TimerHandle

	// DotActive and DotIdle color the dot of the shown and hidden slides.
	DotActive Color
	DotIdle   Color
}

// NewCarousel shows the first slide and wires dot clicks. Dots beyond the
// slide count are ignored.
func NewCarousel(slides, dots []*Element) *Carousel {
	c := &Carousel{
		slides:    slides,
		dots:      dots,
		DotActive: Color{0.83, 0.69, 0.22, 1},
		DotIdle:   Color{1, 1, 1, 0.35},
	}
	for i, d := range dots {
		if i >= len(slides) {
			break
		}
		d.OnClick = func(ClickContext) { c.Show(i) }
	}
	if len(slides) > 0 {
		c.Show(0)
	}
	return c
}

// Start auto-advances every five seconds.
func (c *Carousel) Start(timers *Timers) {
	if timers == nil || len(c.slides) == 0 {
		return
	}
	c.auto.Cancel()
	c.auto = timers.Every(carouselIntervalMs, c.Next)
}

// Stop halts auto-advance.
func (c *Carousel) Stop() {
	c.auto.Cancel()
	c.auto = TimerHandle{}
}

// Current returns the index of the shown slide.
func (c *Carousel) Current() int {
	return c.current
}

// Next shows the following slide, wrapping to the first.
func (c *Carousel) Next() {
	if len(c.slides) == 0 {
		return
	}
	c.Show((c.current + 1) % len(c.slides))
}

// Show makes slide index the only visible one. Out-of-range indexes are ignored.
func (c *Carousel) Show(index int) {
	if index < 0 || index >= len(c.slides) {
		return
	}
	c.current = index
	for i, s := range c.slides {
		s.Visible = i == index
	}
	for i, d := range c.dots {
		if i == index {
			d.Background = c.DotActive
		} else {
			d.Background = c.DotIdle
		}
	}
}
