package tribute

import "testing"

func newTestCarousel(n int) (*Carousel, []*Element, []*Element) {
	slides := make([]*Element, n)
	dots := make([]*Element, n)
	for i := range slides {
		slides[i] = NewElement("slide", 0, 0, 100, 50)
		dots[i] = NewElement("dot", float64(i)*20, 60, 10, 10)
	}
	return NewCarousel(slides, dots), slides, dots
}

func visibleSlides(slides []*Element) []int {
	var out []int
	for i, s := range slides {
		if s.Visible {
			out = append(out, i)
		}
	}
	return out
}

func TestCarouselShowsFirstSlide(t *testing.T) {
	c, slides, dots := newTestCarousel(3)
	if c.Current() != 0 {
		t.Errorf("Current = %d, want 0", c.Current())
	}
	if v := visibleSlides(slides); len(v) != 1 || v[0] != 0 {
		t.Errorf("visible = %v, want [0]", v)
	}
	if dots[0].Background != c.DotActive || dots[1].Background != c.DotIdle {
		t.Error("dot colors should mark slide 0 active")
	}
}

func TestCarouselAutoAdvanceWraps(t *testing.T) {
	c, slides, _ := newTestCarousel(3)
	timers := NewTimers()
	c.Start(timers)

	want := []int{1, 2, 0, 1}
	for _, w := range want {
		timers.Advance(5000)
		if c.Current() != w {
			t.Fatalf("Current = %d, want %d", c.Current(), w)
		}
		if v := visibleSlides(slides); len(v) != 1 || v[0] != w {
			t.Fatalf("visible = %v, want [%d]", v, w)
		}
	}
}

func TestCarouselDotClick(t *testing.T) {
	c, _, dots := newTestCarousel(3)
	dots[2].OnClick(ClickContext{Element: dots[2]})
	if c.Current() != 2 {
		t.Errorf("Current = %d, want 2", c.Current())
	}
	if dots[2].Background != c.DotActive || dots[0].Background != c.DotIdle {
		t.Error("dot colors should follow the shown slide")
	}
}

func TestCarouselShowOutOfRange(t *testing.T) {
	c, _, _ := newTestCarousel(2)
	c.Show(5)
	c.Show(-1)
	if c.Current() != 0 {
		t.Errorf("Current = %d, want 0", c.Current())
	}
}

func TestCarouselStop(t *testing.T) {
	c, _, _ := newTestCarousel(3)
	timers := NewTimers()
	c.Start(timers)
	c.Stop()
	timers.Advance(20000)
	if c.Current() != 0 {
		t.Errorf("Current = %d, want 0 after stop", c.Current())
	}
}

func TestCarouselEmpty(t *testing.T) {
	c := NewCarousel(nil, nil)
	timers := NewTimers()
	c.Start(timers)
	c.Next()
	if timers.Pending() != 0 {
		t.Error("empty carousel should not schedule")
	}
}
