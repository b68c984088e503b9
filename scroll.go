package tribute

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	scrollFrequency = 6.0
	scrollDamping   = 1.0
	// scrubFrequency lags scrubbed values roughly one second behind the scroll.
	scrubFrequency = 4.0
	settleEpsilon  = 0.5
)

// Scroller holds the page's vertical scroll offset. Input moves the target;
// the visible offset follows it through a critically damped spring.
type Scroller struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	limit  float64
}

// NewScroller creates a scroller stepped tps times per second.
func NewScroller(tps int) *Scroller {
	return &Scroller{spring: harmonica.NewSpring(harmonica.FPS(tps), scrollFrequency, scrollDamping)}
}

// SetLimit sets the largest allowed offset (content height minus viewport
// height). Negative limits clamp to zero.
func (s *Scroller) SetLimit(limit float64) {
	s.limit = math.Max(0, limit)
	s.target = s.clamp(s.target)
}

// Limit returns the largest allowed offset.
func (s *Scroller) Limit() float64 {
	return s.limit
}

// ScrollBy moves the target by dy pixels.
func (s *Scroller) ScrollBy(dy float64) {
	s.target = s.clamp(s.target + dy)
}

// ScrollTo sets the target offset.
func (s *Scroller) ScrollTo(y float64) {
	s.target = s.clamp(y)
}

// JumpTo moves both target and offset without animation.
func (s *Scroller) JumpTo(y float64) {
	s.target = s.clamp(y)
	s.pos = s.target
	s.vel = 0
}

// Target returns where the scroller is heading.
func (s *Scroller) Target() float64 {
	return s.target
}

// Offset returns the current visible offset.
func (s *Scroller) Offset() float64 {
	return s.pos
}

// Settled reports whether the offset has reached its target.
func (s *Scroller) Settled() bool {
	return math.Abs(s.pos-s.target) < settleEpsilon && math.Abs(s.vel) < settleEpsilon
}

// Update advances the spring one tick.
func (s *Scroller) Update() {
	if s.Settled() {
		s.pos = s.target
		s.vel = 0
		return
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
}

func (s *Scroller) clamp(y float64) float64 {
	return math.Min(math.Max(y, 0), s.limit)
}

// ScrollTrigger watches an element's top edge against a line across the
// viewport. Start is that line as a fraction of the viewport height, so
// 0.8 fires when the element's top is 80% of the way down the screen.
type ScrollTrigger struct {
	Element *Element
	Start   float64
	// OnEnter runs when the element's top scrolls up past the start line.
	OnEnter func()
	// OnLeaveBack runs when it scrolls back down below the line.
	OnLeaveBack func()

	active bool
}

// Active reports whether the element is past the start line.
func (t *ScrollTrigger) Active() bool {
	return t.active
}

// check compares the element against the current scroll position.
func (t *ScrollTrigger) check(scroll, viewportH float64) {
	if t.Element == nil || t.Element.IsDisposed() {
		return
	}
	top := t.Element.Bounds().Y - scroll
	past := top <= t.Start*viewportH
	switch {
	case past && !t.active:
		t.active = true
		if t.OnEnter != nil {
			t.OnEnter()
		}
	case !past && t.active:
		t.active = false
		if t.OnLeaveBack != nil {
			t.OnLeaveBack()
		}
	}
}

// Parallax scrubs an element's vertical offset with scroll progress through
// a trigger element, from the trigger's top reaching the viewport bottom to
// its bottom leaving the viewport top. The offset trails the scroll through
// a spring.
type Parallax struct {
	Element  *Element
	Trigger  *Element
	Distance float64

	spring harmonica.Spring
	pos    float64
	vel    float64
}

// NewParallax creates a parallax effect stepped tps times per second.
func NewParallax(e, trigger *Element, distance float64, tps int) *Parallax {
	return &Parallax{
		Element:  e,
		Trigger:  trigger,
		Distance: distance,
		spring:   harmonica.NewSpring(harmonica.FPS(tps), scrubFrequency, scrollDamping),
	}
}

// Progress returns how far the trigger has travelled through the viewport,
// in [0, 1].
func (p *Parallax) Progress(scroll, viewportH float64) float64 {
	b := p.Trigger.Bounds()
	span := viewportH + b.Height
	if span <= 0 {
		return 0
	}
	return clamp01((scroll + viewportH - b.Y) / span)
}

func (p *Parallax) update(scroll, viewportH float64) {
	if p.Element == nil || p.Trigger == nil || p.Element.IsDisposed() {
		return
	}
	goal := p.Distance * p.Progress(scroll, viewportH)
	p.pos, p.vel = p.spring.Update(p.pos, p.vel, goal)
	p.Element.OffsetY = p.pos
}
