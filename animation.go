package tribute

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animator is anything the page advances once per tick until it finishes.
type Animator interface {
	Update(dt float32)
	Finished() bool
}

// Prop names an animatable Element field.
type Prop uint8

const (
	PropOffsetX Prop = iota
	PropOffsetY
	PropScale // ScaleX and ScaleY together
	PropAlpha
	PropFlipY
)

// fields returns the addresses a Prop writes to.
func (p Prop) fields(e *Element) []*float64 {
	switch p {
	case PropOffsetX:
		return []*float64{&e.OffsetX}
	case PropOffsetY:
		return []*float64{&e.OffsetY}
	case PropScale:
		return []*float64{&e.ScaleX, &e.ScaleY}
	case PropAlpha:
		return []*float64{&e.Alpha}
	case PropFlipY:
		return []*float64{&e.FlipY}
	}
	return nil
}

// value reads the current value of a Prop.
func (p Prop) value(e *Element) float64 {
	return *p.fields(e)[0]
}

const maxGroupProps = 4

// TweenGroup animates up to 4 properties of one Element over the same
// duration and easing. Call Update(dt) each frame or Seek to jump. If the
// target element is disposed, the group stops immediately.
type TweenGroup struct {
	tweens   [maxGroupProps]*gween.Tween
	props    [maxGroupProps]Prop
	count    int
	target   *Element
	duration float32
	fn       ease.TweenFunc
	elapsed  float32
	Done     bool
}

// NewTweenGroup creates an empty group for e. Add properties with FromTo or To.
func NewTweenGroup(e *Element, duration float32, fn ease.TweenFunc) *TweenGroup {
	if fn == nil {
		fn = ease.Linear
	}
	return &TweenGroup{target: e, duration: duration, fn: fn}
}

// FromTo animates p from one value to another. The from value is applied
// immediately so the element never flashes its final state.
func (g *TweenGroup) FromTo(p Prop, from, to float64) *TweenGroup {
	if g.count == maxGroupProps {
		panic("tribute: tween group holds at most 4 properties")
	}
	g.tweens[g.count] = gween.New(float32(from), float32(to), g.duration, g.fn)
	g.props[g.count] = p
	g.count++
	g.write(p, from)
	return g
}

// To animates p from its current value.
func (g *TweenGroup) To(p Prop, to float64) *TweenGroup {
	return g.FromTo(p, p.value(g.target), to)
}

// Duration returns the group's length in seconds.
func (g *TweenGroup) Duration() float32 {
	return g.duration
}

// Update advances all tweens by dt seconds and writes values to the target.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	g.Seek(g.elapsed + dt)
}

// Seek jumps to time t seconds (clamped to the duration) and writes the
// values. Done is set at the end of the duration.
func (g *TweenGroup) Seek(t float32) {
	if g.target == nil || g.target.IsDisposed() {
		g.Done = true
		return
	}
	if t < 0 {
		t = 0
	}
	if t > g.duration {
		t = g.duration
	}
	g.elapsed = t
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Set(t)
		g.write(g.props[i], float64(val))
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Finished implements Animator.
func (g *TweenGroup) Finished() bool {
	return g.Done
}

func (g *TweenGroup) write(p Prop, v float64) {
	if g.target == nil {
		return
	}
	for _, f := range p.fields(g.target) {
		*f = v
	}
}

// --- Timeline ---

type timelineTrack struct {
	group *TweenGroup
	start float32
}

// Timeline sequences tween groups on one clock. Tracks may overlap: Then
// places a group relative to the current end, At places it at an absolute
// time. A timeline plays forward or in reverse and stops at either end.
type Timeline struct {
	tracks []timelineTrack
	length float32
	clock  float32
	dir    int8
	// OnComplete runs when forward playback reaches the end.
	OnComplete func()
	// OnReverseComplete runs when reverse playback reaches the start.
	OnReverseComplete func()
}

// NewTimeline creates an empty, paused timeline.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Then appends g so it starts offset seconds after the current end of the
// timeline. A negative offset overlaps the previous tracks.
func (tl *Timeline) Then(g *TweenGroup, offset float32) *Timeline {
	return tl.At(g, tl.length+offset)
}

// At places g at an absolute start time in seconds.
func (tl *Timeline) At(g *TweenGroup, start float32) *Timeline {
	if start < 0 {
		start = 0
	}
	tl.tracks = append(tl.tracks, timelineTrack{group: g, start: start})
	if end := start + g.Duration(); end > tl.length {
		tl.length = end
	}
	return tl
}

// Length returns the total duration in seconds.
func (tl *Timeline) Length() float32 {
	return tl.length
}

// Clock returns the playhead position in seconds.
func (tl *Timeline) Clock() float32 {
	return tl.clock
}

// Play starts or resumes forward playback.
func (tl *Timeline) Play() {
	tl.dir = 1
}

// Reverse starts or resumes backward playback toward the start.
func (tl *Timeline) Reverse() {
	tl.dir = -1
}

// Playing reports whether the timeline is moving.
func (tl *Timeline) Playing() bool {
	return tl.dir != 0
}

// Reversed reports whether the last direction was backwards.
func (tl *Timeline) Reversed() bool {
	return tl.dir < 0
}

// Update moves the playhead by dt seconds in the current direction.
func (tl *Timeline) Update(dt float32) {
	if tl.dir == 0 {
		return
	}
	tl.Seek(tl.clock + dt*float32(tl.dir))
	switch {
	case tl.dir > 0 && tl.clock >= tl.length:
		tl.dir = 0
		if tl.OnComplete != nil {
			tl.OnComplete()
		}
	case tl.dir < 0 && tl.clock <= 0:
		tl.dir = 0
		if tl.OnReverseComplete != nil {
			tl.OnReverseComplete()
		}
	}
}

// Seek moves the playhead without changing direction.
func (tl *Timeline) Seek(t float32) {
	if t < 0 {
		t = 0
	}
	if t > tl.length {
		t = tl.length
	}
	tl.clock = t
	for _, tr := range tl.tracks {
		tr.group.Seek(t - tr.start)
	}
}

// Finished implements Animator. A paused timeline counts as finished.
func (tl *Timeline) Finished() bool {
	return tl.dir == 0
}

// --- Pulse ---

// Pulse swings one property back and forth forever (a yoyo tween) until
// stopped. The first half-cycle starts after Delay seconds.
type Pulse struct {
	target  *Element
	prop    Prop
	tween   *gween.Tween
	half    float32
	elapsed float32
	Delay   float32
	stopped bool
}

// NewPulse creates a pulse from one value to another and back, each half
// taking half seconds.
func NewPulse(e *Element, p Prop, from, to float64, half float32, fn ease.TweenFunc) *Pulse {
	if fn == nil {
		fn = ease.InOutSine
	}
	return &Pulse{
		target: e,
		prop:   p,
		tween:  gween.New(float32(from), float32(to), half, fn),
		half:   half,
	}
}

// Update implements Animator.
func (p *Pulse) Update(dt float32) {
	if p.stopped {
		return
	}
	if p.target.IsDisposed() {
		p.stopped = true
		return
	}
	p.elapsed += dt
	t := p.elapsed - p.Delay
	if t < 0 || p.half <= 0 {
		return
	}
	phase := float32(math.Mod(float64(t), float64(2*p.half)))
	if phase > p.half {
		phase = 2*p.half - phase
	}
	v, _ := p.tween.Set(phase)
	for _, f := range p.prop.fields(p.target) {
		*f = float64(v)
	}
}

// Stop halts the pulse where it is.
func (p *Pulse) Stop() {
	p.stopped = true
}

// Finished implements Animator.
func (p *Pulse) Finished() bool {
	return p.stopped
}

// BackOut returns an ease-out that overshoots the end value by an amount
// controlled by s before settling (1.70158 matches ease.OutBack).
func BackOut(s float32) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		t = t/d - 1
		return c*(t*t*((s+1)*t+s)+1) + b
	}
}
