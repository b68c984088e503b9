package tribute

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Page, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type      EventType
	ElementID uint32
	Name      string
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	// Scroll fields (valid for EventScroll)
	ScrollDelta float64
	ScrollY     float64
}

// DefaultTPS is the tick rate pages are built for.
const DefaultTPS = 60

// Page is the top-level object: a scrolling element tree plus the clocks,
// animations and simulations that drive it. Everything runs on the game
// loop's goroutine.
type Page struct {
	root          *Element
	width, height float64
	contentHeight float64
	tps           int
	store         EntityStore
	debug         bool
	debugFrame    int
	lastUpdate    time.Duration

	// Background fills the screen before anything else is drawn.
	Background Color

	// Clocks and animation
	timers    *Timers
	animators []Animator
	triggers  []*ScrollTrigger
	parallax  []*Parallax
	scroller  *Scroller

	// Simulations
	fireworks  *Fireworks
	canvas     *Canvas
	canvasHost *Element
	confetti   *Confetti
	fps        *fpsWidget

	// Input state
	pointer     pointerState
	hitBuf      []*Element
	touchIDs    []ebiten.TouchID
	touching    bool
	injectQueue []syntheticEvent

	// Automation
	ScreenshotDir   string
	screenshotQueue []string
	testRunner      *TestRunner
	updateFunc      func() error
}

// NewPage creates an empty page with a viewport of the given size, stepped
// tps times per second. A non-positive tps uses DefaultTPS.
func NewPage(width, height float64, tps int) *Page {
	if tps <= 0 {
		tps = DefaultTPS
	}
	root := NewElement("root", 0, 0, 0, 0)
	return &Page{
		root:          root,
		width:         width,
		height:        height,
		tps:           tps,
		Background:    Color{0.04, 0.03, 0.06, 1},
		timers:        NewTimers(),
		scroller:      NewScroller(tps),
		ScreenshotDir: "screenshots",
	}
}

// Root returns the page's root element.
func (p *Page) Root() *Element {
	return p.root
}

// Add appends e to the root.
func (p *Page) Add(e *Element) {
	p.root.AddChild(e)
	if p.debug {
		debugCheckTreeDepth(e)
		debugCheckChildCount(p.root)
	}
}

// Size returns the viewport size.
func (p *Page) Size() (width, height float64) {
	return p.width, p.height
}

// TPS returns the tick rate the page steps at.
func (p *Page) TPS() int {
	return p.tps
}

// Timers returns the page's timer queue.
func (p *Page) Timers() *Timers {
	return p.timers
}

// Scroller returns the page's scroll state.
func (p *Page) Scroller() *Scroller {
	return p.scroller
}

// Resize changes the viewport size and re-clamps the scroll range.
func (p *Page) Resize(width, height float64) {
	p.width, p.height = width, height
	p.scroller.SetLimit(p.contentHeight - height)
}

// SetContentHeight sets the total page height, which bounds scrolling.
func (p *Page) SetContentHeight(h float64) {
	p.contentHeight = h
	p.scroller.SetLimit(h - p.height)
}

// ContentHeight returns the total page height.
func (p *Page) ContentHeight() float64 {
	return p.contentHeight
}

// Animate registers a for per-tick updates until it finishes. Registering an
// animator that is already running does nothing.
func (p *Page) Animate(a Animator) {
	for _, x := range p.animators {
		if x == a {
			return
		}
	}
	p.animators = append(p.animators, a)
}

// Play starts a timeline forward and registers it.
func (p *Page) Play(tl *Timeline) {
	tl.Play()
	p.Animate(tl)
}

// Rewind starts a timeline in reverse and registers it.
func (p *Page) Rewind(tl *Timeline) {
	tl.Reverse()
	p.Animate(tl)
}

// OnScroll registers a trigger on e's top edge crossing start (a fraction of
// the viewport height). Either callback may be nil.
func (p *Page) OnScroll(e *Element, start float64, onEnter, onLeaveBack func()) *ScrollTrigger {
	t := &ScrollTrigger{Element: e, Start: start, OnEnter: onEnter, OnLeaveBack: onLeaveBack}
	p.triggers = append(p.triggers, t)
	return t
}

// AddParallax registers a scroll-scrubbed parallax effect.
func (p *Page) AddParallax(px *Parallax) {
	p.parallax = append(p.parallax, px)
}

// SetFireworks attaches a fireworks simulation drawn on a canvas that fills
// host. The canvas follows host's size every tick.
func (p *Page) SetFireworks(fw *Fireworks, host *Element) *Canvas {
	p.fireworks = fw
	p.canvasHost = host
	p.canvas = NewCanvas(int(host.Width), int(host.Height))
	return p.canvas
}

// Fireworks returns the attached simulation, or nil.
func (p *Page) Fireworks() *Fireworks {
	return p.fireworks
}

// SetConfetti attaches a confetti overlay drawn over the whole screen.
func (p *Page) SetConfetti(c *Confetti) {
	p.confetti = c
}

// Confetti returns the attached confetti, or nil.
func (p *Page) Confetti() *Confetti {
	return p.confetti
}

// SetEntityStore sets the optional ECS bridge.
func (p *Page) SetEntityStore(store EntityStore) {
	p.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, clicks, tree
// depth warnings and once-per-second timing stats are printed to stderr.
func (p *Page) SetDebugMode(enabled bool) {
	p.debug = enabled
}

// SetShowFPS toggles the FPS overlay.
func (p *Page) SetShowFPS(show bool) {
	if !show {
		p.fps = nil
		return
	}
	if p.fps == nil {
		p.fps = newFPSWidget()
	}
}

// Update advances the page by one tick: timers, input, scroll, triggers,
// animations, confetti and finally one fireworks frame.
func (p *Page) Update() {
	var t0 time.Time
	if p.debug {
		t0 = time.Now()
	}
	dt := 1 / float64(p.tps)

	if p.testRunner != nil {
		p.testRunner.step(p)
	}
	p.timers.Advance(dt * 1000)
	p.processInput()

	p.scroller.Update()
	scroll := p.scroller.Offset()
	for _, t := range p.triggers {
		t.check(scroll, p.height)
	}
	for _, px := range p.parallax {
		px.update(scroll, p.height)
	}

	p.updateAnimators(float32(dt))

	if p.confetti != nil {
		p.confetti.Update(dt)
	}
	if p.fireworks != nil {
		p.canvas.Resize(int(p.canvasHost.Width), int(p.canvasHost.Height))
		p.fireworks.Frame(p.canvas)
	}
	if p.fps != nil {
		p.fps.update(dt, p.fireworks)
	}

	if p.debug {
		p.lastUpdate = time.Since(t0)
	}
}

// updateAnimators steps every registered animator and drops finished ones.
// Animators registered during the pass start on the next tick.
func (p *Page) updateAnimators(dt float32) {
	n := len(p.animators)
	for i := 0; i < n; i++ {
		p.animators[i].Update(dt)
	}
	keep := p.animators[:0]
	for _, a := range p.animators {
		if !a.Finished() {
			keep = append(keep, a)
		}
	}
	for i := len(keep); i < len(p.animators); i++ {
		p.animators[i] = nil
	}
	p.animators = keep
}

// Draw paints the page: scrolled sections, the confetti overlay, then fixed
// controls on top.
func (p *Page) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if p.debug {
		t0 = time.Now()
	}

	screen.Fill(p.Background.toRGBA())
	scroll := p.scroller.Offset()
	for _, e := range p.root.children {
		if !e.Fixed {
			p.drawElement(screen, e, scroll)
		}
	}
	if p.confetti != nil {
		p.confetti.Draw(screen)
	}
	for _, e := range p.root.children {
		if e.Fixed {
			p.drawElement(screen, e, scroll)
		}
	}
	if p.fps != nil {
		p.fps.draw(screen)
	}

	if p.debug {
		stats := debugStats{updateTime: p.lastUpdate, drawTime: time.Since(t0)}
		p.collectStats(&stats)
		p.debugLog(stats)
	}
	p.flushScreenshots(screen)
}
