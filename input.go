package tribute

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// --- Constants ---

const (
	wheelStep      = 60.0 // pixels per wheel notch
	arrowStep      = 80.0 // pixels per arrow key press
	pageStepFactor = 0.9  // fraction of the viewport per page key press
)

// --- Pointer state ---

type pointerState struct {
	down    bool
	lastX   float64
	lastY   float64
	hitElem *Element
}

// --- Hit testing ---

// collectClickable walks the tree in painter order (DFS), appending shown
// elements that have a click handler.
func collectClickable(e *Element, buf []*Element) []*Element {
	if !e.Visible || e.disposed {
		return buf
	}
	if e.OnClick != nil {
		buf = append(buf, e)
	}
	for _, c := range e.children {
		buf = collectClickable(c, buf)
	}
	return buf
}

// hitTest finds the topmost clickable element under screen point (sx, sy).
// Page-space elements are tested against the scrolled position. Returns nil
// if nothing is hit.
func (p *Page) hitTest(sx, sy float64) *Element {
	p.hitBuf = collectClickable(p.root, p.hitBuf[:0])
	scroll := p.scroller.Offset()
	for i := len(p.hitBuf) - 1; i >= 0; i-- {
		e := p.hitBuf[i]
		x, y := sx, sy
		if !e.IsFixed() {
			y += scroll
		}
		if e.visualBounds().Contains(x, y) {
			return e
		}
	}
	return nil
}

// --- Input processing ---

// processInput is called from Page.Update. Injected events take priority;
// while any are queued, real pointer input is ignored.
func (p *Page) processInput() {
	if p.processInjectedInput() {
		return
	}
	x, y, pressed := p.readPointer()
	p.processPointer(x, y, pressed)

	if _, wy := ebiten.Wheel(); wy != 0 {
		p.scrollBy(-wy * wheelStep)
	}
	p.processKeys()
}

// readPointer merges mouse and touch into one pointer. The first touch wins
// over the mouse; when it ends, the release lands where it was last seen.
func (p *Page) readPointer() (x, y float64, pressed bool) {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(p.touchIDs[0])
		p.touching = true
		return float64(tx), float64(ty), true
	}
	if p.touching {
		p.touching = false
		return p.pointer.lastX, p.pointer.lastY, false
	}
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (p *Page) processKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		p.scrollBy(arrowStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		p.scrollBy(-arrowStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		p.scrollBy(p.height * pageStepFactor)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		p.scrollBy(-p.height * pageStepFactor)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		p.scrollBy(-p.scroller.Target())
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		p.scrollBy(p.scroller.Limit() - p.scroller.Target())
	}
}

// scrollBy moves the scroll target and reports the move to the entity store.
func (p *Page) scrollBy(dy float64) {
	before := p.scroller.Target()
	p.scroller.ScrollBy(dy)
	if moved := p.scroller.Target() - before; moved != 0 {
		p.emitInteractionEvent(EventScroll, nil, 0, 0, 0, 0, moved)
	}
}

// processPointer runs the press/release state machine for the pointer at
// screen coordinates (sx, sy). A click fires when press and release land on
// the same element.
func (p *Page) processPointer(sx, sy float64, pressed bool) {
	ps := &p.pointer
	switch {
	case pressed && !ps.down:
		target := p.hitTest(sx, sy)
		ps.down = true
		ps.hitElem = target
		p.firePointer(EventPointerDown, target, sx, sy)
	case !pressed && ps.down:
		target := p.hitTest(sx, sy)
		if ps.hitElem != nil && ps.hitElem == target {
			p.fireClick(target, sx, sy)
		}
		p.firePointer(EventPointerUp, target, sx, sy)
		ps.down = false
		ps.hitElem = nil
	}
	ps.lastX = sx
	ps.lastY = sy
}

// pagePoint converts a screen point to the coordinate space of e.
func (p *Page) pagePoint(e *Element, sx, sy float64) (float64, float64) {
	if e != nil && !e.IsFixed() {
		return sx, sy + p.scroller.Offset()
	}
	return sx, sy
}

func (p *Page) firePointer(t EventType, e *Element, sx, sy float64) {
	if e == nil {
		return
	}
	gx, gy := p.pagePoint(e, sx, sy)
	b := e.visualBounds()
	p.emitInteractionEvent(t, e, gx, gy, gx-b.X, gy-b.Y, 0)
}

func (p *Page) fireClick(e *Element, sx, sy float64) {
	gx, gy := p.pagePoint(e, sx, sy)
	b := e.visualBounds()
	ctx := ClickContext{
		Element: e, UserData: e.UserData,
		GlobalX: gx, GlobalY: gy,
		LocalX: gx - b.X, LocalY: gy - b.Y,
	}
	if p.debug {
		debugf("click %q at (%.0f, %.0f)", e.Name, gx, gy)
	}
	if e.OnClick != nil {
		e.OnClick(ctx)
	}
	p.emitInteractionEvent(EventClick, e, ctx.GlobalX, ctx.GlobalY, ctx.LocalX, ctx.LocalY, 0)
}

// --- ECS bridge ---

func (p *Page) emitInteractionEvent(t EventType, e *Element, gx, gy, lx, ly, scrollDelta float64) {
	if p.store == nil {
		return
	}
	// Scroll is page-wide; every other event needs an element.
	if t != EventScroll && e == nil {
		return
	}
	ev := InteractionEvent{
		Type:        t,
		GlobalX:     gx,
		GlobalY:     gy,
		LocalX:      lx,
		LocalY:      ly,
		ScrollDelta: scrollDelta,
		ScrollY:     p.scroller.Target(),
	}
	if e != nil {
		ev.ElementID = e.ID
		ev.Name = e.Name
	}
	p.store.EmitEvent(ev)
}
