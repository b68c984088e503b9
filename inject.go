package tribute

// syntheticEvent represents a single injected input event. Screen coordinates
// are used (matching what a script sees in screenshots) and converted to page
// coordinates with the current scroll, identical to real mouse input.
type syntheticEvent struct {
	screenX, screenY float64
	pressed          bool
	scroll           bool
	dy               float64
}

// InjectPress queues a pointer press at the given screen coordinates. The
// event is consumed on the next frame's processInput call.
func (p *Page) InjectPress(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{screenX: x, screenY: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (p *Page) InjectRelease(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{screenX: x, screenY: y})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (p *Page) InjectClick(x, y float64) {
	p.InjectPress(x, y)
	p.InjectRelease(x, y)
}

// InjectScroll queues a scroll of dy pixels (positive scrolls down the page).
// Consumes one frame.
func (p *Page) InjectScroll(dy float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{scroll: true, dy: dy})
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the same paths as real input. Returns true if an event was consumed
// (real input should be skipped).
func (p *Page) processInjectedInput() bool {
	if len(p.injectQueue) == 0 {
		return false
	}
	evt := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]

	if evt.scroll {
		p.scrollBy(evt.dy)
		return true
	}
	p.processPointer(evt.screenX, evt.screenY, evt.pressed)
	return true
}
