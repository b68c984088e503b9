package tribute

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// ClickContext carries click event data.
type ClickContext struct {
	Element  *Element
	UserData any
	GlobalX  float64
	GlobalY  float64
	LocalX   float64
	LocalY   float64
}

// elementIDCounter is a plain counter. The page is single-threaded.
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// Element is the building block of the page: a box with an optional
// background, image and text. Roots are positioned in page space (scrolling
// with the page) unless Fixed is set, in which case they sit in screen space.
// Children are positioned relative to their parent and inherit its offsets
// and alpha.
type Element struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Element
	children []*Element

	// Layout box (relative to the parent, page space for roots)
	X, Y          float64
	Width, Height float64

	// Animated displacement and transform. Scale and flip pivot on the box center.
	OffsetX, OffsetY float64
	ScaleX, ScaleY   float64
	// FlipY is a rotation around the vertical axis in degrees, drawn as a
	// horizontal squash.
	FlipY float64

	Alpha   float64
	Visible bool
	Fixed   bool

	Background Color
	Image      *ebiten.Image

	Text      string
	Font      *Font
	TextColor Color
	Align     TextAlign

	// Metadata
	UserData any

	OnClick func(ClickContext)

	disposed bool
}

// NewElement creates a visible element with the given box.
func NewElement(name string, x, y, width, height float64) *Element {
	return &Element{
		ID:        nextElementID(),
		Name:      name,
		X:         x,
		Y:         y,
		Width:     width,
		Height:    height,
		ScaleX:    1,
		ScaleY:    1,
		Alpha:     1,
		Visible:   true,
		TextColor: ColorWhite,
	}
}

// NewLabel creates an element that renders centered text.
func NewLabel(name, content string, font *Font, x, y, width, height float64) *Element {
	e := NewElement(name, x, y, width, height)
	e.Text = content
	e.Font = font
	e.Align = TextAlignCenter
	return e
}

// SetText replaces the element's text.
func (e *Element) SetText(content string) {
	e.Text = content
}

// AddChild appends child to this element's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or is an ancestor of e.
func (e *Element) AddChild(child *Element) {
	if child == nil {
		panic("tribute: cannot add nil child")
	}
	for p := e; p != nil; p = p.Parent {
		if p == child {
			panic("tribute: adding child would create a cycle")
		}
	}
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child from this element. Does nothing if child is not
// a direct child.
func (e *Element) RemoveChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (e *Element) Children() []*Element {
	return e.children
}

// Dispose detaches the element and its subtree. Tweens targeting a disposed
// element stop on their next update.
func (e *Element) Dispose() {
	if e.Parent != nil {
		e.Parent.RemoveChild(e)
	}
	e.dispose()
}

func (e *Element) dispose() {
	e.disposed = true
	for _, c := range e.children {
		c.Parent = nil
		c.dispose()
	}
	e.children = nil
	e.OnClick = nil
}

// IsDisposed reports whether Dispose has been called.
func (e *Element) IsDisposed() bool {
	return e.disposed
}

// IsFixed reports whether the element, or any ancestor, is pinned to the screen.
func (e *Element) IsFixed() bool {
	for p := e; p != nil; p = p.Parent {
		if p.Fixed {
			return true
		}
	}
	return false
}

// Bounds returns the layout box (without animated offsets) in page space, or
// in screen space for fixed elements.
func (e *Element) Bounds() Rect {
	x, y := e.X, e.Y
	for p := e.Parent; p != nil; p = p.Parent {
		x += p.X
		y += p.Y
	}
	return Rect{x, y, e.Width, e.Height}
}

// visualBounds returns the box including animated offsets of the element and
// its ancestors. Scale is not applied; hit testing uses the layout size.
func (e *Element) visualBounds() Rect {
	r := e.Bounds()
	for p := e; p != nil; p = p.Parent {
		r.X += p.OffsetX
		r.Y += p.OffsetY
	}
	return r
}

// worldAlpha multiplies alpha down the ancestor chain.
func (e *Element) worldAlpha() float64 {
	a := 1.0
	for p := e; p != nil; p = p.Parent {
		a *= p.Alpha
	}
	return a
}

// isShown reports whether the element and every ancestor are visible.
func (e *Element) isShown() bool {
	for p := e; p != nil; p = p.Parent {
		if !p.Visible || p.disposed {
			return false
		}
	}
	return true
}
