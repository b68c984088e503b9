package tribute

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Surface is a 2D drawable with a current compositing mode. All drawing
// calls use the mode set by the most recent SetBlend.
type Surface interface {
	Size() (width, height float64)
	SetBlend(mode BlendMode)
	FillRect(r Rect, c Color)
	StrokeLine(x0, y0, x1, y1 float64, c Color)
	StrokeCircle(cx, cy, radius float64, c Color)
}

// circleSegments is the polyline resolution used by Canvas.StrokeCircle.
const circleSegments = 24

// Canvas is the Ebitengine-backed Surface. It owns an offscreen image that
// keeps its content between frames so that translucent erase fills produce
// fading trails. Call Resize whenever the hosting box changes size.
type Canvas struct {
	img         *ebiten.Image
	blend       BlendMode
	w, h        int
	StrokeWidth float64
}

// NewCanvas creates a canvas of the given pixel size.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{StrokeWidth: 1}
	c.Resize(width, height)
	return c
}

// Resize re-measures the canvas. The backing image is re-created (and its
// content dropped) only when the size actually changes. Sizes below one pixel
// leave the canvas empty; drawing on an empty canvas does nothing.
func (c *Canvas) Resize(width, height int) {
	if width == c.w && height == c.h && (c.img != nil || width <= 0 || height <= 0) {
		return
	}
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
	c.w, c.h = width, height
	if width > 0 && height > 0 {
		c.img = ebiten.NewImage(width, height)
	}
}

// Image returns the backing image, or nil for an empty canvas.
func (c *Canvas) Image() *ebiten.Image {
	return c.img
}

// Size implements Surface.
func (c *Canvas) Size() (float64, float64) {
	return float64(c.w), float64(c.h)
}

// SetBlend implements Surface.
func (c *Canvas) SetBlend(mode BlendMode) {
	c.blend = mode
}

// Blend returns the current compositing mode.
func (c *Canvas) Blend() BlendMode {
	return c.blend
}

// FillRect implements Surface.
func (c *Canvas) FillRect(r Rect, col Color) {
	if c.img == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale = col.colorScale()
	op.Blend = c.blend.EbitenBlend()
	c.img.DrawImage(WhitePixel, &op)
}

// StrokeLine implements Surface. The segment is drawn as a rotated quad of
// StrokeWidth thickness centered on the line.
func (c *Canvas) StrokeLine(x0, y0, x1, y1 float64, col Color) {
	if c.img == nil {
		return
	}
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		length = c.StrokeWidth
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(length, c.StrokeWidth)
	op.GeoM.Translate(0, -c.StrokeWidth/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x0, y0)
	op.ColorScale = col.colorScale()
	op.Blend = c.blend.EbitenBlend()
	c.img.DrawImage(WhitePixel, &op)
}

// StrokeCircle implements Surface.
func (c *Canvas) StrokeCircle(cx, cy, radius float64, col Color) {
	if c.img == nil {
		return
	}
	step := 2 * math.Pi / circleSegments
	px, py := cx+radius, cy
	for i := 1; i <= circleSegments; i++ {
		a := float64(i) * step
		x, y := cx+radius*math.Cos(a), cy+radius*math.Sin(a)
		c.StrokeLine(px, py, x, y, col)
		px, py = x, y
	}
}

// Clear drops all pixels.
func (c *Canvas) Clear() {
	if c.img != nil {
		c.img.Clear()
	}
}
