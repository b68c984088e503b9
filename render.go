package tribute

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// boxGeoM maps an element's local box coordinates to the screen, applying
// scale and flip around the box center. b is the element's on-screen box.
func boxGeoM(e *Element, b Rect) ebiten.GeoM {
	var g ebiten.GeoM
	hw, hh := b.Width/2, b.Height/2
	g.Translate(-hw, -hh)
	g.Scale(e.ScaleX*math.Cos(e.FlipY*math.Pi/180), e.ScaleY)
	g.Translate(b.X+hw, b.Y+hh)
	return g
}

// drawElement paints e and its subtree onto dst. Page-space elements are
// shifted up by scroll; elements entirely off screen skip their own drawing
// but their children are still visited.
func (p *Page) drawElement(dst *ebiten.Image, e *Element, scroll float64) {
	if !e.Visible || e.disposed {
		return
	}
	alpha := e.worldAlpha()
	if alpha <= 0 {
		return
	}
	if b, ok := p.screenBox(e, scroll); ok {
		geo := boxGeoM(e, b)
		drawBackground(dst, e, geo, alpha)
		if e == p.canvasHost && p.canvas != nil {
			drawCanvas(dst, p.canvas, geo, alpha)
		}
		drawImage(dst, e, geo, alpha)
		drawText(dst, e, geo, alpha)
	}
	for _, c := range e.children {
		p.drawElement(dst, c, scroll)
	}
}

// screenBox returns e's box in screen space and whether any of it, grown by
// its vertical scale, is within the viewport.
func (p *Page) screenBox(e *Element, scroll float64) (Rect, bool) {
	b := e.visualBounds()
	if !e.IsFixed() {
		b.Y -= scroll
	}
	margin := b.Height * math.Max(e.ScaleY-1, 0) / 2
	return b, b.Y+b.Height+margin >= 0 && b.Y-margin <= p.height
}

func drawBackground(dst *ebiten.Image, e *Element, geo ebiten.GeoM, alpha float64) {
	if e.Background.A <= 0 || e.Width <= 0 || e.Height <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(e.Width, e.Height)
	op.GeoM.Concat(geo)
	col := e.Background
	col.A *= alpha
	op.ColorScale = col.colorScale()
	dst.DrawImage(WhitePixel, &op)
}

func drawCanvas(dst *ebiten.Image, c *Canvas, geo ebiten.GeoM, alpha float64) {
	img := c.Image()
	if img == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM = geo
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(img, &op)
}

// drawImage stretches the element's image over its box.
func drawImage(dst *ebiten.Image, e *Element, geo ebiten.GeoM, alpha float64) {
	if e.Image == nil {
		return
	}
	ib := e.Image.Bounds()
	iw, ih := float64(ib.Dx()), float64(ib.Dy())
	if iw == 0 || ih == 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(e.Width/iw, e.Height/ih)
	op.GeoM.Concat(geo)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(e.Image, &op)
}

// drawText draws the element's text vertically centered in its box and
// aligned horizontally by Align.
func drawText(dst *ebiten.Image, e *Element, geo ebiten.GeoM, alpha float64) {
	if e.Text == "" || e.Font == nil {
		return
	}
	_, th := e.Font.MeasureString(e.Text)
	op := &text.DrawOptions{}
	op.LineSpacing = e.Font.LineHeight()
	var ax float64
	switch e.Align {
	case TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
		ax = e.Width / 2
	case TextAlignRight:
		op.PrimaryAlign = text.AlignEnd
		ax = e.Width
	}
	op.GeoM.Translate(ax, (e.Height-th)/2)
	op.GeoM.Concat(geo)
	col := e.TextColor
	col.A *= alpha
	op.ColorScale = col.colorScale()
	text.Draw(dst, e.Text, e.Font.Face(), op)
}
