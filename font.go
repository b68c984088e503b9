package tribute

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font wraps Ebitengine's text/v2 for TrueType font rendering.
type Font struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("tribute: failed to parse TTF data: %w", err)
	}
	return newFont(source, size), nil
}

func newFont(source *text.GoTextFaceSource, size float64) *Font {
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()
	return &Font{
		face:   face,
		source: source,
		size:   size,
		lh:     m.HAscent + m.HDescent + m.HLineGap,
	}
}

var (
	defaultSource    *text.GoTextFaceSource
	defaultSourceErr error
	defaultOnce      sync.Once
)

// DefaultFont returns the Go Regular face at the given size. The parsed
// source is shared between all sizes.
func DefaultFont(size float64) (*Font, error) {
	defaultOnce.Do(func() {
		defaultSource, defaultSourceErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	})
	if defaultSourceErr != nil {
		return nil, fmt.Errorf("tribute: failed to parse default font: %w", defaultSourceErr)
	}
	return newFont(defaultSource, size), nil
}

// WithSize returns a face of the same family at another size.
func (f *Font) WithSize(size float64) *Font {
	return newFont(f.source, size)
}

// MeasureString returns the width and height of the rendered text.
func (f *Font) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 {
	return f.lh
}

// Size returns the font size in pixels.
func (f *Font) Size() float64 {
	return f.size
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *Font) Face() *text.GoTextFace {
	return f.face
}

// Wrap breaks s at spaces so that no line is wider than maxWidth. Words wider
// than maxWidth get a line of their own. Existing newlines are kept.
func (f *Font) Wrap(s string, maxWidth float64) string {
	if maxWidth <= 0 {
		return s
	}
	var out strings.Builder
	for i, para := range strings.Split(s, "\n") {
		if i > 0 {
			out.WriteByte('\n')
		}
		line := ""
		for _, word := range strings.Fields(para) {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if w, _ := f.MeasureString(candidate); w > maxWidth && line != "" {
				out.WriteString(line)
				out.WriteByte('\n')
				line = word
				continue
			}
			line = candidate
		}
		out.WriteString(line)
	}
	return out.String()
}
