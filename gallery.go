package tribute

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/webp"
)

// placeholderColor fills gallery and wish photos whose image failed to load.
var placeholderColor = Color{0.18, 0.14, 0.1, 1}

// DecodeImage decodes PNG, JPEG or WebP data.
func DecodeImage(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("tribute: decode image: %w", err)
	}
	return img, format, nil
}

// LoadImage reads and decodes one image from fsys.
func LoadImage(fsys fs.FS, name string) (*ebiten.Image, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("tribute: read image %s: %w", name, err)
	}
	img, _, err := DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("tribute: %s: %w", name, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// Preload loads every named image up front. The map holds the images that
// loaded; the error joins every failure. Empty and repeated names are skipped.
func Preload(fsys fs.FS, names []string) (map[string]*ebiten.Image, error) {
	out := make(map[string]*ebiten.Image, len(names))
	if fsys == nil {
		return out, nil
	}
	var errs []error
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := out[name]; ok {
			continue
		}
		img, err := LoadImage(fsys, name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out[name] = img
	}
	return out, errors.Join(errs...)
}

// MediaPaths lists every image path referenced by c.
func (c *Content) MediaPaths() []string {
	paths := make([]string, 0, len(c.Gallery)+len(c.Wishes))
	for _, g := range c.Gallery {
		paths = append(paths, g.Image)
	}
	for _, w := range c.Wishes {
		paths = append(paths, w.Photo)
	}
	return paths
}
