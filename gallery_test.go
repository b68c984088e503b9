package tribute

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"testing/fstest"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(0, 0, color.RGBA{0xd4, 0xaf, 0x37, 0xff})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodeImage(t *testing.T) {
	img, format, err := DecodeImage(encodePNG(t, 4, 3))
	if err != nil {
		t.Fatal(err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("bounds = %v", b)
	}
}

func TestDecodeImageRejectsGarbage(t *testing.T) {
	_, _, err := DecodeImage([]byte("not an image"))
	if err == nil || !strings.Contains(err.Error(), "decode image") {
		t.Errorf("err = %v", err)
	}
}

func TestPreload(t *testing.T) {
	fsys := fstest.MapFS{
		"gallery/1.png":   {Data: encodePNG(t, 8, 8)},
		"gallery/bad.png": {Data: []byte("junk")},
	}
	imgs, err := Preload(fsys, []string{"gallery/1.png", "", "gallery/1.png", "gallery/missing.png", "gallery/bad.png"})
	if err == nil {
		t.Fatal("expected joined error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "gallery/missing.png") || !strings.Contains(msg, "gallery/bad.png") {
		t.Errorf("error should name both failures: %v", msg)
	}
	if len(imgs) != 1 {
		t.Fatalf("loaded %d images, want 1", len(imgs))
	}
	if b := imgs["gallery/1.png"].Bounds(); b.Dx() != 8 {
		t.Errorf("bounds = %v", b)
	}
}

func TestPreloadNilFS(t *testing.T) {
	imgs, err := Preload(nil, []string{"a.png"})
	if err != nil || len(imgs) != 0 {
		t.Errorf("imgs = %v err = %v", imgs, err)
	}
}
