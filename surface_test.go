package tribute

import "testing"

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(320, 200)
	img := c.Image()
	if img == nil {
		t.Fatal("canvas should have an image")
	}
	if w, h := c.Size(); w != 320 || h != 200 {
		t.Errorf("Size = %v x %v", w, h)
	}

	c.Resize(320, 200)
	if c.Image() != img {
		t.Error("same size should keep the backing image")
	}

	c.Resize(640, 200)
	if c.Image() == img {
		t.Error("new size should re-create the backing image")
	}
	if b := c.Image().Bounds(); b.Dx() != 640 || b.Dy() != 200 {
		t.Errorf("bounds = %v", b)
	}
}

func TestCanvasEmpty(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero", 0, 0},
		{"zero width", 0, 100},
		{"negative", -5, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(tt.w, tt.h)
			if c.Image() != nil {
				t.Fatal("empty canvas should have no image")
			}
			c.SetBlend(BlendAdd)
			c.FillRect(Rect{0, 0, 10, 10}, ColorWhite)
			c.StrokeLine(0, 0, 5, 5, ColorWhite)
			c.StrokeCircle(5, 5, 3, ColorWhite)
			c.Clear()
		})
	}
}

func TestCanvasGrowsFromEmpty(t *testing.T) {
	c := NewCanvas(0, 0)
	c.Resize(10, 10)
	if c.Image() == nil {
		t.Error("canvas should allocate once it has a size")
	}
	c.Resize(0, 10)
	if c.Image() != nil {
		t.Error("canvas should drop its image when shrunk to nothing")
	}
}

func TestCanvasBlendState(t *testing.T) {
	c := NewCanvas(16, 16)
	if c.Blend() != BlendNormal {
		t.Errorf("default blend = %v", c.Blend())
	}
	c.SetBlend(BlendErase)
	c.FillRect(Rect{0, 0, 16, 16}, Color{0, 0, 0, 0.5})
	if c.Blend() != BlendErase {
		t.Errorf("blend = %v, want erase", c.Blend())
	}
}

func TestCanvasRunsFireworksFrame(t *testing.T) {
	c := NewCanvas(200, 150)
	fw := NewFireworks(testRand())
	fw.Launch(100, 150, 100, 20)
	fw.Burst(50, 50)
	for i := 0; i < 5; i++ {
		fw.Frame(c)
	}
	if c.Blend() != BlendAdd {
		t.Errorf("blend after a frame = %v, want add", c.Blend())
	}
}
