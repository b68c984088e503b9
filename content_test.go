package tribute

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestDefaultContent(t *testing.T) {
	c := DefaultContent()
	if c.Name == "" || c.Title == "" {
		t.Fatalf("title/name missing: %+v", c)
	}
	if len(c.Stats) != 3 {
		t.Errorf("stats = %d, want 3", len(c.Stats))
	}
	for _, s := range c.Stats {
		if s.Target <= 0 {
			t.Errorf("stat %q target = %d", s.Label, s.Target)
		}
	}
	if len(c.Gallery) == 0 || len(c.Wishes) == 0 || len(c.Quotes) == 0 {
		t.Error("gallery, wishes and quotes should all have entries")
	}
	if c.Finale.Title == "" {
		t.Error("finale title missing")
	}
}

func TestParseContentError(t *testing.T) {
	_, err := ParseContent([]byte(`{"title": 5`))
	if err == nil || !strings.HasPrefix(err.Error(), "tribute: parse content:") {
		t.Errorf("err = %v", err)
	}
}

func TestLoadContent(t *testing.T) {
	fsys := fstest.MapFS{
		"page.json": {Data: []byte(`{"name": "Ada", "stats": [{"label": "Years", "target": 3}]}`)},
	}
	c, err := LoadContent(fsys, "page.json")
	if err != nil {
		t.Fatal(err)
	}
	if c.Name != "Ada" || len(c.Stats) != 1 || c.Stats[0].Target != 3 {
		t.Errorf("content = %+v", c)
	}

	if _, err := LoadContent(fsys, "missing.json"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestMediaPaths(t *testing.T) {
	c := &Content{
		Gallery: []GalleryEntry{{Image: "a.png"}, {Image: "b.png"}},
		Wishes:  []Wish{{Photo: "c.png"}, {Photo: ""}},
	}
	got := c.MediaPaths()
	want := []string{"a.png", "b.png", "c.png", ""}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("MediaPaths = %v, want %v", got, want)
	}
}
