package tribute

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io/fs"
)

//go:embed assets/content.json
var defaultContentJSON []byte

// Stat is one animated counter.
type Stat struct {
	Label  string `json:"label"`
	Target int    `json:"target"`
}

// GalleryEntry is one gallery photo. Image is a path inside the asset FS.
type GalleryEntry struct {
	Image   string `json:"image"`
	Caption string `json:"caption"`
}

// Wish is one testimonial frame.
type Wish struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Message string `json:"message"`
	Photo   string `json:"photo"`
}

// Quote is one carousel slide.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// Finale holds the closing section's text.
type Finale struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// Content is everything the page says. Layout and animation are fixed; only
// the words, numbers and media paths change.
type Content struct {
	Title    string         `json:"title"`
	Name     string         `json:"name"`
	Subtitle string         `json:"subtitle"`
	Tagline  string         `json:"tagline"`
	Stats    []Stat         `json:"stats"`
	Gallery  []GalleryEntry `json:"gallery"`
	Wishes   []Wish         `json:"wishes"`
	Quotes   []Quote        `json:"quotes"`
	Finale   Finale         `json:"finale"`
	Music    string         `json:"music"`
}

// ParseContent decodes page content from JSON.
func ParseContent(data []byte) (*Content, error) {
	var c Content
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("tribute: parse content: %w", err)
	}
	return &c, nil
}

// DefaultContent returns the built-in page content.
func DefaultContent() *Content {
	c, err := ParseContent(defaultContentJSON)
	if err != nil {
		panic(err)
	}
	return c
}

// LoadContent reads and parses a content file from fsys.
func LoadContent(fsys fs.FS, name string) (*Content, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("tribute: read content %s: %w", name, err)
	}
	return ParseContent(data)
}
