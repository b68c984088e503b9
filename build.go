package tribute

import (
	"fmt"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Assets is what the tribute page takes from outside its content file.
type Assets struct {
	// Images maps content image paths to decoded images. Missing entries are
	// drawn as placeholders.
	Images map[string]*ebiten.Image
	// Music is the background track. Nil leaves the toggle silent.
	Music Track
	// Rand drives fireworks and confetti. Nil uses a time-seeded generator.
	Rand *rand.Rand
}

// Tribute holds handles to the animated parts of a built page.
type Tribute struct {
	Page         *Page
	Hero         *Timeline
	Float        *Pulse
	Typewriter   *Typewriter
	Counters     []*Counter
	GalleryItems []*Element
	Wishes       []*Timeline
	Carousel     *Carousel
	Fireworks    *Fireworks
	Launcher     *Launcher
	LaunchButton *Element
	Finale       *Timeline
	Confetti     *Confetti
	Music        *MusicToggle
	MusicButton  *Element
}

var (
	colorGold    = Color{0.83, 0.69, 0.22, 1}
	colorCrimson = Color{0.77, 0.12, 0.23, 1}
	colorCream   = Color{0.96, 0.93, 0.86, 1}
	colorPanel   = Color{1, 1, 1, 0.06}
)

type pageFonts struct {
	title, heading, body, small *Font
}

func loadPageFonts() (pageFonts, error) {
	title, err := DefaultFont(56)
	if err != nil {
		return pageFonts{}, err
	}
	return pageFonts{
		title:   title,
		heading: title.WithSize(34),
		body:    title.WithSize(20),
		small:   title.WithSize(15),
	}, nil
}

// builder lays sections out top to bottom.
type builder struct {
	p      *Page
	t      *Tribute
	c      *Content
	assets Assets
	fonts  pageFonts
	rng    *rand.Rand
	w, h   float64
	y      float64
}

// BuildTribute lays out every section of the tribute page on p, wires its
// animations and controls, and starts the hero timeline, confetti and quote
// carousel.
func BuildTribute(p *Page, c *Content, assets Assets) (*Tribute, error) {
	if c == nil {
		return nil, fmt.Errorf("tribute: build: nil content")
	}
	fonts, err := loadPageFonts()
	if err != nil {
		return nil, fmt.Errorf("tribute: build: %w", err)
	}
	rng := assets.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	w, h := p.Size()
	b := &builder{p: p, t: &Tribute{Page: p}, c: c, assets: assets, fonts: fonts, rng: rng, w: w, h: h}

	b.hero()
	b.stats()
	b.gallery()
	b.wishes()
	b.quotes()
	b.fireworks()
	b.finale()
	p.SetContentHeight(b.y)

	b.confetti()
	b.music()
	return b.t, nil
}

// section appends a full-width block of the given height below the last one.
func (b *builder) section(name string, height float64, bg Color) *Element {
	s := NewElement(name, 0, b.y, b.w, height)
	s.Background = bg
	b.p.Add(s)
	b.y += height
	return s
}

func (b *builder) label(name, content string, font *Font, x, y, w, h float64) *Element {
	e := NewLabel(name, content, font, x, y, w, h)
	e.TextColor = colorCream
	return e
}

func (b *builder) heading(s *Element, content string) {
	hd := b.label(s.Name+"-heading", content, b.fonts.heading, 0, 40, b.w, 60)
	hd.TextColor = colorGold
	s.AddChild(hd)
}

func (b *builder) hero() {
	s := b.section("hero", b.h, Color{0.08, 0.05, 0.1, 1})
	top := b.h * 0.22

	title := b.label("hero-title", b.c.Title, b.fonts.title, 0, top, b.w, 80)
	name := b.label("title-name", b.c.Name, b.fonts.title, 0, 80, b.w, 80)
	name.TextColor = colorGold
	title.AddChild(name)
	subtitle := b.label("hero-subtitle", b.c.Subtitle, b.fonts.body, 0, top+190, b.w, 40)
	tagline := b.label("hero-tagline", "", b.fonts.body, 40, top+240, b.w-80, 40)
	indicator := b.label("scroll-indicator", "Scroll to explore", b.fonts.small, 0, b.h-80, b.w, 30)
	for _, e := range []*Element{title, subtitle, tagline, indicator} {
		s.AddChild(e)
	}

	tw := NewTypewriter(tagline, b.p.Timers(), b.fonts.body.Wrap(b.c.Tagline, b.w-80))
	tl := NewTimeline().
		Then(NewTweenGroup(title, 1.5, BackOut(1.2)).
			FromTo(PropAlpha, 0, 1).FromTo(PropScale, 0.8, 1).FromTo(PropOffsetY, 50, 0), 0).
		Then(NewTweenGroup(subtitle, 1, ease.OutCubic).
			FromTo(PropAlpha, 0, 1).FromTo(PropOffsetY, 30, 0), -0.5).
		Then(NewTweenGroup(indicator, 1, ease.OutCubic).
			FromTo(PropAlpha, 0, 1).FromTo(PropOffsetY, -20, 0), -0.5)
	tl.OnComplete = tw.Start
	b.p.Play(tl)

	float := NewPulse(name, PropOffsetY, 0, -10, 2, ease.InOutSine)
	float.Delay = 2
	b.p.Animate(float)

	b.t.Hero = tl
	b.t.Float = float
	b.t.Typewriter = tw
}

func (b *builder) stats() {
	s := b.section("stats", b.h, Color{0.1, 0.06, 0.08, 1})
	b.heading(s, "By the Numbers")
	n := len(b.c.Stats)
	for i, st := range b.c.Stats {
		cx := b.w * (float64(i) + 0.5) / float64(n)
		card := NewElement(fmt.Sprintf("stat-%d", i), cx-130, b.h*0.35, 260, 180)
		card.Background = colorPanel
		num := b.label(fmt.Sprintf("stat-number-%d", i), "", b.fonts.title, 0, 30, 260, 80)
		num.TextColor = colorGold
		lbl := b.label(fmt.Sprintf("stat-label-%d", i), st.Label, b.fonts.small, 0, 120, 260, 30)
		card.AddChild(num)
		card.AddChild(lbl)
		s.AddChild(card)

		counter := NewCounter(num, b.p.Timers(), st.Target)
		b.p.OnScroll(num, 0.8, counter.Start, nil)
		b.t.Counters = append(b.t.Counters, counter)
	}
}

const (
	galleryColumns = 3
	galleryGap     = 24.0
)

func (b *builder) gallery() {
	cellW := (b.w - galleryGap*(galleryColumns+1)) / galleryColumns
	cellH := cellW * 0.66
	rows := (len(b.c.Gallery) + galleryColumns - 1) / galleryColumns
	height := max(b.h, 140+float64(rows)*(cellH+galleryGap)+galleryGap)
	s := b.section("gallery", height, Color{0.07, 0.05, 0.09, 1})
	b.heading(s, "Moments")

	for i, g := range b.c.Gallery {
		col, row := i%galleryColumns, i/galleryColumns
		x := galleryGap + float64(col)*(cellW+galleryGap)
		y := 140 + float64(row)*(cellH+galleryGap)
		item := NewElement(fmt.Sprintf("gallery-item-%d", i), x, y, cellW, cellH)
		b.setPhoto(item, g.Image)
		caption := b.label(item.Name+"-caption", g.Caption, b.fonts.small, 0, cellH-34, cellW, 34)
		caption.Background = Color{0, 0, 0, 0.45}
		item.AddChild(caption)
		s.AddChild(item)

		reveal := NewTweenGroup(item, 0.8, ease.OutCubic).
			FromTo(PropAlpha, 0, 1).FromTo(PropOffsetY, 50, 0).FromTo(PropScale, 0.8, 1)
		tl := NewTimeline().At(reveal, 0.1*float32(i))
		b.p.OnScroll(item, 0.85, func() { b.p.Play(tl) }, func() { b.p.Rewind(tl) })
		b.t.GalleryItems = append(b.t.GalleryItems, item)
	}
}

// setPhoto shows the named image on e, or a placeholder fill if it did not load.
func (b *builder) setPhoto(e *Element, path string) {
	if img := b.assets.Images[path]; img != nil {
		e.Image = img
		return
	}
	e.Background = placeholderColor
}

func (b *builder) wishes() {
	for i, wish := range b.c.Wishes {
		frame := b.section(fmt.Sprintf("wish-frame-%d", i), b.h*0.8, Color{0.09, 0.06, 0.08, 1})
		half := b.w / 2
		fh := frame.Height

		left := NewElement(frame.Name+"-left", 40, 40, half-60, fh-80)
		photo := NewElement(frame.Name+"-photo", 0, 0, half-60, fh-80)
		b.setPhoto(photo, wish.Photo)
		left.AddChild(photo)

		right := NewElement(frame.Name+"-right", half+20, 40, half-60, fh-80)
		right.Background = colorPanel
		text := b.label(frame.Name+"-text", b.fonts.body.Wrap(wish.Message, half-100), b.fonts.body, 20, 40, half-100, fh-200)
		text.Align = TextAlignLeft
		name := b.label(frame.Name+"-name", wish.Name+", "+wish.Role, b.fonts.small, 20, fh-150, half-100, 30)
		name.TextColor = colorGold
		name.Align = TextAlignLeft
		right.AddChild(text)
		right.AddChild(name)

		frame.AddChild(left)
		frame.AddChild(right)

		tl := NewTimeline().
			Then(NewTweenGroup(left, 1.2, ease.OutCubic).FromTo(PropOffsetX, -100, 0).FromTo(PropAlpha, 0, 1), 0).
			Then(NewTweenGroup(right, 1.2, ease.OutCubic).FromTo(PropOffsetX, 100, 0).FromTo(PropAlpha, 0, 1), -1).
			Then(NewTweenGroup(photo, 1.5, ease.OutQuad).FromTo(PropScale, 1.2, 1).FromTo(PropAlpha, 0, 1), -1.2).
			Then(NewTweenGroup(text, 1, ease.OutQuad).FromTo(PropOffsetY, 30, 0).FromTo(PropAlpha, 0, 1), -1).
			Then(NewTweenGroup(name, 0.8, ease.OutQuad).FromTo(PropOffsetY, 20, 0).FromTo(PropAlpha, 0, 1), -0.6)
		b.p.OnScroll(frame, 0.8, func() { b.p.Play(tl) }, func() { b.p.Rewind(tl) })
		b.p.AddParallax(NewParallax(photo, frame, -50, b.p.TPS()))
		b.t.Wishes = append(b.t.Wishes, tl)
	}
}

func (b *builder) quotes() {
	s := b.section("quotes", b.h*0.7, Color{0.06, 0.04, 0.07, 1})
	b.heading(s, "Words to Live By")

	slides := make([]*Element, len(b.c.Quotes))
	dots := make([]*Element, len(b.c.Quotes))
	dotsX := (b.w - float64(len(dots))*28) / 2
	for i, q := range b.c.Quotes {
		body := b.fonts.body.Wrap(q.Text, b.w-200) + "\n\n- " + q.Author
		slides[i] = b.label(fmt.Sprintf("quote-slide-%d", i), body, b.fonts.body, 100, 130, b.w-200, s.Height-220)
		s.AddChild(slides[i])
		dots[i] = NewElement(fmt.Sprintf("quote-dot-%d", i), dotsX+float64(i)*28, s.Height-60, 14, 14)
		s.AddChild(dots[i])
	}
	car := NewCarousel(slides, dots)
	car.DotActive = colorGold
	car.Show(0)
	car.Start(b.p.Timers())
	b.t.Carousel = car
}

func (b *builder) fireworks() {
	s := b.section("fireworks", b.h, Color{0.02, 0.02, 0.05, 1})
	b.heading(s, "Light Up the Sky")

	fw := NewFireworks(b.rng)
	canvas := b.p.SetFireworks(fw, s)

	button := b.label("fireworks-button", "", b.fonts.body, (b.w-260)/2, b.h-110, 260, 54)
	button.Background = colorCrimson
	s.AddChild(button)

	l := NewLauncher(fw, canvas, button, b.p.Timers(), DefaultLauncherConfig)
	button.OnClick = func(ClickContext) { l.Activate() }

	b.t.Fireworks = fw
	b.t.Launcher = l
	b.t.LaunchButton = button
}

func (b *builder) finale() {
	s := b.section("finale-section", b.h, Color{0.1, 0.05, 0.07, 1})
	title := b.label("finale-title", b.c.Finale.Title, b.fonts.title, 0, b.h*0.35, b.w, 80)
	title.TextColor = colorGold
	subtitle := b.label("finale-subtitle", b.c.Finale.Subtitle, b.fonts.body, 0, b.h*0.35+110, b.w, 40)
	s.AddChild(title)
	s.AddChild(subtitle)

	tl := NewTimeline().
		Then(NewTweenGroup(title, 1.5, BackOut(1.5)).
			FromTo(PropScale, 0.5, 1).FromTo(PropAlpha, 0, 1).FromTo(PropFlipY, 180, 0), 0).
		Then(NewTweenGroup(subtitle, 1, ease.OutQuad).
			FromTo(PropOffsetY, 50, 0).FromTo(PropAlpha, 0, 1), -0.8)
	b.p.OnScroll(s, 0.7, func() {
		b.p.Play(tl)
		if b.t.Confetti != nil {
			b.t.Confetti.Burst(b.p.Timers())
		}
	}, func() { b.p.Rewind(tl) })
	b.t.Finale = tl
}

func (b *builder) confetti() {
	c := NewConfetti(DefaultConfettiConfig, b.rng)
	b.p.SetConfetti(c)
	c.Start(b.p.Timers())
	b.t.Confetti = c
}

func (b *builder) music() {
	button := b.label("music-toggle", "", b.fonts.small, b.w-170, 20, 150, 44)
	button.Background = Color{0.2, 0.15, 0.05, 0.85}
	button.Fixed = true
	b.p.Add(button)
	b.t.Music = NewMusicToggle(b.p, button, b.assets.Music)
	b.t.MusicButton = button
}
