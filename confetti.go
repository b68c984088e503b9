package tribute

import (
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// confettiPiece holds per-piece state. Unexported; managed by Confetti.
type confettiPiece struct {
	x        float64 // fraction of the surface width, [0, 1)
	size     float64
	color    Color
	delay    float64 // seconds before the piece starts falling
	duration float64 // seconds to cross the surface
	age      float64
	spin     float64 // turns over the whole fall
}

// ConfettiConfig controls how confetti pieces look and fall.
type ConfettiConfig struct {
	// MaxPieces is the pool size. New pieces are silently dropped when full.
	MaxPieces int
	// Palette is the set of colors a piece is drawn from.
	Palette []Color
	// Size is the range of square sizes in pixels.
	Size Range
	// Duration is the range of fall times in seconds.
	Duration Range
	// Delay is the range of start delays in seconds.
	Delay Range
}

// DefaultConfettiPalette is gold, crimson, yellow, pink and white.
var DefaultConfettiPalette = mustPalette("#d4af37", "#c41e3a", "#ffd700", "#ff6b9d", "#ffffff")

// DefaultConfettiConfig matches the page's falling confetti.
var DefaultConfettiConfig = ConfettiConfig{
	MaxPieces: 512,
	Palette:   DefaultConfettiPalette,
	Size:      Range{5, 15},
	Duration:  Range{3, 7},
	Delay:     Range{0, 2},
}

func mustPalette(hex ...string) []Color {
	out := make([]Color, len(hex))
	for i, h := range hex {
		c, err := ParseHex(h)
		if err != nil {
			panic("tribute: bad palette color " + h)
		}
		out[i] = c
	}
	return out
}

const (
	confettiInitial      = 100
	confettiIntervalMs   = 300
	confettiBurstCount   = 50
	confettiBurstSpacing = 20
)

// Confetti manages a pool of falling pieces with swap-remove on expiry.
type Confetti struct {
	config ConfettiConfig
	pieces []confettiPiece
	alive  int
	rng    *rand.Rand
	stream TimerHandle
}

// NewConfetti creates an empty pool. A nil rng uses a time-seeded generator.
func NewConfetti(cfg ConfettiConfig, rng *rand.Rand) *Confetti {
	if cfg.MaxPieces <= 0 {
		cfg.MaxPieces = 128
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = []Color{ColorWhite}
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Confetti{
		config: cfg,
		pieces: make([]confettiPiece, cfg.MaxPieces),
		rng:    rng,
	}
}

// AliveCount returns the number of live pieces.
func (c *Confetti) AliveCount() int {
	return c.alive
}

// Start drops the initial shower and keeps adding one piece every 300 ms.
func (c *Confetti) Start(timers *Timers) {
	for range confettiInitial {
		c.Spawn()
	}
	if timers == nil {
		return
	}
	c.stream.Cancel()
	c.stream = timers.Every(confettiIntervalMs, c.Spawn)
}

// Stop ends the stream. Pieces already falling live out.
func (c *Confetti) Stop() {
	c.stream.Cancel()
	c.stream = TimerHandle{}
}

// Burst adds 50 pieces, one every 20 ms.
func (c *Confetti) Burst(timers *Timers) {
	if timers == nil {
		return
	}
	for i := range confettiBurstCount {
		timers.After(float64(i*confettiBurstSpacing), c.Spawn)
	}
}

// Spawn initializes one piece if the pool has room.
func (c *Confetti) Spawn() {
	if c.alive >= len(c.pieces) {
		return
	}
	p := &c.pieces[c.alive]
	p.x = c.rng.Float64()
	p.size = c.random(c.config.Size)
	p.color = c.config.Palette[c.rng.IntN(len(c.config.Palette))]
	p.duration = c.random(c.config.Duration)
	if p.duration <= 0 {
		p.duration = 1
	}
	p.delay = c.random(c.config.Delay)
	p.age = 0
	p.spin = 1 + c.rng.Float64()*2
	c.alive++
}

// Update advances every piece by dt seconds and removes those that finished
// their fall.
func (c *Confetti) Update(dt float64) {
	i := 0
	for i < c.alive {
		p := &c.pieces[i]
		p.age += dt
		if p.age >= p.delay+p.duration {
			c.alive--
			c.pieces[i] = c.pieces[c.alive]
			continue
		}
		i++
	}
}

// Draw paints the falling pieces over dst, top to bottom across its height.
// Pieces fade out over the last tenth of their fall.
func (c *Confetti) Draw(dst *ebiten.Image) {
	b := dst.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	var op ebiten.DrawImageOptions
	for i := 0; i < c.alive; i++ {
		p := &c.pieces[i]
		t := (p.age - p.delay) / p.duration
		if t < 0 {
			continue
		}
		y := -p.size + t*(h+p.size)
		col := p.color
		if t > 0.9 {
			col.A *= (1 - t) / 0.1
		}
		op.GeoM.Reset()
		op.GeoM.Translate(-0.5, -0.5)
		op.GeoM.Scale(p.size, p.size)
		op.GeoM.Rotate(t * p.spin * 2 * math.Pi)
		op.GeoM.Translate(p.x*w, y)
		op.ColorScale = col.colorScale()
		dst.DrawImage(WhitePixel, &op)
	}
}

func (c *Confetti) random(r Range) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + c.rng.Float64()*(r.Max-r.Min)
}
