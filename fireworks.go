package tribute

import (
	"math"
	"math/rand/v2"
)

const (
	trailLength = 5

	rocketStartSpeed   = 2.0
	rocketAcceleration = 1.05
	rocketRingMin      = 1.0
	rocketRingMax      = 8.0
	rocketRingStep     = 0.3

	// BurstSize is the number of sparks a rocket releases on arrival.
	BurstSize = 30

	sparkFriction = 0.95
	sparkGravity  = 1.0

	// fadeAlpha is the per-frame erase strength that leaves fading trails.
	fadeAlpha = 0.5
)

var (
	rocketBrightness = Range{50, 100}
	sparkSpeed       = Range{1, 11}
	sparkBrightness  = Range{50, 130}
	sparkDecay       = Range{0.01, 0.04}
)

// trail is a fixed-length history of positions, newest first.
type trail [trailLength]Vec2

func newTrail(x, y float64) trail {
	var t trail
	for i := range t {
		t[i] = Vec2{x, y}
	}
	return t
}

// push drops the oldest point and records p as the newest.
func (t *trail) push(p Vec2) {
	copy(t[1:], t[:trailLength-1])
	t[0] = p
}

func (t *trail) oldest() Vec2 {
	return t[trailLength-1]
}

// Rocket is the launch phase of a firework: a trail climbing toward a fixed
// target point.
type Rocket struct {
	X, Y             float64
	SX, SY           float64
	TX, TY           float64
	Trail            trail
	Speed            float64
	Angle            float64
	DistanceToTarget float64
	DistanceTraveled float64
	Brightness       float64
	TargetRadius     float64
}

// Spark is one particle of a burst.
type Spark struct {
	X, Y       float64
	Trail      trail
	Angle      float64
	Speed      float64
	Friction   float64
	Gravity    float64
	Hue        float64
	Brightness float64
	Alpha      float64
	Decay      float64
}

// Fireworks owns the live rockets and sparks and advances them one frame at a
// time. The zero value is not usable; create one with NewFireworks.
type Fireworks struct {
	rockets []Rocket
	sparks  []Spark
	rng     *rand.Rand
}

// NewFireworks creates an empty simulation. A nil rng uses a time-seeded
// generator.
func NewFireworks(rng *rand.Rand) *Fireworks {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Fireworks{
		rockets: make([]Rocket, 0, 16),
		sparks:  make([]Spark, 0, 256),
		rng:     rng,
	}
}

// Rockets returns the live rockets. The returned slice MUST NOT be mutated.
func (f *Fireworks) Rockets() []Rocket { return f.rockets }

// Sparks returns the live sparks. The returned slice MUST NOT be mutated.
func (f *Fireworks) Sparks() []Spark { return f.sparks }

// Launch adds a rocket travelling from (sx, sy) to (tx, ty).
func (f *Fireworks) Launch(sx, sy, tx, ty float64) {
	f.rockets = append(f.rockets, Rocket{
		X: sx, Y: sy,
		SX: sx, SY: sy,
		TX: tx, TY: ty,
		Trail:            newTrail(sx, sy),
		Speed:            rocketStartSpeed,
		Angle:            math.Atan2(ty-sy, tx-sx),
		DistanceToTarget: math.Hypot(sx-tx, sy-ty),
		Brightness:       f.random(rocketBrightness),
		TargetRadius:     rocketRingMin,
	})
}

// Burst adds BurstSize sparks at (x, y).
func (f *Fireworks) Burst(x, y float64) {
	for range BurstSize {
		f.sparks = append(f.sparks, Spark{
			X: x, Y: y,
			Trail:      newTrail(x, y),
			Angle:      f.rng.Float64() * 2 * math.Pi,
			Speed:      f.random(sparkSpeed),
			Friction:   sparkFriction,
			Gravity:    sparkGravity,
			Hue:        f.rng.Float64() * 360,
			Brightness: f.random(sparkBrightness),
			Alpha:      1,
			Decay:      f.random(sparkDecay),
		})
	}
}

// Frame runs one simulation step against s: fade the previous frame, then
// draw and update every rocket and every spark. Each collection is walked in
// reverse so an update may remove its own entry. Sparks born from rockets in
// this frame are drawn and updated in the same frame. A nil surface is a no-op.
func (f *Fireworks) Frame(s Surface) {
	if s == nil {
		return
	}
	w, h := s.Size()
	s.SetBlend(BlendErase)
	s.FillRect(Rect{0, 0, w, h}, Color{0, 0, 0, fadeAlpha})
	s.SetBlend(BlendAdd)

	for i := len(f.rockets) - 1; i >= 0; i-- {
		f.drawRocket(s, &f.rockets[i])
		f.updateRocket(i)
	}
	for i := len(f.sparks) - 1; i >= 0; i-- {
		drawSpark(s, &f.sparks[i])
		f.updateSpark(i)
	}
}

// updateRocket advances rocket i and removes it on arrival. Arrival is judged
// on the projected next position, so a rocket may pass its target by up to
// one step before bursting.
func (f *Fireworks) updateRocket(i int) {
	r := &f.rockets[i]
	r.Trail.push(Vec2{r.X, r.Y})

	if r.TargetRadius < rocketRingMax {
		r.TargetRadius += rocketRingStep
	} else {
		r.TargetRadius = rocketRingMin
	}

	r.Speed *= rocketAcceleration
	vx := math.Cos(r.Angle) * r.Speed
	vy := math.Sin(r.Angle) * r.Speed
	r.DistanceTraveled = math.Hypot(r.SX-(r.X+vx), r.SY-(r.Y+vy))

	if r.DistanceTraveled >= r.DistanceToTarget {
		tx, ty := r.TX, r.TY
		f.removeRocket(i)
		f.Burst(tx, ty)
		return
	}
	r.X += vx
	r.Y += vy
}

func (f *Fireworks) updateSpark(i int) {
	p := &f.sparks[i]
	p.Trail.push(Vec2{p.X, p.Y})
	p.Speed *= p.Friction
	p.X += math.Cos(p.Angle) * p.Speed
	p.Y += math.Sin(p.Angle)*p.Speed + p.Gravity
	p.Alpha -= p.Decay
	if p.Alpha <= p.Decay {
		f.removeSpark(i)
	}
}

// removeRocket swap-removes rocket i. The entry moved into i comes from a
// higher index, which the reverse walk has already visited.
func (f *Fireworks) removeRocket(i int) {
	last := len(f.rockets) - 1
	f.rockets[i] = f.rockets[last]
	f.rockets = f.rockets[:last]
}

func (f *Fireworks) removeSpark(i int) {
	last := len(f.sparks) - 1
	f.sparks[i] = f.sparks[last]
	f.sparks = f.sparks[:last]
}

// drawRocket strokes the trail and the pulsing target ring. The hue is picked
// on every call, which makes the rocket flicker.
func (f *Fireworks) drawRocket(s Surface, r *Rocket) {
	c := HSL(f.rng.Float64()*360, 100, r.Brightness)
	tail := r.Trail.oldest()
	s.StrokeLine(tail.X, tail.Y, r.X, r.Y, c)
	s.StrokeCircle(r.TX, r.TY, r.TargetRadius, c)
}

func drawSpark(s Surface, p *Spark) {
	tail := p.Trail.oldest()
	s.StrokeLine(tail.X, tail.Y, p.X, p.Y, HSLA(p.Hue, 100, p.Brightness, p.Alpha))
}

func (f *Fireworks) random(r Range) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + f.rng.Float64()*(r.Max-r.Min)
}
