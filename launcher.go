package tribute

// Labeler is a control whose caption can change.
type Labeler interface {
	SetText(text string)
}

// LauncherState is the spawn state of a Launcher.
type LauncherState uint8

const (
	LauncherIdle   LauncherState = iota // no rockets are being launched
	LauncherActive                      // the spawn loop is running
)

// LauncherConfig tunes a Launcher. Zero fields take the defaults below.
type LauncherConfig struct {
	// ArmedLabel is the control caption while idle.
	ArmedLabel string
	// ActiveLabel is the control caption while launching.
	ActiveLabel string
	// DurationMs is how long one activation keeps launching.
	DurationMs float64
	// Delay is the range of milliseconds between launches.
	Delay Range
}

// DefaultLauncherConfig matches the page's fireworks button.
var DefaultLauncherConfig = LauncherConfig{
	ArmedLabel:  "Launch Fireworks",
	ActiveLabel: "Fireworks Active!",
	DurationMs:  15000,
	Delay:       Range{200, 500},
}

// Launcher is the fireworks spawn controller. Activate starts a loop that
// launches rockets from the bottom edge of the surface at random intervals;
// a fixed-duration timer turns it off again.
type Launcher struct {
	fw      *Fireworks
	surface Surface
	control Labeler
	timers  *Timers
	cfg     LauncherConfig

	state    LauncherState
	spawn    TimerHandle
	deadline TimerHandle
	launched int
}

// NewLauncher wires a launcher to its simulation, surface, control and timer
// queue. The control shows the armed caption immediately. If any collaborator
// is missing the launcher never activates.
func NewLauncher(fw *Fireworks, surface Surface, control Labeler, timers *Timers, cfg LauncherConfig) *Launcher {
	def := DefaultLauncherConfig
	if cfg.ArmedLabel == "" {
		cfg.ArmedLabel = def.ArmedLabel
	}
	if cfg.ActiveLabel == "" {
		cfg.ActiveLabel = def.ActiveLabel
	}
	if cfg.DurationMs <= 0 {
		cfg.DurationMs = def.DurationMs
	}
	if cfg.Delay.Max <= 0 {
		cfg.Delay = def.Delay
	}
	l := &Launcher{fw: fw, surface: surface, control: control, timers: timers, cfg: cfg}
	if control != nil {
		control.SetText(cfg.ArmedLabel)
	}
	return l
}

// State returns the current spawn state.
func (l *Launcher) State() LauncherState {
	return l.state
}

// Launched returns how many rockets this launcher has created.
func (l *Launcher) Launched() int {
	return l.launched
}

// ready reports whether every collaborator is present.
func (l *Launcher) ready() bool {
	return l.fw != nil && l.surface != nil && l.control != nil && l.timers != nil
}

// Activate moves Idle to Active and reports whether it did. It is ignored
// while already active or when the launcher is not fully wired.
func (l *Launcher) Activate() bool {
	if !l.ready() || l.state == LauncherActive {
		return false
	}
	l.state = LauncherActive
	l.control.SetText(l.cfg.ActiveLabel)
	l.deadline = l.timers.After(l.cfg.DurationMs, l.Deactivate)
	l.tick()
	return true
}

// Deactivate moves Active to Idle, restores the armed caption and cancels the
// pending launch. Calling it while idle changes nothing.
func (l *Launcher) Deactivate() {
	if l.state != LauncherActive {
		return
	}
	l.state = LauncherIdle
	l.spawn.Cancel()
	l.deadline.Cancel()
	l.spawn = TimerHandle{}
	l.deadline = TimerHandle{}
	l.control.SetText(l.cfg.ArmedLabel)
}

// tick launches one rocket straight up from a random point on the bottom edge
// to a random height in the upper half, then schedules the next tick.
func (l *Launcher) tick() {
	if l.state != LauncherActive {
		return
	}
	w, h := l.surface.Size()
	x := l.fw.rng.Float64() * w
	ty := l.fw.rng.Float64() * h * 0.5
	l.fw.Launch(x, h, x, ty)
	l.launched++
	l.spawn = l.timers.After(l.fw.random(l.cfg.Delay), l.tick)
}
