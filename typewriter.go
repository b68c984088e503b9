package tribute

import "unicode/utf8"

const (
	defaultTypeIntervalMs = 60
	cursorBlinkMs         = 530
	typeCursor            = "|"
)

// Typewriter reveals a string one rune at a time on an element, with a
// blinking cursor while typing.
type Typewriter struct {
	target     *Element
	timers     *Timers
	full       string
	runes      int
	shown      int
	cursorOn   bool
	IntervalMs float64
	// OnDone runs once the full string is shown.
	OnDone func()

	typing TimerHandle
	blink  TimerHandle
}

// NewTypewriter prepares content for target. Nothing is shown until Start.
func NewTypewriter(target *Element, timers *Timers, content string) *Typewriter {
	return &Typewriter{
		target:     target,
		timers:     timers,
		full:       content,
		runes:      utf8.RuneCountInString(content),
		IntervalMs: defaultTypeIntervalMs,
	}
}

// Start clears the target and begins typing. Calling Start again restarts.
func (tw *Typewriter) Start() {
	if tw.target == nil || tw.timers == nil {
		return
	}
	tw.Stop()
	tw.shown = 0
	tw.cursorOn = true
	tw.render()
	if tw.runes == 0 {
		tw.finish()
		return
	}
	tw.typing = tw.timers.Every(tw.IntervalMs, tw.step)
	tw.blink = tw.timers.Every(cursorBlinkMs, func() {
		tw.cursorOn = !tw.cursorOn
		tw.render()
	})
}

// Restart clears the target and types the string again from the start.
func (tw *Typewriter) Restart() {
	tw.Start()
}

// Stop halts typing and leaves the text as it is.
func (tw *Typewriter) Stop() {
	tw.typing.Cancel()
	tw.blink.Cancel()
	tw.typing = TimerHandle{}
	tw.blink = TimerHandle{}
}

// Done reports whether the whole string is shown.
func (tw *Typewriter) Done() bool {
	return tw.shown >= tw.runes
}

// Shown returns the number of runes currently revealed.
func (tw *Typewriter) Shown() int {
	return tw.shown
}

func (tw *Typewriter) step() {
	tw.shown++
	if tw.shown >= tw.runes {
		tw.finish()
		return
	}
	tw.render()
}

func (tw *Typewriter) finish() {
	tw.shown = tw.runes
	tw.Stop()
	tw.cursorOn = false
	tw.render()
	if tw.OnDone != nil {
		tw.OnDone()
	}
}

func (tw *Typewriter) render() {
	s := prefixRunes(tw.full, tw.shown)
	if tw.cursorOn {
		s += typeCursor
	}
	tw.target.SetText(s)
}

// prefixRunes returns the first n runes of s.
func prefixRunes(s string, n int) string {
	i := 0
	for n > 0 && i < len(s) {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		n--
	}
	return s[:i]
}
