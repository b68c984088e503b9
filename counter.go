package tribute

import (
	"math"
	"strconv"
)

const (
	counterSteps      = 50
	counterDurationMs = 2000
)

// Counter counts an element's text up from zero to a target in a fixed
// number of increments, showing whole numbers.
type Counter struct {
	target  *Element
	timers  *Timers
	goal    int
	current float64
	running TimerHandle
	started bool
	done    bool
}

// NewCounter prepares a counter that shows "0" until started.
func NewCounter(target *Element, timers *Timers, goal int) *Counter {
	c := &Counter{target: target, timers: timers, goal: goal}
	if target != nil {
		target.SetText("0")
	}
	return c
}

// Start begins counting. Later calls are ignored.
func (c *Counter) Start() {
	if c.started || c.target == nil || c.timers == nil {
		return
	}
	c.started = true
	increment := float64(c.goal) / counterSteps
	c.running = c.timers.Every(counterDurationMs/counterSteps, func() {
		c.current += increment
		if c.current >= float64(c.goal) {
			c.target.SetText(strconv.Itoa(c.goal))
			c.running.Cancel()
			c.done = true
			return
		}
		c.target.SetText(strconv.Itoa(int(math.Floor(c.current))))
	})
}

// Done reports whether the target value is shown.
func (c *Counter) Done() bool {
	return c.done
}
