package tribute

// TimerHandle identifies a scheduled callback. The zero value refers to no
// timer; cancelling it is a no-op.
type TimerHandle struct {
	id     uint32
	timers *Timers
}

// Cancel removes the timer if it is still pending. Safe to call repeatedly.
func (h TimerHandle) Cancel() {
	if h.timers == nil || h.id == 0 {
		return
	}
	h.timers.cancel(h.id)
}

type timer struct {
	id       uint32
	due      float64 // milliseconds on the Timers clock
	interval float64 // > 0 for repeating timers
	seq      uint64  // insertion order, breaks ties between equal due times
	fn       func()
}

// Timers is a single-threaded millisecond timer queue: the page's stand-in for
// setTimeout and setInterval. Callbacks run from Advance, in due order, on the
// caller's goroutine. Callbacks may schedule or cancel other timers.
type Timers struct {
	now     float64
	pending []timer
	nextID  uint32
	nextSeq uint64
}

// NewTimers creates an empty queue with its clock at zero.
func NewTimers() *Timers {
	return &Timers{pending: make([]timer, 0, 32)}
}

// Now returns the current clock in milliseconds.
func (t *Timers) Now() float64 {
	return t.now
}

// Pending returns the number of scheduled timers.
func (t *Timers) Pending() int {
	return len(t.pending)
}

// After schedules fn to run once, delayMs milliseconds from now.
func (t *Timers) After(delayMs float64, fn func()) TimerHandle {
	return t.schedule(delayMs, 0, fn)
}

// Every schedules fn to run every intervalMs milliseconds until cancelled.
// Intervals below one millisecond are raised to one.
func (t *Timers) Every(intervalMs float64, fn func()) TimerHandle {
	if intervalMs < 1 {
		intervalMs = 1
	}
	return t.schedule(intervalMs, intervalMs, fn)
}

func (t *Timers) schedule(delayMs, interval float64, fn func()) TimerHandle {
	if delayMs < 0 {
		delayMs = 0
	}
	t.nextID++
	t.nextSeq++
	t.pending = append(t.pending, timer{
		id:       t.nextID,
		due:      t.now + delayMs,
		interval: interval,
		seq:      t.nextSeq,
		fn:       fn,
	})
	return TimerHandle{id: t.nextID, timers: t}
}

func (t *Timers) cancel(id uint32) {
	for i := range t.pending {
		if t.pending[i].id == id {
			t.pending = append(t.pending[:i], t.pending[i+1:]...)
			return
		}
	}
}

// Advance moves the clock forward by dtMs and runs every timer that falls due,
// earliest first. A timer scheduled from inside a callback runs in the same
// Advance call if it also falls due within the window.
func (t *Timers) Advance(dtMs float64) {
	end := t.now + dtMs
	for {
		i := t.earliest()
		if i < 0 || t.pending[i].due > end {
			break
		}
		tm := t.pending[i]
		t.now = tm.due
		if tm.interval > 0 {
			t.nextSeq++
			t.pending[i].due += tm.interval
			t.pending[i].seq = t.nextSeq
		} else {
			t.pending = append(t.pending[:i], t.pending[i+1:]...)
		}
		tm.fn()
	}
	t.now = end
}

// earliest returns the index of the next timer to fire, or -1.
func (t *Timers) earliest() int {
	best := -1
	for i := range t.pending {
		if best < 0 ||
			t.pending[i].due < t.pending[best].due ||
			(t.pending[i].due == t.pending[best].due && t.pending[i].seq < t.pending[best].seq) {
			best = i
		}
	}
	return best
}
