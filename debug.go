package tribute

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and simulation counts.
// Only populated when Page.debug is true.
type debugStats struct {
	updateTime    time.Duration
	drawTime      time.Duration
	rocketCount   int
	sparkCount    int
	confettiCount int
	timerCount    int
	animatorCount int
}

// debugf prints one diagnostic line to stderr.
func debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[tribute] "+format+"\n", args...)
}

// collectStats fills the counts of stats from the page's current state.
func (p *Page) collectStats(stats *debugStats) {
	if p.fireworks != nil {
		stats.rocketCount = len(p.fireworks.Rockets())
		stats.sparkCount = len(p.fireworks.Sparks())
	}
	if p.confetti != nil {
		stats.confettiCount = p.confetti.AliveCount()
	}
	stats.timerCount = p.timers.Pending()
	stats.animatorCount = len(p.animators)
}

// debugLog prints timing and counts to stderr once per second of ticks.
func (p *Page) debugLog(stats debugStats) {
	if !p.debug {
		return
	}
	p.debugFrame++
	if p.debugFrame%p.tps != 0 {
		return
	}
	debugf("update: %v | draw: %v | scroll: %.0f/%.0f",
		stats.updateTime, stats.drawTime, p.scroller.Offset(), p.scroller.Limit())
	debugf("rockets: %d | sparks: %d | confetti: %d | timers: %d | animators: %d",
		stats.rocketCount, stats.sparkCount, stats.confettiCount, stats.timerCount, stats.animatorCount)
}

// debugCheckTreeDepth warns on stderr if adding e made the tree deeper than
// the threshold.
const debugMaxTreeDepth = 16

func debugCheckTreeDepth(e *Element) {
	depth := subtreeDepth(e)
	for p := e.Parent; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugf("warning: tree depth %d exceeds %d (element %q)", depth, debugMaxTreeDepth, e.Name)
	}
}

// subtreeDepth counts e and its deepest chain of descendants.
func subtreeDepth(e *Element) int {
	deepest := 0
	for _, c := range e.children {
		deepest = max(deepest, subtreeDepth(c))
	}
	return deepest + 1
}

// debugCheckChildCount warns on stderr if an element has more than 200 children.
const debugMaxChildCount = 200

func debugCheckChildCount(e *Element) {
	if len(e.children) > debugMaxChildCount {
		debugf("warning: element %q has %d children (threshold %d)",
			e.Name, len(e.children), debugMaxChildCount)
	}
}
