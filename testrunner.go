package tribute

import (
	"encoding/json"
	"fmt"
)

// Script actions.
const (
	actionClick      = "click"      // press and release at (x, y)
	actionScroll     = "scroll"     // scroll by dy
	actionScrollTo   = "scrollto"   // scroll so the page offset becomes y
	actionSettle     = "settle"     // wait until the scroll spring comes to rest
	actionWait       = "wait"       // idle for frames ticks
	actionScreenshot = "screenshot" // capture the next drawn frame as label
)

// maxSettleFrames bounds a settle step so a script cannot hang.
const maxSettleFrames = 600

// scriptStep is a single action in a test script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// TestRunner plays a scripted sequence of clicks, scrolls, waits and
// screenshots across frames for automated visual checks. Attach to a Page
// via SetTestRunner.
type TestRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	settling  int
	done      bool
}

// LoadTestScript parses a JSON test script of the form
//
//	{"steps": [{"action": "scrollto", "y": 2400}, {"action": "settle"},
//	           {"action": "click", "x": 640, "y": 717}, {"action": "wait", "frames": 90},
//	           {"action": "screenshot", "label": "fireworks"}]}
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script struct {
		Steps []scriptStep `json:"steps"`
	}
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("tribute: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("tribute: parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case actionClick, actionScroll, actionScrollTo, actionSettle, actionWait, actionScreenshot:
		default:
			return nil, fmt.Errorf("tribute: parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the page. Its step runs at the start
// of every Page.Update.
func (p *Page) SetTestRunner(runner *TestRunner) {
	p.testRunner = runner
}

// Done reports whether every step has run and its input has been consumed.
func (r *TestRunner) Done() bool {
	return r.done
}

// busy reports whether the current step still holds the runner this frame.
func (r *TestRunner) busy(p *Page) bool {
	if len(p.injectQueue) > 0 {
		return true
	}
	if r.waitCount > 0 {
		r.waitCount--
		return true
	}
	if r.settling > 0 {
		r.settling--
		if r.settling > 0 && !p.scroller.Settled() {
			return true
		}
		r.settling = 0
	}
	return false
}

// step advances the runner by one frame.
func (r *TestRunner) step(p *Page) {
	if r.done || r.busy(p) {
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	switch st.Action {
	case actionScreenshot:
		p.Screenshot(st.Label)
	case actionClick:
		p.InjectClick(st.X, st.Y)
	case actionScroll:
		p.InjectScroll(st.DY)
	case actionScrollTo:
		p.InjectScroll(st.Y - p.scroller.Target())
	case actionSettle:
		r.settling = maxSettleFrames
	case actionWait:
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.settling == 0 && len(p.injectQueue) == 0 {
		r.done = true
	}
}
