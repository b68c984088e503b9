package tribute

import "testing"

func TestTypewriterRevealsOneRunePerInterval(t *testing.T) {
	timers := NewTimers()
	e := NewElement("tagline", 0, 0, 100, 20)
	tw := NewTypewriter(e, timers, "héllo")
	tw.Start()

	if e.Text != "|" {
		t.Errorf("initial text = %q, want cursor only", e.Text)
	}
	timers.Advance(60)
	if tw.Shown() != 1 || e.Text != "h|" {
		t.Errorf("after 60ms: shown %d text %q", tw.Shown(), e.Text)
	}
	timers.Advance(60)
	if e.Text != "hé|" {
		t.Errorf("after 120ms: text %q, want %q", e.Text, "hé|")
	}
}

func TestTypewriterFinishes(t *testing.T) {
	timers := NewTimers()
	e := NewElement("tagline", 0, 0, 100, 20)
	tw := NewTypewriter(e, timers, "hey")
	done := 0
	tw.OnDone = func() { done++ }
	tw.Start()

	timers.Advance(180)
	if !tw.Done() || e.Text != "hey" {
		t.Errorf("done %v text %q, want full text without cursor", tw.Done(), e.Text)
	}
	if done != 1 {
		t.Errorf("OnDone ran %d times, want 1", done)
	}
	if timers.Pending() != 0 {
		t.Errorf("Pending = %d, want 0 after finishing", timers.Pending())
	}
}

func TestTypewriterCursorBlinks(t *testing.T) {
	timers := NewTimers()
	e := NewElement("tagline", 0, 0, 100, 20)
	tw := NewTypewriter(e, timers, "a long enough line to outlast one blink")
	tw.IntervalMs = 1000
	tw.Start()

	timers.Advance(530)
	if e.Text != "" {
		t.Errorf("text after first blink = %q, want cursor hidden", e.Text)
	}
	timers.Advance(530)
	if e.Text != "a|" {
		t.Errorf("text after second blink = %q, want %q", e.Text, "a|")
	}
}

func TestTypewriterEmptyString(t *testing.T) {
	timers := NewTimers()
	e := NewElement("tagline", 0, 0, 100, 20)
	tw := NewTypewriter(e, timers, "")
	called := false
	tw.OnDone = func() { called = true }
	tw.Start()
	if !tw.Done() || !called || e.Text != "" {
		t.Errorf("empty string: done %v called %v text %q", tw.Done(), called, e.Text)
	}
}

func TestTypewriterRestart(t *testing.T) {
	timers := NewTimers()
	e := NewElement("tagline", 0, 0, 100, 20)
	tw := NewTypewriter(e, timers, "abc")
	tw.Start()
	timers.Advance(120)
	tw.Restart()
	if tw.Shown() != 0 || e.Text != "|" {
		t.Errorf("after restart: shown %d text %q", tw.Shown(), e.Text)
	}
	if timers.Pending() != 2 {
		t.Errorf("Pending = %d, want 2 (typing and blink)", timers.Pending())
	}
}

func TestTypewriterStopKeepsText(t *testing.T) {
	timers := NewTimers()
	e := NewElement("tagline", 0, 0, 100, 20)
	tw := NewTypewriter(e, timers, "abc")
	tw.Start()
	timers.Advance(60)
	tw.Stop()
	timers.Advance(1000)
	if tw.Shown() != 1 {
		t.Errorf("Shown = %d, want 1 after stop", tw.Shown())
	}
}

func TestPrefixRunes(t *testing.T) {
	tests := []struct {
		s    string
		n    int
		want string
	}{
		{"hello", 0, ""},
		{"hello", 2, "he"},
		{"héllo", 2, "hé"},
		{"ab", 5, "ab"},
	}
	for _, tt := range tests {
		if got := prefixRunes(tt.s, tt.n); got != tt.want {
			t.Errorf("prefixRunes(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.want)
		}
	}
}
