package tribute

import "github.com/tanema/gween/ease"

// Track is the background music a MusicToggle controls.
type Track interface {
	Play() error
	Pause()
}

const (
	musicPulseScale = 1.1
	musicPulseHalf  = 0.5
	musicSettle     = 0.3
)

// MusicToggle flips background music on and off from a fixed button. While
// playing, the button pulses; when stopped, it eases back to its normal size.
type MusicToggle struct {
	button  *Element
	track   Track
	page    *Page
	playing bool
	pulse   *Pulse
	settle  *TweenGroup

	PlayLabel  string
	PauseLabel string
}

// NewMusicToggle wires button to toggle track. A nil track still flips the
// button state.
func NewMusicToggle(p *Page, button *Element, track Track) *MusicToggle {
	m := &MusicToggle{
		button:     button,
		track:      track,
		page:       p,
		PlayLabel:  "Play Music",
		PauseLabel: "Pause Music",
	}
	button.SetText(m.PlayLabel)
	button.OnClick = func(ClickContext) { m.Toggle() }
	return m
}

// Playing reports whether music is on.
func (m *MusicToggle) Playing() bool {
	return m.playing
}

// Toggle starts or stops the music. A failed Play is logged and the toggle
// still switches state.
func (m *MusicToggle) Toggle() {
	m.playing = !m.playing
	if m.playing {
		m.start()
	} else {
		m.stop()
	}
}

func (m *MusicToggle) start() {
	if m.track != nil {
		if err := m.track.Play(); err != nil {
			debugf("audio play failed: %v", err)
		}
	}
	m.button.SetText(m.PauseLabel)
	if m.settle != nil {
		m.settle.Done = true
		m.settle = nil
	}
	m.pulse = NewPulse(m.button, PropScale, 1, musicPulseScale, musicPulseHalf, ease.InOutSine)
	m.page.Animate(m.pulse)
}

func (m *MusicToggle) stop() {
	if m.track != nil {
		m.track.Pause()
	}
	m.button.SetText(m.PlayLabel)
	if m.pulse != nil {
		m.pulse.Stop()
		m.pulse = nil
	}
	m.settle = NewTweenGroup(m.button, musicSettle, ease.OutQuad).To(PropScale, 1)
	m.page.Animate(m.settle)
}
