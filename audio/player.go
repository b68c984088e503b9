// Package audio plays looping MP3 background music through oto.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/go-mp3"
)

const (
	channelCount  = 2
	defaultVolume = 0.5
)

var (
	globalOtoCtx *oto.Context
	otoOnce      sync.Once
	otoInitErr   error
)

// initOto creates the process-wide oto context on first use. Every Player
// shares it, so the first decoder's sample rate wins.
func initOto(sampleRate int) (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channelCount,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		globalOtoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-ready
		}
	})
	return globalOtoCtx, otoInitErr
}

// Player loops one MP3 stream. The audio device is opened on the first Play,
// so a Player can be created where no device exists.
type Player struct {
	decoder   *mp3.Decoder
	loop      *loopReader
	otoPlayer *oto.Player
	volume    float64
	playing   bool
	closed    bool
	mu        sync.Mutex
}

// Open reads and decodes an MP3 file from fsys. The file is held in memory.
func Open(fsys fs.FS, name string) (*Player, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("audio: read %s: %w", name, err)
	}
	p, err := New(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("audio: %s: %w", name, err)
	}
	return p, nil
}

// New creates a looping player over MP3 data.
func New(r io.ReadSeeker) (*Player, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("decode mp3: %w", err)
	}
	return &Player{
		decoder: dec,
		loop:    &loopReader{src: dec},
		volume:  defaultVolume,
	}, nil
}

// ErrClosed is returned by Play after Close.
var ErrClosed = errors.New("audio: player closed")

// Play starts or resumes playback.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}
	if p.otoPlayer == nil {
		ctx, err := initOto(p.decoder.SampleRate())
		if err != nil {
			return fmt.Errorf("audio: open device: %w", err)
		}
		p.otoPlayer = ctx.NewPlayer(p.loop)
		p.otoPlayer.SetVolume(p.volume)
	}
	p.otoPlayer.Play()
	p.playing = true
	return nil
}

// Pause stops playback at the current position.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.otoPlayer != nil {
		p.otoPlayer.Pause()
	}
	p.playing = false
}

// Toggle switches between playing and paused.
func (p *Player) Toggle() error {
	if p.Playing() {
		p.Pause()
		return nil
	}
	return p.Play()
}

// Playing reports whether playback is running.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Volume returns the current volume in [0, 1].
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// SetVolume sets the volume, clamped to [0, 1].
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.volume = min(max(v, 0), 1)
	if p.otoPlayer != nil {
		p.otoPlayer.SetVolume(p.volume)
	}
}

// Close stops playback. The player cannot be restarted.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	p.playing = false
	if p.otoPlayer != nil {
		p.otoPlayer.Pause()
		p.otoPlayer = nil
	}
	return nil
}
