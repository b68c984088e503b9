package audio

import (
	"errors"
	"testing"
	"testing/fstest"
)

func TestSetVolumeClamps(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.3, 0.3},
		{-1, 0},
		{2, 1},
	}
	p := &Player{volume: defaultVolume}
	for _, tt := range tests {
		p.SetVolume(tt.in)
		if p.Volume() != tt.want {
			t.Errorf("SetVolume(%v): Volume = %v, want %v", tt.in, p.Volume(), tt.want)
		}
	}
}

func TestPauseWithoutDevice(t *testing.T) {
	p := &Player{volume: defaultVolume, playing: true}
	p.Pause()
	if p.Playing() {
		t.Error("Pause should clear playing")
	}
}

func TestPlayAfterClose(t *testing.T) {
	p := &Player{volume: defaultVolume}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
	if err := p.Play(); !errors.Is(err, ErrClosed) {
		t.Errorf("Play after Close = %v, want ErrClosed", err)
	}
	if err := p.Toggle(); !errors.Is(err, ErrClosed) {
		t.Errorf("Toggle after Close = %v, want ErrClosed", err)
	}
}

func TestOpenErrors(t *testing.T) {
	fsys := fstest.MapFS{"bad.mp3": {Data: []byte("not audio")}}
	if _, err := Open(fsys, "missing.mp3"); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Open(fsys, "bad.mp3"); err == nil {
		t.Error("expected error for undecodable file")
	}
}
