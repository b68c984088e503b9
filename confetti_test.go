package tribute

import "testing"

func TestConfettiStartDropsInitialShower(t *testing.T) {
	c := NewConfetti(DefaultConfettiConfig, testRand())
	timers := NewTimers()
	c.Start(timers)
	if c.AliveCount() != confettiInitial {
		t.Fatalf("AliveCount = %d, want %d", c.AliveCount(), confettiInitial)
	}
	timers.Advance(confettiIntervalMs * 3)
	if c.AliveCount() != confettiInitial+3 {
		t.Errorf("AliveCount = %d, want %d", c.AliveCount(), confettiInitial+3)
	}
	c.Stop()
	timers.Advance(confettiIntervalMs * 10)
	if c.AliveCount() != confettiInitial+3 {
		t.Errorf("AliveCount = %d after stop, want %d", c.AliveCount(), confettiInitial+3)
	}
}

func TestConfettiBurstIsStaggered(t *testing.T) {
	c := NewConfetti(DefaultConfettiConfig, testRand())
	timers := NewTimers()
	c.Burst(timers)
	timers.Advance(0)
	if c.AliveCount() != 1 {
		t.Errorf("AliveCount = %d right after burst, want 1", c.AliveCount())
	}
	timers.Advance(confettiBurstSpacing * confettiBurstCount)
	if c.AliveCount() != confettiBurstCount {
		t.Errorf("AliveCount = %d, want %d", c.AliveCount(), confettiBurstCount)
	}
}

func TestConfettiPoolCap(t *testing.T) {
	cfg := DefaultConfettiConfig
	cfg.MaxPieces = 10
	c := NewConfetti(cfg, testRand())
	for range 25 {
		c.Spawn()
	}
	if c.AliveCount() != 10 {
		t.Errorf("AliveCount = %d, want 10", c.AliveCount())
	}
}

func TestConfettiPiecesExpire(t *testing.T) {
	cfg := DefaultConfettiConfig
	cfg.Delay = Range{0, 0}
	cfg.Duration = Range{1, 1}
	c := NewConfetti(cfg, testRand())
	for range 5 {
		c.Spawn()
	}
	c.Update(0.5)
	if c.AliveCount() != 5 {
		t.Fatalf("AliveCount = %d mid-fall, want 5", c.AliveCount())
	}
	c.Update(0.6)
	if c.AliveCount() != 0 {
		t.Errorf("AliveCount = %d, want 0", c.AliveCount())
	}
}

func TestConfettiPiecesStayInRange(t *testing.T) {
	c := NewConfetti(DefaultConfettiConfig, testRand())
	for range 200 {
		c.Spawn()
	}
	for i := 0; i < c.AliveCount(); i++ {
		p := c.pieces[i]
		if p.x < 0 || p.x >= 1 {
			t.Fatalf("piece %d x = %v", i, p.x)
		}
		if p.size < 5 || p.size > 15 {
			t.Fatalf("piece %d size = %v", i, p.size)
		}
		if p.duration < 3 || p.duration > 7 {
			t.Fatalf("piece %d duration = %v", i, p.duration)
		}
		if p.delay < 0 || p.delay > 2 {
			t.Fatalf("piece %d delay = %v", i, p.delay)
		}
	}
}

func TestConfettiDefaults(t *testing.T) {
	c := NewConfetti(ConfettiConfig{}, nil)
	c.Spawn()
	if len(c.pieces) != 128 {
		t.Errorf("pool = %d, want 128", len(c.pieces))
	}
	if c.pieces[0].color != ColorWhite {
		t.Errorf("color = %v, want white", c.pieces[0].color)
	}
}

func TestConfettiPaletteParsed(t *testing.T) {
	if len(DefaultConfettiPalette) != 5 {
		t.Fatalf("palette size = %d", len(DefaultConfettiPalette))
	}
	gold := DefaultConfettiPalette[0]
	if !colorNear(gold, Color{0xd4 / 255.0, 0xaf / 255.0, 0x37 / 255.0, 1}) {
		t.Errorf("gold = %v", gold)
	}
}

func BenchmarkConfettiUpdate(b *testing.B) {
	c := NewConfetti(DefaultConfettiConfig, testRand())
	for i := 0; i < b.N; i++ {
		for c.AliveCount() < 400 {
			c.Spawn()
		}
		c.Update(1.0 / 60)
	}
}
