package tribute

import "testing"

func TestInjectClick(t *testing.T) {
	p := NewPage(800, 600, 60)
	btn := NewElement("btn", 0, 0, 100, 100)
	var clicked bool
	btn.OnClick = func(ctx ClickContext) {
		clicked = true
		if ctx.Element != btn {
			t.Error("expected btn element")
		}
	}
	p.Add(btn)

	p.InjectClick(50, 50)
	if len(p.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(p.injectQueue))
	}

	// Frame 1: press
	p.processInput()
	if len(p.injectQueue) != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", len(p.injectQueue))
	}
	if clicked {
		t.Error("click should not fire on press frame")
	}

	// Frame 2: release
	p.processInput()
	if len(p.injectQueue) != 0 {
		t.Fatalf("expected 0 remaining events after frame 2, got %d", len(p.injectQueue))
	}
	if !clicked {
		t.Error("click should fire on release frame")
	}
}

func TestInjectPressReleaseDifferentElements(t *testing.T) {
	p := NewPage(800, 600, 60)
	a := NewElement("a", 0, 0, 100, 100)
	b := NewElement("b", 200, 0, 100, 100)
	var clicks int
	a.OnClick = func(ClickContext) { clicks++ }
	b.OnClick = func(ClickContext) { clicks++ }
	p.Add(a)
	p.Add(b)

	p.InjectPress(50, 50)
	p.InjectRelease(250, 50)
	p.processInput()
	p.processInput()
	if clicks != 0 {
		t.Errorf("clicks = %d, want 0 when press and release land apart", clicks)
	}
}

func TestInjectScroll(t *testing.T) {
	p := NewPage(800, 600, 60)
	p.SetContentHeight(3000)

	p.InjectScroll(400)
	p.InjectScroll(-100)
	p.processInput()
	if p.Scroller().Target() != 400 {
		t.Errorf("Target = %v, want 400", p.Scroller().Target())
	}
	p.processInput()
	if p.Scroller().Target() != 300 {
		t.Errorf("Target = %v, want 300", p.Scroller().Target())
	}
}

func TestInjectClickAfterScroll(t *testing.T) {
	p := NewPage(800, 600, 60)
	p.SetContentHeight(3000)
	btn := NewElement("launch", 300, 1000, 200, 60)
	var clicked bool
	btn.OnClick = func(ctx ClickContext) {
		clicked = true
		if !near(ctx.GlobalY, 1030, 1e-9) || !near(ctx.LocalY, 30, 1e-9) {
			t.Errorf("GlobalY = %v LocalY = %v", ctx.GlobalY, ctx.LocalY)
		}
	}
	p.Add(btn)
	p.Scroller().JumpTo(800)

	p.InjectClick(400, 230)
	p.processInput()
	p.processInput()
	if !clicked {
		t.Error("click at screen y 230 should hit the element at page y 1030")
	}
}

func TestInjectQueueOrder(t *testing.T) {
	p := NewPage(800, 600, 60)
	p.InjectPress(1, 2)
	p.InjectScroll(5)
	p.InjectRelease(3, 4)

	want := []syntheticEvent{
		{screenX: 1, screenY: 2, pressed: true},
		{scroll: true, dy: 5},
		{screenX: 3, screenY: 4},
	}
	for i, w := range want {
		if p.injectQueue[i] != w {
			t.Errorf("event %d = %+v, want %+v", i, p.injectQueue[i], w)
		}
	}
}
