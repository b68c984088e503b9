package ecs

import (
	"testing"

	"github.com/phanxgames/tribute"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []tribute.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e tribute.InteractionEvent) {
		received = append(received, e)
	})

	store.EmitEvent(tribute.InteractionEvent{
		Type:      tribute.EventPointerDown,
		ElementID: 42,
		Name:      "fireworks-button",
		GlobalX:   100,
		GlobalY:   200,
	})
	store.EmitEvent(tribute.InteractionEvent{
		Type:        tribute.EventScroll,
		ScrollDelta: 60,
		ScrollY:     660,
	})

	// Events are queued until processed.
	InteractionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != tribute.EventPointerDown || e0.ElementID != 42 || e0.Name != "fireworks-button" {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.GlobalX != 100 || e0.GlobalY != 200 {
		t.Errorf("event 0 position: (%v,%v)", e0.GlobalX, e0.GlobalY)
	}
	e1 := received[1]
	if e1.Type != tribute.EventScroll || e1.ScrollDelta != 60 || e1.ScrollY != 660 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	world := donburi.NewWorld()
	var store tribute.EntityStore = NewDonburiStore(world)
	_ = store
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	InteractionEventType.Subscribe(world, func(w donburi.World, e tribute.InteractionEvent) {
		count1++
	})
	InteractionEventType.Subscribe(world, func(w donburi.World, e tribute.InteractionEvent) {
		count2++
	})

	store.EmitEvent(tribute.InteractionEvent{Type: tribute.EventClick})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestTrackClicks(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	TrackClicks(world)

	click := func(id uint32, name string) {
		store.EmitEvent(tribute.InteractionEvent{Type: tribute.EventClick, ElementID: id, Name: name})
	}
	click(1, "music-toggle")
	click(2, "fireworks-button")
	click(1, "music-toggle")
	store.EmitEvent(tribute.InteractionEvent{Type: tribute.EventPointerDown, ElementID: 1, Name: "music-toggle"})
	events.ProcessAllEvents(world)

	if got := Clicks(world, "music-toggle"); got != 2 {
		t.Errorf("music-toggle clicks = %d, want 2", got)
	}
	if got := Clicks(world, "fireworks-button"); got != 1 {
		t.Errorf("fireworks-button clicks = %d, want 1", got)
	}
	if got := Clicks(world, "hero"); got != 0 {
		t.Errorf("hero clicks = %d, want 0", got)
	}
	if n := clickStatsQuery.Count(world); n != 2 {
		t.Errorf("ClickStats entities = %d, want 2", n)
	}
}

func TestPageClickReachesWorld(t *testing.T) {
	world := donburi.NewWorld()
	TrackClicks(world)

	page := tribute.NewPage(800, 600, 60)
	page.SetEntityStore(NewDonburiStore(world))
	btn := tribute.NewElement("btn", 100, 100, 80, 40)
	btn.OnClick = func(tribute.ClickContext) {}
	page.Add(btn)

	page.InjectClick(120, 110)
	page.Update()
	page.Update()
	events.ProcessAllEvents(world)

	if got := Clicks(world, "btn"); got != 1 {
		t.Errorf("btn clicks = %d, want 1", got)
	}
}
