// Package ecs provides ECS adapters for tribute.
package ecs

import (
	"github.com/phanxgames/tribute"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// InteractionEventType is the Donburi event type for page interaction events.
// Subscribe to this in your ECS systems to receive pointer, click and scroll events.
var InteractionEventType = events.NewEventType[tribute.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) tribute.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event tribute.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// ClickStats counts clicks on one page element.
type ClickStats struct {
	ElementID uint32
	Name      string
	Clicks    int
}

// ClickStatsComponent holds one ClickStats per clicked element.
var ClickStatsComponent = donburi.NewComponentType[ClickStats]()

var clickStatsQuery = donburi.NewQuery(filter.Contains(ClickStatsComponent))

// TrackClicks subscribes a system that keeps a ClickStats entity for every
// element that has been clicked. Counts update when the world's events are
// processed.
func TrackClicks(world donburi.World) {
	InteractionEventType.Subscribe(world, func(w donburi.World, e tribute.InteractionEvent) {
		if e.Type != tribute.EventClick {
			return
		}
		if entry := findStats(w, e.ElementID); entry != nil {
			ClickStatsComponent.Get(entry).Clicks++
			return
		}
		entry := w.Entry(w.Create(ClickStatsComponent))
		ClickStatsComponent.SetValue(entry, ClickStats{ElementID: e.ElementID, Name: e.Name, Clicks: 1})
	})
}

// Clicks returns how many clicks the named element has received.
func Clicks(world donburi.World, name string) int {
	total := 0
	clickStatsQuery.Each(world, func(entry *donburi.Entry) {
		if s := ClickStatsComponent.Get(entry); s.Name == name {
			total += s.Clicks
		}
	})
	return total
}

func findStats(world donburi.World, id uint32) *donburi.Entry {
	var found *donburi.Entry
	clickStatsQuery.Each(world, func(entry *donburi.Entry) {
		if found == nil && ClickStatsComponent.Get(entry).ElementID == id {
			found = entry
		}
	})
	return found
}
