package ecs

import (
	"testing"

	canvas "github.com/seanblatter/lettuce-click-main-main-sub000"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_Emit(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []canvas.EngineEvent
	EngineEventType.Subscribe(world, func(w donburi.World, e canvas.EngineEvent) {
		received = append(received, e)
	})

	sink.Emit(canvas.EngineEvent{
		Type:        canvas.EventPlacementUpdate,
		PlacementID: "p1",
		Transform:   canvas.Transform{X: 100, Y: 200, Scale: 1.5},
	})

	sink.Emit(canvas.EngineEvent{
		Type:        canvas.EventDragEnd,
		PlacementID: "p1",
		Point:       canvas.Vec2{X: 40, Y: 60},
		Deleted:     true,
	})

	// Events are queued — process them.
	EngineEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Type != canvas.EventPlacementUpdate || e0.PlacementID != "p1" {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Transform.X != 100 || e0.Transform.Y != 200 || e0.Transform.Scale != 1.5 {
		t.Errorf("event 0 transform: %+v", e0.Transform)
	}

	e1 := received[1]
	if e1.Type != canvas.EventDragEnd || !e1.Deleted {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink canvas.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_CanvasIntegration(t *testing.T) {
	world := donburi.NewWorld()

	c := canvas.NewCanvas()
	c.SetEventSink(NewDonburiSink(world))

	var got []canvas.EngineEvent
	EngineEventType.Subscribe(world, func(w donburi.World, e canvas.EngineEvent) {
		got = append(got, e)
	})

	p := canvas.NewEmojiPlacement("sparkles", 10, 20)
	c.AddPlacement(p)

	g := c.Gesture(p.ID)
	g.PanBegin()
	g.PanUpdate(5, 5)
	g.PanEnd()

	events.ProcessAllEvents(world)

	if len(got) == 0 {
		t.Fatal("expected events from the pan gesture")
	}
	var sawDragEnd bool
	for _, e := range got {
		if e.Type == canvas.EventDragEnd {
			sawDragEnd = true
			if e.PlacementID != p.ID {
				t.Errorf("drag end placement = %q, want %q", e.PlacementID, p.ID)
			}
		}
	}
	if !sawDragEnd {
		t.Error("expected an EventDragEnd in the stream")
	}
}
