package game

import "snake3d/internal/anim"

type EventType int

const (
	EventAteApple EventType = iota
	EventBonusTaken
	EventBonusExpired
	EventGrew
	EventTurned
	EventDied
	EventLevelComplete
)

type Event struct {
	Type EventType
	Cell anim.GridPoint
	Data int // Generic payload (e.g. points for a bonus, new length for growth).
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
