package sim

import "shooter/internal/vmath"

type EventType int

const (
	EventExplosion EventType = iota // an enemy or the player blew up
	EventSpark                      // a bullet was destroyed
	EventPlayerShot
	EventEnemyShot
	EventEnemySpawned
	EventLifeLost
	EventRespawn
	EventGameOver
	EventBiomeChanged
)

type Event struct {
	Type EventType
	Pos  vmath.Vec3
	Data int // generic payload, e.g. the actor kind for explosions
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

// Emit runs handlers synchronously. A nil bus drops the event.
func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
