package game

type EventType int

const (
	EventStateChanged EventType = iota
	EventFoodEaten
	EventSnakeDied
	EventGravityRotated
	EventHighScore
)

type Event struct {
	Type EventType
	X, Y float64
	Data int // generic payload (score, gravity index, new state)
}

type EventHandler func(Event)

// EventBus fans simulation events out to presentation collaborators
// (audio, effects). The core never depends on a handler being present.
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
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
