package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventContact       = "contact"
	EventCoinCollected = "coin_collected"
)

// ContactEvent reports that Entity's footprint touched Other during this
// tick's sweep. Other may or may not block movement.
type ContactEvent struct {
	Entity Entity
	Other  Entity
}

// CoinCollectedEvent is emitted once per destroyed coin.
type CoinCollectedEvent struct {
	Collector Entity
	Coin      Entity
	Total     uint32
}

// EventQueue is a simple FIFO queue that lives for one tick.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Of returns the queued events of one type in push order without removing them.
func (q *EventQueue) Of(typ string) []Event {
	if q == nil {
		return nil
	}
	var out []Event
	for _, evt := range q.items {
		if evt.Type == typ {
			out = append(out, evt)
		}
	}
	return out
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
