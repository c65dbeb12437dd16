package events

import "sync"

// Event is a generic type placeholder for any event type
type Event any

// Subscriber is a channel that transports events of type T
type Subscriber[T Event] chan T

// DefaultBufferSize is the capacity of each subscriber channel
const DefaultBufferSize = 100

type EventBus[T Event] struct {
	subscribers map[Subscriber[T]]struct{}
	bufferSize  int
	closed      bool
	mutex       sync.RWMutex
}

func NewEventBus[T Event]() *EventBus[T] {
	return NewEventBusWithBuffer[T](DefaultBufferSize)
}

// NewEventBusWithBuffer creates a bus whose subscribers buffer up to size
// undelivered events
func NewEventBusWithBuffer[T Event](size int) *EventBus[T] {
	if size < 0 {
		size = 0
	}
	return &EventBus[T]{
		subscribers: make(map[Subscriber[T]]struct{}),
		bufferSize:  size,
	}
}

// Subscribe registers a new subscriber. Subscribing to a closed bus returns
// an already closed channel.
func (bus *EventBus[T]) Subscribe() Subscriber[T] {
	ch := make(Subscriber[T], bus.bufferSize)
	bus.mutex.Lock()
	defer bus.mutex.Unlock()
	if bus.closed {
		close(ch)
		return ch
	}
	bus.subscribers[ch] = struct{}{}
	return ch
}

// Unsubscribe removes ch and closes it. Unknown channels are ignored.
func (bus *EventBus[T]) Unsubscribe(ch Subscriber[T]) {
	bus.mutex.Lock()
	defer bus.mutex.Unlock()
	if _, ok := bus.subscribers[ch]; !ok {
		return
	}
	delete(bus.subscribers, ch)
	close(ch)
}

// Publish broadcasts an event of type T to all registered subscribers and
// returns how many received it. Subscribers with a full buffer miss the event.
func (bus *EventBus[T]) Publish(event T) int {
	bus.mutex.RLock()
	defer bus.mutex.RUnlock()

	delivered := 0
	for subscriber := range bus.subscribers {
		select {
		case subscriber <- event:
			delivered++
		default:
		}
	}
	return delivered
}

// Len is the number of registered subscribers
func (bus *EventBus[T]) Len() int {
	bus.mutex.RLock()
	defer bus.mutex.RUnlock()
	return len(bus.subscribers)
}

// Close closes every subscriber channel. Later publishes are dropped.
func (bus *EventBus[T]) Close() {
	bus.mutex.Lock()
	defer bus.mutex.Unlock()
	if bus.closed {
		return
	}
	bus.closed = true
	for ch := range bus.subscribers {
		close(ch)
		delete(bus.subscribers, ch)
	}
}
