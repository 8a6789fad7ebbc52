package event

import "reflect"

// Bus is a synchronous, single-goroutine event bus. Emit calls every handler
// subscribed to the event's type inline, in subscription order.
type Bus struct {
	handlers map[reflect.Type][]handler
	nextID   uint64
}

type handler struct {
	id uint64
	fn any
}

// Subscription identifies a registered handler for Unsubscribe.
type Subscription struct {
	typ reflect.Type
	id  uint64
}

// Valid reports whether s was returned by Subscribe.
func (s Subscription) Valid() bool { return s.typ != nil }

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[reflect.Type][]handler),
	}
}

// Subscribe registers a typed handler for events of type T.
func Subscribe[T any](b *Bus, fn func(T)) Subscription {
	t := reflect.TypeFor[T]()
	b.nextID++
	b.handlers[t] = append(b.handlers[t], handler{id: b.nextID, fn: fn})
	return Subscription{typ: t, id: b.nextID}
}

// Unsubscribe removes the handler behind s. The handler list is copied, not
// edited in place, so an Emit already walking the old list is unaffected.
func (b *Bus) Unsubscribe(s Subscription) bool {
	hs := b.handlers[s.typ]
	for i, h := range hs {
		if h.id != s.id {
			continue
		}
		next := make([]handler, 0, len(hs)-1)
		next = append(next, hs[:i]...)
		next = append(next, hs[i+1:]...)
		if len(next) == 0 {
			delete(b.handlers, s.typ)
		} else {
			b.handlers[s.typ] = next
		}
		return true
	}
	return false
}

// Emit delivers event to every handler subscribed to T.
func Emit[T any](b *Bus, event T) {
	hs, ok := b.handlers[reflect.TypeFor[T]()]
	if !ok {
		return
	}
	for _, h := range hs {
		h.fn.(func(T))(event)
	}
}

// Count returns the number of handlers subscribed to T.
func Count[T any](b *Bus) int {
	return len(b.handlers[reflect.TypeFor[T]()])
}

// Len returns the number of handlers across all event types.
func (b *Bus) Len() int {
	n := 0
	for _, hs := range b.handlers {
		n += len(hs)
	}
	return n
}

// Reset drops every subscription.
func (b *Bus) Reset() {
	clear(b.handlers)
}
