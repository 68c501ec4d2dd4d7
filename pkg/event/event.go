// Package event is the in-process event dispatcher.
//
// The storefront fires a small set of domain events:
//
//	event.Fire(event.OrderPlaced, order)
//	event.Fire(event.CartUpdated, sessionID)
//	event.Fire(event.UserPromoted, user)
package event

import (
	"sync"
)

// Domain event names.
const (
	OrderPlaced  = "order.placed"
	CartUpdated  = "cart.updated"
	UserSignedUp = "user.signed_up"
	UserPromoted = "user.promoted"
)

// Handler is a function that receives an event payload.
type Handler func(payload interface{})

var (
	mu       sync.RWMutex
	handlers = map[string][]Handler{}
)

// Listen registers a handler for the given event name.
func Listen(event string, handler Handler) {
	mu.Lock()
	defer mu.Unlock()
	handlers[event] = append(handlers[event], handler)
}

// Fire dispatches an event synchronously to all registered listeners.
func Fire(event string, payload interface{}) {
	mu.RLock()
	hs := make([]Handler, len(handlers[event]))
	copy(hs, handlers[event])
	mu.RUnlock()

	for _, h := range hs {
		h(payload)
	}
}

// FireAsync dispatches the event to all listeners concurrently and returns
// without waiting for them.
func FireAsync(event string, payload interface{}) {
	mu.RLock()
	hs := make([]Handler, len(handlers[event]))
	copy(hs, handlers[event])
	mu.RUnlock()

	for _, h := range hs {
		go h(payload)
	}
}

// Flush removes all listeners. Used by tests.
func Flush() {
	mu.Lock()
	defer mu.Unlock()
	handlers = map[string][]Handler{}
}
