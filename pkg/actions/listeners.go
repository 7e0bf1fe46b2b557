package actions

import "sync"

// PointerListener receives every pointer-down while attached
type PointerListener func(Point)

// KeyListener receives every key press while attached
type KeyListener func(key string)

type listenerPair struct {
	pointer PointerListener
	key     KeyListener
}

// ListenerHub is the shared, process-wide source of pointer and key events.
// Open menus attach one listener pair each and release it when they close.
type ListenerHub struct {
	mu     sync.Mutex
	nextID int
	order  []int
	pairs  map[int]listenerPair
}

// NewListenerHub creates an empty hub
func NewListenerHub() *ListenerHub {
	return &ListenerHub{pairs: make(map[int]listenerPair)}
}

// Scope is one attached listener pair. Release detaches it; calling
// Release more than once is harmless.
type Scope struct {
	hub      *ListenerHub
	id       int
	released bool
}

// Attach registers a pointer and key listener and returns the scope that
// owns them
func (h *ListenerHub) Attach(pointer PointerListener, key KeyListener) *Scope {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	id := h.nextID
	h.pairs[id] = listenerPair{pointer: pointer, key: key}
	h.order = append(h.order, id)
	return &Scope{hub: h, id: id}
}

// Release detaches the scope's listeners
func (s *Scope) Release() {
	if s == nil || s.released {
		return
	}
	s.released = true
	s.hub.detach(s.id)
}

// Released reports whether the scope has been released
func (s *Scope) Released() bool {
	return s == nil || s.released
}

func (h *ListenerHub) detach(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.pairs[id]; !ok {
		return
	}
	delete(h.pairs, id)
	for i, existing := range h.order {
		if existing == id {
			h.order = append(h.order[:i:i], h.order[i+1:]...)
			break
		}
	}
}

// Active returns the number of attached listener pairs
func (h *ListenerHub) Active() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.pairs)
}

// snapshot copies the listeners so they can detach themselves mid-dispatch
func (h *ListenerHub) snapshot() []listenerPair {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]listenerPair, 0, len(h.order))
	for _, id := range h.order {
		out = append(out, h.pairs[id])
	}
	return out
}

// PointerDown broadcasts a pointer-down to every attached listener
func (h *ListenerHub) PointerDown(at Point) {
	for _, p := range h.snapshot() {
		if p.pointer != nil {
			p.pointer(at)
		}
	}
}

// KeyDown broadcasts a key press to every attached listener
func (h *ListenerHub) KeyDown(key string) {
	for _, p := range h.snapshot() {
		if p.key != nil {
			p.key(key)
		}
	}
}
