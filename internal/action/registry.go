package action

import (
	"context"
	"sort"
	"sync"

	"github.com/pagecraft/pagewire/internal/ctxlog"
)

// Payload is the record passed to a handler when its action executes. The
// known fields cover the common case; Extra keeps the "arbitrary additional
// fields" contract open without giving up typing on the known ones.
type Payload struct {
	// Source identifies the UI node that triggered the action, if any.
	Source string
	// Event is the originating DOM-level event name ("click", ...), if any.
	Event string
	// Extra carries caller-defined fields; its shape is a private contract
	// between the emitting node and the handling feature.
	Extra map[string]any
}

// Handler is the function a feature registers for one action identifier.
// The registry holds only the reference; the registering feature owns it.
type Handler func(Payload)

// Registry maps action identifiers to at most one handler each.
//
// The origin execution model is single-threaded UI dispatch; a Go host is
// not, so the map is guarded by an RWMutex. Handlers are invoked outside
// the lock: a handler that mutates the registry mid-dispatch is an
// accepted, documented hazard, not a deadlock.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler

	// debug enables the "executed an unregistered identifier" warning,
	// which usually means the owning feature was never mounted.
	debug bool
}

// New creates an empty registry. Debug enables diagnostics for executes
// that find no handler.
func New(debug bool) *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
		debug:    debug,
	}
}

// Register stores handler under id, replacing any prior handler. Replacement
// is silent: last registration wins, and callers are responsible for
// unregistering on their own teardown.
func (r *Registry) Register(ctx context.Context, id string, handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ctxlog.FromContext(ctx).Debug("Registering action handler.", "action", id)
	r.handlers[id] = handler
}

// Unregister removes the entry for id. Removing an absent id is a no-op.
func (r *Registry) Unregister(ctx context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ctxlog.FromContext(ctx).Debug("Unregistering action handler.", "action", id)
	delete(r.handlers, id)
}

// Execute invokes the handler registered under id synchronously with
// payload. If no handler is registered the call is a no-op; in debug mode
// it logs a warning so a missing mount is visible during development.
func (r *Registry) Execute(ctx context.Context, id string, payload Payload) {
	r.mu.RLock()
	handler, ok := r.handlers[id]
	r.mu.RUnlock()

	if !ok {
		if r.debug {
			ctxlog.FromContext(ctx).Warn(
				"Executed unregistered action; is the owning feature mounted?",
				"action", id,
			)
		}
		return
	}
	handler(payload)
}

// Has reports whether a handler is currently registered under id.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handlers[id]
	return ok
}

// List returns the currently registered identifiers, sorted, for
// introspection and debugging tooling.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.handlers))
	for id := range r.handlers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
