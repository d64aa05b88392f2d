// Package runtime holds the live-connection registry: the only shared
// mutable state between connection handlers besides the message store.
package runtime

import (
	"log/slog"
	"sync"

	"chat-relay/contract"
)

// entry is the membership list of a single key. Each entry carries its
// own lock so traffic on unrelated keys never serializes. An entry that
// became empty is marked dead before being unlinked from the key map;
// joiners that raced with the removal detect the flag and retry.
type entry struct {
	mu      sync.RWMutex
	members map[contract.Sink]struct{}
	dead    bool
}

// Registry maps a key (room name or username) to the set of live
// sessions registered under it. Safe for concurrent use by arbitrarily
// many connection handlers.
type Registry struct {
	mu   sync.RWMutex
	keys map[string]*entry
	log  *slog.Logger
}

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		keys: make(map[string]*entry),
		log:  log,
	}
}

// Join registers a session under a key, creating the key on first use.
// Callers must not register the same session twice under one key.
func (r *Registry) Join(key string, sink contract.Sink) {
	for {
		r.mu.Lock()
		e, ok := r.keys[key]
		if !ok {
			e = &entry{members: make(map[contract.Sink]struct{})}
			r.keys[key] = e
		}
		r.mu.Unlock()

		e.mu.Lock()
		if e.dead {
			e.mu.Unlock()
			continue
		}
		e.members[sink] = struct{}{}
		e.mu.Unlock()
		return
	}
}

// Leave removes a session from a key. Absent keys and absent members are
// no-ops: disconnect races are expected. Empty keys are removed so the
// registry does not grow with every room ever used.
func (r *Registry) Leave(key string, sink contract.Sink) {
	r.mu.RLock()
	e, ok := r.keys[key]
	r.mu.RUnlock()
	if !ok {
		return
	}

	e.mu.Lock()
	delete(e.members, sink)
	if len(e.members) > 0 {
		e.mu.Unlock()
		return
	}
	e.dead = true
	e.mu.Unlock()

	r.mu.Lock()
	if r.keys[key] == e {
		delete(r.keys, key)
	}
	r.mu.Unlock()
}

// Fanout delivers a payload to every session currently registered under
// the key and returns the number of successful deliveries. A key nobody
// joined means zero recipients, not an error. Sessions that cannot
// accept the payload are closed and evicted asynchronously instead of
// blocking delivery to the others.
func (r *Registry) Fanout(key string, payload []byte) int {
	r.mu.RLock()
	e, ok := r.keys[key]
	r.mu.RUnlock()
	if !ok {
		return 0
	}

	e.mu.RLock()
	sinks := make([]contract.Sink, 0, len(e.members))
	for sink := range e.members {
		sinks = append(sinks, sink)
	}
	e.mu.RUnlock()

	delivered := 0
	for _, sink := range sinks {
		if err := sink.Send(payload); err != nil {
			r.log.Warn("Evicting unresponsive session", "key", key, "error", err)
			go r.evict(key, sink)
			continue
		}
		delivered++
	}
	return delivered
}

func (r *Registry) evict(key string, sink contract.Sink) {
	r.Leave(key, sink)
	sink.Close()
}
