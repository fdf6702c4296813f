package backend

import (
	"context"

	"voice-commander/internal/command"
	"voice-commander/pkg/log"
)

// Specialist is one external generative capability: given a prompt and an
// optional system instruction, return generated text or fail.
type Specialist interface {
	Generate(ctx context.Context, prompt, system string) (string, error)
	Name() string
	Model() string
}

// Registry maps backend identifiers to configured specialists. Availability is
// a data lookup: a backend missing from the registry is unavailable, never a
// half-constructed client. Safe for concurrent reads after construction.
type Registry struct {
	entries map[command.Backend]Specialist
	l       log.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(l log.Logger) *Registry {
	return &Registry{
		entries: make(map[command.Backend]Specialist),
		l:       l,
	}
}

// Register adds a specialist for the given backend. Not safe to call
// concurrently with Generate; wire everything at startup.
func (r *Registry) Register(b command.Backend, s Specialist) {
	r.entries[b] = s
}

// Available reports whether the backend has a configured specialist.
func (r *Registry) Available(b command.Backend) bool {
	_, ok := r.entries[b]
	return ok
}

// Configured lists the backends with a registered specialist.
func (r *Registry) Configured() []command.Backend {
	backends := make([]command.Backend, 0, len(r.entries))
	for b := range r.entries {
		backends = append(backends, b)
	}
	return backends
}

// Generate invokes the specialist for the given backend. Returns
// ErrUnavailable when no specialist is registered, and *CallError when the
// call was made but failed.
func (r *Registry) Generate(ctx context.Context, b command.Backend, prompt, system string) (string, error) {
	s, ok := r.entries[b]
	if !ok {
		return "", ErrUnavailable
	}

	text, err := s.Generate(ctx, prompt, system)
	if err != nil {
		r.l.Warnf(ctx, "backend %s (%s/%s) call failed: %v", b, s.Name(), s.Model(), err)
		return "", &CallError{Backend: b, Err: err}
	}

	return text, nil
}
