package forms

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ErrUnknownForm is returned when a form name is not registered.
var ErrUnknownForm = errors.New("unknown form")

// Registry maps form names to definitions. Open hands out a new Session on
// every call; definitions themselves are shared.
type Registry struct {
	mu     sync.RWMutex
	defs   map[string]*Definition
	order  []string
	policy Policy
	log    *slog.Logger
}

// NewRegistry creates a Registry holding defs.
func NewRegistry(policy Policy, log *slog.Logger, defs ...*Definition) *Registry {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	r := &Registry{
		defs:   make(map[string]*Definition, len(defs)),
		policy: policy,
		log:    log,
	}
	for _, d := range defs {
		r.Register(d)
	}
	return r
}

// Register adds or replaces a definition. Replacing keeps the original position.
func (r *Registry) Register(def *Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.defs[def.Name]; !ok {
		r.order = append(r.order, def.Name)
	}
	r.defs[def.Name] = def
}

// Policy returns the trigger policy sessions are opened with.
func (r *Registry) Policy() Policy { return r.policy }

// Definition returns the named definition.
func (r *Registry) Definition(name string) (*Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownForm, name)
	}
	return def, nil
}

// Definitions lists all definitions in registration order.
func (r *Registry) Definitions() []*Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Definition, len(r.order))
	for i, name := range r.order {
		out[i] = r.defs[name]
	}
	return out
}

// Open starts a new Session for the named form.
func (r *Registry) Open(name string) (*Session, error) {
	def, err := r.Definition(name)
	if err != nil {
		return nil, err
	}
	return NewSession(def, r.policy, r.log), nil
}
