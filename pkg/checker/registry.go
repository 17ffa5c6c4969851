package checker

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Faultbox/modelcheck/pkg/scene"
)

// Func is a check implementation: a pure function from a scene view and
// parameters to a result. It must be deterministic for identical input and
// must not mutate the view. The context carries run-level cancellation and
// is only consulted by checks that perform bounded external lookups.
type Func func(ctx context.Context, view scene.View, p Params) (*Result, error)

// Check is a registered check with its metadata.
type Check struct {
	ID       string
	Category string
	Shape    Shape
	Defaults Params
	Run      Func
}

// Registry holds the set of registered checks.
type Registry struct {
	mu     sync.RWMutex
	checks map[string]Check
	order  []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{checks: make(map[string]Check)}
}

// Register adds a check. Registering a duplicate or incomplete check is a
// programming error and fails loudly.
func (r *Registry) Register(c Check) error {
	if c.ID == "" {
		return fmt.Errorf("register: check ID must not be empty")
	}
	if c.Run == nil {
		return fmt.Errorf("register %q: check function must not be nil", c.ID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.checks[c.ID]; dup {
		return fmt.Errorf("register %q: already registered", c.ID)
	}
	r.checks[c.ID] = c
	r.order = append(r.order, c.ID)
	return nil
}

// MustRegister is Register that panics on error, for package init wiring.
func (r *Registry) MustRegister(c Check) {
	if err := r.Register(c); err != nil {
		panic(err)
	}
}

// Get returns a check by ID.
func (r *Registry) Get(id string) (Check, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.checks[id]
	return c, ok
}

// IDs returns all registered check IDs in registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Categories returns the distinct categories in sorted order.
func (r *Registry) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]struct{})
	for _, c := range r.checks {
		seen[c.Category] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for cat := range seen {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}
