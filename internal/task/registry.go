package task

import "sync"

// Registry maps evaluation ids to their runners. Entries are created lazily
// on first reference and live for the lifetime of the process; there is no
// eviction.
type Registry struct {
	mu      sync.Mutex
	runners map[string]*Runner
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{runners: make(map[string]*Runner)}
}

// Get returns the runner for the given id, creating an idle one on first use.
func (r *Registry) Get(id string) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()

	runner, ok := r.runners[id]
	if !ok {
		runner = NewRunner()
		r.runners[id] = runner
	}

	return runner
}

// Len reports the number of runners currently registered.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.runners)
}
