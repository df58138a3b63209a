package usecase

import "sync"

// Registry is the process-wide set of filenames currently mid-download. It
// exists so a second request for a file cannot race the first one's
// stream-then-delete sequence. Membership is scoped to the process; nothing
// survives a restart.
type Registry struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{active: make(map[string]struct{})}
}

// TryAcquire atomically claims name. It reports false when the name is
// already claimed by an in-flight download.
func (r *Registry) TryAcquire(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.active[name]; ok {
		return false
	}
	r.active[name] = struct{}{}
	return true
}

func (r *Registry) Release(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.active, name)
}

// Contains reports whether name is currently claimed.
func (r *Registry) Contains(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.active[name]
	return ok
}
