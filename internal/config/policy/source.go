package policy

import (
	"sync"

	"budget-scheduler/internal/core/domain"
)

// Static serves a fixed policy. It is used by one-shot commands.
type Static struct {
	p domain.Policy
}

// NewStatic wraps p as a port.PolicySource.
func NewStatic(p domain.Policy) *Static { return &Static{p: p} }

func (s *Static) Policy() domain.Policy { return s.p }

// current is the shared, lock-protected policy behind a Watcher.
type current struct {
	mu sync.RWMutex
	p  domain.Policy
}

func (c *current) get() domain.Policy {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.p
}

func (c *current) set(p domain.Policy) {
	c.mu.Lock()
	c.p = p
	c.mu.Unlock()
}
