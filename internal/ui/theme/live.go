package theme

import (
	"sync"

	"github.com/bnema/urlbar/internal/domain/entity"
)

// Live is a port.ThemeProvider whose registry can be replaced after a config
// reload. Consumers keep the same provider value.
type Live struct {
	mu      sync.RWMutex
	current *Registry
}

// NewLive wraps r.
func NewLive(r *Registry) *Live {
	return &Live{current: r}
}

// Swap replaces the registry.
func (l *Live) Swap(r *Registry) {
	l.mu.Lock()
	l.current = r
	l.mu.Unlock()
}

// Registry returns the current registry.
func (l *Live) Registry() *Registry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// Theme implements port.ThemeProvider.
func (l *Live) Theme(name entity.ThemeName) (entity.Theme, bool) {
	if r := l.Registry(); r != nil {
		return r.Theme(name)
	}
	return entity.Theme{}, false
}

// Names implements port.ThemeProvider.
func (l *Live) Names() []entity.ThemeName {
	if r := l.Registry(); r != nil {
		return r.Names()
	}
	return nil
}
