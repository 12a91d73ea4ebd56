package platform

import (
	"fmt"

	"adlens/internal/core/domain"
	"adlens/internal/core/port"
)

// Registry is the closed set of platform adapters. Unknown or duplicate
// platforms are rejected when it is built, never at call time.
type Registry struct {
	adapters map[domain.Platform]port.PlatformAdapter
}

var _ port.AdapterRegistry = (*Registry)(nil)

func NewRegistry(adapters ...port.PlatformAdapter) (*Registry, error) {
	r := &Registry{adapters: make(map[domain.Platform]port.PlatformAdapter, len(adapters))}
	for _, a := range adapters {
		p := a.Platform()
		if !p.IsValid() {
			return nil, fmt.Errorf("%w: %q", port.ErrUnsupportedPlatform, p)
		}
		if _, dup := r.adapters[p]; dup {
			return nil, fmt.Errorf("duplicate adapter for %s", p)
		}
		r.adapters[p] = a
	}
	return r, nil
}

// Adapter returns the adapter registered for p.
func (r *Registry) Adapter(p domain.Platform) (port.PlatformAdapter, error) {
	a, ok := r.adapters[p]
	if !ok {
		return nil, fmt.Errorf("%w: %q", port.ErrUnsupportedPlatform, p)
	}
	return a, nil
}

// Platforms lists registered platforms in display order.
func (r *Registry) Platforms() []domain.Platform {
	var out []domain.Platform
	for _, p := range domain.Platforms() {
		if _, ok := r.adapters[p]; ok {
			out = append(out, p)
		}
	}
	return out
}
