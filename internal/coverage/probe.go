package coverage

import (
	"sync/atomic"

	m "github.com/mouse-blink/linecov/internal/model"
)

// Probe is the execution site for one instrumented region. The first OnExecuted
// call removes the region from the registry; every later call costs one atomic load.
type Probe struct {
	registry *Registry
	source   m.Source
	region   m.Region
	covered  atomic.Bool
}

// NewProbe binds a probe for region of source to registry.
func NewProbe(registry *Registry, source m.Source, region m.Region) *Probe {
	return &Probe{
		registry: registry,
		source:   source,
		region:   region,
	}
}

// OnExecuted marks the site as executed.
func (p *Probe) OnExecuted() {
	if p.covered.Load() {
		return
	}

	if !p.covered.CompareAndSwap(false, true) {
		return
	}

	// Internal sources are filtered before discovery, but an execution can still
	// reach us through a path the discovery filter did not see.
	if p.source == nil || p.source.Internal() {
		return
	}

	p.registry.RecordExecuted(p.source, p.region)
}

// Covered reports whether the site has executed at least once.
func (p *Probe) Covered() bool {
	return p.covered.Load()
}

// Region returns the instrumented region.
func (p *Probe) Region() m.Region {
	return p.region
}
