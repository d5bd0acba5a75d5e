package coverage

import (
	"sort"
	"sync"

	m "github.com/mouse-blink/linecov/internal/model"
)

// Registry tracks, per source, the regions that were discovered but have not been
// observed executing yet. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	order   []m.Source
	sources map[m.Source]*regionSet
}

// regionSet is the per-source state. pending holds regions waiting for their first
// execution; executed remembers removed regions so they are never re-inserted.
type regionSet struct {
	mu       sync.Mutex
	pending  map[m.Region]struct{}
	executed map[m.Region]struct{}
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		sources: make(map[m.Source]*regionSet),
	}
}

// RecordDiscovered adds region to the not-yet-executed set of source.
// Recording the same region twice is a no-op, and so is recording a region that
// already executed.
func (r *Registry) RecordDiscovered(source m.Source, region m.Region) {
	if source == nil || !region.Valid() {
		return
	}

	set := r.setFor(source)

	set.mu.Lock()
	defer set.mu.Unlock()

	if _, done := set.executed[region]; done {
		return
	}

	set.pending[region] = struct{}{}
}

// RecordExecuted removes region from the not-yet-executed set of source.
// It returns true only for the call that actually removed the region; unknown
// sources and absent regions are ignored.
func (r *Registry) RecordExecuted(source m.Source, region m.Region) bool {
	if source == nil {
		return false
	}

	r.mu.RLock()
	set, ok := r.sources[source]
	r.mu.RUnlock()

	if !ok {
		return false
	}

	set.mu.Lock()
	defer set.mu.Unlock()

	if _, pending := set.pending[region]; !pending {
		return false
	}

	delete(set.pending, region)
	set.executed[region] = struct{}{}

	return true
}

// UncoveredRegions returns the regions of source that have not executed, ordered by
// start then end line. Unknown sources yield an empty slice.
func (r *Registry) UncoveredRegions(source m.Source) []m.Region {
	if source == nil {
		return []m.Region{}
	}

	r.mu.RLock()
	set, ok := r.sources[source]
	r.mu.RUnlock()

	if !ok {
		return []m.Region{}
	}

	return set.snapshot()
}

// Sources returns every source the registry knows about, ordered by path.
// Sources sharing a path keep their discovery order.
func (r *Registry) Sources() []m.Source {
	r.mu.RLock()
	sources := make([]m.Source, len(r.order))
	copy(sources, r.order)
	r.mu.RUnlock()

	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].Path() < sources[j].Path()
	})

	return sources
}

// Snapshot returns a point-in-time copy of the whole registry.
func (r *Registry) Snapshot() map[m.Source][]m.Region {
	r.mu.RLock()
	sets := make(map[m.Source]*regionSet, len(r.sources))
	for source, set := range r.sources {
		sets[source] = set
	}
	r.mu.RUnlock()

	out := make(map[m.Source][]m.Region, len(sets))
	for source, set := range sets {
		out[source] = set.snapshot()
	}

	return out
}

func (r *Registry) setFor(source m.Source) *regionSet {
	r.mu.RLock()
	set, ok := r.sources[source]
	r.mu.RUnlock()

	if ok {
		return set
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if set, ok = r.sources[source]; ok {
		return set
	}

	set = &regionSet{
		pending:  make(map[m.Region]struct{}),
		executed: make(map[m.Region]struct{}),
	}
	r.sources[source] = set
	r.order = append(r.order, source)

	return set
}

func (s *regionSet) snapshot() []m.Region {
	s.mu.Lock()
	regions := make([]m.Region, 0, len(s.pending))
	for region := range s.pending {
		regions = append(regions, region)
	}
	s.mu.Unlock()

	sort.Slice(regions, func(i, j int) bool {
		if regions[i].StartLine != regions[j].StartLine {
			return regions[i].StartLine < regions[j].StartLine
		}

		return regions[i].EndLine < regions[j].EndLine
	})

	return regions
}
