package engine

import (
	"fmt"
	"regexp"

	m "github.com/mouse-blink/linecov/internal/model"
)

// Filter decides which sources and blocks are instrumentable. Listeners attached to
// the engine only ever see what the filter accepts.
type Filter struct {
	IncludeInternal bool
	Exclude         []*regexp.Regexp
	MinStatements   int
}

// DefaultFilter accepts statement-bearing blocks of non-internal sources.
func DefaultFilter() Filter {
	return Filter{MinStatements: 1}
}

// NewFilter compiles the exclude patterns on top of DefaultFilter.
func NewFilter(includeInternal bool, patterns []string) (Filter, error) {
	filter := DefaultFilter()
	filter.IncludeInternal = includeInternal

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return Filter{}, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		filter.Exclude = append(filter.Exclude, re)
	}

	return filter, nil
}

// AcceptSource reports whether any block of source may be instrumented.
func (f Filter) AcceptSource(source m.Source) bool {
	if source == nil {
		return false
	}

	if source.Internal() && !f.IncludeInternal {
		return false
	}

	path := string(source.Path())
	for _, re := range f.Exclude {
		if re.MatchString(path) {
			return false
		}
	}

	return true
}

// AcceptBlock reports whether block is an instrumentable region.
func (f Filter) AcceptBlock(block m.Block) bool {
	return block.Region.Valid() && block.Statements >= f.MinStatements
}
