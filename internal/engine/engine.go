// Package engine replays recorded execution traces against attached coverage tools.
//
// The engine plays the part of a host execution engine: it announces every
// instrumentable block as a discovered region, creates one execution site per block
// and then fires the sites of blocks that executed, from a pool of workers.
package engine

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/linecov/internal/coverage"
	m "github.com/mouse-blink/linecov/internal/model"
)

// DefaultMaxHitsPerSite caps how many times a hot site is fired during replay.
const DefaultMaxHitsPerSite = 8

// Unit is one source together with its recorded blocks.
type Unit struct {
	Source m.Source
	Blocks []m.Block
}

// Stats summarizes one Run.
type Stats struct {
	Sources    int
	Discovered int
	Executed   int
}

// Option configures an Engine.
type Option func(*Engine)

// WithFilter sets the instrumentation filter.
func WithFilter(filter Filter) Option {
	return func(e *Engine) {
		e.filter = filter
	}
}

// WithWorkers sets the number of workers firing execution sites.
func WithWorkers(workers int) Option {
	return func(e *Engine) {
		if workers > 0 {
			e.workers = workers
		}
	}
}

// WithMaxHitsPerSite caps the number of times one site is fired.
func WithMaxHitsPerSite(hits int) Option {
	return func(e *Engine) {
		if hits > 0 {
			e.maxHits = hits
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Engine replays execution traces. It implements coverage.Instrumenter.
type Engine struct {
	mu        sync.Mutex
	listeners []coverage.DiscoveryListener
	factories []coverage.ProbeFactory

	filter  Filter
	workers int
	maxHits int
	logger  *slog.Logger
}

// New creates an Engine with one worker and the default filter.
func New(opts ...Option) *Engine {
	e := &Engine{
		filter:  DefaultFilter(),
		workers: 1,
		maxHits: DefaultMaxHitsPerSite,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// AttachDiscoveryListener subscribes listener to region discovery.
func (e *Engine) AttachDiscoveryListener(listener coverage.DiscoveryListener) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.listeners = append(e.listeners, listener)
}

// AttachProbeFactory makes factory instrument every accepted region.
func (e *Engine) AttachProbeFactory(factory coverage.ProbeFactory) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.factories = append(e.factories, factory)
}

// site is one instrumented block with the listeners created for it.
type site struct {
	hits      int
	listeners []coverage.ExecutionListener
}

// Run replays units: discovery first, then instrumentation, then execution.
// Cancelling ctx stops dispatching further executions and returns ctx.Err().
func (e *Engine) Run(ctx context.Context, units []Unit) (Stats, error) {
	e.mu.Lock()
	listeners := append([]coverage.DiscoveryListener(nil), e.listeners...)
	factories := append([]coverage.ProbeFactory(nil), e.factories...)
	e.mu.Unlock()

	var (
		stats Stats
		sites []site
	)

	for _, unit := range units {
		if !e.filter.AcceptSource(unit.Source) {
			e.logger.Debug("source filtered", "path", pathOf(unit.Source))
			continue
		}

		stats.Sources++

		for _, block := range unit.Blocks {
			if !e.filter.AcceptBlock(block) {
				continue
			}

			stats.Discovered++

			for _, listener := range listeners {
				listener.OnDiscovered(unit.Source, block.Region)
			}

			if block.Count <= 0 || len(factories) == 0 {
				continue
			}

			s := site{hits: min(block.Count, e.maxHits)}
			for _, factory := range factories {
				s.listeners = append(s.listeners, factory.NewProbe(unit.Source, block.Region))
			}

			sites = append(sites, s)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for _, s := range sites {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			for range s.hits {
				for _, listener := range s.listeners {
					listener.OnExecuted()
				}
			}

			return nil
		})

		stats.Executed++
	}

	if err := g.Wait(); err != nil {
		return stats, err
	}

	if err := ctx.Err(); err != nil {
		return stats, err
	}

	e.logger.Info("replay complete",
		"sources", stats.Sources,
		"discovered", stats.Discovered,
		"executed", stats.Executed,
		"workers", e.workers,
	)

	return stats, nil
}

func pathOf(source m.Source) string {
	if source == nil {
		return ""
	}

	return string(source.Path())
}
