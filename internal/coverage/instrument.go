package coverage

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	m "github.com/mouse-blink/linecov/internal/model"
)

// DiscoveryListener is notified once per region the host engine discovers,
// before the region can execute.
type DiscoveryListener interface {
	OnDiscovered(source m.Source, region m.Region)
}

// ExecutionListener is notified each time an instrumented site executes.
type ExecutionListener interface {
	OnExecuted()
}

// ProbeFactory creates the execution listener for one instrumented site.
type ProbeFactory interface {
	NewProbe(source m.Source, region m.Region) ExecutionListener
}

// Instrumenter is the capability a host engine exposes to coverage tools.
// The engine applies its own region filter before calling the attached listeners.
type Instrumenter interface {
	AttachDiscoveryListener(listener DiscoveryListener)
	AttachProbeFactory(factory ProbeFactory)
}

// Config enables and configures an Instrument.
type Config struct {
	Enabled       bool `yaml:"enable"`
	PrintCoverage bool `yaml:"print_coverage"`
}

// DefaultConfig returns the configuration of an instrument nobody asked for:
// disabled, printing on shutdown once enabled.
func DefaultConfig() Config {
	return Config{
		Enabled:       false,
		PrintCoverage: true,
	}
}

// Option configures an Instrument.
type Option func(*Instrument)

// WithOutput sets the sink the report is printed to on Shutdown.
func WithOutput(w io.Writer) Option {
	return func(i *Instrument) {
		i.out = w
	}
}

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Instrument) {
		i.logger = logger
	}
}

// Instrument is the coverage tool as seen by a host engine: it gathers discovered
// regions, hands out one-shot probes and prints the report on shutdown.
type Instrument struct {
	cfg      Config
	registry *Registry
	reporter *Reporter
	out      io.Writer
	logger   *slog.Logger
	session  string
}

// NewInstrument creates an instrument with its own empty registry.
func NewInstrument(cfg Config, opts ...Option) *Instrument {
	registry := NewRegistry()

	i := &Instrument{
		cfg:      cfg,
		registry: registry,
		reporter: NewReporter(registry),
		out:      os.Stdout,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(i)
	}

	i.session = uuid.NewString()
	i.logger = i.logger.With("instrument", "line-coverage", "session", i.session)

	return i
}

// Session returns the id that labels this instrument's logs and exported reports.
func (i *Instrument) Session() string {
	return i.session
}

// Enabled reports whether the instrument tracks anything at all.
func (i *Instrument) Enabled() bool {
	return i.cfg.Enabled
}

// Attach registers the instrument with host. A disabled instrument registers nothing.
func (i *Instrument) Attach(host Instrumenter) {
	if !i.cfg.Enabled {
		i.logger.Debug("coverage disabled, not attaching")
		return
	}

	host.AttachDiscoveryListener(i)
	host.AttachProbeFactory(i)

	i.logger.Debug("coverage attached", "print_coverage", i.cfg.PrintCoverage)
}

// OnDiscovered records a region that may execute later.
func (i *Instrument) OnDiscovered(source m.Source, region m.Region) {
	if source == nil || source.Internal() {
		return
	}

	i.registry.RecordDiscovered(source, region)
}

// NewProbe returns the one-shot execution site for region.
func (i *Instrument) NewProbe(source m.Source, region m.Region) ExecutionListener {
	return NewProbe(i.registry, source, region)
}

// Registry exposes the raw registry for programmatic inspection.
func (i *Instrument) Registry() *Registry {
	return i.registry
}

// Reporter returns the reporter over the instrument's registry.
func (i *Instrument) Reporter() *Reporter {
	return i.reporter
}

// UncoveredLines returns the sorted uncovered line numbers of source.
func (i *Instrument) UncoveredLines(source m.Source) []int {
	return i.reporter.UncoveredLines(source)
}

// PrintReport renders the coverage report to w.
func (i *Instrument) PrintReport(w io.Writer) error {
	return i.reporter.PrintReport(w)
}

// Shutdown is called by the host once execution is over. It prints the report to
// the configured output when printing is enabled.
func (i *Instrument) Shutdown() error {
	if !i.cfg.Enabled || !i.cfg.PrintCoverage {
		return nil
	}

	i.logger.Debug("printing coverage report", "sources", len(i.registry.Sources()))

	return i.PrintReport(i.out)
}
