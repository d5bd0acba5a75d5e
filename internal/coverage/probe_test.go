package coverage

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/linecov/internal/model"
)

func TestProbe_OnExecutedRemovesOnce(t *testing.T) {
	reg := NewRegistry()
	src := newTestFile("a.js", 10)
	region := m.Region{StartLine: 2, EndLine: 4}
	reg.RecordDiscovered(src, region)

	probe := NewProbe(reg, src, region)
	require.False(t, probe.Covered())

	probe.OnExecuted()
	assert.True(t, probe.Covered())
	assert.Empty(t, reg.UncoveredRegions(src))

	// Rediscovery after the first execution must not bring the region back,
	// and further executions stay no-ops.
	reg.RecordDiscovered(src, region)
	probe.OnExecuted()
	assert.Empty(t, reg.UncoveredRegions(src))
	assert.Equal(t, region, probe.Region())
}

func TestProbe_UnknownSource(t *testing.T) {
	reg := NewRegistry()
	probe := NewProbe(reg, newTestFile("never-discovered.js", 3), m.Region{StartLine: 1, EndLine: 1})

	assert.NotPanics(t, probe.OnExecuted)
	assert.True(t, probe.Covered())
	assert.Empty(t, reg.Sources())
}

func TestProbe_InternalSourceIsIgnored(t *testing.T) {
	reg := NewRegistry()
	internal := m.NewFile("internal.js", []byte("a\nb\n"), true)
	region := m.Region{StartLine: 1, EndLine: 1}

	// Discovery of internal code would normally be filtered by the host; record it
	// anyway to check that the execution path does not touch it.
	reg.RecordDiscovered(internal, region)

	probe := NewProbe(reg, internal, region)
	probe.OnExecuted()

	assert.True(t, probe.Covered())
	assert.Equal(t, []m.Region{region}, reg.UncoveredRegions(internal))
}

func TestProbe_ConcurrentExecution(t *testing.T) {
	const (
		goroutines = 16
		discovered = 40
		executed   = 25
	)

	reg := NewRegistry()
	src := newTestFile("hot.js", discovered)

	probes := make([]*Probe, 0, executed)

	for line := 1; line <= discovered; line++ {
		region := m.Region{StartLine: line, EndLine: line}
		reg.RecordDiscovered(src, region)

		if line <= executed {
			probes = append(probes, NewProbe(reg, src, region))
		}
	}

	var wg sync.WaitGroup

	for range goroutines {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for hit := 0; hit < 100; hit++ {
				for _, probe := range probes {
					probe.OnExecuted()
				}
			}
		}()
	}

	wg.Wait()

	for _, probe := range probes {
		assert.True(t, probe.Covered())
	}

	remaining := reg.UncoveredRegions(src)
	require.Len(t, remaining, discovered-executed)
	assert.Equal(t, m.Region{StartLine: executed + 1, EndLine: executed + 1}, remaining[0])
}
