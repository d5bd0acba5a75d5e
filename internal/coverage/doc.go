// Package coverage implements line coverage bookkeeping driven by execution events.
//
// A host engine announces every region it discovers (OnDiscovered) and calls the
// probe of a region each time the region runs (OnExecuted). The Registry keeps the
// regions that never ran; the Reporter reduces them to line numbers and renders
//
//	==
//	Coverage of <path> is <percentage>%
//	Lines not covered by execution:
//	<line> <text>
//
// once per source. Reporting is triggered by the host via Instrument.Shutdown or
// PrintReport; the package installs no exit hooks.
package coverage
