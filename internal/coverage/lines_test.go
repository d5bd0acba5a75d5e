package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/linecov/internal/model"
)

func TestUncoveredLineNumbers(t *testing.T) {
	tests := []struct {
		name    string
		regions []m.Region
		want    []int
	}{
		{
			name:    "no regions",
			regions: nil,
			want:    []int{},
		},
		{
			name:    "single multi-line region",
			regions: []m.Region{{StartLine: 5, EndLine: 7}},
			want:    []int{5, 6, 7},
		},
		{
			name:    "overlapping regions count each line once",
			regions: []m.Region{{StartLine: 6, EndLine: 9}, {StartLine: 5, EndLine: 7}},
			want:    []int{5, 6, 7, 8, 9},
		},
		{
			name:    "disjoint regions are sorted",
			regions: []m.Region{{StartLine: 30, EndLine: 30}, {StartLine: 2, EndLine: 2}, {StartLine: 11, EndLine: 12}},
			want:    []int{2, 11, 12, 30},
		},
		{
			name:    "invalid regions contribute nothing",
			regions: []m.Region{{StartLine: 4, EndLine: 3}, {StartLine: 1, EndLine: 1}},
			want:    []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UncoveredLineNumbers(tt.regions))
		})
	}
}

func TestCoveredPercentage(t *testing.T) {
	fourteen := []int{47, 48, 49, 50, 51, 52, 53, 54, 55, 56, 57, 58, 61, 67}

	tests := []struct {
		name      string
		total     int
		uncovered []int
		want      string
	}{
		{name: "100 lines with 14 uncovered", total: 100, uncovered: fourteen, want: "86.00"},
		{name: "70 lines with 14 uncovered", total: 70, uncovered: fourteen, want: "80.00"},
		{name: "fully covered", total: 12, uncovered: nil, want: "100.00"},
		{name: "nothing covered", total: 3, uncovered: []int{1, 2, 3}, want: "0.00"},
		{name: "no real-number truncation", total: 3, uncovered: []int{1}, want: "66.67"},
		{name: "zero-line source", total: 0, uncovered: nil, want: "100.00"},
		{name: "zero-line source with stale regions", total: 0, uncovered: []int{1, 2}, want: "100.00"},
		{name: "lines past the end are ignored", total: 4, uncovered: []int{4, 5, 6}, want: "75.00"},
		{name: "exact half rounds up", total: 800, uncovered: []int{1, 2, 3, 4, 5, 6, 7}, want: "99.13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPercentage(CoveredPercentage(tt.total, tt.uncovered)))
		})
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "86.00", FormatPercentage(86))
	assert.Equal(t, "33.33", FormatPercentage(100.0/3))
	assert.Equal(t, "100.00", FormatPercentage(100))

	tests := []struct {
		in   float64
		want string
	}{
		{in: 99.125, want: "99.13"},
		{in: 0.125, want: "0.13"},
		{in: 1.005, want: "1.01"},
		{in: 99.995, want: "100.00"},
		{in: 12.344999, want: "12.34"},
		{in: 0, want: "0.00"},
		{in: 7.5, want: "7.50"},
		{in: 1e-9, want: "0.00"},
		{in: -2.125, want: "-2.13"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPercentage(tt.in), "FormatPercentage(%v)", tt.in)
	}
}
