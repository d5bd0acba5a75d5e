package coverage

import (
	"math/big"
	"sort"
	"strconv"
	"strings"

	m "github.com/mouse-blink/linecov/internal/model"
)

// UncoveredLineNumbers reduces regions to the sorted, deduplicated line numbers they span.
// A multi-line region marks every line of its span, even if part of it executed.
func UncoveredLineNumbers(regions []m.Region) []int {
	seen := make(map[int]struct{})

	for _, region := range regions {
		for _, line := range region.Lines() {
			seen[line] = struct{}{}
		}
	}

	lines := make([]int, 0, len(seen))
	for line := range seen {
		lines = append(lines, line)
	}

	sort.Ints(lines)

	return lines
}

// CoveredPercentage computes 100 * (total - uncovered) / total.
// A source without lines is fully covered. Lines past totalLines do not count and the
// result never leaves [0, 100].
func CoveredPercentage(totalLines int, uncoveredLines []int) float64 {
	if totalLines <= 0 {
		return 100
	}

	uncovered := 0

	for _, line := range uncoveredLines {
		if line >= 1 && line <= totalLines {
			uncovered++
		}
	}

	return 100 * (float64(totalLines) - float64(uncovered)) / float64(totalLines)
}

// FormatPercentage renders p with exactly two decimals. Halves round up, applied to
// the shortest decimal form of p, so 99.125 renders as "99.13".
func FormatPercentage(p float64) string {
	shortest := strconv.FormatFloat(p, 'f', -1, 64)

	negative := strings.HasPrefix(shortest, "-")
	shortest = strings.TrimPrefix(shortest, "-")

	whole, frac, _ := strings.Cut(shortest, ".")
	roundUp := len(frac) > 2 && frac[2] >= '5'
	frac = (frac + "00")[:2]

	hundredths, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return strconv.FormatFloat(p, 'f', 2, 64)
	}

	if roundUp {
		hundredths.Add(hundredths, big.NewInt(1))
	}

	digits := hundredths.String()
	if len(digits) < 3 {
		digits = strings.Repeat("0", 3-len(digits)) + digits
	}

	out := digits[:len(digits)-2] + "." + digits[len(digits)-2:]
	if negative && strings.Trim(digits, "0") != "" {
		out = "-" + out
	}

	return out
}
