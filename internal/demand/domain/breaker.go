package demand

import (
	"math"
	"sort"
)

// StandardBreakers lists the commercially available breaker ratings in
// ascending amps.
var StandardBreakers = []int{60, 100, 125, 150, 200, 225, 300, 400}

// NextStandardBreaker returns the smallest standard rating at or above
// amps, after rounding half away from zero. Amperages above the table
// yield the rounded value plus one so oversized services still get a
// usable number instead of an error.
func NextStandardBreaker(amps float64) int {
	rounded := int(math.Round(amps))
	i := sort.SearchInts(StandardBreakers, rounded)
	if i < len(StandardBreakers) {
		return StandardBreakers[i]
	}
	return rounded + 1
}
