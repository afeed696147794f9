package mergecost

import (
	"math"

	"github.com/katalvlaran/bisbm/bigraph"
)

// Best scores every candidate pair with Delta and returns the one with the
// smallest nonnegative change, per §4.4 ("the merge-scorer selects ... the
// one with minimum nonnegative Δ"). The second return is false when pairs
// is empty or every candidate scores negative — the caller resamples.
func Best(ers *bigraph.BlockMatrix, ka int, pairs []Pair) (Pair, float64, bool) {
	bestDelta := math.Inf(1)
	var best Pair
	found := false
	for _, pr := range pairs {
		d := Delta(ers, pr.P, pr.Q, ka)
		if d < 0 {
			continue
		}
		if d < bestDelta {
			bestDelta = d
			best = pr
			found = true
		}
	}
	return best, bestDelta, found
}
