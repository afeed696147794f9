package search

import "math/rand"

// neighbor is a candidate (K_a, K_b) point in CHECK_LOCAL_MIN's
// neighborhood scan.
type neighbor struct {
	Ka, Kb int
}

// chebyshev returns max(|i|,|j|) for the offset (i,j).
func chebyshev(i, j int) int {
	if i < 0 {
		i = -i
	}
	if j < 0 {
		j = -j
	}
	if i > j {
		return i
	}
	return j
}

// enumerateNeighbors builds the (K_a+i, K_b+j) candidates for (i,j) in
// [-kappa,kappa]^2, excluding the self point and any out-of-bounds point
// (1<=Ka<=na, 1<=Kb<=nb), ordered by Chebyshev distance descending and
// shuffled within each distance tier (§4.6 step 2d).
func enumerateNeighbors(rng *rand.Rand, ka, kb, na, nb, kappa int) []neighbor {
	byDist := make(map[int][]neighbor)
	maxDist := 0
	for i := -kappa; i <= kappa; i++ {
		for j := -kappa; j <= kappa; j++ {
			if i == 0 && j == 0 {
				continue
			}
			nKa, nKb := ka+i, kb+j
			if nKa < 1 || nKa > na || nKb < 1 || nKb > nb {
				continue
			}
			d := chebyshev(i, j)
			byDist[d] = append(byDist[d], neighbor{Ka: nKa, Kb: nKb})
			if d > maxDist {
				maxDist = d
			}
		}
	}

	out := make([]neighbor, 0, kappa*kappa*8)
	for d := maxDist; d >= 1; d-- {
		group := byDist[d]
		rng.Shuffle(len(group), func(i, j int) { group[i], group[j] = group[j], group[i] })
		out = append(out, group...)
	}
	return out
}
