package mergecost

import "math/rand"

// Pair is a candidate same-type block pair (p < q) considered for merging.
type Pair struct {
	P, Q int
}

// SamplePairs builds the candidate pool for one MERGE_LOOP iteration (§4.6
// step 3a): for each block index m in [0,K), draw nm random block indices
// from [0,K); form ordered pairs (min,max); keep same-type pairs (both <
// ka, or both >= ka) that aren't forbidden by the emptiness guard (p=0 with
// ka=1, or p=ka with kb=1 — merging the last remaining block on a side);
// deduplicate.
func SamplePairs(rng *rand.Rand, k, ka, kb, nm int) []Pair {
	seen := make(map[Pair]struct{})
	pairs := make([]Pair, 0, nm)

	forbidden := func(p int) bool {
		return (p == 0 && ka == 1) || (p == ka && kb == 1)
	}

	for m := 0; m < k; m++ {
		for i := 0; i < nm; i++ {
			other := rng.Intn(k)
			p, q := m, other
			if p == q {
				continue
			}
			if p > q {
				p, q = q, p
			}
			sameType := (p < ka) == (q < ka)
			if !sameType {
				continue
			}
			if forbidden(p) {
				continue
			}
			key := Pair{P: p, Q: q}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			pairs = append(pairs, key)
		}
	}
	return pairs
}
