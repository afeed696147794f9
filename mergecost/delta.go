package mergecost

import (
	"math"

	"github.com/katalvlaran/bisbm/bigraph"
)

func lgamma1(x float64) float64 {
	v, _ := math.Lgamma(x + 1)
	return v
}

// Delta computes the closed-form change in the adjacency+partition
// block-level contribution from collapsing rows/columns p and q of ers into
// a single block (§4.4):
//
//	Delta = - Sum_s logGamma(e_ps+e_qs+1)   (opposite-type s)
//	      + Sum_s logGamma(e_ps+1)
//	      + Sum_s logGamma(e_qs+1)
//	      + logGamma(e_p+e_q+1) - logGamma(e_p+1) - logGamma(e_q+1)
//
// p and q must be distinct, same-type blocks (enforced by the caller, as
// in §4.4); ka is the number of side-A blocks, used to tell which columns
// of ers are "opposite type" to p and q.
func Delta(ers *bigraph.BlockMatrix, p, q, ka int) float64 {
	sameTypeA := p < ka
	var sumMerged, sumP, sumQ float64
	for s := 0; s < ers.K; s++ {
		isOpposite := (s < ka) != sameTypeA
		if !isOpposite {
			continue
		}
		eps := ers.At(p, s)
		eqs := ers.At(q, s)
		sumMerged -= lgamma1(float64(eps + eqs))
		sumP += lgamma1(float64(eps))
		sumQ += lgamma1(float64(eqs))
	}

	ep := ers.RowSum(p)
	eq := ers.RowSum(q)
	merged := lgamma1(float64(ep + eq))
	split := lgamma1(float64(ep)) + lgamma1(float64(eq))

	return sumMerged + sumP + sumQ + merged - split
}
