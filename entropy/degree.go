package entropy

import "github.com/katalvlaran/bisbm/qcache"

// Degree computes S_deg, the degree-sequence term (§4.3).
//
// Under the Distributed prior (the default), each block contributes a
// restricted-integer-partition term looked up in q, plus a correction for
// the multiplicity of nodes sharing the same internal degree:
//
//	S_deg = Sum_r log_q(e_r, n_r, Q)
//	      + Sum_r (logGamma(n_r+1) - Sum_k logGamma(eta_rk+1))
//
// Under the Uniform prior, each block instead contributes a single
// binomial term: S_deg = Sum_r logC(n_r+e_r-1, e_r).
//
// er is the per-block internal degree e_r = BlockMatrix.RowSum(r), nr is
// the block-size vector, etaRk is the degree-by-block histogram (only
// consulted under Distributed), and q is the shared integer-partition
// cache.
func Degree(prior DegreePrior, er []uint64, nr []uint32, etaRk [][]uint64, q *qcache.Cache) float64 {
	if prior == Uniform {
		var total float64
		for r := range nr {
			total += logC(float64(nr[r])+float64(er[r])-1, float64(er[r]))
		}
		return total
	}

	var total float64
	for r := range nr {
		total += qcache.LogQ(int(er[r]), int(nr[r]), q)

		sumEta := 0.0
		for _, c := range etaRk[r] {
			sumEta += lgamma1(float64(c))
		}
		total += lgamma1(float64(nr[r])) - sumEta
	}
	return total
}
