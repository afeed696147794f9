package entropy

import "math"

// Partition computes S_partition, the node-partition prior (§4.3).
//
// Under the Bipartite prior (the default, and the only prior this system's
// Non-goals require for an actual bipartite graph), side A and side B are
// counted independently:
//
//	S_partition = logC(n_a-1, K_a-1) + logC(n_b-1, K_b-1)
//	            + logGamma(n_a+1) + logGamma(n_b+1) - Sum_r logGamma(n_r+1)
//	            + log(n_a) + log(n_b)
//
// The Flat fallback treats the graph as a single N-node, K-block system:
//
//	S_partition = logC(K+N-1, N) + logGamma(N+1) - Sum_r logGamma(n_r+1) + log(N)
//
// nr is the block-size vector n_r (length Ka+Kb under Bipartite, length K
// under Flat); search never selects Flat for a bipartite fit, but the
// closed form is kept because §4.3 specifies it explicitly.
func Partition(prior PartitionPrior, na, nb, ka, kb int, nr []uint32) float64 {
	var sumLogNr float64
	for _, n := range nr {
		sumLogNr += lgamma1(float64(n))
	}

	if prior == Flat {
		n := na + nb
		k := ka + kb
		return logC(float64(k+n-1), float64(n)) + lgamma1(float64(n)) - sumLogNr + math.Log(float64(n))
	}

	return logC(float64(na-1), float64(ka-1)) + logC(float64(nb-1), float64(kb-1)) +
		lgamma1(float64(na)) + lgamma1(float64(nb)) - sumLogNr +
		math.Log(float64(na)) + math.Log(float64(nb))
}
