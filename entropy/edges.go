package entropy

// Edges computes S_edges, the closed-form edge-count term (§4.3):
//
//	S_edges = logC(x + e - 1, e)
//
// with x = Ka*Kb under the Bipartite prior, or x = K*(K+1)/2 with
// K = Ka+Kb under the Flat prior. e is the total edge count |E|.
func Edges(prior PartitionPrior, ka, kb, e int) float64 {
	var x int
	if prior == Flat {
		k := ka + kb
		x = k * (k + 1) / 2
	} else {
		x = ka * kb
	}
	return logC(float64(x+e-1), float64(e))
}
