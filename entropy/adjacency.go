package entropy

import (
	"github.com/katalvlaran/bisbm/bigraph"
)

// pairKey identifies an unordered pair of global node indices.
type pairKey struct{ lo, hi uint32 }

// nodePairMultiplicities counts, for every unordered pair of distinct nodes
// that share at least one edge, how many parallel edges connect them
// (m_ij in §4.3). Self-loops never occur under the bipartite invariant, so
// no key ever has lo == hi.
func nodePairMultiplicities(el *bigraph.EdgeList) map[pairKey]uint64 {
	m := make(map[pairKey]uint64, el.Len())
	for i := 0; i < el.Len(); i++ {
		u, v := el.GlobalU(i), el.GlobalV(i)
		k := pairKey{lo: u, hi: v}
		if u > v {
			k.lo, k.hi = v, u
		}
		m[k]++
	}
	return m
}

// Adjacency computes S_adj, the microcanonical degree-corrected-multigraph
// adjacency term (§4.3), given the block-edge matrix, the per-block degree
// vector derived from it, the global edge list (for the per-node-pair
// multigraph correction), and the degree histogram nk.
func Adjacency(el *bigraph.EdgeList, ers *bigraph.BlockMatrix, nk []uint64) float64 {
	k := ers.K

	var offDiag float64
	for r := 0; r < k; r++ {
		for s := 0; s < k; s++ {
			if r == s {
				continue
			}
			offDiag += lgamma1(float64(ers.At(r, s)))
		}
	}
	offDiag *= -0.5

	var selfBlock float64
	for r := 0; r < k; r++ {
		selfBlock -= logDoubleFactorial(ers.At(r, r))
	}

	var degreeSum float64
	for r := 0; r < k; r++ {
		degreeSum += lgamma1(float64(ers.RowSum(r)))
	}

	var multiOffDiag, multiSelf float64
	for pair, m := range nodePairMultiplicities(el) {
		if pair.lo == pair.hi {
			if m > 1 {
				multiSelf += logDoubleFactorial(m)
			}
			continue
		}
		if m > 1 {
			multiOffDiag += lgamma1(float64(m))
		}
	}

	var degCorrection float64
	for deg, count := range nk {
		if count == 0 {
			continue
		}
		degCorrection += float64(count) * lgamma1(float64(deg))
	}

	return offDiag + selfBlock + degreeSum + multiOffDiag + multiSelf - degCorrection
}
