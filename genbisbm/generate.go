package genbisbm

import (
	"math/rand"

	"github.com/katalvlaran/bisbm/bigraph"
)

// Generate samples a planted bipartite SBM instance from Params using rng,
// returning the sampled edge list and its ground-truth block labels (length
// NA+NB, side-A labels in [0,Ka), side-B labels in [Ka,Ka+Kb), honoring the
// block-purity convention §3 also uses).
//
// Complexity: O(NA*NB) — every side-A/side-B pair is a single Bernoulli
// trial, mirroring builder.CompleteBipartite's O(n1*n2) cross-pair
// enumeration but with coin flips standing in for guaranteed edges.
func Generate(rng *rand.Rand, p Params) (*bigraph.EdgeList, []uint32, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}

	labels := plantLabels(rng, p)

	var edges []bigraph.Edge
	for u := 0; u < p.NA; u++ {
		aBlock := labels[u]
		for v := 0; v < p.NB; v++ {
			bBlock := labels[p.NA+v] - uint32(p.Ka)
			prob := p.POut
			if samePair(aBlock, bBlock, p.Ka, p.Kb) {
				prob = p.PIn
			}
			if rng.Float64() < prob {
				edges = append(edges, bigraph.Edge{U: uint32(u), V: uint32(v)})
			}
		}
	}

	el, err := bigraph.NewEdgeList(p.NA, p.NB, edges)
	if err != nil {
		return nil, nil, err
	}
	return el, labels, nil
}

// samePair reports whether side-A block a and side-B block b are each
// other's planted partner, pairing by index modulo the smaller side's
// block count when Ka != Kb.
func samePair(a, b uint32, ka, kb int) bool {
	if ka <= kb {
		return int(a) == int(b)%ka
	}
	return int(a)%kb == int(b)
}

// plantLabels deterministically assigns a balanced block to every node: node
// i on a side gets block i modulo that side's block count, then the
// assignment is shuffled so block membership isn't visible from node index
// order alone.
func plantLabels(rng *rand.Rand, p Params) []uint32 {
	n := p.NA + p.NB
	labels := make([]uint32, n)
	for i := 0; i < p.NA; i++ {
		labels[i] = uint32(i % p.Ka)
	}
	for i := 0; i < p.NB; i++ {
		labels[p.NA+i] = uint32(p.Ka + i%p.Kb)
	}
	rng.Shuffle(p.NA, func(i, j int) { labels[i], labels[j] = labels[j], labels[i] })
	rng.Shuffle(p.NB, func(i, j int) {
		labels[p.NA+i], labels[p.NA+j] = labels[p.NA+j], labels[p.NA+i]
	})
	return labels
}
