package blocksum

import (
	"fmt"

	"github.com/katalvlaran/bisbm/bigraph"
)

// AssembleERS builds the K x K block-edge matrix from an edge list and a
// partition, where K = p.K() (§4.2). Each edge (u, v) increments both
// M[b[u]][b[v]] and M[b[v]][b[u]], since e_rs is symmetric by construction
// even though the underlying graph is bipartite and undirected.
//
// The dense K x K matrix is allocated up front and each edge is added into
// it directly, so memory is O(K^2) even at K = N (one node per block).
func AssembleERS(el *bigraph.EdgeList, p *bigraph.Partition) (*bigraph.BlockMatrix, error) {
	if err := checkLengths(el, p); err != nil {
		return nil, err
	}
	m := bigraph.NewBlockMatrix(p.K())
	for i := 0; i < el.Len(); i++ {
		// r is always a side-A (type-a) block and s a side-B (type-b) block
		// under the block-purity invariant, so r != s always: same-type
		// diagonal blocks never receive mass, matching the zero-diagonal
		// consequence of bipartiteness noted in §3.
		r := p.Labels[el.GlobalU(i)]
		s := p.Labels[el.GlobalV(i)]
		m.Add(int(r), int(s), 1)
		m.Add(int(s), int(r), 1)
	}
	return m, nil
}

// AssembleNR returns the block-size vector n_r: a single pass over the
// partition counting nodes per block.
func AssembleNR(p *bigraph.Partition) []uint32 {
	nr := make([]uint32, p.K())
	for _, b := range p.Labels {
		nr[b]++
	}
	return nr
}

// degrees returns the per-node degree vector (length el.N()), counting
// parallel edges.
func degrees(el *bigraph.EdgeList) []uint32 {
	deg := make([]uint32, el.N())
	for i := 0; i < el.Len(); i++ {
		deg[el.GlobalU(i)]++
		deg[el.GlobalV(i)]++
	}
	return deg
}

// AssembleNK returns the global degree histogram n_k: n_k[k] is the number
// of nodes with degree k.
func AssembleNK(el *bigraph.EdgeList) []uint64 {
	deg := degrees(el)
	maxK := uint32(0)
	for _, d := range deg {
		if d > maxK {
			maxK = d
		}
	}
	nk := make([]uint64, maxK+1)
	for _, d := range deg {
		nk[d]++
	}
	return nk
}

// AssembleEtaRK returns the degree-by-block histogram eta_rk: eta[r][k] is
// the number of nodes of degree k in block r. sum_k eta[r][k] == n_r[r] for
// every r.
func AssembleEtaRK(el *bigraph.EdgeList, p *bigraph.Partition) ([][]uint64, error) {
	if err := checkLengths(el, p); err != nil {
		return nil, err
	}
	deg := degrees(el)
	maxK := uint32(0)
	for _, d := range deg {
		if d > maxK {
			maxK = d
		}
	}
	eta := make([][]uint64, p.K())
	for r := range eta {
		eta[r] = make([]uint64, maxK+1)
	}
	for i, b := range p.Labels {
		eta[b][deg[i]]++
	}
	return eta, nil
}

func checkLengths(el *bigraph.EdgeList, p *bigraph.Partition) error {
	if len(p.Labels) != el.N() {
		return fmt.Errorf("blocksum: partition length %d != N %d: %w", len(p.Labels), el.N(), bigraph.ErrLengthMismatch)
	}
	return nil
}
