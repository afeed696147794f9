package bigraph

import "fmt"

// RawEdge is an edge as it might appear in an arbitrarily ordered input file:
// endpoints are old (pre-normalization) node indices, not yet partitioned
// into the side-A-first-then-side-B numbering this package expects
// elsewhere.
type RawEdge struct {
	U, V uint32
}

// Permutation records the old<->new node index mapping built by Normalize
// when the input interleaves side-A and side-B nodes, per §3: "an explicit
// old<->new permutation is built if the input is interleaved".
type Permutation struct {
	OldToNew []uint32 // length N, indexed by old node id
	NewToOld []uint32 // length N, indexed by new node id
}

// Normalize takes a raw edge list plus a parallel type vector (types[i] is
// SideA or SideB for old node index i) and returns a normalized *EdgeList
// (side-A nodes renumbered 0..n_a-1, side-B nodes renumbered n_a..N-1, each
// side keeping its original relative order) together with the permutation
// used to get there.
//
// Returns ErrEmptySide if either side has zero nodes, ErrBipartiteViolation
// if any edge has both endpoints on the same side, and ErrSelfLoop if an
// edge is a self-loop (which is always also a same-side edge, but reported
// distinctly since it is a more specific defect).
func Normalize(rawEdges []RawEdge, types []Side) (*EdgeList, *Permutation, error) {
	n := len(types)
	oldToNew := make([]uint32, n)
	var newToOld []uint32
	na := 0
	for i, t := range types {
		switch t {
		case SideA:
			na++
		case SideB:
			// counted below once na is final
		default:
			return nil, nil, fmt.Errorf("bigraph: node %d has invalid type %d", i, t)
		}
	}
	nb := n - na
	if na == 0 || nb == 0 {
		return nil, nil, ErrEmptySide
	}

	newToOld = make([]uint32, n)
	nextA, nextB := uint32(0), uint32(na)
	for i, t := range types {
		if t == SideA {
			oldToNew[i] = nextA
			newToOld[nextA] = uint32(i)
			nextA++
		} else {
			oldToNew[i] = nextB
			newToOld[nextB] = uint32(i)
			nextB++
		}
	}

	pairs := make([]Edge, 0, len(rawEdges))
	for _, re := range rawEdges {
		if re.U == re.V {
			return nil, nil, fmt.Errorf("bigraph: edge (%d,%d): %w", re.U, re.V, ErrSelfLoop)
		}
		tu, tv := types[re.U], types[re.V]
		if tu == tv {
			return nil, nil, fmt.Errorf("bigraph: edge (%d,%d): %w", re.U, re.V, ErrBipartiteViolation)
		}
		u, v := oldToNew[re.U], oldToNew[re.V]
		if tu == SideB {
			u, v = v, u
		}
		pairs = append(pairs, Edge{U: u, V: v - uint32(na)})
	}

	el, err := NewEdgeList(na, nb, pairs)
	if err != nil {
		return nil, nil, err
	}
	return el, &Permutation{OldToNew: oldToNew, NewToOld: newToOld}, nil
}
