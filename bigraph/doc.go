// Package bigraph defines the typed data model shared by every stage of the
// bipartite stochastic block model pipeline: the edge list over two disjoint
// node sets, the type vector that tells nodes apart, the partition that
// assigns nodes to blocks, and the block-edge matrix derived from them.
//
// Every sequence here is a concrete, strictly typed slice — []uint32 for node
// and block indices, [][]uint64 for the block-edge matrix — never a bare
// interface{}. Coercion from loosely typed input (strings from a parsed
// file, say) belongs at the I/O boundary in package ioformat, not here.
//
// Invariants enforced by this package:
//
//	Bipartite   — no edge has both endpoints on the same side (A or B).
//	Block-purity — every type-a node's block label is < Ka; every type-b
//	               node's block label is >= Ka.
//	Symmetry    — the block-edge matrix E is equal to its transpose, and
//	              sum(E) == 2*len(edges).
//
// Errors:
//
//	ErrEmptySide          - one of the two node sides has zero nodes.
//	ErrBipartiteViolation - an edge has both endpoints on the same side.
//	ErrSelfLoop           - an edge connects a node to itself.
//	ErrBlockOutOfRange    - Ka or Kb exceeds the number of nodes on that side.
//	ErrBlockPurityViolated - a node's block label violates block-purity.
//	ErrMatrixAsymmetric   - a block-edge matrix failed the symmetry check.
//	ErrEmptyBlock         - a block label in [0,K) has zero members.
package bigraph
