package bigraph

import "fmt"

// Side distinguishes the two disjoint node sets of a bipartite graph.
type Side uint8

const (
	// SideA is the first node side ("type 1" in the wire format, §6).
	SideA Side = 1
	// SideB is the second node side ("type 2" in the wire format, §6).
	SideB Side = 2
)

// Edge is an unordered pair (U, V) with U on side A and V on side B, indices
// 0-based into the normalized node numbering (§3: "Node indices 0..n_a-1 are
// type-1, n_a..N-1 are type-2 after normalization").
type Edge struct {
	U uint32 // index into side A
	V uint32 // index into side B
}

// EdgeList is the normalized, 0-based edge set of a bipartite graph. Parallel
// edges are permitted and counted; self-loops never occur by construction
// (U indexes side A, V indexes side B).
type EdgeList struct {
	NA    int // number of side-A nodes
	NB    int // number of side-B nodes
	edges []Edge
}

// NewEdgeList validates and wraps raw (u,v) pairs already expressed in the
// normalized 0-based numbering described in package doc. u must be < na,
// v must be < nb for every edge.
//
// Complexity: O(len(pairs)).
func NewEdgeList(na, nb int, pairs []Edge) (*EdgeList, error) {
	if na <= 0 || nb <= 0 {
		return nil, ErrEmptySide
	}
	for _, e := range pairs {
		if int(e.U) >= na {
			return nil, fmt.Errorf("bigraph: edge (%d,%d): %w", e.U, e.V, ErrNodeOutOfRange)
		}
		if int(e.V) >= nb {
			return nil, fmt.Errorf("bigraph: edge (%d,%d): %w", e.U, e.V, ErrNodeOutOfRange)
		}
	}
	cp := make([]Edge, len(pairs))
	copy(cp, pairs)
	return &EdgeList{NA: na, NB: nb, edges: cp}, nil
}

// Edges returns the underlying edge slice. Callers must not mutate it.
func (el *EdgeList) Edges() []Edge { return el.edges }

// Len reports the number of edges (|E|, counting parallel edges).
func (el *EdgeList) Len() int { return len(el.edges) }

// N returns the total node count N = n_a + n_b.
func (el *EdgeList) N() int { return el.NA + el.NB }

// GlobalU returns the 0-based global node index of edge i's A-endpoint.
func (el *EdgeList) GlobalU(i int) uint32 { return el.edges[i].U }

// GlobalV returns the 0-based global node index of edge i's B-endpoint,
// offset into the shared [0, N) numbering (side B starts at NA).
func (el *EdgeList) GlobalV(i int) uint32 { return el.edges[i].V + uint32(el.NA) }

// TypeVector returns the length-N type vector implied by (NA, NB): the first
// NA entries are SideA, the rest SideB (§3).
func (el *EdgeList) TypeVector() []Side {
	t := make([]Side, el.N())
	for i := 0; i < el.NA; i++ {
		t[i] = SideA
	}
	for i := el.NA; i < el.N(); i++ {
		t[i] = SideB
	}
	return t
}

// Partition assigns every node (in the global 0..N-1 numbering) to a block.
// Block labels [0, Ka) are type-a blocks; [Ka, Ka+Kb) are type-b blocks
// (§3 block-purity invariant).
type Partition struct {
	Ka, Kb int
	Labels []uint32 // length N
}

// NewPartition validates block-purity against an edge list's implied type
// vector and returns a Partition. labels must have length el.N(); every
// label for a side-A node must be < ka, every label for a side-B node must
// be >= ka and < ka+kb.
func NewPartition(el *EdgeList, ka, kb int, labels []uint32) (*Partition, error) {
	if len(labels) != el.N() {
		return nil, ErrLengthMismatch
	}
	if ka <= 0 || ka > el.NA {
		return nil, fmt.Errorf("bigraph: ka=%d: %w", ka, ErrBlockOutOfRange)
	}
	if kb <= 0 || kb > el.NB {
		return nil, fmt.Errorf("bigraph: kb=%d: %w", kb, ErrBlockOutOfRange)
	}
	for i, b := range labels {
		isA := i < el.NA
		if isA && int(b) >= ka {
			return nil, fmt.Errorf("bigraph: node %d (side A) has block %d >= ka=%d: %w", i, b, ka, ErrBlockPurityViolated)
		}
		if !isA && (int(b) < ka || int(b) >= ka+kb) {
			return nil, fmt.Errorf("bigraph: node %d (side B) has block %d outside [%d,%d): %w", i, b, ka, ka+kb, ErrBlockPurityViolated)
		}
	}
	cp := make([]uint32, len(labels))
	copy(cp, labels)
	return &Partition{Ka: ka, Kb: kb, Labels: cp}, nil
}

// K returns the total number of blocks Ka + Kb.
func (p *Partition) K() int { return p.Ka + p.Kb }

// BlockMatrix is the K x K symmetric block-edge count matrix e_rs, with
// zero diagonal blocks between same-type block pairs enforced upstream by
// bipartiteness (not by this type, which is a plain dense container).
type BlockMatrix struct {
	K    int
	data [][]uint64
}

// NewBlockMatrix allocates a zeroed K x K block matrix.
func NewBlockMatrix(k int) *BlockMatrix {
	data := make([][]uint64, k)
	for i := range data {
		data[i] = make([]uint64, k)
	}
	return &BlockMatrix{K: k, data: data}
}

// At returns e_rs[r][s].
func (m *BlockMatrix) At(r, s int) uint64 { return m.data[r][s] }

// Add increments e_rs[r][s] by delta.
func (m *BlockMatrix) Add(r, s int, delta uint64) { m.data[r][s] += delta }

// Row returns the r-th row e_{r,*}. Callers must not mutate it.
func (m *BlockMatrix) Row(r int) []uint64 { return m.data[r] }

// RowSum returns e_r = sum_s e_{rs} for block r.
func (m *BlockMatrix) RowSum(r int) uint64 {
	var sum uint64
	for _, v := range m.data[r] {
		sum += v
	}
	return sum
}

// Total returns sum_{r,s} e_{rs}, which must equal 2*|E| for a valid matrix.
func (m *BlockMatrix) Total() uint64 {
	var sum uint64
	for r := 0; r < m.K; r++ {
		sum += m.RowSum(r)
	}
	return sum
}

// CheckSymmetric validates e_rs == e_sr for all r,s. Returns
// ErrMatrixAsymmetric on the first violation found.
func (m *BlockMatrix) CheckSymmetric() error {
	for r := 0; r < m.K; r++ {
		for s := r + 1; s < m.K; s++ {
			if m.data[r][s] != m.data[s][r] {
				return fmt.Errorf("bigraph: e[%d][%d]=%d e[%d][%d]=%d: %w", r, s, m.data[r][s], s, r, m.data[s][r], ErrMatrixAsymmetric)
			}
		}
	}
	return nil
}

// CheckTotal validates sum(e_rs) == 2*nEdges.
func (m *BlockMatrix) CheckTotal(nEdges int) error {
	want := uint64(2 * nEdges)
	if got := m.Total(); got != want {
		return fmt.Errorf("bigraph: total(e_rs)=%d want=%d: %w", got, want, ErrMatrixEdgeCountMismatch)
	}
	return nil
}

// Clone returns a deep copy of the block matrix.
func (m *BlockMatrix) Clone() *BlockMatrix {
	cp := NewBlockMatrix(m.K)
	for r := 0; r < m.K; r++ {
		copy(cp.data[r], m.data[r])
	}
	return cp
}
