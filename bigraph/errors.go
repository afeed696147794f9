package bigraph

import "errors"

// Sentinel errors for the bigraph data model. Downstream packages return
// them bare (entropy, and search outside its neighborhood batch), wrapped
// with fmt.Errorf's %w (blocksum), or inside an apperr.Error (search's
// neighborhood batch); errors.Is against these values works in every case.
var (
	// ErrEmptySide indicates that side A or side B has zero nodes.
	ErrEmptySide = errors.New("bigraph: node side is empty")

	// ErrBipartiteViolation indicates an edge with both endpoints on the same side.
	ErrBipartiteViolation = errors.New("bigraph: edge violates bipartite invariant")

	// ErrSelfLoop indicates an edge connecting a node to itself.
	ErrSelfLoop = errors.New("bigraph: self-loop not allowed")

	// ErrNodeOutOfRange indicates an edge endpoint outside [0, N).
	ErrNodeOutOfRange = errors.New("bigraph: node index out of range")

	// ErrBlockOutOfRange indicates Ka > n_a or Kb > n_b.
	ErrBlockOutOfRange = errors.New("bigraph: block count exceeds side size")

	// ErrBlockPurityViolated indicates a node's block label crosses the Ka boundary.
	ErrBlockPurityViolated = errors.New("bigraph: partition violates block-purity invariant")

	// ErrMatrixAsymmetric indicates a block-edge matrix is not symmetric.
	ErrMatrixAsymmetric = errors.New("bigraph: block-edge matrix is not symmetric")

	// ErrMatrixEdgeCountMismatch indicates sum(e_rs) != 2*|E|.
	ErrMatrixEdgeCountMismatch = errors.New("bigraph: block-edge matrix total does not match 2|E|")

	// ErrEmptyBlock indicates an unused block label in [0, K).
	ErrEmptyBlock = errors.New("bigraph: partition has an empty block")

	// ErrLengthMismatch indicates two parallel slices (e.g. types and partition) disagree in length.
	ErrLengthMismatch = errors.New("bigraph: slice lengths do not agree")
)
