// Package engine wraps the opaque partitioning engine contract (§4.5):
// given an edge list and a target (K_a, K_b), produce a partition. Two
// implementations satisfy Engine: Greedy, an in-process degree-corrected
// local-search reference engine, and Exec, a subprocess adapter for an
// external KL/MCMC-style binary.
package engine

import (
	"context"

	"github.com/katalvlaran/bisbm/bigraph"
)

// Method selects whether the engine partitions at a caller-specified
// (K_a, K_b) or decides the block counts itself (§4.5).
type Method uint8

const (
	// Standard partitions at the caller's requested (K_a, K_b).
	Standard Method = iota
	// Natural lets the engine choose (K_a, K_b); Result.Ka/Kb report
	// what it picked.
	Natural
)

// CoolingKind enumerates the annealing schedules an engine invocation may
// request (§4.5).
type CoolingKind uint8

const (
	Exponential CoolingKind = iota
	Logarithmic
	Linear
	Constant
	AbruptCool
)

// Cooling bundles a schedule kind with its one or two scalar parameters.
type Cooling struct {
	Kind CoolingKind
	P1   float64
	P2   float64 // only meaningful for schedules that take two parameters
}

// Config bundles the engine options §4.5 calls "a configuration-bundle of
// engine options": annealing schedule, sweep count, and the epsilon
// proposal parameter.
type Config struct {
	NSweeps int
	Cooling Cooling
	Epsilon float64
}

// DefaultConfig returns a reasonable engine configuration.
func DefaultConfig() Config {
	return Config{
		NSweeps: 4,
		Cooling: Cooling{Kind: Exponential, P1: 0.99},
		Epsilon: 0.1,
	}
}

// Request is one engine invocation's input.
type Request struct {
	EdgeList *bigraph.EdgeList
	Ka, Kb   int
	WarmMb   []uint32 // optional warm-start partition, honoring block-purity
	Method   Method
	Config   Config
}

// Result is one engine invocation's output. Ka/Kb echo the request under
// Standard, or report the engine's own choice under Natural.
type Result struct {
	Partition []uint32
	Ka, Kb    int
}

// Engine is the opaque partitioning contract (§4.5):
// engine(edges_file, n_a, n_b, K_a, K_b, mb?, method?) -> partition.
type Engine interface {
	Run(ctx context.Context, req Request) (Result, error)
}
