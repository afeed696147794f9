package genbisbm

import "github.com/katalvlaran/bisbm/apperr"

// Params describes one planted bipartite SBM instance.
//
// Contract:
//   - NA, NB >= 1; Ka, Kb >= 1 and Ka <= NA, Kb <= NB.
//   - PIn is the edge probability between a side-A block and its planted
//     side-B partner (the diagonal of the block-pair matrix, wrapping
//     around if Ka != Kb); POut is the probability for every other
//     side-A/side-B block pair. 0 <= POut <= PIn <= 1.
type Params struct {
	NA, NB int
	Ka, Kb int
	PIn    float64
	POut   float64
}

// DefaultParams returns a small, clearly-clustered instance: two blocks
// per side, dense in-community edges, sparse cross-community edges.
func DefaultParams() Params {
	return Params{NA: 30, NB: 30, Ka: 2, Kb: 2, PIn: 0.6, POut: 0.02}
}

// Validate checks Params against its contract.
func (p Params) Validate() error {
	if p.NA < 1 || p.NB < 1 {
		return apperr.New(apperr.CodeInvalidInput, "genbisbm: NA and NB must be >= 1")
	}
	if p.Ka < 1 || p.Ka > p.NA || p.Kb < 1 || p.Kb > p.NB {
		return apperr.New(apperr.CodeInvalidInput, "genbisbm: Ka/Kb out of range").WithBlocks(p.Ka, p.Kb)
	}
	if p.PIn < 0 || p.PIn > 1 || p.POut < 0 || p.POut > 1 || p.POut > p.PIn {
		return apperr.New(apperr.CodeInvalidInput, "genbisbm: require 0 <= POut <= PIn <= 1")
	}
	return nil
}
