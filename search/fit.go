package search

import (
	"github.com/katalvlaran/bisbm/bigraph"
	"github.com/katalvlaran/bisbm/blocksum"
	"github.com/katalvlaran/bisbm/entropy"
	"github.com/katalvlaran/bisbm/qcache"
)

// fit is one (K_a, K_b) evaluation: its partition, block-edge matrix, and
// description length.
type fit struct {
	Ka, Kb int
	Mb     []uint32
	Ers    *bigraph.BlockMatrix
	DL     entropy.DL
}

// evaluate assembles e_rs from (el, mb) and computes its description
// length, per the C3/C2 wiring optimalks.py's _cal_desc_len performs.
func evaluate(el *bigraph.EdgeList, ka, kb int, mb []uint32, q *qcache.Cache, cfg entropy.Config) (fit, error) {
	p, err := bigraph.NewPartition(el, ka, kb, mb)
	if err != nil {
		return fit{}, err
	}
	ers, err := blocksum.AssembleERS(el, p)
	if err != nil {
		return fit{}, err
	}
	dl, err := entropy.Evaluate(el, p, q, cfg)
	if err != nil {
		return fit{}, err
	}
	return fit{Ka: ka, Kb: kb, Mb: mb, Ers: ers, DL: dl}, nil
}
