package entropy

import (
	"github.com/katalvlaran/bisbm/bigraph"
	"github.com/katalvlaran/bisbm/blocksum"
	"github.com/katalvlaran/bisbm/qcache"
)

// Config selects the prior kinds used by Evaluate (§4.3's "configuration
// choice" for the degree term, plus the partition prior).
type Config struct {
	Degree    DegreePrior
	Partition PartitionPrior
}

// DefaultConfig is the distributed-degree, bipartite-partition combination
// that search always uses for an actual bipartite fit.
func DefaultConfig() Config {
	return Config{Degree: Distributed, Partition: Bipartite}
}

// Evaluate computes the full description length of a (edge list, partition)
// fit, deriving all four block-summary statistics internally via package
// blocksum and combining them into a DL per §4.3.
func Evaluate(el *bigraph.EdgeList, p *bigraph.Partition, q *qcache.Cache, cfg Config) (DL, error) {
	ers, err := blocksum.AssembleERS(el, p)
	if err != nil {
		return DL{}, err
	}
	nr := blocksum.AssembleNR(p)
	nk := blocksum.AssembleNK(el)
	etaRk, err := blocksum.AssembleEtaRK(el, p)
	if err != nil {
		return DL{}, err
	}

	er := make([]uint64, p.K())
	for r := 0; r < p.K(); r++ {
		er[r] = ers.RowSum(r)
	}

	return DL{
		Adjacency: Adjacency(el, ers, nk),
		Partition: Partition(cfg.Partition, el.NA, el.NB, p.Ka, p.Kb, nr),
		Edges:     Edges(cfg.Partition, p.Ka, p.Kb, el.Len()),
		Degree:    Degree(cfg.Degree, er, nr, etaRk, q),
	}, nil
}
