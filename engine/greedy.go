package engine

import (
	"context"
	"math/rand"
	"sync"

	"github.com/katalvlaran/bisbm/apperr"
	"github.com/katalvlaran/bisbm/bigraph"
	"github.com/katalvlaran/bisbm/entropy"
	"github.com/katalvlaran/bisbm/qcache"
)

// Greedy is an in-process reference engine: a degree-corrected
// Kernighan-Lin-style local search that reassigns one node at a time to the
// block minimizing description length, for up to NSweeps passes over all
// nodes, stopping early after a pass that moves no node.
// It has no external dependency and exists so the search driver is
// exercisable without the subprocess-based Exec adapter. A single Greedy
// value may be invoked concurrently (package search's neighborhood batch
// does exactly this, §4.6 step 2d); rngMu guards the one piece of mutable
// state math/rand.Rand is not itself safe for concurrent use.
type Greedy struct {
	Rng *rand.Rand
	Q   *qcache.Cache

	rngMu sync.Mutex
}

// NewGreedy builds a Greedy engine with its own integer-partition cache.
func NewGreedy(rng *rand.Rand, qMax int) *Greedy {
	return &Greedy{Rng: rng, Q: qcache.Init(qMax)}
}

// Run implements Engine. Under Standard it hill-climbs from a warm or
// random start at the requested (Ka, Kb). Under Natural it starts from the
// all-singleton partition and greedily merges same-type block pairs while
// description length keeps improving, reporting whatever (Ka, Kb) it
// converges to.
func (g *Greedy) Run(ctx context.Context, req Request) (Result, error) {
	if req.Method == Natural {
		return g.runNatural(ctx, req)
	}
	return g.runStandard(ctx, req)
}

func (g *Greedy) runStandard(ctx context.Context, req Request) (Result, error) {
	el := req.EdgeList
	labels := g.initialLabels(el, req.Ka, req.Kb, req.WarmMb)

	cfg := entropy.DefaultConfig()
	for sweep := 0; sweep < req.Config.NSweeps; sweep++ {
		select {
		case <-ctx.Done():
			return Result{}, apperr.Wrap(apperr.CodeEngineFailure, "greedy engine canceled", ctx.Err())
		default:
		}
		improved := g.sweepOnce(el, labels, req.Ka, req.Kb, cfg)
		if !improved {
			break
		}
	}

	return Result{Partition: labels, Ka: req.Ka, Kb: req.Kb}, nil
}

// sweepOnce tries, for every node, moving it to each same-side block and
// keeps the move if it strictly lowers total DL while preserving
// non-emptiness of its origin block. Returns whether any move was made.
func (g *Greedy) sweepOnce(el *bigraph.EdgeList, labels []uint32, ka, kb int, cfg entropy.Config) bool {
	k := ka + kb
	blockSize := make([]int, k)
	for _, b := range labels {
		blockSize[b]++
	}

	baseline, err := g.evaluate(el, labels, ka, kb, cfg)
	if err != nil {
		return false
	}
	improved := false

	for node := 0; node < el.N(); node++ {
		isA := node < el.NA
		lo, hi := ka, k
		if isA {
			lo, hi = 0, ka
		}
		current := labels[node]
		if blockSize[current] <= 1 {
			continue // never empty a block
		}

		best := current
		bestDL := baseline
		for cand := lo; cand < hi; cand++ {
			if uint32(cand) == current {
				continue
			}
			labels[node] = uint32(cand)
			dl, err := g.evaluate(el, labels, ka, kb, cfg)
			labels[node] = current
			if err != nil {
				continue
			}
			if dl.Total() < bestDL.Total() {
				bestDL = dl
				best = uint32(cand)
			}
		}

		if best != current {
			blockSize[current]--
			blockSize[best]++
			labels[node] = best
			baseline = bestDL
			improved = true
		}
	}
	return improved
}

func (g *Greedy) evaluate(el *bigraph.EdgeList, labels []uint32, ka, kb int, cfg entropy.Config) (entropy.DL, error) {
	p, err := bigraph.NewPartition(el, ka, kb, labels)
	if err != nil {
		return entropy.DL{}, err
	}
	return entropy.Evaluate(el, p, g.Q, cfg)
}

// initialLabels returns warm or a balanced-random starting partition.
func (g *Greedy) initialLabels(el *bigraph.EdgeList, ka, kb int, warm []uint32) []uint32 {
	if warm != nil {
		labels := make([]uint32, len(warm))
		copy(labels, warm)
		return labels
	}
	labels := make([]uint32, el.N())
	for i := 0; i < el.NA; i++ {
		labels[i] = uint32(i % ka)
	}
	for i := el.NA; i < el.N(); i++ {
		labels[i] = uint32(ka + (i-el.NA)%kb)
	}
	g.rngMu.Lock()
	g.Rng.Shuffle(el.NA, func(i, j int) { labels[i], labels[j] = labels[j], labels[i] })
	g.Rng.Shuffle(el.NB, func(i, j int) {
		labels[el.NA+i], labels[el.NA+j] = labels[el.NA+j], labels[el.NA+i]
	})
	g.rngMu.Unlock()
	return labels
}

// runNatural starts from the all-singleton partition and repeatedly applies
// whichever same-type block-pair merge most improves total DL, stopping
// when no merge improves it, reporting the converged (Ka, Kb).
func (g *Greedy) runNatural(ctx context.Context, req Request) (Result, error) {
	el := req.EdgeList
	labels := make([]uint32, el.N())
	for i := range labels {
		labels[i] = uint32(i)
	}
	ka, kb := el.NA, el.NB
	cfg := entropy.DefaultConfig()

	for ka+kb > 2 {
		select {
		case <-ctx.Done():
			return Result{}, apperr.Wrap(apperr.CodeEngineFailure, "greedy natural merge canceled", ctx.Err())
		default:
		}

		baseline, err := g.evaluate(el, labels, ka, kb, cfg)
		if err != nil {
			return Result{}, err
		}

		bestDL := baseline.Total()
		var bestLabels []uint32
		var bestKa, bestKb int
		found := false

		tryPair := func(p, q, newKa, newKb int) {
			merged := mergeBlocks(labels, p, q)
			dl, err := g.evaluate(el, merged, newKa, newKb, cfg)
			if err != nil {
				return
			}
			if dl.Total() < bestDL {
				bestDL = dl.Total()
				bestLabels = merged
				bestKa, bestKb = newKa, newKb
				found = true
			}
		}

		if ka > 1 {
			for p := 0; p < ka; p++ {
				for q := p + 1; q < ka; q++ {
					tryPair(p, q, ka-1, kb)
				}
			}
		}
		if kb > 1 {
			for p := ka; p < ka+kb; p++ {
				for q := p + 1; q < ka+kb; q++ {
					tryPair(p, q, ka, kb-1)
				}
			}
		}

		if !found {
			break
		}
		labels, ka, kb = bestLabels, bestKa, bestKb
	}

	return Result{Partition: labels, Ka: ka, Kb: kb}, nil
}

// mergeBlocks returns a copy of labels with block q folded into block p:
// every node labeled q becomes p, and every label above q shifts down by
// one to keep the label space contiguous.
func mergeBlocks(labels []uint32, p, q int) []uint32 {
	out := make([]uint32, len(labels))
	for i, b := range labels {
		switch {
		case int(b) == q:
			out[i] = uint32(p)
		case int(b) > q:
			out[i] = b - 1
		default:
			out[i] = b
		}
	}
	return out
}
