package search

import (
	"context"
	"math"
	"math/rand"

	"github.com/katalvlaran/bisbm/apperr"
	"github.com/katalvlaran/bisbm/bigraph"
	"github.com/katalvlaran/bisbm/bookkeep"
	"github.com/katalvlaran/bisbm/engine"
	"github.com/katalvlaran/bisbm/entropy"
	"github.com/katalvlaran/bisbm/mergecost"
	"github.com/katalvlaran/bisbm/parallel"
	"github.com/katalvlaran/bisbm/qcache"
	"github.com/katalvlaran/bisbm/telemetry"
)

// Driver is the agglomerative search state machine of §4.6.
type Driver struct {
	el  *bigraph.EdgeList
	eng engine.Engine
	q   *qcache.Cache
	rng *rand.Rand
	cfg Config
	dlc entropy.Config

	store *bookkeep.Store

	delta      float64
	overshoots []float64

	ka0, kb0 int // natural-merge (or user-supplied) starting point, for the warm-start heuristic

	cur fit
}

// New builds a Driver over el using eng for partitioning and q as the
// shared integer-partition cache.
func New(el *bigraph.EdgeList, eng engine.Engine, q *qcache.Cache, rng *rand.Rand, cfg Config) *Driver {
	return &Driver{
		el:    el,
		eng:   eng,
		q:     q,
		rng:   rng,
		cfg:   cfg,
		dlc:   entropy.DefaultConfig(),
		store: bookkeep.NewStore(),
		delta: 1,
	}
}

// Summary is the structured record returned from Minimize (§8: "summary()
// returns a structured record with at least: {K_a, K_b, MDL, N_a, N_b, E,
// avg_k, DL = {adjacency, partition, degree, edges}}").
type Summary struct {
	Ka, Kb   int
	MDL      float64
	NA, NB   int
	E        int
	AvgK     float64
	DL       entropy.DL
	Trace    []bookkeep.Transition
}

// Minimize runs the INIT -> CHECK_LOCAL_MIN -> MERGE_LOOP state machine to
// convergence and returns the argmin fit's summary. Calling Minimize twice
// on the same Driver returns the same argmin (§8 property 6: idempotence),
// since a Driver already at its local minimum finds CHECK_LOCAL_MIN
// confirming immediately with no merges applied.
func (d *Driver) Minimize(ctx context.Context) (Summary, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "search.Minimize")
	defer span.End()

	if err := d.init(ctx); err != nil {
		return Summary{}, err
	}

	for {
		select {
		case <-ctx.Done():
			return d.summary(), apperr.Wrap(apperr.CodeEngineFailure, "search canceled", ctx.Err())
		default:
		}

		accepted, err := d.checkLocalMin(ctx)
		if err != nil {
			return Summary{}, err
		}
		if accepted {
			break
		}
		if err := d.mergeLoop(ctx); err != nil {
			return Summary{}, err
		}
	}

	return d.summary(), nil
}

// init implements §4.6 INIT: compute DL at (1,1), then seed (ka0,kb0) via
// natural merge (or the user-supplied starting point).
func (d *Driver) init(ctx context.Context) error {
	base, err := evaluate(d.el, 1, 1, onesPartition(d.el), d.q, d.dlc)
	if err != nil {
		return err
	}
	d.store.Put(bookkeep.Key{Ka: 1, Kb: 1}, base.DL, base.Ers, base.Mb)
	d.store.Record(bookkeep.KindMDL, 1, 1)

	if !d.cfg.UseNaturalMerge {
		d.ka0, d.kb0 = d.cfg.InitialKa0, d.cfg.InitialKb0
		f, err := d.computeAt(ctx, d.ka0, d.kb0)
		if err != nil {
			return err
		}
		d.cur = f
		return nil
	}

	res, err := d.eng.Run(ctx, engine.Request{EdgeList: d.el, Method: engine.Natural, Config: d.cfg.Engine})
	if err != nil {
		return err
	}
	d.ka0, d.kb0 = res.Ka, res.Kb
	f, err := evaluate(d.el, res.Ka, res.Kb, res.Partition, d.q, d.dlc)
	if err != nil {
		return err
	}
	d.store.Put(bookkeep.Key{Ka: f.Ka, Kb: f.Kb}, f.DL, f.Ers, f.Mb)
	d.store.Record(bookkeep.KindMDL, f.Ka, f.Kb)
	d.cur = f
	return nil
}

// onesPartition returns the trivial (Ka=1,Kb=1) partition: every side-A
// node in block 0, every side-B node in block 1.
func onesPartition(el *bigraph.EdgeList) []uint32 {
	labels := make([]uint32, el.N())
	for i := el.NA; i < el.N(); i++ {
		labels[i] = 1
	}
	return labels
}

// computeAt evaluates (ka,kb), recording the fit in the store on a miss.
func (d *Driver) computeAt(ctx context.Context, ka, kb int) (fit, error) {
	if existing, ers, mb, ok := d.store.Get(bookkeep.Key{Ka: ka, Kb: kb}); ok {
		return fit{Ka: ka, Kb: kb, Mb: mb, Ers: ers, DL: existing}, nil
	}

	f, err := d.computeFitUncached(ctx, ka, kb)
	if err != nil {
		return fit{}, err
	}
	d.store.Put(bookkeep.Key{Ka: ka, Kb: kb}, f.DL, f.Ers, f.Mb)
	d.store.Record(bookkeep.KindMDL, ka, kb)
	return f, nil
}

// computeFitUncached evaluates (ka,kb) without consulting or writing the
// store, applying the warm-start heuristic (§4.6): if the Euclidean
// distance to (ka0,kb0) exceeds kappa*sqrt(2), supply the engine with the
// current best partition at (ka0,kb0) as mb; otherwise cold start. It only
// reads the store (for the warm-start partition), never writes it, so it
// is safe to call concurrently across distinct (ka,kb) points as long as
// no concurrent writer is active — the neighborhood batch in checkLocalMin
// relies on this to run engine sweeps in parallel (§4.6 step 2d, §5).
func (d *Driver) computeFitUncached(ctx context.Context, ka, kb int) (fit, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "search.computeAt")
	defer span.End()

	var warm []uint32
	dist := math.Hypot(float64(ka-d.ka0), float64(kb-d.kb0))
	if dist > float64(d.cfg.Kappa)*math.Sqrt2 {
		if _, _, mb, ok := d.store.Get(bookkeep.Key{Ka: d.ka0, Kb: d.kb0}); ok {
			warm = mb
		}
	}

	res, err := d.eng.Run(ctx, engine.Request{
		EdgeList: d.el,
		Ka:       ka,
		Kb:       kb,
		WarmMb:   warm,
		Method:   engine.Standard,
		Config:   d.cfg.Engine,
	})
	if err != nil {
		return fit{}, apperr.Wrap(apperr.CodeEngineFailure, "engine invocation failed", err).WithBlocks(ka, kb)
	}

	f, err := evaluate(d.el, ka, kb, res.Partition, d.q, d.dlc)
	if err != nil {
		return fit{}, err
	}
	return f, nil
}

// neighborBatch runs computeFitUncached for every neighbor across a bounded
// worker pool (§5), returning the raw per-task results (still indexed
// identically to the input slice). It never touches the store's write
// path, so the caller remains responsible for inserting results and
// deciding acceptance in the order §4.6 step 2d requires.
func (d *Driver) neighborBatch(ctx context.Context, neighbors []neighbor) ([]parallel.TaskResult[neighbor, fit], error) {
	pool := parallel.NewWorkerPool[neighbor, fit](parallel.DefaultPoolConfig())
	results := pool.ExecuteFunc(ctx, neighbors, func(ctx context.Context, n neighbor) (fit, error) {
		if existing, ers, mb, ok := d.store.Get(bookkeep.Key{Ka: n.Ka, Kb: n.Kb}); ok {
			return fit{Ka: n.Ka, Kb: n.Kb, Mb: mb, Ers: ers, DL: existing}, nil
		}
		return d.computeFitUncached(ctx, n.Ka, n.Kb)
	})
	for _, r := range results {
		if r.Error != nil {
			return nil, apperr.Wrap(apperr.CodeEngineFailure, "neighbor evaluation failed", r.Error).WithBlocks(r.Input.Ka, r.Input.Kb)
		}
	}
	return results, nil
}

// checkLocalMin implements §4.6 CHECK_LOCAL_MIN.
func (d *Driver) checkLocalMin(ctx context.Context) (bool, error) {
	dl11, _, _, ok := d.store.Get(bookkeep.Key{Ka: 1, Kb: 1})
	if !ok {
		return false, apperr.New(apperr.CodeInconsistency, "missing (1,1) baseline in store")
	}

	_, argminDL, _ := d.store.ArgMin()

	if d.cur.DL.Total() > dl11.Total() {
		return false, nil
	}
	if d.cur.DL.Total() > argminDL.Total() {
		d.delta *= d.cfg.Rho
		key, dl, ers, mb, ok := d.store.Rollback()
		if !ok {
			return false, apperr.New(apperr.CodeInconsistency, "rollback with empty store")
		}
		d.cur = fit{Ka: key.Ka, Kb: key.Kb, Mb: mb, Ers: ers, DL: dl}
		return d.checkLocalMin(ctx)
	}

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	neighbors := enumerateNeighbors(d.rng, d.cur.Ka, d.cur.Kb, d.el.NA, d.el.NB, d.cfg.Kappa)
	results, err := d.neighborBatch(ctx, neighbors)
	if err != nil {
		return false, err
	}

	// Fast path: the pool's deterministic argmin-by-DL reduction (§5) tells
	// us in one pass whether any neighbor in this batch could possibly beat
	// the pre-batch argmin. If none can, inserting them in any order cannot
	// produce an accepting neighbor either, so skip the ordered rescan.
	insertAll := func() {
		for i, n := range neighbors {
			f := results[i].Result
			if _, _, _, ok := d.store.Get(bookkeep.Key{Ka: n.Ka, Kb: n.Kb}); !ok {
				d.store.Put(bookkeep.Key{Ka: n.Ka, Kb: n.Kb}, f.DL, f.Ers, f.Mb)
				d.store.Record(bookkeep.KindMDL, n.Ka, n.Kb)
			}
		}
	}

	if best, ok := parallel.BestByKey(results, func(f fit) float64 { return f.DL.Total() }); !ok || best.Result.DL.Total() > argminDL.Total() {
		insertAll()
		return true, nil
	}

	// A neighbor in this batch can beat the pre-batch argmin: replay the
	// Chebyshev-ordered, shuffled scan §4.6 step 2d specifies so the first
	// neighbor to become the global argmin in that exact order wins, exactly
	// as a fully sequential scan would pick.
	for i, n := range neighbors {
		f := results[i].Result
		if _, _, _, ok := d.store.Get(bookkeep.Key{Ka: n.Ka, Kb: n.Kb}); !ok {
			d.store.Put(bookkeep.Key{Ka: n.Ka, Kb: n.Kb}, f.DL, f.Ers, f.Mb)
			d.store.Record(bookkeep.KindMDL, n.Ka, n.Kb)
		}
		_, newArgminDL, _ := d.store.ArgMin()
		if f.DL.Total() <= newArgminDL.Total() && f.Ka == n.Ka && f.Kb == n.Kb {
			key, dl, ers, mb, ok := d.store.Rollback()
			if !ok {
				return false, apperr.New(apperr.CodeInconsistency, "rollback with empty store")
			}
			d.cur = fit{Ka: key.Ka, Kb: key.Kb, Mb: mb, Ers: ers, DL: dl}
			return false, nil
		}
	}

	return true, nil
}

// mergeLoop implements §4.6 MERGE_LOOP.
func (d *Driver) mergeLoop(ctx context.Context) error {
	dl11, _, _, _ := d.store.Get(bookkeep.Key{Ka: 1, Kb: 1})
	dlRef := dl11.Total()
	if dlRef == 0 {
		dlRef = 1 // avoid division degeneracy on a graph with zero DL at (1,1)
	}

	var accumulated float64
	for accumulated < d.delta*dlRef && d.cur.Ka*d.cur.Kb > 1 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		pairs := mergecost.SamplePairs(d.rng, d.cur.Ka+d.cur.Kb, d.cur.Ka, d.cur.Kb, d.cfg.NM)
		best, delta, found := mergecost.Best(d.cur.Ers, d.cur.Ka, pairs)
		if !found {
			break
		}

		if d.delta == 1 {
			r := delta / dlRef
			d.overshoots = append(d.overshoots, r)
			threshold := outlierThreshold(d.overshoots)
			if r > threshold && r >= 1e-4 {
				d.delta = r
				d.store.Record(bookkeep.KindEscape, d.cur.Ka, d.cur.Kb)
				break
			}
		}

		newMb := mergeLabels(d.cur.Mb, best.P, best.Q)
		newKa, newKb := d.cur.Ka, d.cur.Kb
		if best.Q < d.cur.Ka {
			newKa--
		} else {
			newKb--
		}

		f, err := evaluate(d.el, newKa, newKb, newMb, d.q, d.dlc)
		if err != nil {
			return err
		}
		d.store.Put(bookkeep.Key{Ka: newKa, Kb: newKb}, f.DL, f.Ers, f.Mb)
		d.store.Record(bookkeep.KindMerge, newKa, newKb)
		d.cur = f
		accumulated += delta
	}
	return nil
}

// mergeLabels folds block q into block p, shifting labels above q down by
// one to keep the label space contiguous.
func mergeLabels(labels []uint32, p, q int) []uint32 {
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

func (d *Driver) summary() Summary {
	ka, kb := d.cur.Ka, d.cur.Kb
	dl := d.cur.DL
	if key, argDL, found := d.store.ArgMin(); found {
		ka, kb = key.Ka, key.Kb
		dl = argDL
	}

	var sumDeg int
	for i := 0; i < d.el.Len(); i++ {
		sumDeg += 2
	}
	n := d.el.N()
	avgK := 0.0
	if n > 0 {
		avgK = float64(sumDeg) / float64(n)
	}

	return Summary{
		Ka:    ka,
		Kb:    kb,
		MDL:   dl.Total(),
		NA:    d.el.NA,
		NB:    d.el.NB,
		E:     d.el.Len(),
		AvgK:  avgK,
		DL:    dl,
		Trace: d.store.Trace(),
	}
}
