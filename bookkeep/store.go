package bookkeep

import (
	"github.com/katalvlaran/bisbm/bigraph"
	"github.com/katalvlaran/bisbm/entropy"
)

// Store holds the three insertion-ordered maps keyed by (K_a, K_b) and the
// transition trace (§4.7). Insertion order is preserved via a parallel key
// slice since Go maps have no defined iteration order.
type Store struct {
	order []Key
	dl    map[Key]entropy.DL
	ers   map[Key]*bigraph.BlockMatrix
	mb    map[Key][]uint32

	trace []Transition
}

// NewStore creates an empty bookkeeping store.
func NewStore() *Store {
	return &Store{
		dl:  make(map[Key]entropy.DL),
		ers: make(map[Key]*bigraph.BlockMatrix),
		mb:  make(map[Key][]uint32),
	}
}

// Put records a fit at k, overwriting any prior entry at the same key
// without duplicating it in the insertion order.
func (s *Store) Put(k Key, dl entropy.DL, ers *bigraph.BlockMatrix, mb []uint32) {
	if _, ok := s.dl[k]; !ok {
		s.order = append(s.order, k)
	}
	s.dl[k] = dl
	s.ers[k] = ers
	s.mb[k] = mb
}

// Get returns the recorded fit at k, if any.
func (s *Store) Get(k Key) (dl entropy.DL, ers *bigraph.BlockMatrix, mb []uint32, ok bool) {
	dl, ok = s.dl[k]
	if !ok {
		return entropy.DL{}, nil, nil, false
	}
	return dl, s.ers[k], s.mb[k], true
}

// Keys returns every recorded key in insertion order.
func (s *Store) Keys() []Key {
	out := make([]Key, len(s.order))
	copy(out, s.order)
	return out
}

// ArgMin returns the key with the lowest total DL, breaking ties by
// first-seen insertion order (§4.6: "ties in DL are broken by first-seen
// order"). ok is false if the store is empty.
func (s *Store) ArgMin() (key Key, dl entropy.DL, ok bool) {
	best := 0.0
	for i, k := range s.order {
		d := s.dl[k]
		if i == 0 || d.Total() < best {
			best = d.Total()
			key = k
			dl = d
			ok = true
		}
	}
	return key, dl, ok
}

// Record appends a transition to the trace.
func (s *Store) Record(kind TransitionKind, ka, kb int) {
	s.trace = append(s.trace, Transition{Kind: kind, Ka: ka, Kb: kb})
}

// Trace returns the full recorded transition sequence.
func (s *Store) Trace() []Transition {
	out := make([]Transition, len(s.trace))
	copy(out, s.trace)
	return out
}

// Rollback returns the fit recorded at the store's current argmin, for the
// driver to restore its working (K_a, K_b, e_rs, b) state from (§4.6 step
// 2c / 4.7's rollback operation). It also records a KindRollback transition
// at that key.
func (s *Store) Rollback() (key Key, dl entropy.DL, ers *bigraph.BlockMatrix, mb []uint32, ok bool) {
	key, dl, ok = s.ArgMin()
	if !ok {
		return Key{}, entropy.DL{}, nil, nil, false
	}
	ers = s.ers[key]
	mb = s.mb[key]
	s.Record(KindRollback, key.Ka, key.Kb)
	return key, dl, ers, mb, true
}
