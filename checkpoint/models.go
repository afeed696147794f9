package checkpoint

import (
	"time"

	"github.com/katalvlaran/bisbm/bookkeep"
)

// Run is the persisted header row for one search.Minimize invocation,
// keyed by an opaque caller-supplied ID (conventionally a UUID or a
// content hash of the input edge list).
type Run struct {
	ID        string `gorm:"primaryKey"`
	Ka        int
	Kb        int
	NA        int
	NB        int
	E         int
	AvgK      float64
	Adjacency float64
	Partition float64
	Degree    float64
	Edges     float64
	MDL       float64
	CreatedAt time.Time
}

// TransitionRow is one persisted bookkeep.Transition, foreign-keyed to its
// owning Run. Sequence preserves insertion order across the round trip
// since GORM does not guarantee row-order-by-insertion on read.
type TransitionRow struct {
	ID       uint `gorm:"primaryKey;autoIncrement"`
	RunID    string
	Sequence int
	Kind     string
	Ka       int
	Kb       int
}

func toTransitionRows(runID string, trace []bookkeep.Transition) []TransitionRow {
	rows := make([]TransitionRow, len(trace))
	for i, t := range trace {
		rows[i] = TransitionRow{
			RunID:    runID,
			Sequence: i,
			Kind:     string(t.Kind),
			Ka:       t.Ka,
			Kb:       t.Kb,
		}
	}
	return rows
}

func fromTransitionRows(rows []TransitionRow) []bookkeep.Transition {
	trace := make([]bookkeep.Transition, len(rows))
	for i, r := range rows {
		trace[i] = bookkeep.Transition{
			Kind: bookkeep.TransitionKind(r.Kind),
			Ka:   r.Ka,
			Kb:   r.Kb,
		}
	}
	return trace
}
