package checkpoint

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/bisbm/entropy"
	"github.com/katalvlaran/bisbm/search"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned by Load when runID has no persisted run.
var ErrNotFound = errors.New("checkpoint: run not found")

// Repository persists and retrieves search.Summary results by run ID.
type Repository interface {
	Save(ctx context.Context, runID string, sum search.Summary) error
	Load(ctx context.Context, runID string) (search.Summary, error)
}

// GormRepository is the default Repository backed by a *gorm.DB opened via
// NewGormDB (§6: checkpoint persistence of the search summary and trace).
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository wraps an already-migrated *gorm.DB.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Save persists sum (and its trace) under runID, replacing any prior run
// with the same ID inside a single transaction.
func (r *GormRepository) Save(ctx context.Context, runID string, sum search.Summary) error {
	run := Run{
		ID:        runID,
		Ka:        sum.Ka,
		Kb:        sum.Kb,
		NA:        sum.NA,
		NB:        sum.NB,
		E:         sum.E,
		AvgK:      sum.AvgK,
		Adjacency: sum.DL.Adjacency,
		Partition: sum.DL.Partition,
		Degree:    sum.DL.Degree,
		Edges:     sum.DL.Edges,
		MDL:       sum.MDL,
		CreatedAt: time.Now(),
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("run_id = ?", runID).Delete(&TransitionRow{}).Error; err != nil {
			return fmt.Errorf("checkpoint: clear prior transitions: %w", err)
		}
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&run).Error; err != nil {
			return fmt.Errorf("checkpoint: save run: %w", err)
		}
		if rows := toTransitionRows(runID, sum.Trace); len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("checkpoint: save transitions: %w", err)
			}
		}
		return nil
	})
}

// Load retrieves the run and its transition trace, in recorded order.
func (r *GormRepository) Load(ctx context.Context, runID string) (search.Summary, error) {
	var run Run
	if err := r.db.WithContext(ctx).First(&run, "id = ?", runID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return search.Summary{}, ErrNotFound
		}
		return search.Summary{}, fmt.Errorf("checkpoint: load run: %w", err)
	}

	var rows []TransitionRow
	if err := r.db.WithContext(ctx).
		Where("run_id = ?", runID).
		Order("sequence asc").
		Find(&rows).Error; err != nil {
		return search.Summary{}, fmt.Errorf("checkpoint: load transitions: %w", err)
	}

	return search.Summary{
		Ka: run.Ka, Kb: run.Kb,
		NA: run.NA, NB: run.NB, E: run.E, AvgK: run.AvgK,
		MDL: run.MDL,
		DL: entropy.DL{
			Adjacency: run.Adjacency,
			Partition: run.Partition,
			Degree:    run.Degree,
			Edges:     run.Edges,
		},
		Trace: fromTransitionRows(rows),
	}, nil
}
