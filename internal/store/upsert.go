package store

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rives-io/rives-aggregator/internal/logger"
	"github.com/rives-io/rives-aggregator/internal/store/schema"
)

// Outcome tags how an upsert call ended
type Outcome int

const (
	// OutcomeFailed means nothing was written
	OutcomeFailed Outcome = iota
	// OutcomeInserted means the candidate became a new row
	OutcomeInserted
	// OutcomeMerged means the candidate was merged into an existing row
	OutcomeMerged
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInserted:
		return "inserted"
	case OutcomeMerged:
		return "merged"
	default:
		return "failed"
	}
}

// UpsertResult is the stored row after an upsert, refreshed from storage
type UpsertResult[M any] struct {
	Row     *M
	Outcome Outcome
}

// entityPtr constrains the upsert engine to pointers of entity models
type entityPtr[M any] interface {
	*M
	schema.Entity
}

// upsert writes candidate as a new row, or merges the provided fields into the
// existing row when another writer already owns the key.
//
// fields lists the columns the caller explicitly provided, in declaration order.
// An empty list makes the merge a no-op, which is how backfill stubs stay
// non-destructive.
//
// The failed insert is rolled back before the merge transaction starts, so only
// one of the two phases ever commits. Inside an outer transaction both phases
// run as savepoints.
func upsert[M any, PM entityPtr[M]](ctx context.Context, db *gorm.DB, candidate PM, fields []string) (*UpsertResult[M], error) {
	if candidate == nil || !candidate.HasKey() {
		return &UpsertResult[M]{Outcome: OutcomeFailed}, fmt.Errorf("%w: missing primary key", ErrInvalidKey)
	}

	row, insertErr := attemptInsert[M](ctx, db, candidate)
	if insertErr == nil {
		return &UpsertResult[M]{Row: row, Outcome: OutcomeInserted}, nil
	}

	if !isUniqueViolation(insertErr) {
		return &UpsertResult[M]{Outcome: OutcomeFailed},
			classifyWriteError(fmt.Errorf("failed to insert %s: %w", candidate.Kind(), insertErr))
	}

	logger.DebugCtx(ctx, "Insert conflicted, merging into existing row",
		zap.String("kind", string(candidate.Kind())),
		zap.Strings("fields", fields))

	row, err := merge[M](ctx, db, candidate, fields, insertErr)
	if err != nil {
		return &UpsertResult[M]{Outcome: OutcomeFailed}, err
	}

	return &UpsertResult[M]{Row: row, Outcome: OutcomeMerged}, nil
}

// attemptInsert inserts candidate in its own transaction and re-reads it by key
func attemptInsert[M any, PM entityPtr[M]](ctx context.Context, db *gorm.DB, candidate PM) (*M, error) {
	var stored M
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(candidate).Error; err != nil {
			return err
		}
		return tx.Where(candidate.PrimaryKey()).First(&stored).Error
	})
	if err != nil {
		return nil, err
	}

	return &stored, nil
}

// merge locks the existing row, overwrites the provided fields and re-reads it.
// A missing row means the conflict was not a same-key conflict.
func merge[M any, PM entityPtr[M]](ctx context.Context, db *gorm.DB, candidate PM, fields []string, insertErr error) (*M, error) {
	var stored M
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing M
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(candidate.PrimaryKey()).
			First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s conflict without same-key row: %w", ErrInconsistentState, candidate.Kind(), insertErr)
			}
			return fmt.Errorf("failed to lock %s: %w", candidate.Kind(), err)
		}

		if len(fields) > 0 {
			if err := tx.Model(&existing).Select(fields).Updates(candidate).Error; err != nil {
				return classifyWriteError(fmt.Errorf("failed to merge %s: %w", candidate.Kind(), err))
			}
		}

		return tx.Where(candidate.PrimaryKey()).First(&stored).Error
	})
	if err != nil {
		return nil, err
	}

	return &stored, nil
}
