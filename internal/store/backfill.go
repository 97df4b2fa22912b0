package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/rives-io/rives-aggregator/internal/store/schema"
)

// parentRef names a foreign key column and the entity kind it points at
type parentRef struct {
	column string
	parent schema.EntityKind
}

// backfillOrder lists, per child kind, the parents that are stubbed before the
// child is written. Parents are walked in this order. Console achievements
// never appear as a parent: they are curated and must already exist.
var backfillOrder = map[schema.EntityKind][]parentRef{
	schema.KindCartridge: {
		{column: "creator_address", parent: schema.KindProfile},
	},
	schema.KindTape: {
		{column: "creator_address", parent: schema.KindProfile},
		{column: "rule_id", parent: schema.KindRule},
	},
	schema.KindRule: {
		{column: "cartridge_id", parent: schema.KindCartridge},
	},
	schema.KindCollectedCartridges: {
		{column: "profile_address", parent: schema.KindProfile},
		{column: "cartridge_id", parent: schema.KindCartridge},
	},
	schema.KindCollectedTapes: {
		{column: "profile_address", parent: schema.KindProfile},
		{column: "tape_id", parent: schema.KindTape},
	},
	schema.KindAwardedConsoleAchievement: {
		{column: "profile_address", parent: schema.KindProfile},
		{column: "tape_id", parent: schema.KindTape},
	},
	schema.KindRuleConsoleAchievement: {
		{column: "rule_id", parent: schema.KindRule},
	},
	schema.KindNotification: {
		{column: "profile_address", parent: schema.KindProfile},
	},
}

// backfill makes sure every parent referenced by child exists, one level deep.
// Each stub is its own upsert, so a parent commit happens before the child write.
func backfill(ctx context.Context, db *gorm.DB, kind schema.EntityKind, child schema.Referencing) error {
	for _, ref := range backfillOrder[kind] {
		key := child.Reference(ref.column)
		if key == nil || *key == "" {
			continue
		}
		if err := ensureStub(ctx, db, ref.parent, *key); err != nil {
			return fmt.Errorf("failed to backfill %s.%s: %w", kind, ref.column, err)
		}
	}

	return nil
}

// ensureStub upserts a parent carrying only its key. An existing row is left untouched.
func ensureStub(ctx context.Context, db *gorm.DB, kind schema.EntityKind, key string) error {
	var err error
	switch kind {
	case schema.KindProfile:
		_, err = upsert(ctx, db, &schema.Profile{Address: key}, nil)
	case schema.KindCartridge:
		_, err = upsert(ctx, db, &schema.Cartridge{ID: key}, nil)
	case schema.KindTape:
		_, err = upsert(ctx, db, &schema.Tape{ID: key}, nil)
	case schema.KindRule:
		_, err = upsert(ctx, db, &schema.Rule{ID: key}, nil)
	default:
		return fmt.Errorf("no stub for %s", kind)
	}

	return err
}
