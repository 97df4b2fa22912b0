package store

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rives-io/rives-aggregator/internal/domain"
	"github.com/rives-io/rives-aggregator/internal/logger"
	"github.com/rives-io/rives-aggregator/internal/store/schema"
	"github.com/rives-io/rives-aggregator/internal/types"
)

// UpsertProfile creates or partially updates a profile
func (s *pgStore) UpsertProfile(ctx context.Context, input UpsertProfileInput) (*UpsertResult[schema.Profile], error) {
	profile, fields := input.toModel()
	return upsert(ctx, s.db, profile, fields)
}

// UpsertCartridge stubs the creator profile, then creates or partially updates the cartridge
func (s *pgStore) UpsertCartridge(ctx context.Context, input UpsertCartridgeInput) (*UpsertResult[schema.Cartridge], error) {
	cartridge, fields := input.toModel()
	return backfillThenUpsert(ctx, s.db, cartridge, fields)
}

// UpsertTape stubs the creator profile and the rule, then creates or partially updates the tape
func (s *pgStore) UpsertTape(ctx context.Context, input UpsertTapeInput) (*UpsertResult[schema.Tape], error) {
	tape, fields := input.toModel()
	return backfillThenUpsert(ctx, s.db, tape, fields)
}

// UpsertRule stubs the cartridge, then creates or partially updates the rule
func (s *pgStore) UpsertRule(ctx context.Context, input UpsertRuleInput) (*UpsertResult[schema.Rule], error) {
	rule, fields := input.toModel()
	return backfillThenUpsert(ctx, s.db, rule, fields)
}

// UpsertConsoleAchievement creates or partially updates a catalogue entry
func (s *pgStore) UpsertConsoleAchievement(ctx context.Context, input UpsertConsoleAchievementInput) (*UpsertResult[schema.ConsoleAchievement], error) {
	achievement, fields := input.toModel()
	return upsert(ctx, s.db, achievement, fields)
}

// UpsertCollectedCartridge stubs the collector and the cartridge, then records the holding
func (s *pgStore) UpsertCollectedCartridge(ctx context.Context, input UpsertCollectedCartridgeInput) (*UpsertResult[schema.CollectedCartridges], error) {
	collected, fields := input.toModel()
	return backfillThenUpsert(ctx, s.db, collected, fields)
}

// UpsertCollectedTape stubs the collector and the tape, then records the holding
func (s *pgStore) UpsertCollectedTape(ctx context.Context, input UpsertCollectedTapeInput) (*UpsertResult[schema.CollectedTapes], error) {
	collected, fields := input.toModel()
	return backfillThenUpsert(ctx, s.db, collected, fields)
}

// backfillThenUpsert stubs every parent of candidate, then upserts it.
// Each stub commits on its own before the candidate is written.
func backfillThenUpsert[M any, PM interface {
	entityPtr[M]
	schema.Referencing
}](ctx context.Context, db *gorm.DB, candidate PM, fields []string) (*UpsertResult[M], error) {
	if !candidate.HasKey() {
		return &UpsertResult[M]{Outcome: OutcomeFailed}, fmt.Errorf("%w: missing primary key", ErrInvalidKey)
	}
	if err := backfill(ctx, db, candidate.Kind(), candidate); err != nil {
		return &UpsertResult[M]{Outcome: OutcomeFailed}, err
	}
	return upsert[M](ctx, db, candidate, fields)
}

// AssignConsoleAchievementToRule links an existing achievement to a rule.
//
// The achievement is never created here: a missing slug fails with ErrNotFound
// and leaves no trace. The rule is stubbed when absent. The existence check,
// the rule stub and the link share one transaction, and the achievement row is
// share-locked so it cannot disappear before the link is written.
func (s *pgStore) AssignConsoleAchievementToRule(ctx context.Context, ruleID string, slug string) (*UpsertResult[schema.RuleConsoleAchievement], error) {
	link := &schema.RuleConsoleAchievement{RuleID: ruleID, CASlug: slug}
	if !link.HasKey() {
		return &UpsertResult[schema.RuleConsoleAchievement]{Outcome: OutcomeFailed}, fmt.Errorf("%w: rule id and slug are required", ErrInvalidKey)
	}

	var result *UpsertResult[schema.RuleConsoleAchievement]
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var achievement schema.ConsoleAchievement
		err := tx.Clauses(clause.Locking{Strength: "SHARE"}).
			Select("slug").
			Where("slug = ?", slug).
			First(&achievement).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: console achievement %s", ErrNotFound, slug)
			}
			return fmt.Errorf("failed to check console achievement: %w", err)
		}

		result, err = backfillThenUpsert(ctx, tx, link, nil)
		return err
	})
	if err != nil {
		return &UpsertResult[schema.RuleConsoleAchievement]{Outcome: OutcomeFailed}, err
	}

	return result, nil
}

// AwardConsoleAchievement records an award. Awards are facts: a repeated
// award is a new row. The profile and tape are stubbed; the achievement must exist.
func (s *pgStore) AwardConsoleAchievement(ctx context.Context, input AwardConsoleAchievementInput) (*schema.AwardedConsoleAchievement, error) {
	award := input.toModel(s.clock.Now())
	if award.ProfileAddress == "" || award.CASlug == "" {
		return nil, fmt.Errorf("%w: profile address and slug are required", ErrInvalidKey)
	}

	if err := backfill(ctx, s.db, award.Kind(), award); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(award).Error
	})
	if err != nil {
		return nil, classifyWriteError(fmt.Errorf("failed to create award: %w", err))
	}

	return award, nil
}

// CreateNotification records a notification for a profile, stubbing the profile
func (s *pgStore) CreateNotification(ctx context.Context, input CreateNotificationInput) (*schema.Notification, error) {
	notification := input.toModel(s.clock.Now())
	if notification.ProfileAddress == "" {
		return nil, fmt.Errorf("%w: profile address is required", ErrInvalidKey)
	}

	if err := backfill(ctx, s.db, notification.Kind(), notification); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(notification).Error
	})
	if err != nil {
		return nil, classifyWriteError(fmt.Errorf("failed to create notification: %w", err))
	}

	return notification, nil
}

// FollowNotification returns a profile's notification and marks it read.
// The flag only ever flips once: the row is locked and re-checked in the same
// transaction.
func (s *pgStore) FollowNotification(ctx context.Context, address string, id int64) (*schema.Notification, error) {
	address = domain.NormalizeAddress(address)

	var notification schema.Notification
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("profile_address = ? AND id = ?", address, id).
			First(&notification).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: notification %d", ErrNotFound, id)
			}
			return fmt.Errorf("failed to get notification: %w", err)
		}

		if !notification.Unread {
			return nil
		}

		if err := tx.Model(&notification).Update("unread", false).Error; err != nil {
			return fmt.Errorf("failed to mark notification read: %w", err)
		}
		notification.Unread = false
		logger.DebugCtx(ctx, "Notification marked read",
			zap.String("address", address),
			zap.Int64("id", id))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &notification, nil
}

// SetConsoleAchievementImage replaces an achievement's image. The type is
// always inferred from the bytes.
func (s *pgStore) SetConsoleAchievementImage(ctx context.Context, slug string, data []byte) (*schema.ConsoleAchievement, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidKey)
	}

	var stored *schema.ConsoleAchievement
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&schema.ConsoleAchievement{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check console achievement: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("%w: console achievement %s", ErrNotFound, slug)
		}

		input := UpsertConsoleAchievementInput{
			Slug:      slug,
			ImageData: types.Some(data),
			ImageType: types.None[*string](),
		}
		achievement, fields := input.toModel()
		result, err := upsert(ctx, tx, achievement, fields)
		if err != nil {
			return err
		}
		stored = result.Row
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stored, nil
}
