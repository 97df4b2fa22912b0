package ingest

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/rives-io/rives-aggregator/internal/adapter"
	"github.com/rives-io/rives-aggregator/internal/domain"
	"github.com/rives-io/rives-aggregator/internal/logger"
	"github.com/rives-io/rives-aggregator/internal/store"
)

var (
	// ErrUnknownKind is returned for notices whose kind has no handler
	ErrUnknownKind = errors.New("unknown notice kind")
	// ErrUndecodable is returned when a notice or its payload is not valid JSON
	// for its kind
	ErrUndecodable = errors.New("undecodable notice")
)

// Ingestor applies decoded notices to the store
//
//go:generate mockgen -source=ingest.go -destination=../mocks/ingestor.go -package=mocks -mock_names=Ingestor=MockIngestor
type Ingestor interface {
	// Decode parses a raw notice envelope
	Decode(data []byte) (*domain.Notice, error)
	// Ingest writes the fragment carried by notice
	Ingest(ctx context.Context, notice *domain.Notice) error
}

type ingestor struct {
	store store.Store
	json  adapter.JSON
}

// NewIngestor creates a new notice ingestor
func NewIngestor(st store.Store, jsonAdapter adapter.JSON) Ingestor {
	return &ingestor{store: st, json: jsonAdapter}
}

// ruleConsoleAchievementPayload links an achievement to a rule
type ruleConsoleAchievementPayload struct {
	RuleID string `json:"rule_id"`
	CASlug string `json:"ca_slug"`
}

// Decode parses a raw notice envelope
func (i *ingestor) Decode(data []byte) (*domain.Notice, error) {
	var notice domain.Notice
	if err := i.json.UnmarshalStrict(data, &notice); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUndecodable, err)
	}
	if !notice.Kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, notice.Kind)
	}
	if len(notice.Payload) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrUndecodable)
	}
	return &notice, nil
}

// Ingest writes the fragment carried by notice
func (i *ingestor) Ingest(ctx context.Context, notice *domain.Notice) error {
	info := logger.NoticeInfo{
		Kind:        string(notice.Kind),
		Subject:     notice.Subject(),
		InputIndex:  notice.InputIndex,
		NoticeIndex: notice.NoticeIndex,
	}
	ctx = logger.WithNotice(ctx, info)

	outcome, err := i.apply(ctx, notice)
	if err != nil {
		return err
	}

	logger.FromNotice(ctx, info).Debug("Notice applied", zap.Stringer("outcome", outcome))
	return nil
}

func (i *ingestor) apply(ctx context.Context, notice *domain.Notice) (store.Outcome, error) {
	switch notice.Kind {
	case domain.NoticeKindProfile:
		var input store.UpsertProfileInput
		if err := i.decodePayload(notice, &input); err != nil {
			return store.OutcomeFailed, err
		}
		return outcomeOf(i.store.UpsertProfile(ctx, input))

	case domain.NoticeKindCartridge:
		var input store.UpsertCartridgeInput
		if err := i.decodePayload(notice, &input); err != nil {
			return store.OutcomeFailed, err
		}
		return outcomeOf(i.store.UpsertCartridge(ctx, input))

	case domain.NoticeKindCollectedCartridge:
		var input store.UpsertCollectedCartridgeInput
		if err := i.decodePayload(notice, &input); err != nil {
			return store.OutcomeFailed, err
		}
		return outcomeOf(i.store.UpsertCollectedCartridge(ctx, input))

	case domain.NoticeKindTape:
		var input store.UpsertTapeInput
		if err := i.decodePayload(notice, &input); err != nil {
			return store.OutcomeFailed, err
		}
		return outcomeOf(i.store.UpsertTape(ctx, input))

	case domain.NoticeKindCollectedTape:
		var input store.UpsertCollectedTapeInput
		if err := i.decodePayload(notice, &input); err != nil {
			return store.OutcomeFailed, err
		}
		return outcomeOf(i.store.UpsertCollectedTape(ctx, input))

	case domain.NoticeKindRule:
		var input store.UpsertRuleInput
		if err := i.decodePayload(notice, &input); err != nil {
			return store.OutcomeFailed, err
		}
		return outcomeOf(i.store.UpsertRule(ctx, input))

	case domain.NoticeKindConsoleAchievement:
		var input store.UpsertConsoleAchievementInput
		if err := i.decodePayload(notice, &input); err != nil {
			return store.OutcomeFailed, err
		}
		return outcomeOf(i.store.UpsertConsoleAchievement(ctx, input))

	case domain.NoticeKindRuleConsoleAchievement:
		var payload ruleConsoleAchievementPayload
		if err := i.decodePayload(notice, &payload); err != nil {
			return store.OutcomeFailed, err
		}
		return outcomeOf(i.store.AssignConsoleAchievementToRule(ctx, payload.RuleID, payload.CASlug))

	case domain.NoticeKindAwardedConsoleAchievement:
		var input store.AwardConsoleAchievementInput
		if err := i.decodePayload(notice, &input); err != nil {
			return store.OutcomeFailed, err
		}
		if input.CreatedAt == nil {
			input.CreatedAt = notice.Timestamp
		}
		if _, err := i.store.AwardConsoleAchievement(ctx, input); err != nil {
			return store.OutcomeFailed, err
		}
		return store.OutcomeInserted, nil

	case domain.NoticeKindNotification:
		var input store.CreateNotificationInput
		if err := i.decodePayload(notice, &input); err != nil {
			return store.OutcomeFailed, err
		}
		if input.CreatedAt == nil {
			input.CreatedAt = notice.Timestamp
		}
		if _, err := i.store.CreateNotification(ctx, input); err != nil {
			return store.OutcomeFailed, err
		}
		return store.OutcomeInserted, nil
	}

	return store.OutcomeFailed, fmt.Errorf("%w: %q", ErrUnknownKind, notice.Kind)
}

func (i *ingestor) decodePayload(notice *domain.Notice, v any) error {
	if err := i.json.Unmarshal(notice.Payload, v); err != nil {
		return fmt.Errorf("%w: %s payload: %w", ErrUndecodable, notice.Kind, err)
	}
	return nil
}

func outcomeOf[M any](result *store.UpsertResult[M], err error) (store.Outcome, error) {
	if err != nil {
		return store.OutcomeFailed, err
	}
	return result.Outcome, nil
}
