package store

import (
	"context"

	"github.com/rives-io/rives-aggregator/internal/store/schema"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// Ping checks database connectivity
	Ping(ctx context.Context) error

	// =============================================================================
	// Entity writes: stub every referenced parent, then insert or merge
	// =============================================================================

	// UpsertProfile creates or partially updates a profile
	UpsertProfile(ctx context.Context, input UpsertProfileInput) (*UpsertResult[schema.Profile], error)
	// UpsertCartridge creates or partially updates a cartridge
	UpsertCartridge(ctx context.Context, input UpsertCartridgeInput) (*UpsertResult[schema.Cartridge], error)
	// UpsertTape creates or partially updates a tape
	UpsertTape(ctx context.Context, input UpsertTapeInput) (*UpsertResult[schema.Tape], error)
	// UpsertRule creates or partially updates a rule
	UpsertRule(ctx context.Context, input UpsertRuleInput) (*UpsertResult[schema.Rule], error)
	// UpsertConsoleAchievement creates or partially updates a catalogue entry
	UpsertConsoleAchievement(ctx context.Context, input UpsertConsoleAchievementInput) (*UpsertResult[schema.ConsoleAchievement], error)
	// UpsertCollectedCartridge creates or partially updates a cartridge holding
	UpsertCollectedCartridge(ctx context.Context, input UpsertCollectedCartridgeInput) (*UpsertResult[schema.CollectedCartridges], error)
	// UpsertCollectedTape creates or partially updates a tape holding
	UpsertCollectedTape(ctx context.Context, input UpsertCollectedTapeInput) (*UpsertResult[schema.CollectedTapes], error)
	// AssignConsoleAchievementToRule links an existing achievement to a rule, stubbing the rule
	AssignConsoleAchievementToRule(ctx context.Context, ruleID string, slug string) (*UpsertResult[schema.RuleConsoleAchievement], error)
	// SetConsoleAchievementImage replaces an existing achievement's image
	SetConsoleAchievementImage(ctx context.Context, slug string, data []byte) (*schema.ConsoleAchievement, error)

	// =============================================================================
	// Facts: always inserted
	// =============================================================================

	// AwardConsoleAchievement records an award
	AwardConsoleAchievement(ctx context.Context, input AwardConsoleAchievementInput) (*schema.AwardedConsoleAchievement, error)
	// CreateNotification records a notification
	CreateNotification(ctx context.Context, input CreateNotificationInput) (*schema.Notification, error)
	// FollowNotification returns a notification and marks it read
	FollowNotification(ctx context.Context, address string, id int64) (*schema.Notification, error)

	// =============================================================================
	// Reads
	// =============================================================================

	// GetProfile retrieves a profile by address
	GetProfile(ctx context.Context, address string) (*schema.Profile, error)
	// GetCartridge retrieves a cartridge by id
	GetCartridge(ctx context.Context, id string) (*schema.Cartridge, error)
	// GetTape retrieves a tape by id
	GetTape(ctx context.Context, id string) (*schema.Tape, error)
	// GetRule retrieves a rule by id
	GetRule(ctx context.Context, id string) (*schema.Rule, error)
	// GetConsoleAchievement retrieves a catalogue entry by slug
	GetConsoleAchievement(ctx context.Context, slug string) (*schema.ConsoleAchievement, error)
	// GetProfileSummary returns a profile with its live statistics
	GetProfileSummary(ctx context.Context, address string) (*ProfileSummary, error)
	// ListProfiles lists profiles with their statistics, highest rives points first
	ListProfiles(ctx context.Context, page PageRequest) (*Page[ProfileSummary], error)
	// ListProfileAchievements lists a profile's awards, newest first
	ListProfileAchievements(ctx context.Context, address string, page PageRequest) (*Page[ProfileAchievement], error)
	// ListProfileAchievementSummary lists a profile's awards collapsed per slug
	ListProfileAchievementSummary(ctx context.Context, address string, page PageRequest) (*Page[ProfileAchievementSummary], error)
	// ListRuleLeaderboard ranks a rule's tapes by score
	ListRuleLeaderboard(ctx context.Context, ruleID string, page PageRequest) (*Page[LeaderboardEntry], error)
	// ListRuleAchievements lists the achievements linked to a rule
	ListRuleAchievements(ctx context.Context, ruleID string, page PageRequest) (*Page[schema.ConsoleAchievement], error)
	// ListConsoleAchievements lists the achievement catalogue
	ListConsoleAchievements(ctx context.Context, page PageRequest) (*Page[schema.ConsoleAchievement], error)
	// ListAchievementPlayers lists the awards of an achievement, newest first
	ListAchievementPlayers(ctx context.Context, slug string, page PageRequest) (*Page[AchievementPlayer], error)
	// ListNotifications lists a profile's notifications, newest first
	ListNotifications(ctx context.Context, address string, unread *bool, page PageRequest) (*Page[schema.Notification], error)
}
