package executor

import (
	"context"

	"github.com/rives-io/rives-aggregator/internal/api/shared/dto"
	apierrors "github.com/rives-io/rives-aggregator/internal/api/shared/errors"
	"github.com/rives-io/rives-aggregator/internal/store"
	"github.com/rives-io/rives-aggregator/internal/store/schema"
)

// Executor runs API operations against the store. Every error it returns is
// an *apierrors.APIError.
type Executor interface {
	// Ping checks that the store is reachable
	Ping(ctx context.Context) error

	// GetProfileSummary retrieves a profile with its statistics
	GetProfileSummary(ctx context.Context, address string) (*dto.ProfileSummaryResponse, error)
	// ListProfiles lists profiles by rives points
	ListProfiles(ctx context.Context, page store.PageRequest) (*dto.PaginatedResponse[dto.ProfileSummaryResponse], error)
	// ListProfileAchievements lists the awards of a profile
	ListProfileAchievements(ctx context.Context, address string, page store.PageRequest) (*dto.PaginatedResponse[dto.ProfileAchievementResponse], error)
	// ListProfileAchievementSummary lists the awards of a profile per slug
	ListProfileAchievementSummary(ctx context.Context, address string, page store.PageRequest) (*dto.PaginatedResponse[dto.ProfileAchievementSummaryResponse], error)

	// GetCartridge retrieves a cartridge by id
	GetCartridge(ctx context.Context, id string) (*schema.Cartridge, error)
	// GetTape retrieves a tape by id
	GetTape(ctx context.Context, id string) (*schema.Tape, error)
	// GetRule retrieves a rule by id
	GetRule(ctx context.Context, id string) (*schema.Rule, error)
	// ListRuleLeaderboard ranks the tapes of a rule
	ListRuleLeaderboard(ctx context.Context, ruleID string, page store.PageRequest) (*dto.PaginatedResponse[dto.LeaderboardEntryResponse], error)
	// ListRuleAchievements lists the achievements linked to a rule
	ListRuleAchievements(ctx context.Context, ruleID string, page store.PageRequest) (*dto.PaginatedResponse[schema.ConsoleAchievement], error)

	// ListConsoleAchievements lists the achievement catalogue
	ListConsoleAchievements(ctx context.Context, page store.PageRequest) (*dto.PaginatedResponse[schema.ConsoleAchievement], error)
	// GetConsoleAchievement retrieves an achievement by slug
	GetConsoleAchievement(ctx context.Context, slug string) (*schema.ConsoleAchievement, error)
	// ListAchievementPlayers lists the awards of an achievement
	ListAchievementPlayers(ctx context.Context, slug string, page store.PageRequest) (*dto.PaginatedResponse[dto.AchievementPlayerResponse], error)

	// ListNotifications lists the notifications of a profile
	ListNotifications(ctx context.Context, address string, unread *bool, page store.PageRequest) (*dto.PaginatedResponse[schema.Notification], error)
	// FollowNotification marks a notification read and returns it
	FollowNotification(ctx context.Context, address string, id int64) (*schema.Notification, error)

	UpsertProfile(ctx context.Context, input store.UpsertProfileInput) (*dto.UpsertResponse[schema.Profile], error)
	UpsertCartridge(ctx context.Context, input store.UpsertCartridgeInput) (*dto.UpsertResponse[schema.Cartridge], error)
	UpsertCollectedCartridge(ctx context.Context, input store.UpsertCollectedCartridgeInput) (*dto.UpsertResponse[schema.CollectedCartridges], error)
	UpsertTape(ctx context.Context, input store.UpsertTapeInput) (*dto.UpsertResponse[schema.Tape], error)
	UpsertCollectedTape(ctx context.Context, input store.UpsertCollectedTapeInput) (*dto.UpsertResponse[schema.CollectedTapes], error)
	UpsertRule(ctx context.Context, input store.UpsertRuleInput) (*dto.UpsertResponse[schema.Rule], error)
	UpsertConsoleAchievement(ctx context.Context, input store.UpsertConsoleAchievementInput) (*dto.UpsertResponse[schema.ConsoleAchievement], error)
	AssignConsoleAchievementToRule(ctx context.Context, ruleID string, slug string) (*dto.UpsertResponse[schema.RuleConsoleAchievement], error)
	SetConsoleAchievementImage(ctx context.Context, slug string, data []byte) (*schema.ConsoleAchievement, error)
	AwardConsoleAchievement(ctx context.Context, input store.AwardConsoleAchievementInput) (*schema.AwardedConsoleAchievement, error)
	CreateNotification(ctx context.Context, input store.CreateNotificationInput) (*schema.Notification, error)
}

type executor struct {
	store store.Store
}

func NewExecutor(store store.Store) Executor {
	return &executor{store: store}
}

func (e *executor) Ping(ctx context.Context) error {
	if err := e.store.Ping(ctx); err != nil {
		return apierrors.NewDatabaseError("Database unreachable", err.Error())
	}
	return nil
}

func (e *executor) GetProfileSummary(ctx context.Context, address string) (*dto.ProfileSummaryResponse, error) {
	summary, err := e.store.GetProfileSummary(ctx, address)
	if err != nil {
		return nil, apierrors.FromStoreError(err, "Failed to get profile")
	}

	response := dto.MapProfileSummaryToDTO(*summary)
	return &response, nil
}

func (e *executor) ListProfiles(ctx context.Context, page store.PageRequest) (*dto.PaginatedResponse[dto.ProfileSummaryResponse], error) {
	result, err := e.store.ListProfiles(ctx, page)
	return mapPage(result, err, dto.MapProfileSummaryToDTO, "Failed to list profiles")
}

func (e *executor) ListProfileAchievements(ctx context.Context, address string, page store.PageRequest) (*dto.PaginatedResponse[dto.ProfileAchievementResponse], error) {
	result, err := e.store.ListProfileAchievements(ctx, address, page)
	return mapPage(result, err, dto.MapProfileAchievementToDTO, "Failed to list profile achievements")
}

func (e *executor) ListProfileAchievementSummary(ctx context.Context, address string, page store.PageRequest) (*dto.PaginatedResponse[dto.ProfileAchievementSummaryResponse], error) {
	result, err := e.store.ListProfileAchievementSummary(ctx, address, page)
	return mapPage(result, err, dto.MapProfileAchievementSummaryToDTO, "Failed to list profile achievement summary")
}

func (e *executor) GetCartridge(ctx context.Context, id string) (*schema.Cartridge, error) {
	row, err := e.store.GetCartridge(ctx, id)
	return classify(row, err, "Failed to get cartridge")
}

func (e *executor) GetTape(ctx context.Context, id string) (*schema.Tape, error) {
	row, err := e.store.GetTape(ctx, id)
	return classify(row, err, "Failed to get tape")
}

func (e *executor) GetRule(ctx context.Context, id string) (*schema.Rule, error) {
	row, err := e.store.GetRule(ctx, id)
	return classify(row, err, "Failed to get rule")
}

func (e *executor) ListRuleLeaderboard(ctx context.Context, ruleID string, page store.PageRequest) (*dto.PaginatedResponse[dto.LeaderboardEntryResponse], error) {
	result, err := e.store.ListRuleLeaderboard(ctx, ruleID, page)
	return mapPage(result, err, dto.MapLeaderboardEntryToDTO, "Failed to list rule leaderboard")
}

func (e *executor) ListRuleAchievements(ctx context.Context, ruleID string, page store.PageRequest) (*dto.PaginatedResponse[schema.ConsoleAchievement], error) {
	result, err := e.store.ListRuleAchievements(ctx, ruleID, page)
	return mapPage(result, err, dto.Identity[schema.ConsoleAchievement], "Failed to list rule achievements")
}

func (e *executor) ListConsoleAchievements(ctx context.Context, page store.PageRequest) (*dto.PaginatedResponse[schema.ConsoleAchievement], error) {
	result, err := e.store.ListConsoleAchievements(ctx, page)
	return mapPage(result, err, dto.Identity[schema.ConsoleAchievement], "Failed to list console achievements")
}

func (e *executor) GetConsoleAchievement(ctx context.Context, slug string) (*schema.ConsoleAchievement, error) {
	row, err := e.store.GetConsoleAchievement(ctx, slug)
	return classify(row, err, "Failed to get console achievement")
}

func (e *executor) ListAchievementPlayers(ctx context.Context, slug string, page store.PageRequest) (*dto.PaginatedResponse[dto.AchievementPlayerResponse], error) {
	result, err := e.store.ListAchievementPlayers(ctx, slug, page)
	return mapPage(result, err, dto.MapAchievementPlayerToDTO, "Failed to list achievement players")
}

func (e *executor) ListNotifications(ctx context.Context, address string, unread *bool, page store.PageRequest) (*dto.PaginatedResponse[schema.Notification], error) {
	result, err := e.store.ListNotifications(ctx, address, unread, page)
	return mapPage(result, err, dto.Identity[schema.Notification], "Failed to list notifications")
}

func (e *executor) FollowNotification(ctx context.Context, address string, id int64) (*schema.Notification, error) {
	row, err := e.store.FollowNotification(ctx, address, id)
	return classify(row, err, "Failed to follow notification")
}

func (e *executor) UpsertProfile(ctx context.Context, input store.UpsertProfileInput) (*dto.UpsertResponse[schema.Profile], error) {
	result, err := e.store.UpsertProfile(ctx, input)
	return mapUpsert(result, err, "Failed to upsert profile")
}

func (e *executor) UpsertCartridge(ctx context.Context, input store.UpsertCartridgeInput) (*dto.UpsertResponse[schema.Cartridge], error) {
	result, err := e.store.UpsertCartridge(ctx, input)
	return mapUpsert(result, err, "Failed to upsert cartridge")
}

func (e *executor) UpsertCollectedCartridge(ctx context.Context, input store.UpsertCollectedCartridgeInput) (*dto.UpsertResponse[schema.CollectedCartridges], error) {
	result, err := e.store.UpsertCollectedCartridge(ctx, input)
	return mapUpsert(result, err, "Failed to upsert collected cartridge")
}

func (e *executor) UpsertTape(ctx context.Context, input store.UpsertTapeInput) (*dto.UpsertResponse[schema.Tape], error) {
	result, err := e.store.UpsertTape(ctx, input)
	return mapUpsert(result, err, "Failed to upsert tape")
}

func (e *executor) UpsertCollectedTape(ctx context.Context, input store.UpsertCollectedTapeInput) (*dto.UpsertResponse[schema.CollectedTapes], error) {
	result, err := e.store.UpsertCollectedTape(ctx, input)
	return mapUpsert(result, err, "Failed to upsert collected tape")
}

func (e *executor) UpsertRule(ctx context.Context, input store.UpsertRuleInput) (*dto.UpsertResponse[schema.Rule], error) {
	result, err := e.store.UpsertRule(ctx, input)
	return mapUpsert(result, err, "Failed to upsert rule")
}

func (e *executor) UpsertConsoleAchievement(ctx context.Context, input store.UpsertConsoleAchievementInput) (*dto.UpsertResponse[schema.ConsoleAchievement], error) {
	result, err := e.store.UpsertConsoleAchievement(ctx, input)
	return mapUpsert(result, err, "Failed to upsert console achievement")
}

func (e *executor) AssignConsoleAchievementToRule(ctx context.Context, ruleID string, slug string) (*dto.UpsertResponse[schema.RuleConsoleAchievement], error) {
	result, err := e.store.AssignConsoleAchievementToRule(ctx, ruleID, slug)
	return mapUpsert(result, err, "Failed to assign console achievement")
}

func (e *executor) SetConsoleAchievementImage(ctx context.Context, slug string, data []byte) (*schema.ConsoleAchievement, error) {
	row, err := e.store.SetConsoleAchievementImage(ctx, slug, data)
	return classify(row, err, "Failed to set console achievement image")
}

func (e *executor) AwardConsoleAchievement(ctx context.Context, input store.AwardConsoleAchievementInput) (*schema.AwardedConsoleAchievement, error) {
	row, err := e.store.AwardConsoleAchievement(ctx, input)
	return classify(row, err, "Failed to award console achievement")
}

func (e *executor) CreateNotification(ctx context.Context, input store.CreateNotificationInput) (*schema.Notification, error) {
	row, err := e.store.CreateNotification(ctx, input)
	return classify(row, err, "Failed to create notification")
}

// classify converts the error of a single-row store call. message is used
// when the error carries no API error of its own.
func classify[T any](row *T, err error, message string) (*T, error) {
	if err != nil {
		return nil, apierrors.FromStoreError(err, message)
	}
	return row, nil
}

func mapPage[S any, T any](page *store.Page[S], err error, mapItem func(S) T, message string) (*dto.PaginatedResponse[T], error) {
	if err != nil {
		return nil, apierrors.FromStoreError(err, message)
	}
	return dto.MapPage(page, mapItem), nil
}

func mapUpsert[M any](result *store.UpsertResult[M], err error, message string) (*dto.UpsertResponse[M], error) {
	if err != nil {
		return nil, apierrors.FromStoreError(err, message)
	}
	return dto.MapUpsertResult(result), nil
}
