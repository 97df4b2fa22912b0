package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rives-io/rives-aggregator/internal/store/schema"
	"github.com/rives-io/rives-aggregator/internal/types"
)

// StoreTestSuite provides the interface for running store tests against different implementations
type StoreTestSuite struct {
	Store Store
	// InitDB should be called before each test to initialize the database
	InitDB func(t *testing.T) Store
	// CleanupDB should be called after each test to clean up the database
	CleanupDB func(t *testing.T)
}

// =============================================================================
// Test Data Builders
// =============================================================================

// pngBytes is a minimal PNG signature followed by padding
var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00}

// jpegBytes is a minimal JPEG signature followed by padding
var jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}

func buildAchievement(slug string, points int64) UpsertConsoleAchievementInput {
	return UpsertConsoleAchievementInput{
		Slug:        slug,
		Name:        types.Some(types.StringPtr("Achievement " + slug)),
		Description: types.Some(types.StringPtr("Unlocked by " + slug)),
		Points:      types.Some(points),
	}
}

func createAchievement(t *testing.T, store Store, slug string, points int64) {
	_, err := store.UpsertConsoleAchievement(context.Background(), buildAchievement(slug, points))
	require.NoError(t, err)
}

func award(t *testing.T, store Store, address, slug string, points int64, at time.Time) *schema.AwardedConsoleAchievement {
	a, err := store.AwardConsoleAchievement(context.Background(), AwardConsoleAchievementInput{
		ProfileAddress: address,
		CASlug:         slug,
		CreatedAt:      &at,
		Points:         points,
	})
	require.NoError(t, err)
	return a
}

// =============================================================================
// Upsert Engine
// =============================================================================

func testUpsertOutcomes(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("first write inserts", func(t *testing.T) {
		result, err := store.UpsertProfile(ctx, UpsertProfileInput{
			Address: "0xoutcome1",
			Points:  types.Some(int64(7)),
		})
		require.NoError(t, err)
		assert.Equal(t, OutcomeInserted, result.Outcome)
		require.NotNil(t, result.Row)
		assert.Equal(t, "0xoutcome1", result.Row.Address)
		assert.Equal(t, int64(7), result.Row.Points)
	})

	t.Run("second write merges", func(t *testing.T) {
		result, err := store.UpsertProfile(ctx, UpsertProfileInput{
			Address: "0xoutcome1",
			Points:  types.Some(int64(9)),
		})
		require.NoError(t, err)
		assert.Equal(t, OutcomeMerged, result.Outcome)
		assert.Equal(t, int64(9), result.Row.Points)
	})

	t.Run("missing key fails", func(t *testing.T) {
		result, err := store.UpsertTape(ctx, UpsertTapeInput{
			Name: types.Some(types.StringPtr("no id")),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidKey)
		require.NotNil(t, result)
		assert.Equal(t, OutcomeFailed, result.Outcome)
		assert.Nil(t, result.Row)
	})

	t.Run("partial composite key fails", func(t *testing.T) {
		result, err := store.UpsertCollectedCartridge(ctx, UpsertCollectedCartridgeInput{
			CartridgeID:     "cart-partial",
			ProfileAddress:  "0xpartial",
			ContractAddress: "0xcontract",
		})
		assert.ErrorIs(t, err, ErrInvalidKey)
		assert.Equal(t, OutcomeFailed, result.Outcome)

		// Nothing was backfilled for the rejected write
		_, err = store.GetProfile(ctx, "0xpartial")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("address is lowercased", func(t *testing.T) {
		result, err := store.UpsertProfile(ctx, UpsertProfileInput{Address: "0xAbCdEf"})
		require.NoError(t, err)
		assert.Equal(t, "0xabcdef", result.Row.Address)

		profile, err := store.GetProfile(ctx, "0XABCDEF")
		require.NoError(t, err)
		assert.Equal(t, "0xabcdef", profile.Address)
	})
}

func testUpsertIdempotence(t *testing.T, store Store) {
	ctx := context.Background()
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	input := UpsertCartridgeInput{
		ID:             "cart-idem",
		Name:           types.Some(types.StringPtr("Antcopter")),
		Authors:        types.Some(types.StringPtr("alice,bob")),
		CreatedAt:      types.Some(&created),
		BuyValue:       types.Some(int64(100)),
		SellValue:      types.Some(int64(90)),
		CreatorAddress: types.Some(types.StringPtr("0xCreator")),
	}

	first, err := store.UpsertCartridge(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, OutcomeInserted, first.Outcome)

	second, err := store.UpsertCartridge(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, OutcomeMerged, second.Outcome)

	assert.Equal(t, first.Row.ID, second.Row.ID)
	assert.Equal(t, first.Row.Name, second.Row.Name)
	assert.Equal(t, first.Row.Authors, second.Row.Authors)
	assert.Equal(t, first.Row.BuyValue, second.Row.BuyValue)
	assert.Equal(t, first.Row.SellValue, second.Row.SellValue)
	assert.Equal(t, first.Row.CreatorAddress, second.Row.CreatorAddress)
	require.NotNil(t, second.Row.CreatedAt)
	assert.True(t, created.Equal(*second.Row.CreatedAt))
	assert.Equal(t, "0xcreator", *second.Row.CreatorAddress)
}

func testMergeNonDestructive(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("omitted fields are kept", func(t *testing.T) {
		_, err := store.UpsertCartridge(ctx, UpsertCartridgeInput{
			ID:       "cart-keep",
			Name:     types.Some(types.StringPtr("X")),
			BuyValue: types.Some(int64(5)),
		})
		require.NoError(t, err)

		result, err := store.UpsertCartridge(ctx, UpsertCartridgeInput{
			ID:        "cart-keep",
			SellValue: types.Some(int64(3)),
		})
		require.NoError(t, err)
		assert.Equal(t, OutcomeMerged, result.Outcome)
		require.NotNil(t, result.Row.Name)
		assert.Equal(t, "X", *result.Row.Name)
		assert.Equal(t, int64(5), result.Row.BuyValue)
		assert.Equal(t, int64(3), result.Row.SellValue)
	})

	t.Run("explicit zero and null are written", func(t *testing.T) {
		_, err := store.UpsertTape(ctx, UpsertTapeInput{
			ID:       "tape-clear",
			Title:    types.Some(types.StringPtr("to be cleared")),
			Score:    types.Some(types.Ptr(int64(42))),
			BuyValue: types.Some(int64(10)),
		})
		require.NoError(t, err)

		result, err := store.UpsertTape(ctx, UpsertTapeInput{
			ID:       "tape-clear",
			Title:    types.Some[*string](nil),
			BuyValue: types.Some(int64(0)),
		})
		require.NoError(t, err)
		assert.Nil(t, result.Row.Title)
		assert.Equal(t, int64(0), result.Row.BuyValue)
		require.NotNil(t, result.Row.Score)
		assert.Equal(t, int64(42), *result.Row.Score)
	})

	t.Run("backfill stub never clobbers a known parent", func(t *testing.T) {
		_, err := store.UpsertProfile(ctx, UpsertProfileInput{
			Address: "0xknown",
			Points:  types.Some(int64(50)),
		})
		require.NoError(t, err)
		_, err = store.UpsertRule(ctx, UpsertRuleInput{
			ID:   "rule-known",
			Name: types.Some(types.StringPtr("Known rule")),
		})
		require.NoError(t, err)

		_, err = store.UpsertTape(ctx, UpsertTapeInput{
			ID:             "tape-known-parents",
			CreatorAddress: types.Some(types.StringPtr("0xKNOWN")),
			RuleID:         types.Some(types.StringPtr("rule-known")),
		})
		require.NoError(t, err)

		profile, err := store.GetProfile(ctx, "0xknown")
		require.NoError(t, err)
		assert.Equal(t, int64(50), profile.Points)

		rule, err := store.GetRule(ctx, "rule-known")
		require.NoError(t, err)
		require.NotNil(t, rule.Name)
		assert.Equal(t, "Known rule", *rule.Name)
	})
}

// =============================================================================
// Referential Backfill
// =============================================================================

func testBackfill(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("tape stubs creator and rule", func(t *testing.T) {
		result, err := store.UpsertTape(ctx, UpsertTapeInput{
			ID:             "tape-bf",
			Score:          types.Some(types.Ptr(int64(1000))),
			CreatorAddress: types.Some(types.StringPtr("0xUnseen")),
			RuleID:         types.Some(types.StringPtr("rule-bf")),
		})
		require.NoError(t, err)
		assert.Equal(t, OutcomeInserted, result.Outcome)
		assert.Equal(t, "0xunseen", *result.Row.CreatorAddress)

		profile, err := store.GetProfile(ctx, "0xunseen")
		require.NoError(t, err)
		assert.Equal(t, int64(0), profile.Points)

		rule, err := store.GetRule(ctx, "rule-bf")
		require.NoError(t, err)
		assert.Nil(t, rule.Name)
		assert.Nil(t, rule.CartridgeID)
	})

	t.Run("rule stubs cartridge one level only", func(t *testing.T) {
		_, err := store.UpsertRule(ctx, UpsertRuleInput{
			ID:          "rule-bf2",
			CartridgeID: types.Some(types.StringPtr("cart-bf2")),
		})
		require.NoError(t, err)

		cartridge, err := store.GetCartridge(ctx, "cart-bf2")
		require.NoError(t, err)
		assert.Nil(t, cartridge.CreatorAddress)
		assert.Nil(t, cartridge.Name)
	})

	t.Run("cartridge stubs creator", func(t *testing.T) {
		_, err := store.UpsertCartridge(ctx, UpsertCartridgeInput{
			ID:             "cart-bf3",
			CreatorAddress: types.Some(types.StringPtr("0xCartCreator")),
		})
		require.NoError(t, err)

		_, err = store.GetProfile(ctx, "0xcartcreator")
		require.NoError(t, err)
	})

	t.Run("collected cartridge stubs collector and cartridge", func(t *testing.T) {
		result, err := store.UpsertCollectedCartridge(ctx, UpsertCollectedCartridgeInput{
			CartridgeID:     "cart-bf4",
			ProfileAddress:  "0xCollector",
			ContractAddress: "0xcontract",
			AssetID:         "1",
			Balance:         types.Some(int64(2)),
		})
		require.NoError(t, err)
		assert.Equal(t, OutcomeInserted, result.Outcome)
		assert.Equal(t, "0xcollector", result.Row.ProfileAddress)
		assert.Equal(t, int64(2), result.Row.Balance)

		_, err = store.GetProfile(ctx, "0xcollector")
		require.NoError(t, err)
		_, err = store.GetCartridge(ctx, "cart-bf4")
		require.NoError(t, err)

		result, err = store.UpsertCollectedCartridge(ctx, UpsertCollectedCartridgeInput{
			CartridgeID:     "cart-bf4",
			ProfileAddress:  "0xcollector",
			ContractAddress: "0xcontract",
			AssetID:         "1",
			Balance:         types.Some(int64(5)),
		})
		require.NoError(t, err)
		assert.Equal(t, OutcomeMerged, result.Outcome)
		assert.Equal(t, int64(5), result.Row.Balance)
	})

	t.Run("collected tape stubs collector and tape", func(t *testing.T) {
		result, err := store.UpsertCollectedTape(ctx, UpsertCollectedTapeInput{
			TapeID:          "tape-bf5",
			ProfileAddress:  "0xTapeCollector",
			ContractAddress: "0xcontract",
			AssetID:         types.Some(types.StringPtr("77")),
		})
		require.NoError(t, err)
		assert.Equal(t, OutcomeInserted, result.Outcome)
		require.NotNil(t, result.Row.AssetID)
		assert.Equal(t, "77", *result.Row.AssetID)

		_, err = store.GetTape(ctx, "tape-bf5")
		require.NoError(t, err)
		_, err = store.GetProfile(ctx, "0xtapecollector")
		require.NoError(t, err)
	})

	t.Run("unset references are not stubbed", func(t *testing.T) {
		_, err := store.UpsertTape(ctx, UpsertTapeInput{ID: "tape-bf6"})
		require.NoError(t, err)

		tape, err := store.GetTape(ctx, "tape-bf6")
		require.NoError(t, err)
		assert.Nil(t, tape.CreatorAddress)
		assert.Nil(t, tape.RuleID)
	})
}

func testAssignConsoleAchievementToRule(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("missing achievement creates nothing", func(t *testing.T) {
		result, err := store.AssignConsoleAchievementToRule(ctx, "R", "S")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, OutcomeFailed, result.Outcome)

		_, err = store.GetRule(ctx, "R")
		assert.ErrorIs(t, err, ErrNotFound)

		page, err := store.ListRuleAchievements(ctx, "R", PageRequest{})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
	})

	t.Run("existing achievement stubs the rule and links", func(t *testing.T) {
		createAchievement(t, store, "S2", 10)

		result, err := store.AssignConsoleAchievementToRule(ctx, "R2", "S2")
		require.NoError(t, err)
		assert.Equal(t, OutcomeInserted, result.Outcome)
		assert.Equal(t, "R2", result.Row.RuleID)
		assert.Equal(t, "S2", result.Row.CASlug)

		_, err = store.GetRule(ctx, "R2")
		require.NoError(t, err)

		page, err := store.ListRuleAchievements(ctx, "R2", PageRequest{})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "S2", page.Items[0].Slug)
	})

	t.Run("repeated assignment merges", func(t *testing.T) {
		result, err := store.AssignConsoleAchievementToRule(ctx, "R2", "S2")
		require.NoError(t, err)
		assert.Equal(t, OutcomeMerged, result.Outcome)

		page, err := store.ListRuleAchievements(ctx, "R2", PageRequest{})
		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
	})

	t.Run("empty key fails", func(t *testing.T) {
		_, err := store.AssignConsoleAchievementToRule(ctx, "", "S2")
		assert.ErrorIs(t, err, ErrInvalidKey)
	})
}

// =============================================================================
// Facts
// =============================================================================

func testAwardConsoleAchievement(t *testing.T, store Store) {
	ctx := context.Background()
	createAchievement(t, store, "first-tape", 10)

	t.Run("awards are appended", func(t *testing.T) {
		input := AwardConsoleAchievementInput{
			ProfileAddress: "0xAwarded",
			CASlug:         "first-tape",
			TapeID:         types.StringPtr("tape-award"),
			Points:         10,
			Comments:       types.StringPtr("well played"),
		}

		first, err := store.AwardConsoleAchievement(ctx, input)
		require.NoError(t, err)
		second, err := store.AwardConsoleAchievement(ctx, input)
		require.NoError(t, err)

		assert.NotZero(t, first.ID)
		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, "0xawarded", first.ProfileAddress)
		require.NotNil(t, first.CreatedAt)
		assert.True(t, testNow.Equal(*first.CreatedAt))

		_, err = store.GetProfile(ctx, "0xawarded")
		require.NoError(t, err)
		_, err = store.GetTape(ctx, "tape-award")
		require.NoError(t, err)

		page, err := store.ListProfileAchievements(ctx, "0xawarded", PageRequest{})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), page.Total)
	})

	t.Run("explicit created_at is kept", func(t *testing.T) {
		at := time.Date(2023, 12, 24, 0, 0, 0, 0, time.UTC)
		a := award(t, store, "0xawarded2", "first-tape", 3, at)
		assert.True(t, at.Equal(*a.CreatedAt))
	})

	t.Run("unknown achievement is a referential violation", func(t *testing.T) {
		_, err := store.AwardConsoleAchievement(ctx, AwardConsoleAchievementInput{
			ProfileAddress: "0xawarded3",
			CASlug:         "does-not-exist",
			Points:         1,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrReferentialViolation)

		_, err = store.GetConsoleAchievement(ctx, "does-not-exist")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing keys fail", func(t *testing.T) {
		_, err := store.AwardConsoleAchievement(ctx, AwardConsoleAchievementInput{CASlug: "first-tape"})
		assert.ErrorIs(t, err, ErrInvalidKey)
	})
}

func testNotifications(t *testing.T, store Store) {
	ctx := context.Background()

	older := testNow.Add(-time.Hour)
	first, err := store.CreateNotification(ctx, CreateNotificationInput{
		ProfileAddress: "0xNotified",
		CreatedAt:      &older,
		Title:          types.StringPtr("Older"),
		Message:        "first message",
		URL:            types.StringPtr("https://rives.io/tapes/1"),
	})
	require.NoError(t, err)
	second, err := store.CreateNotification(ctx, CreateNotificationInput{
		ProfileAddress: "0xnotified",
		Message:        "second message",
		URL:            types.StringPtr("https://rives.io/tapes/2"),
	})
	require.NoError(t, err)

	t.Run("defaults", func(t *testing.T) {
		assert.True(t, first.Unread)
		assert.True(t, second.Unread)
		assert.Equal(t, "0xnotified", first.ProfileAddress)
		require.NotNil(t, second.CreatedAt)
		assert.True(t, testNow.Equal(*second.CreatedAt))

		_, err := store.GetProfile(ctx, "0xnotified")
		require.NoError(t, err)
	})

	t.Run("list newest first", func(t *testing.T) {
		page, err := store.ListNotifications(ctx, "0xNOTIFIED", nil, PageRequest{})
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.Equal(t, second.ID, page.Items[0].ID)
		assert.Equal(t, first.ID, page.Items[1].ID)
	})

	t.Run("follow marks read once", func(t *testing.T) {
		followed, err := store.FollowNotification(ctx, "0xNotified", first.ID)
		require.NoError(t, err)
		assert.False(t, followed.Unread)
		assert.Equal(t, "https://rives.io/tapes/1", *followed.URL)

		again, err := store.FollowNotification(ctx, "0xnotified", first.ID)
		require.NoError(t, err)
		assert.False(t, again.Unread)

		unread := true
		page, err := store.ListNotifications(ctx, "0xnotified", &unread, PageRequest{})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, second.ID, page.Items[0].ID)

		read := false
		page, err = store.ListNotifications(ctx, "0xnotified", &read, PageRequest{})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, first.ID, page.Items[0].ID)
	})

	t.Run("follow another profile's notification", func(t *testing.T) {
		_, err := store.FollowNotification(ctx, "0xsomeoneelse", second.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("created as read", func(t *testing.T) {
		read := false
		n, err := store.CreateNotification(ctx, CreateNotificationInput{
			ProfileAddress: "0xnotified2",
			Message:        "already seen",
			Unread:         &read,
		})
		require.NoError(t, err)
		assert.False(t, n.Unread)
	})

	t.Run("missing profile fails", func(t *testing.T) {
		_, err := store.CreateNotification(ctx, CreateNotificationInput{Message: "orphan"})
		assert.ErrorIs(t, err, ErrInvalidKey)
	})
}

// =============================================================================
// Images
// =============================================================================

func testConsoleAchievementImages(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("type inferred when missing", func(t *testing.T) {
		input := buildAchievement("img-infer", 5)
		input.ImageData = types.Some(jpegBytes)
		result, err := store.UpsertConsoleAchievement(ctx, input)
		require.NoError(t, err)
		require.NotNil(t, result.Row.ImageType)
		assert.Equal(t, "image/jpeg", *result.Row.ImageType)
		assert.Equal(t, jpegBytes, result.Row.ImageData)
	})

	t.Run("declared type is kept", func(t *testing.T) {
		input := buildAchievement("img-declared", 5)
		input.ImageData = types.Some(jpegBytes)
		input.ImageType = types.Some(types.StringPtr("image/x-custom"))
		result, err := store.UpsertConsoleAchievement(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "image/x-custom", *result.Row.ImageType)
	})

	t.Run("rule sponsor image type inferred", func(t *testing.T) {
		result, err := store.UpsertRule(ctx, UpsertRuleInput{
			ID:               "rule-sponsor",
			SponsorName:      types.Some(types.StringPtr("Sponsor")),
			SponsorImageData: types.Some(pngBytes),
		})
		require.NoError(t, err)
		require.NotNil(t, result.Row.SponsorImageType)
		assert.Equal(t, "image/png", *result.Row.SponsorImageType)
	})

	t.Run("set image on existing achievement", func(t *testing.T) {
		createAchievement(t, store, "img-set", 1)

		achievement, err := store.SetConsoleAchievementImage(ctx, "img-set", pngBytes)
		require.NoError(t, err)
		assert.Equal(t, pngBytes, achievement.ImageData)
		assert.Equal(t, "image/png", *achievement.ImageType)
		require.NotNil(t, achievement.Name)
		assert.Equal(t, "Achievement img-set", *achievement.Name)
		assert.Equal(t, int64(1), achievement.Points)
	})

	t.Run("set image on missing achievement", func(t *testing.T) {
		_, err := store.SetConsoleAchievementImage(ctx, "img-missing", pngBytes)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = store.GetConsoleAchievement(ctx, "img-missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

// =============================================================================
// Aggregation
// =============================================================================

func testProfileSummary(t *testing.T, store Store) {
	ctx := context.Background()
	createAchievement(t, store, "agg-a", 10)
	createAchievement(t, store, "agg-b", 15)

	for _, id := range []string{"agg-tape-1", "agg-tape-2"} {
		_, err := store.UpsertTape(ctx, UpsertTapeInput{
			ID:             id,
			CreatorAddress: types.Some(types.StringPtr("0xABC")),
		})
		require.NoError(t, err)
	}
	for _, asset := range []string{"1", "2", "3"} {
		_, err := store.UpsertCollectedCartridge(ctx, UpsertCollectedCartridgeInput{
			CartridgeID:     "agg-cart-" + asset,
			ProfileAddress:  "0xabc",
			ContractAddress: "0xcontract",
			AssetID:         asset,
			Balance:         types.Some(int64(1)),
		})
		require.NoError(t, err)
	}
	award(t, store, "0xabc", "agg-a", 10, testNow)
	award(t, store, "0xabc", "agg-b", 15, testNow)

	_, err := store.UpsertProfile(ctx, UpsertProfileInput{Address: "0xzero", Points: types.Some(int64(3))})
	require.NoError(t, err)

	t.Run("statistics", func(t *testing.T) {
		summary, err := store.GetProfileSummary(ctx, "0xAbC")
		require.NoError(t, err)
		assert.Equal(t, "0xabc", summary.Address)
		assert.Equal(t, int64(2), summary.NTapesCreated)
		assert.Equal(t, int64(0), summary.NTapesCollected)
		assert.Equal(t, int64(0), summary.NCartridgesCreated)
		assert.Equal(t, int64(3), summary.NCartridgesCollected)
		assert.Equal(t, int64(2), summary.NConsoleAchievements)
		assert.Equal(t, int64(25), summary.RivesPoints)
		assert.Equal(t, float64(0), summary.PortfolioValue)
	})

	t.Run("no awards yields zero points", func(t *testing.T) {
		summary, err := store.GetProfileSummary(ctx, "0xzero")
		require.NoError(t, err)
		assert.Equal(t, int64(0), summary.RivesPoints)
		assert.Equal(t, int64(0), summary.NConsoleAchievements)
		assert.Equal(t, int64(3), summary.Points)
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := store.GetProfileSummary(ctx, "0xnobody")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("listing is a leaderboard", func(t *testing.T) {
		page, err := store.ListProfiles(ctx, PageRequest{Limit: MaxPageSize})
		require.NoError(t, err)
		require.NotEmpty(t, page.Items)
		assert.Equal(t, "0xabc", page.Items[0].Address)
		assert.Equal(t, int64(25), page.Items[0].RivesPoints)

		for i := 1; i < len(page.Items); i++ {
			assert.GreaterOrEqual(t, page.Items[i-1].RivesPoints, page.Items[i].RivesPoints)
		}
	})
}

func testProfileAchievements(t *testing.T, store Store) {
	ctx := context.Background()
	createAchievement(t, store, "hist-a", 10)
	createAchievement(t, store, "hist-b", 20)

	t0 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	award(t, store, "0xhist", "hist-a", 10, t0)
	award(t, store, "0xhist", "hist-b", 20, t0.Add(time.Hour))
	award(t, store, "0xhist", "hist-a", 5, t0.Add(2*time.Hour))

	t.Run("history newest first with metadata", func(t *testing.T) {
		page, err := store.ListProfileAchievements(ctx, "0xHIST", PageRequest{})
		require.NoError(t, err)
		require.Len(t, page.Items, 3)
		assert.Equal(t, uint64(3), page.Total)
		assert.Nil(t, page.NextOffset)

		assert.Equal(t, "hist-a", page.Items[0].CASlug)
		assert.Equal(t, int64(5), page.Items[0].Points)
		assert.Equal(t, "hist-b", page.Items[1].CASlug)
		assert.Equal(t, "hist-a", page.Items[2].CASlug)
		require.NotNil(t, page.Items[1].Name)
		assert.Equal(t, "Achievement hist-b", *page.Items[1].Name)
	})

	t.Run("summary collapses per slug", func(t *testing.T) {
		page, err := store.ListProfileAchievementSummary(ctx, "0xhist", PageRequest{})
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.Equal(t, uint64(2), page.Total)

		latest := page.Items[0]
		assert.Equal(t, "hist-a", latest.CASlug)
		assert.Equal(t, int64(2), latest.Count)
		assert.Equal(t, int64(15), latest.TotalPoints)
		require.NotNil(t, latest.Latest)
		assert.True(t, t0.Add(2*time.Hour).Equal(*latest.Latest))

		assert.Equal(t, "hist-b", page.Items[1].CASlug)
		assert.Equal(t, int64(1), page.Items[1].Count)
		assert.Equal(t, int64(20), page.Items[1].TotalPoints)
	})

	t.Run("players of an achievement", func(t *testing.T) {
		award(t, store, "0xotherplayer", "hist-b", 20, t0.Add(3*time.Hour))

		page, err := store.ListAchievementPlayers(ctx, "hist-b", PageRequest{})
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.Equal(t, "0xotherplayer", page.Items[0].ProfileAddress)
		assert.Equal(t, "0xhist", page.Items[1].ProfileAddress)
	})

	t.Run("pagination", func(t *testing.T) {
		page, err := store.ListProfileAchievements(ctx, "0xhist", PageRequest{Limit: 2})
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		require.NotNil(t, page.NextOffset)
		assert.Equal(t, uint64(2), *page.NextOffset)

		page, err = store.ListProfileAchievements(ctx, "0xhist", PageRequest{Limit: 2, Offset: *page.NextOffset})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Nil(t, page.NextOffset)
	})
}

func testRuleLeaderboard(t *testing.T, store Store) {
	ctx := context.Background()

	scores := map[string]int64{"lb-1": 300, "lb-2": 900, "lb-3": 300}
	for id, score := range scores {
		_, err := store.UpsertTape(ctx, UpsertTapeInput{
			ID:     id,
			RuleID: types.Some(types.StringPtr("rule-lb")),
			Score:  types.Some(types.Ptr(score)),
		})
		require.NoError(t, err)
	}
	_, err := store.UpsertTape(ctx, UpsertTapeInput{
		ID:     "lb-unscored",
		RuleID: types.Some(types.StringPtr("rule-lb")),
	})
	require.NoError(t, err)

	for _, collector := range []string{"0xc1", "0xc2"} {
		_, err := store.UpsertCollectedTape(ctx, UpsertCollectedTapeInput{
			TapeID:          "lb-2",
			ProfileAddress:  collector,
			ContractAddress: "0xtapes",
		})
		require.NoError(t, err)
	}

	page, err := store.ListRuleLeaderboard(ctx, "rule-lb", PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 4)

	assert.Equal(t, "lb-2", page.Items[0].TapeID)
	assert.Equal(t, int64(1), page.Items[0].Rank)
	assert.Equal(t, int64(2), page.Items[0].NCollected)

	assert.Equal(t, int64(2), page.Items[1].Rank)
	assert.Equal(t, int64(2), page.Items[2].Rank)
	assert.Equal(t, int64(0), page.Items[1].NCollected)

	assert.Equal(t, "lb-unscored", page.Items[3].TapeID)
	assert.Equal(t, int64(4), page.Items[3].Rank)
}

func testConsoleAchievementCatalogue(t *testing.T, store Store) {
	ctx := context.Background()
	createAchievement(t, store, "cat-b", 2)
	createAchievement(t, store, "cat-a", 1)

	got, err := store.GetConsoleAchievement(ctx, "cat-a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Points)

	page, err := store.ListConsoleAchievements(ctx, PageRequest{Limit: MaxPageSize})
	require.NoError(t, err)
	slugs := make([]string, 0, len(page.Items))
	for _, a := range page.Items {
		slugs = append(slugs, a.Slug)
	}
	assert.Contains(t, slugs, "cat-a")
	assert.Contains(t, slugs, "cat-b")
	assert.IsNonDecreasing(t, slugs)
}

func testGetByKey(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.GetCartridge(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.GetTape(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.GetRule(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.GetConsoleAchievement(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.GetProfile(ctx, "0xmissing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Ping(ctx))
}

// RunStoreTests runs all store tests against the given initialization function
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"UpsertOutcomes", testUpsertOutcomes},
		{"UpsertIdempotence", testUpsertIdempotence},
		{"MergeNonDestructive", testMergeNonDestructive},
		{"Backfill", testBackfill},
		{"AssignConsoleAchievementToRule", testAssignConsoleAchievementToRule},
		{"AwardConsoleAchievement", testAwardConsoleAchievement},
		{"Notifications", testNotifications},
		{"ConsoleAchievementImages", testConsoleAchievementImages},
		{"ProfileSummary", testProfileSummary},
		{"ProfileAchievements", testProfileAchievements},
		{"RuleLeaderboard", testRuleLeaderboard},
		{"ConsoleAchievementCatalogue", testConsoleAchievementCatalogue},
		{"GetByKey", testGetByKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
