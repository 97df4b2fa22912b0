package store

import (
	"time"

	"github.com/rives-io/rives-aggregator/internal/asset"
	"github.com/rives-io/rives-aggregator/internal/domain"
	"github.com/rives-io/rives-aggregator/internal/store/schema"
	"github.com/rives-io/rives-aggregator/internal/types"
)

// Entity fragments. Keys are plain values; every mutable field records whether
// the caller supplied it, so a merge only touches the columns listed in the
// fragment. Nullable columns use pointer payloads so an explicit null clears them.

// UpsertProfileInput is a profile fragment
type UpsertProfileInput struct {
	Address string                `json:"address"`
	Points  types.Optional[int64] `json:"points"`
}

// UpsertCartridgeInput is a cartridge fragment
type UpsertCartridgeInput struct {
	ID             string                     `json:"id"`
	Name           types.Optional[*string]    `json:"name"`
	Authors        types.Optional[*string]    `json:"authors"`
	CreatedAt      types.Optional[*time.Time] `json:"created_at"`
	BuyValue       types.Optional[int64]      `json:"buy_value"`
	SellValue      types.Optional[int64]      `json:"sell_value"`
	CreatorAddress types.Optional[*string]    `json:"creator_address"`
}

// UpsertTapeInput is a tape fragment
type UpsertTapeInput struct {
	ID             string                     `json:"id"`
	Name           types.Optional[*string]    `json:"name"`
	Score          types.Optional[*int64]     `json:"score"`
	Title          types.Optional[*string]    `json:"title"`
	BuyValue       types.Optional[int64]      `json:"buy_value"`
	SellValue      types.Optional[int64]      `json:"sell_value"`
	CreatedAt      types.Optional[*time.Time] `json:"created_at"`
	CreatorAddress types.Optional[*string]    `json:"creator_address"`
	RuleID         types.Optional[*string]    `json:"rule_id"`
	Tape           types.Optional[*string]    `json:"tape"`
	Incard         types.Optional[*string]    `json:"incard"`
	Args           types.Optional[*string]    `json:"args"`
	Entropy        types.Optional[*string]    `json:"entropy"`
}

// UpsertRuleInput is a rule fragment. A sponsor image supplied without a type
// gets its type inferred from the bytes.
type UpsertRuleInput struct {
	ID               string                     `json:"id"`
	Name             types.Optional[*string]    `json:"name"`
	Description      types.Optional[*string]    `json:"description"`
	CreatedAt        types.Optional[*time.Time] `json:"created_at"`
	Start            types.Optional[*time.Time] `json:"start"`
	End              types.Optional[*time.Time] `json:"end"`
	CartridgeID      types.Optional[*string]    `json:"cartridge_id"`
	CreatedBy        types.Optional[*string]    `json:"created_by"`
	SponsorName      types.Optional[*string]    `json:"sponsor_name"`
	SponsorImageData types.Optional[[]byte]     `json:"sponsor_image_data"`
	SponsorImageType types.Optional[*string]    `json:"sponsor_image_type"`
	Prize            types.Optional[*string]    `json:"prize"`
}

// UpsertConsoleAchievementInput is a catalogue entry fragment. An image supplied
// without a type gets its type inferred from the bytes.
type UpsertConsoleAchievementInput struct {
	Slug        string                  `json:"slug"`
	Name        types.Optional[*string] `json:"name"`
	Description types.Optional[*string] `json:"description"`
	Points      types.Optional[int64]   `json:"points"`
	ImageData   types.Optional[[]byte]  `json:"image_data"`
	ImageType   types.Optional[*string] `json:"image_type"`
}

// UpsertCollectedCartridgeInput is a cartridge holding fragment
type UpsertCollectedCartridgeInput struct {
	CartridgeID     string                `json:"cartridge_id"`
	ProfileAddress  string                `json:"profile_address"`
	ContractAddress string                `json:"contract_address"`
	AssetID         string                `json:"asset_id"`
	Balance         types.Optional[int64] `json:"balance"`
}

// UpsertCollectedTapeInput is a tape holding fragment
type UpsertCollectedTapeInput struct {
	TapeID          string                  `json:"tape_id"`
	ProfileAddress  string                  `json:"profile_address"`
	ContractAddress string                  `json:"contract_address"`
	AssetID         types.Optional[*string] `json:"asset_id"`
	Balance         types.Optional[int64]   `json:"balance"`
}

// AwardConsoleAchievementInput is an award fact. CreatedAt defaults to the
// store clock when nil.
type AwardConsoleAchievementInput struct {
	ProfileAddress string     `json:"profile_address"`
	CASlug         string     `json:"ca_slug"`
	TapeID         *string    `json:"tape_id"`
	CreatedAt      *time.Time `json:"created_at"`
	Points         int64      `json:"points"`
	Comments       *string    `json:"comments"`
}

// CreateNotificationInput is a notification fact. CreatedAt defaults to the
// store clock and Unread to true when nil.
type CreateNotificationInput struct {
	ProfileAddress string     `json:"profile_address"`
	CreatedAt      *time.Time `json:"created_at"`
	Title          *string    `json:"title"`
	Message        string     `json:"message"`
	URL            *string    `json:"url"`
	Unread         *bool      `json:"unread"`
}

// setField copies a supplied value into the model and records its column
func setField[T any](fields *[]string, column string, opt types.Optional[T], dst *T) {
	if v, ok := opt.Get(); ok {
		*dst = v
		*fields = append(*fields, column)
	}
}

// inferImageType fills in a missing image type when image bytes are supplied
func inferImageType(data types.Optional[[]byte], imageType types.Optional[*string]) types.Optional[*string] {
	bytes, ok := data.Get()
	if !ok || len(bytes) == 0 {
		return imageType
	}
	if t, ok := imageType.Get(); ok && t != nil {
		return imageType
	}
	return types.Some(types.StringPtr(asset.Classify(bytes)))
}

func (i UpsertProfileInput) toModel() (*schema.Profile, []string) {
	m := &schema.Profile{Address: domain.NormalizeAddress(i.Address)}
	var fields []string
	setField(&fields, "points", i.Points, &m.Points)
	return m, fields
}

func (i UpsertCartridgeInput) toModel() (*schema.Cartridge, []string) {
	m := &schema.Cartridge{ID: i.ID}
	var fields []string
	setField(&fields, "name", i.Name, &m.Name)
	setField(&fields, "authors", i.Authors, &m.Authors)
	setField(&fields, "created_at", i.CreatedAt, &m.CreatedAt)
	setField(&fields, "buy_value", i.BuyValue, &m.BuyValue)
	setField(&fields, "sell_value", i.SellValue, &m.SellValue)
	setField(&fields, "creator_address", i.CreatorAddress, &m.CreatorAddress)
	m.CreatorAddress = domain.NormalizeAddressPtr(m.CreatorAddress)
	return m, fields
}

func (i UpsertTapeInput) toModel() (*schema.Tape, []string) {
	m := &schema.Tape{ID: i.ID}
	var fields []string
	setField(&fields, "name", i.Name, &m.Name)
	setField(&fields, "score", i.Score, &m.Score)
	setField(&fields, "title", i.Title, &m.Title)
	setField(&fields, "buy_value", i.BuyValue, &m.BuyValue)
	setField(&fields, "sell_value", i.SellValue, &m.SellValue)
	setField(&fields, "created_at", i.CreatedAt, &m.CreatedAt)
	setField(&fields, "creator_address", i.CreatorAddress, &m.CreatorAddress)
	setField(&fields, "rule_id", i.RuleID, &m.RuleID)
	setField(&fields, "tape", i.Tape, &m.Tape)
	setField(&fields, "incard", i.Incard, &m.Incard)
	setField(&fields, "args", i.Args, &m.Args)
	setField(&fields, "entropy", i.Entropy, &m.Entropy)
	m.CreatorAddress = domain.NormalizeAddressPtr(m.CreatorAddress)
	return m, fields
}

func (i UpsertRuleInput) toModel() (*schema.Rule, []string) {
	m := &schema.Rule{ID: i.ID}
	var fields []string
	setField(&fields, "name", i.Name, &m.Name)
	setField(&fields, "description", i.Description, &m.Description)
	setField(&fields, "created_at", i.CreatedAt, &m.CreatedAt)
	setField(&fields, "start", i.Start, &m.Start)
	setField(&fields, "end", i.End, &m.End)
	setField(&fields, "cartridge_id", i.CartridgeID, &m.CartridgeID)
	setField(&fields, "created_by", i.CreatedBy, &m.CreatedBy)
	setField(&fields, "sponsor_name", i.SponsorName, &m.SponsorName)
	setField(&fields, "sponsor_image_data", i.SponsorImageData, &m.SponsorImageData)
	setField(&fields, "sponsor_image_type", inferImageType(i.SponsorImageData, i.SponsorImageType), &m.SponsorImageType)
	setField(&fields, "prize", i.Prize, &m.Prize)
	return m, fields
}

func (i UpsertConsoleAchievementInput) toModel() (*schema.ConsoleAchievement, []string) {
	m := &schema.ConsoleAchievement{Slug: i.Slug}
	var fields []string
	setField(&fields, "name", i.Name, &m.Name)
	setField(&fields, "description", i.Description, &m.Description)
	setField(&fields, "points", i.Points, &m.Points)
	setField(&fields, "image_data", i.ImageData, &m.ImageData)
	setField(&fields, "image_type", inferImageType(i.ImageData, i.ImageType), &m.ImageType)
	return m, fields
}

func (i UpsertCollectedCartridgeInput) toModel() (*schema.CollectedCartridges, []string) {
	m := &schema.CollectedCartridges{
		CartridgeID:     i.CartridgeID,
		ProfileAddress:  domain.NormalizeAddress(i.ProfileAddress),
		ContractAddress: i.ContractAddress,
		AssetID:         i.AssetID,
	}
	var fields []string
	setField(&fields, "balance", i.Balance, &m.Balance)
	return m, fields
}

func (i UpsertCollectedTapeInput) toModel() (*schema.CollectedTapes, []string) {
	m := &schema.CollectedTapes{
		TapeID:          i.TapeID,
		ProfileAddress:  domain.NormalizeAddress(i.ProfileAddress),
		ContractAddress: i.ContractAddress,
	}
	var fields []string
	setField(&fields, "asset_id", i.AssetID, &m.AssetID)
	setField(&fields, "balance", i.Balance, &m.Balance)
	return m, fields
}

func (i AwardConsoleAchievementInput) toModel(now time.Time) *schema.AwardedConsoleAchievement {
	createdAt := i.CreatedAt
	if createdAt == nil {
		createdAt = &now
	}
	return &schema.AwardedConsoleAchievement{
		ProfileAddress: domain.NormalizeAddress(i.ProfileAddress),
		CASlug:         i.CASlug,
		TapeID:         i.TapeID,
		CreatedAt:      createdAt,
		Points:         i.Points,
		Comments:       i.Comments,
	}
}

func (i CreateNotificationInput) toModel(now time.Time) *schema.Notification {
	createdAt := i.CreatedAt
	if createdAt == nil {
		createdAt = &now
	}
	unread := true
	if i.Unread != nil {
		unread = *i.Unread
	}
	return &schema.Notification{
		ProfileAddress: domain.NormalizeAddress(i.ProfileAddress),
		CreatedAt:      createdAt,
		Title:          i.Title,
		Message:        i.Message,
		URL:            i.URL,
		Unread:         unread,
	}
}
