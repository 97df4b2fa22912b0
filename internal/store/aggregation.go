package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rives-io/rives-aggregator/internal/domain"
	"github.com/rives-io/rives-aggregator/internal/store/schema"
)

// ProfileSummary is a profile with its live statistics
type ProfileSummary struct {
	Address              string  `gorm:"column:address"`
	Points               int64   `gorm:"column:points"`
	PortfolioValue       float64 `gorm:"column:portfolio_value"`
	NCartridgesCreated   int64   `gorm:"column:n_cartridges_created"`
	NCartridgesCollected int64   `gorm:"column:n_cartridges_collected"`
	NTapesCreated        int64   `gorm:"column:n_tapes_created"`
	NTapesCollected      int64   `gorm:"column:n_tapes_collected"`
	NConsoleAchievements int64   `gorm:"column:n_console_achievements"`
	RivesPoints          int64   `gorm:"column:rives_points"`
}

// ProfileAchievement is one award joined with its achievement metadata
type ProfileAchievement struct {
	ID          int64      `gorm:"column:id"`
	CASlug      string     `gorm:"column:ca_slug"`
	Name        *string    `gorm:"column:name"`
	Description *string    `gorm:"column:description"`
	ImageData   []byte     `gorm:"column:image_data"`
	ImageType   *string    `gorm:"column:image_type"`
	CreatedAt   *time.Time `gorm:"column:created_at"`
	Points      int64      `gorm:"column:points"`
	Comments    *string    `gorm:"column:comments"`
	TapeID      *string    `gorm:"column:tape_id"`
}

// ProfileAchievementSummary collapses every award of one slug for a profile
type ProfileAchievementSummary struct {
	CASlug      string     `gorm:"column:ca_slug"`
	Latest      *time.Time `gorm:"column:latest"`
	TotalPoints int64      `gorm:"column:total_points"`
	Count       int64      `gorm:"column:count"`
	Name        *string    `gorm:"column:name"`
	Description *string    `gorm:"column:description"`
	ImageData   []byte     `gorm:"column:image_data"`
	ImageType   *string    `gorm:"column:image_type"`
}

// LeaderboardEntry is a tape of a rule ranked by score
type LeaderboardEntry struct {
	TapeID         string     `gorm:"column:tape_id"`
	RuleID         string     `gorm:"column:rule_id"`
	Name           *string    `gorm:"column:name"`
	Title          *string    `gorm:"column:title"`
	Score          *int64     `gorm:"column:score"`
	CreatorAddress *string    `gorm:"column:creator_address"`
	BuyValue       int64      `gorm:"column:buy_value"`
	SellValue      int64      `gorm:"column:sell_value"`
	CreatedAt      *time.Time `gorm:"column:created_at"`
	NCollected     int64      `gorm:"column:n_collected"`
	Rank           int64      `gorm:"column:rank"`
}

// AchievementPlayer is one award of an achievement
type AchievementPlayer struct {
	ProfileAddress string     `gorm:"column:profile_address"`
	CreatedAt      *time.Time `gorm:"column:created_at"`
	Points         int64      `gorm:"column:points"`
	TapeID         *string    `gorm:"column:tape_id"`
}

// profileStatsColumns computes every profile statistic as a correlated
// sub-query against the outer profile row
const profileStatsColumns = `profile.address, profile.points,
	0::float8 AS portfolio_value,
	(SELECT COUNT(*) FROM cartridge c WHERE c.creator_address = profile.address) AS n_cartridges_created,
	(SELECT COUNT(*) FROM collected_cartridges cc WHERE cc.profile_address = profile.address) AS n_cartridges_collected,
	(SELECT COUNT(*) FROM tape t WHERE t.creator_address = profile.address) AS n_tapes_created,
	(SELECT COUNT(*) FROM collected_tapes ct WHERE ct.profile_address = profile.address) AS n_tapes_collected,
	(SELECT COUNT(*) FROM awarded_console_achievement aca WHERE aca.profile_address = profile.address) AS n_console_achievements,
	(SELECT COALESCE(SUM(aca.points), 0)::bigint FROM awarded_console_achievement aca WHERE aca.profile_address = profile.address) AS rives_points`

// GetProfileSummary returns the statistics of one profile
func (s *pgStore) GetProfileSummary(ctx context.Context, address string) (*ProfileSummary, error) {
	address = domain.NormalizeAddress(address)

	var summary ProfileSummary
	result := s.db.WithContext(ctx).
		Model(&schema.Profile{}).
		Select(profileStatsColumns).
		Where("profile.address = ?", address).
		Limit(1).
		Scan(&summary)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get profile summary: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: profile %s", ErrNotFound, address)
	}

	return &summary, nil
}

// ListProfiles returns profiles with their statistics, highest rives points first
func (s *pgStore) ListProfiles(ctx context.Context, page PageRequest) (*Page[ProfileSummary], error) {
	query := s.db.WithContext(ctx).Model(&schema.Profile{})

	return paginate[ProfileSummary](query, page, profileStatsColumns, "rives_points DESC, profile.address ASC")
}

// ListProfileAchievements returns every award of a profile, newest first
func (s *pgStore) ListProfileAchievements(ctx context.Context, address string, page PageRequest) (*Page[ProfileAchievement], error) {
	address = domain.NormalizeAddress(address)

	query := s.db.WithContext(ctx).
		Table("awarded_console_achievement AS aca").
		Joins("JOIN console_achievement ca ON ca.slug = aca.ca_slug").
		Where("aca.profile_address = ?", address)

	return paginate[ProfileAchievement](query, page,
		"aca.id, aca.ca_slug, ca.name, ca.description, ca.image_data, ca.image_type, aca.created_at, aca.points, aca.comments, aca.tape_id",
		"aca.created_at DESC NULLS LAST, aca.id DESC")
}

// ListProfileAchievementSummary returns one row per achievement slug awarded to
// a profile, most recently awarded first
func (s *pgStore) ListProfileAchievementSummary(ctx context.Context, address string, page PageRequest) (*Page[ProfileAchievementSummary], error) {
	address = domain.NormalizeAddress(address)

	grouped := s.db.WithContext(ctx).
		Model(&schema.AwardedConsoleAchievement{}).
		Select(`ca_slug,
			MAX(created_at) AS latest,
			COALESCE(SUM(points), 0)::bigint AS total_points,
			COUNT(*) AS "count"`).
		Where("profile_address = ?", address).
		Group("ca_slug")

	query := s.db.WithContext(ctx).
		Table("(?) AS summary", grouped).
		Joins("JOIN console_achievement ca ON ca.slug = summary.ca_slug")

	return paginate[ProfileAchievementSummary](query, page,
		`summary.ca_slug, summary.latest, summary.total_points, summary."count", ca.name, ca.description, ca.image_data, ca.image_type`,
		"summary.latest DESC NULLS LAST, summary.ca_slug ASC")
}

// ListRuleLeaderboard ranks the tapes played under a rule by score
func (s *pgStore) ListRuleLeaderboard(ctx context.Context, ruleID string, page PageRequest) (*Page[LeaderboardEntry], error) {
	query := s.db.WithContext(ctx).
		Table("tape AS t").
		Where("t.rule_id = ?", ruleID)

	return paginate[LeaderboardEntry](query, page,
		`t.id AS tape_id, t.rule_id, t.name, t.title, t.score, t.creator_address,
			t.buy_value, t.sell_value, t.created_at,
			(SELECT COUNT(*) FROM collected_tapes ct WHERE ct.tape_id = t.id) AS n_collected,
			RANK() OVER (ORDER BY t.score DESC NULLS LAST) AS rank`,
		"rank ASC, t.created_at ASC NULLS LAST, t.id ASC")
}

// ListAchievementPlayers returns the awards of one achievement, newest first
func (s *pgStore) ListAchievementPlayers(ctx context.Context, slug string, page PageRequest) (*Page[AchievementPlayer], error) {
	query := s.db.WithContext(ctx).
		Model(&schema.AwardedConsoleAchievement{}).
		Where("ca_slug = ?", slug)

	return paginate[AchievementPlayer](query, page,
		"profile_address, created_at, points, tape_id",
		"created_at DESC NULLS LAST, id DESC")
}

// ListRuleAchievements returns the achievements linked to a rule
func (s *pgStore) ListRuleAchievements(ctx context.Context, ruleID string, page PageRequest) (*Page[schema.ConsoleAchievement], error) {
	query := s.db.WithContext(ctx).
		Table("console_achievement AS ca").
		Joins("JOIN rule_console_achievement rca ON rca.ca_slug = ca.slug").
		Where("rca.rule_id = ?", ruleID)

	return paginate[schema.ConsoleAchievement](query, page, "ca.*", "ca.slug ASC")
}

// ListConsoleAchievements returns the achievement catalogue
func (s *pgStore) ListConsoleAchievements(ctx context.Context, page PageRequest) (*Page[schema.ConsoleAchievement], error) {
	query := s.db.WithContext(ctx).Model(&schema.ConsoleAchievement{})

	return paginate[schema.ConsoleAchievement](query, page, "*", "slug ASC")
}

// ListNotifications returns a profile's notifications, newest first.
// unread filters on the read state when set.
func (s *pgStore) ListNotifications(ctx context.Context, address string, unread *bool, page PageRequest) (*Page[schema.Notification], error) {
	address = domain.NormalizeAddress(address)

	query := s.db.WithContext(ctx).
		Model(&schema.Notification{}).
		Where("profile_address = ?", address)
	if unread != nil {
		query = query.Where("unread = ?", *unread)
	}

	return paginate[schema.Notification](query, page, "*", "created_at DESC NULLS LAST, id DESC")
}
