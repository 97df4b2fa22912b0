package dto

import (
	"time"

	"github.com/rives-io/rives-aggregator/internal/store"
)

// LeaderboardEntryResponse is a tape ranked within its rule
type LeaderboardEntryResponse struct {
	Rank           int64      `json:"rank"`
	TapeID         string     `json:"tape_id"`
	RuleID         string     `json:"rule_id"`
	Name           *string    `json:"name"`
	Title          *string    `json:"title"`
	Score          *int64     `json:"score"`
	CreatorAddress *string    `json:"creator_address"`
	BuyValue       int64      `json:"buy_value"`
	SellValue      int64      `json:"sell_value"`
	CreatedAt      *time.Time `json:"created_at"`
	NCollected     int64      `json:"n_collected"`
}

// AchievementPlayerResponse is one award of an achievement
type AchievementPlayerResponse struct {
	ProfileAddress string     `json:"profile_address"`
	CreatedAt      *time.Time `json:"created_at"`
	Points         int64      `json:"points"`
	TapeID         *string    `json:"tape_id"`
}

func MapLeaderboardEntryToDTO(e store.LeaderboardEntry) LeaderboardEntryResponse {
	return LeaderboardEntryResponse{
		Rank:           e.Rank,
		TapeID:         e.TapeID,
		RuleID:         e.RuleID,
		Name:           e.Name,
		Title:          e.Title,
		Score:          e.Score,
		CreatorAddress: e.CreatorAddress,
		BuyValue:       e.BuyValue,
		SellValue:      e.SellValue,
		CreatedAt:      e.CreatedAt,
		NCollected:     e.NCollected,
	}
}

func MapAchievementPlayerToDTO(p store.AchievementPlayer) AchievementPlayerResponse {
	return AchievementPlayerResponse{
		ProfileAddress: p.ProfileAddress,
		CreatedAt:      p.CreatedAt,
		Points:         p.Points,
		TapeID:         p.TapeID,
	}
}
