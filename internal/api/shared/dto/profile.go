package dto

import (
	"time"

	"github.com/rives-io/rives-aggregator/internal/store"
)

// ProfileSummaryResponse is a profile with its live statistics
type ProfileSummaryResponse struct {
	Address              string  `json:"address"`
	Points               int64   `json:"points"`
	PortfolioValue       float64 `json:"portfolio_value"`
	NCartridgesCreated   int64   `json:"n_cartridges_created"`
	NCartridgesCollected int64   `json:"n_cartridges_collected"`
	NTapesCreated        int64   `json:"n_tapes_created"`
	NTapesCollected      int64   `json:"n_tapes_collected"`
	NConsoleAchievements int64   `json:"n_console_achievements"`
	RivesPoints          int64   `json:"rives_points"`
}

// ProfileAchievementResponse is one award of a profile
type ProfileAchievementResponse struct {
	ID          int64      `json:"id"`
	CASlug      string     `json:"ca_slug"`
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	ImageData   []byte     `json:"image_data"`
	ImageType   *string    `json:"image_type"`
	CreatedAt   *time.Time `json:"created_at"`
	Points      int64      `json:"points"`
	Comments    *string    `json:"comments"`
	TapeID      *string    `json:"tape_id"`
}

// ProfileAchievementSummaryResponse collapses a profile's awards of one slug
type ProfileAchievementSummaryResponse struct {
	CASlug      string     `json:"ca_slug"`
	Latest      *time.Time `json:"latest"`
	TotalPoints int64      `json:"total_points"`
	Count       int64      `json:"count"`
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	ImageData   []byte     `json:"image_data"`
	ImageType   *string    `json:"image_type"`
}

// MapProfileSummaryToDTO maps a profile summary to its response
func MapProfileSummaryToDTO(s store.ProfileSummary) ProfileSummaryResponse {
	return ProfileSummaryResponse{
		Address:              s.Address,
		Points:               s.Points,
		PortfolioValue:       s.PortfolioValue,
		NCartridgesCreated:   s.NCartridgesCreated,
		NCartridgesCollected: s.NCartridgesCollected,
		NTapesCreated:        s.NTapesCreated,
		NTapesCollected:      s.NTapesCollected,
		NConsoleAchievements: s.NConsoleAchievements,
		RivesPoints:          s.RivesPoints,
	}
}

func MapProfileAchievementToDTO(a store.ProfileAchievement) ProfileAchievementResponse {
	return ProfileAchievementResponse{
		ID:          a.ID,
		CASlug:      a.CASlug,
		Name:        a.Name,
		Description: a.Description,
		ImageData:   a.ImageData,
		ImageType:   a.ImageType,
		CreatedAt:   a.CreatedAt,
		Points:      a.Points,
		Comments:    a.Comments,
		TapeID:      a.TapeID,
	}
}

func MapProfileAchievementSummaryToDTO(s store.ProfileAchievementSummary) ProfileAchievementSummaryResponse {
	return ProfileAchievementSummaryResponse{
		CASlug:      s.CASlug,
		Latest:      s.Latest,
		TotalPoints: s.TotalPoints,
		Count:       s.Count,
		Name:        s.Name,
		Description: s.Description,
		ImageData:   s.ImageData,
		ImageType:   s.ImageType,
	}
}
