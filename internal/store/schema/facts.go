package schema

import "time"

// AwardedConsoleAchievement represents the awarded_console_achievement table.
// Append-only: every award notice is a new fact, even when it repeats.
type AwardedConsoleAchievement struct {
	// ID is the synthetic identity of the award event
	ID             int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProfileAddress string     `gorm:"column:profile_address;not null;type:text;index" json:"profile_address"`
	CASlug         string     `gorm:"column:ca_slug;not null;type:text;index" json:"ca_slug"`
	TapeID         *string    `gorm:"column:tape_id;type:text" json:"tape_id"`
	CreatedAt      *time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime:false" json:"created_at"`
	// Points awarded for this occurrence, may differ from the achievement default
	Points   int64   `gorm:"column:points;not null" json:"points"`
	Comments *string `gorm:"column:comments;type:text" json:"comments"`
}

// TableName specifies the table name for the AwardedConsoleAchievement model
func (AwardedConsoleAchievement) TableName() string {
	return "awarded_console_achievement"
}

func (AwardedConsoleAchievement) Kind() EntityKind {
	return KindAwardedConsoleAchievement
}

func (a AwardedConsoleAchievement) Reference(column string) *string {
	switch column {
	case "profile_address":
		return &a.ProfileAddress
	case "tape_id":
		return a.TapeID
	}
	return nil
}

// Notification represents the notification table. Append-only except for the
// unread flag, which flips to false the first time the notification is followed.
type Notification struct {
	ID             int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProfileAddress string     `gorm:"column:profile_address;not null;type:text;index" json:"profile_address"`
	CreatedAt      *time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime:false" json:"created_at"`
	Title          *string    `gorm:"column:title;type:text" json:"title"`
	Message        string     `gorm:"column:message;not null;type:text" json:"message"`
	URL            *string    `gorm:"column:url;type:text" json:"url"`
	Unread         bool       `gorm:"column:unread;not null" json:"unread"`
}

// TableName specifies the table name for the Notification model
func (Notification) TableName() string {
	return "notification"
}

func (Notification) Kind() EntityKind {
	return KindNotification
}

func (n Notification) Reference(column string) *string {
	if column == "profile_address" {
		return &n.ProfileAddress
	}
	return nil
}
