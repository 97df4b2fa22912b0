package schema

// Profile represents the profile table - one row per player address
type Profile struct {
	// Address is the lowercased blockchain address of the player
	Address string `gorm:"column:address;primaryKey;type:text" json:"address"`
	// Points is the raw point counter carried by profile notices
	Points int64 `gorm:"column:points;not null" json:"points"`
}

// TableName specifies the table name for the Profile model
func (Profile) TableName() string {
	return "profile"
}

func (Profile) Kind() EntityKind {
	return KindProfile
}

func (p Profile) PrimaryKey() map[string]any {
	return map[string]any{"address": p.Address}
}

func (p Profile) HasKey() bool {
	return p.Address != ""
}
