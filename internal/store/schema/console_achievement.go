package schema

// ConsoleAchievement represents the console_achievement table - the curated
// catalogue of achievements. Rows are never created as a side effect of a
// dangling reference.
type ConsoleAchievement struct {
	// Slug is the human readable achievement identifier
	Slug        string  `gorm:"column:slug;primaryKey;type:text" json:"slug"`
	Name        *string `gorm:"column:name;type:text" json:"name"`
	Description *string `gorm:"column:description;type:text" json:"description"`
	// Points is the default award value
	Points    int64   `gorm:"column:points;not null" json:"points"`
	ImageData []byte  `gorm:"column:image_data;type:bytea" json:"image_data"`
	ImageType *string `gorm:"column:image_type;type:text" json:"image_type"`
}

// TableName specifies the table name for the ConsoleAchievement model
func (ConsoleAchievement) TableName() string {
	return "console_achievement"
}

func (ConsoleAchievement) Kind() EntityKind {
	return KindConsoleAchievement
}

func (a ConsoleAchievement) PrimaryKey() map[string]any {
	return map[string]any{"slug": a.Slug}
}

func (a ConsoleAchievement) HasKey() bool {
	return a.Slug != ""
}
