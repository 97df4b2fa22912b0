package schema

// RuleConsoleAchievement represents the rule_console_achievement link table
type RuleConsoleAchievement struct {
	RuleID string `gorm:"column:rule_id;primaryKey;type:text" json:"rule_id"`
	CASlug string `gorm:"column:ca_slug;primaryKey;type:text" json:"ca_slug"`
}

// TableName specifies the table name for the RuleConsoleAchievement model
func (RuleConsoleAchievement) TableName() string {
	return "rule_console_achievement"
}

func (RuleConsoleAchievement) Kind() EntityKind {
	return KindRuleConsoleAchievement
}

func (l RuleConsoleAchievement) PrimaryKey() map[string]any {
	return map[string]any{"rule_id": l.RuleID, "ca_slug": l.CASlug}
}

func (l RuleConsoleAchievement) HasKey() bool {
	return l.RuleID != "" && l.CASlug != ""
}

func (l RuleConsoleAchievement) Reference(column string) *string {
	switch column {
	case "rule_id":
		return &l.RuleID
	case "ca_slug":
		return &l.CASlug
	}
	return nil
}
