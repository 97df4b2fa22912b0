package schema

// EntityKind names a table in the entity graph
type EntityKind string

const (
	KindProfile                   EntityKind = "profile"
	KindCartridge                 EntityKind = "cartridge"
	KindTape                      EntityKind = "tape"
	KindRule                      EntityKind = "rule"
	KindConsoleAchievement        EntityKind = "console_achievement"
	KindCollectedCartridges       EntityKind = "collected_cartridges"
	KindCollectedTapes            EntityKind = "collected_tapes"
	KindAwardedConsoleAchievement EntityKind = "awarded_console_achievement"
	KindRuleConsoleAchievement    EntityKind = "rule_console_achievement"
	KindNotification              EntityKind = "notification"
)

// Entity is implemented by every model keyed by a natural key.
// The upsert engine only writes entities.
type Entity interface {
	// Kind returns the entity type identifier
	Kind() EntityKind
	// TableName returns the backing table
	TableName() string
	// PrimaryKey returns the primary key columns and their values
	PrimaryKey() map[string]any
	// HasKey reports whether every primary key column is populated
	HasKey() bool
}

// Referencing is implemented by entities holding foreign keys to other entities
type Referencing interface {
	// Reference returns the value of a foreign key column, or nil when unset
	Reference(column string) *string
}
