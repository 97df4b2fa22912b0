package schema

import "time"

// Rule represents the rule table - a contest/challenge configuration for a cartridge
type Rule struct {
	ID          string     `gorm:"column:id;primaryKey;type:text" json:"id"`
	Name        *string    `gorm:"column:name;type:text" json:"name"`
	Description *string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt   *time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime:false" json:"created_at"`
	Start       *time.Time `gorm:"column:start;type:timestamptz" json:"start"`
	End         *time.Time `gorm:"column:end;type:timestamptz" json:"end"`
	// CartridgeID references the cartridge the rule applies to
	CartridgeID *string `gorm:"column:cartridge_id;type:text;index" json:"cartridge_id"`
	CreatedBy   *string `gorm:"column:created_by;type:text" json:"created_by"`

	SponsorName      *string `gorm:"column:sponsor_name;type:text" json:"sponsor_name"`
	SponsorImageData []byte  `gorm:"column:sponsor_image_data;type:bytea" json:"sponsor_image_data"`
	SponsorImageType *string `gorm:"column:sponsor_image_type;type:text" json:"sponsor_image_type"`
	Prize            *string `gorm:"column:prize;type:text" json:"prize"`
}

// TableName specifies the table name for the Rule model
func (Rule) TableName() string {
	return "rule"
}

func (Rule) Kind() EntityKind {
	return KindRule
}

func (r Rule) PrimaryKey() map[string]any {
	return map[string]any{"id": r.ID}
}

func (r Rule) HasKey() bool {
	return r.ID != ""
}

func (r Rule) Reference(column string) *string {
	if column == "cartridge_id" {
		return r.CartridgeID
	}
	return nil
}
