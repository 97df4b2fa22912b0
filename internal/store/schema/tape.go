package schema

import "time"

// Tape represents the tape table - a recorded gameplay submitted against a rule
type Tape struct {
	// ID is the content-derived tape identifier
	ID        string     `gorm:"column:id;primaryKey;type:text" json:"id"`
	Name      *string    `gorm:"column:name;type:text" json:"name"`
	Score     *int64     `gorm:"column:score" json:"score"`
	Title     *string    `gorm:"column:title;type:text" json:"title"`
	BuyValue  int64      `gorm:"column:buy_value;not null" json:"buy_value"`
	SellValue int64      `gorm:"column:sell_value;not null" json:"sell_value"`
	CreatedAt *time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime:false" json:"created_at"`
	// CreatorAddress references the profile that submitted the tape
	CreatorAddress *string `gorm:"column:creator_address;type:text;index" json:"creator_address"`
	// RuleID references the rule the tape was played under
	RuleID *string `gorm:"column:rule_id;type:text;index" json:"rule_id"`

	// Raw verification data, hex encoded as emitted by the console
	Tape    *string `gorm:"column:tape;type:text" json:"tape"`
	Incard  *string `gorm:"column:incard;type:text" json:"incard"`
	Args    *string `gorm:"column:args;type:text" json:"args"`
	Entropy *string `gorm:"column:entropy;type:text" json:"entropy"`
}

// TableName specifies the table name for the Tape model
func (Tape) TableName() string {
	return "tape"
}

func (Tape) Kind() EntityKind {
	return KindTape
}

func (t Tape) PrimaryKey() map[string]any {
	return map[string]any{"id": t.ID}
}

func (t Tape) HasKey() bool {
	return t.ID != ""
}

func (t Tape) Reference(column string) *string {
	switch column {
	case "creator_address":
		return t.CreatorAddress
	case "rule_id":
		return t.RuleID
	}
	return nil
}
