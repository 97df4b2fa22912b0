package schema

import "time"

// Cartridge represents the cartridge table - a game published on the console
type Cartridge struct {
	// ID is the content-derived cartridge identifier
	ID      string  `gorm:"column:id;primaryKey;type:text" json:"id"`
	Name    *string `gorm:"column:name;type:text" json:"name"`
	Authors *string `gorm:"column:authors;type:text" json:"authors"`
	// CreatedAt is the block time the cartridge was inserted, not the row creation time
	CreatedAt *time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime:false" json:"created_at"`
	BuyValue  int64      `gorm:"column:buy_value;not null" json:"buy_value"`
	SellValue int64      `gorm:"column:sell_value;not null" json:"sell_value"`
	// CreatorAddress references the profile that published the cartridge
	CreatorAddress *string `gorm:"column:creator_address;type:text;index" json:"creator_address"`
}

// TableName specifies the table name for the Cartridge model
func (Cartridge) TableName() string {
	return "cartridge"
}

func (Cartridge) Kind() EntityKind {
	return KindCartridge
}

func (c Cartridge) PrimaryKey() map[string]any {
	return map[string]any{"id": c.ID}
}

func (c Cartridge) HasKey() bool {
	return c.ID != ""
}

func (c Cartridge) Reference(column string) *string {
	if column == "creator_address" {
		return c.CreatorAddress
	}
	return nil
}
