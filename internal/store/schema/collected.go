package schema

// CollectedCartridges represents the collected_cartridges table - a profile's
// holding of a cartridge asset on a given contract
type CollectedCartridges struct {
	CartridgeID     string `gorm:"column:cartridge_id;primaryKey;type:text" json:"cartridge_id"`
	ProfileAddress  string `gorm:"column:profile_address;primaryKey;type:text" json:"profile_address"`
	ContractAddress string `gorm:"column:contract_address;primaryKey;type:text" json:"contract_address"`
	AssetID         string `gorm:"column:asset_id;primaryKey;type:text" json:"asset_id"`
	Balance         int64  `gorm:"column:balance;not null" json:"balance"`
}

// TableName specifies the table name for the CollectedCartridges model
func (CollectedCartridges) TableName() string {
	return "collected_cartridges"
}

func (CollectedCartridges) Kind() EntityKind {
	return KindCollectedCartridges
}

func (c CollectedCartridges) PrimaryKey() map[string]any {
	return map[string]any{
		"cartridge_id":     c.CartridgeID,
		"profile_address":  c.ProfileAddress,
		"contract_address": c.ContractAddress,
		"asset_id":         c.AssetID,
	}
}

func (c CollectedCartridges) HasKey() bool {
	return c.CartridgeID != "" && c.ProfileAddress != "" && c.ContractAddress != "" && c.AssetID != ""
}

func (c CollectedCartridges) Reference(column string) *string {
	switch column {
	case "cartridge_id":
		return &c.CartridgeID
	case "profile_address":
		return &c.ProfileAddress
	}
	return nil
}

// CollectedTapes represents the collected_tapes table - a profile's holding of
// a tape asset on a given contract
type CollectedTapes struct {
	TapeID          string  `gorm:"column:tape_id;primaryKey;type:text" json:"tape_id"`
	ProfileAddress  string  `gorm:"column:profile_address;primaryKey;type:text" json:"profile_address"`
	ContractAddress string  `gorm:"column:contract_address;primaryKey;type:text" json:"contract_address"`
	AssetID         *string `gorm:"column:asset_id;type:text" json:"asset_id"`
	Balance         int64   `gorm:"column:balance;not null" json:"balance"`
}

// TableName specifies the table name for the CollectedTapes model
func (CollectedTapes) TableName() string {
	return "collected_tapes"
}

func (CollectedTapes) Kind() EntityKind {
	return KindCollectedTapes
}

func (c CollectedTapes) PrimaryKey() map[string]any {
	return map[string]any{
		"tape_id":          c.TapeID,
		"profile_address":  c.ProfileAddress,
		"contract_address": c.ContractAddress,
	}
}

func (c CollectedTapes) HasKey() bool {
	return c.TapeID != "" && c.ProfileAddress != "" && c.ContractAddress != ""
}

func (c CollectedTapes) Reference(column string) *string {
	switch column {
	case "tape_id":
		return &c.TapeID
	case "profile_address":
		return &c.ProfileAddress
	}
	return nil
}
