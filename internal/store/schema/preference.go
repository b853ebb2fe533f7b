package schema

// Preference represents the preferences table - exactly one (keyword,
// timestamp) pair per identity, overwritten on each update.
type Preference struct {
	// IdentityID is the owning identity and the primary key
	IdentityID int64 `gorm:"column:identity_id;primaryKey"`
	// Keyword is the media search keyword the identity registered
	Keyword string `gorm:"column:keyword;not null;default:'';type:text"`
	// Timestamp is the unix timestamp of the last gated delivery
	Timestamp int64 `gorm:"column:timestamp;not null;default:0"`
}

// TableName specifies the table name for the Preference model
func (Preference) TableName() string {
	return "preferences"
}
