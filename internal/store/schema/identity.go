package schema

import "time"

// Identity represents the identities table - one row per unique chat user.
// Created on first observation and immutable thereafter.
type Identity struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the platform user name
	Name string `gorm:"column:name;not null;type:text;uniqueIndex:idx_identities_name_discriminator,priority:1"`
	// Discriminator disambiguates users sharing a name
	Discriminator string `gorm:"column:discriminator;not null;type:text;uniqueIndex:idx_identities_name_discriminator,priority:2"`
	// CreatedAt is the timestamp when this identity was first observed
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`

	// Associations
	Activities []Activity  `gorm:"foreignKey:IdentityID;constraint:OnDelete:CASCADE"`
	Preference *Preference `gorm:"foreignKey:IdentityID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Identity model
func (Identity) TableName() string {
	return "identities"
}
