package schema

import "time"

// Alert represents the alerts table. An alert stays open until a violation
// has been delivered to its originating channel, then it is deleted.
type Alert struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Symbol is the monitored quote-source symbol
	Symbol string `gorm:"column:symbol;not null;index;type:text"`
	// Low is the lower price bound
	Low float64 `gorm:"column:low;not null"`
	// High is the upper price bound
	High float64 `gorm:"column:high;not null"`
	// ChannelID is the channel the violation message is delivered to
	ChannelID int64 `gorm:"column:channel_id;not null"`
	// IdentityID references the identity that created the alert
	IdentityID int64 `gorm:"column:identity_id;not null"`
	// Note is free-form text echoed in the violation message
	Note string `gorm:"column:note;not null;default:'';type:text"`
	// CreatedAt is the timestamp when the alert was created
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName specifies the table name for the Alert model
func (Alert) TableName() string {
	return "alerts"
}
