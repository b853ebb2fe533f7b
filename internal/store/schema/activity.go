package schema

// Activity represents the activities table - one append-only row per chat
// message observed. The (identity_id, channel_id, timestamp) triple is the
// dedup key: re-ingesting a seen triple is a no-op, never an update.
type Activity struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// IdentityID references the author identity
	IdentityID int64 `gorm:"column:identity_id;not null;uniqueIndex:idx_activities_identity_channel_ts,priority:1"`
	// ChannelID is the chat channel the activity happened in
	ChannelID int64 `gorm:"column:channel_id;not null;index;uniqueIndex:idx_activities_identity_channel_ts,priority:2"`
	// Timestamp is the activity unix timestamp
	Timestamp int64 `gorm:"column:timestamp;not null;index;uniqueIndex:idx_activities_identity_channel_ts,priority:3"`
	// WordCount is the message word count
	WordCount int `gorm:"column:word_count;not null"`
	// CharCount is the message character count
	CharCount int `gorm:"column:char_count;not null"`
}

// TableName specifies the table name for the Activity model
func (Activity) TableName() string {
	return "activities"
}
