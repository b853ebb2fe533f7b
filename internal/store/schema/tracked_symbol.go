package schema

import "time"

// TrackedSymbol represents the tracked_symbols table - the set of symbols
// the quote poller observes. Insertion is idempotent.
type TrackedSymbol struct {
	// Symbol is the quote-source symbol and the primary key
	Symbol string `gorm:"column:symbol;primaryKey;type:text"`
	// CreatedAt is the timestamp when tracking started
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName specifies the table name for the TrackedSymbol model
func (TrackedSymbol) TableName() string {
	return "tracked_symbols"
}
