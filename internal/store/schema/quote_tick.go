package schema

// QuoteTick represents the quote_ticks table - append-only price
// observations persisted by the quote poller for downstream trend queries.
type QuoteTick struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Symbol is the quote-source symbol
	Symbol string `gorm:"column:symbol;not null;index:idx_quote_ticks_symbol_ts,priority:1;type:text"`
	// Price is the observed price
	Price float64 `gorm:"column:price;not null"`
	// DayLow is the observed day low, or the unknown sentinel
	DayLow float64 `gorm:"column:day_low;not null"`
	// DayHigh is the observed day high, or the unknown sentinel
	DayHigh float64 `gorm:"column:day_high;not null"`
	// Timestamp is the observation unix timestamp
	Timestamp int64 `gorm:"column:timestamp;not null;index:idx_quote_ticks_symbol_ts,priority:2"`
}

// TableName specifies the table name for the QuoteTick model
func (QuoteTick) TableName() string {
	return "quote_ticks"
}
