package schema

import (
	"time"

	"gorm.io/datatypes"
)

// ChainEvent is the ledger of contract events applied to the mirror,
// keyed by the event's chain identity
type ChainEvent struct {
	Chain       string         `gorm:"column:chain;type:text;primaryKey"`
	TxHash      string         `gorm:"column:tx_hash;type:text;primaryKey"`
	LogIndex    int64          `gorm:"column:log_index;primaryKey"`
	BlockNumber uint64         `gorm:"column:block_number;not null"`
	EventName   string         `gorm:"column:event_name;type:text;not null"`
	Payload     datatypes.JSON `gorm:"column:payload;type:jsonb;not null"`
	AppliedAt   time.Time      `gorm:"column:applied_at;not null;default:now()"`
}

// TableName specifies the table name for the ChainEvent model
func (ChainEvent) TableName() string {
	return "chain_events"
}
