package schema

import (
	"time"

	"github.com/google/uuid"
)

// TransactionKind classifies a marketplace transaction row
type TransactionKind string

const (
	TransactionKindMint           TransactionKind = "mint"
	TransactionKindSale           TransactionKind = "sale"
	TransactionKindTransfer       TransactionKind = "transfer"
	TransactionKindOffer          TransactionKind = "offer"
	TransactionKindOfferAccepted  TransactionKind = "offer_accepted"
	TransactionKindOfferCancelled TransactionKind = "offer_cancelled"
	TransactionKindListing        TransactionKind = "listing"
)

// Transaction represents the append-only transactions table.
// (chain_tx_hash, log_index, kind) is unique when present so the workflow path and the
// event path never insert the same chain effect twice.
type Transaction struct {
	ID uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	// Seq is assigned by the database and orders rows by insertion
	Seq             int64           `gorm:"column:seq;->"`
	AssetID         *uuid.UUID      `gorm:"column:asset_id;type:uuid;index"`
	FromAddress     string          `gorm:"column:from_address;type:text;not null"`
	ToAddress       string          `gorm:"column:to_address;type:text;not null"`
	Kind            TransactionKind `gorm:"column:kind;type:text;not null"`
	PriceMinorUnits *string         `gorm:"column:price_minor_units;type:numeric(78,0)"`
	ChainTxHash     *string         `gorm:"column:chain_tx_hash;type:text"`
	LogIndex        *int64          `gorm:"column:log_index"`
	CreatedAt       time.Time       `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}
