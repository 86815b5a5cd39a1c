package schema

import (
	"time"

	"gorm.io/datatypes"
)

// IntentStatus is the lifecycle state of an outbox intent
type IntentStatus string

const (
	IntentStatusPending    IntentStatus = "pending"
	IntentStatusSubmitted  IntentStatus = "submitted"
	IntentStatusConfirmed  IntentStatus = "confirmed"
	IntentStatusFailed     IntentStatus = "failed"
	IntentStatusReconciled IntentStatus = "reconciled"
)

// IntentKind names the workflow that recorded the intent
type IntentKind string

const (
	IntentKindMint        IntentKind = "mint"
	IntentKindList        IntentKind = "list"
	IntentKindBuy         IntentKind = "buy"
	IntentKindMakeOffer   IntentKind = "make_offer"
	IntentKindAcceptOffer IntentKind = "accept_offer"
	IntentKindCancelOffer IntentKind = "cancel_offer"
	IntentKindTransfer    IntentKind = "transfer"
	IntentKindUpdateFee   IntentKind = "update_fee"
)

// Intent represents the intents outbox table. A row is appended before any chain step
// and later marked reconciled once the chain event has been applied to the mirror.
type Intent struct {
	// ID is a ULID so rows sort by creation time
	ID             string         `gorm:"column:id;type:text;primaryKey"`
	Kind           IntentKind     `gorm:"column:kind;type:text;not null"`
	IdempotencyKey string         `gorm:"column:idempotency_key;type:text;not null;uniqueIndex"`
	ActorAddress   string         `gorm:"column:actor_address;type:text;not null"`
	Payload        datatypes.JSON `gorm:"column:payload;type:jsonb;not null"`
	Status         IntentStatus   `gorm:"column:status;type:text;not null;default:'pending'"`
	ChainTxHash    *string        `gorm:"column:chain_tx_hash;type:text;index"`
	Error          *string        `gorm:"column:error;type:text"`
	CreatedAt      time.Time      `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the Intent model
func (Intent) TableName() string {
	return "intents"
}
