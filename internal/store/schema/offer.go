package schema

import (
	"time"

	"github.com/google/uuid"
)

// Offer represents the offers table. ChainOfferID is the id emitted by OfferMade.
type Offer struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ChainOfferID    string    `gorm:"column:chain_offer_id;type:text;not null;uniqueIndex"`
	AssetID         uuid.UUID `gorm:"column:asset_id;type:uuid;not null;index"`
	OffererAddress  string    `gorm:"column:offerer_address;type:text;not null"`
	PriceMinorUnits string    `gorm:"column:price_minor_units;type:numeric(78,0);not null"`
	Active          bool      `gorm:"column:active;not null;default:true"`
	CreatedAt       time.Time `gorm:"column:created_at;not null;default:now()"`

	Asset *Asset `gorm:"foreignKey:AssetID"`
}

// TableName specifies the table name for the Offer model
func (Offer) TableName() string {
	return "offers"
}
