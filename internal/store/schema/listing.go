package schema

import (
	"time"

	"github.com/google/uuid"
)

// Listing represents the listings table. ChainListingID is the id emitted by the
// marketplace's Listed event, not the token id.
type Listing struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ChainListingID string    `gorm:"column:chain_listing_id;type:text;not null;uniqueIndex"`
	AssetID        uuid.UUID `gorm:"column:asset_id;type:uuid;not null;index"`
	SellerAddress  string    `gorm:"column:seller_address;type:text;not null"`
	// PriceMinorUnits is the price in wei
	PriceMinorUnits string    `gorm:"column:price_minor_units;type:numeric(78,0);not null"`
	Active          bool      `gorm:"column:active;not null;default:true"`
	CreatedAt       time.Time `gorm:"column:created_at;not null;default:now()"`

	Asset *Asset `gorm:"foreignKey:AssetID"`
}

// TableName specifies the table name for the Listing model
func (Listing) TableName() string {
	return "listings"
}
