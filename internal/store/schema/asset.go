package schema

import (
	"time"

	"github.com/google/uuid"
)

// Asset represents the assets table - one row per collection token
type Asset struct {
	// ID is the internal primary key
	ID uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	// ChainTokenID is the token id assigned by the collection contract
	ChainTokenID string `gorm:"column:chain_token_id;type:text;not null;uniqueIndex:idx_assets_contract_token,priority:2"`
	// ContractAddress is the checksummed collection address
	ContractAddress string `gorm:"column:contract_address;type:text;not null;uniqueIndex:idx_assets_contract_token,priority:1"`
	// OwnerAddress is the last owner observed by the mirror
	OwnerAddress string `gorm:"column:owner_address;type:text;not null;index"`
	Name         string `gorm:"column:name;type:text;not null;default:''"`
	Description  string `gorm:"column:description;type:text;not null;default:''"`
	// MediaURI is the public URL of the uploaded media
	MediaURI string `gorm:"column:media_uri;type:text;not null;default:''"`
	// MetadataURI is the URI passed to mintNFT
	MetadataURI string    `gorm:"column:metadata_uri;type:text;not null;default:''"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Asset model
func (Asset) TableName() string {
	return "assets"
}
