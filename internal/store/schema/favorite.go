package schema

import (
	"time"

	"github.com/google/uuid"
)

// Favorite represents the favorites table
type Favorite struct {
	UserAddress string    `gorm:"column:user_address;type:text;primaryKey"`
	AssetID     uuid.UUID `gorm:"column:asset_id;type:uuid;primaryKey"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Favorite model
func (Favorite) TableName() string {
	return "favorites"
}
