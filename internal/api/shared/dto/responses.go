package dto

import (
	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/store"
	"github.com/feral-file/ff-market/internal/wallet"
)

// AssetListResponse represents a page of assets
type AssetListResponse struct {
	Assets []AssetResponse `json:"assets"`
	Total  uint64          `json:"total"`
	Limit  int             `json:"limit"`
	Offset uint64          `json:"offset"`
}

// ListingListResponse represents a page of active listings
type ListingListResponse struct {
	Listings []ListingResponse `json:"listings"`
	Limit    int               `json:"limit"`
	Offset   uint64            `json:"offset"`
}

// TransactionListResponse represents a page of transactions
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        uint64                `json:"total"`
	Limit        int                   `json:"limit"`
	Offset       uint64                `json:"offset"`
}

// OfferListResponse represents a list of offers. Limit and Offset are set for paged reads only.
type OfferListResponse struct {
	Offers []OfferResponse `json:"offers"`
	Limit  int             `json:"limit,omitempty"`
	Offset uint64          `json:"offset,omitempty"`
}

// CollectionResponse represents the holdings of one owner
type CollectionResponse struct {
	OwnerAddress   string  `json:"owner_address"`
	NFTCount       int64   `json:"nft_count"`
	ListedCount    int64   `json:"listed_count"`
	ListedValueWei string  `json:"listed_value_wei"`
	ListedValue    string  `json:"listed_value"`
	FloorPriceWei  *string `json:"floor_price_wei,omitempty"`
	FloorPrice     *string `json:"floor_price,omitempty"`
}

// CollectionListResponse represents a page of owner collections
type CollectionListResponse struct {
	Collections []CollectionResponse `json:"collections"`
	Limit       int                  `json:"limit"`
	Offset      uint64               `json:"offset"`
}

// MapCollection maps the aggregates of one owner
func MapCollection(c store.CollectionSummary) CollectionResponse {
	value := c.ListedValueMinor
	if value == "" {
		value = "0"
	}
	return CollectionResponse{
		OwnerAddress:   c.OwnerAddress,
		NFTCount:       c.NFTCount,
		ListedCount:    c.ListedCount,
		ListedValueWei: value,
		ListedValue:    HumanPrice(value),
		FloorPriceWei:  c.FloorMinor,
		FloorPrice:     humanPricePtr(c.FloorMinor),
	}
}

// FavoriteListResponse represents a user's favorite assets
type FavoriteListResponse struct {
	UserAddress string          `json:"user_address"`
	Assets      []AssetResponse `json:"assets"`
}

// StatsResponse represents the marketplace aggregates. Volume and floor are shown in both units.
type StatsResponse struct {
	TotalAssets    int64   `json:"total_assets"`
	ActiveListings int64   `json:"active_listings"`
	ActiveOffers   int64   `json:"active_offers"`
	TotalSales     int64   `json:"total_sales"`
	UniqueOwners   int64   `json:"unique_owners"`
	VolumeWei      string  `json:"volume_wei"`
	Volume         string  `json:"volume"`
	FloorPriceWei  *string `json:"floor_price_wei,omitempty"`
	FloorPrice     *string `json:"floor_price,omitempty"`
	Symbol         string  `json:"symbol"`
}

// MapStats maps the mirror aggregates
func MapStats(s store.MarketplaceStats, symbol string) StatsResponse {
	volume := s.VolumeMinor
	if volume == "" {
		volume = "0"
	}
	return StatsResponse{
		TotalAssets:    s.TotalAssets,
		ActiveListings: s.ActiveListings,
		ActiveOffers:   s.ActiveOffers,
		TotalSales:     s.TotalSales,
		UniqueOwners:   s.UniqueOwners,
		VolumeWei:      volume,
		Volume:         HumanPrice(volume),
		FloorPriceWei:  s.FloorMinor,
		FloorPrice:     humanPricePtr(s.FloorMinor),
		Symbol:         symbol,
	}
}

// SessionResponse represents the wallet session
type SessionResponse struct {
	wallet.SessionState
	Network domain.Network `json:"network"`
}

// SettingsResponse represents the marketplace fee settings
type SettingsResponse struct {
	domain.MarketplaceSettings
	// FeePercent is the fee as a percentage, e.g. "2.5"
	FeePercent string `json:"fee_percent"`
}

// MapSettings maps the fee settings
func MapSettings(s domain.MarketplaceSettings) SettingsResponse {
	return SettingsResponse{
		MarketplaceSettings: s,
		FeePercent:          decimal.New(int64(s.FeeBasisPoints), -2).String(), //nolint:gosec,G115
	}
}
