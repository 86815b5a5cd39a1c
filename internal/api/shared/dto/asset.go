package dto

import (
	"time"

	"github.com/feral-file/ff-market/internal/price"
	"github.com/feral-file/ff-market/internal/store"
	"github.com/feral-file/ff-market/internal/store/schema"
)

// AssetResponse represents an asset with its market state
type AssetResponse struct {
	ID               string    `json:"id"`
	ChainTokenID     string    `json:"chain_token_id"`
	ContractAddress  string    `json:"contract_address"`
	OwnerAddress     string    `json:"owner_address"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	MediaURI         string    `json:"media_uri"`
	MetadataURI      string    `json:"metadata_uri"`
	CreatedAt        time.Time `json:"created_at"`
	ListingID        *string   `json:"listing_id,omitempty"`
	ChainListingID   *string   `json:"chain_listing_id,omitempty"`
	PriceWei         *string   `json:"price_wei,omitempty"`
	Price            *string   `json:"price,omitempty"`
	ActiveOfferCount int64     `json:"active_offer_count"`
}

// ListingResponse represents a listing
type ListingResponse struct {
	ID             string    `json:"id"`
	ChainListingID string    `json:"chain_listing_id"`
	AssetID        string    `json:"asset_id"`
	SellerAddress  string    `json:"seller_address"`
	PriceWei       string    `json:"price_wei"`
	Price          string    `json:"price"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`

	Asset *AssetResponse `json:"asset,omitempty"`
}

// OfferResponse represents an offer
type OfferResponse struct {
	ID             string    `json:"id"`
	ChainOfferID   string    `json:"chain_offer_id"`
	AssetID        string    `json:"asset_id"`
	OffererAddress string    `json:"offerer_address"`
	PriceWei       string    `json:"price_wei"`
	Price          string    `json:"price"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`

	Asset *AssetResponse `json:"asset,omitempty"`
}

// TrendingAssetResponse is a row of the trending ranking
type TrendingAssetResponse struct {
	AssetResponse
	OfferCount       int64 `json:"offer_count"`
	TransactionCount int64 `json:"transaction_count"`
	Score            int64 `json:"score"`
}

// HumanPrice renders a wei amount in HELIOS. Unparseable values render as empty.
func HumanPrice(wei string) string {
	human, err := price.ToHuman(wei)
	if err != nil {
		return ""
	}
	return human
}

func humanPricePtr(wei *string) *string {
	if wei == nil {
		return nil
	}
	human := HumanPrice(*wei)
	return &human
}

// MapAsset maps a bare asset
func MapAsset(a schema.Asset) AssetResponse {
	return AssetResponse{
		ID:              a.ID.String(),
		ChainTokenID:    a.ChainTokenID,
		ContractAddress: a.ContractAddress,
		OwnerAddress:    a.OwnerAddress,
		Name:            a.Name,
		Description:     a.Description,
		MediaURI:        a.MediaURI,
		MetadataURI:     a.MetadataURI,
		CreatedAt:       a.CreatedAt,
	}
}

// MapAssetWithMarket maps an asset joined with its active listing and offer count
func MapAssetWithMarket(a store.AssetWithMarket) AssetResponse {
	resp := MapAsset(a.Asset)
	if a.ListingID != nil {
		id := a.ListingID.String()
		resp.ListingID = &id
	}
	resp.ChainListingID = a.ChainListingID
	resp.PriceWei = a.ListingPrice
	resp.Price = humanPricePtr(a.ListingPrice)
	resp.ActiveOfferCount = a.ActiveOfferCount
	return resp
}

// MapAssets maps a page of assets
func MapAssets(rows []store.AssetWithMarket) []AssetResponse {
	out := make([]AssetResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, MapAssetWithMarket(r))
	}
	return out
}

// MapListing maps a listing and its preloaded asset when present
func MapListing(l schema.Listing) ListingResponse {
	resp := ListingResponse{
		ID:             l.ID.String(),
		ChainListingID: l.ChainListingID,
		AssetID:        l.AssetID.String(),
		SellerAddress:  l.SellerAddress,
		PriceWei:       l.PriceMinorUnits,
		Price:          HumanPrice(l.PriceMinorUnits),
		Active:         l.Active,
		CreatedAt:      l.CreatedAt,
	}
	if l.Asset != nil {
		asset := MapAsset(*l.Asset)
		resp.Asset = &asset
	}
	return resp
}

// MapOffer maps an offer and its preloaded asset when present
func MapOffer(o schema.Offer) OfferResponse {
	resp := OfferResponse{
		ID:             o.ID.String(),
		ChainOfferID:   o.ChainOfferID,
		AssetID:        o.AssetID.String(),
		OffererAddress: o.OffererAddress,
		PriceWei:       o.PriceMinorUnits,
		Price:          HumanPrice(o.PriceMinorUnits),
		Active:         o.Active,
		CreatedAt:      o.CreatedAt,
	}
	if o.Asset != nil {
		asset := MapAsset(*o.Asset)
		resp.Asset = &asset
	}
	return resp
}

// MapTrending maps the trending ranking
func MapTrending(rows []store.TrendingAsset) []TrendingAssetResponse {
	out := make([]TrendingAssetResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, TrendingAssetResponse{
			AssetResponse:    MapAsset(r.Asset),
			OfferCount:       r.OfferCount,
			TransactionCount: r.TransactionCount,
			Score:            r.Score,
		})
	}
	return out
}
