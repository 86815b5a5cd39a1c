package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/feral-file/ff-market/internal/api/shared/constants"
	"github.com/feral-file/ff-market/internal/api/shared/executor"
	"github.com/feral-file/ff-market/internal/api/shared/types"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/price"
	"github.com/feral-file/ff-market/internal/store"
	"github.com/feral-file/ff-market/internal/store/schema"
)

// PageQueryParams holds pagination parameters
type PageQueryParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

func (p *PageQueryParams) normalize() error {
	if p.Limit < 0 || p.Offset < 0 {
		return fmt.Errorf("limit and offset must not be negative")
	}
	if p.Limit == 0 {
		p.Limit = constants.DEFAULT_ASSETS_LIMIT
	}
	if p.Limit > constants.MAX_PAGE_SIZE {
		p.Limit = constants.MAX_PAGE_SIZE
	}
	return nil
}

// ListAssetsQueryParams holds query parameters for GET /assets.
// Prices are in human units.
type ListAssetsQueryParams struct {
	PageQueryParams
	Owner     string          `form:"owner"`
	Search    string          `form:"search"`
	MinPrice  string          `form:"min_price"`
	MaxPrice  string          `form:"max_price"`
	Listed    bool            `form:"listed"`
	HasOffers bool            `form:"has_offers"`
	Sort      types.AssetSort `form:"sort,default=newest"`
}

// ParseListAssetsQuery parses query parameters for GET /assets
func ParseListAssetsQuery(c *gin.Context) (*executor.AssetQuery, error) {
	var params ListAssetsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if err := params.normalize(); err != nil {
		return nil, err
	}
	if !params.Sort.Valid() {
		return nil, fmt.Errorf("invalid sort: %s", params.Sort)
	}

	query := &executor.AssetQuery{
		ListedOnly: params.Listed,
		HasOffers:  params.HasOffers,
		Sort:       types.ToStoreAssetSort(params.Sort),
		Limit:      params.Limit,
		Offset:     uint64(params.Offset), //nolint:gosec,G115
	}

	if params.Owner != "" {
		if !domain.IsValidAddress(params.Owner) {
			return nil, fmt.Errorf("invalid owner: %s", params.Owner)
		}
		owner := domain.NormalizeAddress(params.Owner)
		query.Owner = &owner
	}
	if params.Search != "" {
		query.Search = &params.Search
	}

	var err error
	if query.MinPrice, err = parsePriceBound("min_price", params.MinPrice); err != nil {
		return nil, err
	}
	if query.MaxPrice, err = parsePriceBound("max_price", params.MaxPrice); err != nil {
		return nil, err
	}

	return query, nil
}

// parsePriceBound converts a human price filter into minor units
func parsePriceBound(name, human string) (*string, error) {
	if human == "" {
		return nil, nil
	}
	v, err := price.ParseHuman(human)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	minor := v.String()
	return &minor, nil
}

// ListTransactionsQueryParams holds query parameters for GET /transactions
type ListTransactionsQueryParams struct {
	PageQueryParams
	AssetID string   `form:"asset_id"`
	Address string   `form:"address"`
	Kinds   []string `form:"kind"`
}

// ParseListTransactionsQuery parses query parameters for GET /transactions.
// assetID, when set, overrides the asset_id query parameter.
func ParseListTransactionsQuery(c *gin.Context, assetID *uuid.UUID) (*store.TransactionFilter, error) {
	var params ListTransactionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if err := params.normalize(); err != nil {
		return nil, err
	}

	filter := &store.TransactionFilter{
		AssetID: assetID,
		Limit:   params.Limit,
		Offset:  uint64(params.Offset), //nolint:gosec,G115
	}

	if filter.AssetID == nil && params.AssetID != "" {
		id, err := uuid.Parse(params.AssetID)
		if err != nil {
			return nil, fmt.Errorf("invalid asset_id: %s", params.AssetID)
		}
		filter.AssetID = &id
	}
	if params.Address != "" {
		if !domain.IsValidAddress(params.Address) {
			return nil, fmt.Errorf("invalid address: %s", params.Address)
		}
		address := domain.NormalizeAddress(params.Address)
		filter.Address = &address
	}
	for _, kind := range params.Kinds {
		if !types.IsValidTransactionKind(kind) {
			return nil, fmt.Errorf("invalid kind: %s", kind)
		}
		filter.Kinds = append(filter.Kinds, schema.TransactionKind(kind))
	}

	return filter, nil
}

// ListListingsQueryParams holds query parameters for GET /listings
type ListListingsQueryParams struct {
	PageQueryParams
	Seller string `form:"seller"`
}

// ParseListListingsQuery parses query parameters for GET /listings
func ParseListListingsQuery(c *gin.Context) (*store.ListingFilter, error) {
	var params ListListingsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if err := params.normalize(); err != nil {
		return nil, err
	}

	filter := &store.ListingFilter{
		Limit:  params.Limit,
		Offset: uint64(params.Offset), //nolint:gosec,G115
	}

	var err error
	if filter.Seller, err = parseAddressParam("seller", params.Seller); err != nil {
		return nil, err
	}

	return filter, nil
}

// ListOffersQueryParams holds query parameters for GET /offers
type ListOffersQueryParams struct {
	PageQueryParams
	Owner      string `form:"owner"`
	Offerer    string `form:"offerer"`
	ActiveOnly bool   `form:"active,default=true"`
}

// ParseListOffersQuery parses query parameters for GET /offers.
// One of owner (offers received) or offerer (offers made) is required.
func ParseListOffersQuery(c *gin.Context) (*store.OfferFilter, error) {
	var params ListOffersQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if err := params.normalize(); err != nil {
		return nil, err
	}
	if params.Owner == "" && params.Offerer == "" {
		return nil, fmt.Errorf("owner or offerer is required")
	}

	filter := &store.OfferFilter{
		ActiveOnly: params.ActiveOnly,
		Limit:      params.Limit,
		Offset:     uint64(params.Offset), //nolint:gosec,G115
	}

	var err error
	if filter.Owner, err = parseAddressParam("owner", params.Owner); err != nil {
		return nil, err
	}
	if filter.Offerer, err = parseAddressParam("offerer", params.Offerer); err != nil {
		return nil, err
	}

	return filter, nil
}

// ListCollectionsQueryParams holds query parameters for GET /collections
type ListCollectionsQueryParams struct {
	PageQueryParams
	Search string `form:"search"`
}

// ParseListCollectionsQuery parses query parameters for GET /collections
func ParseListCollectionsQuery(c *gin.Context) (*store.CollectionFilter, error) {
	var params ListCollectionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if err := params.normalize(); err != nil {
		return nil, err
	}

	filter := &store.CollectionFilter{
		Limit:  params.Limit,
		Offset: uint64(params.Offset), //nolint:gosec,G115
	}
	if params.Search != "" {
		filter.Search = &params.Search
	}
	return filter, nil
}

// parseAddressParam validates and normalizes an optional address parameter
func parseAddressParam(name, value string) (*string, error) {
	if value == "" {
		return nil, nil
	}
	if !domain.IsValidAddress(value) {
		return nil, fmt.Errorf("invalid %s: %s", name, value)
	}
	address := domain.NormalizeAddress(value)
	return &address, nil
}

// OffersQueryParams holds query parameters for GET /assets/:id/offers
type OffersQueryParams struct {
	ActiveOnly bool `form:"active,default=true"`
}

// TrendingQueryParams holds query parameters for GET /trending
type TrendingQueryParams struct {
	Limit int `form:"limit,default=10"`
}
