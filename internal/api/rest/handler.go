package rest

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/feral-file/ff-market/internal/api/shared/constants"
	"github.com/feral-file/ff-market/internal/api/shared/dto"
	"github.com/feral-file/ff-market/internal/api/shared/executor"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/marketplace"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)

	// ListAssets lists assets with their market state
	// GET /api/v1/assets?owner=<address>&search=<text>&min_price=<human>&max_price=<human>&listed=<bool>&has_offers=<bool>&sort=newest|oldest|price_asc|price_desc&limit=<limit>&offset=<offset>
	ListAssets(c *gin.Context)

	// GetAsset retrieves a single asset
	// GET /api/v1/assets/:id
	GetAsset(c *gin.Context)

	// ListAssetOffers lists offers on an asset
	// GET /api/v1/assets/:id/offers?active=<bool>
	ListAssetOffers(c *gin.Context)

	// ListAssetTransactions lists the history of an asset
	// GET /api/v1/assets/:id/transactions?kind=<kind>&limit=<limit>&offset=<offset>
	ListAssetTransactions(c *gin.Context)

	// ListListings lists active listings
	// GET /api/v1/listings?seller=<address>&limit=<limit>&offset=<offset>
	ListListings(c *gin.Context)

	// ListOffers lists offers received by an owner or made by an offerer
	// GET /api/v1/offers?owner=<address>&offerer=<address>&active=<bool>&limit=<limit>&offset=<offset>
	ListOffers(c *gin.Context)

	// ListCollections lists per-owner collection aggregates
	// GET /api/v1/collections?search=<text>&limit=<limit>&offset=<offset>
	ListCollections(c *gin.Context)

	// ListTransactions lists transactions
	// GET /api/v1/transactions?asset_id=<id>&address=<address>&kind=<kind>&limit=<limit>&offset=<offset>
	ListTransactions(c *gin.Context)

	// GetStats returns marketplace aggregates
	// GET /api/v1/stats
	GetStats(c *gin.Context)

	// GetTrending ranks assets by recent activity
	// GET /api/v1/trending?limit=<limit>
	GetTrending(c *gin.Context)

	// ListFavorites lists a user's favorite assets
	// GET /api/v1/favorites/:address
	ListFavorites(c *gin.Context)

	// AddFavorite adds a favorite
	// POST /api/v1/favorites
	AddFavorite(c *gin.Context)

	// RemoveFavorite removes a favorite
	// DELETE /api/v1/favorites
	RemoveFavorite(c *gin.Context)

	// GetSettings returns the marketplace fee settings
	// GET /api/v1/settings
	GetSettings(c *gin.Context)

	// UpdateFeeSettings updates the fee settings (admin only)
	// PUT /api/v1/settings/fee
	UpdateFeeSettings(c *gin.Context)

	// GetSession returns the wallet session
	// GET /api/v1/session
	GetSession(c *gin.Context)

	// ConnectSession connects a wallet
	// POST /api/v1/session/connect
	ConnectSession(c *gin.Context)

	// DisconnectSession clears the wallet session
	// POST /api/v1/session/disconnect
	DisconnectSession(c *gin.Context)

	// MintAsset uploads media and mints an asset (multipart: name, description, media)
	// POST /api/v1/assets/mint
	MintAsset(c *gin.Context)

	// ListAsset lists an asset for sale
	// POST /api/v1/assets/:id/list
	ListAsset(c *gin.Context)

	// BuyListing buys a listed asset
	// POST /api/v1/listings/:id/buy
	BuyListing(c *gin.Context)

	// MakeOffer makes an offer on an asset
	// POST /api/v1/assets/:id/offers
	MakeOffer(c *gin.Context)

	// AcceptOffer accepts an offer
	// POST /api/v1/offers/:id/accept
	AcceptOffer(c *gin.Context)

	// CancelOffer cancels an offer
	// POST /api/v1/offers/:id/cancel
	CancelOffer(c *gin.Context)

	// TransferAsset transfers an asset
	// POST /api/v1/assets/:id/transfer
	TransferAsset(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor     executor.Executor
	maxMediaSize int64
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor, maxMediaSize int64) Handler {
	return &handler{
		executor:     exec,
		maxMediaSize: maxMediaSize,
	}
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ff-market-api",
	})
}

func (h *handler) ListAssets(c *gin.Context) {
	query, err := ParseListAssetsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.ListAssets(c.Request.Context(), *query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetAsset(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	asset, err := h.executor.GetAsset(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if asset == nil {
		respondNotFound(c, "Asset not found")
		return
	}

	c.JSON(http.StatusOK, asset)
}

func (h *handler) ListAssetOffers(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var params OffersQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.ListAssetOffers(c.Request.Context(), id, params.ActiveOnly)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) ListAssetTransactions(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	h.listTransactions(c, &id)
}

func (h *handler) ListTransactions(c *gin.Context) {
	h.listTransactions(c, nil)
}

func (h *handler) listTransactions(c *gin.Context, assetID *uuid.UUID) {
	filter, err := ParseListTransactionsQuery(c, assetID)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.ListTransactions(c.Request.Context(), *filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) ListListings(c *gin.Context) {
	filter, err := ParseListListingsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.ListListings(c.Request.Context(), *filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) ListOffers(c *gin.Context) {
	filter, err := ParseListOffersQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.ListOffers(c.Request.Context(), *filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) ListCollections(c *gin.Context) {
	filter, err := ParseListCollectionsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.ListCollections(c.Request.Context(), *filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetStats(c *gin.Context) {
	resp, err := h.executor.GetStats(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetTrending(c *gin.Context) {
	var params TrendingQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.GetTrending(c.Request.Context(), params.Limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"assets": resp})
}

func (h *handler) ListFavorites(c *gin.Context) {
	address := c.Param("address")
	if !domain.IsValidAddress(address) {
		respondValidationError(c, fmt.Sprintf("invalid address: %s", address))
		return
	}

	resp, err := h.executor.ListFavorites(c.Request.Context(), address)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) AddFavorite(c *gin.Context) {
	req, ok := bindFavorite(c)
	if !ok {
		return
	}

	if err := h.executor.AddFavorite(c.Request.Context(), req.UserAddress, uuid.MustParse(req.AssetID)); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) RemoveFavorite(c *gin.Context) {
	req, ok := bindFavorite(c)
	if !ok {
		return
	}

	if err := h.executor.RemoveFavorite(c.Request.Context(), req.UserAddress, uuid.MustParse(req.AssetID)); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) GetSettings(c *gin.Context) {
	resp, err := h.executor.GetSettings(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) UpdateFeeSettings(c *gin.Context) {
	var req dto.FeeSettingsRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(c, err)
		return
	}
	requestID, ok := idempotencyKey(c)
	if !ok {
		return
	}

	result, err := h.executor.UpdateFeeSettings(c.Request.Context(), marketplace.FeeSettingsInput{
		FeeBasisPoints: req.FeeBasisPoints,
		FeeRecipient:   req.FeeRecipient,
		RequestID:      requestID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.executor.GetSession())
}

func (h *handler) ConnectSession(c *gin.Context) {
	var req dto.ConnectSessionRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(c, err)
		return
	}

	resp, err := h.executor.ConnectSession(c.Request.Context(), req.WalletKind)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) DisconnectSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.executor.DisconnectSession())
}

func (h *handler) MintAsset(c *gin.Context) {
	var req dto.MintRequest
	if err := c.ShouldBind(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(c, err)
		return
	}
	requestID, ok := idempotencyKey(c)
	if !ok {
		return
	}

	content, ok := h.readMedia(c)
	if !ok {
		return
	}

	result, err := h.executor.Mint(c.Request.Context(), marketplace.MintInput{
		Name:        req.Name,
		Description: req.Description,
		Media:       content,
		RequestID:   requestID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *handler) ListAsset(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	req, ok := bindPrice(c)
	if !ok {
		return
	}
	requestID, ok := idempotencyKey(c)
	if !ok {
		return
	}

	result, err := h.executor.List(c.Request.Context(), marketplace.ListInput{
		AssetID:   id,
		Price:     req.Price,
		RequestID: requestID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *handler) BuyListing(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	requestID, ok := idempotencyKey(c)
	if !ok {
		return
	}

	result, err := h.executor.Buy(c.Request.Context(), marketplace.BuyInput{ListingID: id, RequestID: requestID})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) MakeOffer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	req, ok := bindPrice(c)
	if !ok {
		return
	}
	requestID, ok := idempotencyKey(c)
	if !ok {
		return
	}

	result, err := h.executor.MakeOffer(c.Request.Context(), marketplace.MakeOfferInput{
		AssetID:   id,
		Price:     req.Price,
		RequestID: requestID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *handler) AcceptOffer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	requestID, ok := idempotencyKey(c)
	if !ok {
		return
	}

	result, err := h.executor.AcceptOffer(c.Request.Context(), marketplace.AcceptOfferInput{OfferID: id, RequestID: requestID})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) CancelOffer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	requestID, ok := idempotencyKey(c)
	if !ok {
		return
	}

	result, err := h.executor.CancelOffer(c.Request.Context(), marketplace.CancelOfferInput{OfferID: id, RequestID: requestID})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) TransferAsset(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.TransferRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondWithError(c, err)
		return
	}
	requestID, ok := idempotencyKey(c)
	if !ok {
		return
	}

	result, err := h.executor.Transfer(c.Request.Context(), marketplace.TransferInput{
		AssetID:   id,
		To:        req.To,
		RequestID: requestID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// readMedia reads the "media" form file, rejecting files above the configured size
func (h *handler) readMedia(c *gin.Context) ([]byte, bool) {
	header, err := c.FormFile("media")
	if err != nil {
		respondValidationError(c, "media file is required")
		return nil, false
	}
	if h.maxMediaSize > 0 && header.Size > h.maxMediaSize {
		respondValidationError(c, fmt.Sprintf("media must be at most %d bytes", h.maxMediaSize))
		return nil, false
	}

	f, err := header.Open()
	if err != nil {
		respondBadRequest(c, "Failed to open media file", err.Error())
		return nil, false
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		respondBadRequest(c, "Failed to read media file", err.Error())
		return nil, false
	}
	return content, true
}

// parseIDParam parses the :id path parameter as a UUID
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		respondBadRequest(c, "Invalid id", raw)
		return uuid.Nil, false
	}
	return id, true
}

// idempotencyKey reads the optional Idempotency-Key header
func idempotencyKey(c *gin.Context) (string, bool) {
	key := c.GetHeader(constants.IDEMPOTENCY_KEY_HEADER)
	if len(key) > constants.MAX_IDEMPOTENCY_KEY_LEN {
		respondValidationError(c, fmt.Sprintf("%s must be at most %d characters", constants.IDEMPOTENCY_KEY_HEADER, constants.MAX_IDEMPOTENCY_KEY_LEN))
		return "", false
	}
	return key, true
}

func bindJSON(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return false
	}
	return true
}

func bindPrice(c *gin.Context) (*dto.PriceRequest, bool) {
	var req dto.PriceRequest
	if !bindJSON(c, &req) {
		return nil, false
	}
	if err := req.Validate(); err != nil {
		respondWithError(c, err)
		return nil, false
	}
	return &req, true
}

func bindFavorite(c *gin.Context) (*dto.FavoriteRequest, bool) {
	var req dto.FavoriteRequest
	if !bindJSON(c, &req) {
		return nil, false
	}
	if err := req.Validate(); err != nil {
		respondWithError(c, err)
		return nil, false
	}
	return &req, true
}
