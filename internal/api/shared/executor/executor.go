package executor

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/feral-file/ff-market/internal/api/shared/constants"
	"github.com/feral-file/ff-market/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-market/internal/api/shared/errors"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/marketplace"
	"github.com/feral-file/ff-market/internal/store"
	"github.com/feral-file/ff-market/internal/wallet"
)

// SessionManager connects and disconnects the wallet session
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor,SessionManager=MockSessionManager
type SessionManager interface {
	Connect(ctx context.Context, kind domain.WalletKind) (wallet.SessionState, error)
	Disconnect()
	Current() wallet.SessionState
}

// AssetQuery holds the asset listing filters
type AssetQuery struct {
	Owner      *string
	Search     *string
	MinPrice   *string
	MaxPrice   *string
	ListedOnly bool
	HasOffers  bool
	Sort       store.AssetSort
	Limit      int
	Offset     uint64
}

// Executor holds the API operations shared by every handler
type Executor interface {
	// ListAssets lists assets with their market state
	ListAssets(ctx context.Context, query AssetQuery) (*dto.AssetListResponse, error)
	// GetAsset retrieves one asset with its market state
	GetAsset(ctx context.Context, id uuid.UUID) (*dto.AssetResponse, error)
	// ListAssetOffers lists the offers of an asset, newest first
	ListAssetOffers(ctx context.Context, id uuid.UUID, activeOnly bool) (*dto.OfferListResponse, error)
	// ListListings lists active listings with their assets, optionally by seller
	ListListings(ctx context.Context, filter store.ListingFilter) (*dto.ListingListResponse, error)
	// ListOffers lists offers received by an owner or made by an offerer
	ListOffers(ctx context.Context, filter store.OfferFilter) (*dto.OfferListResponse, error)
	// ListCollections aggregates the assets of each owner
	ListCollections(ctx context.Context, filter store.CollectionFilter) (*dto.CollectionListResponse, error)
	// ListTransactions lists transactions, newest first
	ListTransactions(ctx context.Context, filter store.TransactionFilter) (*dto.TransactionListResponse, error)
	// GetStats aggregates the mirror
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
	// GetTrending ranks assets by recent activity
	GetTrending(ctx context.Context, limit int) ([]dto.TrendingAssetResponse, error)

	// ListFavorites lists a user's favorite assets
	ListFavorites(ctx context.Context, userAddress string) (*dto.FavoriteListResponse, error)
	// AddFavorite adds an existing asset to a user's favorites
	AddFavorite(ctx context.Context, userAddress string, assetID uuid.UUID) error
	// RemoveFavorite removes an asset from a user's favorites
	RemoveFavorite(ctx context.Context, userAddress string, assetID uuid.UUID) error

	// GetSession returns the wallet session
	GetSession() dto.SessionResponse
	// ConnectSession connects a wallet of the given kind
	ConnectSession(ctx context.Context, kind domain.WalletKind) (*dto.SessionResponse, error)
	// DisconnectSession clears the wallet session
	DisconnectSession() dto.SessionResponse

	// GetSettings reads the marketplace fee settings
	GetSettings(ctx context.Context) (*dto.SettingsResponse, error)
	// UpdateFeeSettings runs the admin fee workflow
	UpdateFeeSettings(ctx context.Context, input marketplace.FeeSettingsInput) (*marketplace.FeeSettingsResult, error)

	Mint(ctx context.Context, input marketplace.MintInput) (*marketplace.MintResult, error)
	List(ctx context.Context, input marketplace.ListInput) (*marketplace.ListResult, error)
	Buy(ctx context.Context, input marketplace.BuyInput) (*marketplace.BuyResult, error)
	MakeOffer(ctx context.Context, input marketplace.MakeOfferInput) (*marketplace.OfferResult, error)
	AcceptOffer(ctx context.Context, input marketplace.AcceptOfferInput) (*marketplace.Outcome, error)
	CancelOffer(ctx context.Context, input marketplace.CancelOfferInput) (*marketplace.CancelOfferResult, error)
	Transfer(ctx context.Context, input marketplace.TransferInput) (*marketplace.Outcome, error)
}

type executor struct {
	store   store.Store
	service marketplace.Service
	session SessionManager
	network domain.Network
}

// NewExecutor creates the shared executor
func NewExecutor(st store.Store, service marketplace.Service, session SessionManager, network domain.Network) Executor {
	return &executor{store: st, service: service, session: session, network: network}
}

func (e *executor) ListAssets(ctx context.Context, query AssetQuery) (*dto.AssetListResponse, error) {
	if query.Limit <= 0 {
		query.Limit = constants.DEFAULT_ASSETS_LIMIT
	}

	rows, total, err := e.store.ListAssets(ctx, store.AssetFilter{
		Owner:      query.Owner,
		Search:     query.Search,
		MinPrice:   query.MinPrice,
		MaxPrice:   query.MaxPrice,
		ListedOnly: query.ListedOnly,
		HasOffers:  query.HasOffers,
		Sort:       query.Sort,
		Limit:      query.Limit,
		Offset:     query.Offset,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to list assets", err.Error())
	}

	return &dto.AssetListResponse{
		Assets: dto.MapAssets(rows),
		Total:  total,
		Limit:  query.Limit,
		Offset: query.Offset,
	}, nil
}

func (e *executor) GetAsset(ctx context.Context, id uuid.UUID) (*dto.AssetResponse, error) {
	row, err := e.store.GetAssetWithMarket(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to get asset", err.Error())
	}
	if row == nil {
		return nil, nil
	}

	asset := dto.MapAssetWithMarket(*row)
	return &asset, nil
}

func (e *executor) ListAssetOffers(ctx context.Context, id uuid.UUID, activeOnly bool) (*dto.OfferListResponse, error) {
	if err := e.requireAsset(ctx, id); err != nil {
		return nil, err
	}

	offers, err := e.store.ListOffersByAsset(ctx, id, activeOnly)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to list offers", err.Error())
	}

	resp := &dto.OfferListResponse{Offers: make([]dto.OfferResponse, 0, len(offers))}
	for _, o := range offers {
		resp.Offers = append(resp.Offers, dto.MapOffer(o))
	}
	return resp, nil
}

func (e *executor) ListListings(ctx context.Context, filter store.ListingFilter) (*dto.ListingListResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = constants.DEFAULT_LISTINGS_LIMIT
	}
	if filter.Seller != nil {
		seller := domain.NormalizeAddress(*filter.Seller)
		filter.Seller = &seller
	}

	listings, err := e.store.ListListings(ctx, filter)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to list listings", err.Error())
	}

	resp := &dto.ListingListResponse{
		Listings: make([]dto.ListingResponse, 0, len(listings)),
		Limit:    filter.Limit,
		Offset:   filter.Offset,
	}
	for _, l := range listings {
		resp.Listings = append(resp.Listings, dto.MapListing(l))
	}
	return resp, nil
}

func (e *executor) ListOffers(ctx context.Context, filter store.OfferFilter) (*dto.OfferListResponse, error) {
	if filter.Owner == nil && filter.Offerer == nil {
		return nil, apierrors.NewValidationError("owner or offerer is required")
	}
	if filter.Limit <= 0 {
		filter.Limit = constants.DEFAULT_OFFERS_LIMIT
	}
	if filter.Owner != nil {
		owner := domain.NormalizeAddress(*filter.Owner)
		filter.Owner = &owner
	}
	if filter.Offerer != nil {
		offerer := domain.NormalizeAddress(*filter.Offerer)
		filter.Offerer = &offerer
	}

	offers, err := e.store.ListOffers(ctx, filter)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to list offers", err.Error())
	}

	resp := &dto.OfferListResponse{
		Offers: make([]dto.OfferResponse, 0, len(offers)),
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}
	for _, o := range offers {
		resp.Offers = append(resp.Offers, dto.MapOffer(o))
	}
	return resp, nil
}

func (e *executor) ListCollections(ctx context.Context, filter store.CollectionFilter) (*dto.CollectionListResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = constants.DEFAULT_COLLECTIONS_LIMIT
	}

	rows, err := e.store.ListCollections(ctx, filter)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to list collections", err.Error())
	}

	resp := &dto.CollectionListResponse{
		Collections: make([]dto.CollectionResponse, 0, len(rows)),
		Limit:       filter.Limit,
		Offset:      filter.Offset,
	}
	for _, r := range rows {
		resp.Collections = append(resp.Collections, dto.MapCollection(r))
	}
	return resp, nil
}

func (e *executor) ListTransactions(ctx context.Context, filter store.TransactionFilter) (*dto.TransactionListResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = constants.DEFAULT_TX_LIMIT
	}
	if filter.AssetID != nil {
		if err := e.requireAsset(ctx, *filter.AssetID); err != nil {
			return nil, err
		}
	}

	items, total, err := e.store.ListTransactions(ctx, filter)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to list transactions", err.Error())
	}

	return &dto.TransactionListResponse{
		Transactions: dto.MapTransactions(items),
		Total:        total,
		Limit:        filter.Limit,
		Offset:       filter.Offset,
	}, nil
}

func (e *executor) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	stats, err := e.store.GetStats(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to get stats", err.Error())
	}
	if stats == nil {
		stats = &store.MarketplaceStats{}
	}

	resp := dto.MapStats(*stats, e.network.NativeSymbol)
	return &resp, nil
}

func (e *executor) GetTrending(ctx context.Context, limit int) ([]dto.TrendingAssetResponse, error) {
	if limit <= 0 {
		limit = constants.DEFAULT_TRENDING_LIMIT
	}
	if limit > constants.MAX_TRENDING_LIMIT {
		limit = constants.MAX_TRENDING_LIMIT
	}

	rows, err := e.store.GetTrending(ctx, limit)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to get trending assets", err.Error())
	}
	return dto.MapTrending(rows), nil
}

func (e *executor) ListFavorites(ctx context.Context, userAddress string) (*dto.FavoriteListResponse, error) {
	userAddress = domain.NormalizeAddress(userAddress)

	assets, err := e.store.ListFavorites(ctx, userAddress)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to list favorites", err.Error())
	}

	resp := &dto.FavoriteListResponse{
		UserAddress: userAddress,
		Assets:      make([]dto.AssetResponse, 0, len(assets)),
	}
	for _, a := range assets {
		resp.Assets = append(resp.Assets, dto.MapAsset(a))
	}
	return resp, nil
}

func (e *executor) AddFavorite(ctx context.Context, userAddress string, assetID uuid.UUID) error {
	if err := e.requireAsset(ctx, assetID); err != nil {
		return err
	}
	if err := e.store.AddFavorite(ctx, domain.NormalizeAddress(userAddress), assetID); err != nil {
		return apierrors.NewDatabaseError("Failed to add favorite", err.Error())
	}
	return nil
}

func (e *executor) RemoveFavorite(ctx context.Context, userAddress string, assetID uuid.UUID) error {
	if err := e.store.RemoveFavorite(ctx, domain.NormalizeAddress(userAddress), assetID); err != nil {
		return apierrors.NewDatabaseError("Failed to remove favorite", err.Error())
	}
	return nil
}

func (e *executor) GetSession() dto.SessionResponse {
	return dto.SessionResponse{SessionState: e.session.Current(), Network: e.network}
}

func (e *executor) ConnectSession(ctx context.Context, kind domain.WalletKind) (*dto.SessionResponse, error) {
	state, err := e.session.Connect(ctx, kind)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{SessionState: state, Network: e.network}, nil
}

func (e *executor) DisconnectSession() dto.SessionResponse {
	e.session.Disconnect()
	return e.GetSession()
}

func (e *executor) GetSettings(ctx context.Context) (*dto.SettingsResponse, error) {
	settings, err := e.service.GetSettings(ctx)
	if err != nil {
		return nil, apierrors.NewChainError("Failed to read marketplace settings", err.Error())
	}
	resp := dto.MapSettings(*settings)
	return &resp, nil
}

func (e *executor) UpdateFeeSettings(ctx context.Context, input marketplace.FeeSettingsInput) (*marketplace.FeeSettingsResult, error) {
	return e.service.UpdateFeeSettings(ctx, input)
}

func (e *executor) Mint(ctx context.Context, input marketplace.MintInput) (*marketplace.MintResult, error) {
	return e.service.Mint(ctx, input)
}

func (e *executor) List(ctx context.Context, input marketplace.ListInput) (*marketplace.ListResult, error) {
	return e.service.List(ctx, input)
}

func (e *executor) Buy(ctx context.Context, input marketplace.BuyInput) (*marketplace.BuyResult, error) {
	return e.service.Buy(ctx, input)
}

func (e *executor) MakeOffer(ctx context.Context, input marketplace.MakeOfferInput) (*marketplace.OfferResult, error) {
	return e.service.MakeOffer(ctx, input)
}

func (e *executor) AcceptOffer(ctx context.Context, input marketplace.AcceptOfferInput) (*marketplace.Outcome, error) {
	return e.service.AcceptOffer(ctx, input)
}

func (e *executor) CancelOffer(ctx context.Context, input marketplace.CancelOfferInput) (*marketplace.CancelOfferResult, error) {
	return e.service.CancelOffer(ctx, input)
}

func (e *executor) Transfer(ctx context.Context, input marketplace.TransferInput) (*marketplace.Outcome, error) {
	return e.service.Transfer(ctx, input)
}

// requireAsset returns a not-found error when the asset does not exist
func (e *executor) requireAsset(ctx context.Context, id uuid.UUID) error {
	asset, err := e.store.GetAssetByID(ctx, id)
	if err != nil {
		return apierrors.NewDatabaseError("Failed to get asset", err.Error())
	}
	if asset == nil {
		return fmt.Errorf("%w: %s", domain.ErrAssetNotFound, id)
	}
	return nil
}
