package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/feral-file/ff-market/internal/store/schema"
)

// =============================================================================
// Input Types
// =============================================================================

// CreateAssetInput represents the input for creating an asset
type CreateAssetInput struct {
	ChainTokenID    string
	ContractAddress string
	OwnerAddress    string
	Name            string
	Description     string
	MediaURI        string
	MetadataURI     string
}

// CreateListingInput represents the input for creating a listing
type CreateListingInput struct {
	ChainListingID  string
	AssetID         uuid.UUID
	SellerAddress   string
	PriceMinorUnits string
}

// CreateOfferInput represents the input for creating an offer
type CreateOfferInput struct {
	ChainOfferID    string
	AssetID         uuid.UUID
	OffererAddress  string
	PriceMinorUnits string
}

// CreateTransactionInput represents the input for appending a transaction row.
// ChainTxHash and LogIndex identify the chain effect; both nil means no chain reference.
type CreateTransactionInput struct {
	AssetID         *uuid.UUID
	FromAddress     string
	ToAddress       string
	Kind            schema.TransactionKind
	PriceMinorUnits *string
	ChainTxHash     *string
	LogIndex        *int64
}

// CreateIntentInput represents the input for appending an outbox intent
type CreateIntentInput struct {
	ID             string
	Kind           schema.IntentKind
	IdempotencyKey string
	ActorAddress   string
	Payload        []byte
}

// CreateChainEventInput identifies an applied contract event
type CreateChainEventInput struct {
	Chain       string
	TxHash      string
	LogIndex    int64
	BlockNumber uint64
	EventName   string
	Payload     []byte
}

// =============================================================================
// Query Types
// =============================================================================

// AssetSort names the supported asset orderings
type AssetSort string

const (
	AssetSortNewest    AssetSort = "newest"
	AssetSortOldest    AssetSort = "oldest"
	AssetSortPriceAsc  AssetSort = "price_asc"
	AssetSortPriceDesc AssetSort = "price_desc"
)

// AssetFilter represents the filter for listing assets
type AssetFilter struct {
	Owner *string
	// Search matches name or description case-insensitively
	Search *string
	// MinPrice and MaxPrice bound the active listing price in minor units
	MinPrice   *string
	MaxPrice   *string
	ListedOnly bool
	HasOffers  bool
	Sort       AssetSort
	Limit      int
	Offset     uint64
}

// TransactionFilter represents the filter for listing transactions
type TransactionFilter struct {
	AssetID *uuid.UUID
	// Address matches either side of the transaction
	Address *string
	Kinds   []schema.TransactionKind
	Limit   int
	Offset  uint64
}

// ListingFilter represents the filter for listing active listings
type ListingFilter struct {
	Seller *string
	Limit  int
	Offset uint64
}

// OfferFilter represents the filter for listing offers
type OfferFilter struct {
	// Owner matches offers on assets the address currently owns (offers received)
	Owner *string
	// Offerer matches offers the address made
	Offerer    *string
	ActiveOnly bool
	Limit      int
	Offset     uint64
}

// CollectionFilter represents the filter for listing per-owner collections
type CollectionFilter struct {
	// Search matches the owner address case-insensitively
	Search *string
	Limit  int
	Offset uint64
}

// CollectionSummary aggregates the assets of one owner
type CollectionSummary struct {
	OwnerAddress string `gorm:"column:owner_address"`
	NFTCount     int64  `gorm:"column:nft_count"`
	ListedCount  int64  `gorm:"column:listed_count"`
	// ListedValueMinor sums the active listing prices
	ListedValueMinor string  `gorm:"column:listed_value_minor"`
	FloorMinor       *string `gorm:"column:floor_minor"`
}

// AssetWithMarket is an asset joined with its market state
type AssetWithMarket struct {
	schema.Asset
	ListingID        *uuid.UUID `gorm:"column:listing_id"`
	ChainListingID   *string    `gorm:"column:chain_listing_id"`
	ListingPrice     *string    `gorm:"column:listing_price"`
	ActiveOfferCount int64      `gorm:"column:active_offer_count"`
}

// TransactionFeedItem is a transaction joined with its asset's name and media
type TransactionFeedItem struct {
	schema.Transaction
	AssetName     *string `gorm:"column:asset_name"`
	AssetMediaURI *string `gorm:"column:asset_media_uri"`
	AssetTokenID  *string `gorm:"column:asset_token_id"`
}

// TrendingAsset is a row of the trending_nfts view
type TrendingAsset struct {
	schema.Asset
	OfferCount       int64 `gorm:"column:offer_count"`
	TransactionCount int64 `gorm:"column:transaction_count"`
	Score            int64 `gorm:"column:score"`
}

// MarketplaceStats aggregates the mirror
type MarketplaceStats struct {
	TotalAssets    int64   `gorm:"column:total_assets"`
	ActiveListings int64   `gorm:"column:active_listings"`
	ActiveOffers   int64   `gorm:"column:active_offers"`
	TotalSales     int64   `gorm:"column:total_sales"`
	UniqueOwners   int64   `gorm:"column:unique_owners"`
	VolumeMinor    string  `gorm:"column:volume_minor"`
	FloorMinor     *string `gorm:"column:floor_minor"`
}

// =============================================================================
// Store Interface
// =============================================================================

// Store defines the interface for mirror database operations.
// Getters return nil without error when the row does not exist.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// WithTx runs fn inside a database transaction with a store bound to it
	WithTx(ctx context.Context, fn func(Store) error) error

	// =============================================================================
	// Assets
	// =============================================================================

	// CreateAsset inserts an asset. An existing (contract, token) row keeps its owner and only
	// has blank name, description and URIs filled in.
	CreateAsset(ctx context.Context, input CreateAssetInput) (*schema.Asset, error)
	// GetAssetByID retrieves an asset by its id
	GetAssetByID(ctx context.Context, id uuid.UUID) (*schema.Asset, error)
	// GetAssetByToken retrieves an asset by collection address and token id
	GetAssetByToken(ctx context.Context, contractAddress, chainTokenID string) (*schema.Asset, error)
	// GetAssetWithMarket retrieves an asset joined with its market state
	GetAssetWithMarket(ctx context.Context, id uuid.UUID) (*AssetWithMarket, error)
	// ListAssets lists assets with their market state and the total matching count
	ListAssets(ctx context.Context, filter AssetFilter) ([]AssetWithMarket, uint64, error)
	// UpdateAssetOwner sets the owner only while the current owner equals expectedOwner.
	// Returns false when the condition did not hold.
	UpdateAssetOwner(ctx context.Context, assetID uuid.UUID, expectedOwner, newOwner string) (bool, error)

	// =============================================================================
	// Listings
	// =============================================================================

	// CreateListing inserts a listing and deactivates any other active listing of the asset.
	// An existing row with the same chain listing id is returned unchanged.
	CreateListing(ctx context.Context, input CreateListingInput) (*schema.Listing, error)
	// GetListingByID retrieves a listing by its id
	GetListingByID(ctx context.Context, id uuid.UUID) (*schema.Listing, error)
	// GetListingByChainID retrieves a listing by its chain listing id
	GetListingByChainID(ctx context.Context, chainListingID string) (*schema.Listing, error)
	// GetActiveListingByAsset retrieves the active listing of an asset
	GetActiveListingByAsset(ctx context.Context, assetID uuid.UUID) (*schema.Listing, error)
	// ListActiveListings lists active listings, oldest first
	ListActiveListings(ctx context.Context, limit int, offset uint64) ([]schema.Listing, error)
	// ListListings lists active listings with their assets, newest first
	ListListings(ctx context.Context, filter ListingFilter) ([]schema.Listing, error)
	// DeactivateListing deactivates a listing while it is active; false when it already was not
	DeactivateListing(ctx context.Context, id uuid.UUID) (bool, error)
	// DeactivateListingByChainID deactivates a listing by its chain listing id while it is active
	DeactivateListingByChainID(ctx context.Context, chainListingID string) (bool, error)
	// DeactivateActiveListingsForAsset deactivates every active listing of an asset
	DeactivateActiveListingsForAsset(ctx context.Context, assetID uuid.UUID) (int64, error)

	// =============================================================================
	// Offers
	// =============================================================================

	// CreateOffer inserts an offer and deactivates the offerer's other active offer on the asset.
	// An existing row with the same chain offer id is returned unchanged.
	CreateOffer(ctx context.Context, input CreateOfferInput) (*schema.Offer, error)
	// GetOfferByID retrieves an offer by its id
	GetOfferByID(ctx context.Context, id uuid.UUID) (*schema.Offer, error)
	// GetOfferByChainID retrieves an offer by its chain offer id
	GetOfferByChainID(ctx context.Context, chainOfferID string) (*schema.Offer, error)
	// ListOffersByAsset lists offers of an asset, newest first
	ListOffersByAsset(ctx context.Context, assetID uuid.UUID, activeOnly bool) ([]schema.Offer, error)
	// ListActiveOffers lists active offers, oldest first
	ListActiveOffers(ctx context.Context, limit int, offset uint64) ([]schema.Offer, error)
	// ListOffers lists offers with their assets, newest first
	ListOffers(ctx context.Context, filter OfferFilter) ([]schema.Offer, error)
	// DeactivateOffer deactivates an offer while it is active; false when it already was not
	DeactivateOffer(ctx context.Context, id uuid.UUID) (bool, error)
	// DeactivateOfferByChainID deactivates an offer by its chain offer id while it is active
	DeactivateOfferByChainID(ctx context.Context, chainOfferID string) (bool, error)

	// =============================================================================
	// Transactions
	// =============================================================================

	// CreateTransaction appends a transaction row. A row for the same chain effect is not
	// inserted twice; inserted reports whether a new row was written.
	CreateTransaction(ctx context.Context, input CreateTransactionInput) (tx *schema.Transaction, inserted bool, err error)
	// GetTransactionFeedItem retrieves a transaction joined with its asset
	GetTransactionFeedItem(ctx context.Context, id uuid.UUID) (*TransactionFeedItem, error)
	// ListTransactions lists transactions, newest first
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]TransactionFeedItem, uint64, error)
	// ListRecentFeedItems returns the latest limit rows in insertion order
	ListRecentFeedItems(ctx context.Context, limit int) ([]TransactionFeedItem, error)
	// ListFeedItemsAfter returns rows inserted after seq in insertion order
	ListFeedItemsAfter(ctx context.Context, seq int64, limit int) ([]TransactionFeedItem, error)

	// =============================================================================
	// Favorites
	// =============================================================================

	// AddFavorite adds an asset to a user's favorites; adding twice is a no-op
	AddFavorite(ctx context.Context, userAddress string, assetID uuid.UUID) error
	// RemoveFavorite removes an asset from a user's favorites
	RemoveFavorite(ctx context.Context, userAddress string, assetID uuid.UUID) error
	// ListFavorites lists a user's favorite assets, most recently added first
	ListFavorites(ctx context.Context, userAddress string) ([]schema.Asset, error)

	// =============================================================================
	// Aggregates
	// =============================================================================

	// GetStats aggregates the mirror
	GetStats(ctx context.Context) (*MarketplaceStats, error)
	// GetTrending returns the top rows of the trending_nfts view
	GetTrending(ctx context.Context, limit int) ([]TrendingAsset, error)
	// ListCollections groups assets by owner, largest collections first
	ListCollections(ctx context.Context, filter CollectionFilter) ([]CollectionSummary, error)

	// =============================================================================
	// Intents
	// =============================================================================

	// CreateIntent appends an intent. When the idempotency key already exists the existing
	// row is returned and created is false, unless that row failed: it is then reset to
	// pending and returned with created true.
	CreateIntent(ctx context.Context, input CreateIntentInput) (intent *schema.Intent, created bool, err error)
	// GetIntentByID retrieves an intent by its id
	GetIntentByID(ctx context.Context, id string) (*schema.Intent, error)
	// UpdateIntentStatus moves an intent to status, recording the tx hash and error when given
	UpdateIntentStatus(ctx context.Context, id string, status schema.IntentStatus, txHash *string, errMsg *string) error
	// GetIntentByTxHash retrieves the intent of the given kind that submitted a chain transaction
	GetIntentByTxHash(ctx context.Context, kind schema.IntentKind, txHash string) (*schema.Intent, error)
	// ListStaleIntents lists intents still in status that were last updated before olderThan, oldest first
	ListStaleIntents(ctx context.Context, status schema.IntentStatus, olderThan time.Time, limit int) ([]schema.Intent, error)
	// MarkIntentsReconciled marks the confirmed intents of a chain transaction as reconciled
	MarkIntentsReconciled(ctx context.Context, txHash string) (int64, error)

	// =============================================================================
	// Chain events
	// =============================================================================

	// ApplyChainEvent records the event in the ledger and runs apply in the same database
	// transaction. An event already in the ledger is skipped and applied is false.
	ApplyChainEvent(ctx context.Context, input CreateChainEventInput, apply func(Store) error) (applied bool, err error)

	// =============================================================================
	// Key-value store
	// =============================================================================

	// SetKeyValue sets a key-value pair
	SetKeyValue(ctx context.Context, key string, value string) error
	// GetKeyValue retrieves a value by key; an empty string when the key does not exist
	GetKeyValue(ctx context.Context, key string) (string, error)
}
