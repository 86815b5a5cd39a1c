package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/feral-file/ff-market/internal/store/schema"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// RegisterReadReplica routes reads to the replica while writes and read-after-write
// lookups stay on the primary. A blank dsn leaves db unchanged.
func RegisterReadReplica(db *gorm.DB, replicaDSN string) error {
	if replicaDSN == "" {
		return nil
	}

	err := db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: []gorm.Dialector{postgres.Open(replicaDSN)},
		Policy:   dbresolver.RandomPolicy{},
	}))
	if err != nil {
		return fmt.Errorf("failed to register read replica: %w", err)
	}

	return nil
}

func pageSize(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	return min(limit, maxPageSize)
}

func likePattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
	return "%" + escaped + "%"
}

func jsonPayload(raw []byte) datatypes.JSON {
	if len(raw) == 0 {
		return datatypes.JSON("{}")
	}
	return datatypes.JSON(raw)
}

// WithTx runs fn inside a database transaction with a store bound to it
func (s *pgStore) WithTx(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&pgStore{db: tx})
	})
}

// =============================================================================
// Assets
// =============================================================================

// fillBlank keeps the stored value unless it is empty
func fillBlank(column string) clause.Expr {
	return gorm.Expr(fmt.Sprintf("CASE WHEN assets.%[1]s = '' THEN EXCLUDED.%[1]s ELSE assets.%[1]s END", column))
}

// CreateAsset inserts an asset. An existing (contract, token) row keeps its owner and
// only has its blank descriptive fields filled in.
func (s *pgStore) CreateAsset(ctx context.Context, input CreateAssetInput) (*schema.Asset, error) {
	asset := schema.Asset{
		ID:              uuid.New(),
		ChainTokenID:    input.ChainTokenID,
		ContractAddress: input.ContractAddress,
		OwnerAddress:    input.OwnerAddress,
		Name:            input.Name,
		Description:     input.Description,
		MediaURI:        input.MediaURI,
		MetadataURI:     input.MetadataURI,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "contract_address"}, {Name: "chain_token_id"}},
			DoUpdates: clause.Set{
				{Column: clause.Column{Name: "name"}, Value: fillBlank("name")},
				{Column: clause.Column{Name: "description"}, Value: fillBlank("description")},
				{Column: clause.Column{Name: "media_uri"}, Value: fillBlank("media_uri")},
				{Column: clause.Column{Name: "metadata_uri"}, Value: fillBlank("metadata_uri")},
			},
		}).
		Create(&asset).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	var stored schema.Asset
	err = s.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("contract_address = ? AND chain_token_id = ?", input.ContractAddress, input.ChainTokenID).
		First(&stored).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get stored asset: %w", err)
	}

	return &stored, nil
}

// GetAssetByID retrieves an asset by its id
func (s *pgStore) GetAssetByID(ctx context.Context, id uuid.UUID) (*schema.Asset, error) {
	var asset schema.Asset
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&asset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return &asset, nil
}

// GetAssetByToken retrieves an asset by collection address and token id
func (s *pgStore) GetAssetByToken(ctx context.Context, contractAddress, chainTokenID string) (*schema.Asset, error) {
	var asset schema.Asset
	err := s.db.WithContext(ctx).
		Where("lower(contract_address) = lower(?) AND chain_token_id = ?", contractAddress, chainTokenID).
		First(&asset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get asset by token: %w", err)
	}
	return &asset, nil
}

const assetMarketColumns = `assets.*,
	l.id AS listing_id,
	l.chain_listing_id AS chain_listing_id,
	l.price_minor_units::text AS listing_price,
	(SELECT COUNT(*) FROM offers o WHERE o.asset_id = assets.id AND o.active) AS active_offer_count`

func (s *pgStore) assetMarketQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&schema.Asset{}).
		Joins("LEFT JOIN listings l ON l.asset_id = assets.id AND l.active")
}

// GetAssetWithMarket retrieves an asset joined with its market state
func (s *pgStore) GetAssetWithMarket(ctx context.Context, id uuid.UUID) (*AssetWithMarket, error) {
	var rows []AssetWithMarket
	err := s.assetMarketQuery(ctx).
		Select(assetMarketColumns).
		Where("assets.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get asset with market: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func applyAssetFilter(query *gorm.DB, filter AssetFilter) *gorm.DB {
	if filter.Owner != nil {
		query = query.Where("lower(assets.owner_address) = lower(?)", *filter.Owner)
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := likePattern(*filter.Search)
		query = query.Where("(assets.name ILIKE ? OR assets.description ILIKE ?)", pattern, pattern)
	}
	if filter.ListedOnly || filter.MinPrice != nil || filter.MaxPrice != nil {
		query = query.Where("l.id IS NOT NULL")
	}
	if filter.MinPrice != nil {
		query = query.Where("l.price_minor_units >= ?::numeric", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("l.price_minor_units <= ?::numeric", *filter.MaxPrice)
	}
	if filter.HasOffers {
		query = query.Where("EXISTS (SELECT 1 FROM offers o WHERE o.asset_id = assets.id AND o.active)")
	}
	return query
}

// ListAssets lists assets with their market state and the total matching count
func (s *pgStore) ListAssets(ctx context.Context, filter AssetFilter) ([]AssetWithMarket, uint64, error) {
	var total int64
	if err := applyAssetFilter(s.assetMarketQuery(ctx), filter).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count assets: %w", err)
	}

	query := applyAssetFilter(s.assetMarketQuery(ctx), filter).Select(assetMarketColumns)
	switch filter.Sort {
	case AssetSortOldest:
		query = query.Order("assets.created_at ASC, assets.id ASC")
	case AssetSortPriceAsc:
		query = query.Order("l.price_minor_units ASC NULLS LAST, assets.created_at DESC")
	case AssetSortPriceDesc:
		query = query.Order("l.price_minor_units DESC NULLS LAST, assets.created_at DESC")
	default:
		query = query.Order("assets.created_at DESC, assets.id ASC")
	}

	var rows []AssetWithMarket
	err := query.
		Limit(pageSize(filter.Limit)).
		Offset(int(filter.Offset)). //nolint:gosec,G115
		Scan(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list assets: %w", err)
	}

	return rows, uint64(total), nil //nolint:gosec,G115 // count is never negative
}

// UpdateAssetOwner sets the owner only while the current owner equals expectedOwner
func (s *pgStore) UpdateAssetOwner(ctx context.Context, assetID uuid.UUID, expectedOwner, newOwner string) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Asset{}).
		Where("id = ? AND lower(owner_address) = lower(?)", assetID, expectedOwner).
		Update("owner_address", newOwner)
	if result.Error != nil {
		return false, fmt.Errorf("failed to update asset owner: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// =============================================================================
// Listings
// =============================================================================

// CreateListing inserts a listing, superseding any other active listing of the asset
func (s *pgStore) CreateListing(ctx context.Context, input CreateListingInput) (*schema.Listing, error) {
	var listing *schema.Listing

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing schema.Listing
		err := tx.Where("chain_listing_id = ?", input.ChainListingID).First(&existing).Error
		if err == nil {
			listing = &existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to get listing: %w", err)
		}

		if err := tx.Model(&schema.Listing{}).
			Where("asset_id = ? AND active", input.AssetID).
			Update("active", false).Error; err != nil {
			return fmt.Errorf("failed to deactivate superseded listings: %w", err)
		}

		created := schema.Listing{
			ID:              uuid.New(),
			ChainListingID:  input.ChainListingID,
			AssetID:         input.AssetID,
			SellerAddress:   input.SellerAddress,
			PriceMinorUnits: input.PriceMinorUnits,
			Active:          true,
		}
		if err := tx.Create(&created).Error; err != nil {
			return fmt.Errorf("failed to insert listing: %w", err)
		}
		listing = &created
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}

	return listing, nil
}

func (s *pgStore) getListing(ctx context.Context, query string, args ...interface{}) (*schema.Listing, error) {
	var listing schema.Listing
	err := s.db.WithContext(ctx).Where(query, args...).First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return &listing, nil
}

// GetListingByID retrieves a listing by its id
func (s *pgStore) GetListingByID(ctx context.Context, id uuid.UUID) (*schema.Listing, error) {
	return s.getListing(ctx, "id = ?", id)
}

// GetListingByChainID retrieves a listing by its chain listing id
func (s *pgStore) GetListingByChainID(ctx context.Context, chainListingID string) (*schema.Listing, error) {
	return s.getListing(ctx, "chain_listing_id = ?", chainListingID)
}

// GetActiveListingByAsset retrieves the active listing of an asset
func (s *pgStore) GetActiveListingByAsset(ctx context.Context, assetID uuid.UUID) (*schema.Listing, error) {
	return s.getListing(ctx, "asset_id = ? AND active", assetID)
}

// ListActiveListings lists active listings with their assets, oldest first
func (s *pgStore) ListActiveListings(ctx context.Context, limit int, offset uint64) ([]schema.Listing, error) {
	var listings []schema.Listing
	err := s.db.WithContext(ctx).
		Preload("Asset").
		Where("active").
		Order("created_at ASC, id ASC").
		Limit(pageSize(limit)).
		Offset(int(offset)). //nolint:gosec,G115
		Find(&listings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active listings: %w", err)
	}
	return listings, nil
}

// ListListings lists active listings with their assets, newest first
func (s *pgStore) ListListings(ctx context.Context, filter ListingFilter) ([]schema.Listing, error) {
	query := s.db.WithContext(ctx).
		Preload("Asset").
		Where("active")
	if filter.Seller != nil {
		query = query.Where("lower(seller_address) = lower(?)", *filter.Seller)
	}

	var listings []schema.Listing
	err := query.
		Order("created_at DESC, id ASC").
		Limit(pageSize(filter.Limit)).
		Offset(int(filter.Offset)). //nolint:gosec,G115
		Find(&listings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	return listings, nil
}

func (s *pgStore) deactivateListing(ctx context.Context, query string, args ...interface{}) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Listing{}).
		Where(query, args...).
		Where("active").
		Update("active", false)
	if result.Error != nil {
		return false, fmt.Errorf("failed to deactivate listing: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// DeactivateListing deactivates a listing while it is active
func (s *pgStore) DeactivateListing(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.deactivateListing(ctx, "id = ?", id)
}

// DeactivateListingByChainID deactivates a listing by its chain listing id while it is active
func (s *pgStore) DeactivateListingByChainID(ctx context.Context, chainListingID string) (bool, error) {
	return s.deactivateListing(ctx, "chain_listing_id = ?", chainListingID)
}

// DeactivateActiveListingsForAsset deactivates every active listing of an asset
func (s *pgStore) DeactivateActiveListingsForAsset(ctx context.Context, assetID uuid.UUID) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Listing{}).
		Where("asset_id = ? AND active", assetID).
		Update("active", false)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to deactivate listings for asset: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// =============================================================================
// Offers
// =============================================================================

// CreateOffer inserts an offer, superseding the offerer's other active offer on the asset
func (s *pgStore) CreateOffer(ctx context.Context, input CreateOfferInput) (*schema.Offer, error) {
	var offer *schema.Offer

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing schema.Offer
		err := tx.Where("chain_offer_id = ?", input.ChainOfferID).First(&existing).Error
		if err == nil {
			offer = &existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to get offer: %w", err)
		}

		if err := tx.Model(&schema.Offer{}).
			Where("asset_id = ? AND lower(offerer_address) = lower(?) AND active", input.AssetID, input.OffererAddress).
			Update("active", false).Error; err != nil {
			return fmt.Errorf("failed to deactivate superseded offers: %w", err)
		}

		created := schema.Offer{
			ID:              uuid.New(),
			ChainOfferID:    input.ChainOfferID,
			AssetID:         input.AssetID,
			OffererAddress:  input.OffererAddress,
			PriceMinorUnits: input.PriceMinorUnits,
			Active:          true,
		}
		if err := tx.Create(&created).Error; err != nil {
			return fmt.Errorf("failed to insert offer: %w", err)
		}
		offer = &created
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create offer: %w", err)
	}

	return offer, nil
}

func (s *pgStore) getOffer(ctx context.Context, query string, args ...interface{}) (*schema.Offer, error) {
	var offer schema.Offer
	err := s.db.WithContext(ctx).Where(query, args...).First(&offer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	return &offer, nil
}

// GetOfferByID retrieves an offer by its id
func (s *pgStore) GetOfferByID(ctx context.Context, id uuid.UUID) (*schema.Offer, error) {
	return s.getOffer(ctx, "id = ?", id)
}

// GetOfferByChainID retrieves an offer by its chain offer id
func (s *pgStore) GetOfferByChainID(ctx context.Context, chainOfferID string) (*schema.Offer, error) {
	return s.getOffer(ctx, "chain_offer_id = ?", chainOfferID)
}

// ListOffersByAsset lists offers of an asset, newest first
func (s *pgStore) ListOffersByAsset(ctx context.Context, assetID uuid.UUID, activeOnly bool) ([]schema.Offer, error) {
	query := s.db.WithContext(ctx).Where("asset_id = ?", assetID)
	if activeOnly {
		query = query.Where("active")
	}

	var offers []schema.Offer
	if err := query.Order("created_at DESC, id ASC").Find(&offers).Error; err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	return offers, nil
}

// ListActiveOffers lists active offers, oldest first
func (s *pgStore) ListActiveOffers(ctx context.Context, limit int, offset uint64) ([]schema.Offer, error) {
	var offers []schema.Offer
	err := s.db.WithContext(ctx).
		Where("active").
		Order("created_at ASC, id ASC").
		Limit(pageSize(limit)).
		Offset(int(offset)). //nolint:gosec,G115
		Find(&offers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active offers: %w", err)
	}
	return offers, nil
}

// ListOffers lists offers with their assets, newest first
func (s *pgStore) ListOffers(ctx context.Context, filter OfferFilter) ([]schema.Offer, error) {
	query := s.db.WithContext(ctx).Preload("Asset")
	if filter.Owner != nil {
		query = query.Where("EXISTS (SELECT 1 FROM assets a WHERE a.id = offers.asset_id AND lower(a.owner_address) = lower(?))",
			*filter.Owner)
	}
	if filter.Offerer != nil {
		query = query.Where("lower(offers.offerer_address) = lower(?)", *filter.Offerer)
	}
	if filter.ActiveOnly {
		query = query.Where("offers.active")
	}

	var offers []schema.Offer
	err := query.
		Order("offers.created_at DESC, offers.id ASC").
		Limit(pageSize(filter.Limit)).
		Offset(int(filter.Offset)). //nolint:gosec,G115
		Find(&offers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	return offers, nil
}

func (s *pgStore) deactivateOffer(ctx context.Context, query string, args ...interface{}) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Offer{}).
		Where(query, args...).
		Where("active").
		Update("active", false)
	if result.Error != nil {
		return false, fmt.Errorf("failed to deactivate offer: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// DeactivateOffer deactivates an offer while it is active
func (s *pgStore) DeactivateOffer(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.deactivateOffer(ctx, "id = ?", id)
}

// DeactivateOfferByChainID deactivates an offer by its chain offer id while it is active
func (s *pgStore) DeactivateOfferByChainID(ctx context.Context, chainOfferID string) (bool, error) {
	return s.deactivateOffer(ctx, "chain_offer_id = ?", chainOfferID)
}

// =============================================================================
// Transactions
// =============================================================================

// CreateTransaction appends a transaction row unless the same chain effect is already recorded
func (s *pgStore) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*schema.Transaction, bool, error) {
	txRow := schema.Transaction{
		ID:              uuid.New(),
		AssetID:         input.AssetID,
		FromAddress:     input.FromAddress,
		ToAddress:       input.ToAddress,
		Kind:            input.Kind,
		PriceMinorUnits: input.PriceMinorUnits,
		ChainTxHash:     input.ChainTxHash,
		LogIndex:        input.LogIndex,
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&txRow)
	if result.Error != nil {
		return nil, false, fmt.Errorf("failed to create transaction: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		if input.ChainTxHash == nil || input.LogIndex == nil {
			return nil, false, fmt.Errorf("failed to create transaction: conflicting row without chain reference")
		}

		var existing schema.Transaction
		err := s.db.WithContext(ctx).
			Clauses(dbresolver.Write).
			Where("chain_tx_hash = ? AND log_index = ? AND kind = ?", *input.ChainTxHash, *input.LogIndex, input.Kind).
			First(&existing).Error
		if err != nil {
			return nil, false, fmt.Errorf("failed to get existing transaction: %w", err)
		}
		return &existing, false, nil
	}

	return &txRow, true, nil
}

const feedItemColumns = `transactions.*,
	a.name AS asset_name,
	a.media_uri AS asset_media_uri,
	a.chain_token_id AS asset_token_id`

func (s *pgStore) feedItemQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&schema.Transaction{}).
		Joins("LEFT JOIN assets a ON a.id = transactions.asset_id")
}

// GetTransactionFeedItem retrieves a transaction joined with its asset
func (s *pgStore) GetTransactionFeedItem(ctx context.Context, id uuid.UUID) (*TransactionFeedItem, error) {
	var items []TransactionFeedItem
	err := s.feedItemQuery(ctx).
		Clauses(dbresolver.Write).
		Select(feedItemColumns).
		Where("transactions.id = ?", id).
		Limit(1).
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction feed item: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

// ListTransactions lists transactions, newest first
func (s *pgStore) ListTransactions(ctx context.Context, filter TransactionFilter) ([]TransactionFeedItem, uint64, error) {
	apply := func(query *gorm.DB) *gorm.DB {
		if filter.AssetID != nil {
			query = query.Where("transactions.asset_id = ?", *filter.AssetID)
		}
		if filter.Address != nil {
			query = query.Where("(lower(transactions.from_address) = lower(?) OR lower(transactions.to_address) = lower(?))",
				*filter.Address, *filter.Address)
		}
		if len(filter.Kinds) > 0 {
			query = query.Where("transactions.kind IN ?", filter.Kinds)
		}
		return query
	}

	var total int64
	if err := apply(s.db.WithContext(ctx).Model(&schema.Transaction{})).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	var items []TransactionFeedItem
	err := apply(s.feedItemQuery(ctx)).
		Select(feedItemColumns).
		Order("transactions.seq DESC").
		Limit(pageSize(filter.Limit)).
		Offset(int(filter.Offset)). //nolint:gosec,G115
		Scan(&items).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	return items, uint64(total), nil //nolint:gosec,G115 // count is never negative
}

// ListRecentFeedItems returns the latest limit rows in insertion order
func (s *pgStore) ListRecentFeedItems(ctx context.Context, limit int) ([]TransactionFeedItem, error) {
	if limit <= 0 {
		return nil, nil
	}

	var items []TransactionFeedItem
	err := s.feedItemQuery(ctx).
		Select(feedItemColumns).
		Order("transactions.seq DESC").
		Limit(min(limit, maxPageSize)).
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent feed items: %w", err)
	}

	slices.Reverse(items)
	return items, nil
}

// ListFeedItemsAfter returns rows inserted after seq in insertion order
func (s *pgStore) ListFeedItemsAfter(ctx context.Context, seq int64, limit int) ([]TransactionFeedItem, error) {
	var items []TransactionFeedItem
	err := s.feedItemQuery(ctx).
		Clauses(dbresolver.Write).
		Select(feedItemColumns).
		Where("transactions.seq > ?", seq).
		Order("transactions.seq ASC").
		Limit(pageSize(limit)).
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list feed items after %d: %w", seq, err)
	}
	return items, nil
}

// =============================================================================
// Favorites
// =============================================================================

// AddFavorite adds an asset to a user's favorites
func (s *pgStore) AddFavorite(ctx context.Context, userAddress string, assetID uuid.UUID) error {
	favorite := schema.Favorite{
		UserAddress: strings.ToLower(userAddress),
		AssetID:     assetID,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&favorite).Error
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// RemoveFavorite removes an asset from a user's favorites
func (s *pgStore) RemoveFavorite(ctx context.Context, userAddress string, assetID uuid.UUID) error {
	err := s.db.WithContext(ctx).
		Where("user_address = ? AND asset_id = ?", strings.ToLower(userAddress), assetID).
		Delete(&schema.Favorite{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// ListFavorites lists a user's favorite assets, most recently added first
func (s *pgStore) ListFavorites(ctx context.Context, userAddress string) ([]schema.Asset, error) {
	var assets []schema.Asset
	err := s.db.WithContext(ctx).
		Model(&schema.Asset{}).
		Joins("JOIN favorites f ON f.asset_id = assets.id").
		Where("f.user_address = ?", strings.ToLower(userAddress)).
		Order("f.created_at DESC, assets.id ASC").
		Find(&assets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return assets, nil
}

// =============================================================================
// Aggregates
// =============================================================================

// GetStats aggregates the mirror
func (s *pgStore) GetStats(ctx context.Context) (*MarketplaceStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM assets) AS total_assets,
			(SELECT COUNT(*) FROM listings WHERE active) AS active_listings,
			(SELECT COUNT(*) FROM offers WHERE active) AS active_offers,
			(SELECT COUNT(*) FROM transactions WHERE kind IN ('sale', 'offer_accepted')) AS total_sales,
			(SELECT COUNT(DISTINCT lower(owner_address)) FROM assets) AS unique_owners,
			(SELECT COALESCE(SUM(price_minor_units), 0)::text FROM transactions
				WHERE kind IN ('sale', 'offer_accepted')) AS volume_minor,
			(SELECT MIN(price_minor_units)::text FROM listings WHERE active) AS floor_minor
	`

	var stats MarketplaceStats
	if err := s.db.WithContext(ctx).Raw(query).Scan(&stats).Error; err != nil {
		return nil, fmt.Errorf("failed to get marketplace stats: %w", err)
	}
	return &stats, nil
}

// GetTrending returns the top rows of the trending_nfts view
func (s *pgStore) GetTrending(ctx context.Context, limit int) ([]TrendingAsset, error) {
	var rows []TrendingAsset
	err := s.db.WithContext(ctx).
		Table("trending_nfts").
		Order("score DESC, created_at DESC, id ASC").
		Limit(pageSize(limit)).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get trending assets: %w", err)
	}
	return rows, nil
}

// ListCollections groups assets by owner, largest collections first
func (s *pgStore) ListCollections(ctx context.Context, filter CollectionFilter) ([]CollectionSummary, error) {
	query := s.db.WithContext(ctx).
		Model(&schema.Asset{}).
		Joins("LEFT JOIN listings l ON l.asset_id = assets.id AND l.active").
		Select(`lower(assets.owner_address) AS owner_address,
			COUNT(*) AS nft_count,
			COUNT(l.id) AS listed_count,
			COALESCE(SUM(l.price_minor_units), 0)::text AS listed_value_minor,
			MIN(l.price_minor_units)::text AS floor_minor`).
		Group("lower(assets.owner_address)")
	if filter.Search != nil && *filter.Search != "" {
		query = query.Where("assets.owner_address ILIKE ?", likePattern(*filter.Search))
	}

	var rows []CollectionSummary
	err := query.
		Order("nft_count DESC, owner_address ASC").
		Limit(pageSize(filter.Limit)).
		Offset(int(filter.Offset)). //nolint:gosec,G115
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return rows, nil
}

// =============================================================================
// Intents
// =============================================================================

// CreateIntent appends an intent or returns the row already holding the idempotency key
func (s *pgStore) CreateIntent(ctx context.Context, input CreateIntentInput) (*schema.Intent, bool, error) {
	intent := schema.Intent{
		ID:             input.ID,
		Kind:           input.Kind,
		IdempotencyKey: input.IdempotencyKey,
		ActorAddress:   input.ActorAddress,
		Payload:        jsonPayload(input.Payload),
		Status:         schema.IntentStatusPending,
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "idempotency_key"}},
			DoNothing: true,
		}).
		Create(&intent)
	if result.Error != nil {
		return nil, false, fmt.Errorf("failed to create intent: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		var existing schema.Intent
		err := s.db.WithContext(ctx).
			Clauses(dbresolver.Write).
			Where("idempotency_key = ?", input.IdempotencyKey).
			First(&existing).Error
		if err != nil {
			return nil, false, fmt.Errorf("failed to get existing intent: %w", err)
		}
		if existing.Status != schema.IntentStatusFailed {
			return &existing, false, nil
		}

		// a failed intent had no chain effect, the same request may run again
		reopened := s.db.WithContext(ctx).
			Model(&schema.Intent{}).
			Where("id = ? AND status = ?", existing.ID, schema.IntentStatusFailed).
			Updates(map[string]interface{}{
				"status":        schema.IntentStatusPending,
				"payload":       jsonPayload(input.Payload),
				"chain_tx_hash": nil,
				"error":         nil,
				"updated_at":    gorm.Expr("now()"),
			})
		if reopened.Error != nil {
			return nil, false, fmt.Errorf("failed to reopen intent: %w", reopened.Error)
		}
		if reopened.RowsAffected == 0 {
			// a concurrent retry reopened it first
			return &existing, false, nil
		}
		existing.Status = schema.IntentStatusPending
		existing.Payload = jsonPayload(input.Payload)
		existing.ChainTxHash = nil
		existing.Error = nil
		return &existing, true, nil
	}

	return &intent, true, nil
}

// GetIntentByID retrieves an intent by its id
func (s *pgStore) GetIntentByID(ctx context.Context, id string) (*schema.Intent, error) {
	var intent schema.Intent
	err := s.db.WithContext(ctx).Clauses(dbresolver.Write).Where("id = ?", id).First(&intent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get intent: %w", err)
	}
	return &intent, nil
}

// UpdateIntentStatus moves an intent to status. A reconciled intent keeps its status.
func (s *pgStore) UpdateIntentStatus(ctx context.Context, id string, status schema.IntentStatus, txHash *string, errMsg *string) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": gorm.Expr("now()"),
	}
	if txHash != nil {
		updates["chain_tx_hash"] = *txHash
	}
	if errMsg != nil {
		updates["error"] = *errMsg
	}

	err := s.db.WithContext(ctx).
		Model(&schema.Intent{}).
		Where("id = ? AND status <> ?", id, schema.IntentStatusReconciled).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to update intent status: %w", err)
	}
	return nil
}

// GetIntentByTxHash retrieves the intent of the given kind that submitted a chain transaction
func (s *pgStore) GetIntentByTxHash(ctx context.Context, kind schema.IntentKind, txHash string) (*schema.Intent, error) {
	var intent schema.Intent
	err := s.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("kind = ? AND lower(chain_tx_hash) = lower(?)", kind, txHash).
		Order("created_at DESC").
		First(&intent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get intent by tx hash: %w", err)
	}
	return &intent, nil
}

// ListStaleIntents lists intents stuck in status since before olderThan
func (s *pgStore) ListStaleIntents(ctx context.Context, status schema.IntentStatus, olderThan time.Time, limit int) ([]schema.Intent, error) {
	var intents []schema.Intent
	err := s.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", status, olderThan).
		Order("updated_at ASC").
		Limit(pageSize(limit)).
		Find(&intents).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list stale intents: %w", err)
	}
	return intents, nil
}

// MarkIntentsReconciled marks the submitted or confirmed intents of a chain transaction as reconciled
func (s *pgStore) MarkIntentsReconciled(ctx context.Context, txHash string) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Intent{}).
		Where("lower(chain_tx_hash) = lower(?) AND status IN ?", txHash,
			[]schema.IntentStatus{schema.IntentStatusSubmitted, schema.IntentStatusConfirmed}).
		Updates(map[string]interface{}{
			"status":     schema.IntentStatusReconciled,
			"updated_at": gorm.Expr("now()"),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark intents reconciled: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// =============================================================================
// Chain events
// =============================================================================

// ApplyChainEvent records the event in the ledger and runs apply in the same transaction
func (s *pgStore) ApplyChainEvent(ctx context.Context, input CreateChainEventInput, apply func(Store) error) (bool, error) {
	applied := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		event := schema.ChainEvent{
			Chain:       input.Chain,
			TxHash:      input.TxHash,
			LogIndex:    input.LogIndex,
			BlockNumber: input.BlockNumber,
			EventName:   input.EventName,
			Payload:     jsonPayload(input.Payload),
		}

		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&event)
		if result.Error != nil {
			return fmt.Errorf("failed to record chain event: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}

		if err := apply(&pgStore{db: tx}); err != nil {
			return err
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to apply chain event %s:%d: %w", input.TxHash, input.LogIndex, err)
	}

	return applied, nil
}

// =============================================================================
// Key-value store
// =============================================================================

// SetKeyValue sets a key-value pair in the key-value store
func (s *pgStore) SetKeyValue(ctx context.Context, key string, value string) error {
	kv := schema.KeyValueStore{
		Key:   key,
		Value: value,
	}

	err := s.db.WithContext(ctx).Save(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set key-value: %w", err)
	}

	return nil
}

// GetKeyValue retrieves a value by key from the key-value store
func (s *pgStore) GetKeyValue(ctx context.Context, key string) (string, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get key-value: %w", err)
	}

	return kv.Value, nil
}
