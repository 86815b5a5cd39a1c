package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/store/schema"
)

const (
	testCollection = "0xEc94943b75359f1ede3d639AD548e56239d754c2"
	testAlice      = "0x1111111111111111111111111111111111111111"
	testBob        = "0x2222222222222222222222222222222222222222"
	testCarol      = "0x3333333333333333333333333333333333333333"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func buildTestAsset(tokenID, owner string) CreateAssetInput {
	return CreateAssetInput{
		ChainTokenID:    tokenID,
		ContractAddress: testCollection,
		OwnerAddress:    owner,
		Name:            "Artwork #" + tokenID,
		Description:     "A test artwork",
		MediaURI:        "https://media.example/" + tokenID + ".png",
		MetadataURI:     "ipfs://meta/" + tokenID,
	}
}

func mustCreateAsset(t *testing.T, store Store, tokenID, owner string) *schema.Asset {
	t.Helper()
	asset, err := store.CreateAsset(context.Background(), buildTestAsset(tokenID, owner))
	require.NoError(t, err)
	require.NotNil(t, asset)
	return asset
}

// =============================================================================
// Tests
// =============================================================================

func testCreateAsset(t *testing.T, store Store) {
	ctx := context.Background()

	created := mustCreateAsset(t, store, "1", testAlice)
	assert.NotEqual(t, uuid.Nil, created.ID)

	// Same (contract, token) returns the existing row with its owner unchanged
	again, err := store.CreateAsset(ctx, buildTestAsset("1", testBob))
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, testAlice, again.OwnerAddress)

	// A row first created from a bare event gets its details filled in later
	bare, err := store.CreateAsset(ctx, CreateAssetInput{ChainTokenID: "99", ContractAddress: testCollection, OwnerAddress: testAlice})
	require.NoError(t, err)
	assert.Empty(t, bare.Name)
	filled, err := store.CreateAsset(ctx, buildTestAsset("99", testAlice))
	require.NoError(t, err)
	assert.Equal(t, bare.ID, filled.ID)
	assert.Equal(t, "Artwork #99", filled.Name)
	assert.Equal(t, "https://media.example/99.png", filled.MediaURI)

	byToken, err := store.GetAssetByToken(ctx, "0xec94943b75359f1ede3d639ad548e56239d754c2", "1")
	require.NoError(t, err)
	require.NotNil(t, byToken)
	assert.Equal(t, created.ID, byToken.ID)

	missing, err := store.GetAssetByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func testUpdateAssetOwner(t *testing.T, store Store) {
	ctx := context.Background()
	asset := mustCreateAsset(t, store, "2", testAlice)

	// Case-insensitive match on the expected owner
	updated, err := store.UpdateAssetOwner(ctx, asset.ID, "0X1111111111111111111111111111111111111111", testBob)
	require.NoError(t, err)
	assert.True(t, updated)

	// A losing writer that still expects the old owner changes nothing
	updated, err = store.UpdateAssetOwner(ctx, asset.ID, testAlice, testCarol)
	require.NoError(t, err)
	assert.False(t, updated)

	current, err := store.GetAssetByID(ctx, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, testBob, current.OwnerAddress)
}

func testListings(t *testing.T, store Store) {
	ctx := context.Background()
	asset := mustCreateAsset(t, store, "3", testAlice)

	first, err := store.CreateListing(ctx, CreateListingInput{
		ChainListingID:  "7",
		AssetID:         asset.ID,
		SellerAddress:   testAlice,
		PriceMinorUnits: "2500000000000000000",
	})
	require.NoError(t, err)
	assert.True(t, first.Active)

	t.Run("same chain id returns existing", func(t *testing.T) {
		again, err := store.CreateListing(ctx, CreateListingInput{
			ChainListingID:  "7",
			AssetID:         asset.ID,
			SellerAddress:   testAlice,
			PriceMinorUnits: "1",
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, again.ID)
		assert.Equal(t, "2500000000000000000", again.PriceMinorUnits)
	})

	t.Run("new listing supersedes the active one", func(t *testing.T) {
		second, err := store.CreateListing(ctx, CreateListingInput{
			ChainListingID:  "8",
			AssetID:         asset.ID,
			SellerAddress:   testAlice,
			PriceMinorUnits: "3000000000000000000",
		})
		require.NoError(t, err)

		active, err := store.GetActiveListingByAsset(ctx, asset.ID)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, second.ID, active.ID)

		old, err := store.GetListingByChainID(ctx, "7")
		require.NoError(t, err)
		assert.False(t, old.Active)
	})

	t.Run("deactivate is conditional on active", func(t *testing.T) {
		changed, err := store.DeactivateListingByChainID(ctx, "8")
		require.NoError(t, err)
		assert.True(t, changed)

		changed, err = store.DeactivateListingByChainID(ctx, "8")
		require.NoError(t, err)
		assert.False(t, changed)

		active, err := store.GetActiveListingByAsset(ctx, asset.ID)
		require.NoError(t, err)
		assert.Nil(t, active)
	})

	t.Run("list active listings preloads asset", func(t *testing.T) {
		other := mustCreateAsset(t, store, "4", testBob)
		_, err := store.CreateListing(ctx, CreateListingInput{
			ChainListingID:  "9",
			AssetID:         other.ID,
			SellerAddress:   testBob,
			PriceMinorUnits: "100",
		})
		require.NoError(t, err)

		listings, err := store.ListActiveListings(ctx, 10, 0)
		require.NoError(t, err)
		require.Len(t, listings, 1)
		require.NotNil(t, listings[0].Asset)
		assert.Equal(t, other.ID, listings[0].Asset.ID)

		count, err := store.DeactivateActiveListingsForAsset(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func testOffers(t *testing.T, store Store) {
	ctx := context.Background()
	asset := mustCreateAsset(t, store, "5", testAlice)

	first, err := store.CreateOffer(ctx, CreateOfferInput{
		ChainOfferID:    "1",
		AssetID:         asset.ID,
		OffererAddress:  testBob,
		PriceMinorUnits: "1000",
	})
	require.NoError(t, err)

	// Same offerer again supersedes; a different offerer keeps its own
	second, err := store.CreateOffer(ctx, CreateOfferInput{
		ChainOfferID:    "2",
		AssetID:         asset.ID,
		OffererAddress:  "0x2222222222222222222222222222222222222222",
		PriceMinorUnits: "2000",
	})
	require.NoError(t, err)
	_, err = store.CreateOffer(ctx, CreateOfferInput{
		ChainOfferID:    "3",
		AssetID:         asset.ID,
		OffererAddress:  testCarol,
		PriceMinorUnits: "1500",
	})
	require.NoError(t, err)

	active, err := store.ListOffersByAsset(ctx, asset.ID, true)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	all, err := store.ListOffersByAsset(ctx, asset.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	old, err := store.GetOfferByID(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, old.Active)

	changed, err := store.DeactivateOffer(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, changed)
	changed, err = store.DeactivateOfferByChainID(ctx, "2")
	require.NoError(t, err)
	assert.False(t, changed)

	activeOffers, err := store.ListActiveOffers(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, activeOffers, 1)
	assert.Equal(t, "3", activeOffers[0].ChainOfferID)
}

func testMarketReads(t *testing.T, store Store) {
	ctx := context.Background()
	first := mustCreateAsset(t, store, "10", testAlice)
	second := mustCreateAsset(t, store, "11", testAlice)
	third := mustCreateAsset(t, store, "12", testBob)

	for _, in := range []CreateListingInput{
		{ChainListingID: "20", AssetID: first.ID, SellerAddress: testAlice, PriceMinorUnits: "2000000000000000000"},
		{ChainListingID: "21", AssetID: third.ID, SellerAddress: testBob, PriceMinorUnits: "1000000000000000000"},
	} {
		_, err := store.CreateListing(ctx, in)
		require.NoError(t, err)
	}
	for _, in := range []CreateOfferInput{
		{ChainOfferID: "30", AssetID: first.ID, OffererAddress: testBob, PriceMinorUnits: "500"},
		{ChainOfferID: "31", AssetID: third.ID, OffererAddress: testCarol, PriceMinorUnits: "700"},
		{ChainOfferID: "32", AssetID: second.ID, OffererAddress: testCarol, PriceMinorUnits: "800"},
	} {
		_, err := store.CreateOffer(ctx, in)
		require.NoError(t, err)
	}
	_, err := store.DeactivateOfferByChainID(ctx, "32")
	require.NoError(t, err)

	t.Run("listings by seller", func(t *testing.T) {
		listings, err := store.ListListings(ctx, ListingFilter{Seller: strPtr(testAlice), Limit: 10})
		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, "20", listings[0].ChainListingID)
		require.NotNil(t, listings[0].Asset)
		assert.Equal(t, first.ID, listings[0].Asset.ID)

		all, err := store.ListListings(ctx, ListingFilter{Limit: 10})
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("offers received by owner", func(t *testing.T) {
		active, err := store.ListOffers(ctx, OfferFilter{Owner: strPtr(testAlice), ActiveOnly: true, Limit: 10})
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, "30", active[0].ChainOfferID)
		require.NotNil(t, active[0].Asset)
		assert.Equal(t, first.ID, active[0].Asset.ID)

		all, err := store.ListOffers(ctx, OfferFilter{Owner: strPtr(testAlice), Limit: 10})
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("offers made by offerer", func(t *testing.T) {
		active, err := store.ListOffers(ctx, OfferFilter{Offerer: strPtr(testCarol), ActiveOnly: true, Limit: 10})
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, "31", active[0].ChainOfferID)

		both, err := store.ListOffers(ctx, OfferFilter{Owner: strPtr(testAlice), Offerer: strPtr(testCarol), Limit: 10})
		require.NoError(t, err)
		require.Len(t, both, 1)
		assert.Equal(t, "32", both[0].ChainOfferID)
	})

	t.Run("collections aggregate per owner", func(t *testing.T) {
		rows, err := store.ListCollections(ctx, CollectionFilter{Limit: 10})
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, testAlice, rows[0].OwnerAddress)
		assert.Equal(t, int64(2), rows[0].NFTCount)
		assert.Equal(t, int64(1), rows[0].ListedCount)
		assert.Equal(t, "2000000000000000000", rows[0].ListedValueMinor)
		require.NotNil(t, rows[0].FloorMinor)
		assert.Equal(t, "2000000000000000000", *rows[0].FloorMinor)

		assert.Equal(t, testBob, rows[1].OwnerAddress)
		assert.Equal(t, int64(1), rows[1].NFTCount)

		filtered, err := store.ListCollections(ctx, CollectionFilter{Search: strPtr("2222"), Limit: 10})
		require.NoError(t, err)
		require.Len(t, filtered, 1)
		assert.Equal(t, testBob, filtered[0].OwnerAddress)
	})
}

func testTransactions(t *testing.T, store Store) {
	ctx := context.Background()
	asset := mustCreateAsset(t, store, "6", testAlice)

	input := CreateTransactionInput{
		AssetID:         &asset.ID,
		FromAddress:     testAlice,
		ToAddress:       testBob,
		Kind:            schema.TransactionKindSale,
		PriceMinorUnits: strPtr("2500000000000000000"),
		ChainTxHash:     strPtr("0xabc"),
		LogIndex:        int64Ptr(3),
	}

	first, inserted, err := store.CreateTransaction(ctx, input)
	require.NoError(t, err)
	assert.True(t, inserted)

	t.Run("same chain effect is not inserted twice", func(t *testing.T) {
		again, inserted, err := store.CreateTransaction(ctx, input)
		require.NoError(t, err)
		assert.False(t, inserted)
		assert.Equal(t, first.ID, again.ID)
	})

	t.Run("same tx and log with another kind is a distinct row", func(t *testing.T) {
		other := input
		other.Kind = schema.TransactionKindTransfer
		_, inserted, err := store.CreateTransaction(ctx, other)
		require.NoError(t, err)
		assert.True(t, inserted)
	})

	t.Run("rows without chain reference are not deduplicated", func(t *testing.T) {
		local := CreateTransactionInput{AssetID: &asset.ID, FromAddress: testBob, ToAddress: testCarol, Kind: schema.TransactionKindTransfer}
		_, inserted, err := store.CreateTransaction(ctx, local)
		require.NoError(t, err)
		assert.True(t, inserted)
		_, inserted, err = store.CreateTransaction(ctx, local)
		require.NoError(t, err)
		assert.True(t, inserted)
	})

	t.Run("feed item joins the asset", func(t *testing.T) {
		item, err := store.GetTransactionFeedItem(ctx, first.ID)
		require.NoError(t, err)
		require.NotNil(t, item)
		require.NotNil(t, item.AssetName)
		assert.Equal(t, "Artwork #6", *item.AssetName)
		require.NotNil(t, item.PriceMinorUnits)
		assert.Equal(t, "2500000000000000000", *item.PriceMinorUnits)
		assert.Positive(t, item.Seq)
	})

	t.Run("recent feed items come in insertion order", func(t *testing.T) {
		items, err := store.ListRecentFeedItems(ctx, 2)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Less(t, items[0].Seq, items[1].Seq)

		after, err := store.ListFeedItemsAfter(ctx, items[0].Seq, 10)
		require.NoError(t, err)
		require.Len(t, after, 1)
		assert.Equal(t, items[1].ID, after[0].ID)
	})

	t.Run("list transactions filters", func(t *testing.T) {
		items, total, err := store.ListTransactions(ctx, TransactionFilter{
			Address: strPtr("0x1111111111111111111111111111111111111111"),
			Kinds:   []schema.TransactionKind{schema.TransactionKindSale},
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, items, 1)
		assert.Equal(t, first.ID, items[0].ID)

		_, total, err = store.ListTransactions(ctx, TransactionFilter{AssetID: &asset.ID})
		require.NoError(t, err)
		assert.Equal(t, uint64(4), total)
	})
}

func testListAssets(t *testing.T, store Store) {
	ctx := context.Background()

	cheap := mustCreateAsset(t, store, "10", testAlice)
	pricey := mustCreateAsset(t, store, "11", testAlice)
	unlisted := mustCreateAsset(t, store, "12", testBob)

	for chainID, in := range map[string]CreateListingInput{
		"100": {AssetID: cheap.ID, SellerAddress: testAlice, PriceMinorUnits: "1000000000000000000"},
		"101": {AssetID: pricey.ID, SellerAddress: testAlice, PriceMinorUnits: "5000000000000000000"},
	} {
		in.ChainListingID = chainID
		_, err := store.CreateListing(ctx, in)
		require.NoError(t, err)
	}
	_, err := store.CreateOffer(ctx, CreateOfferInput{ChainOfferID: "50", AssetID: unlisted.ID, OffererAddress: testCarol, PriceMinorUnits: "10"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		filter   AssetFilter
		expected []uuid.UUID
	}{
		{
			name:     "price ascending among listed",
			filter:   AssetFilter{ListedOnly: true, Sort: AssetSortPriceAsc},
			expected: []uuid.UUID{cheap.ID, pricey.ID},
		},
		{
			name:     "price descending",
			filter:   AssetFilter{ListedOnly: true, Sort: AssetSortPriceDesc},
			expected: []uuid.UUID{pricey.ID, cheap.ID},
		},
		{
			name:     "min price",
			filter:   AssetFilter{MinPrice: strPtr("2000000000000000000")},
			expected: []uuid.UUID{pricey.ID},
		},
		{
			name:     "owner case-insensitive",
			filter:   AssetFilter{Owner: strPtr("0X2222222222222222222222222222222222222222")},
			expected: []uuid.UUID{unlisted.ID},
		},
		{
			name:     "has offers",
			filter:   AssetFilter{HasOffers: true},
			expected: []uuid.UUID{unlisted.ID},
		},
		{
			name:     "search escapes wildcards",
			filter:   AssetFilter{Search: strPtr("%")},
			expected: nil,
		},
		{
			name:     "search by name",
			filter:   AssetFilter{Search: strPtr("#11")},
			expected: []uuid.UUID{pricey.ID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, total, err := store.ListAssets(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, uint64(len(tt.expected)), total)

			var ids []uuid.UUID
			for _, row := range rows {
				ids = append(ids, row.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}

	t.Run("market state", func(t *testing.T) {
		row, err := store.GetAssetWithMarket(ctx, pricey.ID)
		require.NoError(t, err)
		require.NotNil(t, row)
		require.NotNil(t, row.ListingPrice)
		assert.Equal(t, "5000000000000000000", *row.ListingPrice)
		assert.Equal(t, "101", *row.ChainListingID)

		row, err = store.GetAssetWithMarket(ctx, unlisted.ID)
		require.NoError(t, err)
		assert.Nil(t, row.ListingID)
		assert.Equal(t, int64(1), row.ActiveOfferCount)
	})
}

func testFavorites(t *testing.T, store Store) {
	ctx := context.Background()
	a := mustCreateAsset(t, store, "20", testAlice)
	b := mustCreateAsset(t, store, "21", testAlice)

	require.NoError(t, store.AddFavorite(ctx, testBob, a.ID))
	require.NoError(t, store.AddFavorite(ctx, testBob, a.ID))
	require.NoError(t, store.AddFavorite(ctx, "0X2222222222222222222222222222222222222222", b.ID))

	favorites, err := store.ListFavorites(ctx, testBob)
	require.NoError(t, err)
	assert.Len(t, favorites, 2)

	require.NoError(t, store.RemoveFavorite(ctx, testBob, a.ID))
	favorites, err = store.ListFavorites(ctx, testBob)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, b.ID, favorites[0].ID)
}

func testStatsAndTrending(t *testing.T, store Store) {
	ctx := context.Background()
	a := mustCreateAsset(t, store, "30", testAlice)
	b := mustCreateAsset(t, store, "31", testBob)
	_ = mustCreateAsset(t, store, "32", testBob)

	_, err := store.CreateListing(ctx, CreateListingInput{ChainListingID: "300", AssetID: a.ID, SellerAddress: testAlice, PriceMinorUnits: "700"})
	require.NoError(t, err)
	_, err = store.CreateOffer(ctx, CreateOfferInput{ChainOfferID: "300", AssetID: b.ID, OffererAddress: testCarol, PriceMinorUnits: "5"})
	require.NoError(t, err)
	_, _, err = store.CreateTransaction(ctx, CreateTransactionInput{AssetID: &b.ID, FromAddress: testBob, ToAddress: testCarol, Kind: schema.TransactionKindSale, PriceMinorUnits: strPtr("1500")})
	require.NoError(t, err)
	_, _, err = store.CreateTransaction(ctx, CreateTransactionInput{AssetID: &b.ID, FromAddress: testBob, ToAddress: testAlice, Kind: schema.TransactionKindOfferAccepted, PriceMinorUnits: strPtr("500")})
	require.NoError(t, err)

	stats, err := store.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalAssets)
	assert.Equal(t, int64(1), stats.ActiveListings)
	assert.Equal(t, int64(1), stats.ActiveOffers)
	assert.Equal(t, int64(2), stats.TotalSales)
	assert.Equal(t, int64(2), stats.UniqueOwners)
	assert.Equal(t, "2000", stats.VolumeMinor)
	require.NotNil(t, stats.FloorMinor)
	assert.Equal(t, "700", *stats.FloorMinor)

	trending, err := store.GetTrending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, trending, 1)
	assert.Equal(t, b.ID, trending[0].ID)
	assert.Equal(t, int64(1), trending[0].OfferCount)
	assert.Equal(t, int64(2), trending[0].TransactionCount)
	assert.Equal(t, int64(3), trending[0].Score)
}

func testIntents(t *testing.T, store Store) {
	ctx := context.Background()

	input := CreateIntentInput{
		ID:             "01J00000000000000000000001",
		Kind:           schema.IntentKindBuy,
		IdempotencyKey: "buy:key",
		ActorAddress:   testBob,
		Payload:        []byte(`{"listing_id":"7"}`),
	}
	intent, created, err := store.CreateIntent(ctx, input)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, schema.IntentStatusPending, intent.Status)

	dup := input
	dup.ID = "01J00000000000000000000002"
	existing, created, err := store.CreateIntent(ctx, dup)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, intent.ID, existing.ID)

	require.NoError(t, store.UpdateIntentStatus(ctx, intent.ID, schema.IntentStatusSubmitted, strPtr("0xFEED"), nil))

	count, err := store.MarkIntentsReconciled(ctx, "0xfeed")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// The workflow confirming after the event pipeline reconciled keeps reconciled
	require.NoError(t, store.UpdateIntentStatus(ctx, intent.ID, schema.IntentStatusConfirmed, nil, nil))
	got, err := store.GetIntentByID(ctx, intent.ID)
	require.NoError(t, err)
	assert.Equal(t, schema.IntentStatusReconciled, got.Status)
	require.NotNil(t, got.ChainTxHash)
	assert.Equal(t, "0xFEED", *got.ChainTxHash)

	failed, _, err := store.CreateIntent(ctx, CreateIntentInput{ID: "01J00000000000000000000003", Kind: schema.IntentKindList, IdempotencyKey: "list:key", ActorAddress: testAlice})
	require.NoError(t, err)
	require.NoError(t, store.UpdateIntentStatus(ctx, failed.ID, schema.IntentStatusFailed, nil, strPtr("execution reverted")))
	got, err = store.GetIntentByID(ctx, failed.ID)
	require.NoError(t, err)
	assert.Equal(t, schema.IntentStatusFailed, got.Status)
	assert.Equal(t, "execution reverted", *got.Error)

	// retrying a failed request reopens the same intent
	retried, created, err := store.CreateIntent(ctx, CreateIntentInput{ID: "01J00000000000000000000005", Kind: schema.IntentKindList, IdempotencyKey: "list:key", ActorAddress: testAlice})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, failed.ID, retried.ID)
	assert.Equal(t, schema.IntentStatusPending, retried.Status)
	got, err = store.GetIntentByID(ctx, failed.ID)
	require.NoError(t, err)
	assert.Equal(t, schema.IntentStatusPending, got.Status)
	assert.Nil(t, got.Error)

	_, created, err = store.CreateIntent(ctx, CreateIntentInput{ID: "01J00000000000000000000006", Kind: schema.IntentKindList, IdempotencyKey: "list:key", ActorAddress: testAlice})
	require.NoError(t, err)
	assert.False(t, created)

	byHash, err := store.GetIntentByTxHash(ctx, schema.IntentKindBuy, "0xfeed")
	require.NoError(t, err)
	require.NotNil(t, byHash)
	assert.Equal(t, intent.ID, byHash.ID)

	none, err := store.GetIntentByTxHash(ctx, schema.IntentKindMint, "0xfeed")
	require.NoError(t, err)
	assert.Nil(t, none)

	stuck, _, err := store.CreateIntent(ctx, CreateIntentInput{ID: "01J00000000000000000000004", Kind: schema.IntentKindTransfer, IdempotencyKey: "transfer:key", ActorAddress: testAlice})
	require.NoError(t, err)
	require.NoError(t, store.UpdateIntentStatus(ctx, stuck.ID, schema.IntentStatusSubmitted, strPtr("0xBEEF"), nil))

	stale, err := store.ListStaleIntents(ctx, schema.IntentStatusSubmitted, time.Now().Add(time.Minute), 10)
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, stuck.ID, stale[0].ID)

	stale, err = store.ListStaleIntents(ctx, schema.IntentStatusSubmitted, time.Now().Add(-time.Hour), 10)
	require.NoError(t, err)
	assert.Empty(t, stale)
}

func testApplyChainEvent(t *testing.T, store Store) {
	ctx := context.Background()
	event := CreateChainEventInput{
		Chain:       string(domain.ChainHeliosTestnet),
		TxHash:      "0xdead",
		LogIndex:    1,
		BlockNumber: 42,
		EventName:   "Minted",
		Payload:     []byte(`{"token_id":"40"}`),
	}

	calls := 0
	apply := func(tx Store) error {
		calls++
		_, err := tx.CreateAsset(ctx, buildTestAsset("40", testAlice))
		return err
	}

	applied, err := store.ApplyChainEvent(ctx, event, apply)
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = store.ApplyChainEvent(ctx, event, apply)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, 1, calls)

	t.Run("failed apply leaves no ledger row", func(t *testing.T) {
		failing := event
		failing.LogIndex = 2
		boom := errors.New("boom")

		applied, err := store.ApplyChainEvent(ctx, failing, func(tx Store) error {
			_, err := tx.CreateAsset(ctx, buildTestAsset("41", testAlice))
			require.NoError(t, err)
			return boom
		})
		require.ErrorIs(t, err, boom)
		assert.False(t, applied)

		asset, err := store.GetAssetByToken(ctx, testCollection, "41")
		require.NoError(t, err)
		assert.Nil(t, asset)

		applied, err = store.ApplyChainEvent(ctx, failing, func(Store) error { return nil })
		require.NoError(t, err)
		assert.True(t, applied)
	})
}

func testWithTx(t *testing.T, store Store) {
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.WithTx(ctx, func(tx Store) error {
		_, err := tx.CreateAsset(ctx, buildTestAsset("50", testAlice))
		require.NoError(t, err)
		return boom
	})
	require.ErrorIs(t, err, boom)

	asset, err := store.GetAssetByToken(ctx, testCollection, "50")
	require.NoError(t, err)
	assert.Nil(t, asset)
}

func testKeyValueAndCursor(t *testing.T, store Store) {
	ctx := context.Background()

	value, err := store.GetKeyValue(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, store.SetKeyValue(ctx, "settings", "v1"))
	require.NoError(t, store.SetKeyValue(ctx, "settings", "v2"))
	value, err = store.GetKeyValue(ctx, "settings")
	require.NoError(t, err)
	assert.Equal(t, "v2", value)

	cursors := NewCursorStore(store)
	block, err := cursors.GetBlockCursor(ctx, domain.ChainHeliosTestnet)
	require.NoError(t, err)
	assert.Zero(t, block)

	require.NoError(t, cursors.SetBlockCursor(ctx, domain.ChainHeliosTestnet, 123456))
	block, err = cursors.GetBlockCursor(ctx, domain.ChainHeliosTestnet)
	require.NoError(t, err)
	assert.Equal(t, uint64(123456), block)
}

// RunStoreTests runs every store test against the implementation returned by initDB
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := map[string]func(t *testing.T, store Store){
		"CreateAsset":       testCreateAsset,
		"UpdateAssetOwner":  testUpdateAssetOwner,
		"Listings":          testListings,
		"Offers":            testOffers,
		"MarketReads":       testMarketReads,
		"Transactions":      testTransactions,
		"ListAssets":        testListAssets,
		"Favorites":         testFavorites,
		"StatsAndTrending":  testStatsAndTrending,
		"Intents":           testIntents,
		"ApplyChainEvent":   testApplyChainEvent,
		"WithTx":            testWithTx,
		"KeyValueAndCursor": testKeyValueAndCursor,
	}

	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			fn(t, store)
		})
	}
}

func TestNormalizeConnectionPoolSettings(t *testing.T) {
	open, idle, lifetime, idleTime := NormalizeConnectionPoolSettings(0, 0, 0, 0)
	assert.Equal(t, 20, open)
	assert.Equal(t, 5, idle)
	assert.Equal(t, 5*time.Minute, lifetime)
	assert.Equal(t, 10*time.Minute, idleTime)

	open, idle, _, _ = NormalizeConnectionPoolSettings(4, 10, time.Minute, time.Minute)
	assert.Equal(t, 4, open)
	assert.Equal(t, 4, idle, fmt.Sprintf("idle %d should be clamped to open %d", idle, open))
}
