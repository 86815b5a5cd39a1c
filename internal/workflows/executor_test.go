package workflows_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/metadata"
	"github.com/feral-file/ff-market/internal/mocks"
	"github.com/feral-file/ff-market/internal/store"
	"github.com/feral-file/ff-market/internal/store/schema"
	"github.com/feral-file/ff-market/internal/workflows"
)

const (
	seller = "0x1111111111111111111111111111111111111111"
	buyer  = "0x2222222222222222222222222222222222222222"
	other  = "0x3333333333333333333333333333333333333333"
)

var collection = domain.NormalizeAddress(domain.DEFAULT_COLLECTION_ADDRESS)

// testExecutorMocks contains all the mocks needed for testing the executor
type testExecutorMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	chain    *mocks.MockEthereumClient
	metadata *mocks.MockMetadataResolver
	executor workflows.Executor
}

func setupTestExecutor(t *testing.T) *testExecutorMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)
	tm := &testExecutorMocks{
		ctrl:     ctrl,
		store:    mocks.NewMockStore(ctrl),
		chain:    mocks.NewMockEthereumClient(ctrl),
		metadata: mocks.NewMockMetadataResolver(ctrl),
	}
	tm.executor = workflows.NewExecutor(tm.store, tm.chain, tm.metadata, adapter.NewJSON())
	return tm
}

// expectLedger runs the apply callback against the same mock store, as a fresh ledger entry
func (tm *testExecutorMocks) expectLedger(t *testing.T, event *domain.MarketplaceEvent) {
	tm.store.EXPECT().
		ApplyChainEvent(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.CreateChainEventInput, apply func(store.Store) error) (bool, error) {
			assert.Equal(t, string(event.Chain), input.Chain)
			assert.Equal(t, event.TxHash, input.TxHash)
			assert.Equal(t, int64(event.LogIndex), input.LogIndex)
			assert.Equal(t, string(event.EventType), input.EventName)
			if err := apply(tm.store); err != nil {
				return false, err
			}
			return true, nil
		})
}

func addr(s string) *string {
	return &s
}

func TestApplyChainEvent_MintedRestoresIntentFields(t *testing.T) {
	tm := setupTestExecutor(t)
	ctx := context.Background()

	event := &domain.MarketplaceEvent{
		Chain:           domain.ChainHeliosTestnet,
		EventType:       domain.EventTypeMinted,
		ContractAddress: domain.DEFAULT_COLLECTION_ADDRESS,
		NFTAddress:      domain.DEFAULT_COLLECTION_ADDRESS,
		TokenID:         "9",
		ToAddress:       addr(seller),
		TokenURI:        "https://media.example/9.png",
		TxHash:          "0xmint",
		LogIndex:        1,
	}
	assetID := uuid.New()

	tm.store.EXPECT().GetIntentByTxHash(gomock.Any(), schema.IntentKindMint, "0xmint").Return(&schema.Intent{
		ID:      "01HINTENT",
		Payload: []byte(`{"name":"Dawn","description":"first light","media_uri":"https://media.example/9.png"}`),
	}, nil)
	tm.expectLedger(t, event)
	tm.store.EXPECT().CreateAsset(gomock.Any(), store.CreateAssetInput{
		ChainTokenID:    "9",
		ContractAddress: collection,
		OwnerAddress:    seller,
		Name:            "Dawn",
		Description:     "first light",
		MediaURI:        "https://media.example/9.png",
		MetadataURI:     "https://media.example/9.png",
	}).Return(&schema.Asset{ID: assetID, OwnerAddress: seller}, nil)
	tm.store.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.CreateTransactionInput) (*schema.Transaction, bool, error) {
			assert.Equal(t, schema.TransactionKindMint, input.Kind)
			assert.Equal(t, domain.ETHEREUM_ZERO_ADDRESS, input.FromAddress)
			assert.Equal(t, seller, input.ToAddress)
			assert.Equal(t, assetID, *input.AssetID)
			assert.Equal(t, int64(1), *input.LogIndex)
			return &schema.Transaction{}, true, nil
		})

	result, err := tm.executor.ApplyChainEvent(ctx, event)
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Nil(t, result.DriftAssetID)
}

func TestApplyChainEvent_MintedOutsideMarketplaceUsesTokenMetadata(t *testing.T) {
	tm := setupTestExecutor(t)

	event := &domain.MarketplaceEvent{
		Chain:           domain.ChainHeliosTestnet,
		EventType:       domain.EventTypeMinted,
		ContractAddress: domain.DEFAULT_COLLECTION_ADDRESS,
		NFTAddress:      domain.DEFAULT_COLLECTION_ADDRESS,
		TokenID:         "10",
		ToAddress:       addr(other),
		TokenURI:        "ipfs://QmToken/10.json",
		TxHash:          "0xexternal",
	}

	tm.store.EXPECT().GetIntentByTxHash(gomock.Any(), schema.IntentKindMint, "0xexternal").Return(nil, nil)
	tm.metadata.EXPECT().Resolve(gomock.Any(), "ipfs://QmToken/10.json").Return(&metadata.TokenMetadata{
		Name:        "Dusk",
		Description: "last light",
		Image:       "https://ipfs.io/ipfs/QmImage",
	}, nil)
	tm.expectLedger(t, event)
	tm.store.EXPECT().CreateAsset(gomock.Any(), store.CreateAssetInput{
		ChainTokenID:    "10",
		ContractAddress: collection,
		OwnerAddress:    other,
		Name:            "Dusk",
		Description:     "last light",
		MediaURI:        "https://ipfs.io/ipfs/QmImage",
		MetadataURI:     "ipfs://QmToken/10.json",
	}).Return(&schema.Asset{ID: uuid.New(), OwnerAddress: other}, nil)
	tm.store.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(&schema.Transaction{}, true, nil)

	result, err := tm.executor.ApplyChainEvent(context.Background(), event)
	require.NoError(t, err)
	assert.True(t, result.Applied)
}

func TestApplyChainEvent_MintedMetadataFailureKeepsTokenURI(t *testing.T) {
	tm := setupTestExecutor(t)

	event := &domain.MarketplaceEvent{
		Chain:           domain.ChainHeliosTestnet,
		EventType:       domain.EventTypeMinted,
		ContractAddress: domain.DEFAULT_COLLECTION_ADDRESS,
		NFTAddress:      domain.DEFAULT_COLLECTION_ADDRESS,
		TokenID:         "11",
		ToAddress:       addr(other),
		TokenURI:        "https://gone.example/11.json",
		TxHash:          "0xexternal2",
	}

	tm.store.EXPECT().GetIntentByTxHash(gomock.Any(), schema.IntentKindMint, "0xexternal2").Return(nil, nil)
	tm.metadata.EXPECT().Resolve(gomock.Any(), "https://gone.example/11.json").Return(nil, errors.New("connection refused"))
	tm.expectLedger(t, event)
	tm.store.EXPECT().CreateAsset(gomock.Any(), store.CreateAssetInput{
		ChainTokenID:    "11",
		ContractAddress: collection,
		OwnerAddress:    other,
		MediaURI:        "https://gone.example/11.json",
		MetadataURI:     "https://gone.example/11.json",
	}).Return(&schema.Asset{ID: uuid.New(), OwnerAddress: other}, nil)
	tm.store.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(&schema.Transaction{}, true, nil)

	_, err := tm.executor.ApplyChainEvent(context.Background(), event)
	require.NoError(t, err)
}

func TestApplyChainEvent_DuplicateIsNoop(t *testing.T) {
	tm := setupTestExecutor(t)

	event := &domain.MarketplaceEvent{
		Chain:           domain.ChainHeliosTestnet,
		EventType:       domain.EventTypeOfferCancelled,
		ContractAddress: domain.DEFAULT_OFFER_BOOK_ADDRESS,
		OfferID:         "2",
		FromAddress:     addr(buyer),
		TxHash:          "0xcancel",
	}
	tm.store.EXPECT().ApplyChainEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

	result, err := tm.executor.ApplyChainEvent(context.Background(), event)
	require.NoError(t, err)
	assert.False(t, result.Applied)
}

func TestApplyChainEvent_InvalidEventIsNonRetryable(t *testing.T) {
	tm := setupTestExecutor(t)

	_, err := tm.executor.ApplyChainEvent(context.Background(), &domain.MarketplaceEvent{
		Chain:     domain.ChainHeliosTestnet,
		EventType: domain.EventTypeSold,
		TxHash:    "0xbad",
	})
	require.Error(t, err)

	var appErr *temporal.ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.True(t, appErr.NonRetryable())
	assert.Equal(t, workflows.ErrTypeInvalidEvent, appErr.Type())
}

func transferEvent() *domain.MarketplaceEvent {
	return &domain.MarketplaceEvent{
		Chain:           domain.ChainHeliosTestnet,
		EventType:       domain.EventTypeTransfer,
		ContractAddress: domain.DEFAULT_COLLECTION_ADDRESS,
		NFTAddress:      domain.DEFAULT_COLLECTION_ADDRESS,
		TokenID:         "5",
		FromAddress:     addr(seller),
		ToAddress:       addr(buyer),
		TxHash:          "0xmove",
		LogIndex:        0,
	}
}

func TestApplyChainEvent_TransferInsideSaleSkipsRow(t *testing.T) {
	tm := setupTestExecutor(t)
	event := transferEvent()
	asset := &schema.Asset{ID: uuid.New(), OwnerAddress: seller}

	tm.chain.EXPECT().GetTransactionEvents(gomock.Any(), "0xmove").Return([]domain.MarketplaceEvent{
		*event,
		{EventType: domain.EventTypeSold, ListingID: "4"},
	}, nil)
	tm.expectLedger(t, event)
	tm.store.EXPECT().GetAssetByToken(gomock.Any(), collection, "5").Return(asset, nil)
	tm.store.EXPECT().UpdateAssetOwner(gomock.Any(), asset.ID, seller, buyer).Return(true, nil)
	tm.store.EXPECT().DeactivateActiveListingsForAsset(gomock.Any(), asset.ID).Return(int64(1), nil)

	result, err := tm.executor.ApplyChainEvent(context.Background(), event)
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Nil(t, result.DriftAssetID)
}

func TestApplyChainEvent_TransferFlagsOwnerDrift(t *testing.T) {
	tm := setupTestExecutor(t)
	event := transferEvent()
	asset := &schema.Asset{ID: uuid.New(), OwnerAddress: other}

	tm.chain.EXPECT().GetTransactionEvents(gomock.Any(), "0xmove").Return([]domain.MarketplaceEvent{*event}, nil)
	tm.expectLedger(t, event)
	tm.store.EXPECT().GetAssetByToken(gomock.Any(), collection, "5").Return(asset, nil)
	tm.store.EXPECT().UpdateAssetOwner(gomock.Any(), asset.ID, seller, buyer).Return(false, nil)
	tm.store.EXPECT().DeactivateActiveListingsForAsset(gomock.Any(), asset.ID).Return(int64(0), nil)
	tm.store.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.CreateTransactionInput) (*schema.Transaction, bool, error) {
			assert.Equal(t, schema.TransactionKindTransfer, input.Kind)
			assert.Equal(t, seller, input.FromAddress)
			assert.Equal(t, buyer, input.ToAddress)
			assert.Nil(t, input.PriceMinorUnits)
			return &schema.Transaction{}, true, nil
		})

	result, err := tm.executor.ApplyChainEvent(context.Background(), event)
	require.NoError(t, err)
	require.NotNil(t, result.DriftAssetID)
	assert.Equal(t, asset.ID, *result.DriftAssetID)
}

func TestApplyChainEvent_TransferFromZeroIsSkipped(t *testing.T) {
	tm := setupTestExecutor(t)
	event := transferEvent()
	event.FromAddress = addr(domain.ETHEREUM_ZERO_ADDRESS)

	tm.chain.EXPECT().GetTransactionEvents(gomock.Any(), "0xmove").Return(nil, nil)
	tm.expectLedger(t, event)

	result, err := tm.executor.ApplyChainEvent(context.Background(), event)
	require.NoError(t, err)
	assert.True(t, result.Applied)
}

func TestApplyChainEvent_ListedCreatesBareAsset(t *testing.T) {
	tm := setupTestExecutor(t)
	event := &domain.MarketplaceEvent{
		Chain:           domain.ChainHeliosTestnet,
		EventType:       domain.EventTypeListed,
		ContractAddress: domain.DEFAULT_MARKETPLACE_ADDRESS,
		NFTAddress:      domain.DEFAULT_COLLECTION_ADDRESS,
		TokenID:         "5",
		ListingID:       "4",
		FromAddress:     addr(seller),
		Price:           "2500000000000000000",
		TxHash:          "0xlist",
		LogIndex:        2,
	}
	assetID := uuid.New()

	tm.expectLedger(t, event)
	tm.store.EXPECT().GetAssetByToken(gomock.Any(), collection, "5").Return(nil, nil)
	tm.store.EXPECT().CreateAsset(gomock.Any(), store.CreateAssetInput{
		ChainTokenID:    "5",
		ContractAddress: collection,
		OwnerAddress:    seller,
	}).Return(&schema.Asset{ID: assetID, OwnerAddress: seller}, nil)
	tm.store.EXPECT().CreateListing(gomock.Any(), store.CreateListingInput{
		ChainListingID:  "4",
		AssetID:         assetID,
		SellerAddress:   seller,
		PriceMinorUnits: "2500000000000000000",
	}).Return(&schema.Listing{ID: uuid.New()}, nil)
	tm.store.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.CreateTransactionInput) (*schema.Transaction, bool, error) {
			assert.Equal(t, schema.TransactionKindListing, input.Kind)
			assert.Equal(t, domain.NormalizeAddress(domain.DEFAULT_MARKETPLACE_ADDRESS), input.ToAddress)
			assert.Equal(t, "2500000000000000000", *input.PriceMinorUnits)
			return &schema.Transaction{}, true, nil
		})

	_, err := tm.executor.ApplyChainEvent(context.Background(), event)
	require.NoError(t, err)
}

func TestApplyChainEvent_SoldForUnmirroredListing(t *testing.T) {
	tm := setupTestExecutor(t)
	event := soldEvent()
	assetID := uuid.New()

	tm.store.EXPECT().GetListingByChainID(gomock.Any(), "4").Return(nil, nil).Times(2)
	tm.chain.EXPECT().GetListing(gomock.Any(), big.NewInt(4)).Return(&domain.ChainListing{
		ListingID: big.NewInt(4),
		Seller:    seller,
		NFT:       domain.DEFAULT_COLLECTION_ADDRESS,
		TokenID:   big.NewInt(5),
		Price:     big.NewInt(0),
		Active:    false,
	}, nil)
	tm.expectLedger(t, event)
	tm.store.EXPECT().GetAssetByToken(gomock.Any(), collection, "5").Return(nil, nil)
	tm.store.EXPECT().CreateAsset(gomock.Any(), gomock.Any()).
		Return(&schema.Asset{ID: assetID, OwnerAddress: buyer}, nil)
	tm.store.EXPECT().DeactivateListingByChainID(gomock.Any(), "4").Return(false, nil)
	tm.store.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.CreateTransactionInput) (*schema.Transaction, bool, error) {
			assert.Equal(t, schema.TransactionKindSale, input.Kind)
			assert.Equal(t, seller, input.FromAddress)
			assert.Equal(t, buyer, input.ToAddress)
			assert.Equal(t, "2500000000000000000", *input.PriceMinorUnits)
			return &schema.Transaction{}, false, nil
		})

	result, err := tm.executor.ApplyChainEvent(context.Background(), event)
	require.NoError(t, err)
	assert.Nil(t, result.DriftAssetID)
}

func TestApplyChainEvent_SoldMovesMirroredOwner(t *testing.T) {
	tm := setupTestExecutor(t)
	event := soldEvent()
	listing := &schema.Listing{ID: uuid.New(), ChainListingID: "4", AssetID: uuid.New(), SellerAddress: seller, Active: true}

	tm.store.EXPECT().GetListingByChainID(gomock.Any(), "4").Return(listing, nil).Times(2)
	tm.expectLedger(t, event)
	tm.store.EXPECT().GetAssetByID(gomock.Any(), listing.AssetID).
		Return(&schema.Asset{ID: listing.AssetID, OwnerAddress: seller}, nil)
	tm.store.EXPECT().DeactivateListingByChainID(gomock.Any(), "4").Return(true, nil)
	tm.store.EXPECT().UpdateAssetOwner(gomock.Any(), listing.AssetID, seller, buyer).Return(true, nil)
	tm.store.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(&schema.Transaction{}, true, nil)

	_, err := tm.executor.ApplyChainEvent(context.Background(), event)
	require.NoError(t, err)
}

func TestApplyChainEvent_OfferAccepted(t *testing.T) {
	tm := setupTestExecutor(t)
	event := &domain.MarketplaceEvent{
		Chain:           domain.ChainHeliosTestnet,
		EventType:       domain.EventTypeOfferAccepted,
		ContractAddress: domain.DEFAULT_OFFER_BOOK_ADDRESS,
		NFTAddress:      domain.DEFAULT_COLLECTION_ADDRESS,
		TokenID:         "5",
		OfferID:         "7",
		FromAddress:     addr(seller),
		Price:           "1000000000000000000",
		TxHash:          "0xaccept",
		LogIndex:        4,
	}
	offer := &schema.Offer{ID: uuid.New(), ChainOfferID: "7", OffererAddress: buyer, Active: true}
	asset := &schema.Asset{ID: uuid.New(), OwnerAddress: seller}

	tm.store.EXPECT().GetOfferByChainID(gomock.Any(), "7").Return(offer, nil).Times(2)
	tm.expectLedger(t, event)
	tm.store.EXPECT().GetAssetByToken(gomock.Any(), collection, "5").Return(asset, nil)
	gomock.InOrder(
		tm.store.EXPECT().DeactivateOfferByChainID(gomock.Any(), "7").Return(true, nil),
		tm.store.EXPECT().UpdateAssetOwner(gomock.Any(), asset.ID, seller, buyer).Return(true, nil),
		tm.store.EXPECT().DeactivateActiveListingsForAsset(gomock.Any(), asset.ID).Return(int64(0), nil),
		tm.store.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input store.CreateTransactionInput) (*schema.Transaction, bool, error) {
				assert.Equal(t, schema.TransactionKindOfferAccepted, input.Kind)
				assert.Equal(t, seller, input.FromAddress)
				assert.Equal(t, buyer, input.ToAddress)
				return &schema.Transaction{}, true, nil
			}),
	)

	_, err := tm.executor.ApplyChainEvent(context.Background(), event)
	require.NoError(t, err)
}

func TestApplyChainEvent_OfferCancelledUnknownOffer(t *testing.T) {
	tm := setupTestExecutor(t)
	event := &domain.MarketplaceEvent{
		Chain:           domain.ChainHeliosTestnet,
		EventType:       domain.EventTypeOfferCancelled,
		ContractAddress: domain.DEFAULT_OFFER_BOOK_ADDRESS,
		OfferID:         "8",
		FromAddress:     addr(buyer),
		TxHash:          "0xcancel",
	}

	tm.expectLedger(t, event)
	tm.store.EXPECT().GetOfferByChainID(gomock.Any(), "8").Return(nil, nil)
	tm.store.EXPECT().DeactivateOfferByChainID(gomock.Any(), "8").Return(false, nil)

	_, err := tm.executor.ApplyChainEvent(context.Background(), event)
	require.NoError(t, err)
}

func TestApplyChainEvent_ApplyErrorRollsBack(t *testing.T) {
	tm := setupTestExecutor(t)
	event := &domain.MarketplaceEvent{
		Chain:           domain.ChainHeliosTestnet,
		EventType:       domain.EventTypeOfferCancelled,
		ContractAddress: domain.DEFAULT_OFFER_BOOK_ADDRESS,
		OfferID:         "8",
		FromAddress:     addr(buyer),
		TxHash:          "0xcancel",
	}

	tm.expectLedger(t, event)
	tm.store.EXPECT().GetOfferByChainID(gomock.Any(), "8").Return(nil, errors.New("connection reset"))

	_, err := tm.executor.ApplyChainEvent(context.Background(), event)
	assert.ErrorContains(t, err, "connection reset")
}

func TestSyncAssetOwner(t *testing.T) {
	ctx := context.Background()
	asset := &schema.Asset{ID: uuid.New(), ChainTokenID: "5", OwnerAddress: other}

	t.Run("repairs drift", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.store.EXPECT().GetAssetByID(gomock.Any(), asset.ID).Return(asset, nil)
		tm.chain.EXPECT().OwnerOf(gomock.Any(), big.NewInt(5)).Return(buyer, nil)
		tm.store.EXPECT().UpdateAssetOwner(gomock.Any(), asset.ID, other, buyer).Return(true, nil)

		require.NoError(t, tm.executor.SyncAssetOwner(ctx, asset.ID))
	})

	t.Run("already in sync", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.store.EXPECT().GetAssetByID(gomock.Any(), asset.ID).Return(asset, nil)
		tm.chain.EXPECT().OwnerOf(gomock.Any(), big.NewInt(5)).Return(other, nil)

		require.NoError(t, tm.executor.SyncAssetOwner(ctx, asset.ID))
	})

	t.Run("concurrent change is retried", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.store.EXPECT().GetAssetByID(gomock.Any(), asset.ID).Return(asset, nil)
		tm.chain.EXPECT().OwnerOf(gomock.Any(), big.NewInt(5)).Return(buyer, nil)
		tm.store.EXPECT().UpdateAssetOwner(gomock.Any(), asset.ID, other, buyer).Return(false, nil)

		assert.ErrorContains(t, tm.executor.SyncAssetOwner(ctx, asset.ID), "owner changed while syncing")
	})

	t.Run("missing asset", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.store.EXPECT().GetAssetByID(gomock.Any(), asset.ID).Return(nil, nil)

		err := tm.executor.SyncAssetOwner(ctx, asset.ID)
		var appErr *temporal.ApplicationError
		require.True(t, errors.As(err, &appErr))
		assert.True(t, appErr.NonRetryable())
	})
}

func TestMarkIntentsReconciled(t *testing.T) {
	tm := setupTestExecutor(t)
	ctx := context.Background()

	tm.store.EXPECT().MarkIntentsReconciled(gomock.Any(), "0xsale").Return(int64(2), nil)
	count, err := tm.executor.MarkIntentsReconciled(ctx, "0xsale")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	tm.store.EXPECT().MarkIntentsReconciled(gomock.Any(), "0xsale").Return(int64(0), errors.New("db down"))
	_, err = tm.executor.MarkIntentsReconciled(ctx, "0xsale")
	assert.ErrorContains(t, err, "failed to mark intents reconciled")
}
