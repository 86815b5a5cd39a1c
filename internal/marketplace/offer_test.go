package marketplace_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/marketplace"
	"github.com/feral-file/ff-market/internal/store"
	"github.com/feral-file/ff-market/internal/store/schema"
)

const oneUnit = "1000000000000000000"

func TestMakeOffer(t *testing.T) {
	f := newFixture(t, bobAddr)
	f.expectIntents()
	f.expectMirror(1)
	asset := testAsset(alice)
	tx := newTx(1)

	f.store.EXPECT().GetAssetByID(gomock.Any(), asset.ID).Return(asset, nil)
	f.chain.EXPECT().OwnerOf(gomock.Any(), bigEq("7")).Return(alice, nil)
	f.chain.EXPECT().BalanceAt(gomock.Any(), bob).Return(bigInt("2000000000000000000"), nil)
	f.chain.EXPECT().MakeOffer(gomock.Any(), f.signer, asset.ContractAddress, bigEq("7"), bigEq(oneUnit)).Return(tx, nil)
	f.chain.EXPECT().WaitForReceipt(gomock.Any(), bobAddr, tx).
		Return(receiptFor(tx, offerLog(t, "OfferMade", 0, 5, bobAddr, 7, bigInt(oneUnit))), nil)

	offer := &schema.Offer{ID: uuid.New(), ChainOfferID: "5", AssetID: asset.ID, OffererAddress: bob, PriceMinorUnits: oneUnit, Active: true}
	f.store.EXPECT().CreateOffer(gomock.Any(), store.CreateOfferInput{
		ChainOfferID:    "5",
		AssetID:         asset.ID,
		OffererAddress:  bob,
		PriceMinorUnits: oneUnit,
	}).Return(offer, nil)
	f.store.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in store.CreateTransactionInput) (*schema.Transaction, bool, error) {
			assert.Equal(t, schema.TransactionKindOffer, in.Kind)
			assert.Equal(t, bob, in.FromAddress)
			assert.Equal(t, alice, in.ToAddress)
			assert.Equal(t, oneUnit, *in.PriceMinorUnits)
			return &schema.Transaction{}, true, nil
		})

	result, err := f.svc.MakeOffer(context.Background(), marketplace.MakeOfferInput{AssetID: asset.ID, Price: "1.0"})
	require.NoError(t, err)
	assert.Equal(t, "5", result.ChainOfferID)
	assert.Equal(t, offer, result.Offer)
}

func TestMakeOffer_Rejects(t *testing.T) {
	t.Run("own asset", func(t *testing.T) {
		f := newFixture(t, aliceAddr)
		asset := testAsset(alice)
		f.store.EXPECT().GetAssetByID(gomock.Any(), asset.ID).Return(asset, nil)
		f.chain.EXPECT().OwnerOf(gomock.Any(), gomock.Any()).Return(alice, nil)

		_, err := f.svc.MakeOffer(context.Background(), marketplace.MakeOfferInput{AssetID: asset.ID, Price: "1"})
		require.ErrorIs(t, err, domain.ErrSelfOffer)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		f := newFixture(t, bobAddr)
		asset := testAsset(alice)
		f.store.EXPECT().GetAssetByID(gomock.Any(), asset.ID).Return(asset, nil)
		f.chain.EXPECT().OwnerOf(gomock.Any(), gomock.Any()).Return(alice, nil)
		f.chain.EXPECT().BalanceAt(gomock.Any(), bob).Return(bigInt("1"), nil)

		_, err := f.svc.MakeOffer(context.Background(), marketplace.MakeOfferInput{AssetID: asset.ID, Price: "1"})
		require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})

	t.Run("unknown asset", func(t *testing.T) {
		f := newFixture(t, bobAddr)
		f.store.EXPECT().GetAssetByID(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := f.svc.MakeOffer(context.Background(), marketplace.MakeOfferInput{AssetID: uuid.New(), Price: "1"})
		require.ErrorIs(t, err, domain.ErrAssetNotFound)
	})
}

// expectOffer registers a mirror offer and its asset for lookups
func expectOffer(f *fixture, asset *schema.Asset, chainOfferID string, offeror string, active bool) *schema.Offer {
	offer := &schema.Offer{ID: uuid.New(), ChainOfferID: chainOfferID, AssetID: asset.ID, OffererAddress: offeror, PriceMinorUnits: oneUnit, Active: active}
	f.store.EXPECT().GetOfferByID(gomock.Any(), offer.ID).Return(offer, nil).AnyTimes()
	f.store.EXPECT().GetAssetByID(gomock.Any(), asset.ID).Return(asset, nil).AnyTimes()
	return offer
}

func TestAcceptOffer(t *testing.T) {
	f := newFixture(t, aliceAddr)
	f.expectIntents()
	f.expectMirror(1)
	asset := testAsset(alice)
	offer := expectOffer(f, asset, "5", bob, true)
	tx := newTx(1)

	f.chain.EXPECT().GetOffer(gomock.Any(), bigEq("5")).
		Return(&domain.ChainOffer{Offeror: bob, NFT: asset.ContractAddress, TokenID: bigInt("7"), Amount: bigInt(oneUnit), Active: true}, nil)
	f.chain.EXPECT().AcceptOffer(gomock.Any(), f.signer, bigEq("5")).Return(tx, nil)
	f.chain.EXPECT().WaitForReceipt(gomock.Any(), aliceAddr, tx).
		Return(receiptFor(tx, transferLog(0, aliceAddr, bobAddr, 7), offerLog(t, "OfferAccepted", 1, 5, aliceAddr, 7, bigInt(oneUnit))), nil)

	gomock.InOrder(
		f.store.EXPECT().DeactivateOfferByChainID(gomock.Any(), "5").Return(true, nil),
		f.store.EXPECT().UpdateAssetOwner(gomock.Any(), asset.ID, alice, bob).Return(true, nil),
		f.store.EXPECT().DeactivateActiveListingsForAsset(gomock.Any(), asset.ID).Return(int64(1), nil),
		f.store.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in store.CreateTransactionInput) (*schema.Transaction, bool, error) {
				assert.Equal(t, schema.TransactionKindOfferAccepted, in.Kind)
				assert.Equal(t, alice, in.FromAddress)
				assert.Equal(t, bob, in.ToAddress)
				assert.Equal(t, int64(1), int64Value(in.LogIndex))
				return &schema.Transaction{}, true, nil
			}),
	)

	result, err := f.svc.AcceptOffer(context.Background(), marketplace.AcceptOfferInput{OfferID: offer.ID})
	require.NoError(t, err)
	assert.True(t, result.MirrorSynced)
	assert.Equal(t, tx.Hash().Hex(), result.TxHash)
}

// Two offers on the same asset accepted at once: the second acceptance reverts on chain and
// writes nothing to the mirror
func TestAcceptOffer_ConcurrentAcceptsOnlyFirstWrites(t *testing.T) {
	f := newFixture(t, aliceAddr)
	f.expectIntents()
	f.expectMirror(1)
	asset := testAsset(alice)
	first := expectOffer(f, asset, "5", bob, true)
	second := expectOffer(f, asset, "6", carol, true)
	firstTx, secondTx := newTx(1), newTx(2)

	f.chain.EXPECT().GetOffer(gomock.Any(), gomock.Any()).
		Return(&domain.ChainOffer{Offeror: bob, Amount: bigInt(oneUnit), Active: true}, nil).Times(2)
	f.chain.EXPECT().AcceptOffer(gomock.Any(), f.signer, bigEq("5")).Return(firstTx, nil)
	f.chain.EXPECT().AcceptOffer(gomock.Any(), f.signer, bigEq("6")).Return(secondTx, nil)

	f.chain.EXPECT().WaitForReceipt(gomock.Any(), aliceAddr, firstTx).
		Return(receiptFor(firstTx, offerLog(t, "OfferAccepted", 0, 5, aliceAddr, 7, bigInt(oneUnit))), nil)
	f.chain.EXPECT().WaitForReceipt(gomock.Any(), aliceAddr, secondTx).
		Return(nil, &domain.RevertError{TxHash: secondTx.Hash().Hex(), Reason: "Not the owner"})

	f.store.EXPECT().DeactivateOfferByChainID(gomock.Any(), "5").Return(true, nil)
	f.store.EXPECT().UpdateAssetOwner(gomock.Any(), asset.ID, alice, bob).Return(true, nil)
	f.store.EXPECT().DeactivateActiveListingsForAsset(gomock.Any(), asset.ID).Return(int64(0), nil)
	f.store.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(&schema.Transaction{}, true, nil)

	_, err := f.svc.AcceptOffer(context.Background(), marketplace.AcceptOfferInput{OfferID: first.ID})
	require.NoError(t, err)

	_, err = f.svc.AcceptOffer(context.Background(), marketplace.AcceptOfferInput{OfferID: second.ID})
	require.ErrorIs(t, err, domain.ErrRemoteRevert)

	var revert *domain.RevertError
	require.ErrorAs(t, err, &revert)
	assert.Equal(t, "Not the owner", revert.Reason)
	assert.Contains(t, f.intentStatuses(), schema.IntentStatusFailed)
}

func TestAcceptOffer_Rejects(t *testing.T) {
	t.Run("caller does not own the asset", func(t *testing.T) {
		f := newFixture(t, carolAddr)
		offer := expectOffer(f, testAsset(alice), "5", bob, true)

		_, err := f.svc.AcceptOffer(context.Background(), marketplace.AcceptOfferInput{OfferID: offer.ID})
		require.ErrorIs(t, err, domain.ErrNotOwner)
	})

	t.Run("offer inactive on chain", func(t *testing.T) {
		f := newFixture(t, aliceAddr)
		offer := expectOffer(f, testAsset(alice), "5", bob, true)
		f.chain.EXPECT().GetOffer(gomock.Any(), bigEq("5")).Return(&domain.ChainOffer{Active: false}, nil)

		_, err := f.svc.AcceptOffer(context.Background(), marketplace.AcceptOfferInput{OfferID: offer.ID})
		require.ErrorIs(t, err, domain.ErrOfferInactive)
	})

	t.Run("unknown offer", func(t *testing.T) {
		f := newFixture(t, aliceAddr)
		f.store.EXPECT().GetOfferByID(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := f.svc.AcceptOffer(context.Background(), marketplace.AcceptOfferInput{OfferID: uuid.New()})
		require.ErrorIs(t, err, domain.ErrOfferNotFound)
	})
}

func TestCancelOffer(t *testing.T) {
	f := newFixture(t, bobAddr)
	f.expectIntents()
	f.expectMirror(1)
	asset := testAsset(alice)
	offer := expectOffer(f, asset, "5", bob, true)
	tx := newTx(1)

	f.chain.EXPECT().GetOffer(gomock.Any(), bigEq("5")).Return(&domain.ChainOffer{Offeror: bob, Amount: bigInt(oneUnit), Active: true}, nil)
	f.chain.EXPECT().CancelOffer(gomock.Any(), f.signer, bigEq("5")).Return(tx, nil)
	f.chain.EXPECT().WaitForReceipt(gomock.Any(), bobAddr, tx).Return(receiptFor(tx, offerCancelledLog(0, 5, bobAddr)), nil)
	f.store.EXPECT().DeactivateOfferByChainID(gomock.Any(), "5").Return(true, nil)
	f.store.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in store.CreateTransactionInput) (*schema.Transaction, bool, error) {
			assert.Equal(t, schema.TransactionKindOfferCancelled, in.Kind)
			assert.Equal(t, contracts.OfferBook.Hex(), in.ToAddress)
			return &schema.Transaction{}, true, nil
		})

	result, err := f.svc.CancelOffer(context.Background(), marketplace.CancelOfferInput{OfferID: offer.ID})
	require.NoError(t, err)
	assert.False(t, result.AlreadyInactive)
	assert.True(t, result.MirrorSynced)
}

func TestCancelOffer_Idempotent(t *testing.T) {
	t.Run("inactive in the mirror", func(t *testing.T) {
		f := newFixture(t, bobAddr)
		offer := expectOffer(f, testAsset(alice), "5", bob, false)

		for i := 0; i < 2; i++ {
			result, err := f.svc.CancelOffer(context.Background(), marketplace.CancelOfferInput{OfferID: offer.ID})
			require.NoError(t, err)
			assert.True(t, result.AlreadyInactive)
			assert.Empty(t, result.TxHash)
		}
	})

	t.Run("inactive on chain only", func(t *testing.T) {
		f := newFixture(t, bobAddr)
		offer := expectOffer(f, testAsset(alice), "5", bob, true)
		f.chain.EXPECT().GetOffer(gomock.Any(), bigEq("5")).Return(&domain.ChainOffer{Active: false}, nil)
		f.store.EXPECT().DeactivateOfferByChainID(gomock.Any(), "5").Return(true, nil)

		result, err := f.svc.CancelOffer(context.Background(), marketplace.CancelOfferInput{OfferID: offer.ID})
		require.NoError(t, err)
		assert.True(t, result.AlreadyInactive)
		assert.True(t, result.MirrorSynced)
	})

	t.Run("not the offeror", func(t *testing.T) {
		f := newFixture(t, carolAddr)
		offer := expectOffer(f, testAsset(alice), "5", bob, true)

		_, err := f.svc.CancelOffer(context.Background(), marketplace.CancelOfferInput{OfferID: offer.ID})
		require.ErrorIs(t, err, domain.ErrNotOfferer)
	})
}

func TestTransfer(t *testing.T) {
	f := newFixture(t, aliceAddr)
	f.expectIntents()
	f.expectMirror(1)
	asset := testAsset(alice)
	tx := newTx(1)

	f.store.EXPECT().GetAssetByID(gomock.Any(), asset.ID).Return(asset, nil)
	f.chain.EXPECT().OwnerOf(gomock.Any(), bigEq("7")).Return(alice, nil)
	f.chain.EXPECT().TransferFrom(gomock.Any(), f.signer, alice, bob, bigEq("7")).Return(tx, nil)
	f.chain.EXPECT().WaitForReceipt(gomock.Any(), aliceAddr, tx).Return(receiptFor(tx, transferLog(2, aliceAddr, bobAddr, 7)), nil)

	gomock.InOrder(
		f.store.EXPECT().UpdateAssetOwner(gomock.Any(), asset.ID, alice, bob).Return(true, nil),
		f.store.EXPECT().DeactivateActiveListingsForAsset(gomock.Any(), asset.ID).Return(int64(1), nil),
		f.store.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in store.CreateTransactionInput) (*schema.Transaction, bool, error) {
				assert.Equal(t, schema.TransactionKindTransfer, in.Kind)
				assert.Nil(t, in.PriceMinorUnits)
				assert.Equal(t, int64(2), int64Value(in.LogIndex))
				return &schema.Transaction{}, true, nil
			}),
	)

	// Lower-case input is normalized to the checksummed address
	result, err := f.svc.Transfer(context.Background(), marketplace.TransferInput{AssetID: asset.ID, To: "0x2222222222222222222222222222222222222222"})
	require.NoError(t, err)
	assert.True(t, result.MirrorSynced)
}

func TestTransfer_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		to    string
		owner string
		want  error
	}{
		{name: "malformed recipient", to: "bob", want: domain.ErrInvalidAddress},
		{name: "zero recipient", to: domain.ETHEREUM_ZERO_ADDRESS, want: domain.ErrInvalidAddress},
		{name: "self", to: alice, want: domain.ErrInvalidAddress},
		{name: "not the owner", to: bob, owner: carol, want: domain.ErrNotOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, aliceAddr)
			asset := testAsset(alice)
			f.store.EXPECT().GetAssetByID(gomock.Any(), asset.ID).Return(asset, nil).AnyTimes()
			if tt.owner != "" {
				f.chain.EXPECT().OwnerOf(gomock.Any(), gomock.Any()).Return(tt.owner, nil)
			}

			_, err := f.svc.Transfer(context.Background(), marketplace.TransferInput{AssetID: asset.ID, To: tt.to})
			require.ErrorIs(t, err, tt.want)
		})
	}
}
