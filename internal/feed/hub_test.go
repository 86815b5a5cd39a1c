package feed_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-market/internal/feed"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/marketplace"
	"github.com/feral-file/ff-market/internal/mocks"
	"github.com/feral-file/ff-market/internal/store"
	"github.com/feral-file/ff-market/internal/store/schema"
	"github.com/feral-file/ff-market/internal/wallet"
)

const (
	alice = "0x1111111111111111111111111111111111111111"
	bob   = "0x2222222222222222222222222222222222222222"
)

type testHubMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	listener *mocks.MockFeedListener
	hub      *feed.Hub
}

func setupTestHub(t *testing.T, cfg feed.Config) *testHubMocks {
	_ = logger.Initialize(logger.Config{Debug: false})

	ctrl := gomock.NewController(t)
	tm := &testHubMocks{
		ctrl:     ctrl,
		store:    mocks.NewMockStore(ctrl),
		listener: mocks.NewMockFeedListener(ctrl),
	}
	hub, err := feed.NewHub(cfg, tm.store, tm.listener)
	require.NoError(t, err)
	tm.hub = hub
	return tm
}

func feedItem(seq int64, kind schema.TransactionKind, name *string) store.TransactionFeedItem {
	assetID := uuid.New()
	return store.TransactionFeedItem{
		Transaction: schema.Transaction{
			ID:          uuid.New(),
			Seq:         seq,
			AssetID:     &assetID,
			FromAddress: alice,
			ToAddress:   bob,
			Kind:        kind,
			CreatedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		},
		AssetName: name,
	}
}

func strPtr(s string) *string { return &s }

// runWith drives the hub with a listener that connects once and delivers payloads
func (tm *testHubMocks) runWith(t *testing.T, connects int, payloads ...string) {
	tm.listener.EXPECT().Listen(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, onConnect func(context.Context), onNotify func(context.Context, string)) error {
			for i := 0; i < connects; i++ {
				onConnect(ctx)
			}
			for _, p := range payloads {
				onNotify(ctx, p)
			}
			return context.Canceled
		})
	assert.ErrorIs(t, tm.hub.Run(context.Background()), context.Canceled)
}

func receive(t *testing.T, client *feed.Client) feed.Message {
	t.Helper()
	select {
	case msg := <-client.Messages():
		return msg
	case <-time.After(time.Second):
		t.Fatal("no message queued")
		return feed.Message{}
	}
}

func assertEmpty(t *testing.T, client *feed.Client) {
	t.Helper()
	select {
	case msg := <-client.Messages():
		t.Fatalf("unexpected message %+v", msg)
	default:
	}
}

func TestHub_RegisterReturnsHistory(t *testing.T) {
	tm := setupTestHub(t, feed.Config{HistoryLimit: 20})
	items := []store.TransactionFeedItem{
		feedItem(1, schema.TransactionKindMint, strPtr("Dawn")),
		feedItem(2, schema.TransactionKindListing, strPtr("Dawn")),
	}
	tm.store.EXPECT().ListRecentFeedItems(gomock.Any(), 5).Return(items, nil)

	client, history, err := tm.hub.Register(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, int64(2), history[1].Seq)
	assert.Equal(t, 1, tm.hub.ClientCount())

	tm.hub.Unregister(client)
	tm.hub.Unregister(client)
	assert.Equal(t, 0, tm.hub.ClientCount())
	<-client.Done()
}

func TestHub_HistoryLimitIsCapped(t *testing.T) {
	tm := setupTestHub(t, feed.Config{HistoryLimit: 20})
	tm.store.EXPECT().ListRecentFeedItems(gomock.Any(), 20).Return(nil, nil).Times(2)

	_, err := tm.hub.History(context.Background(), 500)
	require.NoError(t, err)
	_, err = tm.hub.History(context.Background(), 0)
	require.NoError(t, err)
}

func TestHub_RegisterHistoryError(t *testing.T) {
	tm := setupTestHub(t, feed.Config{})
	tm.store.EXPECT().ListRecentFeedItems(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	client, _, err := tm.hub.Register(context.Background(), 10)
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Equal(t, 0, tm.hub.ClientCount())
}

func TestHub_NotificationIsBroadcastWithToast(t *testing.T) {
	tm := setupTestHub(t, feed.Config{})
	tm.store.EXPECT().ListRecentFeedItems(gomock.Any(), gomock.Any()).Return(nil, nil)
	client, _, err := tm.hub.Register(context.Background(), 10)
	require.NoError(t, err)

	sale := feedItem(7, schema.TransactionKindSale, strPtr("Dawn"))
	sale.PriceMinorUnits = strPtr("1500000000000000000")
	tm.store.EXPECT().ListRecentFeedItems(gomock.Any(), 1).Return(nil, nil)
	tm.store.EXPECT().GetTransactionFeedItem(gomock.Any(), sale.ID).Return(&sale, nil)

	tm.runWith(t, 1, sale.ID.String())

	msg := receive(t, client)
	assert.Equal(t, feed.MessageTypeTransaction, msg.Type)
	require.NotNil(t, msg.Transaction)
	assert.Equal(t, sale.ID.String(), msg.Transaction.ID)
	require.NotNil(t, msg.Transaction.Price)
	assert.Equal(t, "1.5", *msg.Transaction.Price)

	toast := receive(t, client)
	assert.Equal(t, feed.MessageTypeToast, toast.Type)
	require.NotNil(t, toast.Toast)
	assert.Equal(t, "New sale: Dawn", toast.Toast.Title)
	assert.Equal(t, "0x1111...1111 → 0x2222...2222", toast.Toast.Description)
}

func TestHub_NoToastWithoutAsset(t *testing.T) {
	tm := setupTestHub(t, feed.Config{})
	tm.store.EXPECT().ListRecentFeedItems(gomock.Any(), gomock.Any()).Return(nil, nil)
	client, _, err := tm.hub.Register(context.Background(), 10)
	require.NoError(t, err)

	item := feedItem(3, schema.TransactionKindTransfer, nil)
	item.AssetID = nil
	tm.store.EXPECT().GetTransactionFeedItem(gomock.Any(), item.ID).Return(&item, nil)

	tm.runWith(t, 0, item.ID.String())

	msg := receive(t, client)
	assert.Equal(t, feed.MessageTypeTransaction, msg.Type)
	assertEmpty(t, client)
}

func TestHub_DuplicateAndInvalidNotifications(t *testing.T) {
	tm := setupTestHub(t, feed.Config{})
	tm.store.EXPECT().ListRecentFeedItems(gomock.Any(), gomock.Any()).Return(nil, nil)
	client, _, err := tm.hub.Register(context.Background(), 10)
	require.NoError(t, err)

	item := feedItem(4, schema.TransactionKindMint, nil)
	missing := uuid.New()
	tm.store.EXPECT().GetTransactionFeedItem(gomock.Any(), item.ID).Return(&item, nil).Times(1)
	tm.store.EXPECT().GetTransactionFeedItem(gomock.Any(), missing).Return(nil, nil)

	tm.runWith(t, 0, item.ID.String(), "not-a-uuid", item.ID.String(), missing.String())

	receive(t, client)
	assertEmpty(t, client)
}

func TestHub_SkipsTransactionsCoveredByHistory(t *testing.T) {
	tm := setupTestHub(t, feed.Config{})
	old := feedItem(10, schema.TransactionKindMint, nil)
	tm.store.EXPECT().ListRecentFeedItems(gomock.Any(), gomock.Any()).Return([]store.TransactionFeedItem{old}, nil)
	client, _, err := tm.hub.Register(context.Background(), 10)
	require.NoError(t, err)

	newer := feedItem(11, schema.TransactionKindListing, nil)
	tm.store.EXPECT().GetTransactionFeedItem(gomock.Any(), old.ID).Return(&old, nil)
	tm.store.EXPECT().GetTransactionFeedItem(gomock.Any(), newer.ID).Return(&newer, nil)

	tm.runWith(t, 0, old.ID.String(), newer.ID.String())

	msg := receive(t, client)
	assert.Equal(t, newer.ID.String(), msg.Transaction.ID)
	assertEmpty(t, client)
}

func TestHub_BackfillAfterReconnect(t *testing.T) {
	tm := setupTestHub(t, feed.Config{HistoryLimit: 2})
	tm.store.EXPECT().ListRecentFeedItems(gomock.Any(), gomock.Any()).Return(nil, nil)
	client, _, err := tm.hub.Register(context.Background(), 10)
	require.NoError(t, err)

	first := feedItem(5, schema.TransactionKindMint, nil)
	missed := []store.TransactionFeedItem{
		feedItem(6, schema.TransactionKindListing, nil),
		feedItem(7, schema.TransactionKindSale, nil),
	}
	tail := []store.TransactionFeedItem{feedItem(8, schema.TransactionKindTransfer, nil)}

	tm.store.EXPECT().ListRecentFeedItems(gomock.Any(), 1).Return(nil, nil)
	tm.store.EXPECT().GetTransactionFeedItem(gomock.Any(), first.ID).Return(&first, nil)
	gomock.InOrder(
		tm.store.EXPECT().ListFeedItemsAfter(gomock.Any(), int64(5), 2).Return(missed, nil),
		tm.store.EXPECT().ListFeedItemsAfter(gomock.Any(), int64(7), 2).Return(tail, nil),
	)

	tm.listener.EXPECT().Listen(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, onConnect func(context.Context), onNotify func(context.Context, string)) error {
			// empty table, nothing to replay
			onConnect(ctx)
			onNotify(ctx, first.ID.String())
			onConnect(ctx)
			return context.Canceled
		})
	_ = tm.hub.Run(context.Background())

	var seqs []int64
	for i := 0; i < 4; i++ {
		seqs = append(seqs, receive(t, client).Transaction.Seq)
	}
	assert.Equal(t, []int64{5, 6, 7, 8}, seqs)
}

func TestHub_BackfillBeforeFirstDelivery(t *testing.T) {
	tm := setupTestHub(t, feed.Config{HistoryLimit: 10})
	tm.store.EXPECT().ListRecentFeedItems(gomock.Any(), gomock.Any()).Return(nil, nil)
	client, _, err := tm.hub.Register(context.Background(), 10)
	require.NoError(t, err)

	latest := feedItem(41, schema.TransactionKindMint, nil)
	missed := feedItem(42, schema.TransactionKindListing, nil)
	tm.store.EXPECT().ListRecentFeedItems(gomock.Any(), 1).Return([]store.TransactionFeedItem{latest}, nil)
	tm.store.EXPECT().ListFeedItemsAfter(gomock.Any(), int64(41), 10).Return([]store.TransactionFeedItem{missed}, nil)

	// dropped before anything was delivered, row 42 inserted while disconnected
	tm.runWith(t, 2)

	msg := receive(t, client)
	require.NotNil(t, msg.Transaction)
	assert.Equal(t, int64(42), msg.Transaction.Seq)
	assertEmpty(t, client)
}

func TestHub_SeedErrorRetriedOnNextConnect(t *testing.T) {
	tm := setupTestHub(t, feed.Config{HistoryLimit: 10})
	latest := feedItem(41, schema.TransactionKindMint, nil)
	gomock.InOrder(
		tm.store.EXPECT().ListRecentFeedItems(gomock.Any(), 1).Return(nil, errors.New("connection reset")),
		tm.store.EXPECT().ListRecentFeedItems(gomock.Any(), 1).Return([]store.TransactionFeedItem{latest}, nil),
		tm.store.EXPECT().ListFeedItemsAfter(gomock.Any(), int64(41), 10).Return(nil, nil),
	)

	tm.runWith(t, 3)
}

func TestHub_DropsSlowClients(t *testing.T) {
	tm := setupTestHub(t, feed.Config{ClientBufferSize: 1})
	tm.store.EXPECT().ListRecentFeedItems(gomock.Any(), gomock.Any()).Return(nil, nil)
	client, _, err := tm.hub.Register(context.Background(), 10)
	require.NoError(t, err)

	tm.hub.PublishSession(wallet.SessionState{Connected: true, Address: alice})
	tm.hub.PublishSession(wallet.SessionState{})

	select {
	case <-client.Done():
	case <-time.After(time.Second):
		t.Fatal("slow client was not dropped")
	}
	assert.Equal(t, 0, tm.hub.ClientCount())
}

func TestHub_ReportBroadcastsStatus(t *testing.T) {
	tm := setupTestHub(t, feed.Config{})
	tm.store.EXPECT().ListRecentFeedItems(gomock.Any(), gomock.Any()).Return(nil, nil)
	client, _, err := tm.hub.Register(context.Background(), 10)
	require.NoError(t, err)

	var reporter marketplace.StatusReporter = tm.hub
	reporter.Report(context.Background(), marketplace.StatusUpdate{
		IntentID: "01J0",
		Workflow: schema.IntentKindBuy,
		Phase:    marketplace.PhaseConfirming,
		TxHash:   "0xabc",
	})

	msg := receive(t, client)
	assert.Equal(t, feed.MessageTypeStatus, msg.Type)
	require.NotNil(t, msg.Status)
	assert.Equal(t, "0xabc", msg.Status.TxHash)
}

func TestHub_RunWithoutListener(t *testing.T) {
	hub, err := feed.NewHub(feed.Config{}, nil, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, hub.Run(ctx), context.Canceled)
}
