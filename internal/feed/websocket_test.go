package feed_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-market/internal/feed"
	"github.com/feral-file/ff-market/internal/marketplace"
	"github.com/feral-file/ff-market/internal/store"
	"github.com/feral-file/ff-market/internal/store/schema"
)

func TestServeWS_HistoryThenLiveMessages(t *testing.T) {
	tm := setupTestHub(t, feed.Config{HistoryLimit: 10})
	item := feedItem(1, schema.TransactionKindMint, strPtr("Dawn"))
	tm.store.EXPECT().ListRecentFeedItems(gomock.Any(), 3).Return([]store.TransactionFeedItem{item}, nil)

	srv := httptest.NewServer(httpHandler(tm.hub))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?limit=3"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var history struct {
		Type         string `json:"type"`
		Transactions []struct {
			ID  string `json:"id"`
			Seq int64  `json:"seq"`
		} `json:"transactions"`
	}
	require.NoError(t, conn.ReadJSON(&history))
	assert.Equal(t, "history", history.Type)
	require.Len(t, history.Transactions, 1)
	assert.Equal(t, item.ID.String(), history.Transactions[0].ID)

	require.Eventually(t, func() bool { return tm.hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)
	tm.hub.Report(context.Background(), marketplace.StatusUpdate{
		IntentID: "01J0",
		Workflow: schema.IntentKindMint,
		Phase:    marketplace.PhaseSubmitted,
	})

	var msg feed.Message
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, feed.MessageTypeStatus, msg.Type)
	require.NotNil(t, msg.Status)
	assert.Equal(t, "01J0", msg.Status.IntentID)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return tm.hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func httpHandler(hub *feed.Hub) http.Handler {
	return http.HandlerFunc(hub.ServeWS)
}
