package emitter_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/emitter"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/messaging"
	"github.com/feral-file/ff-market/internal/mocks"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testEmitterMocks contains all the mocks needed for testing the emitter
type testEmitterMocks struct {
	ctrl       *gomock.Controller
	subscriber *mocks.MockSubscriber
	publisher  *mocks.MockPublisher
	cursors    *mocks.MockCursorStore
	clock      *mocks.MockClock
	closed     chan struct{}
}

func setupTestEmitter(t *testing.T) *testEmitterMocks {
	ctrl := gomock.NewController(t)

	tm := &testEmitterMocks{
		ctrl:       ctrl,
		subscriber: mocks.NewMockSubscriber(ctrl),
		publisher:  mocks.NewMockPublisher(ctrl),
		cursors:    mocks.NewMockCursorStore(ctrl),
		clock:      mocks.NewMockClock(ctrl),
		closed:     make(chan struct{}),
	}
	tm.publisher.EXPECT().CloseChan().Return((<-chan struct{})(tm.closed)).AnyTimes()

	now := time.Now()
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()

	return tm
}

func (tm *testEmitterMocks) emitter(startBlock, saveFreq uint64) emitter.Emitter {
	return emitter.NewEmitter(
		tm.subscriber,
		tm.publisher,
		tm.cursors,
		emitter.Config{
			ChainID:         domain.ChainHeliosTestnet,
			StartBlock:      startBlock,
			CursorSaveFreq:  saveFreq,
			CursorSaveDelay: 5 * time.Second,
		},
		tm.clock,
	)
}

func listedEvent(block uint64) *domain.MarketplaceEvent {
	seller := "0x1111111111111111111111111111111111111111"
	return &domain.MarketplaceEvent{
		Chain:           domain.ChainHeliosTestnet,
		EventType:       domain.EventTypeListed,
		ContractAddress: domain.DEFAULT_MARKETPLACE_ADDRESS,
		NFTAddress:      domain.DEFAULT_COLLECTION_ADDRESS,
		TokenID:         "7",
		ListingID:       "1",
		FromAddress:     &seller,
		Price:           "1000000000000000000",
		TxHash:          "0xtx",
		BlockNumber:     block,
		Timestamp:       time.Now(),
	}
}

func TestEmitter_Run_WithStartBlock(t *testing.T) {
	tm := setupTestEmitter(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	event := listedEvent(1001)
	tm.subscriber.EXPECT().
		SubscribeEvents(gomock.Any(), uint64(1000), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
			_ = handler(event)
			cancel()
			return nil
		})
	tm.publisher.EXPECT().PublishEvent(gomock.Any(), event).Return(nil)
	// 1001 - 0 >= 10, so the first event saves the cursor
	tm.cursors.EXPECT().SetBlockCursor(gomock.Any(), domain.ChainHeliosTestnet, uint64(1001)).Return(nil)

	err := tm.emitter(1000, 10).Run(ctx)
	assert.Equal(t, context.Canceled, err)
}

func TestEmitter_Run_ReplaysCursorBlock(t *testing.T) {
	tm := setupTestEmitter(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tm.cursors.EXPECT().GetBlockCursor(gomock.Any(), domain.ChainHeliosTestnet).Return(uint64(500), nil)
	tm.subscriber.EXPECT().
		SubscribeEvents(gomock.Any(), uint64(500), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
			cancel()
			return nil
		})

	err := tm.emitter(0, 10).Run(ctx)
	assert.Equal(t, context.Canceled, err)
}

func TestEmitter_Run_StartsAtHeadWithoutCursor(t *testing.T) {
	tm := setupTestEmitter(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tm.cursors.EXPECT().GetBlockCursor(gomock.Any(), domain.ChainHeliosTestnet).Return(uint64(0), nil)
	tm.subscriber.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(1000), nil)
	tm.subscriber.EXPECT().
		SubscribeEvents(gomock.Any(), uint64(1000), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
			cancel()
			return nil
		})

	err := tm.emitter(0, 10).Run(ctx)
	assert.Equal(t, context.Canceled, err)
}

func TestEmitter_Run_CursorSaveByBlockFrequency(t *testing.T) {
	tm := setupTestEmitter(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tm.subscriber.EXPECT().
		SubscribeEvents(gomock.Any(), uint64(1000), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
			// 1000 and 1005 are 5 blocks apart, 1007 is not
			for _, block := range []uint64{1000, 1005, 1007} {
				if err := handler(listedEvent(block)); err != nil {
					return err
				}
			}
			cancel()
			return nil
		})
	tm.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	gomock.InOrder(
		tm.cursors.EXPECT().SetBlockCursor(gomock.Any(), domain.ChainHeliosTestnet, uint64(1000)).Return(nil),
		tm.cursors.EXPECT().SetBlockCursor(gomock.Any(), domain.ChainHeliosTestnet, uint64(1005)).Return(nil),
	)

	err := tm.emitter(1000, 5).Run(ctx)
	assert.Equal(t, context.Canceled, err)
}

func TestEmitter_Run_PublishErrorIsReturnedToSubscriber(t *testing.T) {
	tm := setupTestEmitter(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var handlerErr error
	tm.subscriber.EXPECT().
		SubscribeEvents(gomock.Any(), uint64(1000), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
			handlerErr = handler(listedEvent(1000))
			cancel()
			return nil
		})
	tm.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(errors.New("nats timeout"))

	err := tm.emitter(1000, 5).Run(ctx)
	assert.Equal(t, context.Canceled, err)
	assert.ErrorContains(t, handlerErr, "nats timeout")
}

func TestEmitter_Run_SubscriptionError(t *testing.T) {
	tm := setupTestEmitter(t)

	tm.subscriber.EXPECT().
		SubscribeEvents(gomock.Any(), uint64(1000), gomock.Any()).
		Return(domain.ErrSubscriptionFailed)

	err := tm.emitter(1000, 5).Run(context.Background())
	assert.ErrorIs(t, err, domain.ErrSubscriptionFailed)
}

func TestEmitter_Run_PublisherClosed(t *testing.T) {
	tm := setupTestEmitter(t)
	block := make(chan struct{})
	defer close(block)

	tm.subscriber.EXPECT().
		SubscribeEvents(gomock.Any(), uint64(1000), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
			<-block
			return nil
		}).AnyTimes()
	close(tm.closed)

	err := tm.emitter(1000, 5).Run(context.Background())
	assert.ErrorContains(t, err, "publisher connection closed")
}

func TestEmitter_Run_CursorError(t *testing.T) {
	tm := setupTestEmitter(t)
	tm.cursors.EXPECT().GetBlockCursor(gomock.Any(), domain.ChainHeliosTestnet).Return(uint64(0), errors.New("db down"))

	err := tm.emitter(0, 5).Run(context.Background())
	assert.ErrorContains(t, err, "failed to get block cursor")
}

func TestEmitter_Close(t *testing.T) {
	tm := setupTestEmitter(t)
	tm.subscriber.EXPECT().Close()
	tm.emitter(0, 5).Close()
}
