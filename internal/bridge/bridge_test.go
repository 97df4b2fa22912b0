package bridge_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rives-io/rives-aggregator/internal/adapter"
	"github.com/rives-io/rives-aggregator/internal/bridge"
	"github.com/rives-io/rives-aggregator/internal/domain"
	"github.com/rives-io/rives-aggregator/internal/ingest"
	"github.com/rives-io/rives-aggregator/internal/logger"
	mockspkg "github.com/rives-io/rives-aggregator/internal/mocks"
	"github.com/rives-io/rives-aggregator/internal/store"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testBridgeMocks contains all the mocks needed for testing the bridge
type testBridgeMocks struct {
	ctrl      *gomock.Controller
	natsJS    *mockspkg.MockNatsJetStream
	natsConn  *mockspkg.MockNatsConn
	jetStream *mockspkg.MockJetStream
	ingestor  *mockspkg.MockIngestor
	clock     *mockspkg.MockClock
}

// setupTestBridge creates all the mocks for testing
func setupTestBridge(t *testing.T) *testBridgeMocks {
	ctrl := gomock.NewController(t)

	tm := &testBridgeMocks{
		ctrl:      ctrl,
		natsJS:    mockspkg.NewMockNatsJetStream(ctrl),
		natsConn:  mockspkg.NewMockNatsConn(ctrl),
		jetStream: mockspkg.NewMockJetStream(ctrl),
		ingestor:  mockspkg.NewMockIngestor(ctrl),
		clock:     mockspkg.NewMockClock(ctrl),
	}

	tm.clock.EXPECT().Now().Return(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Millisecond).AnyTimes()
	tm.clock.EXPECT().NewTicker(gomock.Any()).DoAndReturn(func(time.Duration) *time.Ticker {
		return time.NewTicker(time.Hour)
	}).AnyTimes()

	return tm
}

func testConfig() bridge.Config {
	return bridge.Config{
		URL:             "nats://localhost:4222",
		StreamName:      "RIVES_NOTICES",
		ConsumerName:    "notice-bridge",
		MaxReconnects:   10,
		ReconnectWait:   time.Second,
		ConnectionName:  "test-bridge",
		AckWaitTimeout:  30 * time.Second,
		MaxDeliver:      5,
		WorkerPoolSize:  2,
		WorkerQueueSize: 4,
		RetryDelay:      time.Second,
	}
}

func newBridge(t *testing.T, mocks *testBridgeMocks) bridge.Bridge {
	mocks.natsJS.
		EXPECT().
		Connect("nats://localhost:4222", gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)

	b, err := bridge.NewBridge(testConfig(), mocks.natsJS, mocks.ingestor, mocks.clock)
	require.NoError(t, err)
	require.NotNil(t, b)
	return b
}

// runWithMessages starts the bridge and delivers msgs once the consumer is up.
// The returned function cancels the bridge and waits for Run to return.
func runWithMessages(t *testing.T, mocks *testBridgeMocks, b bridge.Bridge, msgs ...adapter.Message) func() {
	ctx, cancel := context.WithCancel(context.Background())

	consumer := mockspkg.NewMockNatsConsumer(mocks.ctrl)
	consumeContext := mockspkg.NewMockConsumeContext(mocks.ctrl)
	consumeContext.EXPECT().Stop().AnyTimes()

	mocks.jetStream.EXPECT().
		CreateOrUpdateStream(gomock.Any(), gomock.Any()).
		Return(nil)
	mocks.jetStream.EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), "RIVES_NOTICES", gomock.Any()).
		Return(consumer, nil)
	consumer.EXPECT().
		Info(gomock.Any()).
		Return(&jetstream.ConsumerInfo{Name: "notice-bridge"}, nil)
	consumer.EXPECT().
		Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(handler adapter.MessageHandler, opts ...jetstream.PullConsumeOpt) (adapter.ConsumeContext, error) {
			go func() {
				for _, msg := range msgs {
					handler(msg)
				}
			}()
			return consumeContext, nil
		})

	errChan := make(chan error, 1)
	go func() {
		errChan <- b.Run(ctx)
	}()

	return func() {
		cancel()
		select {
		case err := <-errChan:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(5 * time.Second):
			t.Fatal("Test timed out")
		}
	}
}

// newMessage returns a message whose settlement is signalled on done
func newMessage(mocks *testBridgeMocks, data string) *mockspkg.MockJetStreamMessage {
	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	msg.EXPECT().Subject().Return("notices.tape").AnyTimes()
	msg.EXPECT().Data().Return([]byte(data)).AnyTimes()
	msg.EXPECT().Metadata().Return(&jetstream.MsgMetadata{NumDelivered: 1}, nil).AnyTimes()
	return msg
}

func waitFor(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("message was not settled")
	}
}

func TestBridge_NewBridge_ConnectError(t *testing.T) {
	mocks := setupTestBridge(t)

	mocks.natsJS.
		EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(nil, nil, assert.AnError)

	b, err := bridge.NewBridge(testConfig(), mocks.natsJS, mocks.ingestor, mocks.clock)

	assert.Error(t, err)
	assert.Nil(t, b)
	assert.Contains(t, err.Error(), "failed to connect to NATS")
}

func TestBridge_Run_CreateStreamError(t *testing.T) {
	mocks := setupTestBridge(t)
	b := newBridge(t, mocks)

	mocks.jetStream.EXPECT().
		CreateOrUpdateStream(gomock.Any(), jetstream.StreamConfig{
			Name:     "RIVES_NOTICES",
			Subjects: []string{bridge.NoticeSubjects},
			Storage:  jetstream.FileStorage,
		}).
		Return(assert.AnError)

	err := b.Run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create/update stream")
}

func TestBridge_Run_CreateConsumerError(t *testing.T) {
	mocks := setupTestBridge(t)
	b := newBridge(t, mocks)
	cfg := testConfig()

	mocks.jetStream.EXPECT().
		CreateOrUpdateStream(gomock.Any(), gomock.Any()).
		Return(nil)
	mocks.jetStream.EXPECT().
		CreateOrUpdateConsumer(gomock.Any(),
			"RIVES_NOTICES",
			jetstream.ConsumerConfig{
				Durable:       cfg.ConsumerName,
				AckPolicy:     jetstream.AckExplicitPolicy,
				AckWait:       cfg.AckWaitTimeout,
				MaxDeliver:    cfg.MaxDeliver,
				FilterSubject: bridge.NoticeSubjects,
			}).
		Return(nil, assert.AnError)

	err := b.Run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create/update consumer")
}

func TestBridge_Run_ConsumeError(t *testing.T) {
	mocks := setupTestBridge(t)
	b := newBridge(t, mocks)

	consumer := mockspkg.NewMockNatsConsumer(mocks.ctrl)
	mocks.jetStream.EXPECT().CreateOrUpdateStream(gomock.Any(), gomock.Any()).Return(nil)
	mocks.jetStream.EXPECT().CreateOrUpdateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).Return(consumer, nil)
	consumer.EXPECT().Info(gomock.Any()).Return(&jetstream.ConsumerInfo{Name: "notice-bridge"}, nil)
	consumer.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	err := b.Run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create subscription")
}

func TestBridge_Run_ContextCancellation(t *testing.T) {
	mocks := setupTestBridge(t)
	b := newBridge(t, mocks)

	stop := runWithMessages(t, mocks, b)
	stop()
}

func TestBridge_HandleMessage_Ack(t *testing.T) {
	mocks := setupTestBridge(t)
	b := newBridge(t, mocks)

	data := `{"kind":"tape","payload":{"id":"t1"},"input_index":1,"notice_index":0}`
	notice := &domain.Notice{Kind: domain.NoticeKindTape, InputIndex: 1}

	done := make(chan struct{})
	msg := newMessage(mocks, data)
	mocks.ingestor.EXPECT().Decode([]byte(data)).Return(notice, nil)
	mocks.ingestor.EXPECT().Ingest(gomock.Any(), notice).Return(nil)
	msg.EXPECT().Ack().DoAndReturn(func() error {
		close(done)
		return nil
	})

	stop := runWithMessages(t, mocks, b, msg)
	waitFor(t, done)
	stop()
}

func TestBridge_HandleMessage_Dispositions(t *testing.T) {
	tests := []struct {
		name      string
		kind      domain.NoticeKind
		decodeErr error
		ingestErr error
		expect    func(msg *mockspkg.MockJetStreamMessage, done chan struct{})
	}{
		{
			name:      "undecodable notice is terminated",
			decodeErr: fmt.Errorf("%w: bad json", ingest.ErrUndecodable),
			expect: func(msg *mockspkg.MockJetStreamMessage, done chan struct{}) {
				msg.EXPECT().Term().DoAndReturn(func() error { close(done); return nil })
			},
		},
		{
			name:      "unknown kind is terminated",
			decodeErr: fmt.Errorf("%w: \"spaceship\"", ingest.ErrUnknownKind),
			expect: func(msg *mockspkg.MockJetStreamMessage, done chan struct{}) {
				msg.EXPECT().Term().DoAndReturn(func() error { close(done); return nil })
			},
		},
		{
			name:      "invalid key is terminated",
			ingestErr: fmt.Errorf("%w: missing primary key", store.ErrInvalidKey),
			expect: func(msg *mockspkg.MockJetStreamMessage, done chan struct{}) {
				msg.EXPECT().Term().DoAndReturn(func() error { close(done); return nil })
			},
		},
		{
			name:      "award ahead of its achievement is retried later",
			kind:      domain.NoticeKindAwardedConsoleAchievement,
			ingestErr: fmt.Errorf("%w: console achievement first-tape", store.ErrReferentialViolation),
			expect: func(msg *mockspkg.MockJetStreamMessage, done chan struct{}) {
				msg.EXPECT().NakWithDelay(time.Second).DoAndReturn(func(time.Duration) error { close(done); return nil })
			},
		},
		{
			name:      "missing dependency is retried later",
			ingestErr: fmt.Errorf("%w: console achievement s", store.ErrNotFound),
			expect: func(msg *mockspkg.MockJetStreamMessage, done chan struct{}) {
				msg.EXPECT().NakWithDelay(time.Second).DoAndReturn(func(time.Duration) error { close(done); return nil })
			},
		},
		{
			name:      "inconsistent state is redelivered",
			ingestErr: fmt.Errorf("%w: conflict", store.ErrInconsistentState),
			expect: func(msg *mockspkg.MockJetStreamMessage, done chan struct{}) {
				msg.EXPECT().Nak().DoAndReturn(func() error { close(done); return nil })
			},
		},
		{
			name:      "storage failure is redelivered",
			ingestErr: assert.AnError,
			expect: func(msg *mockspkg.MockJetStreamMessage, done chan struct{}) {
				msg.EXPECT().Nak().DoAndReturn(func() error { close(done); return assert.AnError })
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := setupTestBridge(t)
			b := newBridge(t, mocks)

			data := `{"kind":"tape"}`
			done := make(chan struct{})
			msg := newMessage(mocks, data)

			if tt.decodeErr != nil {
				mocks.ingestor.EXPECT().Decode([]byte(data)).Return(nil, tt.decodeErr)
			} else {
				kind := tt.kind
				if kind == "" {
					kind = domain.NoticeKindTape
				}
				notice := &domain.Notice{Kind: kind}
				mocks.ingestor.EXPECT().Decode([]byte(data)).Return(notice, nil)
				mocks.ingestor.EXPECT().Ingest(gomock.Any(), notice).Return(tt.ingestErr)
			}
			tt.expect(msg, done)

			stop := runWithMessages(t, mocks, b, msg)
			waitFor(t, done)
			stop()
		})
	}
}

func TestBridge_Close(t *testing.T) {
	mocks := setupTestBridge(t)
	b := newBridge(t, mocks)

	mocks.natsConn.EXPECT().Drain().Return(nil)
	b.Close()
}

func TestBridge_Close_DrainError(t *testing.T) {
	mocks := setupTestBridge(t)
	b := newBridge(t, mocks)

	mocks.natsConn.EXPECT().Drain().Return(assert.AnError)
	mocks.natsConn.EXPECT().Close()
	b.Close()
}
