package jetstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rives-io/rives-aggregator/internal/adapter"
	"github.com/rives-io/rives-aggregator/internal/domain"
	"github.com/rives-io/rives-aggregator/internal/messaging"
	mockspkg "github.com/rives-io/rives-aggregator/internal/mocks"
	"github.com/rives-io/rives-aggregator/internal/providers/jetstream"
)

type testPublisherMocks struct {
	ctrl   *gomock.Controller
	natsJS *mockspkg.MockNatsJetStream
	conn   *mockspkg.MockNatsConn
	js     *mockspkg.MockJetStream
}

func setupTestPublisher(t *testing.T) *testPublisherMocks {
	ctrl := gomock.NewController(t)
	return &testPublisherMocks{
		ctrl:   ctrl,
		natsJS: mockspkg.NewMockNatsJetStream(ctrl),
		conn:   mockspkg.NewMockNatsConn(ctrl),
		js:     mockspkg.NewMockJetStream(ctrl),
	}
}

func (m *testPublisherMocks) connect(t *testing.T) messaging.Publisher {
	m.natsJS.EXPECT().
		Connect("nats://localhost:4222", gomock.Any()).
		Return(m.conn, m.js, nil)

	pub, err := jetstream.NewPublisher(jetstream.Config{URL: "nats://localhost:4222"}, m.natsJS, adapter.NewJSON())
	require.NoError(t, err)
	return pub
}

func TestNewPublisher_ConnectError(t *testing.T) {
	mocks := setupTestPublisher(t)
	mocks.natsJS.EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(nil, nil, errors.New("no servers available"))

	pub, err := jetstream.NewPublisher(jetstream.Config{URL: "nats://localhost:4222"}, mocks.natsJS, adapter.NewJSON())

	assert.Error(t, err)
	assert.Nil(t, pub)
}

func TestPublishNotice(t *testing.T) {
	mocks := setupTestPublisher(t)
	pub := mocks.connect(t)

	notice := &domain.Notice{
		Kind:        domain.NoticeKindTape,
		Payload:     json.RawMessage(`{"id":"t1"}`),
		InputIndex:  4,
		NoticeIndex: 1,
	}

	mocks.js.EXPECT().
		Publish(gomock.Any(), "notices.tape", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
			var published domain.Notice
			require.NoError(t, json.Unmarshal(data, &published))
			assert.Equal(t, domain.NoticeKindTape, published.Kind)
			assert.Equal(t, uint64(4), published.InputIndex)
			assert.JSONEq(t, `{"id":"t1"}`, string(published.Payload))
			return &natsjs.PubAck{Stream: "RIVES_NOTICES", Sequence: 9}, nil
		})

	assert.NoError(t, pub.PublishNotice(context.Background(), notice))
}

func TestPublishNotice_Errors(t *testing.T) {
	mocks := setupTestPublisher(t)
	pub := mocks.connect(t)

	t.Run("unknown kind", func(t *testing.T) {
		err := pub.PublishNotice(context.Background(), &domain.Notice{Kind: "spaceship"})
		assert.Error(t, err)
	})

	t.Run("publish fails", func(t *testing.T) {
		mocks.js.EXPECT().
			Publish(gomock.Any(), "notices.profile", gomock.Any(), gomock.Any()).
			Return(nil, errors.New("timeout"))

		err := pub.PublishNotice(context.Background(), &domain.Notice{
			Kind:    domain.NoticeKindProfile,
			Payload: json.RawMessage(`{"address":"0xabc"}`),
		})
		assert.ErrorContains(t, err, "failed to publish notice")
	})
}

func TestPublisherClose(t *testing.T) {
	t.Run("drains", func(t *testing.T) {
		mocks := setupTestPublisher(t)
		pub := mocks.connect(t)

		mocks.conn.EXPECT().Drain().Return(nil)
		pub.Close()
	})

	t.Run("falls back to close", func(t *testing.T) {
		mocks := setupTestPublisher(t)
		pub := mocks.connect(t)

		mocks.conn.EXPECT().Drain().Return(errors.New("connection closed"))
		mocks.conn.EXPECT().Close()
		pub.Close()
	})
}
