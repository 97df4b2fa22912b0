package bridge_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rives-io/rives-aggregator/internal/adapter"
	"github.com/rives-io/rives-aggregator/internal/bridge"
	"github.com/rives-io/rives-aggregator/internal/domain"
	mockspkg "github.com/rives-io/rives-aggregator/internal/mocks"
)

const replayInput = `{"kind":"profile","payload":{"address":"0xabc"},"input_index":1,"notice_index":0}

{"kind":"spaceship","payload":{},"input_index":2,"notice_index":0}
not json
{"kind":"tape","payload":{"id":"t1"},"input_index":3,"notice_index":1}
`

func TestReplay(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mockspkg.NewMockPublisher(ctrl)

	var published []domain.NoticeKind
	publisher.EXPECT().
		PublishNotice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, notice *domain.Notice) error {
			published = append(published, notice.Kind)
			return nil
		}).
		Times(2)

	stats, err := bridge.Replay(context.Background(), strings.NewReader(replayInput), publisher, adapter.NewJSON(), false)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Published)
	assert.Equal(t, 2, stats.Skipped)
	assert.Equal(t, []domain.NoticeKind{domain.NoticeKindProfile, domain.NoticeKindTape}, published)
}

func TestReplay_Strict(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mockspkg.NewMockPublisher(ctrl)
	publisher.EXPECT().PublishNotice(gomock.Any(), gomock.Any()).Return(nil)

	stats, err := bridge.Replay(context.Background(), strings.NewReader(replayInput), publisher, adapter.NewJSON(), true)

	assert.ErrorContains(t, err, "line 3")
	assert.Equal(t, 1, stats.Published)
}

func TestReplay_PublishError(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mockspkg.NewMockPublisher(ctrl)
	publisher.EXPECT().PublishNotice(gomock.Any(), gomock.Any()).Return(errors.New("nats: timeout"))

	stats, err := bridge.Replay(context.Background(), strings.NewReader(replayInput), publisher, adapter.NewJSON(), false)

	assert.ErrorContains(t, err, "line 1")
	assert.Equal(t, 0, stats.Published)
}

func TestReplay_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mockspkg.NewMockPublisher(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bridge.Replay(ctx, strings.NewReader(replayInput), publisher, adapter.NewJSON(), false)
	assert.ErrorIs(t, err, context.Canceled)
}
