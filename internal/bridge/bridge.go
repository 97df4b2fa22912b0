package bridge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/rives-io/rives-aggregator/internal/adapter"
	"github.com/rives-io/rives-aggregator/internal/ingest"
	"github.com/rives-io/rives-aggregator/internal/logger"
	"github.com/rives-io/rives-aggregator/internal/store"
)

const (
	// NoticeSubjects is the subject space of the notice stream
	NoticeSubjects = "notices.>"

	DEFAULT_WORKER_POOL_SIZE  = 8
	DEFAULT_WORKER_QUEUE_SIZE = 256
	DEFAULT_RETRY_DELAY       = 5 * time.Second

	metricsInterval = 30 * time.Second
)

// Config holds the configuration for the notice bridge
type Config struct {
	URL             string
	StreamName      string
	ConsumerName    string
	SubjectFilter   string
	MaxReconnects   int
	ReconnectWait   time.Duration
	ConnectionName  string
	AckWaitTimeout  time.Duration
	MaxDeliver      int
	WorkerPoolSize  int
	WorkerQueueSize int
	// RetryDelay is how long a notice waits before redelivery when it arrived
	// ahead of a row it depends on
	RetryDelay time.Duration
}

// Bridge consumes the notice stream and applies every notice to the store
type Bridge interface {
	// Run consumes notices until ctx is cancelled
	Run(ctx context.Context) error
	// Close closes the bridge and cleans up resources
	Close()
}

type bridge struct {
	nc       adapter.NatsConn
	js       adapter.JetStream
	ingestor ingest.Ingestor
	clock    adapter.Clock
	config   Config
}

// NewBridge connects to NATS and creates a new notice bridge
func NewBridge(
	cfg Config,
	natsJS adapter.NatsJetStream,
	ingestor ingest.Ingestor,
	clock adapter.Clock,
) (Bridge, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	if cfg.SubjectFilter == "" {
		cfg.SubjectFilter = NoticeSubjects
	}
	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = DEFAULT_WORKER_POOL_SIZE
	}
	if cfg.WorkerQueueSize <= 0 {
		cfg.WorkerQueueSize = DEFAULT_WORKER_QUEUE_SIZE
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DEFAULT_RETRY_DELAY
	}

	return &bridge{
		nc:       nc,
		js:       js,
		ingestor: ingestor,
		clock:    clock,
		config:   cfg,
	}, nil
}

// Run consumes notices until ctx is cancelled
func (b *bridge) Run(ctx context.Context) error {
	logger.InfoCtx(ctx, "Starting notice bridge",
		zap.String("stream", b.config.StreamName),
		zap.String("consumer", b.config.ConsumerName),
		zap.String("subject", b.config.SubjectFilter))

	err := b.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     b.config.StreamName,
		Subjects: []string{NoticeSubjects},
		Storage:  jetstream.FileStorage,
	})
	if err != nil {
		return fmt.Errorf("failed to create/update stream: %w", err)
	}

	consumer, err := b.js.CreateOrUpdateConsumer(ctx, b.config.StreamName, jetstream.ConsumerConfig{
		Durable:       b.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       b.config.AckWaitTimeout,
		MaxDeliver:    b.config.MaxDeliver,
		FilterSubject: b.config.SubjectFilter,
	})
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.InfoCtx(ctx, "Consumer created/retrieved",
		zap.String("consumer", consumerInfo.Name),
		zap.Uint64("pending", consumerInfo.NumPending))

	// Submit blocks once the queue is full, which stops the pull loop from
	// fetching faster than the store can absorb
	pool := pond.NewPool(
		b.config.WorkerPoolSize,
		pond.WithQueueSize(b.config.WorkerQueueSize),
		pond.WithContext(ctx),
	)
	defer func() {
		pool.StopAndWait()
		logger.InfoCtx(ctx, "Notice worker pool shutdown complete",
			zap.Uint64("total_submitted", pool.SubmittedTasks()),
			zap.Uint64("total_completed", pool.CompletedTasks()),
			zap.Uint64("total_failed", pool.FailedTasks()))
	}()

	sub, err := consumer.Consume(func(msg adapter.Message) {
		pool.Submit(func() {
			b.handleMessage(ctx, msg)
		})
	}, jetstream.PullMaxMessages(b.config.WorkerQueueSize))
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.InfoCtx(ctx, "Started consuming notices",
		zap.Int("workers", b.config.WorkerPoolSize),
		zap.Int("queue_size", b.config.WorkerQueueSize))

	metricsTicker := b.clock.NewTicker(metricsInterval)
	defer metricsTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Shutting down notice bridge")
			return ctx.Err()
		case <-metricsTicker.C:
			logger.InfoCtx(ctx, "Notice worker pool metrics",
				zap.Int64("running_workers", pool.RunningWorkers()),
				zap.Uint64("waiting_tasks", pool.WaitingTasks()),
				zap.Uint64("completed_tasks", pool.CompletedTasks()))
		}
	}
}

// disposition is what happens to a message once it has been handled
type disposition int

const (
	dispositionAck disposition = iota
	// dispositionNak redelivers the message immediately
	dispositionNak
	// dispositionRetryLater redelivers the message after the retry delay
	dispositionRetryLater
	// dispositionTerm drops the message for good
	dispositionTerm
)

// dispositionFor maps an ingestion error to a message disposition.
// Notices that can never succeed are terminated; everything else is redelivered.
func dispositionFor(err error) disposition {
	switch {
	case err == nil:
		return dispositionAck
	case errors.Is(err, ingest.ErrUndecodable),
		errors.Is(err, ingest.ErrUnknownKind),
		errors.Is(err, store.ErrInvalidKey):
		return dispositionTerm
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, store.ErrReferentialViolation):
		// The row this notice points at may still be on its way, such as an award
		// arriving before its achievement. MaxDeliver bounds the retries.
		return dispositionRetryLater
	default:
		return dispositionNak
	}
}

// handleMessage decodes, ingests and settles a single message
func (b *bridge) handleMessage(ctx context.Context, msg adapter.Message) {
	start := b.clock.Now()

	var delivered uint64
	if metadata, err := msg.Metadata(); err == nil && metadata != nil {
		delivered = metadata.NumDelivered
	}

	fields := []zap.Field{
		zap.String("subject", msg.Subject()),
		zap.Uint64("delivery_count", delivered),
	}

	notice, err := b.ingestor.Decode(msg.Data())
	if err == nil {
		fields = append(fields,
			zap.Uint64("input_index", notice.InputIndex),
			zap.Uint64("notice_index", notice.NoticeIndex))
		err = b.ingestor.Ingest(ctx, notice)
	}
	fields = append(fields, zap.Duration("elapsed", b.clock.Since(start)))

	switch dispositionFor(err) {
	case dispositionAck:
		logger.DebugCtx(ctx, "Notice ingested", fields...)
		if err := msg.Ack(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to ACK message"))
		}
	case dispositionTerm:
		logger.ErrorCtx(ctx, err, append(fields, zap.String("message", "Dropping notice"))...)
		if err := msg.Term(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to terminate message"))
		}
	case dispositionRetryLater:
		logger.WarnCtx(ctx, "Notice arrived ahead of its dependency, retrying later",
			append(fields, zap.Error(err), zap.Duration("delay", b.config.RetryDelay))...)
		if err := msg.NakWithDelay(b.config.RetryDelay); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to NAK message"))
		}
	default:
		logger.ErrorCtx(ctx, err, append(fields, zap.String("message", "Failed to ingest notice"))...)
		if err := msg.Nak(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to NAK message"))
		}
	}
}

// Close drains the NATS connection so in-flight acks are flushed
func (b *bridge) Close() {
	if b.nc == nil {
		return
	}

	if err := b.nc.Drain(); err != nil {
		logger.Error(err, zap.String("message", "Failed to drain NATS connection"))
		b.nc.Close()
	}
}
