package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rives-io/rives-aggregator/internal/adapter"
	"github.com/rives-io/rives-aggregator/internal/domain"
	"github.com/rives-io/rives-aggregator/internal/logger"
	"github.com/rives-io/rives-aggregator/internal/store/schema"
)

type pgStore struct {
	db    *gorm.DB
	clock adapter.Clock
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB, clock adapter.Clock) Store {
	return &pgStore{db: db, clock: clock}
}

// OpenOptions configures the connection opened by Open
type OpenOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	// ConnectTimeout bounds how long Open keeps retrying an unreachable database.
	// Zero means one minute.
	ConnectTimeout time.Duration
	Debug          bool
}

// Open connects to PostgreSQL, retrying with exponential backoff while the
// database is unreachable, and configures the connection pool.
func Open(ctx context.Context, dsn string, opts OpenOptions) (*gorm.DB, error) {
	logLevel := gormlogger.Silent
	if opts.Debug {
		logLevel = gormlogger.Info
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = opts.ConnectTimeout
	if b.MaxElapsedTime == 0 {
		b.MaxElapsedTime = time.Minute
	}

	var db *gorm.DB
	operation := func() error {
		var err error
		db, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(logLevel),
		})
		return err
	}

	var attemptCount int
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Database not reachable, retrying",
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notifyOnError); err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attemptCount+1, err)
	}

	if err := ConfigureConnectionPool(db, opts.MaxOpenConns, opts.MaxIdleConns, opts.ConnMaxLifetime, opts.ConnMaxIdleTime); err != nil {
		return nil, err
	}

	return db, nil
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 20
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// Ping checks that the database answers
func (s *pgStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// getByKey loads one row by its key columns, or ErrNotFound
func getByKey[M any](ctx context.Context, db *gorm.DB, kind schema.EntityKind, key map[string]any) (*M, error) {
	var row M
	err := db.WithContext(ctx).Where(key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s %v", ErrNotFound, kind, key)
		}
		return nil, fmt.Errorf("failed to get %s: %w", kind, err)
	}
	return &row, nil
}

// GetProfile retrieves a profile by address
func (s *pgStore) GetProfile(ctx context.Context, address string) (*schema.Profile, error) {
	key := schema.Profile{Address: domain.NormalizeAddress(address)}
	return getByKey[schema.Profile](ctx, s.db, key.Kind(), key.PrimaryKey())
}

// GetCartridge retrieves a cartridge by id
func (s *pgStore) GetCartridge(ctx context.Context, id string) (*schema.Cartridge, error) {
	key := schema.Cartridge{ID: id}
	return getByKey[schema.Cartridge](ctx, s.db, key.Kind(), key.PrimaryKey())
}

// GetTape retrieves a tape by id
func (s *pgStore) GetTape(ctx context.Context, id string) (*schema.Tape, error) {
	key := schema.Tape{ID: id}
	return getByKey[schema.Tape](ctx, s.db, key.Kind(), key.PrimaryKey())
}

// GetRule retrieves a rule by id
func (s *pgStore) GetRule(ctx context.Context, id string) (*schema.Rule, error) {
	key := schema.Rule{ID: id}
	return getByKey[schema.Rule](ctx, s.db, key.Kind(), key.PrimaryKey())
}

// GetConsoleAchievement retrieves a catalogue entry by slug
func (s *pgStore) GetConsoleAchievement(ctx context.Context, slug string) (*schema.ConsoleAchievement, error) {
	key := schema.ConsoleAchievement{Slug: slug}
	return getByKey[schema.ConsoleAchievement](ctx, s.db, key.Kind(), key.PrimaryKey())
}
