package lease

import (
	"context"
	"time"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConnectionInfo holds connection parameters for the redis instance backing
// the lease store.
type ConnectionInfo struct {
	Addr        string
	Password    string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
}

// NewRedisConnection opens and pings a redis connection.
func NewRedisConnection(info ConnectionInfo) (*goredis.Client, error) {
	timeout := info.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:         info.Addr,
		Password:     info.Password,
		DB:           info.DB,
		MaxRetries:   info.MaxRetries,
		DialTimeout:  info.DialTimeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Wrap(err, "failed to connect to redis")
	}
	return rdb, nil
}

// Store hands out short-lived exclusive leases keyed by resource id. A lease
// held by one worker prevents concurrent generation runs from picking up the
// same recurring template.
type Store struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
	logger *zap.Logger
}

// NewStore creates a lease store. The ttl bounds how long a crashed worker can
// block a resource before the lease expires on its own.
func NewStore(client *goredis.Client, prefix string, ttl time.Duration, logger *zap.Logger) *Store {
	if prefix == "" {
		prefix = "swiftbill_lease_"
	}
	if ttl == 0 {
		ttl = 2 * time.Minute
	}
	return &Store{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *Store) key(resourceID string) string {
	return s.prefix + resourceID
}

// Acquire attempts to take the lease for a resource. Returns false without
// error when another holder already has it.
func (s *Store) Acquire(ctx context.Context, resourceID string) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.key(resourceID), "held", s.ttl).Result()
	if err != nil {
		return false, errors.Wrapf(err, "failed to acquire lease for %s", resourceID)
	}
	return ok, nil
}

// Release drops the lease. Safe to call on a lease that already expired.
func (s *Store) Release(ctx context.Context, resourceID string) error {
	if err := s.client.Del(ctx, s.key(resourceID)).Err(); err != nil {
		return errors.Wrapf(err, "failed to release lease for %s", resourceID)
	}
	return nil
}

// Close closes the underlying redis connection.
func (s *Store) Close() {
	if s.client == nil {
		return
	}
	if err := s.client.Close(); err != nil {
		s.logger.Warn("failed to close redis connection", zap.Error(err))
	}
}
