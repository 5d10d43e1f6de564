package repository

import (
	"context"
	"time"
)

// CacheRepository stores string values by key. A zero ttl keeps the value
// until it is evicted by the backend. Get reports a missing key with
// ok == false and a nil error; err is set only when the backend failed.
type CacheRepository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
