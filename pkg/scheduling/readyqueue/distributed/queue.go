package distributed

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vnykmshr/dagflow/pkg/common/errors"
	"github.com/vnykmshr/dagflow/pkg/common/validation"
)

// Queue is a randomized ready queue shared across application instances,
// using a Redis set as the backing store. SPOP removes a uniformly random
// member, so pop order is unbiased by construction and no client-side
// shuffle is needed.
type Queue struct {
	config Config
	keys   map[string]string

	pushScript *redis.Script
	popScript  *redis.Script
}

// Config holds configuration for a distributed ready queue.
type Config struct {
	// Redis client for coordination
	Redis redis.UniversalClient

	// Key is the Redis key prefix for this queue
	Key string

	// InstanceID uniquely identifies this application instance
	InstanceID string

	// RedisTimeout is the timeout for individual Redis operations
	RedisTimeout time.Duration

	// PollInterval controls how often Pop re-checks an empty queue
	PollInterval time.Duration

	// KeyTTL is how long Redis keys should live
	KeyTTL time.Duration
}

// DefaultConfig returns a default distributed queue configuration.
func DefaultConfig() Config {
	return Config{
		InstanceID:   generateInstanceID(),
		RedisTimeout: 500 * time.Millisecond,
		PollInterval: 50 * time.Millisecond,
		KeyTTL:       time.Hour,
	}
}

// Push is atomic with respect to termination: the state check and the
// SADD happen in one script, so an item can never land in a queue that
// has already refused it.
const luaPush = `
local state = redis.call('GET', KEYS[2])
if state == 'draining' then
	return 'draining'
end
if state == 'shutdown' then
	return 'shutdown'
end
redis.call('SADD', KEYS[1], ARGV[1])
redis.call('EXPIRE', KEYS[1], ARGV[2])
return 'ok'
`

// Pop reads the state and removes a random member atomically. Items are
// still served while draining; shutdown abandons them.
const luaPop = `
local state = redis.call('GET', KEYS[2])
if state == 'shutdown' then
	return {'shutdown', ''}
end
local item = redis.call('SPOP', KEYS[1])
if item then
	return {'ok', item}
end
if state == 'draining' then
	return {'drained', ''}
end
return {'empty', ''}
`

// New creates a distributed ready queue backed by Redis.
func New(config Config) (*Queue, error) {
	if config.Redis == nil {
		return nil, validation.ValidateNotNil("readyqueue", "redis", nil)
	}
	if err := validation.ValidateNotEmpty("readyqueue", "key", config.Key); err != nil {
		return nil, err
	}
	config = applyConfigDefaults(config)
	if err := validation.ValidatePositiveDuration("readyqueue", "poll_interval", config.PollInterval); err != nil {
		return nil, err
	}

	q := &Queue{
		config:     config,
		keys:       redisKeys(config.Key),
		pushScript: redis.NewScript(luaPush),
		popScript:  redis.NewScript(luaPop),
	}

	if err := q.register(context.Background()); err != nil {
		return nil, err
	}
	return q, nil
}

// register records this instance in the membership set.
func (q *Queue) register(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, q.config.RedisTimeout)
	defer cancel()

	pipe := q.config.Redis.Pipeline()
	pipe.SAdd(ctx, q.keys["instances"], q.config.InstanceID)
	pipe.Expire(ctx, q.keys["instances"], q.config.KeyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return &RedisError{"register", err}
	}
	return nil
}

// Push adds an item to the shared queue. It returns ErrDraining or
// ErrShutdown when the queue has been terminated by any instance.
func (q *Queue) Push(ctx context.Context, item string) error {
	opCtx, cancel := context.WithTimeout(ctx, q.config.RedisTimeout)
	defer cancel()

	ttl := int64(q.config.KeyTTL / time.Second)
	res, err := q.pushScript.Run(opCtx, q.config.Redis,
		[]string{q.keys["items"], q.keys["state"]}, item, ttl).Text()
	if err != nil {
		return &RedisError{"push", err}
	}

	switch res {
	case "ok":
		return nil
	case "draining":
		return errors.ErrDraining
	default:
		return errors.ErrShutdown
	}
}

// TryPop removes and returns a uniformly random item without waiting.
// The second return is false when no item is available; the error
// distinguishes a transient empty queue (nil) from termination.
func (q *Queue) TryPop(ctx context.Context) (string, bool, error) {
	opCtx, cancel := context.WithTimeout(ctx, q.config.RedisTimeout)
	defer cancel()

	res, err := q.popScript.Run(opCtx, q.config.Redis,
		[]string{q.keys["items"], q.keys["state"]}).StringSlice()
	if err != nil {
		return "", false, &RedisError{"pop", err}
	}

	switch res[0] {
	case "ok":
		return res[1], true, nil
	case "drained":
		return "", false, errors.ErrDraining
	case "shutdown":
		return "", false, errors.ErrShutdown
	default:
		return "", false, nil
	}
}

// Pop removes and returns a uniformly random item, polling until one is
// available, the queue terminates, or ctx is cancelled. Redis has no
// cross-client condition variable, so waiting is a timed poll.
func (q *Queue) Pop(ctx context.Context) (string, bool, error) {
	ticker := time.NewTicker(q.config.PollInterval)
	defer ticker.Stop()

	for {
		item, ok, err := q.TryPop(ctx)
		if ok {
			return item, true, nil
		}
		if err != nil {
			return "", false, err
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return "", false, ctx.Err()
		}
	}
}

// Drain soft-stops the queue across all instances: pushes are refused,
// queued items remain poppable until the set is exhausted.
func (q *Queue) Drain(ctx context.Context) error {
	return q.setState(ctx, "draining")
}

// Shutdown hard-stops the queue across all instances: pushes are refused
// and queued items are abandoned.
func (q *Queue) Shutdown(ctx context.Context) error {
	return q.setState(ctx, "shutdown")
}

func (q *Queue) setState(ctx context.Context, state string) error {
	ctx, cancel := context.WithTimeout(ctx, q.config.RedisTimeout)
	defer cancel()

	// Shutdown wins over drain; never downgrade.
	if state == "draining" {
		current, err := q.config.Redis.Get(ctx, q.keys["state"]).Result()
		if err != nil && err != redis.Nil {
			return &RedisError{"drain", err}
		}
		if current == "shutdown" {
			return nil
		}
	}

	if err := q.config.Redis.Set(ctx, q.keys["state"], state, q.config.KeyTTL).Err(); err != nil {
		return &RedisError{state, err}
	}
	return nil
}

// Len returns the number of items currently queued.
func (q *Queue) Len(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, q.config.RedisTimeout)
	defer cancel()

	n, err := q.config.Redis.SCard(ctx, q.keys["items"]).Result()
	if err != nil {
		return 0, &RedisError{"len", err}
	}
	return int(n), nil
}

// Empty returns true if no items are currently queued.
func (q *Queue) Empty(ctx context.Context) (bool, error) {
	n, err := q.Len(ctx)
	return n == 0, err
}

// Reset clears all queue state in Redis (useful for testing).
func (q *Queue) Reset(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, q.config.RedisTimeout)
	defer cancel()

	err := q.config.Redis.Del(ctx,
		q.keys["items"], q.keys["state"], q.keys["instances"]).Err()
	if err != nil {
		return &RedisError{"reset", err}
	}
	return nil
}

// Close deregisters this instance. The queue data itself is left in
// Redis for the remaining instances.
func (q *Queue) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), q.config.RedisTimeout)
	defer cancel()

	if err := q.config.Redis.SRem(ctx, q.keys["instances"], q.config.InstanceID).Err(); err != nil {
		return &RedisError{"close", err}
	}
	return nil
}

// RedisError represents a Redis operation error.
type RedisError struct {
	Operation string
	Err       error
}

func (e *RedisError) Error() string {
	return "redis error in " + e.Operation + ": " + e.Err.Error()
}

func (e *RedisError) Unwrap() error {
	return e.Err
}
