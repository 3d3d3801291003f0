package distributed

import (
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	gferrors "github.com/vnykmshr/dagflow/pkg/common/errors"
)

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(Config{Key: "tasks"})
	if !errors.Is(err, gferrors.ErrInvalidConfiguration) {
		t.Errorf("missing Redis client should fail validation, got %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	defer func() { _ = rdb.Close() }()

	_, err = New(Config{Redis: rdb})
	if !errors.Is(err, gferrors.ErrInvalidConfiguration) {
		t.Errorf("missing key prefix should fail validation, got %v", err)
	}

	_, err = New(Config{Redis: rdb, Key: "tasks", PollInterval: -time.Second})
	if !errors.Is(err, gferrors.ErrInvalidConfiguration) {
		t.Errorf("negative poll interval should fail validation, got %v", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.InstanceID == "" {
		t.Error("default config should generate an instance id")
	}
	if cfg.RedisTimeout <= 0 || cfg.PollInterval <= 0 || cfg.KeyTTL <= 0 {
		t.Errorf("default timings should be positive: %+v", cfg)
	}
}

func TestRedisError(t *testing.T) {
	inner := errors.New("connection refused")
	err := &RedisError{"push", inner}

	want := "redis error in push: connection refused"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, inner) {
		t.Error("RedisError should unwrap to the inner error")
	}
}
