package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripterStub emulates the fixed-window script with an in-memory counter.
type scripterStub struct {
	counts map[string]int64
	ttls   map[string]any
	result any
	err    error
}

func newScripterStub() *scripterStub {
	return &scripterStub{counts: map[string]int64{}, ttls: map[string]any{}}
}

func (s *scripterStub) run(keys []string, args ...any) *redis.Cmd {
	if s.err != nil {
		return redis.NewCmdResult(nil, s.err)
	}
	if s.result != nil {
		return redis.NewCmdResult(s.result, nil)
	}
	s.counts[keys[0]]++
	if s.counts[keys[0]] == 1 {
		s.ttls[keys[0]] = args[0]
	}
	return redis.NewCmdResult(s.counts[keys[0]], nil)
}

func (s *scripterStub) Eval(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd {
	return s.run(keys, args...)
}

func (s *scripterStub) EvalSha(ctx context.Context, sha1 string, keys []string, args ...any) *redis.Cmd {
	return s.run(keys, args...)
}

func (s *scripterStub) EvalRO(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd {
	return s.run(keys, args...)
}

func (s *scripterStub) EvalShaRO(ctx context.Context, sha1 string, keys []string, args ...any) *redis.Cmd {
	return s.run(keys, args...)
}

func (s *scripterStub) ScriptExists(ctx context.Context, hashes ...string) *redis.BoolSliceCmd {
	return redis.NewBoolSliceResult(make([]bool, len(hashes)), nil)
}

func (s *scripterStub) ScriptLoad(ctx context.Context, script string) *redis.StringCmd {
	return redis.NewStringResult("sha", nil)
}

func TestNewRedisLimiterDefaults(t *testing.T) {
	l := NewRedisLimiter(newScripterStub(), 0, 0)
	assert.Equal(t, int64(defaultLimit), l.limit)
	assert.Equal(t, defaultWindow, l.window)
}

func TestRedisLimiterAllowsUpToLimit(t *testing.T) {
	stub := newScripterStub()
	l := NewRedisLimiter(stub, 2, 30*time.Second)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "slots:1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := l.Allow(ctx, "slots:1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = l.Allow(ctx, "slots:5.6.7.8")
	require.NoError(t, err)
	assert.True(t, ok, "other clients keep their own window")

	assert.Equal(t, int64(30000), stub.ttls[keyPrefix+":slots:1.2.3.4"])
}

func TestRedisLimiterPropagatesErrors(t *testing.T) {
	stub := newScripterStub()
	stub.err = errors.New("connection refused")
	l := NewRedisLimiter(stub, 1, time.Second)

	_, err := l.Allow(context.Background(), "k")
	require.Error(t, err)
}

func TestRedisLimiterResultTypes(t *testing.T) {
	stub := newScripterStub()
	l := NewRedisLimiter(stub, 5, time.Second)

	stub.result = "3"
	ok, err := l.Allow(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)

	stub.result = 1.5
	_, err = l.Allow(context.Background(), "k")
	require.Error(t, err)
}
