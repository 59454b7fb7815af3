// internal/workers/matchmaking/compute-guna-milan/cache_test.go
package computegunamilan

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"
	"time"

	"guna-milan-workers/internal/gunamilan"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *gunamilan.Result {
	input := createTestInput()
	return gunamilan.Evaluate(input.Male.PersonInput, input.Female.PersonInput, "hi")
}

func TestRedisReportCache_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	cache := NewRedisReportCache(client, 10*time.Minute)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "r1")
	require.NoError(t, err)
	assert.False(t, ok)

	want := sampleResult()
	require.NoError(t, cache.Set(ctx, "r1", want))
	assert.Equal(t, 10*time.Minute, mr.TTL("gunamilan:report:r1"))

	got, ok, err := cache.Get(ctx, "r1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want.Ashtakoot, got.Ashtakoot)
	assert.Equal(t, want.Male.Facts, got.Male.Facts)
	assert.Equal(t, want.MatchMaking, got.MatchMaking)

	mr.FastForward(11 * time.Minute)
	_, ok, err = cache.Get(ctx, "r1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisReportCache_CorruptEntry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	require.NoError(t, mr.Set(cacheKey("r1"), `{"language":`))

	_, ok, err := NewRedisReportCache(client, time.Minute).Get(context.Background(), "r1")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestRedisReportCache_ServerErrors(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisReportCache(client, time.Hour)
	ctx := context.Background()

	mock.ExpectGet(cacheKey("r1")).SetErr(stderrors.New("READONLY You can't write against a read only replica"))
	_, ok, err := cache.Get(ctx, "r1")
	assert.Error(t, err)
	assert.False(t, ok)

	result := sampleResult()
	payload, err := json.Marshal(result)
	require.NoError(t, err)
	mock.ExpectSet(cacheKey("r1"), payload, time.Hour).SetErr(stderrors.New("OOM command not allowed"))
	assert.Error(t, cache.Set(ctx, "r1", result))

	assert.NoError(t, mock.ExpectationsWereMet())
}
