package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"taskflow/internal/circuitbreaker"
	"taskflow/internal/common/errors"
)

type entry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestLocalCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c := NewLocalCache()

	var got entry
	found, err := c.Get(ctx, "board:1", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "board:1", entry{ID: 1, Name: "Roadmap"}, time.Minute))

	found, err = c.Get(ctx, "board:1", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, entry{ID: 1, Name: "Roadmap"}, got)

	exists, err := c.Exists(ctx, "board:1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLocalCache_StoresCopies(t *testing.T) {
	ctx := context.Background()
	c := NewLocalCache()

	original := []entry{{ID: 1, Name: "a"}}
	require.NoError(t, c.Set(ctx, "boards:workspace:1", original, 0))
	original[0].Name = "mutated"

	var got []entry
	found, err := c.Get(ctx, "boards:workspace:1", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "a", got[0].Name)
}

func TestLocalCache_ExpiredEntriesArePurged(t *testing.T) {
	ctx := context.Background()
	c := NewLocalCache()

	require.NoError(t, c.Set(ctx, "workspace:1", entry{ID: 1}, 50*time.Millisecond))
	require.NoError(t, c.Set(ctx, "workspace:2", entry{ID: 2}, 50*time.Millisecond))
	require.NoError(t, c.Set(ctx, "workspace:3", entry{ID: 3}, 0))
	assert.Equal(t, 3, c.ItemCount())

	time.Sleep(80 * time.Millisecond)

	// Nothing removes expired entries until they are looked up
	assert.Equal(t, 3, c.ItemCount())

	var got entry
	found, err := c.Get(ctx, "workspace:1", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 2, c.ItemCount())

	exists, err := c.Exists(ctx, "workspace:2")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, 1, c.ItemCount())

	// No-expiry entry survives
	found, err = c.Get(ctx, "workspace:3", &got)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestLocalCache_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	c := NewLocalCache()

	require.NoError(t, c.Set(ctx, "card:9", entry{ID: 9}, time.Minute))
	assert.NoError(t, c.Delete(ctx, "card:9"))
	assert.NoError(t, c.Delete(ctx, "card:9"))
	assert.NoError(t, c.Delete(ctx, "never-set"))

	exists, err := c.Exists(ctx, "card:9")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalCache_EncodeAndDecodeErrors(t *testing.T) {
	ctx := context.Background()
	c := NewLocalCache()

	err := c.Set(ctx, "bad", make(chan int), time.Minute)
	assert.True(t, errors.IsType(err, errors.ErrTypeCache))

	require.NoError(t, c.Set(ctx, "list:1", "just a string", time.Minute))
	var got entry
	found, err := c.Get(ctx, "list:1", &got)
	assert.False(t, found)
	assert.True(t, errors.IsType(err, errors.ErrTypeCache))
}

func TestLocalCache_Concurrency(t *testing.T) {
	ctx := context.Background()
	c := NewLocalCache()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := fmt.Sprintf("board:%d", id%5)
			for j := 0; j < 50; j++ {
				_ = c.Set(ctx, key, entry{ID: int64(id)}, time.Minute)
				var got entry
				_, _ = c.Get(ctx, key, &got)
				_ = c.Delete(ctx, key)
			}
		}(i)
	}
	wg.Wait()
}

func setupRedisCache(t *testing.T, prefix string, opts ...RedisOption) (*RedisCache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return NewRedisCache(client, prefix, opts...), mr
}

func TestRedisCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c, mr := setupRedisCache(t, "")

	var got entry
	found, err := c.Get(ctx, "workspace:1", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "workspace:1", entry{ID: 1, Name: "Eng"}, 5*time.Minute))

	stored, err := mr.Get("workspace:1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Eng"}`, stored)
	assert.Equal(t, 5*time.Minute, mr.TTL("workspace:1"))

	found, err = c.Get(ctx, "workspace:1", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Eng", got.Name)

	exists, err := c.Exists(ctx, "workspace:1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRedisCache_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	c, mr := setupRedisCache(t, "")

	require.NoError(t, c.Set(ctx, "boards:workspace:1", []entry{{ID: 1}}, 5*time.Minute))
	mr.FastForward(5*time.Minute + time.Second)

	var got []entry
	found, err := c.Get(ctx, "boards:workspace:1", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, mr.Exists("boards:workspace:1"))
}

func TestRedisCache_NoExpiry(t *testing.T) {
	ctx := context.Background()
	c, mr := setupRedisCache(t, "")

	require.NoError(t, c.Set(ctx, "user:u1", entry{Name: "u1"}, 0))
	assert.Equal(t, time.Duration(0), mr.TTL("user:u1"))
}

func TestRedisCache_KeyPrefix(t *testing.T) {
	ctx := context.Background()
	c, mr := setupRedisCache(t, "taskflow:")

	require.NoError(t, c.Set(ctx, "board:3", entry{ID: 3}, time.Minute))
	assert.True(t, mr.Exists("taskflow:board:3"))
	assert.False(t, mr.Exists("board:3"))

	require.NoError(t, c.Delete(ctx, "board:3"))
	assert.False(t, mr.Exists("taskflow:board:3"))
	assert.NoError(t, c.Delete(ctx, "board:3"))
}

func TestRedisCache_ServerDown(t *testing.T) {
	ctx := context.Background()
	c, mr := setupRedisCache(t, "")
	mr.Close()

	var got entry
	_, err := c.Get(ctx, "board:1", &got)
	assert.True(t, errors.IsType(err, errors.ErrTypeCache))

	err = c.Set(ctx, "board:1", entry{ID: 1}, time.Minute)
	assert.True(t, errors.IsType(err, errors.ErrTypeCache))

	err = c.Delete(ctx, "board:1")
	assert.True(t, errors.IsType(err, errors.ErrTypeCache))
}

func TestRedisCache_BreakerOpensOnOutage(t *testing.T) {
	ctx := context.Background()
	cb := circuitbreaker.NewGoBreaker("cache-test", circuitbreaker.Config{
		MaxFailures:           2,
		Timeout:               time.Minute,
		MaxConcurrentRequests: 1,
	}, nil)
	c, mr := setupRedisCache(t, "", WithBreaker(cb))

	require.NoError(t, c.Set(ctx, "card:1", entry{ID: 1}, time.Minute))
	mr.Close()

	for i := 0; i < 2; i++ {
		_, err := c.Exists(ctx, "card:1")
		assert.Error(t, err)
	}
	assert.True(t, cb.IsOpen())

	var got entry
	_, err := c.Get(ctx, "card:1", &got)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeCache))
	assert.Contains(t, err.Error(), "is open")
}

func TestRedisCache_MissDoesNotTripBreaker(t *testing.T) {
	ctx := context.Background()
	cb := circuitbreaker.NewGoBreaker("cache-miss", circuitbreaker.Config{
		MaxFailures:           1,
		Timeout:               time.Minute,
		MaxConcurrentRequests: 1,
	}, nil)
	c, _ := setupRedisCache(t, "", WithBreaker(cb))

	for i := 0; i < 5; i++ {
		var got entry
		found, err := c.Get(ctx, "missing", &got)
		require.NoError(t, err)
		assert.False(t, found)
	}
	assert.False(t, cb.IsOpen())
}

func TestNew(t *testing.T) {
	c, err := New(Config{Type: TypeLocal})
	require.NoError(t, err)
	assert.IsType(t, &LocalCache{}, c)

	_, err = New(Config{Type: TypeRedis})
	assert.Error(t, err)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	c, err = New(Config{Type: TypeRedis, RedisClient: client, KeyPrefix: "p:"})
	require.NoError(t, err)
	assert.IsType(t, &RedisCache{}, c)

	_, err = New(Config{Type: "memcached"})
	assert.Error(t, err)
}
