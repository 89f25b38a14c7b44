package infrastructure

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// ========================================
// Tests: InMemoryCache
// ========================================

func TestInMemoryCache_SetGet(t *testing.T) {
	cache := NewInMemoryCache()
	cache.Set("reports:demo", "value", 5*time.Minute)

	value, found := cache.Get("reports:demo")
	assert.True(t, found)
	assert.Equal(t, "value", value)
}

func TestInMemoryCache_MissingKey(t *testing.T) {
	cache := NewInMemoryCache()

	_, found := cache.Get("reports:absent")
	assert.False(t, found)
}

func TestInMemoryCache_ExpiredEntryIsInvisible(t *testing.T) {
	cache := NewInMemoryCache()
	cache.Set("reports:demo", "value", -1*time.Second)

	_, found := cache.Get("reports:demo")
	assert.False(t, found)
	assert.False(t, cache.Has("reports:demo"))
}

func TestInMemoryCache_Delete(t *testing.T) {
	cache := NewInMemoryCache()
	cache.Set("reports:demo", "value", 5*time.Minute)

	cache.Delete("reports:demo")
	assert.False(t, cache.Has("reports:demo"))
}

func TestInMemoryCache_Clear(t *testing.T) {
	cache := NewInMemoryCache()
	cache.Set("reports:a", 1, 5*time.Minute)
	cache.Set("reports:b", 2, 5*time.Minute)

	cache.Clear()
	assert.False(t, cache.Has("reports:a"))
	assert.False(t, cache.Has("reports:b"))
}

// ========================================
// Tests: ShardedCache
// ========================================

func TestShardedCache_SetGetAcrossShards(t *testing.T) {
	cache := NewShardedCache(16)

	for i := 0; i < 100; i++ {
		cache.Set(fmt.Sprintf("reports:%d", i), i, 5*time.Minute)
	}
	for i := 0; i < 100; i++ {
		value, found := cache.Get(fmt.Sprintf("reports:%d", i))
		assert.True(t, found)
		assert.Equal(t, i, value)
	}
}

func TestShardedCache_Clear(t *testing.T) {
	cache := NewShardedCache(4)
	for i := 0; i < 20; i++ {
		cache.Set(fmt.Sprintf("reports:%d", i), i, 5*time.Minute)
	}

	cache.Clear()
	for i := 0; i < 20; i++ {
		assert.False(t, cache.Has(fmt.Sprintf("reports:%d", i)))
	}
}

func TestShardedCache_RejectsNonPowerOfTwo(t *testing.T) {
	assert.Panics(t, func() { NewShardedCache(3) })
	assert.Panics(t, func() { NewShardedCache(0) })
}

// ========================================
// Tests: CacheKeyBuilder
// ========================================

func TestCacheKeyBuilder_JoinsWithColon(t *testing.T) {
	key := NewCacheKeyBuilder().
		Add("reports").
		Add("datasets/q3.json").
		AddInt(10).
		Build()

	assert.Equal(t, "reports:datasets/q3.json:10", key)
}

func TestCacheKeyBuilder_SinglePart(t *testing.T) {
	assert.Equal(t, "reports", NewCacheKeyBuilder().Add("reports").Build())
}

// ========================================
// Benchmarks: contention et sharding
// ========================================

func BenchmarkInMemoryCache_Get_HighContention(b *testing.B) {
	cache := NewInMemoryCache()
	cache.Set("reports:shared", "value", 5*time.Minute)

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = cache.Get("reports:shared")
		}
	})
}

func BenchmarkShardedCache_Get_HighContention(b *testing.B) {
	cache := NewShardedCache(16)
	cache.Set("reports:shared", "value", 5*time.Minute)

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = cache.Get("reports:shared")
		}
	})
}

func BenchmarkCacheKeyBuilder(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = NewCacheKeyBuilder().
			Add("reports").
			Add("datasets/q3.json").
			Build()
	}
}
