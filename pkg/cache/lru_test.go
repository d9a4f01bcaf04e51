package cache_test

import (
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fluent/pkg/cache"
)

func TestLRU_GetSet(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrNotFound for missing key", func(t *testing.T) {
		t.Parallel()

		c := cache.NewLRU[string]()
		_, err := c.Get("missing")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("returns stored value", func(t *testing.T) {
		t.Parallel()

		c := cache.NewLRU[int]()
		c.Set("key", 42)

		val, err := c.Get("key")
		require.NoError(t, err)
		require.Equal(t, 42, val)
	})

	t.Run("overwrites existing key", func(t *testing.T) {
		t.Parallel()

		c := cache.NewLRU[string]()
		c.Set("key", "a")
		c.Set("key", "b")

		val, err := c.Get("key")
		require.NoError(t, err)
		require.Equal(t, "b", val)
		require.Equal(t, 1, c.Len())
	})
}

func TestLRU_Eviction(t *testing.T) {
	t.Parallel()

	t.Run("evicts least recently used", func(t *testing.T) {
		t.Parallel()

		c := cache.NewLRU[int](cache.WithMaxEntries(2))
		c.Set("a", 1)
		c.Set("b", 2)
		_, err := c.Get("a")
		require.NoError(t, err)
		c.Set("c", 3)

		_, err = c.Get("b")
		require.ErrorIs(t, err, cache.ErrNotFound)
		_, err = c.Get("a")
		require.NoError(t, err)
		require.Equal(t, 2, c.Len())
	})

	t.Run("unlimited when max entries is zero", func(t *testing.T) {
		t.Parallel()

		c := cache.NewLRU[int](cache.WithMaxEntries(0))
		for i := range 2000 {
			c.Set(strconv.Itoa(i), i)
		}
		require.Equal(t, 2000, c.Len())
	})
}

func TestLRU_DeleteClear(t *testing.T) {
	t.Parallel()

	c := cache.NewLRU[int]()
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)
	c.Delete("a")
	c.Delete("missing")
	require.Equal(t, 2, c.Len())

	c.Clear()
	require.Equal(t, 0, c.Len())
	_, err := c.Get("b")
	require.ErrorIs(t, err, cache.ErrNotFound)
}

func TestLRU_GetOrSet(t *testing.T) {
	t.Parallel()

	t.Run("computes once and caches", func(t *testing.T) {
		t.Parallel()

		c := cache.NewLRU[string]()
		calls := 0
		fn := func() (string, error) {
			calls++
			return "v", nil
		}

		v, err := c.GetOrSet("k", fn)
		require.NoError(t, err)
		require.Equal(t, "v", v)

		v, err = c.GetOrSet("k", fn)
		require.NoError(t, err)
		require.Equal(t, "v", v)
		require.Equal(t, 1, calls)
	})

	t.Run("errors are returned and not cached", func(t *testing.T) {
		t.Parallel()

		c := cache.NewLRU[string]()
		boom := errors.New("boom")

		_, err := c.GetOrSet("k", func() (string, error) { return "", boom })
		require.ErrorIs(t, err, cache.ErrCompute)
		require.ErrorIs(t, err, boom)
		require.Equal(t, 0, c.Len())
	})

	t.Run("deduplicates concurrent misses", func(t *testing.T) {
		t.Parallel()

		c := cache.NewLRU[int]()
		var calls atomic.Int32
		start := make(chan struct{})

		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				v, err := c.GetOrSet("shared", func() (int, error) {
					calls.Add(1)
					time.Sleep(20 * time.Millisecond)
					return 7, nil
				})
				require.NoError(t, err)
				require.Equal(t, 7, v)
			}()
		}
		close(start)
		wg.Wait()

		require.Equal(t, int32(1), calls.Load())
	})
}
