package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/Leozerbib/gile-back-sub000/internal/adapters/outbound/cache"
	"github.com/Leozerbib/gile-back-sub000/internal/config"
	"github.com/Leozerbib/gile-back-sub000/internal/infrastructure"
	"github.com/Leozerbib/gile-back-sub000/pkg/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

type searchKey struct {
	ProjectID string `json:"project_id"`
	Text      string `json:"text"`
	Skip      uint   `json:"skip"`
	Take      uint   `json:"take"`
}

type searchResult struct {
	IDs   []string `json:"ids"`
	Total uint     `json:"total"`
}

func newTestStore(t *testing.T) (*infrastructure.KeydbClient, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client := infrastructure.NewKeyDBClient(config.Cache{
		Address:       mr.Addr(),
		DefaultExpiry: time.Minute,
	}, logger.NewTestLogger())
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}

func TestJSONCache_RoundTrip(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	jsonCache := cache.NewJSONCache[searchKey, searchResult](store, "tickets:search:", logger.NewTestLogger())

	key := searchKey{ProjectID: "p1", Text: "login", Take: 25}
	want := searchResult{IDs: []string{"t1", "t2"}, Total: 42}

	require.NoError(t, jsonCache.Set(context.Background(), key, want, time.Minute))

	got, hit, err := jsonCache.Get(context.Background(), key)

	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, want, got)
}

func TestJSONCache_MissOnUnknownKey(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	jsonCache := cache.NewJSONCache[searchKey, searchResult](store, "tickets:search:", logger.NewTestLogger())

	_, hit, err := jsonCache.Get(context.Background(), searchKey{ProjectID: "p1"})

	require.NoError(t, err)
	require.False(t, hit)
}

func TestJSONCache_DistinctQueriesGetDistinctEntries(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	jsonCache := cache.NewJSONCache[searchKey, searchResult](store, "tickets:search:", logger.NewTestLogger())

	first := searchKey{ProjectID: "p1", Skip: 0}
	second := searchKey{ProjectID: "p1", Skip: 25}

	require.NoError(t, jsonCache.Set(context.Background(), first, searchResult{Total: 1}, time.Minute))
	require.NoError(t, jsonCache.Set(context.Background(), second, searchResult{Total: 2}, time.Minute))

	gotFirst, hit, err := jsonCache.Get(context.Background(), first)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, uint(1), gotFirst.Total)

	gotSecond, hit, err := jsonCache.Get(context.Background(), second)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, uint(2), gotSecond.Total)
}

func TestJSONCache_EntryExpires(t *testing.T) {
	t.Parallel()

	store, mr := newTestStore(t)
	jsonCache := cache.NewJSONCache[searchKey, searchResult](store, "tickets:search:", logger.NewTestLogger())

	key := searchKey{ProjectID: "p1"}
	require.NoError(t, jsonCache.Set(context.Background(), key, searchResult{Total: 7}, 30*time.Second))

	mr.FastForward(time.Minute)

	_, hit, err := jsonCache.Get(context.Background(), key)

	require.NoError(t, err)
	require.False(t, hit)
}
