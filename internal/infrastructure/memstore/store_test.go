package memstore_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"auksion_bot/internal/domain/entity"
	"auksion_bot/internal/infrastructure/memstore"
)

func TestPutOverwrites(t *testing.T) {
	store := memstore.New()

	store.Put(entity.Lot{ID: 1, Name: "old", Status: "active"})
	store.Put(entity.Lot{ID: 1, Name: "new", Status: "active"})

	lot, ok := store.Get(1)
	require.True(t, ok)
	require.Equal(t, "new", lot.Name)

	_, ok = store.Get(2)
	require.False(t, ok)
}

func TestListByStatus(t *testing.T) {
	store := memstore.New()

	store.Put(entity.Lot{ID: 1, Status: "active"})
	store.Put(entity.Lot{ID: 2, Status: "finished"})
	store.Put(entity.Lot{ID: 3, Status: "active"})

	require.Len(t, store.ListByStatus("active"), 2)
	require.Len(t, store.ListByStatus("finished"), 1)
	require.Empty(t, store.ListByStatus("upcoming"))
}

func TestAddFavoriteIdempotent(t *testing.T) {
	store := memstore.New()

	fav := entity.UserFavorite{UserID: 7, LotID: 42, AddedAt: time.Now()}
	store.AddFavorite(fav)
	store.AddFavorite(fav)
	store.AddFavorite(fav)

	require.Len(t, store.ListFavorites(7), 1)
	require.True(t, store.IsFavorite(7, 42))
}

func TestFavoritesInsertionOrder(t *testing.T) {
	store := memstore.New()

	for _, lotID := range []int64{5, 3, 9} {
		store.AddFavorite(entity.UserFavorite{UserID: 1, LotID: lotID})
	}

	favs := store.ListFavorites(1)
	require.Len(t, favs, 3)
	require.Equal(t, int64(5), favs[0].LotID)
	require.Equal(t, int64(3), favs[1].LotID)
	require.Equal(t, int64(9), favs[2].LotID)
}

func TestRemoveFavoriteMissingIsNoop(t *testing.T) {
	store := memstore.New()

	store.AddFavorite(entity.UserFavorite{UserID: 1, LotID: 10})
	store.RemoveFavorite(1, 99)
	store.RemoveFavorite(2, 10)

	require.True(t, store.IsFavorite(1, 10))

	store.RemoveFavorite(1, 10)
	require.False(t, store.IsFavorite(1, 10))
	require.Empty(t, store.ListFavorites(1))
}

func TestFavoriteUserIDs(t *testing.T) {
	store := memstore.New()

	store.AddFavorite(entity.UserFavorite{UserID: 1, LotID: 10})
	store.AddFavorite(entity.UserFavorite{UserID: 2, LotID: 10})
	store.RemoveFavorite(2, 10)

	require.Equal(t, []int64{1}, store.FavoriteUserIDs())
}

func TestCacheTTL(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := memstore.New(memstore.WithClock(func() time.Time { return now }))

	store.CacheSet("lots:page:1", []int64{1, 2, 3}, 5*time.Minute)

	got, ok := store.CacheGet("lots:page:1")
	require.True(t, ok)
	require.Equal(t, []int64{1, 2, 3}, got)

	now = now.Add(5*time.Minute + time.Second)

	_, ok = store.CacheGet("lots:page:1")
	require.False(t, ok)

	// просроченная запись вытеснена, повторное чтение тоже промах
	_, ok = store.CacheGet("lots:page:1")
	require.False(t, ok)
}

func TestCacheGetUnknownKey(t *testing.T) {
	store := memstore.New()

	_, ok := store.CacheGet("missing")
	require.False(t, ok)
}
