package persistence_test

import (
	"context"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"auksion_bot/internal/domain"
	"auksion_bot/internal/domain/entity"
	"auksion_bot/internal/infrastructure/persistence"
	"auksion_bot/pkg/dbtest"
	"auksion_bot/pkg/errcodes"
)

func newTestRepo(t *testing.T) *persistence.ListingRepository {
	t.Helper()

	dsn := os.Getenv("TEST_PG_DSN")
	if dsn == "" {
		t.Skip("TEST_PG_DSN is not set")
	}

	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)

	require.NoError(t, dbtest.MigrateFromFile(db, "../../../migrations/0001_listings.sql"))

	t.Cleanup(func() {
		_, _ = db.Exec("TRUNCATE listings")
		_ = db.Close()
	})

	return persistence.NewListingRepository(db)
}

func TestListingCreateGet(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	listing := &entity.Listing{
		Type:         entity.ListingSale,
		PropertyKind: "kvartira",
		Location:     "  Toshkent, Chilonzor  ",
		Price:        "850000000",
		Region:       "toshkent_sh",
	}

	require.NoError(t, repo.Create(ctx, listing))
	require.NotZero(t, listing.ID)
	require.False(t, listing.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, listing.ID)
	require.NoError(t, err)
	require.Equal(t, "Toshkent, Chilonzor", got.Location)
	require.Equal(t, entity.ListingSale, got.Type)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
}

func TestListingSearchRegion(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	seed := []*entity.Listing{
		{Type: entity.ListingSale, PropertyKind: "kvartira", Location: "a", Price: "1", Region: "toshkent_sh"},
		{Type: entity.ListingSale, PropertyKind: "kvartira", Location: "b", Price: "2", Region: "samarqand"},
		{Type: entity.ListingRent, PropertyKind: "kvartira", Location: "c", Price: "3", Region: "toshkent_sh"},
	}
	for _, listing := range seed {
		require.NoError(t, repo.Create(ctx, listing))
	}

	found, err := repo.Search(ctx, entity.ListingSale, "kvartira", "toshkent_sh")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "a", found[0].Location)

	found, err = repo.Search(ctx, entity.ListingSale, "kvartira", "")
	require.NoError(t, err)
	require.Len(t, found, 2)
	// свежие объявления первыми
	require.Equal(t, "b", found[0].Location)
}

func TestListingDeleteMissing(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	err := repo.Delete(ctx, 9999)
	require.Error(t, err)

	code, ok := domain.GetCode(err)
	require.True(t, ok)
	require.Equal(t, errcodes.ListingNotFound, code)
}

func TestListingInvalidType(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	err := repo.Create(ctx, &entity.Listing{
		Type:         "barter",
		PropertyKind: "kvartira",
		Location:     "x",
		Price:        "1",
	})
	require.Error(t, err)

	code, ok := domain.GetCode(err)
	require.True(t, ok)
	require.Equal(t, errcodes.InvalidListingType, code)
}
