package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"auksion_bot/internal/domain/entity"
)

func TestLotIsActive(t *testing.T) {
	lot := entity.Lot{Status: "active"}
	require.True(t, lot.IsActive())

	lot.Status = entity.StatusFinished
	require.False(t, lot.IsActive())

	lot.Status = entity.StatusCompleted
	require.False(t, lot.IsActive())

	lot.Status = "upcoming"
	require.True(t, lot.IsActive())
}

func TestLotEffectivePrice(t *testing.T) {
	lot := entity.Lot{StartPrice: 100, CurrentPrice: 250}
	require.Equal(t, 250.0, lot.EffectivePrice())

	lot.CurrentPrice = 0
	require.Equal(t, 100.0, lot.EffectivePrice())
}

func TestLotImageURL(t *testing.T) {
	img := entity.LotImage{FileHash: "abc123"}
	require.Equal(t,
		"https://files.example/images?file_hash=abc123",
		img.URL("https://files.example/images"),
	)
}

func TestFormatPrice(t *testing.T) {
	require.Equal(t, "0 UZS", entity.FormatPrice(0))
	require.Equal(t, "950 UZS", entity.FormatPrice(950))
	require.Equal(t, "1,250,000 UZS", entity.FormatPrice(1_250_000))
	require.Equal(t, "100,000,000 UZS", entity.FormatPrice(100_000_000))
	require.Equal(t, "-5,000 UZS", entity.FormatPrice(-5000))
}

func TestParseListingType(t *testing.T) {
	require.Equal(t, entity.ListingSale, entity.ParseListingType("  Sotish "))
	require.Equal(t, entity.ListingSale, entity.ParseListingType("sale"))
	require.Equal(t, entity.ListingSale, entity.ParseListingType("SOTUV"))
	require.Equal(t, entity.ListingRent, entity.ParseListingType("ijara"))
	require.Equal(t, entity.ListingRent, entity.ParseListingType(""))
}
