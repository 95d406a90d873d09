package catalog_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"auksion_bot/internal/domain/catalog"
)

func TestFilterFor(t *testing.T) {
	f, ok := catalog.FilterFor("tadbirkorlik")
	require.True(t, ok)
	require.Equal(t, "6", f.GroupID)
	require.Equal(t, 46, f.CategoryID)
	require.False(t, f.Unconfirmed)

	_, ok = catalog.FilterFor("no_such_category")
	require.False(t, ok)
}

func TestEverySubCategoryHasFilter(t *testing.T) {
	for _, mc := range catalog.MainCategories() {
		for _, sc := range catalog.SubCategoriesOf(mc.Key) {
			f, ok := catalog.FilterFor(sc.Key)
			require.True(t, ok, "sub-category %q has no filter", sc.Key)
			require.NotEmpty(t, f.GroupID, "sub-category %q has empty groups_id", sc.Key)
		}
	}
}

func TestBreadcrumb(t *testing.T) {
	got := catalog.Breadcrumb("kochmas_mulk", "kop_qavatli")
	require.Equal(t, "E-AUKSION || Lotlar - Yangi lotlar || Ko'chmas mulk || Ko'p qavatli turar-joylar", got)

	got = catalog.Breadcrumb("kochmas_mulk", "")
	require.Equal(t, "E-AUKSION || Lotlar - Yangi lotlar || Ko'chmas mulk", got)
}

func TestRegionByKey(t *testing.T) {
	r, ok := catalog.RegionByKey("toshkent_sh")
	require.True(t, ok)
	require.Equal(t, 13, r.ID)
	require.False(t, r.AllRegions())

	all, ok := catalog.RegionByKey("all")
	require.True(t, ok)
	require.True(t, all.AllRegions())

	_, ok = catalog.RegionByKey("atlantis")
	require.False(t, ok)
}

func TestValidateCountsUnconfirmed(t *testing.T) {
	n := catalog.Validate(context.Background(), slog.Default())
	require.Positive(t, n)
}
