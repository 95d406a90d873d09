package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"auksion_bot/internal/domain"
	"auksion_bot/internal/domain/entity"
	service "auksion_bot/internal/domain/service/lots"
	"auksion_bot/internal/infrastructure/auksion"
	"auksion_bot/internal/infrastructure/memstore"
	"auksion_bot/pkg/errcodes"
)

type fetchCall struct {
	groupID    string
	categoryID int
	regionID   int
	page       int
	perPage    int
}

type sourceMock struct {
	fetchCalls  []fetchCall
	fetchPage   func(call fetchCall) ([]entity.Lot, error)
	fetchDetail func(lotID int64) (entity.Lot, error)
	search      func(query string) ([]entity.Lot, error)
}

func (m *sourceMock) FetchPage(
	_ context.Context,
	groupID string,
	categoryID, regionID, page, perPage int,
) ([]entity.Lot, error) {
	call := fetchCall{groupID, categoryID, regionID, page, perPage}
	m.fetchCalls = append(m.fetchCalls, call)

	if m.fetchPage == nil {
		return nil, nil
	}

	return m.fetchPage(call)
}

func (m *sourceMock) FetchDetail(_ context.Context, lotID int64) (entity.Lot, error) {
	if m.fetchDetail == nil {
		return entity.Lot{}, &auksion.FetchError{Endpoint: "/lot-info", StatusCode: 404}
	}

	return m.fetchDetail(lotID)
}

func (m *sourceMock) Search(_ context.Context, query string) ([]entity.Lot, error) {
	if m.search == nil {
		return nil, nil
	}

	return m.search(query)
}

func TestListCategoryResolvesFilter(t *testing.T) {
	source := &sourceMock{
		fetchPage: func(fetchCall) ([]entity.Lot, error) {
			return []entity.Lot{{ID: 1, Status: "active"}}, nil
		},
	}
	svc := service.NewLotService(source, memstore.New())

	lots, err := svc.ListCategory(context.Background(), "kochmas_mulk", "kop_qavatli", "toshkent_sh", 2)
	require.NoError(t, err)
	require.Len(t, lots, 1)

	require.Len(t, source.fetchCalls, 1)
	call := source.fetchCalls[0]
	require.Equal(t, "1", call.groupID)
	require.Equal(t, 3, call.categoryID)
	require.Equal(t, 13, call.regionID)
	require.Equal(t, 2, call.page)
}

func TestListCategoryUnknownSubCategoryFailsSoft(t *testing.T) {
	source := &sourceMock{}
	svc := service.NewLotService(source, memstore.New())

	lots, err := svc.ListCategory(context.Background(), "kochmas_mulk", "no_such", "all", 1)
	require.NoError(t, err)
	require.Empty(t, lots)
	require.Empty(t, source.fetchCalls)
}

func TestListCategoryUpstreamErrorCollapsesToEmpty(t *testing.T) {
	source := &sourceMock{
		fetchPage: func(fetchCall) ([]entity.Lot, error) {
			return nil, &auksion.FetchError{Endpoint: "/lots", StatusCode: 502}
		},
	}
	svc := service.NewLotService(source, memstore.New())

	lots, err := svc.ListCategory(context.Background(), "kochmas_mulk", "kop_qavatli", "all", 1)
	require.NoError(t, err)
	require.Empty(t, lots)
}

func TestSearchByPriceFanOut(t *testing.T) {
	lotsByGroup := map[string][]entity.Lot{
		"1": {
			{ID: 1, StartPrice: 50_000_000, Status: "active"},
			{ID: 2, StartPrice: 150_000_000, CurrentPrice: 200_000_000, Status: "active"},
		},
		"6": {{ID: 3, StartPrice: 450_000_000, Status: "active"}},
		"5": {{ID: 4, StartPrice: 900_000_000, Status: "active"}},
	}

	source := &sourceMock{
		fetchPage: func(call fetchCall) ([]entity.Lot, error) {
			return lotsByGroup[call.groupID], nil
		},
	}
	svc := service.NewLotService(source, memstore.New())

	found, err := svc.SearchByPrice(context.Background(), 100_000_000, 500_000_000)
	require.NoError(t, err)
	require.Len(t, found, 3)

	// цена берётся текущая, при её отсутствии стартовая; лот 2 приходит
	// из двух категорий группы "1"
	ids := []int64{found[0].ID, found[1].ID, found[2].ID}
	require.ElementsMatch(t, []int64{2, 2, 3}, ids)

	// веер обходит четыре категории одной страницей по 50
	require.Len(t, source.fetchCalls, 4)
	for _, call := range source.fetchCalls {
		require.Equal(t, 1, call.page)
		require.Equal(t, 50, call.perPage)
	}

	// повторный запрос берётся из мемоизации
	_, err = svc.SearchByPrice(context.Background(), 0, 1_000_000_000)
	require.NoError(t, err)
	require.Len(t, source.fetchCalls, 4)
}

func TestSearchByPriceInvalidRange(t *testing.T) {
	svc := service.NewLotService(&sourceMock{}, memstore.New())

	_, err := svc.SearchByPrice(context.Background(), 500, 100)
	require.Error(t, err)

	code, ok := domain.GetCode(err)
	require.True(t, ok)
	require.Equal(t, errcodes.InvalidPriceRange, code)
}

func TestSearchByLocationFiltersSubstring(t *testing.T) {
	source := &sourceMock{
		search: func(string) ([]entity.Lot, error) {
			return []entity.Lot{
				{ID: 1, Location: "Toshkent shahri, Chilonzor"},
				{ID: 2, Location: "Samarqand viloyati"},
				{ID: 3},
			}, nil
		},
	}
	svc := service.NewLotService(source, memstore.New())

	found, err := svc.SearchByLocation(context.Background(), "toshkent")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, int64(1), found[0].ID)
}

func TestLotDetailStoreFirst(t *testing.T) {
	store := memstore.New()
	store.Put(entity.Lot{ID: 7, Name: "cached", Images: []entity.LotImage{{FileHash: "h"}}})

	detailCalls := 0
	source := &sourceMock{
		fetchDetail: func(int64) (entity.Lot, error) {
			detailCalls++
			return entity.Lot{}, nil
		},
	}
	svc := service.NewLotService(source, store)

	lot, err := svc.LotDetail(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, "cached", lot.Name)
	require.Zero(t, detailCalls)
}

func TestLotDetailFetchesWhenIncomplete(t *testing.T) {
	store := memstore.New()
	// лот из листинга, без изображений: карточка дотягивается из апстрима
	store.Put(entity.Lot{ID: 8, Name: "listing"})

	source := &sourceMock{
		fetchDetail: func(lotID int64) (entity.Lot, error) {
			return entity.Lot{ID: lotID, Name: "detailed", Images: []entity.LotImage{{FileHash: "x"}}}, nil
		},
	}
	svc := service.NewLotService(source, store)

	lot, err := svc.LotDetail(context.Background(), 8)
	require.NoError(t, err)
	require.Equal(t, "detailed", lot.Name)
}

func TestLotDetailNotFound(t *testing.T) {
	svc := service.NewLotService(&sourceMock{}, memstore.New())

	_, err := svc.LotDetail(context.Background(), 404)
	require.Error(t, err)

	code, ok := domain.GetCode(err)
	require.True(t, ok)
	require.Equal(t, errcodes.LotNotFound, code)

	_, err = svc.LotDetail(context.Background(), 0)
	code, ok = domain.GetCode(err)
	require.True(t, ok)
	require.Equal(t, errcodes.InvalidLotID, code)
}

func TestFavoritesLifecycle(t *testing.T) {
	store := memstore.New()
	store.Put(entity.Lot{ID: 1, Name: "one"})
	store.Put(entity.Lot{ID: 2, Name: "two"})

	svc := service.NewLotService(&sourceMock{}, store)

	svc.AddFavorite(100, 1)
	svc.AddFavorite(100, 1)
	svc.AddFavorite(100, 2)
	require.True(t, svc.IsFavorite(100, 1))

	page, err := svc.Favorites(context.Background(), 100, 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.Equal(t, "one", page.Items[0].Name)

	svc.RemoveFavorite(100, 1)
	require.False(t, svc.IsFavorite(100, 1))
}

func TestCheckFavoritesAlerts(t *testing.T) {
	store := memstore.New()
	store.Put(entity.Lot{ID: 1, StartPrice: 100, CurrentPrice: 100, Status: "active"})
	store.Put(entity.Lot{ID: 2, StartPrice: 100, CurrentPrice: 100, Status: "active"})
	store.Put(entity.Lot{ID: 3, StartPrice: 100, CurrentPrice: 100, Status: "active"})

	fresh := map[int64]entity.Lot{
		1: {ID: 1, StartPrice: 100, CurrentPrice: 150, Status: "active"},
		2: {ID: 2, StartPrice: 100, CurrentPrice: 100, Status: "finished"},
		3: {ID: 3, StartPrice: 100, CurrentPrice: 100, Status: "active"},
	}
	source := &sourceMock{
		fetchDetail: func(lotID int64) (entity.Lot, error) {
			return fresh[lotID], nil
		},
	}

	svc := service.NewLotService(source, store)
	svc.AddFavorite(9, 1)
	svc.AddFavorite(9, 2)
	svc.AddFavorite(9, 3)

	alerts := svc.CheckFavorites(context.Background())
	require.Len(t, alerts, 2)

	byLot := map[int64]entity.LotAlert{}
	for _, a := range alerts {
		byLot[a.Lot.ID] = a
	}

	require.Equal(t, entity.AlertPriceChanged, byLot[1].Reason)
	require.Equal(t, 100.0, byLot[1].OldPrice)
	require.Equal(t, entity.AlertAuctionClosed, byLot[2].Reason)
}
