package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"auksion_bot/internal/domain"
	"auksion_bot/internal/domain/catalog"
	"auksion_bot/internal/domain/entity"
	"auksion_bot/internal/infrastructure/auksion"
	"auksion_bot/internal/infrastructure/memstore"
	"auksion_bot/pkg/errcodes"
	"auksion_bot/pkg/logx"
)

const searchCacheTTL = 2 * time.Minute

// пары (groups_id, categories_id) для веерного поиска по цене:
// самые наполненные категории апстрима
//
//nolint:gochecknoglobals
var priceSearchFilters = []catalog.Filter{
	{GroupID: "1", CategoryID: 3},
	{GroupID: "1", CategoryID: 2},
	{GroupID: "6", CategoryID: 46},
	{GroupID: "5", CategoryID: 27},
}

type RemoteSource interface {
	FetchPage(ctx context.Context, groupID string, categoryID, regionID, page, perPage int) ([]entity.Lot, error)
	FetchDetail(ctx context.Context, lotID int64) (entity.Lot, error)
	Search(ctx context.Context, query string) ([]entity.Lot, error)
}

type LotService struct {
	source      RemoteSource
	store       *memstore.Store
	searchCache *cache.Cache
	now         func() time.Time
}

func NewLotService(source RemoteSource, store *memstore.Store) *LotService {
	return &LotService{
		source:      source,
		store:       store,
		searchCache: cache.New(searchCacheTTL, searchCacheTTL),
		now:         time.Now,
	}
}

func (s *LotService) WithClock(now func() time.Time) *LotService {
	s.now = now
	return s
}

// ListCategory отдаёт страницу лотов категории. Неизвестная суб-категория
// или регион не роняют диалог: возвращается пустая выдача.
func (s *LotService) ListCategory(
	ctx context.Context,
	mainKey, subKey, regionKey string,
	page int,
) ([]entity.Lot, error) {
	filter, ok := catalog.FilterFor(subKey)
	if !ok {
		logger(ctx).Warn("unknown sub-category requested",
			slog.String("main_category", mainKey),
			slog.String("sub_category", subKey),
		)

		return nil, nil
	}

	regionID := 0

	if regionKey != "" && regionKey != "all" {
		region, ok := catalog.RegionByKey(regionKey)
		if !ok {
			logger(ctx).Warn("unknown region requested", slog.String("region", regionKey))

			return nil, nil
		}

		regionID = region.ID
	}

	lots, err := s.source.FetchPage(ctx, filter.GroupID, filter.CategoryID, regionID, page, 0)
	if err != nil {
		return nil, s.collapseFetchError(ctx, err)
	}

	return lots, nil
}

// SearchText ищет по названию и адресу.
func (s *LotService) SearchText(ctx context.Context, query string) ([]entity.Lot, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	lots, err := s.source.Search(ctx, query)
	if err != nil {
		return nil, s.collapseFetchError(ctx, err)
	}

	return lots, nil
}

// SearchByLocation — текстовый поиск, сужённый до вхождения в адрес лота.
func (s *LotService) SearchByLocation(ctx context.Context, query string) ([]entity.Lot, error) {
	lots, err := s.SearchText(ctx, query)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	filtered := make([]entity.Lot, 0, len(lots))

	for _, lot := range lots {
		if lot.Location != "" && strings.Contains(strings.ToLower(lot.Location), needle) {
			filtered = append(filtered, lot)
		}
	}

	return filtered, nil
}

// SearchByPrice веером обходит основные категории и фильтрует по цене на
// своей стороне: у апстрима нет ценового фильтра. Результат веера
// мемоизируется на короткий срок.
func (s *LotService) SearchByPrice(ctx context.Context, minPrice, maxPrice float64) ([]entity.Lot, error) {
	if minPrice < 0 || maxPrice < minPrice {
		return nil, domain.NewError(errcodes.InvalidPriceRange, "minimum price exceeds maximum")
	}

	all, err := s.fanOutLots(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]entity.Lot, 0, len(all))

	for _, lot := range all {
		price := lot.EffectivePrice()
		if price >= minPrice && price <= maxPrice {
			filtered = append(filtered, lot)
		}
	}

	return filtered, nil
}

func (s *LotService) fanOutLots(ctx context.Context) ([]entity.Lot, error) {
	const cacheKey = "price-fanout"

	if cached, ok := s.searchCache.Get(cacheKey); ok {
		return cached.([]entity.Lot), nil //nolint:forcetypeassert
	}

	var all []entity.Lot

	for _, f := range priceSearchFilters {
		lots, err := s.source.FetchPage(ctx, f.GroupID, f.CategoryID, 0, 1, 50)
		if err != nil {
			if collapsed := s.collapseFetchError(ctx, err); collapsed != nil {
				return nil, collapsed
			}

			continue
		}

		all = append(all, lots...)
	}

	s.searchCache.SetDefault(cacheKey, all)

	return all, nil
}

// LotDetail сначала смотрит в стор и ходит в апстрим, только если карточки
// там нет или она неполная (без изображений).
func (s *LotService) LotDetail(ctx context.Context, lotID int64) (entity.Lot, error) {
	if lotID <= 0 {
		return entity.Lot{}, domain.NewError(errcodes.InvalidLotID, fmt.Sprintf("invalid lot id %d", lotID))
	}

	if lot, ok := s.store.Get(lotID); ok && len(lot.Images) > 0 {
		return lot, nil
	}

	lot, err := s.source.FetchDetail(ctx, lotID)
	if err != nil {
		var fetchErr *auksion.FetchError
		if errors.As(err, &fetchErr) {
			return entity.Lot{}, domain.WrapError(err, errcodes.LotNotFound, fmt.Sprintf("lot %d", lotID))
		}

		return entity.Lot{}, fmt.Errorf("source.FetchDetail: %w", err)
	}

	return lot, nil
}

// AddFavorite идемпотентно добавляет лот в избранное.
func (s *LotService) AddFavorite(userID, lotID int64) {
	s.store.AddFavorite(entity.UserFavorite{
		UserID:        userID,
		LotID:         lotID,
		AddedAt:       s.now(),
		NotifyEnabled: true,
	})
}

func (s *LotService) RemoveFavorite(userID, lotID int64) {
	s.store.RemoveFavorite(userID, lotID)
}

func (s *LotService) IsFavorite(userID, lotID int64) bool {
	return s.store.IsFavorite(userID, lotID)
}

// Favorites возвращает страницу избранного с лотами из стора. Лоты,
// которых в сторе уже нет, пропускаются.
func (s *LotService) Favorites(ctx context.Context, userID int64, page int) (Page[entity.Lot], error) {
	favs := s.store.ListFavorites(userID)
	lots := make([]entity.Lot, 0, len(favs))

	for _, fav := range favs {
		lot, ok := s.store.Get(fav.LotID)
		if !ok {
			fetched, err := s.LotDetail(ctx, fav.LotID)
			if err != nil {
				logger(ctx).Warn("favorite lot is gone",
					slog.Int64("user_id", userID),
					slog.Int64("lot_id", fav.LotID),
					logx.Error(err),
				)

				continue
			}

			lot = fetched
		}

		lots = append(lots, lot)
	}

	return Paginate(lots, page, DefaultPerPage), nil
}

// CheckFavorites обходит избранные лоты всех пользователей и собирает
// изменения цены и статуса.
func (s *LotService) CheckFavorites(ctx context.Context) []entity.LotAlert {
	var alerts []entity.LotAlert

	for _, userID := range s.store.FavoriteUserIDs() {
		for _, fav := range s.store.ListFavorites(userID) {
			if !fav.NotifyEnabled {
				continue
			}

			old, hadOld := s.store.Get(fav.LotID)

			fresh, err := s.source.FetchDetail(ctx, fav.LotID)
			if err != nil {
				logger(ctx).Warn("favorite refresh failed",
					slog.Int64("lot_id", fav.LotID),
					logx.Error(err),
				)

				continue
			}

			if !hadOld {
				continue
			}

			switch {
			case !fresh.IsActive() && old.IsActive():
				alerts = append(alerts, entity.LotAlert{
					UserID:   userID,
					Lot:      fresh,
					OldPrice: old.EffectivePrice(),
					Reason:   entity.AlertAuctionClosed,
				})
			case fresh.EffectivePrice() != old.EffectivePrice():
				alerts = append(alerts, entity.LotAlert{
					UserID:   userID,
					Lot:      fresh,
					OldPrice: old.EffectivePrice(),
					Reason:   entity.AlertPriceChanged,
				})
			}
		}
	}

	return alerts
}

// Stats — размер кеша лотов и число пользователей с избранным.
func (s *LotService) Stats() (lotCount, userCount int) {
	return s.store.LotCount(), len(s.store.FavoriteUserIDs())
}

// collapseFetchError гасит ошибку апстрима: листинги при недоступном
// e-auksion показывают пустую выдачу, остальные ошибки поднимаются выше.
func (s *LotService) collapseFetchError(ctx context.Context, err error) error {
	var fetchErr *auksion.FetchError
	if errors.As(err, &fetchErr) {
		logger(ctx).Warn("upstream fetch failed, serving empty result", logx.Error(err))

		return nil
	}

	return fmt.Errorf("fetch: %w", err)
}
