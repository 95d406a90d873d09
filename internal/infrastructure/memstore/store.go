// Package memstore — хранение лотов, избранного и короткоживущего кеша в
// памяти процесса. Данные не переживают рестарт: лоты восстанавливаются из
// апстрима при первом же запросе.
package memstore

import (
	"sync"
	"time"

	"auksion_bot/internal/domain/entity"
)

type cacheEntry struct {
	value    any
	storedAt time.Time
	ttl      time.Duration
}

type Store struct {
	mu sync.RWMutex

	lots      map[int64]entity.Lot
	favorites map[int64][]entity.UserFavorite

	cache map[string]cacheEntry

	now func() time.Time
}

type Option func(*Store)

// WithClock подменяет источник времени в тестах TTL.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		lots:      make(map[int64]entity.Lot),
		favorites: make(map[int64][]entity.UserFavorite),
		cache:     make(map[string]cacheEntry),
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Put сохраняет лот, перезаписывая предыдущую версию с тем же id.
func (s *Store) Put(lot entity.Lot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lots[lot.ID] = lot
}

func (s *Store) Get(lotID int64) (entity.Lot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lot, ok := s.lots[lotID]

	return lot, ok
}

func (s *Store) ListByStatus(status string) []entity.Lot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []entity.Lot

	for _, lot := range s.lots {
		if lot.Status == status {
			result = append(result, lot)
		}
	}

	return result
}

// AddFavorite идемпотентен: повторное добавление того же лота — no-op.
func (s *Store) AddFavorite(fav entity.UserFavorite) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.favorites[fav.UserID] {
		if existing.LotID == fav.LotID {
			return
		}
	}

	s.favorites[fav.UserID] = append(s.favorites[fav.UserID], fav)
}

func (s *Store) RemoveFavorite(userID, lotID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	favs := s.favorites[userID]

	for i, f := range favs {
		if f.LotID == lotID {
			s.favorites[userID] = append(favs[:i], favs[i+1:]...)
			return
		}
	}
}

func (s *Store) IsFavorite(userID, lotID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.favorites[userID] {
		if f.LotID == lotID {
			return true
		}
	}

	return false
}

// ListFavorites возвращает избранное в порядке добавления.
func (s *Store) ListFavorites(userID int64) []entity.UserFavorite {
	s.mu.RLock()
	defer s.mu.RUnlock()

	favs := s.favorites[userID]
	result := make([]entity.UserFavorite, len(favs))
	copy(result, favs)

	return result
}

// LotCount — сколько лотов сейчас в сторе.
func (s *Store) LotCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.lots)
}

// FavoriteUserIDs — все пользователи, у которых есть избранное.
func (s *Store) FavoriteUserIDs() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.favorites))

	for id, favs := range s.favorites {
		if len(favs) > 0 {
			ids = append(ids, id)
		}
	}

	return ids
}

func (s *Store) CacheSet(key string, value any, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[key] = cacheEntry{
		value:    value,
		storedAt: s.now(),
		ttl:      ttl,
	}
}

// CacheGet лениво вытесняет просроченную запись при чтении.
func (s *Store) CacheGet(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.cache[key]
	if !ok {
		return nil, false
	}

	if s.now().Sub(entry.storedAt) > entry.ttl {
		delete(s.cache, key)
		return nil, false
	}

	return entry.value, true
}
