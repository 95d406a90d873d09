// Package session хранит состояние диалога (шаг поиска, заполняемая заявка)
// в Redis, чтобы оно переживало рестарты бота.
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
)

//nolint:gochecknoglobals
var json = jsoniter.ConfigCompatibleWithStandardLibrary

type State string

const (
	StateNone           State = ""
	StateSearchQuery    State = "search_query"
	StateInquiryComment State = "inquiry_comment"
)

// Типы поиска, запоминаемые между сообщениями диалога.
const (
	SearchText     = "text"
	SearchLotID    = "id"
	SearchPrice    = "price"
	SearchLocation = "location"
)

type Session struct {
	State      State  `json:"state"`
	SearchType string `json:"search_type,omitempty"`
	LotID      int64  `json:"lot_id,omitempty"`
}

type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

func key(chatID int64) string {
	return "session:" + strconv.FormatInt(chatID, 10)
}

// Get возвращает сессию чата; отсутствующая сессия — пустая, не ошибка.
func (s *Store) Get(ctx context.Context, chatID int64) (Session, error) {
	raw, err := s.client.Get(ctx, key(chatID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Session{}, nil
		}

		return Session{}, fmt.Errorf("redis.Get: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return Session{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return sess, nil
}

func (s *Store) Set(ctx context.Context, chatID int64, sess Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := s.client.Set(ctx, key(chatID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis.Set: %w", err)
	}

	return nil
}

func (s *Store) Clear(ctx context.Context, chatID int64) error {
	if err := s.client.Del(ctx, key(chatID)).Err(); err != nil {
		return fmt.Errorf("redis.Del: %w", err)
	}

	return nil
}
