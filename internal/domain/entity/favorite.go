package entity

import "time"

// UserFavorite — закладка пользователя на лот. Пара (user, lot) уникальна.
type UserFavorite struct {
	UserID        int64     `json:"user_id"`
	LotID         int64     `json:"lot_id"`
	AddedAt       time.Time `json:"added_at"`
	NotifyEnabled bool      `json:"notify_enabled"`
}

// UserBid смоделирован на будущее: живой код его не пишет.
type UserBid struct {
	UserID    int64     `json:"user_id"`
	LotID     int64     `json:"lot_id"`
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
	Position  int       `json:"position"`
}
