package entity

import (
	"fmt"
	"time"
)

// Inquiry — заявка пользователя по лоту, уходит админу через notifier.
type Inquiry struct {
	ID       string
	UserID   int64
	FullName string
	Username string
	Phone    string
	Comment  string

	LotID    int64
	LotName  string
	LotPrice float64

	CreatedAt time.Time
}

// LotLink — публичная страница лота на сайте аукциона.
func (i Inquiry) LotLink() string {
	return fmt.Sprintf("https://e-auksion.uz/lot/%d", i.LotID)
}

// Причины уведомления по отслеживаемому лоту.
const (
	AlertPriceChanged  = "price_changed"
	AlertAuctionClosed = "auction_closed"
)

// LotAlert — уведомление об изменении отслеживаемого лота.
type LotAlert struct {
	UserID   int64
	Lot      Lot
	OldPrice float64
	Reason   string
}
