package entity

import "time"

// Статусы, при которых лот исключается из активных выдач.
const (
	StatusFinished  = "finished"
	StatusCompleted = "completed"
)

// LotImage — изображение лота. Живёт только внутри родительского Lot.
type LotImage struct {
	FileHash string `json:"file_hash"`
	FileName string `json:"file_name,omitempty"`
}

// URL собирает адрес картинки из базового URL файлового сервиса.
func (i LotImage) URL(imagesBaseURL string) string {
	return imagesBaseURL + "?file_hash=" + i.FileHash
}

// Lot — каноническое представление аукционного лота e-auksion.uz.
type Lot struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	LotNumber   string `json:"lot_number"`
	Category    string `json:"category"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`

	StartPrice     float64  `json:"start_price"`
	CurrentPrice   float64  `json:"current_price"`
	MinIncrement   float64  `json:"min_increment"`
	EstimatedValue *float64 `json:"estimated_value,omitempty"`

	Status string `json:"status"`

	AuctionStart *time.Time `json:"auction_start,omitempty"`
	AuctionEnd   *time.Time `json:"auction_end,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`

	Images     []LotImage        `json:"images,omitempty"`
	Documents  []string          `json:"documents,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`

	// Зарезервировано под live-торги, текущий апстрим эти поля не отдаёт
	BidsCount         int    `json:"bids_count"`
	ParticipantsCount int    `json:"participants_count"`
	ViewsCount        int    `json:"views_count"`
	WinnerID          *int64 `json:"winner_id,omitempty"`
	IsSold            bool   `json:"is_sold"`
}

// IsActive — лот ещё участвует в торгах.
func (l *Lot) IsActive() bool {
	return l.Status != StatusFinished && l.Status != StatusCompleted
}

// EffectivePrice — текущая цена, либо стартовая, если текущей нет.
func (l *Lot) EffectivePrice() float64 {
	if l.CurrentPrice > 0 {
		return l.CurrentPrice
	}

	return l.StartPrice
}
