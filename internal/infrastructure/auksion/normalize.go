package auksion

import (
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"auksion_bot/internal/domain/entity"
)

//nolint:gochecknoglobals
var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultStatus   = "upcoming"
	defaultCategory = "other"

	propertyNameMaxLen  = 50
	propertyValueMaxLen = 200
)

//nolint:gochecknoglobals
var dateLayouts = []string{
	"02.01.2006 15:04",
	"02.01.2006 15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"02.01.2006",
}

// looseFloat терпит числа, числа в кавычках и null.
type looseFloat float64

func (f *looseFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil //nolint:nilerr // нечисловое значение считаем отсутствующим
	}

	*f = looseFloat(v)

	return nil
}

// looseString терпит строки, числа и null.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		*s = ""
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}

		*s = looseString(v)

		return nil
	}

	*s = looseString(raw)

	return nil
}

// namedValue — объект вида {"name_uz": ...}; апстрим иногда шлёт вместо него
// плоскую строку.
type namedValue struct {
	NameUz string
}

func (n *namedValue) UnmarshalJSON(data []byte) error {
	if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
		var obj struct {
			NameUz looseString `json:"name_uz"`
		}

		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}

		n.NameUz = string(obj.NameUz)

		return nil
	}

	var s looseString
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	n.NameUz = string(s)

	return nil
}

type rawDetail struct {
	Name              *namedValue `json:"name"`
	DetailValueString looseString `json:"detail_value_string"`
	DetailValue       looseString `json:"detail_value"`
}

type rawImage struct {
	FileHash           string      `json:"file_hash"`
	FileName           looseString `json:"file_name"`
	Description        looseString `json:"description"`
	ImagePositionsName looseString `json:"image_positions_name"`
}

type rawLot struct {
	ID                int64       `json:"id"`
	Name              looseString `json:"name"`
	LotNumber         looseString `json:"lot_number"`
	StartPrice        looseFloat  `json:"start_price"`
	CurrentPrice      *looseFloat `json:"current_price"`
	StepSumma         *looseFloat `json:"step_summa"`
	MinIncrement      *looseFloat `json:"min_increment"`
	LotStatusesName   *namedValue `json:"lot_statuses_name"`
	Status            looseString `json:"status"`
	CategoriesName    *namedValue `json:"confiscant_categories_name"`
	Category          looseString `json:"category"`
	StartTimeStr      looseString `json:"start_time_str"`
	AuctionDateStr    looseString `json:"auction_date_str"`
	AdditionalInfo    looseString `json:"additional_info"`
	Description       looseString `json:"description"`
	JoylashganManzil  looseString `json:"joylashgan_manzil"`
	Location          looseString `json:"location"`
	BidsCount         int         `json:"bids_count"`
	ParticipantsCount int         `json:"participants_count"`
	BaholanganNarx    *looseFloat `json:"baholangan_narx"`
	EstimatedValue    *looseFloat `json:"estimated_value"`
	RegionName        *namedValue `json:"region_name"`
	AreaName          *namedValue `json:"area_name"`
	Details           []rawDetail `json:"confiscant_details_list"`
	ListImages        []rawImage  `json:"confiscant_images_list"`

	// поля детального ответа /lot-info
	FileHash string     `json:"file_hash"`
	Images   []rawImage `json:"images"`
	Gallery  []rawImage `json:"gallery"`
}

func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}

	return nil
}

func isPlaceholder(s string) bool {
	switch strings.TrimSpace(s) {
	case "", "-", "null", "None":
		return true
	}

	return false
}

func truncate(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen]
	}

	return s
}

// propertyKey сводит известные атрибуты апстрима к стабильным ключам,
// остальные оставляет под исходным (усечённым) именем.
func propertyKey(name string) string {
	lower := strings.ToLower(name)

	switch {
	case strings.Contains(lower, "maydoni"):
		return "area"
	case strings.Contains(lower, "qurilgan yili"), strings.Contains(lower, "year"):
		return "year_built"
	case strings.Contains(lower, "balansda saqlovchi") && strings.Contains(lower, "nomi"):
		return "balance_holder"
	case strings.Contains(lower, "viloyat"), strings.Contains(lower, "region"):
		return "region"
	case strings.Contains(lower, "tuman"), strings.Contains(lower, "district"):
		return "district"
	}

	return truncate(name, propertyNameMaxLen)
}

func (r rawLot) properties() map[string]string {
	if len(r.Details) == 0 {
		return map[string]string{}
	}

	props := make(map[string]string, len(r.Details))

	for _, d := range r.Details {
		name := ""
		if d.Name != nil {
			name = d.Name.NameUz
		}

		value := string(d.DetailValueString)
		if value == "" {
			value = string(d.DetailValue)
		}

		if name == "" || isPlaceholder(value) {
			continue
		}

		props[propertyKey(name)] = truncate(value, propertyValueMaxLen)
	}

	return props
}

func (r rawLot) status() string {
	if r.LotStatusesName != nil && r.LotStatusesName.NameUz != "" {
		return r.LotStatusesName.NameUz
	}

	if r.Status != "" {
		return string(r.Status)
	}

	return defaultStatus
}

func (r rawLot) category() string {
	if r.CategoriesName != nil && r.CategoriesName.NameUz != "" {
		return r.CategoriesName.NameUz
	}

	if r.Category != "" {
		return string(r.Category)
	}

	return defaultCategory
}

func (r rawLot) location() string {
	if r.JoylashganManzil != "" {
		return string(r.JoylashganManzil)
	}

	if r.Location != "" {
		return string(r.Location)
	}

	var parts []string

	if r.RegionName != nil && r.RegionName.NameUz != "" {
		parts = append(parts, r.RegionName.NameUz)
	}

	if r.AreaName != nil && r.AreaName.NameUz != "" {
		parts = append(parts, r.AreaName.NameUz)
	}

	return strings.Join(parts, ", ")
}

func (r rawLot) listImages() []entity.LotImage {
	images := make([]entity.LotImage, 0, len(r.ListImages))

	for _, img := range r.ListImages {
		if img.FileHash == "" {
			continue
		}

		name := string(img.Description)
		if name == "" {
			name = string(img.ImagePositionsName)
		}

		images = append(images, entity.LotImage{FileHash: img.FileHash, FileName: name})
	}

	return images
}

// detailImages собирает рисунки детального ответа: основной file_hash
// первым, затем images и gallery.
func (r rawLot) detailImages() []entity.LotImage {
	images := make([]entity.LotImage, 0, len(r.Images)+len(r.Gallery)+1)

	if r.FileHash != "" {
		images = append(images, entity.LotImage{FileHash: r.FileHash, FileName: "main_image"})
	}

	for _, img := range append(r.Images, r.Gallery...) {
		if img.FileHash == "" {
			continue
		}

		images = append(images, entity.LotImage{FileHash: img.FileHash, FileName: string(img.FileName)})
	}

	return images
}

// toLot нормализует сырой ответ апстрима в доменный лот.
func (r rawLot) toLot() entity.Lot {
	currentPrice := float64(r.StartPrice)
	if r.CurrentPrice != nil {
		currentPrice = float64(*r.CurrentPrice)
	}

	minIncrement := 0.0

	switch {
	case r.StepSumma != nil:
		minIncrement = float64(*r.StepSumma)
	case r.MinIncrement != nil:
		minIncrement = float64(*r.MinIncrement)
	}

	var estimated *float64

	switch {
	case r.BaholanganNarx != nil && *r.BaholanganNarx != 0:
		v := float64(*r.BaholanganNarx)
		estimated = &v
	case r.EstimatedValue != nil && *r.EstimatedValue != 0:
		v := float64(*r.EstimatedValue)
		estimated = &v
	}

	startStr := string(r.StartTimeStr)
	if startStr == "" {
		startStr = string(r.AuctionDateStr)
	}

	description := string(r.AdditionalInfo)
	if description == "" {
		description = string(r.Description)
	}

	return entity.Lot{
		ID:                r.ID,
		Name:              string(r.Name),
		LotNumber:         string(r.LotNumber),
		StartPrice:        float64(r.StartPrice),
		CurrentPrice:      currentPrice,
		MinIncrement:      minIncrement,
		Status:            r.status(),
		Category:          r.category(),
		AuctionStart:      parseDate(startStr),
		Description:       description,
		Location:          r.location(),
		Images:            r.listImages(),
		BidsCount:         r.BidsCount,
		ParticipantsCount: r.ParticipantsCount,
		EstimatedValue:    estimated,
		Properties:        r.properties(),
	}
}
