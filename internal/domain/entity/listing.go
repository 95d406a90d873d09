package entity

import (
	"strings"
	"time"
)

type ListingType string

const (
	ListingSale ListingType = "sale"
	ListingRent ListingType = "rent"
)

// ParseListingType приводит пользовательский ввод к одному из двух типов.
// Всё, что не похоже на продажу, считается арендой.
func ParseListingType(raw string) ListingType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sale", "sotish", "sotuv":
		return ListingSale
	default:
		return ListingRent
	}
}

// Listing — объявление о продаже/аренде, которое пользователи подают через бота.
type Listing struct {
	ID           int64       `json:"id"`
	Type         ListingType `json:"type"`
	PropertyKind string      `json:"property_kind"`
	Location     string      `json:"location"`
	Price        string      `json:"price"`
	Comment      string      `json:"comment,omitempty"`
	Media        string      `json:"media,omitempty"`
	Region       string      `json:"region,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}
