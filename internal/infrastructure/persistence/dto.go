package persistence

import (
	"time"

	"auksion_bot/internal/domain/entity"
)

// listingSchema — представление таблицы listings в БД.
type listingSchema struct {
	ID           int64     `db:"id"`
	Type         string    `db:"type"`
	PropertyKind string    `db:"property_kind"`
	Location     string    `db:"location"`
	Price        string    `db:"price"`
	Comment      string    `db:"comment"`
	Media        string    `db:"media"`
	Region       string    `db:"region"`
	CreatedAt    time.Time `db:"created_at"`
}

func fromListing(e *entity.Listing) *listingSchema {
	return &listingSchema{
		ID:           e.ID,
		Type:         string(e.Type),
		PropertyKind: e.PropertyKind,
		Location:     e.Location,
		Price:        e.Price,
		Comment:      e.Comment,
		Media:        e.Media,
		Region:       e.Region,
		CreatedAt:    e.CreatedAt,
	}
}

func (s *listingSchema) toDomain() *entity.Listing {
	return &entity.Listing{
		ID:           s.ID,
		Type:         entity.ListingType(s.Type),
		PropertyKind: s.PropertyKind,
		Location:     s.Location,
		Price:        s.Price,
		Comment:      s.Comment,
		Media:        s.Media,
		Region:       s.Region,
		CreatedAt:    s.CreatedAt,
	}
}
