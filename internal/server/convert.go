package server

import (
	"time"

	"auksion_bot/internal/domain/entity"
	"auksion_bot/pkg/lox"
	"auksion_bot/pkg/rest"
)

func newRESTListing(listing *entity.Listing) rest.Listing {
	return rest.Listing{
		ID:           listing.ID,
		Type:         string(listing.Type),
		PropertyKind: listing.PropertyKind,
		Location:     listing.Location,
		Price:        listing.Price,
		Comment:      listing.Comment,
		Media:        listing.Media,
		Region:       listing.Region,
		CreatedAt:    listing.CreatedAt.Format(time.RFC3339),
	}
}

func newRESTListingList(listings []*entity.Listing) rest.ListingList {
	items := lox.Map(listings, newRESTListing)

	return rest.ListingList{
		Items: items,
		Total: len(items),
	}
}

func newDomainListing(request rest.CreateListingRequest) *entity.Listing {
	return &entity.Listing{
		Type:         entity.ParseListingType(request.Type),
		PropertyKind: request.PropertyKind,
		Location:     request.Location,
		Price:        request.Price,
		Comment:      request.Comment,
		Media:        request.Media,
		Region:       request.Region,
	}
}
