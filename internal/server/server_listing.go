package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"

	"auksion_bot/internal/domain"
	"auksion_bot/internal/domain/entity"
	"auksion_bot/pkg/errcodes"
	"auksion_bot/pkg/httpx/reply"
	"auksion_bot/pkg/httpx/req"
	"auksion_bot/pkg/rest"
)

type listingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id int64) (*entity.Listing, error)
	Search(ctx context.Context, listingType entity.ListingType, propertyKind, region string) ([]*entity.Listing, error)
	Delete(ctx context.Context, id int64) error
}

type ListingServer struct {
	listings listingRepository
}

func NewListingServer(listings listingRepository) ListingServer {
	return ListingServer{
		listings: listings,
	}
}

func (s ListingServer) postV1Listing(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.CreateListingRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	listing := newDomainListing(request)

	if err := s.listings.Create(ctx, listing); err != nil {
		return fmt.Errorf("listings.Create: %w", asFailure(err))
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTListing(listing))

	return nil
}

func (s ListingServer) getV1Listing(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("strconv.ParseInt: %w", err),
			failure.WithCode(errcodes.ValidationError),
		)
	}

	listing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("listings.GetByID: %w", asFailure(err))
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTListing(listing))

	return nil
}

func (s ListingServer) getV1Listings(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	query := r.URL.Query()

	kind := query.Get("propertyKind")
	if kind == "" {
		return failure.NewInvalidArgumentError(
			"propertyKind is required",
			failure.WithCode(errcodes.ValidationError),
		)
	}

	listingType := entity.ParseListingType(query.Get("type"))

	listings, err := s.listings.Search(ctx, listingType, kind, query.Get("region"))
	if err != nil {
		return fmt.Errorf("listings.Search: %w", asFailure(err))
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTListingList(listings))

	return nil
}

func (s ListingServer) deleteV1Listing(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("strconv.ParseInt: %w", err),
			failure.WithCode(errcodes.ValidationError),
		)
	}

	if err = s.listings.Delete(ctx, id); err != nil {
		return fmt.Errorf("listings.Delete: %w", asFailure(err))
	}

	reply.OK(w)

	return nil
}

// asFailure переводит доменные коды в типизированные ошибки failure,
// чтобы reply.Error выбрал корректный HTTP статус.
func asFailure(err error) error {
	code, ok := domain.GetCode(err)
	if !ok {
		return err
	}

	switch code {
	case errcodes.ListingNotFound:
		return failure.NewNotFoundErrorFromError(err, failure.WithCode(errcodes.ListingNotFound))
	case errcodes.InvalidListingType:
		return failure.NewInvalidArgumentErrorFromError(err, failure.WithCode(errcodes.InvalidListingType))
	default:
		return err
	}
}
