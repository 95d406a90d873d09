package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"auksion_bot/internal/domain"
	"auksion_bot/internal/domain/entity"
	"auksion_bot/internal/server"
	"auksion_bot/pkg/errcodes"
	"auksion_bot/pkg/rest"
	"auksion_bot/pkg/tests"
)

type listingRepoStub struct {
	nextID   int64
	listings map[int64]*entity.Listing
}

func newListingRepoStub() *listingRepoStub {
	return &listingRepoStub{
		listings: make(map[int64]*entity.Listing),
	}
}

func (s *listingRepoStub) Create(_ context.Context, listing *entity.Listing) error {
	s.nextID++
	listing.ID = s.nextID
	listing.CreatedAt = time.Now()
	s.listings[listing.ID] = listing

	return nil
}

func (s *listingRepoStub) GetByID(_ context.Context, id int64) (*entity.Listing, error) {
	listing, ok := s.listings[id]
	if !ok {
		return nil, domain.NewError(errcodes.ListingNotFound, "listing not found")
	}

	return listing, nil
}

func (s *listingRepoStub) Search(
	_ context.Context,
	listingType entity.ListingType,
	propertyKind, region string,
) ([]*entity.Listing, error) {
	var found []*entity.Listing

	for _, listing := range s.listings {
		if listing.Type != listingType || listing.PropertyKind != propertyKind {
			continue
		}
		if region != "" && listing.Region != region {
			continue
		}
		found = append(found, listing)
	}

	return found, nil
}

func (s *listingRepoStub) Delete(_ context.Context, id int64) error {
	if _, ok := s.listings[id]; !ok {
		return domain.NewError(errcodes.ListingNotFound, "listing not found")
	}

	delete(s.listings, id)

	return nil
}

func newTestServer(t *testing.T) (tests.APIClient, *listingRepoStub) {
	t.Helper()

	repo := newListingRepoStub()

	router := chi.NewRouter()
	server.NewServer(server.NewListingServer(repo)).RegisterRoutes(router)

	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	return tests.NewAPIClient(ts.URL, ts.Client()), repo
}

func TestListingLifecycle(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestServer(t)

	request := rest.CreateListingRequest{
		Type:         "sale",
		PropertyKind: "kvartira",
		Location:     "Toshkent, Chilonzor",
		Price:        "850000000",
		Region:       "toshkent_sh",
	}

	var created rest.Listing
	resp, err := client.Post(ctx, "/v1/listings", nil, request, &created, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, int64(1), created.ID)
	require.Equal(t, "sale", created.Type)

	var fetched rest.Listing
	resp, err = client.Get(ctx, "/v1/listings/1", nil, &fetched, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, created.Location, fetched.Location)

	resp, err = client.Delete(ctx, "/v1/listings/1", nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var restErr rest.Error
	resp, err = client.Get(ctx, "/v1/listings/1", nil, nil, &restErr)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, rest.ErrorCode(errcodes.ListingNotFound), restErr.Code)
}

func TestListingSearch(t *testing.T) {
	ctx := context.Background()
	client, repo := newTestServer(t)

	seed := []*entity.Listing{
		{Type: entity.ListingSale, PropertyKind: "kvartira", Location: "Chilonzor", Price: "1", Region: "toshkent_sh"},
		{Type: entity.ListingSale, PropertyKind: "kvartira", Location: "Samarqand", Price: "2", Region: "samarqand"},
		{Type: entity.ListingRent, PropertyKind: "kvartira", Location: "Yunusobod", Price: "3", Region: "toshkent_sh"},
	}
	for _, listing := range seed {
		require.NoError(t, repo.Create(ctx, listing))
	}

	var found rest.ListingList
	resp, err := client.Get(ctx, "/v1/listings?type=sale&propertyKind=kvartira&region=toshkent_sh", nil, &found, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, found.Total)
	require.Equal(t, "Chilonzor", found.Items[0].Location)

	resp, err = client.Get(ctx, "/v1/listings?type=sale&propertyKind=kvartira", nil, &found, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 2, found.Total)
}

func TestListingValidation(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestServer(t)

	var restErr rest.Error
	resp, err := client.PostJSON(ctx, "/v1/listings", nil, `{"type":"sale"}`, nil, &restErr)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = client.Get(ctx, "/v1/listings", nil, nil, &restErr)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = client.Get(ctx, "/v1/listings/abc", nil, nil, &restErr)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
