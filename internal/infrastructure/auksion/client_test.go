package auksion_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"auksion_bot/internal/config"
	"auksion_bot/internal/infrastructure/auksion"
	"auksion_bot/internal/infrastructure/memstore"
)

func testConfig(baseURL string) config.Auksion {
	return config.Auksion{
		BaseURL:       baseURL,
		ImagesBaseURL: "https://img.example/images",
		UserAgent:     "test-agent",
		Timeout:       5 * time.Second,
		PerPage:       10,
		CacheTTL:      5 * time.Minute,
	}
}

func TestFetchPageSkipsFinishedLots(t *testing.T) {
	var gotPayload map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/lots", r.URL.Path)
		require.NoError(t, jsoniter.NewDecoder(r.Body).Decode(&gotPayload))

		_, _ = w.Write([]byte(`{"rows": [
			{"id": 1, "name": "active lot", "status": "active", "start_price": 100},
			{"id": 2, "name": "done lot", "status": "finished", "start_price": 200},
			{"id": 3, "name": "sold lot", "status": "completed", "start_price": 300},
			{"id": 4, "name": "upcoming lot", "start_price": 400}
		]}`))
	}))
	defer srv.Close()

	store := memstore.New()
	client := auksion.NewClient(testConfig(srv.URL), store)
	defer client.Close()

	lots, err := client.FetchPage(context.Background(), "1", 3, 13, 2, 0)
	require.NoError(t, err)
	require.Len(t, lots, 2)
	require.Equal(t, int64(1), lots[0].ID)
	require.Equal(t, int64(4), lots[1].ID)

	// завершённые лоты не оседают в сторе
	_, ok := store.Get(2)
	require.False(t, ok)
	_, ok = store.Get(1)
	require.True(t, ok)

	require.Equal(t, "1", gotPayload["confiscant_groups_id"])
	require.Equal(t, float64(3), gotPayload["confiscant_categories_id"])
	require.Equal(t, float64(13), gotPayload["regions_id"])
	require.Equal(t, float64(2), gotPayload["current_page"])
	require.Equal(t, float64(10), gotPayload["per_page"])
	require.Equal(t, float64(1), gotPayload["sort_type"])
	require.Equal(t, float64(-1), gotPayload["is_ownership"])
	require.Contains(t, gotPayload, "zz_md5")
	require.Contains(t, gotPayload, "mahallas_id")
	require.Nil(t, gotPayload["mahallas_id"])
}

func TestFetchPageAllRegionsSendsNull(t *testing.T) {
	var gotPayload map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, jsoniter.NewDecoder(r.Body).Decode(&gotPayload))
		_, _ = w.Write([]byte(`{"rows": []}`))
	}))
	defer srv.Close()

	client := auksion.NewClient(testConfig(srv.URL), memstore.New())
	defer client.Close()

	lots, err := client.FetchPage(context.Background(), "6", 46, 0, 1, 0)
	require.NoError(t, err)
	require.Empty(t, lots)
	require.Contains(t, gotPayload, "regions_id")
	require.Nil(t, gotPayload["regions_id"])
}

func TestFetchPageUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := auksion.NewClient(testConfig(srv.URL), memstore.New())
	defer client.Close()

	_, err := client.FetchPage(context.Background(), "1", 3, 0, 1, 0)
	require.Error(t, err)

	var fetchErr *auksion.FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, http.StatusBadGateway, fetchErr.StatusCode)
}

func TestSearchUsesHashtagAndAddress(t *testing.T) {
	var gotPayload map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, jsoniter.NewDecoder(r.Body).Decode(&gotPayload))
		_, _ = w.Write([]byte(`{"rows": [{"id": 10, "name": "Samarqand uy", "start_price": 1}]}`))
	}))
	defer srv.Close()

	client := auksion.NewClient(testConfig(srv.URL), memstore.New())
	defer client.Close()

	lots, err := client.Search(context.Background(), "samarqand")
	require.NoError(t, err)
	require.Len(t, lots, 1)

	require.Equal(t, "samarqand", gotPayload["hashtag"])
	require.Equal(t, "samarqand", gotPayload["address"])
	require.Equal(t, float64(50), gotPayload["per_page"])
	require.Nil(t, gotPayload["confiscant_groups_id"])
}

func TestFetchDetailMergesImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/lot-info", r.URL.Path)
		require.Equal(t, "77", r.URL.Query().Get("lot_id"))
		require.Equal(t, "uz", r.URL.Query().Get("lang"))

		_, _ = w.Write([]byte(`{
			"id": 77,
			"name": "Hovli",
			"status": "finished",
			"start_price": 900,
			"file_hash": "main",
			"images": [{"file_hash": "a"}],
			"gallery": [{"file_hash": "b"}]
		}`))
	}))
	defer srv.Close()

	store := memstore.New()
	client := auksion.NewClient(testConfig(srv.URL), store)
	defer client.Close()

	lot, err := client.FetchDetail(context.Background(), 77)
	require.NoError(t, err)

	// детальная карточка отдаётся и для завершённого лота
	require.Equal(t, "finished", lot.Status)
	require.Len(t, lot.Images, 3)
	require.Equal(t, "main", lot.Images[0].FileHash)

	require.Equal(t,
		"https://img.example/images?file_hash=main",
		client.ImageURL(lot.Images[0]),
	)

	stored, ok := store.Get(77)
	require.True(t, ok)
	require.Equal(t, "Hovli", stored.Name)
}
