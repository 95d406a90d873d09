// Package auksion — клиент публичного API e-auksion.uz: листинг лотов,
// детальная карточка и текстовый поиск с нормализацией ответов в доменную
// модель.
package auksion

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"auksion_bot/internal/config"
	"auksion_bot/internal/domain/entity"
	"auksion_bot/internal/infrastructure/memstore"
	"auksion_bot/pkg/httpx"
	"auksion_bot/pkg/logx"
)

const (
	endpointLots    = "/lots"
	endpointLotInfo = "/lot-info"

	seenLotTTL = 12 * time.Hour
)

//nolint:gochecknoglobals
var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "auksion",
	Subsystem: "upstream",
	Name:      "requests_total",
	Help:      "Requests to the e-auksion.uz API by endpoint and outcome.",
}, []string{"endpoint", "outcome"})

// FetchError — ошибка похода в апстрим. Оркестратор по ней решает, что
// отдать пользователю вместо выдачи.
type FetchError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("auksion %s: status %d", e.Endpoint, e.StatusCode)
	}

	return fmt.Sprintf("auksion %s: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type Client struct {
	httpClient *http.Client
	cfg        config.Auksion
	store      *memstore.Store
	// дедупликация лога "новый лот": упоминаем лот один раз за TTL
	seen *cache.Cache
}

func NewClient(cfg config.Auksion, store *memstore.Store) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: httpx.NewLoggingRoundTripper(http.DefaultTransport),
		},
		cfg:   cfg,
		store: store,
		seen:  cache.New(seenLotTTL, seenLotTTL),
	}
}

// Close останавливает фоновые соединения клиента.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// FetchPage забирает страницу листинга категории. Завершённые лоты
// отбрасываются, остальные оседают в сторе. perPage <= 0 означает
// размер страницы из конфигурации.
func (c *Client) FetchPage(
	ctx context.Context,
	groupID string,
	categoryID int,
	regionID int,
	page int,
	perPage int,
) ([]entity.Lot, error) {
	if perPage <= 0 {
		perPage = c.cfg.PerPage
	}

	payload := newListRequest(groupID, categoryID, regionID, page, perPage)

	rows, err := c.postLots(ctx, payload)
	if err != nil {
		return nil, err
	}

	return c.collectActive(ctx, rows), nil
}

// Search ищет по hashtag и адресу одной строкой.
func (c *Client) Search(ctx context.Context, query string) ([]entity.Lot, error) {
	rows, err := c.postLots(ctx, newSearchRequest(query))
	if err != nil {
		return nil, err
	}

	return c.collectActive(ctx, rows), nil
}

// FetchDetail забирает карточку лота. Завершённые лоты здесь не
// фильтруются: пользователь мог открыть карточку из избранного.
func (c *Client) FetchDetail(ctx context.Context, lotID int64) (entity.Lot, error) {
	query := url.Values{
		"lot_id": []string{strconv.FormatInt(lotID, 10)},
		"lang":   []string{"uz"},
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.cfg.BaseURL+endpointLotInfo+"?"+query.Encode(),
		nil,
	)
	if err != nil {
		return entity.Lot{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	c.setHeaders(req)

	body, err := c.do(req, endpointLotInfo)
	if err != nil {
		return entity.Lot{}, err
	}

	var raw rawLot
	if err := json.Unmarshal(body, &raw); err != nil {
		requestsTotal.WithLabelValues(endpointLotInfo, "decode_error").Inc()

		return entity.Lot{}, &FetchError{Endpoint: endpointLotInfo, Err: err}
	}

	lot := raw.toLot()
	lot.Images = raw.detailImages()

	c.store.Put(lot)

	logger(ctx).Info("lot detail fetched",
		slog.Int64("lot_id", lot.ID),
		slog.Int("images", len(lot.Images)),
	)

	return lot, nil
}

func (c *Client) postLots(ctx context.Context, payload lotsRequest) ([]rawLot, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.cfg.BaseURL+endpointLots,
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	c.setHeaders(req)

	respBody, err := c.do(req, endpointLots)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Rows []rawLot `json:"rows"`
	}

	if err := json.Unmarshal(respBody, &resp); err != nil {
		requestsTotal.WithLabelValues(endpointLots, "decode_error").Inc()

		return nil, &FetchError{Endpoint: endpointLots, Err: err}
	}

	return resp.Rows, nil
}

func (c *Client) do(req *http.Request, endpoint string) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues(endpoint, "transport_error").Inc()

		return nil, &FetchError{Endpoint: endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		requestsTotal.WithLabelValues(endpoint, "transport_error").Inc()

		return nil, &FetchError{Endpoint: endpoint, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		requestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

		logger(req.Context()).Error("upstream returned non-200",
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode),
			logx.Error(&FetchError{Endpoint: endpoint, StatusCode: resp.StatusCode}),
		)

		return nil, &FetchError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	requestsTotal.WithLabelValues(endpoint, "ok").Inc()

	return body, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)
}

func (c *Client) collectActive(ctx context.Context, rows []rawLot) []entity.Lot {
	lots := make([]entity.Lot, 0, len(rows))

	for _, row := range rows {
		lot := row.toLot()
		if !lot.IsActive() {
			continue
		}

		c.store.Put(lot)

		key := strconv.FormatInt(lot.ID, 10)
		if _, known := c.seen.Get(key); !known {
			c.seen.SetDefault(key, struct{}{})

			logger(ctx).Info("new lot discovered",
				slog.Int64("lot_id", lot.ID),
				slog.String("category", lot.Category),
				slog.Float64("price", lot.EffectivePrice()),
			)
		}

		lots = append(lots, lot)
	}

	return lots
}

// ImageURL собирает адрес изображения лота.
func (c *Client) ImageURL(img entity.LotImage) string {
	return img.URL(c.cfg.ImagesBaseURL)
}
