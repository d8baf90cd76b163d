// Package cms reads collections from the headless content service over
// HTTP/JSON.
//
// Items are listed at GET {base}/collections/{collection}/items with offset
// paging; the response carries the page items and the collection total.
package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	platformotel "github.com/louisbranch/mindmap.space/internal/platform/otel"
	"github.com/louisbranch/mindmap.space/internal/platform/timeouts"
	apperrors "github.com/louisbranch/mindmap.space/internal/services/web/platform/errors"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/paging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultPageSize is the number of items requested per page.
	DefaultPageSize = 50
	tracerName      = "github.com/louisbranch/mindmap.space/internal/services/web/integration/cms"
	// maxErrorBody bounds how much of a failed response is kept for logs.
	maxErrorBody = 512
)

// Config configures a Client.
type Config struct {
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
	PageSize int
	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
	// TracerProvider overrides the global tracer provider.
	TracerProvider trace.TracerProvider
}

// Client talks to one content service.
type Client struct {
	baseURL  *url.URL
	apiKey   string
	pageSize int
	http     *http.Client
	tracer   trace.Tracer
}

// Page is the result of reading a whole collection.
type Page[T any] struct {
	Items      []T
	TotalCount int
}

type pageResponse[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	Paging     struct {
		Offset int `json:"offset"`
		Limit  int `json:"limit"`
	} `json:"paging"`
}

// NewClient validates cfg and builds a client.
func NewClient(cfg Config) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		return nil, fmt.Errorf("cms base url is required")
	}
	base, err := url.Parse(raw)
	if err != nil || base.Host == "" || (base.Scheme != "http" && base.Scheme != "https") {
		return nil, fmt.Errorf("cms base url must be an absolute http(s) url")
	}
	base.Path = strings.TrimRight(base.Path, "/")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = timeouts.CMSRequest
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	tracer := platformotel.Tracer(tracerName)
	if cfg.TracerProvider != nil {
		tracer = cfg.TracerProvider.Tracer(tracerName)
	}
	return &Client{
		baseURL:  base,
		apiKey:   strings.TrimSpace(cfg.APIKey),
		pageSize: pageSize,
		http:     httpClient,
		tracer:   tracer,
	}, nil
}

// GetAll reads every item of collection in server order.
func GetAll[T any](ctx context.Context, c *Client, collection string) (Page[T], error) {
	if c == nil {
		return Page[T]{}, apperrors.E(apperrors.KindUnavailable, "cms client is not configured")
	}
	collection = strings.TrimSpace(collection)
	if collection == "" {
		return Page[T]{}, apperrors.E(apperrors.KindInvalidInput, "cms collection is required")
	}

	ctx, span := c.tracer.Start(ctx, "cms.GetAll", trace.WithAttributes(
		attribute.String("cms.collection", collection),
	))
	defer span.End()

	items, total, err := paging.Collect(ctx, 0, func(ctx context.Context, offset int) ([]T, int, error) {
		page, err := getPage[T](ctx, c, collection, offset)
		if err != nil {
			return nil, 0, err
		}
		return page.Items, page.TotalCount, nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "cms get all failed")
		return Page[T]{}, err
	}
	span.SetAttributes(attribute.Int("cms.items", len(items)))
	return Page[T]{Items: items, TotalCount: total}, nil
}

func getPage[T any](ctx context.Context, c *Client, collection string, offset int) (pageResponse[T], error) {
	endpoint := *c.baseURL
	endpoint.Path = endpoint.Path + "/collections/" + url.PathEscape(collection) + "/items"
	endpoint.RawQuery = url.Values{
		"offset": {strconv.Itoa(offset)},
		"limit":  {strconv.Itoa(c.pageSize)},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return pageResponse[T]{}, apperrors.Wrap(apperrors.KindInvalidInput, "build cms request", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		return pageResponse[T]{}, apperrors.Wrap(apperrors.KindUnavailable, "cms request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		kind := apperrors.KindUnavailable
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			kind = apperrors.KindInvalidInput
		}
		return pageResponse[T]{}, apperrors.E(kind, fmt.Sprintf("cms %s %s: status %d: %s",
			collection, endpoint.RawQuery, resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var page pageResponse[T]
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return pageResponse[T]{}, apperrors.Wrap(apperrors.KindUnavailable, "decode cms page", err)
	}
	return page, nil
}
