package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bitbucket.org/crgw/rental-quote/internal/quote"
	"bitbucket.org/crgw/rental-quote/internal/tools/caching"
	"bitbucket.org/crgw/rental-quote/internal/tools/converting"
	"bitbucket.org/crgw/rental-quote/internal/tools/grouping"
	"bitbucket.org/crgw/rental-quote/internal/tools/requesting"
	"bitbucket.org/crgw/rental-quote/internal/tools/slowlog"
	"github.com/google/go-querystring/query"
	"github.com/rs/zerolog"
)

type Provider interface {
	CarPricing(ctx context.Context, carID string, log *zerolog.Logger) (quote.CarPricing, error)
}

// Options configure the Client. Locker coalesces concurrent cache misses
// across instances and is only used together with Cache.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	Transport http.RoundTripper
	Cache     *caching.Cacher
	CacheTTL  time.Duration
	Locker    grouping.Locker
}

// Client reads car pricing from the catalog API. Cache is optional.
type Client struct {
	baseURL   string
	timeout   time.Duration
	transport http.RoundTripper
	cache     *caching.Cacher
	group     *grouping.Group
	cacheTTL  time.Duration
}

func NewClient(options Options) *Client {
	transport := options.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	client := &Client{
		baseURL:   strings.TrimRight(options.BaseURL, "/"),
		timeout:   options.Timeout,
		transport: transport,
		cache:     options.Cache,
		cacheTTL:  options.CacheTTL,
	}

	if options.Cache != nil {
		client.group = grouping.New(options.Cache, options.Locker)
	}

	return client
}

func (c *Client) CarPricing(ctx context.Context, carID string, log *zerolog.Logger) (quote.CarPricing, error) {
	slowLog := slowlog.CreateLogger(log)
	slowLog.Start("catalog:pricing")
	defer slowLog.Stop("catalog:pricing")

	if c.group == nil {
		response, err := c.fetchPricing(ctx, carID, log)
		if err != nil {
			return quote.CarPricing{}, err
		}

		return toCarPricing(response), nil
	}

	response, err := grouping.Do(ctx, c.group, c.cache.Key("pricing", carID), c.cacheTTL, log, func() (pricingRS, error) {
		return c.fetchPricing(ctx, carID, log)
	})
	if err != nil {
		return quote.CarPricing{}, err
	}

	return toCarPricing(response), nil
}

func (c *Client) fetchPricing(ctx context.Context, carID string, log *zerolog.Logger) (pricingRS, error) {
	client := &http.Client{
		Timeout: c.timeout,
		Transport: &requesting.InterceptorTransport{
			Transport: c.transport,
			Middlewares: []requesting.TransportMiddleware{
				requesting.NewHeaderTransportMiddleware(http.Header{
					"Accept": []string{"application/json"},
				}),
				requesting.NewLoggingTransportMiddleware(log),
			},
		},
	}

	v, _ := query.Values(pricingRQ{CarID: carID})
	url := fmt.Sprintf("%s/api/cars/pricing?%s", c.baseURL, v.Encode())

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return pricingRS{}, fmt.Errorf("%w: %s", ErrorCatalogUnavailable, err)
	}

	rs, err := requesting.RequestErrors(client.Do(httpRequest))
	if err != nil {
		var statusErr *requesting.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return pricingRS{}, fmt.Errorf("%w: %s", ErrorCarNotFound, carID)
		}

		return pricingRS{}, fmt.Errorf("%w: %s", ErrorCatalogUnavailable, err)
	}
	defer rs.Body.Close()

	bodyBytes, err := io.ReadAll(rs.Body)
	if err != nil {
		return pricingRS{}, fmt.Errorf("%w: %s", ErrorCatalogUnavailable, err)
	}

	var response pricingRS
	if err := json.Unmarshal(bodyBytes, &response); err != nil {
		return pricingRS{}, fmt.Errorf("%w: malformed pricing response: %s", ErrorCatalogUnavailable, err)
	}

	return response, nil
}

// A response without a price maps to zero pricing, which the engine rejects.
func toCarPricing(response pricingRS) quote.CarPricing {
	return quote.CarPricing{
		BasePricePerDay: converting.Unwrap(response.BasePricePerDay),
	}
}
