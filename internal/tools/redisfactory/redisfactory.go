package redisfactory

import (
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
)

const (
	dialTimeout  = 4 * time.Second
	readTimeout  = 3 * time.Second
	writeTimeout = 3 * time.Second
)

type Factory struct {
	catalogCache *redis.Client
}

// New connects the caches that have a URI configured. A cache without a URI
// stays nil and its users run uncached. A non nil nrApp instruments every client.
func New(catalogCacheURI string, nrApp *newrelic.Application) (*Factory, error) {
	catalogCache, err := NewClient(catalogCacheURI)
	if err != nil {
		return nil, err
	}

	if catalogCache != nil && nrApp != nil {
		catalogCache.AddHook(&newRelicHook{collection: "catalog"})
	}

	return &Factory{
		catalogCache: catalogCache,
	}, nil
}

func NewClient(uri string) (*redis.Client, error) {
	if uri == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(uri)
	if err != nil {
		return nil, err
	}

	opt.DialTimeout = dialTimeout
	opt.ReadTimeout = readTimeout
	opt.WriteTimeout = writeTimeout

	return redis.NewClient(opt), nil
}

func (f *Factory) CatalogCacheClient() *redis.Client {
	if f == nil {
		return nil
	}

	return f.catalogCache
}

func (f *Factory) Close() error {
	if f == nil || f.catalogCache == nil {
		return nil
	}

	return f.catalogCache.Close()
}
