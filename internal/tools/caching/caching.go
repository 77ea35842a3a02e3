package caching

import (
	"bytes"
	"compress/flate"
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type Engine interface {
	Store(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// Cacher stores values as deflated JSON under a namespaced key.
type Cacher struct {
	engine    Engine
	namespace string
}

func NewRedisCache(redisClient *redis.Client, namespace string) *Cacher {
	return NewCache(&redisCache{redis: redisClient}, namespace)
}

func NewCache(engine Engine, namespace string) *Cacher {
	return &Cacher{
		engine:    engine,
		namespace: namespace,
	}
}

// Key joins the parts under the cacher namespace, e.g. "catalog:pricing:car-1".
func (c *Cacher) Key(parts ...string) string {
	if c.namespace == "" {
		return strings.Join(parts, ":")
	}

	return c.namespace + ":" + strings.Join(parts, ":")
}

func deflate(uncompressed []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer, _ := flate.NewWriter(&buffer, flate.BestSpeed)

	_, err := writer.Write(uncompressed)
	if err != nil {
		return nil, err
	}

	err = writer.Close()
	if err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

func inflate(compressed []byte) ([]byte, error) {
	reader := flate.NewReader(bytes.NewReader(compressed))
	defer reader.Close()

	var out bytes.Buffer
	_, err := out.ReadFrom(reader)
	if err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

func (c *Cacher) Store(ctx context.Context, key string, value any, ttl time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}

	compressed, err := deflate(encoded)
	if err != nil {
		return err
	}

	return c.engine.Store(ctx, key, compressed, ttl)
}

// Fetch reports a hit only when a value was found and decoded into destination.
// Engine failures count as a miss.
func (c *Cacher) Fetch(ctx context.Context, key string, destination any) bool {
	value, err := c.engine.Fetch(ctx, key)
	if err != nil || value == nil {
		return false
	}

	uncompressed, err := inflate(value)
	if err != nil {
		return false
	}

	return json.Unmarshal(uncompressed, destination) == nil
}
