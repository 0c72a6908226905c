package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// PersonCacheTTL is the time-to-live for cached person entries.
	PersonCacheTTL = 24 * time.Hour

	personCacheKeyPrefix = "person"
)

// CachedPerson is the denormalized read model stored in Redis. It is
// serialized as a single JSON value because a person carries phone and
// email lists that do not fit a flat hash.
type CachedPerson struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LastName  string    `json:"lastName"`
	Document  string    `json:"document"`
	BirthDate time.Time `json:"birthDate"`
	Address   string    `json:"address"`
	Phones    []string  `json:"phones"`
	Emails    []string  `json:"emails"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PersonCache provides read/write operations for person cache entries.
// Key format: "person:{id}".
type PersonCache struct {
	client *RedisClient
}

// NewPersonCache creates a PersonCache backed by the given RedisClient.
func NewPersonCache(r *RedisClient) *PersonCache {
	return &PersonCache{client: r}
}

// Get retrieves a cached person by id. Returns redis.Nil when the key does
// not exist or has expired.
func (c *PersonCache) Get(ctx context.Context, id string) (*CachedPerson, error) {
	raw, err := c.client.Client().Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var p CachedPerson
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &p, nil
}

// Set writes a cached person with the standard TTL.
func (c *PersonCache) Set(ctx context.Context, p *CachedPerson) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Client().Set(ctx, c.key(p.ID), raw, PersonCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached person.
func (c *PersonCache) Delete(ctx context.Context, id string) error {
	if err := c.client.Client().Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func (c *PersonCache) key(id string) string {
	return fmt.Sprintf("%s:%s", personCacheKeyPrefix, id)
}
