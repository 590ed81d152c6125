package shoppinglist

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache keeps generated lists in Redis so repeat fetches of an
// unchanged menu skip the pipeline. Keyed by menu ID plus a hash of
// the document, so an edited menu misses naturally. All failures
// degrade to a miss.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCache returns nil when REDIS_ADDR is unset; the service treats a
// nil cache as disabled.
func NewCache() *Cache {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("Redis not configured, shopping-list cache disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	return &Cache{
		rdb: rdb,
		ttl: 15 * time.Minute,
	}
}

func cacheKey(menuID string, doc any) string {
	raw, err := json.Marshal(doc)
	if err != nil {
		raw = []byte(menuID)
	}
	sum := sha256.Sum256(raw)
	return "grocerylist:" + menuID + ":" + hex.EncodeToString(sum[:8])
}

func (c *Cache) Get(ctx context.Context, key string, out any) bool {
	if c == nil {
		return false
	}

	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(data, out) == nil
}

func (c *Cache) Set(ctx context.Context, key string, value any) {
	if c == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Printf("cache set failed key=%s: %v", key, err)
	}
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
