package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
	"time"
)

const (
	DefaultListTTL   = 300 * time.Second
	DefaultEntityTTL = 600 * time.Second
)

// Store is the backing key/value layer. MemoryStore is the default;
// RedisStore is used when REDIS_ADDR is configured.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration)
	DeletePrefix(ctx context.Context, prefix string)
}

// Cache is the response cache consulted by the controllers. TTLs are injected
// so tests can shrink them.
type Cache struct {
	store     Store
	listTTL   time.Duration
	entityTTL time.Duration
}

func New(store Store, listTTL, entityTTL time.Duration) *Cache {
	if listTTL <= 0 {
		listTTL = DefaultListTTL
	}
	if entityTTL <= 0 {
		entityTTL = DefaultEntityTTL
	}
	return &Cache{store: store, listTTL: listTTL, entityTTL: entityTTL}
}

func (c *Cache) GetList(ctx context.Context, entity string, q url.Values) ([]byte, bool) {
	return c.store.Get(ctx, ListKey(entity, q))
}

func (c *Cache) SetList(ctx context.Context, entity string, q url.Values, payload []byte) {
	c.store.Set(ctx, ListKey(entity, q), payload, c.listTTL)
}

func (c *Cache) GetEntity(ctx context.Context, entity, id string) ([]byte, bool) {
	return c.store.Get(ctx, EntityKey(entity, id))
}

func (c *Cache) SetEntity(ctx context.Context, entity, id string, payload []byte) {
	c.store.Set(ctx, EntityKey(entity, id), payload, c.entityTTL)
}

// Invalidate drops every cached entry for the entity type, list and single
// lookups alike. Every write calls this; there is no selective invalidation.
func (c *Cache) Invalidate(ctx context.Context, entity string) {
	c.store.DeletePrefix(ctx, entity+":")
}

// ListKey derives a canonical, parameter-order-independent key from the
// query string: keys and values are sorted before hashing.
func ListKey(entity string, q url.Values) string {
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		values := append([]string(nil), q[k]...)
		sort.Strings(values)
		for _, v := range values {
			sb.WriteString(k)
			sb.WriteString("=")
			sb.WriteString(v)
			sb.WriteString("&")
		}
	}
	sum := sha256.Sum256([]byte(strings.TrimSuffix(sb.String(), "&")))
	return entity + ":list:" + hex.EncodeToString(sum[:])
}

func EntityKey(entity, id string) string {
	return entity + ":id:" + id
}
