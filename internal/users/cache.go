package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedDirectory keeps successful lookups in Redis for a short time.
// Misses and failures are never cached, and a Redis outage only costs the
// cache: lookups fall through to the wrapped directory.
type CachedDirectory struct {
	next   Directory
	redis  *redis.Client
	ttl    time.Duration
	prefix string
}

var (
	_ Directory   = (*CachedDirectory)(nil)
	_ Invalidator = (*CachedDirectory)(nil)
)

func NewCachedDirectory(next Directory, client *redis.Client, ttl time.Duration) *CachedDirectory {
	return &CachedDirectory{
		next:   next,
		redis:  client,
		ttl:    ttl,
		prefix: "users:identity",
	}
}

func (d *CachedDirectory) GetUser(ctx context.Context, id uint) (*Identity, error) {
	key := fmt.Sprintf("%s:id:%d", d.prefix, id)
	return d.lookup(ctx, key, func() (*Identity, error) {
		return d.next.GetUser(ctx, id)
	})
}

func (d *CachedDirectory) FindByEmail(ctx context.Context, email string) (*Identity, error) {
	key := fmt.Sprintf("%s:email:%s", d.prefix, strings.ToLower(strings.TrimSpace(email)))
	return d.lookup(ctx, key, func() (*Identity, error) {
		return d.next.FindByEmail(ctx, email)
	})
}

func (d *CachedDirectory) lookup(ctx context.Context, key string, load func() (*Identity, error)) (*Identity, error) {
	raw, err := d.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var identity Identity
		if jsonErr := json.Unmarshal(raw, &identity); jsonErr == nil {
			return &identity, nil
		}
	case !errors.Is(err, redis.Nil):
		log.Printf("user cache read failed for %s: %v", key, err)
	}

	identity, err := load()
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(identity); err == nil {
		if err := d.redis.Set(ctx, key, payload, d.ttl).Err(); err != nil {
			log.Printf("user cache write failed for %s: %v", key, err)
		}
	}
	return identity, nil
}

// Forget drops the cached entries of a user so the next lookup reloads it.
func (d *CachedDirectory) Forget(ctx context.Context, id uint, email string) {
	keys := []string{fmt.Sprintf("%s:id:%d", d.prefix, id)}
	if email != "" {
		keys = append(keys, fmt.Sprintf("%s:email:%s", d.prefix, strings.ToLower(strings.TrimSpace(email))))
	}
	if err := d.redis.Del(ctx, keys...).Err(); err != nil {
		log.Printf("user cache invalidation failed for %d: %v", id, err)
	}
}
