package redis

import (
	"context"
	"encoding/json"
	"time"

	customErrors "github.com/Miraines/ContactSphere/internal/domain/contacts/errors"
	"github.com/Miraines/ContactSphere/internal/domain/contacts/model"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "user:"

// IdentityCache keeps a JSON snapshot of the principal per email so the hot
// auth path can skip the database. Entries expire by TTL only; a stale
// snapshot inside the TTL window is accepted.
type IdentityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewIdentityCache(client *redis.Client, ttl time.Duration) *IdentityCache {
	return &IdentityCache{client: client, ttl: ttl}
}

func (c *IdentityCache) Get(ctx context.Context, email string) (model.User, error) {
	raw, err := c.client.Get(ctx, keyPrefix+email).Bytes()
	switch {
	case err == redis.Nil:
		return model.User{}, customErrors.ErrCacheMiss
	case err != nil:
		// connectivity failures surface; masking them would silently put
		// every request on the database path
		return model.User{}, customErrors.WrapInternal(err, "cache get")
	}

	var user model.User
	if err := json.Unmarshal(raw, &user); err != nil {
		// unreadable snapshot is as good as no snapshot
		return model.User{}, customErrors.ErrCacheMiss
	}
	return user, nil
}

func (c *IdentityCache) Put(ctx context.Context, email string, user model.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return customErrors.WrapInternal(err, "cache marshal")
	}
	if err := c.client.Set(ctx, keyPrefix+email, raw, c.ttl).Err(); err != nil {
		return customErrors.WrapInternal(err, "cache set")
	}
	return nil
}
