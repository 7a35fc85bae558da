package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
)

var _ TokenResolver = (*Resolver)(nil)

// TokenResolver resolves a bearer token to the id of the user it was
// issued for, or returns ErrInvalidToken.
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (int, error)
}

const (
	resolverCacheSize          = 10 * 1024 * 1024
	resolverCacheExpireSeconds = 60
)

// Resolver reads sessions written by Service. Resolved tokens are kept
// in a small in-memory cache for a minute, so the hot read path (every
// authenticated request) does not hit redis each time.
type Resolver struct {
	ttl         time.Duration
	redisClient *redis.Client
	cache       *freecache.Cache
}

func NewResolver(ttl time.Duration, redisClient *redis.Client) *Resolver {
	return &Resolver{
		ttl:         ttl,
		redisClient: redisClient,
		cache:       freecache.NewCache(resolverCacheSize),
	}
}

func (r *Resolver) ResolveToken(ctx context.Context, token string) (int, error) {
	if token == "" {
		return 0, ErrInvalidToken
	}

	if cached, err := r.cache.Get([]byte(token)); err == nil {
		userID, err := strconv.Atoi(string(cached))
		if err == nil {
			return userID, nil
		}
	}

	sessionKey := sessionKeyPrefix + token
	cmd := r.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrInvalidToken
		}
		return 0, err
	}

	userID, createdAt, err := parseSessionValue(cmd.Val())
	if err != nil {
		return 0, err
	}

	if time.Since(createdAt) > r.ttl {
		return 0, ErrInvalidToken
	}

	// cache write failures are fine, redis remains the source of truth
	_ = r.cache.Set([]byte(token), []byte(strconv.Itoa(userID)), resolverCacheExpireSeconds)

	return userID, nil
}
