package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/2beens/gymlog/pkg"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
	clock       pkg.Clock
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
		clock:       pkg.RealClock{},
	}
}

// LoggedUser resolves a session token to the user it was issued for.
func (c *LoginChecker) LoggedUser(ctx context.Context, token string) (uuid.UUID, error) {
	raw, err := c.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, ErrNotLoggedIn
		}
		return uuid.Nil, fmt.Errorf("get session: %w", err)
	}

	s, err := decodeSession(raw)
	if err != nil {
		return uuid.Nil, err
	}

	if s.expired(c.clock.Now(), c.ttl) {
		return uuid.Nil, ErrSessionExpired
	}

	return s.UserID, nil
}
