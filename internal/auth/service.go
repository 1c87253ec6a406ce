package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymlog/pkg"
)

type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	clock       pkg.Clock
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewAuthService(
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		clock:          pkg.RealClock{},
		RandStringFunc: pkg.GenerateRandomString,
	}
}

// Login opens a session for userID and returns its token.
func (as *Service) Login(ctx context.Context, userID uuid.UUID, createdAt time.Time) (string, error) {
	if userID == uuid.Nil {
		return "", errors.New("login: empty user id")
	}

	token, err := as.RandStringFunc(tokenLength)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	s := session{UserID: userID, CreatedAt: createdAt}
	if err := as.redisClient.Set(ctx, sessionKeyPrefix+token, s.encode(), as.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	// add token to the set of sessions, used by ScanAndClean
	if err := as.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", fmt.Errorf("register session: %w", err)
	}

	return token, nil
}

// Logout removes the session. It returns false if there was no such session.
func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	deleted, err := as.redisClient.Del(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}

	if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return false, fmt.Errorf("unregister session: %w", err)
	}

	return deleted > 0, nil
}

// ScanAndClean will run through all known session tokens and drop the expired, missing or broken ones.
func (as *Service) ScanAndClean(ctx context.Context) {
	sessionTokens, err := as.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("auth service, scan and clean, get sessions: %s", err)
		return
	}

	if len(sessionTokens) == 0 {
		log.Debugln("auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	now := as.clock.Now()
	var toRemove []string
	for _, token := range sessionTokens {
		raw, err := as.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
		if errors.Is(err, redis.Nil) {
			// expired by redis already, only the set entry is left
			toRemove = append(toRemove, token)
			continue
		}
		if err != nil {
			log.Errorf("auth service, scan and clean token: %s", err)
			continue
		}

		s, err := decodeSession(raw)
		if err != nil || s.expired(now, as.ttl) {
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if err := as.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
			log.Errorf("auth service, clean session: %s", err)
			continue
		}
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("auth service, unregister session: %s", err)
		}
	}

	log.Debugf("auth service, scan and clean done, removed %d sessions", len(toRemove))
}

// RunCleanup calls ScanAndClean every interval until ctx is done.
func (as *Service) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			as.ScanAndClean(ctx)
		}
	}
}
