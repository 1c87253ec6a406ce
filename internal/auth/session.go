package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultTTL       = 7 * 24 * time.Hour
	sessionKeyPrefix = "gymlog-session||"
	tokensSetKey     = "gymlog-sessions"
	tokenLength      = 40
)

var (
	ErrNotLoggedIn    = errors.New("not logged in")
	ErrSessionExpired = errors.New("session expired")
)

// session is stored in redis as "<created-at-unix>|<user-id>".
type session struct {
	UserID    uuid.UUID
	CreatedAt time.Time
}

func (s session) encode() string {
	return strconv.FormatInt(s.CreatedAt.Unix(), 10) + "|" + s.UserID.String()
}

func decodeSession(raw string) (session, error) {
	createdAtStr, userIDStr, found := strings.Cut(raw, "|")
	if !found {
		return session{}, fmt.Errorf("malformed session value: %q", raw)
	}

	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return session{}, fmt.Errorf("parse session created at: %w", err)
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return session{}, fmt.Errorf("parse session user id: %w", err)
	}

	return session{
		UserID:    userID,
		CreatedAt: time.Unix(createdAtUnix, 0),
	}, nil
}

func (s session) expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.CreatedAt) > ttl
}
