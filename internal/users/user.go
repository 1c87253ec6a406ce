package users

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username taken")
)

const (
	minUsernameLen = 3
	maxUsernameLen = 64
	minPasswordLen = 8
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
