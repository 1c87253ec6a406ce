package pkg

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	passwordHashCost = 12
	// bcrypt only looks at the first 72 bytes
	MaxPasswordBytes = 72
)

var ErrPasswordTooLong = errors.New("password is longer than 72 bytes")

// HashPassword bcrypts a user password. Passwords bcrypt would silently
// truncate are refused instead.
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return BytesToString(bytes), nil
}

func CheckPasswordHash(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
