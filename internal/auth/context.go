package auth

import (
	"context"

	"github.com/google/uuid"
)

type requesterKey struct{}

// WithRequester stores the id of the logged-in user making the request.
func WithRequester(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, requesterKey{}, userID)
}

// RequesterFrom returns the requester id, or uuid.Nil when the request is anonymous.
func RequesterFrom(ctx context.Context) uuid.UUID {
	userID, ok := ctx.Value(requesterKey{}).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return userID
}
