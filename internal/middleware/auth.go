package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type loginChecker interface {
	LoggedUser(ctx context.Context, token string) (uuid.UUID, error)
}

type AuthMiddlewareHandler struct {
	loginChecker loginChecker
	allowedPaths map[string]bool
}

func NewAuthMiddlewareHandler(loginChecker loginChecker) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		loginChecker: loginChecker,
		allowedPaths: map[string]bool{
			"/a/register": true,
			"/a/login":    true,
			"/health":     true,
		},
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// AuthCheck resolves the session token to a user and stores it as the
// requester of the request. Only the allowed paths pass without a session.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := BearerToken(r)
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			userID, err := h.loginChecker.LoggedUser(ctx, authToken)
			if err != nil {
				if errors.Is(err, auth.ErrNotLoggedIn) || errors.Is(err, auth.ErrSessionExpired) {
					log.Tracef("[invalid token] [auth middleware] unauthorized => %s: %s", r.URL.Path, err)
					span.SetStatus(codes.Error, "not-logged")
				} else {
					log.Errorf("[failed login check] => %s: %s", r.URL.Path, err)
					span.SetStatus(codes.Error, "check-logged-err")
					span.RecordError(err)
				}
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithRequester(r.Context(), userID)))
		})
	}
}
