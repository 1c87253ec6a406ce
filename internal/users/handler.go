package users

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymlog/internal/middleware"
	"github.com/2beens/gymlog/internal/telemetry/metrics"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users_test

type usersRepo interface {
	Add(ctx context.Context, user User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
}

type sessionService interface {
	Login(ctx context.Context, userID uuid.UUID, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type Handler struct {
	repo           usersRepo
	sessions       sessionService
	clock          pkg.Clock
	metricsManager *metrics.Manager
}

func NewHandler(repo usersRepo, sessions sessionService, clock pkg.Clock, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		sessions:       sessions,
		clock:          clock,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	allowedPerMin int,
) {
	authRouter := mainRouter.PathPrefix("/a").Subrouter()
	authRouter.HandleFunc("/register", handler.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	authRouter.HandleFunc("/login", handler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	authRouter.HandleFunc("/logout", handler.HandleLogout).Methods("GET", "OPTIONS").Name("logout")

	// rate limit the credential endpoints to slow down guessing
	authRouter.Use(middleware.RateLimit(rateLimiter, "auth", allowedPerMin, handler.metricsManager))
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.register")
	defer span.End()

	var creds Credentials
	if !pkg.DecodeJSONBody(w, r, &creds) {
		return
	}
	creds.Username = strings.TrimSpace(creds.Username)

	if l := len(creds.Username); l < minUsernameLen || l > maxUsernameLen {
		http.Error(w, "error, username must be 3 to 64 characters", http.StatusBadRequest)
		return
	}
	if len(creds.Password) < minPasswordLen {
		http.Error(w, "error, password too short", http.StatusBadRequest)
		return
	}

	hash, err := pkg.HashPassword(creds.Password)
	if errors.Is(err, pkg.ErrPasswordTooLong) {
		http.Error(w, "error, password too long", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("register, hash password: %s", err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	user := User{
		ID:           uuid.New(),
		Username:     creds.Username,
		PasswordHash: hash,
		CreatedAt:    handler.clock.Now().UTC(),
	}
	if err := handler.repo.Add(ctx, user); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			http.Error(w, "error, username taken", http.StatusBadRequest)
			return
		}
		log.Errorf("register %s: %s", creds.Username, err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("new user registered: %s", user.ID)
	pkg.WriteJSON(w, user, http.StatusCreated)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.login")
	defer span.End()

	var creds Credentials
	if !pkg.DecodeJSONBody(w, r, &creds) {
		return
	}
	if creds.Username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}
	if creds.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	user, err := handler.repo.GetByUsername(ctx, strings.TrimSpace(creds.Username))
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		log.Errorf("login, get user %s: %s", creds.Username, err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}
	if user == nil || !pkg.CheckPasswordHash(creds.Password, user.PasswordHash) {
		log.Tracef("failed login attempt for user: %s", creds.Username)
		handler.metricsManager.CounterLogins.WithLabelValues("failure").Inc()
		http.Error(w, "error, wrong credentials", http.StatusBadRequest)
		return
	}

	token, err := handler.sessions.Login(ctx, user.ID, handler.clock.Now())
	if err != nil {
		log.Errorf("login failed, generate token error: %s", err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterLogins.WithLabelValues("success").Inc()
	log.Trace("new login success")
	pkg.WriteJSON(w, map[string]string{"token": token}, http.StatusOK)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.logout")
	defer span.End()

	authToken := middleware.BearerToken(r)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.sessions.Logout(ctx, authToken)
	if err != nil {
		log.Errorf("logout: %s", err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}
