//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/2beens/gymlog/internal/users"
)

func (s *IntegrationTestSuite) TestRegisterLoginLogout() {
	ctx := context.Background()
	t := s.T()

	user, token := s.newUser(ctx, t)
	s.NotEmpty(user.ID)

	// protected route works with the token
	s.Equal(http.StatusOK, s.doJSON(ctx, t, http.MethodGet, "/dashboard", token, nil, nil))

	s.Equal(http.StatusOK, s.doJSON(ctx, t, http.MethodGet, "/a/logout", token, nil, nil))
	s.Equal(http.StatusUnauthorized, s.doJSON(ctx, t, http.MethodGet, "/dashboard", token, nil, nil))
}

func (s *IntegrationTestSuite) TestProtectedRoutesRequireToken() {
	ctx := context.Background()
	t := s.T()

	s.Equal(http.StatusUnauthorized, s.doJSON(ctx, t, http.MethodGet, "/dashboard", "", nil, nil))
	s.Equal(http.StatusUnauthorized, s.doJSON(ctx, t, http.MethodGet, "/workouts", "not-a-token", nil, nil))
}

func (s *IntegrationTestSuite) TestLoginWrongPassword() {
	ctx := context.Background()
	t := s.T()

	creds := users.Credentials{
		Username: gofakeit.Username() + gofakeit.DigitN(4),
		Password: gofakeit.Password(true, true, true, false, false, 12),
	}
	s.Equal(http.StatusCreated, s.doJSON(ctx, t, http.MethodPost, "/a/register", "", creds, nil))
	s.Equal(http.StatusBadRequest, s.doJSON(ctx, t, http.MethodPost, "/a/register", "", creds, nil))

	creds.Password += "x"
	s.Equal(http.StatusBadRequest, s.doJSON(ctx, t, http.MethodPost, "/a/login", "", creds, nil))
}
