//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gymlog/internal/users"
)

// doJSON sends body as JSON (when not nil) and decodes a JSON response into out (when not nil).
func (s *IntegrationTestSuite) doJSON(ctx context.Context, t *testing.T, method, path, token string, body, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reader)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.Unmarshal(respBytes, out), string(respBytes))
	}
	return resp.StatusCode
}

// newUser registers a fresh user and returns it with a session token.
func (s *IntegrationTestSuite) newUser(ctx context.Context, t *testing.T) (users.User, string) {
	t.Helper()

	creds := users.Credentials{
		Username: gofakeit.Username() + gofakeit.DigitN(4),
		Password: gofakeit.Password(true, true, true, false, false, 12),
	}

	var created users.User
	require.Equal(t, http.StatusCreated, s.doJSON(ctx, t, http.MethodPost, "/a/register", "", creds, &created))

	var loginResp struct {
		Token string `json:"token"`
	}
	require.Equal(t, http.StatusOK, s.doJSON(ctx, t, http.MethodPost, "/a/login", "", creds, &loginResp))
	require.NotEmpty(t, loginResp.Token)

	return created, loginResp.Token
}
