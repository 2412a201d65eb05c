package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statravel/sta/internal/logger"
	"github.com/statravel/sta/internal/service"
	"github.com/statravel/sta/internal/utils"
)

func newAuthMiddlewareServer(t *testing.T, tokens service.TokenParser) *httptest.Server {
	t.Helper()

	handler := NewHandler(Deps{Tokens: tokens}, logger.Nop())

	protected := handler.auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, int64(42), userID)

		bearer, ok := utils.GetBearerTokenFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "token-123", bearer)

		w.WriteHeader(http.StatusOK)
	}))

	server := httptest.NewServer(protected)
	t.Cleanup(server.Close)
	return server
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	server := newAuthMiddlewareServer(t, &staticTokens{userID: 42})

	resp := doJSON(t, http.MethodGet, server.URL, "token-123", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	server := newAuthMiddlewareServer(t, &staticTokens{userID: 42})

	resp := doJSON(t, http.MethodGet, server.URL, "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	server := newAuthMiddlewareServer(t, &staticTokens{userID: 42})

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	server := newAuthMiddlewareServer(t, &staticTokens{err: service.ErrTokenIsExpired})

	resp := doJSON(t, http.MethodGet, server.URL, "token-123", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
