package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statravel/sta/internal/logger"
	"github.com/statravel/sta/internal/service"
	"github.com/statravel/sta/internal/store"
	"github.com/statravel/sta/models"
)

type mockAuthService struct {
	registerFunc    func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFunc       func(ctx context.Context, req models.LoginRequest) (models.User, error)
	getUserFunc     func(ctx context.Context, userID int64) (models.User, error)
	createTokenFunc func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFunc  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFunc(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFunc(ctx, req)
}

func (m *mockAuthService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserFunc(ctx, userID)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFunc(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFunc(ctx, tokenString)
}

func newAuthServer(t *testing.T, auth *mockAuthService) *httptest.Server {
	t.Helper()

	handler := NewHandler(Deps{
		Tokens:   &staticTokens{userID: 42},
		Services: &service.Services{AuthService: auth},
	}, logger.Nop())

	server := httptest.NewServer(handler.InitAuthRouter())
	t.Cleanup(server.Close)
	return server
}

func TestAuthRouter_Register(t *testing.T) {
	auth := &mockAuthService{
		registerFunc: func(_ context.Context, req models.RegisterRequest) (models.User, error) {
			assert.Equal(t, "ana@example.com", req.Email)
			return models.User{UserID: 42, Email: req.Email, FullName: req.FullName, Status: "active"}, nil
		},
		createTokenFunc: func(_ context.Context, user models.User) (models.Token, error) {
			return models.Token{SignedString: "signed-jwt"}, nil
		},
	}
	server := newAuthServer(t, auth)

	resp := doJSON(t, http.MethodPost, server.URL+"/auth/register", "",
		`{"email": "ana@example.com", "password": "s3cret", "fullName": "Ana"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body models.AuthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "signed-jwt", body.Token)
	require.NotNil(t, body.User)
	assert.Equal(t, "ana@example.com", body.User.Email)
}

func TestAuthRouter_Register_DuplicateEmail(t *testing.T) {
	auth := &mockAuthService{
		registerFunc: func(context.Context, models.RegisterRequest) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	server := newAuthServer(t, auth)

	resp := doJSON(t, http.MethodPost, server.URL+"/auth/register", "",
		`{"email": "ana@example.com", "password": "s3cret"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAuthRouter_Login(t *testing.T) {
	auth := &mockAuthService{
		loginFunc: func(_ context.Context, req models.LoginRequest) (models.User, error) {
			return models.User{UserID: 42, Email: req.Email}, nil
		},
		createTokenFunc: func(context.Context, models.User) (models.Token, error) {
			return models.Token{SignedString: "signed-jwt"}, nil
		},
	}
	server := newAuthServer(t, auth)

	resp := doJSON(t, http.MethodPost, server.URL+"/auth/login", "",
		`{"email": "ana@example.com", "password": "s3cret"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.AuthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "signed-jwt", body.Token)
	assert.Nil(t, body.User)
}

func TestAuthRouter_Login_InvalidCredentials(t *testing.T) {
	for name, loginErr := range map[string]error{
		"wrong password": service.ErrWrongPassword,
		"unknown email":  store.ErrNoUserWasFound,
	} {
		t.Run(name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFunc: func(context.Context, models.LoginRequest) (models.User, error) {
					return models.User{}, loginErr
				},
			}
			server := newAuthServer(t, auth)

			resp := doJSON(t, http.MethodPost, server.URL+"/auth/login", "",
				`{"email": "ana@example.com", "password": "bad"}`)
			require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

			// both failure modes produce the same body
			var body models.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, "invalid email/password", body.Error)
		})
	}
}

func TestAuthRouter_Me(t *testing.T) {
	auth := &mockAuthService{
		getUserFunc: func(_ context.Context, userID int64) (models.User, error) {
			assert.Equal(t, int64(42), userID)
			return models.User{UserID: userID, Email: "ana@example.com"}, nil
		},
	}
	server := newAuthServer(t, auth)

	resp := doJSON(t, http.MethodGet, server.URL+"/auth/me", "token-123", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.MeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ana@example.com", body.User.Email)
}

func TestAuthRouter_Me_Unauthorized(t *testing.T) {
	server := newAuthServer(t, &mockAuthService{})

	resp := doJSON(t, http.MethodGet, server.URL+"/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
