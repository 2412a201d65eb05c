// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 STA Travel

package service

import (
	"context"
	"testing"
	"time"

	"github.com/statravel/sta/internal/config"
	"github.com/statravel/sta/internal/logger"
	"github.com/statravel/sta/internal/store"
	"github.com/statravel/sta/internal/utils"
	"github.com/statravel/sta/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn      func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn func(ctx context.Context, email string) (models.User, error)
	findByIDFn    func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, userID)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func newTestAuthService(repo store.UserRepository) AuthService {
	return NewAuthService(repo, config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "sta-auth",
		TokenDuration: time.Hour,
		BcryptCost:    utils.DefaultBcryptCost,
	}, logger.Nop())
}

func TestAuthService_Register_NormalizesEmailAndHashes(t *testing.T) {
	var created models.User
	repo := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			created = user
			user.UserID = 1
			return user, nil
		},
	}

	svc := newTestAuthService(repo)
	user, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "  John@Example.COM ",
		Password: "s3cret-pass",
		FullName: "John Doe",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "john@example.com", created.Email)
	assert.NotEqual(t, "s3cret-pass", created.PasswordHash)
	assert.True(t, utils.ComparePassword("s3cret-pass", created.PasswordHash))
}

func TestAuthService_Register_InvalidData(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Register(context.Background(), models.RegisterRequest{Email: "", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Register(context.Background(), models.RegisterRequest{Email: "not-an-email", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Register(context.Background(), models.RegisterRequest{Email: "a@b.c", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(context.Context, models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}

	svc := newTestAuthService(repo)
	_, err := svc.Register(context.Background(), models.RegisterRequest{Email: "a@b.c", Password: "x"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-pass", utils.DefaultBcryptCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findByEmailFn: func(_ context.Context, email string) (models.User, error) {
			assert.Equal(t, "john@example.com", email)
			return models.User{UserID: 7, Email: email, PasswordHash: hash}, nil
		},
	}

	svc := newTestAuthService(repo)
	user, err := svc.Login(context.Background(), models.LoginRequest{Email: "John@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("right-pass", utils.DefaultBcryptCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findByEmailFn: func(_ context.Context, email string) (models.User, error) {
			return models.User{UserID: 7, Email: email, PasswordHash: hash}, nil
		},
	}

	svc := newTestAuthService(repo)
	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "john@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@example.com", Password: "x"})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	repo := &mockUserRepository{}
	expired := NewAuthService(repo, config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "sta-auth",
		TokenDuration: -time.Minute,
		BcryptCost:    utils.DefaultBcryptCost,
	}, logger.Nop())

	token, err := expired.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	_, err = expired.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}
