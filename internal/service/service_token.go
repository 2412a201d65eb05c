package service

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/statravel/sta/internal/config"
	"github.com/statravel/sta/internal/utils"
	"github.com/statravel/sta/models"
)

// TokenParser validates bearer tokens issued by the auth service. Every
// transport that protects routes depends on this narrow interface rather
// than on the full AuthService, so the catalog services can verify tokens
// without a user database.
type TokenParser interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type tokenParser struct {
	tokenSignKey string
	tokenIssuer  string
}

// NewTokenParser returns a stateless TokenParser sharing the sign key and
// issuer with the auth service.
func NewTokenParser(cfg config.App) TokenParser {
	return &tokenParser{
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
	}
}

func (p *tokenParser) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, p.tokenSignKey, p.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, err
	}

	return token, nil
}
