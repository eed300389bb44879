package utils

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vaughan-dsouza/salesdesk/internal/models"
)

// context key
type ctxKey string

const CtxIdentityKey ctxKey = "identity"

// TokenTTL is the lifetime of every issued bearer token.
const TokenTTL = 24 * time.Hour

var ErrSecretNotConfigured = errors.New("secret not configured")

// CustomClaims wraps jwt.RegisteredClaims with the user id and email.
type CustomClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Identity returns the caller identity carried by the claims.
func (c *CustomClaims) Identity() models.Identity {
	return models.Identity{UserID: c.UserID, Email: c.Email}
}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, CtxIdentityKey, id)
}

// IdentityFromContext returns the identity set by the auth middleware.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	id, ok := ctx.Value(CtxIdentityKey).(models.Identity)
	return id, ok
}

// GenerateToken signs an HS256 token for the user. Subject and the "id" claim
// both hold the durable user id.
func GenerateToken(userID, email, secret string, ttl time.Duration) (string, int64, error) {
	if secret == "" {
		return "", 0, ErrSecretNotConfigured
	}

	now := time.Now()
	expTime := now.Add(ttl)

	claims := CustomClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expTime),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", 0, err
	}

	return signed, expTime.Unix(), nil
}

func VerifyToken(tokenStr, secret string) (*CustomClaims, error) {
	if secret == "" {
		return nil, ErrSecretNotConfigured
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
	)

	var claims CustomClaims

	_, err := parser.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims.UserID == "" {
		return nil, errors.New("token has no user id")
	}

	return &claims, nil
}
