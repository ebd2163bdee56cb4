package identity

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	apperrors "finbuddy/internal/errors"
)

// JWTResolver verifies HS256 bearer tokens issued by the identity provider
// and returns the token subject as the external user identifier.
type JWTResolver struct {
	secret []byte
}

// NewJWTResolver creates a resolver that verifies tokens with the given
// shared secret.
func NewJWTResolver(secret string) *JWTResolver {
	return &JWTResolver{secret: []byte(secret)}
}

// Resolve extracts and verifies the Authorization bearer token. Any missing,
// malformed, expired, or subject-less token resolves to ErrUnauthorized.
func (j *JWTResolver) Resolve(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", apperrors.WithMessage(apperrors.ErrUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid authorization header format")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil || !token.Valid {
		return "", apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid or expired token")
	}

	if claims.Subject == "" {
		return "", apperrors.WithMessage(apperrors.ErrUnauthorized, "Token has no subject")
	}

	return claims.Subject, nil
}
