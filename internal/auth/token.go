package auth

import (
	"fmt"
	"time"

	dom "github.com/vijaynvb/TodoMinimalAPI/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed lifetime of an issued bearer token.
const TokenTTL = 30 * time.Minute

// Claims is the JWT payload. Subject holds the user ID.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// TokenIssuer builds and verifies HS256 bearer tokens from the
// configured issuer, audience and symmetric key.
type TokenIssuer struct {
	issuer   string
	audience string
	key      []byte
}

// NewTokenIssuer returns a TokenIssuer for the given configuration.
func NewTokenIssuer(issuer, audience, key string) *TokenIssuer {
	return &TokenIssuer{issuer: issuer, audience: audience, key: []byte(key)}
}

// Issue signs a token for an authenticated user, valid for TokenTTL.
func (i *TokenIssuer) Issue(u dom.User) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{i.audience},
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
		Email: u.Email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a serialized token, checking signature,
// expiry, issuer and audience.
func (i *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return i.key, nil
		},
		jwt.WithIssuer(i.issuer),
		jwt.WithAudience(i.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
