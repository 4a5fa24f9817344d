package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/voyago/tourism-service/internal/domain"
)

// TokenTTL is the fixed bearer token lifetime. It is deliberately a
// constant rather than configuration: every issued token expires exactly
// 24 hours after issuance.
const TokenTTL = 24 * time.Hour

var (
	// ErrTokenExpired means the token was valid but its expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenSignature means the signature does not match the signing key.
	ErrTokenSignature = errors.New("token signature invalid")
	// ErrTokenMalformed means the token could not be parsed at all.
	ErrTokenMalformed = errors.New("token malformed")
)

// TokenManager issues and verifies the platform's bearer tokens.
type TokenManager struct {
	secret []byte
}

// NewTokenManager builds a manager around the process-wide signing key.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// Claims is the signed claim set carried by every bearer token. Role and
// the role-specific scoping claims are immutable once signed; the access
// guard trusts them without consulting storage.
type Claims struct {
	Role        domain.Role `json:"role"`
	BusinessID  string      `json:"business_id,omitempty"`
	AccessLevel int         `json:"access_level,omitempty"`
	jwt.RegisteredClaims
}

// Principal converts the decoded claim set into a bound principal.
func (c *Claims) Principal() Principal {
	return Principal{
		ID:          c.Subject,
		Role:        c.Role,
		BusinessID:  c.BusinessID,
		AccessLevel: c.AccessLevel,
	}
}

// GenerateToken signs a token for the principal, expiring TokenTTL from now.
func (tm *TokenManager) GenerateToken(p Principal) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(TokenTTL)
	claims := &Claims{
		Role:        p.Role,
		BusinessID:  p.BusinessID,
		AccessLevel: p.AccessLevel,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseToken verifies the signature and expiry and returns the claims.
// Verification is pure: no storage is consulted and no state is mutated.
func (tm *TokenManager) ParseToken(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrTokenSignature
		}
		return tm.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignature
		default:
			return nil, ErrTokenMalformed
		}
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenMalformed
	}
	if !claims.Role.Valid() {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
