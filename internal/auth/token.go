package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Verification failures collapse into ErrTokenInvalid except for a
// well-signed token past its expiry, which callers may report as such.
var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// expiryLeeway absorbs clock skew between issuer and verifier so
// tokens do not flap right at the expiry boundary.
const expiryLeeway = 60 * time.Second

// TokenManager issues and validates HS256 JWTs carrying the account
// username as subject. The signing secret is fixed for the process
// lifetime; there is no revocation, tokens live until expiry.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttlMinutes int) *TokenManager {
	if ttlMinutes <= 0 {
		ttlMinutes = 30
	}
	return &TokenManager{secret: []byte(secret), ttl: time.Duration(ttlMinutes) * time.Minute}
}

// Claims describes the JWT payload.
type Claims struct {
	jwt.RegisteredClaims
}

// Generate builds and signs an access token for the identity.
func (tm *TokenManager) Generate(identity string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity,
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

// Parse validates a token and returns its claims. A bad signature,
// malformed structure, wrong algorithm, or empty subject all yield
// ErrTokenInvalid; only a genuine expiry of an otherwise valid token
// yields ErrTokenExpired.
func (tm *TokenManager) Parse(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	}, jwt.WithLeeway(expiryLeeway))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) && !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
