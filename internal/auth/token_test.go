package auth

import (
	"errors"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-key-for-token-tests!"

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, 30)

	t.Run("subject survives round trip", func(t *testing.T) {
		token, exp, err := tm.Generate("alice")
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if token == "" {
			t.Fatal("Generate() returned empty token")
		}
		if exp.Before(time.Now()) {
			t.Fatal("Generate() returned expiry in the past")
		}

		claims, err := tm.Parse(token)
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if claims.Subject != "alice" {
			t.Errorf("Subject = %q, want %q", claims.Subject, "alice")
		}
	})

	t.Run("expiry honors ttl", func(t *testing.T) {
		_, exp, err := tm.Generate("alice")
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		want := time.Now().Add(30 * time.Minute)
		if exp.Before(want.Add(-time.Minute)) || exp.After(want.Add(time.Minute)) {
			t.Errorf("expiry = %v, want about %v", exp, want)
		}
	})

	t.Run("non-positive ttl falls back to default", func(t *testing.T) {
		fallback := NewTokenManager(testSecret, 0)
		_, exp, err := fallback.Generate("alice")
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		want := time.Now().Add(30 * time.Minute)
		if exp.Before(want.Add(-time.Minute)) || exp.After(want.Add(time.Minute)) {
			t.Errorf("expiry = %v, want about %v", exp, want)
		}
	})
}

func TestParseRejectsExpired(t *testing.T) {
	tm := NewTokenManager(testSecret, 30)

	// Sign a token already past expiry, well beyond the leeway window.
	signedAt := time.Now().Add(-time.Hour)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(signedAt.Add(10 * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(signedAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = tm.Parse(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Parse() error = %v, want ErrTokenExpired", err)
	}
}

func TestParseWithinLeeway(t *testing.T) {
	tm := NewTokenManager(testSecret, 30)

	// Expired 10s ago: still inside the 60s leeway, so it must verify.
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-10 * time.Second)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	got, err := tm.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v, want success within leeway", err)
	}
	if got.Subject != "alice" {
		t.Errorf("Subject = %q, want %q", got.Subject, "alice")
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tm := NewTokenManager(testSecret, 30)

	t.Run("garbage token", func(t *testing.T) {
		_, err := tm.Parse("not-a-jwt")
		if !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("Parse() error = %v, want ErrTokenInvalid", err)
		}
	})

	t.Run("tampered token", func(t *testing.T) {
		token, _, err := tm.Generate("alice")
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		// Flip one character in every position; none may verify.
		for i := 0; i < len(token); i++ {
			mutated := []byte(token)
			if mutated[i] == 'A' {
				mutated[i] = 'B'
			} else {
				mutated[i] = 'A'
			}
			if string(mutated) == token {
				continue
			}
			if _, err := tm.Parse(string(mutated)); !errors.Is(err, ErrTokenInvalid) {
				t.Fatalf("Parse(tampered at %d) error = %v, want ErrTokenInvalid", i, err)
			}
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenManager("a-completely-different-secret!!!", 30)
		token, _, err := other.Generate("alice")
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if _, err := tm.Parse(token); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("Parse() error = %v, want ErrTokenInvalid", err)
		}
	})

	t.Run("unsigned token", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "alice",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if _, err := tm.Parse(token); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("Parse() error = %v, want ErrTokenInvalid", err)
		}
	})

	t.Run("missing subject", func(t *testing.T) {
		claims := &Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if _, err := tm.Parse(token); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("Parse() error = %v, want ErrTokenInvalid", err)
		}
	})
}
