package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTService_IssueParse(t *testing.T) {
	svc := NewJWTService("secret", 15*time.Minute)

	token, err := svc.Issue("web-ui")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}

	claims, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Client != "web-ui" || claims.ID == "" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTService_RejectsEmptySecretAndClient(t *testing.T) {
	svc := NewJWTService("", time.Minute)
	if svc.Enabled() {
		t.Fatalf("expected service disabled without secret")
	}
	if _, err := svc.Issue("web-ui"); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid on empty secret, got %v", err)
	}

	svc = NewJWTService("secret", time.Minute)
	if _, err := svc.Issue("  "); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid on empty client, got %v", err)
	}
}

func TestJWTService_RejectsOtherSecret(t *testing.T) {
	token, err := NewJWTService("secret", time.Minute).Issue("web-ui")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := NewJWTService("other", time.Minute).Parse(token); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid for foreign signature, got %v", err)
	}
}

func signClaims(t *testing.T, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestJWTService_RejectsWrongIssuerAndExpired(t *testing.T) {
	svc := NewJWTService("secret", 15*time.Minute)
	now := time.Now().UTC()

	wrongIssuer := signClaims(t, Claims{
		Client:    "web-ui",
		TokenType: apiTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "other-issuer",
			Subject:   "web-ui",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(10 * time.Minute)),
		},
	})
	if _, err := svc.Parse(wrongIssuer); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid for wrong issuer, got %v", err)
	}

	expired := signClaims(t, Claims{
		Client:    "web-ui",
		TokenType: apiTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "class-finder",
			Subject:   "web-ui",
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
		},
	})
	if _, err := svc.Parse(expired); !errors.Is(err, ErrJWTExpired) {
		t.Fatalf("expected ErrJWTExpired, got %v", err)
	}

	wrongType := signClaims(t, Claims{
		Client:    "web-ui",
		TokenType: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "class-finder",
			Subject:   "web-ui",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
		},
	})
	if _, err := svc.Parse(wrongType); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid for wrong token type, got %v", err)
	}
}

func TestJWTService_TTLMatchesExpiry(t *testing.T) {
	if got := NewJWTService("secret", 0).TTL(); got != 24*time.Hour {
		t.Fatalf("expected default ttl of 24h, got %v", got)
	}

	svc := NewJWTService("secret", 15*time.Minute)
	before := time.Now()
	token, err := svc.Issue("cli")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	expected := before.Add(svc.TTL())
	if diff := claims.ExpiresAt.Time.Sub(expected); diff < -time.Second || diff > time.Second {
		t.Fatalf("expected expiry near %v, got %v", expected, claims.ExpiresAt.Time)
	}
}
