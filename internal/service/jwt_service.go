package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTService emite y valida los bearer tokens de la API de sesiones.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

type Claims struct {
	Client    string `json:"client"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

var (
	ErrJWTInvalid = errors.New("jwt invalid")
	ErrJWTExpired = errors.New("jwt expired")
)

const apiTokenType = "api"

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "class-finder",
	}
}

// Enabled reports whether a signing secret is configured.
func (s *JWTService) Enabled() bool {
	return s != nil && len(s.secret) > 0
}

// TTL returns how long issued tokens stay valid.
func (s *JWTService) TTL() time.Duration {
	return s.ttl
}

// Issue firma un token para el cliente indicado.
func (s *JWTService) Issue(client string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrJWTInvalid
	}
	client = strings.TrimSpace(client)
	if client == "" {
		return "", ErrJWTInvalid
	}
	now := time.Now().UTC()
	claims := Claims{
		Client:    client,
		TokenType: apiTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   client,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) Parse(tokenString string) (Claims, error) {
	if len(s.secret) == 0 {
		return Claims{}, ErrJWTInvalid
	}
	if strings.TrimSpace(tokenString) == "" {
		return Claims{}, ErrJWTInvalid
	}
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return Claims{}, err
	}
	if claims.TokenType != apiTokenType {
		return Claims{}, ErrJWTInvalid
	}
	if !s.isValidClaims(claims) {
		return Claims{}, ErrJWTInvalid
	}
	return claims, nil
}

func (s *JWTService) parseToken(tokenString string) (Claims, error) {
	var claims Claims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrJWTExpired
		}
		return Claims{}, ErrJWTInvalid
	}
	return claims, nil
}

func (s *JWTService) isValidClaims(claims Claims) bool {
	if strings.TrimSpace(claims.Client) == "" {
		return false
	}
	if claims.Subject != claims.Client {
		return false
	}
	return strings.TrimSpace(claims.Issuer) == s.issuer
}
