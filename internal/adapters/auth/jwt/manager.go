package jwt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"medication-management/internal/ports/auth"

	gojwt "github.com/golang-jwt/jwt/v5"
)

const (
	DefaultTTL    = 24 * time.Hour
	DefaultIssuer = "medication-management"
)

var (
	ErrNoSecret     = errors.New("jwt secret is empty")
	ErrInvalidToken = errors.New("invalid token")
)

type Config struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// tokenClaims mantiene los nombres de campo que ya usa el cliente (userId/email/role).
type tokenClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	gojwt.RegisteredClaims
}

// Manager emite y verifica JWT HS256. Implementa auth.TokenIssuer y auth.AuthVerifier.
type Manager struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

func NewManager(cfg Config) (*Manager, error) {
	secret := strings.TrimSpace(cfg.Secret)
	if secret == "" {
		return nil, ErrNoSecret
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	issuer := strings.TrimSpace(cfg.Issuer)
	if issuer == "" {
		issuer = DefaultIssuer
	}
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
	}, nil
}

func (m *Manager) Issue(_ context.Context, c auth.Claims) (string, time.Time, error) {
	if strings.TrimSpace(c.UserID) == "" {
		return "", time.Time{}, errors.New("jwt: user id required")
	}

	now := m.now()
	exp := now.Add(m.ttl)

	tok := gojwt.NewWithClaims(gojwt.SigningMethodHS256, tokenClaims{
		UserID: c.UserID,
		Email:  c.Email,
		Role:   c.Role,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   c.UserID,
			Issuer:    m.issuer,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(exp),
		},
	})

	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("jwt: sign: %w", err)
	}
	return signed, exp, nil
}

func (m *Manager) Verify(_ context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	var tc tokenClaims
	_, err := gojwt.ParseWithClaims(token, &tc,
		func(*gojwt.Token) (any, error) { return m.secret, nil },
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithIssuer(m.issuer),
		gojwt.WithExpirationRequired(),
		gojwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	userID := strings.TrimSpace(tc.UserID)
	if userID == "" {
		userID = strings.TrimSpace(tc.Subject)
	}
	if userID == "" {
		return auth.Claims{}, fmt.Errorf("%w: missing user id", ErrInvalidToken)
	}

	return auth.Claims{UserID: userID, Email: tc.Email, Role: tc.Role}, nil
}
