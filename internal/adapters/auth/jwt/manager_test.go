package jwt

import (
	"context"
	"testing"
	"time"

	"medication-management/internal/ports/auth"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, now time.Time) *Manager {
	t.Helper()
	m, err := NewManager(Config{Secret: "test-secret", TTL: time.Hour})
	require.NoError(t, err)
	m.now = func() time.Time { return now }
	return m
}

func TestManager_IssueThenVerify(t *testing.T) {
	now := time.Now()
	m := newTestManager(t, now)

	tok, exp, err := m.Issue(context.Background(), auth.Claims{UserID: "u-1", Email: "a@b.c", Role: "caregiver"})
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(time.Hour), exp, time.Second)

	claims, err := m.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, auth.Claims{UserID: "u-1", Email: "a@b.c", Role: "caregiver"}, claims)
}

func TestManager_Verify_RejectsExpired(t *testing.T) {
	issuedAt := time.Now().Add(-3 * time.Hour)
	m := newTestManager(t, issuedAt)

	tok, _, err := m.Issue(context.Background(), auth.Claims{UserID: "u-1"})
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Verify_RejectsOtherSecret(t *testing.T) {
	m := newTestManager(t, time.Now())
	other, err := NewManager(Config{Secret: "another-secret"})
	require.NoError(t, err)

	tok, _, err := other.Issue(context.Background(), auth.Claims{UserID: "u-1"})
	require.NoError(t, err)

	_, err = m.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Verify_RejectsNoneAlgorithm(t *testing.T) {
	m := newTestManager(t, time.Now())

	tok := gojwt.NewWithClaims(gojwt.SigningMethodNone, tokenClaims{
		UserID: "u-1",
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    DefaultIssuer,
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := tok.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Verify(context.Background(), signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewManager_RequiresSecret(t *testing.T) {
	_, err := NewManager(Config{Secret: "  "})
	assert.ErrorIs(t, err, ErrNoSecret)
}
