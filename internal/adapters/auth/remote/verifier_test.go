package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifier_Verify_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, verifyPath, r.URL.Path)
		assert.Equal(t, "secret-key", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "tok-1", body["token"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user_id":" u-9 ","email":"x@y.z","role":"admin"}`))
	}))
	defer srv.Close()

	v, err := NewVerifier(Config{BaseURL: srv.URL, APIKey: "secret-key"})
	require.NoError(t, err)

	claims, err := v.Verify(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "u-9", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestVerifier_Verify_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	v, err := NewVerifier(Config{BaseURL: srv.URL, APIKey: "k"})
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifier_Verify_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	v, err := NewVerifier(Config{BaseURL: srv.URL, APIKey: "k"})
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestNewVerifier_RequiresConfig(t *testing.T) {
	_, err := NewVerifier(Config{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
