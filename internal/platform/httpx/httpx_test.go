package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medication-management/internal/platform/apperr"
	"medication-management/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Envelope(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSON(rr, http.StatusCreated, map[string]string{"id": "x"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"data":{"id":"x"}}`, rr.Body.String())
}

func TestWriteJSON_EmptySliceIsKept(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSON(rr, http.StatusOK, []string{})
	assert.JSONEq(t, `{"success":true,"data":[]}`, rr.Body.String())
}

func TestWriteError_MapsKinds(t *testing.T) {
	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{apperr.Validation("bad"), http.StatusBadRequest, "bad"},
		{apperr.NotFound("missing"), http.StatusNotFound, "missing"},
		{apperr.Unauthorized("nope"), http.StatusUnauthorized, "nope"},
		{apperr.Conflict("dup"), http.StatusConflict, "dup"},
		{errors.New("db down"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		rr := httptest.NewRecorder()
		WriteError(rr, logger.Nop(), tt.err)
		assert.Equal(t, tt.status, rr.Code, tt.msg)
		assert.Contains(t, rr.Body.String(), `"error":"`+tt.msg+`"`)
	}
}

type sample struct {
	Email string `json:"email" validate:"omitempty,email"`
	Role  string `json:"role" validate:"omitempty,oneof=admin caregiver"`
}

func TestDecodeJSON(t *testing.T) {
	decode := func(body string) (sample, error) {
		var s sample
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		return s, DecodeJSON(req, &s)
	}

	_, err := decode(`{`)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Equal(t, "invalid json", err.Error())

	_, err = decode(`{"email":"not-an-email"}`)
	require.Error(t, err)
	assert.Equal(t, "email must be a valid email", err.Error())

	_, err = decode(`{"role":"vet"}`)
	require.Error(t, err)
	assert.Equal(t, "role must be one of: admin caregiver", err.Error())

	_, err = decode(`{"email":"a@b.co","role":"admin"}`)
	assert.NoError(t, err)
}
