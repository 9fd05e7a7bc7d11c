package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"medication-management/internal/platform/apperr"
	"medication-management/internal/platform/logger"

	"github.com/go-playground/validator/v10"
)

// envelope replica el formato que consume el dashboard:
// {"success":true,"data":...} / {"success":false,"error":"..."}.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Usar el nombre JSON en los mensajes ("firstName" en vez de "FirstName").
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Fail(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: false, Error: msg})
}

// WriteError traduce errores de dominio a status codes.
// Los errores de infraestructura se loguean y se ocultan al cliente.
func WriteError(w http.ResponseWriter, log logger.Logger, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		switch ae.Kind {
		case apperr.KindValidation:
			Fail(w, http.StatusBadRequest, ae.Msg)
			return
		case apperr.KindNotFound:
			Fail(w, http.StatusNotFound, ae.Msg)
			return
		case apperr.KindUnauthorized:
			Fail(w, http.StatusUnauthorized, ae.Msg)
			return
		case apperr.KindConflict:
			Fail(w, http.StatusConflict, ae.Msg)
			return
		}
	}

	if log != nil {
		log.Error("request failed", map[string]any{"error": err.Error()})
	}
	Fail(w, http.StatusInternalServerError, "Internal server error")
}

// DecodeJSON decodifica el body en dst y corre las reglas `validate:"..."` del struct.
// Devuelve siempre un apperr de validación para que el handler responda 400.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return apperr.Validation("Request body is required")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validation("invalid json")
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return apperr.Validation(describe(verrs[0]))
		}
		return apperr.Validation(err.Error())
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must have at least %s item(s)", fe.Field(), fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must match %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
