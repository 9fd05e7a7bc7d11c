package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jwtauth "medication-management/internal/adapters/auth/jwt"
	"medication-management/internal/domain/dashboard"
	"medication-management/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// miércoles
var testNow = time.Date(2026, time.October, 14, 10, 0, 0, 0, time.UTC)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type occurrence struct {
	MedicationID  string `json:"medicationId"`
	ScheduleID    string `json:"scheduleId"`
	ScheduledTime string `json:"scheduledTime"`
	RecipientName string `json:"recipientName"`
	TakenToday    bool   `json:"takenToday"`
}

func newServer(t *testing.T, opts router.Options) *httptest.Server {
	t.Helper()
	h, err := router.NewRouter(opts)
	require.NoError(t, err)
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func doReq(t *testing.T, baseURL, method, path string, headers map[string]string, body any) (int, envelope) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if len(bytes.TrimSpace(raw)) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), "body=%s", string(raw))
	}
	return resp.StatusCode, env
}

func devUser(id string) map[string]string {
	return map[string]string{"X-Debug-User-ID": id}
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out), "data=%s", string(env.Data))
	return out
}

func TestHTTP_Health(t *testing.T) {
	ts := newServer(t, router.Options{})

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHTTP_ProtectedRoutesRequireClaims(t *testing.T) {
	ts := newServer(t, router.Options{})

	st, env := doReq(t, ts.URL, http.MethodGet, "/care-recipients", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, st)
	assert.False(t, env.Success)
	assert.Equal(t, "Unauthorized", env.Error)
}

func TestHTTP_EndToEnd_DashboardAndDoseRecording(t *testing.T) {
	ts := newServer(t, router.Options{Clock: func() time.Time { return testNow }})
	h := devUser("caregiver-1")

	// 1) Alta de recipient
	st, env := doReq(t, ts.URL, http.MethodPost, "/care-recipients", h, map[string]any{
		"firstName":   "Ana",
		"lastName":    "Pérez",
		"dateOfBirth": "1940-03-02",
	})
	require.Equal(t, http.StatusCreated, st, env.Error)
	rec := decode[struct {
		ID       string `json:"id"`
		FullName string `json:"fullName"`
	}](t, env)
	assert.Equal(t, "Ana Pérez", rec.FullName)

	// 2) Medicación de hoy con dos horarios, desordenados a propósito
	st, env = doReq(t, ts.URL, http.MethodPost, "/medications", h, map[string]any{
		"name":            "Metformin",
		"dosage":          "500mg",
		"instructions":    "Con comida",
		"careRecipientId": rec.ID,
		"schedule": map[string]any{
			"times":      []string{"20:00", "08:00"},
			"daysOfWeek": []string{"Wednesday"},
		},
	})
	require.Equal(t, http.StatusCreated, st, env.Error)
	med := decode[struct {
		ID          string   `json:"id"`
		ScheduleIDs []string `json:"scheduleIds"`
	}](t, env)
	require.Len(t, med.ScheduleIDs, 1)
	scheduleID := med.ScheduleIDs[0]

	// 3) Otra medicación que no corre hoy
	st, env = doReq(t, ts.URL, http.MethodPost, "/medications", h, map[string]any{
		"name":            "Vitamin D",
		"dosage":          "1000IU",
		"instructions":    "Mañana",
		"careRecipientId": rec.ID,
		"schedule": map[string]any{
			"times":      []string{"07:00"},
			"daysOfWeek": []string{"Monday"},
		},
	})
	require.Equal(t, http.StatusCreated, st, env.Error)

	// 4) Dashboard antes de registrar
	st, env = doReq(t, ts.URL, http.MethodGet, "/dashboard/upcoming-doses", h, nil)
	require.Equal(t, http.StatusOK, st, env.Error)
	occ := decode[[]occurrence](t, env)
	require.Len(t, occ, 2)
	assert.Equal(t, "08:00", occ[0].ScheduledTime)
	assert.Equal(t, "20:00", occ[1].ScheduledTime)
	assert.Equal(t, "Ana Pérez", occ[0].RecipientName)
	assert.False(t, occ[0].TakenToday)
	assert.False(t, occ[1].TakenToday)

	// 5) Errores de validación al registrar
	cases := []struct {
		name   string
		body   map[string]any
		status int
		msg    string
	}{
		{
			name:   "status distinto de taken",
			body:   map[string]any{"medicationId": med.ID, "scheduleId": scheduleID, "scheduledTime": "20:00", "status": "missed"},
			status: http.StatusBadRequest,
			msg:    "Only taken status is allowed for new doses",
		},
		{
			name:   "horario fuera del schedule",
			body:   map[string]any{"medicationId": med.ID, "scheduleId": scheduleID, "scheduledTime": "09:00"},
			status: http.StatusBadRequest,
			msg:    "Scheduled time not found in the schedule",
		},
		{
			name:   "medicación inexistente",
			body:   map[string]any{"medicationId": "nope", "scheduleId": scheduleID, "scheduledTime": "20:00"},
			status: http.StatusNotFound,
			msg:    "Medication not found",
		},
		{
			name:   "schedule inexistente",
			body:   map[string]any{"medicationId": med.ID, "scheduleId": "nope", "scheduledTime": "20:00"},
			status: http.StatusNotFound,
			msg:    "Schedule not found",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, env := doReq(t, ts.URL, http.MethodPost, "/doses", h, tc.body)
			assert.Equal(t, tc.status, st)
			assert.Equal(t, tc.msg, env.Error)
		})
	}

	// 6) Registro válido del horario de la noche
	st, env = doReq(t, ts.URL, http.MethodPost, "/doses", h, map[string]any{
		"medicationId":  med.ID,
		"scheduleId":    scheduleID,
		"scheduledTime": "20:00",
		"status":        "taken",
	})
	require.Equal(t, http.StatusCreated, st, env.Error)
	dose := decode[struct {
		Status        string     `json:"status"`
		TakenAt       *time.Time `json:"takenAt"`
		ScheduledTime string     `json:"scheduledTime"`
	}](t, env)
	assert.Equal(t, "taken", dose.Status)
	require.NotNil(t, dose.TakenAt)
	assert.True(t, dose.TakenAt.Equal(testNow))
	assert.Equal(t, "20:00", dose.ScheduledTime)

	// 7) Por defecto se marca por posición: una toma hoy => el primer horario
	// guardado (20:00), aunque al ordenar quede segundo
	st, env = doReq(t, ts.URL, http.MethodGet, "/dashboard/upcoming-doses", h, nil)
	require.Equal(t, http.StatusOK, st)
	occ = decode[[]occurrence](t, env)
	require.Len(t, occ, 2)
	assert.Equal(t, "08:00", occ[0].ScheduledTime)
	assert.False(t, occ[0].TakenToday)
	assert.Equal(t, "20:00", occ[1].ScheduledTime)
	assert.True(t, occ[1].TakenToday, "índice 0 del schedule")

	// 8) Stats
	st, env = doReq(t, ts.URL, http.MethodGet, "/dashboard/stats", h, nil)
	require.Equal(t, http.StatusOK, st)
	stats := decode[map[string]int](t, env)
	assert.Equal(t, 1, stats["totalRecipients"])
	assert.Equal(t, 2, stats["totalMedications"])
	assert.Equal(t, 2, stats["totalSchedules"])
	assert.Equal(t, 1, stats["todayDoses"])
	assert.Equal(t, 1, stats["takenDoses"])
	assert.Equal(t, 0, stats["missedDoses"])
	assert.Equal(t, 100, stats["complianceRate"])

	// 9) limit
	st, env = doReq(t, ts.URL, http.MethodGet, "/dashboard/upcoming-doses?limit=0", h, nil)
	require.Equal(t, http.StatusOK, st)
	assert.Empty(t, decode[[]occurrence](t, env))

	st, env = doReq(t, ts.URL, http.MethodGet, "/dashboard/upcoming?limit=1", h, nil)
	require.Equal(t, http.StatusOK, st)
	assert.Len(t, decode[[]occurrence](t, env), 1)

	st, _ = doReq(t, ts.URL, http.MethodGet, "/dashboard/upcoming-doses?limit=-1", h, nil)
	assert.Equal(t, http.StatusBadRequest, st)

	// 10) Baja lógica de la medicación la saca del dashboard
	st, _ = doReq(t, ts.URL, http.MethodDelete, "/medications/"+med.ID, h, nil)
	require.Equal(t, http.StatusNoContent, st)

	st, env = doReq(t, ts.URL, http.MethodGet, "/dashboard/upcoming-doses", h, nil)
	require.Equal(t, http.StatusOK, st)
	assert.Empty(t, decode[[]occurrence](t, env))

	// 11) La métrica de dosis escritas quedó expuesta
	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), `medtracker_doses_written_total{status="taken"} 1`))
}

func TestHTTP_MedicationCreateRequiresFields(t *testing.T) {
	ts := newServer(t, router.Options{})

	st, env := doReq(t, ts.URL, http.MethodPost, "/medications", devUser("u-1"), map[string]any{
		"name": "Metformin",
	})
	assert.Equal(t, http.StatusBadRequest, st)
	assert.Equal(t, "Name, dosage, instructions, and care recipient ID are required", env.Error)
}

func TestHTTP_AuthFlowWithJWT(t *testing.T) {
	mgr, err := jwtauth.NewManager(jwtauth.Config{Secret: "test-secret", TTL: time.Hour})
	require.NoError(t, err)
	ts := newServer(t, router.Options{AuthVerifier: mgr, TokenIssuer: mgr})

	register := map[string]any{
		"email":     "Carer@Example.com",
		"password":  "s3cret-pass",
		"firstName": "Luis",
		"lastName":  "Gómez",
	}

	st, env := doReq(t, ts.URL, http.MethodPost, "/auth/register", nil, register)
	require.Equal(t, http.StatusCreated, st, env.Error)
	session := decode[struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}](t, env)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "carer@example.com", session.User.Email)
	assert.Equal(t, "caregiver", session.User.Role)

	st, env = doReq(t, ts.URL, http.MethodPost, "/auth/register", nil, register)
	assert.Equal(t, http.StatusConflict, st)
	assert.Equal(t, "User with this email already exists", env.Error)

	st, env = doReq(t, ts.URL, http.MethodPost, "/auth/login", nil, map[string]any{
		"email": "carer@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, st)
	assert.Equal(t, "Invalid credentials", env.Error)

	st, env = doReq(t, ts.URL, http.MethodPost, "/auth/login", nil, map[string]any{
		"email": "carer@example.com", "password": "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, st, env.Error)
	login := decode[struct {
		Token string `json:"token"`
	}](t, env)

	bearer := map[string]string{"Authorization": "Bearer " + login.Token}
	st, env = doReq(t, ts.URL, http.MethodGet, "/auth/profile", bearer, nil)
	require.Equal(t, http.StatusOK, st, env.Error)
	profile := decode[struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
	}](t, env)
	assert.Equal(t, "carer@example.com", profile.User.Email)

	// con verifier configurado, el header de debug no autentica
	st, _ = doReq(t, ts.URL, http.MethodGet, "/care-recipients", devUser("u-1"), nil)
	assert.Equal(t, http.StatusUnauthorized, st)

	st, _ = doReq(t, ts.URL, http.MethodGet, "/care-recipients", map[string]string{"Authorization": "Bearer garbage"}, nil)
	assert.Equal(t, http.StatusUnauthorized, st)

	st, env = doReq(t, ts.URL, http.MethodGet, "/care-recipients", bearer, nil)
	require.Equal(t, http.StatusOK, st, env.Error)
	assert.Empty(t, decode[[]map[string]any](t, env))
}

// seedTodayMedication crea recipient + medicación con horarios 08:00 y 20:00 los miércoles.
func seedTodayMedication(t *testing.T, baseURL string, h map[string]string) (medicationID, scheduleID string) {
	t.Helper()

	st, env := doReq(t, baseURL, http.MethodPost, "/care-recipients", h, map[string]any{
		"firstName": "Ana", "lastName": "Pérez", "dateOfBirth": "1940-03-02",
	})
	require.Equal(t, http.StatusCreated, st, env.Error)
	rec := decode[struct {
		ID string `json:"id"`
	}](t, env)

	st, env = doReq(t, baseURL, http.MethodPost, "/medications", h, map[string]any{
		"name":            "Enalapril",
		"dosage":          "10mg",
		"instructions":    "Con agua",
		"careRecipientId": rec.ID,
		"schedule": map[string]any{
			"times":      []string{"08:00", "20:00"},
			"daysOfWeek": []string{"Wednesday"},
		},
	})
	require.Equal(t, http.StatusCreated, st, env.Error)
	med := decode[struct {
		ID          string   `json:"id"`
		ScheduleIDs []string `json:"scheduleIds"`
	}](t, env)
	require.Len(t, med.ScheduleIDs, 1)
	return med.ID, med.ScheduleIDs[0]
}

func TestHTTP_DashboardTakenMatching(t *testing.T) {
	tests := []struct {
		name      string
		mode      dashboard.Matching
		wantTaken [2]bool // 08:00, 20:00
	}{
		{name: "default positional", mode: "", wantTaken: [2]bool{true, false}},
		{name: "tagged opt-in", mode: dashboard.MatchingTagged, wantTaken: [2]bool{false, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newServer(t, router.Options{
				Clock:         func() time.Time { return testNow },
				TakenMatching: tt.mode,
			})
			h := devUser("caregiver-1")
			medID, schedID := seedTodayMedication(t, ts.URL, h)

			st, env := doReq(t, ts.URL, http.MethodPost, "/doses", h, map[string]any{
				"medicationId": medID, "scheduleId": schedID, "scheduledTime": "20:00",
			})
			require.Equal(t, http.StatusCreated, st, env.Error)

			st, env = doReq(t, ts.URL, http.MethodGet, "/dashboard/upcoming-doses", h, nil)
			require.Equal(t, http.StatusOK, st)
			occ := decode[[]occurrence](t, env)
			require.Len(t, occ, 2)
			assert.Equal(t, "08:00", occ[0].ScheduledTime)
			assert.Equal(t, tt.wantTaken[0], occ[0].TakenToday)
			assert.Equal(t, "20:00", occ[1].ScheduledTime)
			assert.Equal(t, tt.wantTaken[1], occ[1].TakenToday)
		})
	}
}
