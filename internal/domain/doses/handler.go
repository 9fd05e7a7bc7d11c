package doses

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"medication-management/internal/platform/apperr"
	"medication-management/internal/platform/httpx"
	"medication-management/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/doses", func(dr chi.Router) {
		dr.Post("/", recordDoseHandler(svc, log))
		dr.Get("/", listDosesHandler(svc, log))
		dr.Get("/upcoming", upcomingDosesHandler(svc, log))
		dr.Get("/{id}", getDoseHandler(svc, log))
		dr.Put("/{id}/status", updateDoseStatusHandler(svc, log))
	})
}

// recordDoseRequest no lleva tags de validación: el orden de los errores lo decide Record
// (primero el status, después los campos requeridos).
type recordDoseRequest struct {
	MedicationID  string `json:"medicationId"`
	ScheduleID    string `json:"scheduleId"`
	ScheduledTime string `json:"scheduledTime"`
	Status        string `json:"status"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type doseResponse struct {
	ID                     string     `json:"id"`
	MedicationID           string     `json:"medicationId"`
	ScheduledFor           time.Time  `json:"scheduledFor"`
	Status                 Status     `json:"status"`
	TakenAt                *time.Time `json:"takenAt"`
	ScheduleID             string     `json:"scheduleId,omitempty"`
	ScheduledTime          string     `json:"scheduledTime,omitempty"`
	MedicationName         string     `json:"medicationName"`
	MedicationDosage       string     `json:"medicationDosage"`
	MedicationInstructions string     `json:"medicationInstructions"`
	CareRecipientID        string     `json:"careRecipientId"`
	CareRecipientFirstName string     `json:"careRecipientFirstName"`
	CareRecipientLastName  string     `json:"careRecipientLastName"`
	CareRecipientFullName  string     `json:"careRecipientFullName"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}

// recordDoseHandler godoc
// @Summary Registrar dosis tomada
// @Description Registra que se administró la dosis de un horario concreto de hoy. Solo acepta status `taken`. El horario debe figurar tal cual en `times` del schedule. No es idempotente.
// @Tags doses
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body recordDoseRequest true "scheduledTime en HH:MM"
// @Success 201 {object} doseResponse
// @Failure 400 {string} string "Only taken status is allowed for new doses / Scheduled time not found in the schedule"
// @Failure 404 {string} string "Medication not found / Schedule not found"
// @Router /doses [post]
func recordDoseHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recordDoseRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, log, err)
			return
		}

		v, err := svc.Record(r.Context(), RecordInput{
			MedicationID:  req.MedicationID,
			ScheduleID:    req.ScheduleID,
			ScheduledTime: req.ScheduledTime,
			Status:        req.Status,
		})
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}

		log.Info("dose recorded", map[string]any{
			"dose_id":        v.ID,
			"medication_id":  v.MedicationID,
			"schedule_id":    v.ScheduleID,
			"scheduled_time": v.ScheduledTime,
		})
		httpx.WriteJSON(w, http.StatusCreated, toDoseResponse(v))
	}
}

// listDosesHandler godoc
// @Summary Listar dosis
// @Tags doses
// @Produce json
// @Param recipientId query string false "Filtrar por care recipient"
// @Param status query string false "scheduled | taken | missed | skipped"
// @Param startDate query string false "scheduledFor mínimo (RFC3339 o YYYY-MM-DD)"
// @Param endDate query string false "scheduledFor máximo (RFC3339 o YYYY-MM-DD)"
// @Success 200 {array} doseResponse
// @Failure 400 {string} string "filtros inválidos"
// @Router /doses [get]
func listDosesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		start, err := parseDateParam(q.Get("startDate"), "startDate")
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		end, err := parseDateParam(q.Get("endDate"), "endDate")
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}

		items, err := svc.List(r.Context(), ListInput{
			RecipientID: q.Get("recipientId"),
			Status:      q.Get("status"),
			StartDate:   start,
			EndDate:     end,
		})
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toDoseResponses(items))
	}
}

// upcomingDosesHandler godoc
// @Summary Próximas dosis programadas
// @Tags doses
// @Produce json
// @Param limit query int false "Máximo a devolver. Por defecto 5"
// @Success 200 {array} doseResponse
// @Failure 400 {string} string "limit inválido"
// @Router /doses/upcoming [get]
func upcomingDosesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := DefaultUpcomingLimit
		if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				httpx.WriteError(w, log, apperr.Validation("limit must be a non-negative integer"))
				return
			}
			limit = n
		}

		items, err := svc.Upcoming(r.Context(), limit)
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toDoseResponses(items))
	}
}

// getDoseHandler godoc
// @Summary Obtener dosis
// @Tags doses
// @Produce json
// @Param id path string true "ID de la dosis"
// @Success 200 {object} doseResponse
// @Failure 404 {string} string "Dose not found"
// @Router /doses/{id} [get]
func getDoseHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toDoseResponse(v))
	}
}

// updateDoseStatusHandler godoc
// @Summary Cambiar estado de una dosis
// @Tags doses
// @Accept json
// @Produce json
// @Param id path string true "ID de la dosis"
// @Param payload body updateStatusRequest true "scheduled | taken | missed | skipped"
// @Success 200 {object} doseResponse
// @Failure 400 {string} string "Valid status is required"
// @Failure 404 {string} string "Dose not found"
// @Router /doses/{id}/status [put]
func updateDoseStatusHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateStatusRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, log, err)
			return
		}

		v, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toDoseResponse(v))
	}
}

func parseDateParam(raw, name string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, nil
	}
	return nil, apperr.Validation(name + " must be RFC3339 or YYYY-MM-DD")
}

func toDoseResponses(items []View) []doseResponse {
	out := make([]doseResponse, 0, len(items))
	for _, v := range items {
		out = append(out, toDoseResponse(v))
	}
	return out
}

func toDoseResponse(v View) doseResponse {
	return doseResponse{
		ID:                     v.ID,
		MedicationID:           v.MedicationID,
		ScheduledFor:           v.ScheduledFor,
		Status:                 v.Status,
		TakenAt:                v.TakenAt,
		ScheduleID:             v.ScheduleID,
		ScheduledTime:          v.ScheduledTime,
		MedicationName:         v.MedicationName,
		MedicationDosage:       v.MedicationDosage,
		MedicationInstructions: v.MedicationInstructions,
		CareRecipientID:        v.CareRecipientID,
		CareRecipientFirstName: v.CareRecipientFirstName,
		CareRecipientLastName:  v.CareRecipientLastName,
		CareRecipientFullName:  strings.TrimSpace(v.CareRecipientFirstName + " " + v.CareRecipientLastName),
		CreatedAt:              v.CreatedAt,
		UpdatedAt:              v.UpdatedAt,
	}
}
