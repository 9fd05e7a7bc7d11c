package schedules

import (
	"net/http"
	"strings"
	"time"

	"medication-management/internal/platform/httpx"
	"medication-management/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/schedules", func(sr chi.Router) {
		sr.Get("/", listSchedulesHandler(svc, log))
		sr.Post("/", createScheduleHandler(svc, log))
		sr.Get("/{id}", getScheduleHandler(svc, log))
		sr.Put("/{id}", updateScheduleHandler(svc, log))
		sr.Delete("/{id}", deleteScheduleHandler(svc, log))
	})
}

type createScheduleRequest struct {
	MedicationID string   `json:"medicationId"`
	Times        []string `json:"times"`
	DaysOfWeek   []string `json:"daysOfWeek"`
}

type updateScheduleRequest struct {
	MedicationID *string  `json:"medicationId"`
	Times        []string `json:"times"`
	DaysOfWeek   []string `json:"daysOfWeek"`
	IsActive     *bool    `json:"isActive"`
}

type scheduleResponse struct {
	ID                     string    `json:"id"`
	MedicationID           string    `json:"medicationId"`
	Times                  []string  `json:"times"`
	DaysOfWeek             []string  `json:"daysOfWeek"`
	IsActive               bool      `json:"isActive"`
	MedicationName         string    `json:"medicationName"`
	MedicationDosage       string    `json:"medicationDosage"`
	CareRecipientID        string    `json:"careRecipientId"`
	CareRecipientFirstName string    `json:"careRecipientFirstName"`
	CareRecipientLastName  string    `json:"careRecipientLastName"`
	CareRecipientFullName  string    `json:"careRecipientFullName"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// listSchedulesHandler godoc
// @Summary Listar schedules activos
// @Tags schedules
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param medicationId query string false "Filtrar por medicación"
// @Success 200 {array} scheduleResponse
// @Router /schedules [get]
func listSchedulesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), r.URL.Query().Get("medicationId"))
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		out := make([]scheduleResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toScheduleResponse(v))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// createScheduleHandler godoc
// @Summary Crear schedule para una medicación existente
// @Tags schedules
// @Accept json
// @Produce json
// @Param payload body createScheduleRequest true "times en HH:MM, daysOfWeek Sunday..Saturday"
// @Success 201 {object} scheduleResponse
// @Failure 400 {string} string "times/daysOfWeek vacíos o inválidos"
// @Failure 404 {string} string "Medication not found"
// @Router /schedules [post]
func createScheduleHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createScheduleRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, log, err)
			return
		}

		v, err := svc.Create(r.Context(), CreateInput{
			MedicationID: req.MedicationID,
			Times:        req.Times,
			DaysOfWeek:   req.DaysOfWeek,
		})
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toScheduleResponse(v))
	}
}

// getScheduleHandler godoc
// @Summary Obtener schedule
// @Tags schedules
// @Produce json
// @Param id path string true "ID del schedule"
// @Success 200 {object} scheduleResponse
// @Failure 404 {string} string "Schedule not found"
// @Router /schedules/{id} [get]
func getScheduleHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toScheduleResponse(v))
	}
}

// updateScheduleHandler godoc
// @Summary Actualizar schedule (parcial)
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "ID del schedule"
// @Param payload body updateScheduleRequest true "Campos a modificar"
// @Success 200 {object} scheduleResponse
// @Failure 400 {string} string "datos inválidos"
// @Failure 404 {string} string "Schedule not found / Medication not found"
// @Router /schedules/{id} [put]
func updateScheduleHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateScheduleRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, log, err)
			return
		}

		v, err := svc.Update(r.Context(), chi.URLParam(r, "id"), UpdateInput{
			MedicationID: req.MedicationID,
			Times:        req.Times,
			DaysOfWeek:   req.DaysOfWeek,
			IsActive:     req.IsActive,
		})
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toScheduleResponse(v))
	}
}

// deleteScheduleHandler godoc
// @Summary Dar de baja schedule (isActive=false)
// @Tags schedules
// @Param id path string true "ID del schedule"
// @Success 204
// @Failure 404 {string} string "Schedule not found"
// @Router /schedules/{id} [delete]
func deleteScheduleHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.NoContent(w)
	}
}

func toScheduleResponse(v View) scheduleResponse {
	return scheduleResponse{
		ID:                     v.ID,
		MedicationID:           v.MedicationID,
		Times:                  v.Times,
		DaysOfWeek:             v.DaysOfWeek,
		IsActive:               v.IsActive,
		MedicationName:         v.MedicationName,
		MedicationDosage:       v.MedicationDosage,
		CareRecipientID:        v.CareRecipientID,
		CareRecipientFirstName: v.CareRecipientFirstName,
		CareRecipientLastName:  v.CareRecipientLastName,
		CareRecipientFullName:  strings.TrimSpace(v.CareRecipientFirstName + " " + v.CareRecipientLastName),
		CreatedAt:              v.CreatedAt,
		UpdatedAt:              v.UpdatedAt,
	}
}
