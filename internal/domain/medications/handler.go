package medications

import (
	"net/http"
	"strings"
	"time"

	"medication-management/internal/platform/httpx"
	"medication-management/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/medications", func(mr chi.Router) {
		mr.Get("/", listMedicationsHandler(svc, log))
		mr.Post("/", createMedicationHandler(svc, log))
		mr.Get("/{id}", getMedicationHandler(svc, log))
		mr.Put("/{id}", updateMedicationHandler(svc, log))
		mr.Delete("/{id}", deleteMedicationHandler(svc, log))
	})
}

type scheduleRequest struct {
	Times      []string `json:"times"`
	DaysOfWeek []string `json:"daysOfWeek"`
}

// createMedicationRequest sin tags required: el mensaje agregado lo arma Create.
type createMedicationRequest struct {
	Name            string           `json:"name"`
	Dosage          string           `json:"dosage"`
	Instructions    string           `json:"instructions"`
	CareRecipientID string           `json:"careRecipientId"`
	IsActive        *bool            `json:"isActive"`
	Schedule        *scheduleRequest `json:"schedule"`
}

type updateMedicationRequest struct {
	Name            *string `json:"name"`
	Dosage          *string `json:"dosage"`
	Instructions    *string `json:"instructions"`
	CareRecipientID *string `json:"careRecipientId"`
	IsActive        *bool   `json:"isActive"`
}

// medicationResponse es la vista aplanada: sin objetos anidados.
type medicationResponse struct {
	ID                     string     `json:"id"`
	Name                   string     `json:"name"`
	Dosage                 string     `json:"dosage"`
	Instructions           string     `json:"instructions"`
	IsActive               bool       `json:"isActive"`
	CareRecipientID        string     `json:"careRecipientId"`
	CareRecipientFirstName string     `json:"careRecipientFirstName"`
	CareRecipientLastName  string     `json:"careRecipientLastName"`
	CareRecipientFullName  string     `json:"careRecipientFullName"`
	ScheduleIDs            []string   `json:"scheduleIds"`
	ScheduleTimes          [][]string `json:"scheduleTimes"`
	ScheduleDaysOfWeek     [][]string `json:"scheduleDaysOfWeek"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}

// listMedicationsHandler godoc
// @Summary Listar medicaciones
// @Tags medications
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param careRecipientId query string false "Filtrar por care recipient"
// @Success 200 {array} medicationResponse
// @Router /medications [get]
func listMedicationsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), ListFilter{
			CareRecipientID: r.URL.Query().Get("careRecipientId"),
		})
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}

		out := make([]medicationResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toMedicationResponse(v))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// createMedicationHandler godoc
// @Summary Crear medicación junto con su primer schedule
// @Tags medications
// @Accept json
// @Produce json
// @Param payload body createMedicationRequest true "schedule.times en HH:MM, schedule.daysOfWeek Sunday..Saturday"
// @Success 201 {object} medicationResponse
// @Failure 400 {string} string "campos requeridos / schedule inválido"
// @Failure 404 {string} string "Care recipient not found"
// @Router /medications [post]
func createMedicationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createMedicationRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, log, err)
			return
		}

		in := CreateInput{
			CareRecipientID: req.CareRecipientID,
			Name:            req.Name,
			Dosage:          req.Dosage,
			Instructions:    req.Instructions,
			IsActive:        req.IsActive,
		}
		if req.Schedule != nil {
			in.Schedule = &InitialSchedule{Times: req.Schedule.Times, DaysOfWeek: req.Schedule.DaysOfWeek}
		}

		v, err := svc.Create(r.Context(), in)
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toMedicationResponse(v))
	}
}

// getMedicationHandler godoc
// @Summary Obtener medicación
// @Tags medications
// @Produce json
// @Param id path string true "ID de la medicación"
// @Success 200 {object} medicationResponse
// @Failure 404 {string} string "Medication not found"
// @Router /medications/{id} [get]
func getMedicationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toMedicationResponse(v))
	}
}

// updateMedicationHandler godoc
// @Summary Actualizar medicación (parcial)
// @Tags medications
// @Accept json
// @Produce json
// @Param id path string true "ID de la medicación"
// @Param payload body updateMedicationRequest true "Campos a modificar"
// @Success 200 {object} medicationResponse
// @Failure 400 {string} string "datos inválidos"
// @Failure 404 {string} string "Medication not found / Care recipient not found"
// @Router /medications/{id} [put]
func updateMedicationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateMedicationRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, log, err)
			return
		}

		v, err := svc.Update(r.Context(), chi.URLParam(r, "id"), UpdateInput{
			CareRecipientID: req.CareRecipientID,
			Name:            req.Name,
			Dosage:          req.Dosage,
			Instructions:    req.Instructions,
			IsActive:        req.IsActive,
		})
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toMedicationResponse(v))
	}
}

// deleteMedicationHandler godoc
// @Summary Dar de baja medicación (isActive=false)
// @Tags medications
// @Param id path string true "ID de la medicación"
// @Success 204
// @Failure 404 {string} string "Medication not found"
// @Router /medications/{id} [delete]
func deleteMedicationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.NoContent(w)
	}
}

func toMedicationResponse(v View) medicationResponse {
	resp := medicationResponse{
		ID:                     v.ID,
		Name:                   v.Name,
		Dosage:                 v.Dosage,
		Instructions:           v.Instructions,
		IsActive:               v.IsActive,
		CareRecipientID:        v.CareRecipientID,
		CareRecipientFirstName: v.CareRecipientFirstName,
		CareRecipientLastName:  v.CareRecipientLastName,
		CareRecipientFullName:  strings.TrimSpace(v.CareRecipientFirstName + " " + v.CareRecipientLastName),
		ScheduleIDs:            make([]string, 0, len(v.Schedules)),
		ScheduleTimes:          make([][]string, 0, len(v.Schedules)),
		ScheduleDaysOfWeek:     make([][]string, 0, len(v.Schedules)),
		CreatedAt:              v.CreatedAt,
		UpdatedAt:              v.UpdatedAt,
	}
	for _, s := range v.Schedules {
		resp.ScheduleIDs = append(resp.ScheduleIDs, s.ID)
		resp.ScheduleTimes = append(resp.ScheduleTimes, s.Times)
		resp.ScheduleDaysOfWeek = append(resp.ScheduleDaysOfWeek, s.DaysOfWeek)
	}
	return resp
}
