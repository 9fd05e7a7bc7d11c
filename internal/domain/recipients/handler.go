package recipients

import (
	"context"
	"net/http"
	"time"

	"medication-management/internal/platform/httpx"
	"medication-management/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// MedicationLister resuelve los IDs de medicación de un recipient para la vista de detalle.
// Lo implementa medications.Service; se inyecta para no importar ese paquete desde acá.
type MedicationLister interface {
	IDsByRecipient(ctx context.Context, recipientID string) ([]string, error)
}

func RegisterRoutes(r chi.Router, svc *Service, meds MedicationLister, log logger.Logger) {
	r.Route("/care-recipients", func(rr chi.Router) {
		rr.Get("/", listRecipientsHandler(svc, log))
		rr.Post("/", createRecipientHandler(svc, log))
		rr.Get("/{id}", getRecipientHandler(svc, meds, log))
		rr.Put("/{id}", updateRecipientHandler(svc, log))
		rr.Delete("/{id}", deleteRecipientHandler(svc, log))
	})
}

type createRecipientRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
}

type updateRecipientRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	DateOfBirth *string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	IsActive    *bool   `json:"isActive"`
}

type recipientResponse struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	FullName      string    `json:"fullName"`
	DateOfBirth   string    `json:"dateOfBirth"`
	IsActive      bool      `json:"isActive"`
	MedicationIDs []string  `json:"medicationIds,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// listRecipientsHandler godoc
// @Summary Listar care recipients
// @Tags care-recipients
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} recipientResponse
// @Failure 401 {string} string "unauthorized"
// @Router /care-recipients [get]
func listRecipientsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}

		out := make([]recipientResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toRecipientResponse(c, nil))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// createRecipientHandler godoc
// @Summary Crear care recipient
// @Tags care-recipients
// @Accept json
// @Produce json
// @Param payload body createRecipientRequest true "dateOfBirth en formato YYYY-MM-DD"
// @Success 201 {object} recipientResponse
// @Failure 400 {string} string "campos requeridos / fecha inválida"
// @Router /care-recipients [post]
func createRecipientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRecipientRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, log, err)
			return
		}

		c, err := svc.Create(r.Context(), CreateInput{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			DateOfBirth: req.DateOfBirth,
		})
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toRecipientResponse(c, nil))
	}
}

// getRecipientHandler godoc
// @Summary Obtener care recipient con sus medicaciones
// @Tags care-recipients
// @Produce json
// @Param id path string true "ID del care recipient"
// @Success 200 {object} recipientResponse
// @Failure 404 {string} string "Care recipient not found"
// @Router /care-recipients/{id} [get]
func getRecipientHandler(svc *Service, meds MedicationLister, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}

		ids := []string{}
		if meds != nil {
			ids, err = meds.IDsByRecipient(r.Context(), c.ID)
			if err != nil {
				httpx.WriteError(w, log, err)
				return
			}
		}
		httpx.WriteJSON(w, http.StatusOK, toRecipientResponse(c, ids))
	}
}

// updateRecipientHandler godoc
// @Summary Actualizar care recipient (parcial)
// @Tags care-recipients
// @Accept json
// @Produce json
// @Param id path string true "ID del care recipient"
// @Param payload body updateRecipientRequest true "Campos a modificar"
// @Success 200 {object} recipientResponse
// @Failure 400 {string} string "datos inválidos"
// @Failure 404 {string} string "Care recipient not found"
// @Router /care-recipients/{id} [put]
func updateRecipientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateRecipientRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, log, err)
			return
		}

		c, err := svc.Update(r.Context(), chi.URLParam(r, "id"), UpdateInput{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			DateOfBirth: req.DateOfBirth,
			IsActive:    req.IsActive,
		})
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toRecipientResponse(c, nil))
	}
}

// deleteRecipientHandler godoc
// @Summary Dar de baja care recipient (isActive=false)
// @Tags care-recipients
// @Param id path string true "ID del care recipient"
// @Success 204
// @Failure 404 {string} string "Care recipient not found"
// @Router /care-recipients/{id} [delete]
func deleteRecipientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.NoContent(w)
	}
}

func toRecipientResponse(c CareRecipient, medicationIDs []string) recipientResponse {
	return recipientResponse{
		ID:            c.ID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		FullName:      c.FullName(),
		DateOfBirth:   c.DateOfBirth.Format(dateLayout),
		IsActive:      c.IsActive,
		MedicationIDs: medicationIDs,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
