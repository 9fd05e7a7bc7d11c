package dashboard

import (
	"net/http"
	"strconv"
	"strings"

	"medication-management/internal/platform/apperr"
	"medication-management/internal/platform/httpx"
	"medication-management/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/dashboard", func(dr chi.Router) {
		upcoming := upcomingDosesHandler(svc, log)
		dr.Get("/upcoming-doses", upcoming)
		dr.Get("/upcoming", upcoming)
		dr.Get("/stats", statsHandler(svc, log))
	})
}

// upcomingDosesHandler godoc
// @Summary Tomas de hoy
// @Description Proyecta los schedules activos que aplican hoy, marca cuáles ya se tomaron y ordena por horario (HH:MM).
// @Tags dashboard
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param limit query int false "Máximo de tomas a devolver (>= 0). Por defecto 5"
// @Success 200 {array} Occurrence
// @Failure 400 {string} string "limit inválido"
// @Failure 401 {string} string "unauthorized"
// @Router /dashboard/upcoming-doses [get]
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

		items, err := svc.UpcomingDoses(r.Context(), limit)
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

// statsHandler godoc
// @Summary Estadísticas del dashboard
// @Description Conteos de activos, dosis de hoy, tomadas hoy, perdidas (histórico) y porcentaje de cumplimiento.
// @Tags dashboard
// @Produce json
// @Success 200 {object} Stats
// @Failure 401 {string} string "unauthorized"
// @Router /dashboard/stats [get]
func statsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Stats(r.Context())
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, st)
	}
}
