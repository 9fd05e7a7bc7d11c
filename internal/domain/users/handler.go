package users

import (
	"net/http"
	"time"

	"medication-management/internal/middleware"
	"medication-management/internal/platform/httpx"
	"medication-management/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes: register/login van sin auth; profile necesita un router con RequireClaims.
func RegisterRoutes(public, protected chi.Router, svc *Service, log logger.Logger) {
	public.Post("/auth/register", registerHandler(svc, log))
	public.Post("/auth/login", loginHandler(svc, log))
	protected.Get("/auth/profile", profileHandler(svc, log))
}

// Los faltantes los reporta el service con un único mensaje; acá solo formato.
type registerRequest struct {
	Email     string `json:"email" validate:"omitempty,email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role" validate:"omitempty,oneof=admin caregiver"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type sessionResponse struct {
	User      userResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

type profileResponse struct {
	User userResponse `json:"user"`
}

// registerHandler godoc
// @Summary Registrar usuario
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body registerRequest true "role opcional (admin | caregiver), por defecto caregiver"
// @Success 201 {object} sessionResponse
// @Failure 400 {string} string "campos requeridos"
// @Failure 409 {string} string "User with this email already exists"
// @Router /auth/register [post]
func registerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, log, err)
			return
		}

		sess, err := svc.Register(r.Context(), RegisterInput{
			Email:     req.Email,
			Password:  req.Password,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Role:      req.Role,
		})
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}

		log.Info("user registered", map[string]any{"user_id": sess.User.ID, "role": string(sess.User.Role)})
		httpx.WriteJSON(w, http.StatusCreated, toSessionResponse(sess))
	}
}

// loginHandler godoc
// @Summary Login con email y password
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} sessionResponse
// @Failure 400 {string} string "campos requeridos"
// @Failure 401 {string} string "Invalid credentials / Account is inactive"
// @Router /auth/login [post]
func loginHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, log, err)
			return
		}

		sess, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toSessionResponse(sess))
	}
}

// profileHandler godoc
// @Summary Perfil del usuario autenticado
// @Tags auth
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Success 200 {object} profileResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "User not found"
// @Router /auth/profile [get]
func profileHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		u, err := svc.Profile(r.Context(), claims.UserID)
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, profileResponse{User: toUserResponse(u)})
	}
}

func toSessionResponse(s Session) sessionResponse {
	return sessionResponse{
		User:      toUserResponse(s.User),
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
