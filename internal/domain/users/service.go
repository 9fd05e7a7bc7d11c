package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"medication-management/internal/platform/apperr"
	"medication-management/internal/ports/auth"
	"medication-management/internal/ports/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var errInvalidCredentials = apperr.Unauthorized("Invalid credentials")

type Service struct {
	repo   Repository
	issuer auth.TokenIssuer
	cost   int
	now    func() time.Time
}

func NewService(repo Repository, issuer auth.TokenIssuer) *Service {
	return &Service{
		repo:   repo,
		issuer: issuer,
		cost:   bcrypt.DefaultCost,
		now:    time.Now,
	}
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string // vacío = caregiver
}

type Session struct {
	User      User
	Token     string
	ExpiresAt time.Time
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Session, error) {
	email := normalizeEmail(in.Email)
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	if email == "" || in.Password == "" || first == "" || last == "" {
		return Session{}, apperr.Validation("Email, password, first name, and last name are required")
	}

	role := Role(strings.TrimSpace(in.Role))
	switch role {
	case "":
		role = RoleCaregiver
	case RoleAdmin, RoleCaregiver:
	default:
		return Session{}, apperr.Validation("role must be one of: admin, caregiver")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		// bcrypt rechaza passwords de más de 72 bytes
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return Session{}, apperr.Validation("password is too long")
		}
		return Session{}, err
	}

	now := s.now()
	u := User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    first,
		LastName:     last,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return Session{}, apperr.Conflict("User with this email already exists")
		}
		return Session{}, err
	}

	return s.session(ctx, u)
}

func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return Session{}, apperr.Validation("Email and password are required")
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Session{}, errInvalidCredentials
		}
		return Session{}, err
	}
	if !u.IsActive {
		return Session{}, apperr.Unauthorized("Account is inactive")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return Session{}, errInvalidCredentials
	}

	return s.session(ctx, u)
}

// Profile devuelve el usuario del caller. En modo dev el ID puede no existir en el store.
func (s *Service) Profile(ctx context.Context, userID string) (User, error) {
	u, err := s.repo.GetByID(ctx, strings.TrimSpace(userID))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return User{}, apperr.NotFound("User not found")
		}
		return User{}, err
	}
	return u, nil
}

func (s *Service) session(ctx context.Context, u User) (Session, error) {
	token, exp, err := s.issuer.Issue(ctx, auth.Claims{
		UserID: u.ID,
		Email:  u.Email,
		Role:   string(u.Role),
	})
	if err != nil {
		return Session{}, err
	}
	return Session{User: u, Token: token, ExpiresAt: exp}, nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
