package recipients

import (
	"context"
	"errors"
	"strings"
	"time"

	"medication-management/internal/platform/apperr"
	"medication-management/internal/ports/storage"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

var errNotFound = apperr.NotFound("Care recipient not found")

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	FirstName   string
	LastName    string
	DateOfBirth string // YYYY-MM-DD
}

// UpdateInput usa punteros: nil = no tocar.
type UpdateInput struct {
	FirstName   *string
	LastName    *string
	DateOfBirth *string
	IsActive    *bool
}

func (s *Service) Create(ctx context.Context, in CreateInput) (CareRecipient, error) {
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	if first == "" || last == "" || strings.TrimSpace(in.DateOfBirth) == "" {
		return CareRecipient{}, apperr.Validation("First name, last name, and date of birth are required")
	}
	dob, err := parseDate(in.DateOfBirth)
	if err != nil {
		return CareRecipient{}, err
	}

	now := s.now()
	c := CareRecipient{
		ID:          uuid.NewString(),
		FirstName:   first,
		LastName:    last,
		DateOfBirth: dob,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return CareRecipient{}, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (CareRecipient, error) {
	c, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return CareRecipient{}, errNotFound
		}
		return CareRecipient{}, err
	}
	return c, nil
}

// List devuelve todos los recipients (activos e inactivos), como el listado original.
func (s *Service) List(ctx context.Context) ([]CareRecipient, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (CareRecipient, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return CareRecipient{}, err
	}

	if in.FirstName != nil {
		v := strings.TrimSpace(*in.FirstName)
		if v == "" {
			return CareRecipient{}, apperr.Validation("firstName cannot be empty")
		}
		c.FirstName = v
	}
	if in.LastName != nil {
		v := strings.TrimSpace(*in.LastName)
		if v == "" {
			return CareRecipient{}, apperr.Validation("lastName cannot be empty")
		}
		c.LastName = v
	}
	if in.DateOfBirth != nil {
		dob, err := parseDate(*in.DateOfBirth)
		if err != nil {
			return CareRecipient{}, err
		}
		c.DateOfBirth = dob
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}

	c.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, c); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return CareRecipient{}, errNotFound
		}
		return CareRecipient{}, err
	}
	return c, nil
}

// Delete es una baja lógica.
func (s *Service) Delete(ctx context.Context, id string) error {
	inactive := false
	_, err := s.Update(ctx, id, UpdateInput{IsActive: &inactive})
	return err
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, apperr.Validation("dateOfBirth must be YYYY-MM-DD")
	}
	return t, nil
}
