package medications

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"medication-management/internal/domain/recipients"
	"medication-management/internal/platform/apperr"
	"medication-management/internal/ports/storage"

	"github.com/google/uuid"
)

var (
	errNotFound          = apperr.NotFound("Medication not found")
	errRecipientNotFound = apperr.NotFound("Care recipient not found")
)

// RecipientLookup lo satisface recipients.Repository.
type RecipientLookup interface {
	GetByID(ctx context.Context, id string) (recipients.CareRecipient, error)
}

// ScheduleWriter lo implementa schedules.Service. Una medicación siempre nace con un schedule,
// así que el alta necesita validar y crear ese primer schedule.
type ScheduleWriter interface {
	Validate(times, daysOfWeek []string) error
	CreateInitial(ctx context.Context, medicationID string, times, daysOfWeek []string) (ScheduleSummary, error)
	SummariesByMedication(ctx context.Context, medicationIDs []string) (map[string][]ScheduleSummary, error)
}

type Service struct {
	repo       Repository
	recipients RecipientLookup
	schedules  ScheduleWriter
	now        func() time.Time
}

func NewService(repo Repository, recipients RecipientLookup, schedules ScheduleWriter) *Service {
	return &Service{
		repo:       repo,
		recipients: recipients,
		schedules:  schedules,
		now:        time.Now,
	}
}

type InitialSchedule struct {
	Times      []string
	DaysOfWeek []string
}

type CreateInput struct {
	CareRecipientID string
	Name            string
	Dosage          string
	Instructions    string
	IsActive        *bool
	Schedule        *InitialSchedule
}

// UpdateInput usa punteros: nil = no tocar.
type UpdateInput struct {
	CareRecipientID *string
	Name            *string
	Dosage          *string
	Instructions    *string
	IsActive        *bool
}

func (s *Service) Create(ctx context.Context, in CreateInput) (View, error) {
	name := strings.TrimSpace(in.Name)
	dosage := strings.TrimSpace(in.Dosage)
	instructions := strings.TrimSpace(in.Instructions)
	recipientID := strings.TrimSpace(in.CareRecipientID)
	if name == "" || dosage == "" || instructions == "" || recipientID == "" {
		return View{}, apperr.Validation("Name, dosage, instructions, and care recipient ID are required")
	}
	if in.Schedule == nil {
		return View{}, apperr.Validation("Schedule with times and daysOfWeek is required")
	}
	if err := s.schedules.Validate(in.Schedule.Times, in.Schedule.DaysOfWeek); err != nil {
		return View{}, err
	}

	rec, err := s.recipient(ctx, recipientID)
	if err != nil {
		return View{}, err
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	now := s.now()
	m := Medication{
		ID:              uuid.NewString(),
		CareRecipientID: rec.ID,
		Name:            name,
		Dosage:          dosage,
		Instructions:    instructions,
		IsActive:        active,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return View{}, err
	}

	sched, err := s.schedules.CreateInitial(ctx, m.ID, in.Schedule.Times, in.Schedule.DaysOfWeek)
	if err != nil {
		return View{}, fmt.Errorf("create initial schedule for medication %s: %w", m.ID, err)
	}

	return View{
		Medication:             m,
		CareRecipientFirstName: rec.FirstName,
		CareRecipientLastName:  rec.LastName,
		Schedules:              []ScheduleSummary{sched},
	}, nil
}

func (s *Service) Get(ctx context.Context, id string) (View, error) {
	m, err := s.getByID(ctx, id)
	if err != nil {
		return View{}, err
	}
	views, err := s.views(ctx, []Medication{m})
	if err != nil {
		return View{}, err
	}
	return views[0], nil
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]View, error) {
	f.CareRecipientID = strings.TrimSpace(f.CareRecipientID)
	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, items)
}

// IDsByRecipient implementa recipients.MedicationLister.
func (s *Service) IDsByRecipient(ctx context.Context, recipientID string) ([]string, error) {
	items, err := s.repo.List(ctx, ListFilter{CareRecipientID: strings.TrimSpace(recipientID)})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(items))
	for _, m := range items {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (View, error) {
	m, err := s.getByID(ctx, id)
	if err != nil {
		return View{}, err
	}

	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		if v == "" {
			return View{}, apperr.Validation("name cannot be empty")
		}
		m.Name = v
	}
	if in.Dosage != nil {
		v := strings.TrimSpace(*in.Dosage)
		if v == "" {
			return View{}, apperr.Validation("dosage cannot be empty")
		}
		m.Dosage = v
	}
	if in.Instructions != nil {
		v := strings.TrimSpace(*in.Instructions)
		if v == "" {
			return View{}, apperr.Validation("instructions cannot be empty")
		}
		m.Instructions = v
	}
	if in.CareRecipientID != nil {
		rec, err := s.recipient(ctx, *in.CareRecipientID)
		if err != nil {
			return View{}, err
		}
		m.CareRecipientID = rec.ID
	}
	if in.IsActive != nil {
		m.IsActive = *in.IsActive
	}

	m.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, m); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return View{}, errNotFound
		}
		return View{}, err
	}

	views, err := s.views(ctx, []Medication{m})
	if err != nil {
		return View{}, err
	}
	return views[0], nil
}

// Delete da de baja la medicación (isActive=false). No se borra físicamente para
// que las dosis registradas sigan resolviendo nombre y dosis.
func (s *Service) Delete(ctx context.Context, id string) error {
	inactive := false
	_, err := s.Update(ctx, id, UpdateInput{IsActive: &inactive})
	return err
}

func (s *Service) getByID(ctx context.Context, id string) (Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Medication{}, errNotFound
	}
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Medication{}, errNotFound
		}
		return Medication{}, err
	}
	return m, nil
}

func (s *Service) recipient(ctx context.Context, id string) (recipients.CareRecipient, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return recipients.CareRecipient{}, errRecipientNotFound
	}
	rec, err := s.recipients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return recipients.CareRecipient{}, errRecipientNotFound
		}
		return recipients.CareRecipient{}, err
	}
	return rec, nil
}

// views arma la respuesta aplanada resolviendo recipients (cacheados por ID) y
// schedules activos en una sola consulta.
func (s *Service) views(ctx context.Context, items []Medication) ([]View, error) {
	out := make([]View, 0, len(items))
	if len(items) == 0 {
		return out, nil
	}

	ids := make([]string, 0, len(items))
	for _, m := range items {
		ids = append(ids, m.ID)
	}
	scheds, err := s.schedules.SummariesByMedication(ctx, ids)
	if err != nil {
		return nil, err
	}

	recs := map[string]recipients.CareRecipient{}
	for _, m := range items {
		rec, ok := recs[m.CareRecipientID]
		if !ok {
			rec, err = s.recipients.GetByID(ctx, m.CareRecipientID)
			if err != nil && !errors.Is(err, storage.ErrNotFound) {
				return nil, err
			}
			recs[m.CareRecipientID] = rec
		}

		list := scheds[m.ID]
		if list == nil {
			list = []ScheduleSummary{}
		}
		out = append(out, View{
			Medication:             m,
			CareRecipientFirstName: rec.FirstName,
			CareRecipientLastName:  rec.LastName,
			Schedules:              list,
		})
	}
	return out, nil
}
