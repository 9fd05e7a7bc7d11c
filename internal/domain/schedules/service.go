package schedules

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"medication-management/internal/domain/medications"
	"medication-management/internal/platform/apperr"
	"medication-management/internal/ports/storage"

	"github.com/google/uuid"
)

var (
	errNotFound           = apperr.NotFound("Schedule not found")
	errMedicationNotFound = apperr.NotFound("Medication not found")
)

// MedicationLookup lo satisface medications.Repository.
type MedicationLookup interface {
	GetByID(ctx context.Context, id string) (medications.Medication, error)
}

type Service struct {
	repo        Repository
	medications MedicationLookup
	recipients  medications.RecipientLookup
	now         func() time.Time
}

func NewService(repo Repository, meds MedicationLookup, recs medications.RecipientLookup) *Service {
	return &Service{
		repo:        repo,
		medications: meds,
		recipients:  recs,
		now:         time.Now,
	}
}

type CreateInput struct {
	MedicationID string
	Times        []string
	DaysOfWeek   []string
}

// UpdateInput usa punteros/nil: nil = no tocar.
type UpdateInput struct {
	MedicationID *string
	Times        []string
	DaysOfWeek   []string
	IsActive     *bool
}

// Validate aplica las reglas de times/daysOfWeek. También la usa medications
// antes de crear la medicación, para no dejar una medicación sin schedule.
func (s *Service) Validate(times, daysOfWeek []string) error {
	if len(times) == 0 {
		return apperr.Validation("Times must be a non-empty array")
	}
	if len(daysOfWeek) == 0 {
		return apperr.Validation("Days of week must be a non-empty array")
	}
	for _, t := range times {
		if !ValidTimeOfDay(t) {
			return apperr.Validation(fmt.Sprintf("Invalid time %q, expected HH:MM", t))
		}
	}
	for _, d := range daysOfWeek {
		if !IsWeekday(d) {
			return apperr.Validation(fmt.Sprintf("Invalid day of week %q", d))
		}
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (View, error) {
	medID := strings.TrimSpace(in.MedicationID)
	if in.Times == nil || in.DaysOfWeek == nil || medID == "" {
		return View{}, apperr.Validation("Times, days of week, and medication ID are required")
	}
	if err := s.Validate(in.Times, in.DaysOfWeek); err != nil {
		return View{}, err
	}
	med, err := s.medication(ctx, medID)
	if err != nil {
		return View{}, err
	}

	sch, err := s.insert(ctx, med.ID, in.Times, in.DaysOfWeek)
	if err != nil {
		return View{}, err
	}
	return s.view(ctx, sch, &med)
}

// CreateInitial implementa medications.ScheduleWriter. La medicación la acaba de crear
// el caller, por eso no se vuelve a buscar.
func (s *Service) CreateInitial(ctx context.Context, medicationID string, times, daysOfWeek []string) (medications.ScheduleSummary, error) {
	if err := s.Validate(times, daysOfWeek); err != nil {
		return medications.ScheduleSummary{}, err
	}
	sch, err := s.insert(ctx, medicationID, times, daysOfWeek)
	if err != nil {
		return medications.ScheduleSummary{}, err
	}
	return summary(sch), nil
}

// SummariesByMedication implementa medications.ScheduleWriter (solo schedules activos).
func (s *Service) SummariesByMedication(ctx context.Context, medicationIDs []string) (map[string][]medications.ScheduleSummary, error) {
	out := map[string][]medications.ScheduleSummary{}
	if len(medicationIDs) == 0 {
		return out, nil
	}
	items, err := s.repo.List(ctx, ListFilter{MedicationIDs: medicationIDs, ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	for _, sch := range items {
		out[sch.MedicationID] = append(out[sch.MedicationID], summary(sch))
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (View, error) {
	sch, err := s.getByID(ctx, id)
	if err != nil {
		return View{}, err
	}
	return s.view(ctx, sch, nil)
}

// List devuelve solo schedules activos; medicationID vacío = todas las medicaciones.
func (s *Service) List(ctx context.Context, medicationID string) ([]View, error) {
	f := ListFilter{ActiveOnly: true}
	if id := strings.TrimSpace(medicationID); id != "" {
		f.MedicationIDs = []string{id}
	}
	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]View, 0, len(items))
	meds := map[string]*medications.Medication{}
	for _, sch := range items {
		med, ok := meds[sch.MedicationID]
		if !ok {
			m, err := s.medications.GetByID(ctx, sch.MedicationID)
			switch {
			case err == nil:
				med = &m
			case errors.Is(err, storage.ErrNotFound):
				med = &medications.Medication{ID: sch.MedicationID}
			default:
				return nil, err
			}
			meds[sch.MedicationID] = med
		}
		v, err := s.view(ctx, sch, med)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (View, error) {
	sch, err := s.getByID(ctx, id)
	if err != nil {
		return View{}, err
	}

	if in.Times != nil {
		if err := s.Validate(in.Times, sch.DaysOfWeek); err != nil {
			return View{}, err
		}
		sch.Times = in.Times
	}
	if in.DaysOfWeek != nil {
		if err := s.Validate(sch.Times, in.DaysOfWeek); err != nil {
			return View{}, err
		}
		sch.DaysOfWeek = in.DaysOfWeek
	}
	var med *medications.Medication
	if in.MedicationID != nil {
		m, err := s.medication(ctx, *in.MedicationID)
		if err != nil {
			return View{}, err
		}
		sch.MedicationID = m.ID
		med = &m
	}
	if in.IsActive != nil {
		sch.IsActive = *in.IsActive
	}

	sch.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, sch); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return View{}, errNotFound
		}
		return View{}, err
	}
	return s.view(ctx, sch, med)
}

// Delete es una baja lógica.
func (s *Service) Delete(ctx context.Context, id string) error {
	inactive := false
	_, err := s.Update(ctx, id, UpdateInput{IsActive: &inactive})
	return err
}

func (s *Service) insert(ctx context.Context, medicationID string, times, days []string) (Schedule, error) {
	now := s.now()
	sch := Schedule{
		ID:           uuid.NewString(),
		MedicationID: medicationID,
		Times:        append([]string(nil), times...),
		DaysOfWeek:   append([]string(nil), days...),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, sch); err != nil {
		return Schedule{}, err
	}
	return sch, nil
}

func (s *Service) getByID(ctx context.Context, id string) (Schedule, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Schedule{}, errNotFound
	}
	sch, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Schedule{}, errNotFound
		}
		return Schedule{}, err
	}
	return sch, nil
}

func (s *Service) medication(ctx context.Context, id string) (medications.Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return medications.Medication{}, errMedicationNotFound
	}
	m, err := s.medications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return medications.Medication{}, errMedicationNotFound
		}
		return medications.Medication{}, err
	}
	return m, nil
}

// view resuelve medicación y recipient. med puede venir ya cargada.
func (s *Service) view(ctx context.Context, sch Schedule, med *medications.Medication) (View, error) {
	v := View{Schedule: sch}

	if med == nil {
		m, err := s.medications.GetByID(ctx, sch.MedicationID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return v, nil
			}
			return View{}, err
		}
		med = &m
	}
	v.MedicationName = med.Name
	v.MedicationDosage = med.Dosage
	v.CareRecipientID = med.CareRecipientID

	if med.CareRecipientID == "" {
		return v, nil
	}
	rec, err := s.recipients.GetByID(ctx, med.CareRecipientID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return v, nil
		}
		return View{}, err
	}
	v.CareRecipientFirstName = rec.FirstName
	v.CareRecipientLastName = rec.LastName
	return v, nil
}

func summary(s Schedule) medications.ScheduleSummary {
	return medications.ScheduleSummary{
		ID:         s.ID,
		Times:      s.Times,
		DaysOfWeek: s.DaysOfWeek,
	}
}

var _ medications.ScheduleWriter = (*Service)(nil)
