package doses

import (
	"context"
	"errors"
	"strings"
	"time"

	"medication-management/internal/domain/medications"
	"medication-management/internal/domain/recipients"
	"medication-management/internal/domain/schedules"
	"medication-management/internal/platform/apperr"
	"medication-management/internal/ports/storage"

	"github.com/google/uuid"
)

const DefaultUpcomingLimit = 5

var (
	errNotFound           = apperr.NotFound("Dose not found")
	errMedicationNotFound = apperr.NotFound("Medication not found")
	errScheduleNotFound   = apperr.NotFound("Schedule not found")
)

// MedicationLookup lo satisface medications.Repository.
type MedicationLookup interface {
	GetByID(ctx context.Context, id string) (medications.Medication, error)
	List(ctx context.Context, f medications.ListFilter) ([]medications.Medication, error)
}

// ScheduleLookup lo satisface schedules.Repository.
type ScheduleLookup interface {
	GetByID(ctx context.Context, id string) (schedules.Schedule, error)
}

// Observer recibe cada dosis escrita (hoy: métricas).
type Observer interface {
	DoseWritten(status string)
}

type Service struct {
	repo       Repository
	meds       MedicationLookup
	schedules  ScheduleLookup
	recipients medications.RecipientLookup
	obs        Observer
	now        func() time.Time
}

func NewService(repo Repository, meds MedicationLookup, scheds ScheduleLookup, recs medications.RecipientLookup) *Service {
	return &Service{
		repo:       repo,
		meds:       meds,
		schedules:  scheds,
		recipients: recs,
		now:        time.Now,
	}
}

func (s *Service) SetObserver(o Observer) { s.obs = o }

// SetClock fija el reloj; "hoy" se calcula en la zona del time.Time que devuelve.
func (s *Service) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

type RecordInput struct {
	MedicationID  string
	ScheduleID    string
	ScheduledTime string
	Status        string // opcional; solo se acepta "taken"
}

// Record registra que se administró una dosis de un horario concreto de hoy.
// Las validaciones cortan en el primer error y siempre antes de escribir.
// No es idempotente: dos llamadas iguales crean dos dosis.
func (s *Service) Record(ctx context.Context, in RecordInput) (View, error) {
	if st := strings.TrimSpace(in.Status); st != "" && Status(st) != StatusTaken {
		return View{}, apperr.Validation("Only taken status is allowed for new doses")
	}

	medID := strings.TrimSpace(in.MedicationID)
	schedID := strings.TrimSpace(in.ScheduleID)
	if medID == "" || schedID == "" || in.ScheduledTime == "" {
		return View{}, apperr.Validation("medicationId, scheduleId and scheduledTime are required")
	}

	med, err := s.meds.GetByID(ctx, medID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return View{}, errMedicationNotFound
		}
		return View{}, err
	}

	sch, err := s.schedules.GetByID(ctx, schedID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return View{}, errScheduleNotFound
		}
		return View{}, err
	}
	if sch.MedicationID != med.ID {
		return View{}, apperr.Validation("Schedule does not belong to the medication")
	}
	if !sch.HasTime(in.ScheduledTime) {
		return View{}, apperr.Validation("Scheduled time not found in the schedule")
	}

	now := s.now()
	scheduledFor, err := schedules.At(now, in.ScheduledTime)
	if err != nil {
		// El schedule guardó un horario que no es HH:MM; no es culpa del caller.
		return View{}, err
	}

	takenAt := now
	d := Dose{
		ID:            uuid.NewString(),
		MedicationID:  med.ID,
		ScheduledFor:  scheduledFor,
		Status:        StatusTaken,
		TakenAt:       &takenAt,
		ScheduleID:    sch.ID,
		ScheduledTime: in.ScheduledTime,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return View{}, err
	}
	s.written(d.Status)

	rec, err := s.recipient(ctx, med.CareRecipientID)
	if err != nil {
		return View{}, err
	}
	return flatten(d, med, rec), nil
}

type ListInput struct {
	RecipientID string
	Status      string
	StartDate   *time.Time
	EndDate     *time.Time
}

func (s *Service) List(ctx context.Context, in ListInput) ([]View, error) {
	f := ListFilter{From: in.StartDate, To: in.EndDate}

	if st := strings.TrimSpace(in.Status); st != "" {
		if !Status(st).Valid() {
			return nil, apperr.Validation("status must be one of: scheduled, taken, missed, skipped")
		}
		f.Status = Status(st)
	}

	if rid := strings.TrimSpace(in.RecipientID); rid != "" {
		meds, err := s.meds.List(ctx, medications.ListFilter{CareRecipientID: rid})
		if err != nil {
			return nil, err
		}
		if len(meds) == 0 {
			return []View{}, nil
		}
		for _, m := range meds {
			f.MedicationIDs = append(f.MedicationIDs, m.ID)
		}
	}

	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, items)
}

// Upcoming devuelve dosis en estado scheduled con scheduledFor >= ahora.
func (s *Service) Upcoming(ctx context.Context, limit int) ([]View, error) {
	if limit < 0 {
		return nil, apperr.Validation("limit must be >= 0")
	}
	if limit == 0 {
		return []View{}, nil
	}
	now := s.now()
	items, err := s.repo.List(ctx, ListFilter{
		Status: StatusScheduled,
		From:   &now,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}
	return s.views(ctx, items)
}

func (s *Service) Get(ctx context.Context, id string) (View, error) {
	d, err := s.getByID(ctx, id)
	if err != nil {
		return View{}, err
	}
	views, err := s.views(ctx, []Dose{d})
	if err != nil {
		return View{}, err
	}
	return views[0], nil
}

// UpdateStatus cambia el estado de una dosis existente. TakenAt se fija al pasar a
// taken y no se recalcula si ya estaba tomada.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (View, error) {
	st := Status(strings.TrimSpace(status))
	if !st.Valid() {
		return View{}, apperr.Validation("Valid status is required (scheduled, taken, missed, skipped)")
	}

	d, err := s.getByID(ctx, id)
	if err != nil {
		return View{}, err
	}

	now := s.now()
	if st == StatusTaken && d.TakenAt == nil {
		takenAt := now
		d.TakenAt = &takenAt
	}
	d.Status = st
	d.UpdatedAt = now

	if err := s.repo.Update(ctx, d); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return View{}, errNotFound
		}
		return View{}, err
	}
	s.written(d.Status)

	views, err := s.views(ctx, []Dose{d})
	if err != nil {
		return View{}, err
	}
	return views[0], nil
}

func (s *Service) getByID(ctx context.Context, id string) (Dose, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Dose{}, errNotFound
	}
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Dose{}, errNotFound
		}
		return Dose{}, err
	}
	return d, nil
}

func (s *Service) recipient(ctx context.Context, id string) (recipients.CareRecipient, error) {
	if id == "" {
		return recipients.CareRecipient{}, nil
	}
	rec, err := s.recipients.GetByID(ctx, id)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return recipients.CareRecipient{}, err
	}
	return rec, nil
}

// views aplana una lista de dosis cacheando medicaciones y recipients por ID.
func (s *Service) views(ctx context.Context, items []Dose) ([]View, error) {
	out := make([]View, 0, len(items))
	meds := map[string]medications.Medication{}
	recs := map[string]recipients.CareRecipient{}

	for _, d := range items {
		med, ok := meds[d.MedicationID]
		if !ok {
			m, err := s.meds.GetByID(ctx, d.MedicationID)
			if err != nil && !errors.Is(err, storage.ErrNotFound) {
				return nil, err
			}
			med = m
			meds[d.MedicationID] = med
		}

		rec, ok := recs[med.CareRecipientID]
		if !ok {
			r, err := s.recipient(ctx, med.CareRecipientID)
			if err != nil {
				return nil, err
			}
			rec = r
			recs[med.CareRecipientID] = rec
		}

		out = append(out, flatten(d, med, rec))
	}
	return out, nil
}

func (s *Service) written(st Status) {
	if s.obs != nil {
		s.obs.DoseWritten(string(st))
	}
}

func flatten(d Dose, med medications.Medication, rec recipients.CareRecipient) View {
	return View{
		Dose:                   d,
		MedicationName:         med.Name,
		MedicationDosage:       med.Dosage,
		MedicationInstructions: med.Instructions,
		CareRecipientID:        med.CareRecipientID,
		CareRecipientFirstName: rec.FirstName,
		CareRecipientLastName:  rec.LastName,
	}
}
