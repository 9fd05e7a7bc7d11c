package memory

import (
	"context"
	"sort"
	"time"

	"medication-management/internal/domain/dashboard"
	"medication-management/internal/domain/doses"
)

// DashboardRepo implementa dashboard.Repository sobre los mapas del Store.
// Los locks se toman siempre en el mismo orden: recipients, medications, schedules.
type DashboardRepo struct {
	store *Store
}

func (r *DashboardRepo) ListActiveSchedules(ctx context.Context) ([]dashboard.ScheduleView, error) {
	recs, meds, scheds := r.store.Recipients, r.store.Medications, r.store.Schedules
	recs.mu.RLock()
	defer recs.mu.RUnlock()
	meds.mu.RLock()
	defer meds.mu.RUnlock()
	scheds.mu.RLock()
	defer scheds.mu.RUnlock()

	type row struct {
		view      dashboard.ScheduleView
		createdAt time.Time
	}
	rows := make([]row, 0)

	for _, s := range scheds.byID {
		if !s.IsActive {
			continue
		}
		m, ok := meds.byID[s.MedicationID]
		if !ok || !m.IsActive {
			continue
		}
		c, ok := recs.byID[m.CareRecipientID]
		if !ok || !c.IsActive {
			continue
		}

		s = cloneSchedule(s)
		rows = append(rows, row{
			view: dashboard.ScheduleView{
				ScheduleID:     s.ID,
				MedicationID:   m.ID,
				MedicationName: m.Name,
				Dosage:         m.Dosage,
				RecipientID:    c.ID,
				RecipientName:  c.FullName(),
				Times:          s.Times,
				DaysOfWeek:     s.DaysOfWeek,
			},
			createdAt: s.CreatedAt,
		})
	}

	// createdAt empata seguido (mismo reloj); el ID desempata para no depender del orden del map.
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].createdAt.Equal(rows[j].createdAt) {
			return rows[i].createdAt.Before(rows[j].createdAt)
		}
		return rows[i].view.ScheduleID < rows[j].view.ScheduleID
	})

	out := make([]dashboard.ScheduleView, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.view)
	}
	return out, nil
}

func (r *DashboardRepo) ListTakenDoses(ctx context.Context, from, to time.Time) ([]dashboard.TakenDose, error) {
	ds := r.store.Doses
	ds.mu.RLock()
	defer ds.mu.RUnlock()

	out := make([]dashboard.TakenDose, 0)
	for _, d := range ds.byID {
		if d.Status != doses.StatusTaken || d.TakenAt == nil {
			continue
		}
		if d.TakenAt.Before(from) || !d.TakenAt.Before(to) {
			continue
		}
		out = append(out, dashboard.TakenDose{
			MedicationID:  d.MedicationID,
			ScheduleID:    d.ScheduleID,
			ScheduledTime: d.ScheduledTime,
		})
	}
	return out, nil
}

func (r *DashboardRepo) CountActiveRecipients(ctx context.Context) (int, error) {
	recs := r.store.Recipients
	recs.mu.RLock()
	defer recs.mu.RUnlock()

	n := 0
	for _, c := range recs.byID {
		if c.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *DashboardRepo) CountActiveMedications(ctx context.Context) (int, error) {
	meds := r.store.Medications
	meds.mu.RLock()
	defer meds.mu.RUnlock()

	n := 0
	for _, m := range meds.byID {
		if m.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *DashboardRepo) CountActiveSchedules(ctx context.Context) (int, error) {
	scheds := r.store.Schedules
	scheds.mu.RLock()
	defer scheds.mu.RUnlock()

	n := 0
	for _, s := range scheds.byID {
		if s.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *DashboardRepo) CountDoses(ctx context.Context, f dashboard.CountFilter) (int, error) {
	ds := r.store.Doses
	ds.mu.RLock()
	defer ds.mu.RUnlock()

	n := 0
	for _, d := range ds.byID {
		if f.Status != "" && d.Status != f.Status {
			continue
		}
		if f.From != nil && d.ScheduledFor.Before(*f.From) {
			continue
		}
		if f.To != nil && !d.ScheduledFor.Before(*f.To) {
			continue
		}
		n++
	}
	return n, nil
}
