package memory

import (
	"context"
	"testing"
	"time"

	"medication-management/internal/domain/dashboard"
	"medication-management/internal/domain/doses"
	"medication-management/internal/domain/medications"
	"medication-management/internal/domain/recipients"
	"medication-management/internal/domain/schedules"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)

func seed(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, s.Recipients.Create(ctx, recipients.CareRecipient{ID: "rec-1", FirstName: "Ana", LastName: "Pérez", IsActive: true, CreatedAt: t0}))
	require.NoError(t, s.Medications.Create(ctx, medications.Medication{ID: "med-1", CareRecipientID: "rec-1", Name: "Enalapril", Dosage: "10mg", IsActive: true, CreatedAt: t0}))
	require.NoError(t, s.Schedules.Create(ctx, schedules.Schedule{
		ID: "sch-1", MedicationID: "med-1",
		Times: []string{"08:00", "20:00"}, DaysOfWeek: []string{"Wednesday"},
		IsActive: true, CreatedAt: t0,
	}))
}

func TestDashboardRepo_ActiveChain(t *testing.T) {
	ctx := context.Background()

	toggles := map[string]func(s *Store){
		"schedule": func(s *Store) {
			v, _ := s.Schedules.GetByID(ctx, "sch-1")
			v.IsActive = false
			_ = s.Schedules.Update(ctx, v)
		},
		"medication": func(s *Store) {
			v, _ := s.Medications.GetByID(ctx, "med-1")
			v.IsActive = false
			_ = s.Medications.Update(ctx, v)
		},
		"recipient": func(s *Store) {
			v, _ := s.Recipients.GetByID(ctx, "rec-1")
			v.IsActive = false
			_ = s.Recipients.Update(ctx, v)
		},
	}

	for name, deactivate := range toggles {
		t.Run(name, func(t *testing.T) {
			s := NewStore()
			seed(t, s)

			views, err := s.Dashboard.ListActiveSchedules(ctx)
			require.NoError(t, err)
			require.Len(t, views, 1)
			assert.Equal(t, "Ana Pérez", views[0].RecipientName)
			assert.Equal(t, "Enalapril", views[0].MedicationName)

			deactivate(s)

			views, err = s.Dashboard.ListActiveSchedules(ctx)
			require.NoError(t, err)
			assert.Empty(t, views)
		})
	}
}

func TestDashboardRepo_TakenDosesWindow(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seed(t, s)

	at := func(h int) *time.Time {
		v := t0.Add(time.Duration(h) * time.Hour)
		return &v
	}
	require.NoError(t, s.Doses.Create(ctx, doses.Dose{ID: "today", MedicationID: "med-1", Status: doses.StatusTaken, TakenAt: at(8), ScheduledFor: *at(8), ScheduleID: "sch-1", ScheduledTime: "08:00"}))
	require.NoError(t, s.Doses.Create(ctx, doses.Dose{ID: "yesterday", MedicationID: "med-1", Status: doses.StatusTaken, TakenAt: at(-2), ScheduledFor: *at(-2)}))
	require.NoError(t, s.Doses.Create(ctx, doses.Dose{ID: "midnight", MedicationID: "med-1", Status: doses.StatusTaken, TakenAt: at(24), ScheduledFor: *at(24)}))
	require.NoError(t, s.Doses.Create(ctx, doses.Dose{ID: "missed", MedicationID: "med-1", Status: doses.StatusMissed, ScheduledFor: *at(-30)}))
	require.NoError(t, s.Doses.Create(ctx, doses.Dose{ID: "scheduled", MedicationID: "med-1", Status: doses.StatusScheduled, ScheduledFor: *at(20)}))

	taken, err := s.Dashboard.ListTakenDoses(ctx, t0, t0.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, taken, 1)
	assert.Equal(t, dashboard.TakenDose{MedicationID: "med-1", ScheduleID: "sch-1", ScheduledTime: "08:00"}, taken[0])

	from, to := t0, t0.AddDate(0, 0, 1)
	today, err := s.Dashboard.CountDoses(ctx, dashboard.CountFilter{From: &from, To: &to})
	require.NoError(t, err)
	assert.Equal(t, 2, today)

	missed, err := s.Dashboard.CountDoses(ctx, dashboard.CountFilter{Status: doses.StatusMissed})
	require.NoError(t, err)
	assert.Equal(t, 1, missed)
}

func TestScheduleRepo_DoesNotShareSlices(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seed(t, s)

	got, err := s.Schedules.GetByID(ctx, "sch-1")
	require.NoError(t, err)
	got.Times[0] = "99:99"

	again, err := s.Schedules.GetByID(ctx, "sch-1")
	require.NoError(t, err)
	assert.Equal(t, "08:00", again.Times[0])
}

func TestDashboardRepo_SameCreatedAtOrdersByID(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seed(t, s)

	for _, id := range []string{"sch-4", "sch-2", "sch-3"} {
		require.NoError(t, s.Schedules.Create(ctx, schedules.Schedule{
			ID: id, MedicationID: "med-1",
			Times: []string{"08:00"}, DaysOfWeek: []string{"Wednesday"},
			IsActive: true, CreatedAt: t0,
		}))
	}
	require.NoError(t, s.Schedules.Create(ctx, schedules.Schedule{
		ID: "sch-0", MedicationID: "med-1",
		Times: []string{"08:00"}, DaysOfWeek: []string{"Wednesday"},
		IsActive: true, CreatedAt: t0.Add(time.Minute),
	}))

	// varias pasadas: el orden del map cambia entre iteraciones
	for i := 0; i < 20; i++ {
		views, err := s.Dashboard.ListActiveSchedules(ctx)
		require.NoError(t, err)

		ids := make([]string, 0, len(views))
		for _, v := range views {
			ids = append(ids, v.ScheduleID)
		}
		assert.Equal(t, []string{"sch-1", "sch-2", "sch-3", "sch-4", "sch-0"}, ids)
	}
}
