package schedules

import (
	"context"
	"testing"
	"time"

	"medication-management/internal/domain/medications"
	"medication-management/internal/domain/recipients"
	"medication-management/internal/platform/apperr"
	"medication-management/internal/ports/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byID  map[string]Schedule
	order []string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Schedule{}}
}

func (r *testRepo) Create(ctx context.Context, s Schedule) error {
	r.byID[s.ID] = s
	r.order = append(r.order, s.ID)
	return nil
}

func (r *testRepo) Update(ctx context.Context, s Schedule) error {
	if _, ok := r.byID[s.ID]; !ok {
		return storage.ErrNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Schedule, error) {
	s, ok := r.byID[id]
	if !ok {
		return Schedule{}, storage.ErrNotFound
	}
	return s, nil
}

func (r *testRepo) List(ctx context.Context, f ListFilter) ([]Schedule, error) {
	want := map[string]bool{}
	for _, id := range f.MedicationIDs {
		want[id] = true
	}
	out := make([]Schedule, 0)
	for _, id := range r.order {
		s := r.byID[id]
		if f.ActiveOnly && !s.IsActive {
			continue
		}
		if len(want) > 0 && !want[s.MedicationID] {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

type testMeds map[string]medications.Medication

func (m testMeds) GetByID(ctx context.Context, id string) (medications.Medication, error) {
	v, ok := m[id]
	if !ok {
		return medications.Medication{}, storage.ErrNotFound
	}
	return v, nil
}

type testRecs map[string]recipients.CareRecipient

func (r testRecs) GetByID(ctx context.Context, id string) (recipients.CareRecipient, error) {
	v, ok := r[id]
	if !ok {
		return recipients.CareRecipient{}, storage.ErrNotFound
	}
	return v, nil
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	meds := testMeds{"med-1": {ID: "med-1", CareRecipientID: "rec-1", Name: "Enalapril", Dosage: "10mg", IsActive: true}}
	recs := testRecs{"rec-1": {ID: "rec-1", FirstName: "Ana", LastName: "Pérez", IsActive: true}}
	svc := NewService(repo, meds, recs)
	now := time.Date(2025, 12, 24, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, repo
}

func TestService_Create_FlattensMedicationAndRecipient(t *testing.T) {
	svc, repo := newTestService()

	v, err := svc.Create(context.Background(), CreateInput{
		MedicationID: "med-1",
		Times:        []string{"20:00", "08:00"},
		DaysOfWeek:   []string{"Wednesday"},
	})
	require.NoError(t, err)

	assert.True(t, v.IsActive)
	assert.Equal(t, []string{"20:00", "08:00"}, v.Times, "se conserva el orden cargado")
	assert.Equal(t, "Enalapril", v.MedicationName)
	assert.Equal(t, "rec-1", v.CareRecipientID)
	assert.Equal(t, "Pérez", v.CareRecipientLastName)
	assert.Contains(t, repo.byID, v.ID)
}

func TestService_Create_Validation(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	cases := []struct {
		name string
		in   CreateInput
		msg  string
	}{
		{"missing fields", CreateInput{MedicationID: "med-1"}, "Times, days of week, and medication ID are required"},
		{"empty times", CreateInput{MedicationID: "med-1", Times: []string{}, DaysOfWeek: []string{"Monday"}}, "Times must be a non-empty array"},
		{"empty days", CreateInput{MedicationID: "med-1", Times: []string{"08:00"}, DaysOfWeek: []string{}}, "Days of week must be a non-empty array"},
		{"bad time", CreateInput{MedicationID: "med-1", Times: []string{"8:00"}, DaysOfWeek: []string{"Monday"}}, `Invalid time "8:00", expected HH:MM`},
		{"bad day", CreateInput{MedicationID: "med-1", Times: []string{"08:00"}, DaysOfWeek: []string{"monday"}}, `Invalid day of week "monday"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.in)
			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err))
			assert.Equal(t, tc.msg, err.Error())
		})
	}
	assert.Empty(t, repo.byID)
}

func TestService_Create_UnknownMedication(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), CreateInput{
		MedicationID: "nope",
		Times:        []string{"08:00"},
		DaysOfWeek:   []string{"Monday"},
	})
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Medication not found", err.Error())
}

func TestService_ListSkipsInactiveAndDeleteIsLogical(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateInput{MedicationID: "med-1", Times: []string{"08:00"}, DaysOfWeek: []string{"Monday"}})
	require.NoError(t, err)
	b, err := svc.Create(ctx, CreateInput{MedicationID: "med-1", Times: []string{"20:00"}, DaysOfWeek: []string{"Monday"}})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, a.ID))
	assert.False(t, repo.byID[a.ID].IsActive)

	items, err := svc.List(ctx, "med-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, b.ID, items[0].ID)

	sums, err := svc.SummariesByMedication(ctx, []string{"med-1"})
	require.NoError(t, err)
	require.Len(t, sums["med-1"], 1)
	assert.Equal(t, []string{"20:00"}, sums["med-1"][0].Times)
}

func TestService_Update_RejectsEmptyTimes(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	v, err := svc.Create(ctx, CreateInput{MedicationID: "med-1", Times: []string{"08:00"}, DaysOfWeek: []string{"Monday"}})
	require.NoError(t, err)

	_, err = svc.Update(ctx, v.ID, UpdateInput{Times: []string{}})
	assert.True(t, apperr.IsValidation(err))

	updated, err := svc.Update(ctx, v.ID, UpdateInput{DaysOfWeek: []string{"Friday", "Saturday"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00"}, updated.Times)
	assert.Equal(t, []string{"Friday", "Saturday"}, updated.DaysOfWeek)

	_, err = svc.Update(ctx, "missing", UpdateInput{})
	assert.True(t, apperr.IsNotFound(err))
}
