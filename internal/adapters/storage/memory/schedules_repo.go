package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"medication-management/internal/domain/schedules"
	"medication-management/internal/ports/storage"
)

type ScheduleRepo struct {
	mu   sync.RWMutex
	byID map[string]schedules.Schedule
}

func NewScheduleRepo() *ScheduleRepo {
	return &ScheduleRepo{byID: make(map[string]schedules.Schedule)}
}

func (r *ScheduleRepo) Create(ctx context.Context, s schedules.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("schedule id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return storage.ErrConflict
	}
	r.byID[s.ID] = cloneSchedule(s)
	return nil
}

func (r *ScheduleRepo) Update(ctx context.Context, s schedules.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; !exists {
		return storage.ErrNotFound
	}
	r.byID[s.ID] = cloneSchedule(s)
	return nil
}

func (r *ScheduleRepo) GetByID(ctx context.Context, id string) (schedules.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return schedules.Schedule{}, storage.ErrNotFound
	}
	return cloneSchedule(s), nil
}

func (r *ScheduleRepo) List(ctx context.Context, f schedules.ListFilter) ([]schedules.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	want := make(map[string]struct{}, len(f.MedicationIDs))
	for _, id := range f.MedicationIDs {
		want[id] = struct{}{}
	}

	out := make([]schedules.Schedule, 0)
	for _, s := range r.byID {
		if f.ActiveOnly && !s.IsActive {
			continue
		}
		if len(want) > 0 {
			if _, ok := want[s.MedicationID]; !ok {
				continue
			}
		}
		out = append(out, cloneSchedule(s))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// los slices no se comparten con el caller
func cloneSchedule(s schedules.Schedule) schedules.Schedule {
	s.Times = append([]string(nil), s.Times...)
	s.DaysOfWeek = append([]string(nil), s.DaysOfWeek...)
	return s
}
