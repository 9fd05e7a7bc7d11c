package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"medication-management/internal/domain/doses"
	"medication-management/internal/ports/storage"
)

type DoseRepo struct {
	mu   sync.RWMutex
	byID map[string]doses.Dose
}

func NewDoseRepo() *DoseRepo {
	return &DoseRepo{byID: make(map[string]doses.Dose)}
}

func (r *DoseRepo) Create(ctx context.Context, d doses.Dose) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(d.ID) == "" {
		return errors.New("dose id required")
	}
	if _, exists := r.byID[d.ID]; exists {
		return storage.ErrConflict
	}
	r.byID[d.ID] = d
	return nil
}

func (r *DoseRepo) Update(ctx context.Context, d doses.Dose) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[d.ID]; !exists {
		return storage.ErrNotFound
	}
	r.byID[d.ID] = d
	return nil
}

func (r *DoseRepo) GetByID(ctx context.Context, id string) (doses.Dose, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return doses.Dose{}, storage.ErrNotFound
	}
	return d, nil
}

func (r *DoseRepo) List(ctx context.Context, f doses.ListFilter) ([]doses.Dose, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meds := make(map[string]struct{}, len(f.MedicationIDs))
	for _, id := range f.MedicationIDs {
		meds[id] = struct{}{}
	}

	out := make([]doses.Dose, 0)
	for _, d := range r.byID {
		if len(meds) > 0 {
			if _, ok := meds[d.MedicationID]; !ok {
				continue
			}
		}
		if f.Status != "" && d.Status != f.Status {
			continue
		}
		if f.From != nil && d.ScheduledFor.Before(*f.From) {
			continue
		}
		if f.To != nil && d.ScheduledFor.After(*f.To) {
			continue
		}
		out = append(out, d)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].ScheduledFor.Equal(out[j].ScheduledFor) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ScheduledFor.Before(out[j].ScheduledFor)
	})

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}
