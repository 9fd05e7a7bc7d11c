package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"medication-management/internal/domain/medications"
	"medication-management/internal/ports/storage"
)

type MedicationRepo struct {
	mu   sync.RWMutex
	byID map[string]medications.Medication
}

func NewMedicationRepo() *MedicationRepo {
	return &MedicationRepo{byID: make(map[string]medications.Medication)}
}

func (r *MedicationRepo) Create(ctx context.Context, m medications.Medication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(m.ID) == "" {
		return errors.New("medication id required")
	}
	if _, exists := r.byID[m.ID]; exists {
		return storage.ErrConflict
	}
	r.byID[m.ID] = m
	return nil
}

func (r *MedicationRepo) Update(ctx context.Context, m medications.Medication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[m.ID]; !exists {
		return storage.ErrNotFound
	}
	r.byID[m.ID] = m
	return nil
}

func (r *MedicationRepo) GetByID(ctx context.Context, id string) (medications.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return medications.Medication{}, storage.ErrNotFound
	}
	return m, nil
}

func (r *MedicationRepo) List(ctx context.Context, f medications.ListFilter) ([]medications.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]medications.Medication, 0)
	for _, m := range r.byID {
		if f.CareRecipientID != "" && m.CareRecipientID != f.CareRecipientID {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
