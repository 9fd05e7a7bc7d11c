package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"medication-management/internal/domain/recipients"
	"medication-management/internal/ports/storage"
)

type RecipientRepo struct {
	mu   sync.RWMutex
	byID map[string]recipients.CareRecipient
}

func NewRecipientRepo() *RecipientRepo {
	return &RecipientRepo{byID: make(map[string]recipients.CareRecipient)}
}

func (r *RecipientRepo) Create(ctx context.Context, c recipients.CareRecipient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("care recipient id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return storage.ErrConflict
	}
	r.byID[c.ID] = c
	return nil
}

func (r *RecipientRepo) Update(ctx context.Context, c recipients.CareRecipient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[c.ID]; !exists {
		return storage.ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *RecipientRepo) GetByID(ctx context.Context, id string) (recipients.CareRecipient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return recipients.CareRecipient{}, storage.ErrNotFound
	}
	return c, nil
}

func (r *RecipientRepo) List(ctx context.Context) ([]recipients.CareRecipient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]recipients.CareRecipient, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
