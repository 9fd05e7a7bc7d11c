package schedules

import "context"

type ListFilter struct {
	MedicationIDs []string // vacío = todas
	ActiveOnly    bool
}

type Repository interface {
	Create(ctx context.Context, s Schedule) error
	Update(ctx context.Context, s Schedule) error
	GetByID(ctx context.Context, id string) (Schedule, error)
	List(ctx context.Context, f ListFilter) ([]Schedule, error)
}
