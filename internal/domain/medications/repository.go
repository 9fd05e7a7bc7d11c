package medications

import "context"

type ListFilter struct {
	CareRecipientID string // vacío = todos
}

type Repository interface {
	Create(ctx context.Context, m Medication) error
	Update(ctx context.Context, m Medication) error
	GetByID(ctx context.Context, id string) (Medication, error)
	List(ctx context.Context, f ListFilter) ([]Medication, error)
}
