package doses

import (
	"context"
	"time"
)

// ListFilter: los campos en cero no filtran. El orden es scheduledFor ascendente.
type ListFilter struct {
	MedicationIDs []string
	Status        Status
	From          *time.Time // scheduledFor >= From
	To            *time.Time // scheduledFor <= To
	Limit         int        // 0 = sin límite
}

type Repository interface {
	Create(ctx context.Context, d Dose) error
	Update(ctx context.Context, d Dose) error
	GetByID(ctx context.Context, id string) (Dose, error)
	List(ctx context.Context, f ListFilter) ([]Dose, error)
}
