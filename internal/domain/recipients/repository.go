package recipients

import "context"

type Repository interface {
	Create(ctx context.Context, c CareRecipient) error
	Update(ctx context.Context, c CareRecipient) error
	GetByID(ctx context.Context, id string) (CareRecipient, error)
	List(ctx context.Context) ([]CareRecipient, error)
}
