package users

import "context"

type Repository interface {
	// Create devuelve storage.ErrConflict si el email ya existe.
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}
