package users

import "time"

// Role del usuario del sistema (no del care recipient).
// @Enum admin, caregiver
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleCaregiver Role = "caregiver"
)

type User struct {
	ID           string
	Email        string // normalizado a minúsculas
	PasswordHash string

	FirstName string
	LastName  string
	Role      Role
	IsActive  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
