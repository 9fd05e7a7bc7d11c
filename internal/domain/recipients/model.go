package recipients

import (
	"strings"
	"time"
)

// CareRecipient es la persona a la que se le administra la medicación.
// La baja es lógica (IsActive=false) para no perder el historial de dosis.
type CareRecipient struct {
	ID string

	FirstName   string
	LastName    string
	DateOfBirth time.Time // solo fecha (YYYY-MM-DD)

	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c CareRecipient) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
