package medications

import "time"

// Medication pertenece a un único care recipient y es dueña de sus schedules y dosis.
type Medication struct {
	ID              string
	CareRecipientID string

	Name         string
	Dosage       string
	Instructions string

	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScheduleSummary es lo mínimo de un schedule que se aplana en la respuesta de medicación.
type ScheduleSummary struct {
	ID         string
	Times      []string
	DaysOfWeek []string
}

// View es la medicación con los datos relacionados ya resueltos (respuesta aplanada).
type View struct {
	Medication

	CareRecipientFirstName string
	CareRecipientLastName  string
	Schedules              []ScheduleSummary
}
