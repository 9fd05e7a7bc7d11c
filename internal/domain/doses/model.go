package doses

import "time"

// Status del ciclo de vida de una dosis.
// @Enum scheduled, taken, missed, skipped
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusTaken     Status = "taken"
	StatusMissed    Status = "missed"
	StatusSkipped   Status = "skipped"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusTaken, StatusMissed, StatusSkipped:
		return true
	default:
		return false
	}
}

// Dose es el registro durable de una toma (real o planificada).
//
// ScheduleID/ScheduledTime son opcionales: las dosis registradas como tomadas
// los llevan siempre, así el dashboard sabe qué horario exacto cubren. Las
// creadas por otros procesos pueden no tenerlos.
type Dose struct {
	ID           string
	MedicationID string

	ScheduledFor time.Time
	Status       Status
	TakenAt      *time.Time // solo cuando Status == taken

	ScheduleID    string
	ScheduledTime string // HH:MM tal cual figura en Schedule.Times

	CreatedAt time.Time
	UpdatedAt time.Time
}

// View es la dosis con medicación y recipient aplanados.
type View struct {
	Dose

	MedicationName         string
	MedicationDosage       string
	MedicationInstructions string
	CareRecipientID        string
	CareRecipientFirstName string
	CareRecipientLastName  string
}
