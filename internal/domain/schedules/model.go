package schedules

import "time"

// Schedule es la plantilla recurrente (horarios x días) de una medicación.
// Times conserva el orden en que se cargó: la proyección del dashboard depende de él.
type Schedule struct {
	ID           string
	MedicationID string

	Times      []string // HH:MM, hora local del servidor
	DaysOfWeek []string // Sunday..Saturday

	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RunsOn indica si el schedule aplica al día de la semana de t.
func (s Schedule) RunsOn(t time.Time) bool {
	today := WeekdayName(t)
	for _, d := range s.DaysOfWeek {
		if d == today {
			return true
		}
	}
	return false
}

// HasTime compara por igualdad exacta de string: "8:00" no es "08:00".
func (s Schedule) HasTime(hhmm string) bool {
	for _, t := range s.Times {
		if t == hhmm {
			return true
		}
	}
	return false
}

// View agrega los datos de medicación y recipient para la respuesta aplanada.
type View struct {
	Schedule

	MedicationName         string
	MedicationDosage       string
	CareRecipientID        string
	CareRecipientFirstName string
	CareRecipientLastName  string
}
