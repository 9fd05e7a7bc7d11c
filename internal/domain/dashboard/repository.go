package dashboard

import (
	"context"
	"time"
)

// Repository son las lecturas que usan los motores del dashboard. Cada método
// aplica su propio filtro de activos; no se asume cascada.
type Repository interface {
	// ListActiveSchedules: schedule, medicación y recipient activos.
	ListActiveSchedules(ctx context.Context) ([]ScheduleView, error)
	// ListTakenDoses: status taken y takenAt en [from, to).
	ListTakenDoses(ctx context.Context, from, to time.Time) ([]TakenDose, error)

	CountActiveRecipients(ctx context.Context) (int, error)
	CountActiveMedications(ctx context.Context) (int, error)
	CountActiveSchedules(ctx context.Context) (int, error)
	// CountDoses filtra por scheduledFor en [From, To) y status.
	CountDoses(ctx context.Context, f CountFilter) (int, error)
}
