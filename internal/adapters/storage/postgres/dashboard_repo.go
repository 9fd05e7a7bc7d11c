package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"medication-management/internal/domain/dashboard"
	"medication-management/internal/domain/doses"
)

// DashboardRepo implementa dashboard.Repository con joins explícitos:
// cada consulta aplica su propio filtro de activos.
type DashboardRepo struct {
	db *sql.DB
}

func NewDashboardRepo(db *sql.DB) *DashboardRepo {
	return &DashboardRepo{db: db}
}

func (r *DashboardRepo) ListActiveSchedules(ctx context.Context) ([]dashboard.ScheduleView, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			s.id, m.id, m.name, m.dosage,
			c.id, c.first_name, c.last_name,
			s.times, s.days_of_week
		FROM schedules s
		JOIN medications m ON m.id = s.medication_id
		JOIN care_recipients c ON c.id = m.care_recipient_id
		WHERE s.is_active AND m.is_active AND c.is_active
		ORDER BY s.created_at ASC, s.id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dashboard.ScheduleView, 0)
	for rows.Next() {
		var (
			v           dashboard.ScheduleView
			first, last string
		)
		if err := rows.Scan(
			&v.ScheduleID,
			&v.MedicationID,
			&v.MedicationName,
			&v.Dosage,
			&v.RecipientID,
			&first,
			&last,
			textArray(&v.Times),
			textArray(&v.DaysOfWeek),
		); err != nil {
			return nil, err
		}
		v.RecipientName = strings.TrimSpace(first + " " + last)
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *DashboardRepo) ListTakenDoses(ctx context.Context, from, to time.Time) ([]dashboard.TakenDose, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT medication_id, COALESCE(schedule_id, ''), COALESCE(scheduled_time, '')
		FROM doses
		WHERE status = $1 AND taken_at >= $2 AND taken_at < $3
	`, string(doses.StatusTaken), from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dashboard.TakenDose, 0)
	for rows.Next() {
		var d dashboard.TakenDose
		if err := rows.Scan(&d.MedicationID, &d.ScheduleID, &d.ScheduledTime); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DashboardRepo) CountActiveRecipients(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM care_recipients WHERE is_active`)
}

func (r *DashboardRepo) CountActiveMedications(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM medications WHERE is_active`)
}

func (r *DashboardRepo) CountActiveSchedules(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM schedules WHERE is_active`)
}

func (r *DashboardRepo) CountDoses(ctx context.Context, f dashboard.CountFilter) (int, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Status != "" {
		where = append(where, "status = "+arg(string(f.Status)))
	}
	if f.From != nil {
		where = append(where, "scheduled_for >= "+arg(*f.From))
	}
	if f.To != nil {
		where = append(where, "scheduled_for < "+arg(*f.To))
	}

	q := `SELECT COUNT(*) FROM doses`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	return r.count(ctx, q, args...)
}

func (r *DashboardRepo) count(ctx context.Context, q string, args ...any) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
