package postgres

import (
	"context"
	"database/sql"

	"medication-management/internal/domain/schedules"
)

type SchedulesRepo struct {
	db *sql.DB
}

func NewSchedulesRepo(db *sql.DB) *SchedulesRepo {
	return &SchedulesRepo{db: db}
}

const scheduleColumns = `id, medication_id, times, days_of_week, is_active, created_at, updated_at`

func (r *SchedulesRepo) Create(ctx context.Context, s schedules.Schedule) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO schedules (`+scheduleColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		s.ID,
		s.MedicationID,
		s.Times,
		s.DaysOfWeek,
		s.IsActive,
		s.CreatedAt,
		s.UpdatedAt,
	)
	return err
}

func (r *SchedulesRepo) Update(ctx context.Context, s schedules.Schedule) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE schedules
		SET
			medication_id = $2,
			times = $3,
			days_of_week = $4,
			is_active = $5,
			updated_at = $6
		WHERE id = $1
	`,
		s.ID,
		s.MedicationID,
		s.Times,
		s.DaysOfWeek,
		s.IsActive,
		s.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return rowsAffected(res)
}

func (r *SchedulesRepo) GetByID(ctx context.Context, id string) (schedules.Schedule, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+scheduleColumns+`
		FROM schedules
		WHERE id = $1
	`, id)

	s, err := scanSchedule(row)
	if err != nil {
		return schedules.Schedule{}, mapNoRows(err)
	}
	return s, nil
}

func (r *SchedulesRepo) List(ctx context.Context, f schedules.ListFilter) ([]schedules.Schedule, error) {
	ids := f.MedicationIDs
	if ids == nil {
		ids = []string{}
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+scheduleColumns+`
		FROM schedules
		WHERE (cardinality($1::text[]) = 0 OR medication_id = ANY($1::text[]))
		  AND (NOT $2 OR is_active)
		ORDER BY created_at ASC
	`, ids, f.ActiveOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]schedules.Schedule, 0)
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanSchedule(sc scanner) (schedules.Schedule, error) {
	var s schedules.Schedule
	err := sc.Scan(
		&s.ID,
		&s.MedicationID,
		textArray(&s.Times),
		textArray(&s.DaysOfWeek),
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}
