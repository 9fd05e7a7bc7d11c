package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"medication-management/internal/domain/doses"
)

type DosesRepo struct {
	db *sql.DB
}

func NewDosesRepo(db *sql.DB) *DosesRepo {
	return &DosesRepo{db: db}
}

const doseColumns = `id, medication_id, scheduled_for, status, taken_at, schedule_id, scheduled_time, created_at, updated_at`

func (r *DosesRepo) Create(ctx context.Context, d doses.Dose) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO doses (`+doseColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		d.ID,
		d.MedicationID,
		d.ScheduledFor,
		string(d.Status),
		nullTime(d.TakenAt),
		nullString(d.ScheduleID),
		nullString(d.ScheduledTime),
		d.CreatedAt,
		d.UpdatedAt,
	)
	return err
}

func (r *DosesRepo) Update(ctx context.Context, d doses.Dose) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE doses
		SET
			status = $2,
			taken_at = $3,
			updated_at = $4
		WHERE id = $1
	`,
		d.ID,
		string(d.Status),
		nullTime(d.TakenAt),
		d.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return rowsAffected(res)
}

func (r *DosesRepo) GetByID(ctx context.Context, id string) (doses.Dose, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+doseColumns+`
		FROM doses
		WHERE id = $1
	`, id)

	d, err := scanDose(row)
	if err != nil {
		return doses.Dose{}, mapNoRows(err)
	}
	return d, nil
}

func (r *DosesRepo) List(ctx context.Context, f doses.ListFilter) ([]doses.Dose, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(f.MedicationIDs) > 0 {
		where = append(where, "medication_id = ANY("+arg(f.MedicationIDs)+"::text[])")
	}
	if f.Status != "" {
		where = append(where, "status = "+arg(string(f.Status)))
	}
	if f.From != nil {
		where = append(where, "scheduled_for >= "+arg(*f.From))
	}
	if f.To != nil {
		where = append(where, "scheduled_for <= "+arg(*f.To))
	}

	q := `SELECT ` + doseColumns + ` FROM doses`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY scheduled_for ASC, created_at ASC`
	if f.Limit > 0 {
		q += ` LIMIT ` + arg(f.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]doses.Dose, 0)
	for rows.Next() {
		d, err := scanDose(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func scanDose(s scanner) (doses.Dose, error) {
	var (
		d             doses.Dose
		status        string
		takenAt       sql.NullTime
		scheduleID    sql.NullString
		scheduledTime sql.NullString
	)
	if err := s.Scan(
		&d.ID,
		&d.MedicationID,
		&d.ScheduledFor,
		&status,
		&takenAt,
		&scheduleID,
		&scheduledTime,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		return doses.Dose{}, err
	}

	d.Status = doses.Status(status)
	if takenAt.Valid {
		t := takenAt.Time
		d.TakenAt = &t
	}
	d.ScheduleID = scheduleID.String
	d.ScheduledTime = scheduledTime.String
	return d, nil
}
