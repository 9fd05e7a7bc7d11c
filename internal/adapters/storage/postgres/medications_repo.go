package postgres

import (
	"context"
	"database/sql"

	"medication-management/internal/domain/medications"
)

type MedicationsRepo struct {
	db *sql.DB
}

func NewMedicationsRepo(db *sql.DB) *MedicationsRepo {
	return &MedicationsRepo{db: db}
}

const medicationColumns = `id, care_recipient_id, name, dosage, instructions, is_active, created_at, updated_at`

func (r *MedicationsRepo) Create(ctx context.Context, m medications.Medication) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medications (`+medicationColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		m.ID,
		m.CareRecipientID,
		m.Name,
		m.Dosage,
		m.Instructions,
		m.IsActive,
		m.CreatedAt,
		m.UpdatedAt,
	)
	return err
}

func (r *MedicationsRepo) Update(ctx context.Context, m medications.Medication) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE medications
		SET
			care_recipient_id = $2,
			name = $3,
			dosage = $4,
			instructions = $5,
			is_active = $6,
			updated_at = $7
		WHERE id = $1
	`,
		m.ID,
		m.CareRecipientID,
		m.Name,
		m.Dosage,
		m.Instructions,
		m.IsActive,
		m.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return rowsAffected(res)
}

func (r *MedicationsRepo) GetByID(ctx context.Context, id string) (medications.Medication, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+medicationColumns+`
		FROM medications
		WHERE id = $1
	`, id)

	m, err := scanMedication(row)
	if err != nil {
		return medications.Medication{}, mapNoRows(err)
	}
	return m, nil
}

func (r *MedicationsRepo) List(ctx context.Context, f medications.ListFilter) ([]medications.Medication, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+medicationColumns+`
		FROM medications
		WHERE ($1 = '' OR care_recipient_id = $1)
		ORDER BY created_at ASC
	`, f.CareRecipientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medications.Medication, 0)
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanMedication(s scanner) (medications.Medication, error) {
	var m medications.Medication
	err := s.Scan(
		&m.ID,
		&m.CareRecipientID,
		&m.Name,
		&m.Dosage,
		&m.Instructions,
		&m.IsActive,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}
