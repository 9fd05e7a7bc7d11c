package postgres

import (
	"context"
	"database/sql"

	"medication-management/internal/domain/recipients"
)

type RecipientsRepo struct {
	db *sql.DB
}

func NewRecipientsRepo(db *sql.DB) *RecipientsRepo {
	return &RecipientsRepo{db: db}
}

const recipientColumns = `id, first_name, last_name, date_of_birth, is_active, created_at, updated_at`

func (r *RecipientsRepo) Create(ctx context.Context, c recipients.CareRecipient) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO care_recipients (`+recipientColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		c.ID,
		c.FirstName,
		c.LastName,
		c.DateOfBirth,
		c.IsActive,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return err
}

func (r *RecipientsRepo) Update(ctx context.Context, c recipients.CareRecipient) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE care_recipients
		SET
			first_name = $2,
			last_name = $3,
			date_of_birth = $4,
			is_active = $5,
			updated_at = $6
		WHERE id = $1
	`,
		c.ID,
		c.FirstName,
		c.LastName,
		c.DateOfBirth,
		c.IsActive,
		c.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return rowsAffected(res)
}

func (r *RecipientsRepo) GetByID(ctx context.Context, id string) (recipients.CareRecipient, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+recipientColumns+`
		FROM care_recipients
		WHERE id = $1
	`, id)

	c, err := scanRecipient(row)
	if err != nil {
		return recipients.CareRecipient{}, mapNoRows(err)
	}
	return c, nil
}

func (r *RecipientsRepo) List(ctx context.Context) ([]recipients.CareRecipient, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+recipientColumns+`
		FROM care_recipients
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]recipients.CareRecipient, 0)
	for rows.Next() {
		c, err := scanRecipient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecipient(s scanner) (recipients.CareRecipient, error) {
	var c recipients.CareRecipient
	err := s.Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.DateOfBirth,
		&c.IsActive,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}
