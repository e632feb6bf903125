package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) List(ctx context.Context) ([]entity.Lead, error) {
	query := `
		SELECT id, city_name, company_name, phone, event_name, contact_person,
		       email, next_date, observations, created_at
		FROM leads
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		var l entity.Lead
		var phone, eventName, contactPerson, email, observations sql.NullString
		var nextDate sql.NullTime

		err := rows.Scan(&l.ID, &l.CityName, &l.CompanyName, &phone, &eventName,
			&contactPerson, &email, &nextDate, &observations, &l.CreatedAt)
		if err != nil {
			return nil, err
		}

		l.Phone = phone.String
		l.EventName = eventName.String
		l.ContactPerson = contactPerson.String
		l.Email = email.String
		l.Observations = observations.String
		if nextDate.Valid {
			t := nextDate.Time.UTC()
			l.NextDate = &t
		}

		leads = append(leads, l)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) Create(ctx context.Context, l *entity.Lead) error {
	query := `
		INSERT INTO leads (city_name, company_name, phone, event_name, contact_person,
		                   email, next_date, observations)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	return r.DB.QueryRowContext(ctx, query,
		l.CityName,
		l.CompanyName,
		nullString(l.Phone),
		nullString(l.EventName),
		nullString(l.ContactPerson),
		nullString(l.Email),
		l.NextDate,
		nullString(l.Observations),
	).Scan(&l.ID, &l.CreatedAt)
}

func (r *LeadRepository) Update(ctx context.Context, l *entity.Lead) error {
	query := `
		UPDATE leads
		SET city_name = $2, company_name = $3, phone = $4, event_name = $5,
		    contact_person = $6, email = $7, next_date = $8, observations = $9
		WHERE id = $1
		RETURNING created_at
	`

	err := r.DB.QueryRowContext(ctx, query,
		l.ID,
		l.CityName,
		l.CompanyName,
		nullString(l.Phone),
		nullString(l.EventName),
		nullString(l.ContactPerson),
		nullString(l.Email),
		l.NextDate,
		nullString(l.Observations),
	).Scan(&l.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrNotFound
	}
	return err
}

func (r *LeadRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
