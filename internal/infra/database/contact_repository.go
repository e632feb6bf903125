package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

// ContactRepository atende as tabelas prospects e clients, que têm o mesmo
// layout de colunas. O nome da tabela vem dos construtores, nunca do request.
type ContactRepository struct {
	DB    *sql.DB
	table string
}

func NewProspectRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{DB: db, table: "prospects"}
}

func NewClientRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{DB: db, table: "clients"}
}

// List devolve todos os registros em ordem de id, para que duas listagens
// seguidas sem mutação retornem o mesmo resultado.
func (r *ContactRepository) List(ctx context.Context) ([]entity.Contact, error) {
	query := fmt.Sprintf(`
		SELECT id, name, email, phone, contact, last_history, status, created_at
		FROM %s
		ORDER BY id
	`, r.table)

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []entity.Contact
	for rows.Next() {
		var c entity.Contact
		err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Contact, &c.LastHistory, &c.Status, &c.CreatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, c)
	}

	return records, rows.Err()
}

func (r *ContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, email, phone, contact, last_history, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, r.table)

	return r.DB.QueryRowContext(ctx, query,
		c.Name,
		c.Email,
		c.Phone,
		c.Contact,
		c.LastHistory,
		c.Status,
	).Scan(&c.ID, &c.CreatedAt)
}

// Update substitui todos os campos mutáveis e devolve o created_at original,
// que é imutável.
func (r *ContactRepository) Update(ctx context.Context, c *entity.Contact) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $2, email = $3, phone = $4, contact = $5, last_history = $6, status = $7
		WHERE id = $1
		RETURNING created_at
	`, r.table)

	err := r.DB.QueryRowContext(ctx, query,
		c.ID,
		c.Name,
		c.Email,
		c.Phone,
		c.Contact,
		c.LastHistory,
		c.Status,
	).Scan(&c.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrNotFound
	}
	return err
}

func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table)

	result, err := r.DB.ExecContext(ctx, query, id)
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
