package database

import (
	"context"
	"database/sql"

	"github.com/siyam-display/catalog-api/internal/entity"
)

type ContactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

func (r *ContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	query := `
		INSERT INTO contacts (id, name, company, email, phone, siyam_ref)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		c.ID,
		c.Name,
		nullString(c.Company),
		c.Email,
		nullString(c.Phone),
		nullString(c.SiyamRef),
	).Scan(
		&c.CreatedAt,
		&c.UpdatedAt,
	)
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
